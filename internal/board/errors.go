package board

import "errors"

var (
	// ErrInvalidSquare marks a coordinate outside the board. Distinct from
	// "no piece found": an empty square is a valid state, a bad index is not.
	ErrInvalidSquare = errors.New("square out of range")

	// ErrSquareOccupied is returned when adding a piece to a taken square.
	ErrSquareOccupied = errors.New("square already occupied")

	// ErrSquareEmpty is returned when removing from an empty square.
	ErrSquareEmpty = errors.New("no piece on square")

	// ErrKingRemoval is returned on an attempt to remove a king from the
	// register. Kings are checkmated, never captured.
	ErrKingRemoval = errors.New("king cannot be removed")

	// ErrKingMissing means a team has no king record. Check detection must
	// fail loudly on this rather than report "not in check".
	ErrKingMissing = errors.New("king not found")

	// ErrKingDuplicate means a team has more than one king record.
	ErrKingDuplicate = errors.New("more than one king")

	// ErrUnknownPiece marks a piece record with an out-of-range type.
	ErrUnknownPiece = errors.New("unknown piece type")
)
