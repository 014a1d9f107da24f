package board

// Team is one of the two sides.
type Team uint8

const (
	Light Team = iota
	Dark
)

// Other returns the opposing team.
func (t Team) Other() Team {
	return t ^ 1
}

// String returns the team name.
func (t Team) String() string {
	if t == Light {
		return "Light"
	}
	return "Dark"
}

// PieceType is the class of a piece. It never changes on a placed piece;
// promotion replaces the record instead of mutating it.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// IsValid reports whether the type is one of the six piece classes.
func (pt PieceType) IsValid() bool {
	return pt <= King
}

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// PieceRecord describes a single placed piece. It is a plain value and is
// copied freely; the register owns the authoritative copy.
type PieceRecord struct {
	Type   PieceType
	Square Square
	Team   Team
}

// String renders the record as e.g. "Light Knight on b1".
func (pr PieceRecord) String() string {
	return pr.Team.String() + " " + pr.Type.String() + " on " + pr.Square.String()
}
