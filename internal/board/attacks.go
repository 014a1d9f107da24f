package board

// Precomputed attack tables for the non-sliding pieces, plus per-square ray
// masks for the sliders. Filled once in init() from pure arithmetic; after
// that they are process-wide immutable and safe for concurrent readers.
var (
	kingTable   [64]Bitboard
	knightTable [64]Bitboard
	pawnTable   [2][64]Bitboard // [Team][Square], capture squares only

	bishopRayTable [64]Bitboard // maximal diagonal reach, occupancy ignored
	rookRayTable   [64]Bitboard // maximal orthogonal reach, occupancy ignored
)

// Fixed offset sets, as (file, rank) deltas.
var (
	kingSteps   = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightSteps = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		kingTable[sq] = stepTargets(sq, kingSteps)
		knightTable[sq] = stepTargets(sq, knightSteps)

		bb := SquareBB(sq)
		pawnTable[Light][sq] = bb.NorthEast() | bb.NorthWest()
		pawnTable[Dark][sq] = bb.SouthEast() | bb.SouthWest()

		bishopRayTable[sq] = walkRays(sq, bishopDirs, 0)
		rookRayTable[sq] = walkRays(sq, rookDirs, 0)
	}
}

// stepTargets accumulates every offset whose target stays on the board.
func stepTargets(sq Square, steps [8][2]int) Bitboard {
	var bb Bitboard
	file, rank := sq.File(), sq.Rank()
	for _, d := range steps {
		f, r := file+d[0], rank+d[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		bb = bb.Set(NewSquare(f, r))
	}
	return bb
}

// walkRays walks outward in each direction, one square at a time. Every
// stepped-to square is included; a direction stops at the first square set
// in occupied (the blocker may be a capture, so it stays in the result).
// Directions are independent of one another.
func walkRays(sq Square, dirs [4][2]int, occupied Bitboard) Bitboard {
	var bb Bitboard
	for _, d := range dirs {
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			t := NewSquare(f, r)
			bb = bb.Set(t)
			if occupied.IsSet(t) {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return bb
}

// KingAttacks returns the king attack mask for a square.
// The square must be valid; table lookups are not range-checked here.
func KingAttacks(sq Square) Bitboard {
	return kingTable[sq]
}

// KnightAttacks returns the knight attack mask for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightTable[sq]
}

// PawnAttacks returns the pawn capture mask for a square and team.
func PawnAttacks(sq Square, t Team) Bitboard {
	return pawnTable[t][sq]
}

// BishopRays returns the full diagonal reach from a square, ignoring
// occupancy. Useful as an upper bound before blockers are known.
func BishopRays(sq Square) Bitboard {
	return bishopRayTable[sq]
}

// RookRays returns the full orthogonal reach from a square, ignoring occupancy.
func RookRays(sq Square) Bitboard {
	return rookRayTable[sq]
}

// QueenRays returns the union of bishop and rook rays.
func QueenRays(sq Square) Bitboard {
	return bishopRayTable[sq] | rookRayTable[sq]
}

// BishopAttacks resolves diagonal attacks against the given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return walkRays(sq, bishopDirs, occupied)
}

// RookAttacks resolves orthogonal attacks against the given occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return walkRays(sq, rookDirs, occupied)
}

// QueenAttacks resolves queen attacks against the given occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}
