package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit mask with one bit per board square; bit i covers
// square i in the same LERF mapping used by Square.
type Bitboard uint64

// File and rank masks.
const (
	FileMaskA Bitboard = 0x0101010101010101
	FileMaskH Bitboard = 0x8080808080808080

	RankMask1 Bitboard = 0x00000000000000FF
	RankMask2 Bitboard = 0x000000000000FF00
	RankMask3 Bitboard = 0x0000000000FF0000
	RankMask6 Bitboard = 0x0000FF0000000000
	RankMask7 Bitboard = 0x00FF000000000000
	RankMask8 Bitboard = 0xFF00000000000000
)

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Set returns the bitboard with the given square set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << sq)
}

// Clear returns the bitboard with the given square cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << sq)
}

// IsSet reports whether the bit for the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<sq) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest set square, or NoSquare when empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest set square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Squares returns all set squares in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.PopCount())
	for b != 0 {
		out = append(out, b.PopLSB())
	}
	return out
}

// North shifts one rank up.
func (b Bitboard) North() Bitboard { return b << 8 }

// South shifts one rank down.
func (b Bitboard) South() Bitboard { return b >> 8 }

// NorthEast shifts one square toward h8, masking file-a wrap.
func (b Bitboard) NorthEast() Bitboard { return (b << 9) &^ FileMaskA }

// NorthWest shifts one square toward a8, masking file-h wrap.
func (b Bitboard) NorthWest() Bitboard { return (b << 7) &^ FileMaskH }

// SouthEast shifts one square toward h1, masking file-a wrap.
func (b Bitboard) SouthEast() Bitboard { return (b >> 7) &^ FileMaskA }

// SouthWest shifts one square toward a1, masking file-h wrap.
func (b Bitboard) SouthWest() Bitboard { return (b >> 9) &^ FileMaskH }

// String renders the bitboard as an 8x8 grid, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
