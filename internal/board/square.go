// Package board implements chess rules on a 0x88 board representation.
package board

import "fmt"

// Square represents a square on the 0x88 board. The index space is 128 wide:
// valid squares are file + rank*16, and any index with a bit of 0x88 set is
// off the board, so boundary checks during ray generation are a single
// bitwise test.
type Square int

// Square constants, A1 = 0x00 through H8 = 0x77.
const (
	A1 Square = 0x00 + iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A2 Square = 0x10 + iota
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A3 Square = 0x20 + iota
	B3
	C3
	D3
	E3
	F3
	G3
	H3
)

const (
	A4 Square = 0x30 + iota
	B4
	C4
	D4
	E4
	F4
	G4
	H4
)

const (
	A5 Square = 0x40 + iota
	B5
	C5
	D5
	E5
	F5
	G5
	H5
)

const (
	A6 Square = 0x50 + iota
	B6
	C6
	D6
	E6
	F6
	G6
	H6
)

const (
	A7 Square = 0x60 + iota
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A8 Square = 0x70 + iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NoSquare marks the absence of a square (cleared en passant target, missing
// king and the like).
const NoSquare Square = -1

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 4
}

// IsValid returns true if the square is on the board.
func (sq Square) IsValid() bool {
	return sq&0x88 == 0
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank*16 + file)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(file, rank), nil
}

// Shade labels the square's color class as 0 or 1. Squares of equal shade
// are reachable from each other by a bishop, which is what the insufficient
// material rule cares about.
func (sq Square) Shade() int {
	return (sq.File() + sq.Rank()) & 1
}
