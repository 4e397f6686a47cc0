/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import "fmt"

// Square addresses one cell of the 12x12 sentinel mailbox (see the
// board package for the mailbox itself). Row and column both run
// 0..11; the playable 8x8 area is the [2..9]x[2..9] sub-grid and
// everything outside it is the Boundary sentinel ring. Rank 8 is row
// 2, rank 1 is row 9; file 'a' is column 2, file 'h' is column 9.
type Square uint8

// BoardDim is the full mailbox side length (8 playable + 2 sentinel
// rings of width two on every side).
const BoardDim = 12

// SqNone marks an absent square (e.g. no en-passant target).
const SqNone Square = 0xFF

// NewSquare builds a Square from a 0..11 row and column. Out-of-range
// inputs return SqNone.
func NewSquare(row, col int) Square {
	if row < 0 || row >= BoardDim || col < 0 || col >= BoardDim {
		return SqNone
	}
	return Square(row*BoardDim + col)
}

// SquareFromFileRank builds a Square from a file (0='a'..7='h') and a
// rank (0=rank1..7=rank8).
func SquareFromFileRank(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone
	}
	return NewSquare(9-rank, file+2)
}

// MakeSquare parses an algebraic square like "e4". Returns SqNone for
// anything that is not exactly two characters forming a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone
	}
	return SquareFromFileRank(file, rank)
}

// Row returns the 0..11 mailbox row.
func (sq Square) Row() int {
	return int(sq) / BoardDim
}

// Col returns the 0..11 mailbox column.
func (sq Square) Col() int {
	return int(sq) % BoardDim
}

// IsValid reports whether sq is a real mailbox index (not SqNone).
// It does not imply the square is on the playable area — use
// IsOnBoard for that.
func (sq Square) IsValid() bool {
	return sq != SqNone
}

// IsOnBoard reports whether sq lies in the playable 8x8 sub-grid
// rather than the sentinel ring.
func (sq Square) IsOnBoard() bool {
	r, c := sq.Row(), sq.Col()
	return r >= 2 && r <= 9 && c >= 2 && c <= 9
}

// File returns the 0..7 file ('a'..'h'), valid only when IsOnBoard.
func (sq Square) File() int {
	return sq.Col() - 2
}

// Rank returns the 0..7 rank (0=rank1..7=rank8), valid only when
// IsOnBoard.
func (sq Square) Rank() int {
	return 9 - sq.Row()
}

// Offset returns the square reached by stepping dRow/dCol from sq, or
// SqNone if the step leaves the 12x12 mailbox. A step that stays in
// the mailbox may land on the sentinel ring; IsOnBoard tells the two
// apart.
func (sq Square) Offset(dRow, dCol int) Square {
	r := sq.Row() + dRow
	c := sq.Col() + dCol
	if r < 0 || r >= BoardDim || c < 0 || c >= BoardDim {
		return SqNone
	}
	return Square(r*BoardDim + c)
}

// String returns algebraic notation (e.g. "e4"), or "-" for SqNone or
// an off-board square.
func (sq Square) String() string {
	if !sq.IsValid() || !sq.IsOnBoard() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+rune(sq.File()), '1'+rune(sq.Rank()))
}
