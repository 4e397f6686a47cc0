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

package movegen

import (
	"github.com/haldorsen/corvid/internal/board"
	. "github.com/haldorsen/corvid/internal/types"
)

var rookDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
var kingOffsets = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// forwardDir returns the row delta a pawn of color c advances by: -1
// for White (rank1 at the high row index, rank8 at the low one), +1
// for Black.
func forwardDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// IsSquareAttacked reports whether sq is attacked by any piece of
// color by, walking outward from sq rather than generating every
// move of the attacking side.
func IsSquareAttacked(b *board.BoardState, sq Square, by Color) bool {
	for _, d := range rookDirs {
		if slidingAttacker(b, sq, d, by, Rook, Queen) {
			return true
		}
	}
	for _, d := range bishopDirs {
		if slidingAttacker(b, sq, d, by, Bishop, Queen) {
			return true
		}
	}
	for _, d := range knightOffsets {
		if t := sq.Offset(d[0], d[1]); t.IsValid() && t.IsOnBoard() {
			if p, ok := b.PieceAt(t); ok && p.Color == by && p.Kind == Knight {
				return true
			}
		}
	}
	for _, d := range kingOffsets {
		if t := sq.Offset(d[0], d[1]); t.IsValid() && t.IsOnBoard() {
			if p, ok := b.PieceAt(t); ok && p.Color == by && p.Kind == King {
				return true
			}
		}
	}
	fwd := forwardDir(by)
	for _, dc := range [2]int{-1, 1} {
		if t := sq.Offset(-fwd, dc); t.IsValid() && t.IsOnBoard() {
			if p, ok := b.PieceAt(t); ok && p.Color == by && p.Kind == Pawn {
				return true
			}
		}
	}
	return false
}

// slidingAttacker walks from sq in direction d until it leaves the
// board or meets an occupied square, reporting whether that first
// occupied square holds a by-colored primary or alt piece.
func slidingAttacker(b *board.BoardState, sq Square, d [2]int, by Color, primary, alt PieceKind) bool {
	t := sq
	for {
		t = t.Offset(d[0], d[1])
		if !t.IsValid() || !t.IsOnBoard() {
			return false
		}
		if p, ok := b.PieceAt(t); ok {
			return p.Color == by && (p.Kind == primary || p.Kind == alt)
		}
	}
}

// InCheck reports whether c's king is currently attacked.
func InCheck(b *board.BoardState, c Color) bool {
	return IsSquareAttacked(b, b.KingSquare(c), c.Opposite())
}
