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

// PieceKind enumerates the six chess piece kinds. The ordinals are
// dense and deliberately match the MVV-LVA table's column/row order
// (King=0 .. Pawn=5) so they can index directly into the MVV-LVA and
// Zobrist piece-square tables without translation.
type PieceKind uint8

// The six piece kinds, dense from King(0) to Pawn(5).
const (
	King PieceKind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	PieceKindLength
)

var pieceKindChar = [PieceKindLength]string{"k", "q", "r", "b", "n", "p"}

// Char returns the lowercase FEN letter for the piece kind.
func (pk PieceKind) Char() string {
	return pieceKindChar[pk]
}

// IsValid reports whether pk is one of the six defined kinds.
func (pk PieceKind) IsValid() bool {
	return pk < PieceKindLength
}

// material value in centipawns.
var pieceKindValue = [PieceKindLength]int{20000, 900, 500, 330, 320, 100}

// Value returns the material value of the piece kind in centipawns.
func (pk PieceKind) Value() int {
	return pieceKindValue[pk]
}

// IsSliding reports whether the piece kind moves along rays (bishop,
// rook, queen) as opposed to fixed-offset leapers (knight, king) or
// pawns, which have their own movement rules.
func (pk PieceKind) IsSliding() bool {
	return pk == Queen || pk == Rook || pk == Bishop
}
