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

import "strings"

// Piece is a colored chess piece (e.g. a white knight).
type Piece struct {
	Color Color
	Kind  PieceKind
}

// NoPiece is the zero value of Piece and never occurs on a board;
// board cells use a separate Empty/Boundary marker (see the board
// package) rather than this sentinel.
var NoPiece = Piece{}

// NewPiece builds a Piece from a color and kind.
func NewPiece(c Color, pk PieceKind) Piece {
	return Piece{Color: c, Kind: pk}
}

// Index returns a dense 0..11 index (color*6 + kind) suitable for
// addressing the Zobrist piece-square table.
func (p Piece) Index() int {
	return int(p.Color)*int(PieceKindLength) + int(p.Kind)
}

// Char returns the FEN character for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Char() string {
	c := p.Kind.Char()
	if p.Color == White {
		return strings.ToUpper(c)
	}
	return c
}

var fenPieceChars = map[byte]Piece{
	'K': {White, King}, 'Q': {White, Queen}, 'R': {White, Rook},
	'B': {White, Bishop}, 'N': {White, Knight}, 'P': {White, Pawn},
	'k': {Black, King}, 'q': {Black, Queen}, 'r': {Black, Rook},
	'b': {Black, Bishop}, 'n': {Black, Knight}, 'p': {Black, Pawn},
}

// PieceFromChar maps a FEN piece letter to a Piece. ok is false for
// any byte that is not a recognized piece letter.
func PieceFromChar(c byte) (p Piece, ok bool) {
	p, ok = fenPieceChars[c]
	return
}
