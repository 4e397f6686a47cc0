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

// CastlingRight identifies one of the four castling privileges.
type CastlingRight uint8

// The four castling rights, one bit each.
const (
	WhiteOO CastlingRight = 1 << iota
	WhiteOOO
	BlackOO
	BlackOOO

	CastlingNone CastlingRight = 0
)

// CastlingRights is a set of the four CastlingRight bits.
type CastlingRights uint8

// Has reports whether r is set in cr.
func (cr CastlingRights) Has(r CastlingRight) bool {
	return cr&CastlingRights(r) != 0
}

// Clear removes r from cr in place. It is a no-op
// if r was already clear — callers that need to know whether a
// change actually happened (to keep a Zobrist key in sync) should
// check Has before calling Clear.
func (cr *CastlingRights) Clear(r CastlingRight) {
	*cr &^= CastlingRights(r)
}

// Set adds r to cr.
func (cr *CastlingRights) Set(r CastlingRight) {
	*cr |= CastlingRights(r)
}

// String renders the set in FEN order (KQkq), or "-" if empty.
func (cr CastlingRights) String() string {
	s := ""
	if cr.Has(WhiteOO) {
		s += "K"
	}
	if cr.Has(WhiteOOO) {
		s += "Q"
	}
	if cr.Has(BlackOO) {
		s += "k"
	}
	if cr.Has(BlackOOO) {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
