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

// MoveList is a plain slice of Move with a few convenience methods,
// used for the principal variation stack, the UCI "moves" list and
// killer-move bookkeeping.
type MoveList []Move

// NewMoveList returns an empty MoveList with the given capacity hint.
func NewMoveList(cap int) MoveList {
	return make(MoveList, 0, cap)
}

// PushBack appends m.
func (ml *MoveList) PushBack(m Move) {
	*ml = append(*ml, m)
}

// Clear empties the list while keeping its backing array.
func (ml *MoveList) Clear() {
	*ml = (*ml)[:0]
}

// Len returns the number of moves.
func (ml MoveList) Len() int {
	return len(ml)
}

// At returns the move at index i.
func (ml MoveList) At(i int) Move {
	return ml[i]
}

// Clone returns an independent copy.
func (ml MoveList) Clone() MoveList {
	c := make(MoveList, len(ml))
	copy(c, ml)
	return c
}

// StringUci renders the list as a space-separated UCI move sequence.
func (ml MoveList) StringUci() string {
	parts := make([]string, len(ml))
	for i, m := range ml {
		parts[i] = m.StringUci()
	}
	return strings.Join(parts, " ")
}
