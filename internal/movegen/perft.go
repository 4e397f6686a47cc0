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
	"time"

	"github.com/haldorsen/corvid/internal/board"
)

// Result collects node and move-kind counters for one Perft run, the
// standard way of cross-checking a move generator against known-good
// counts for a set of reference positions.
type Result struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	CheckMates uint64
	Elapsed    time.Duration
}

// Perft walks the legal move tree rooted at b to the given depth and
// returns aggregate counters. Depth 0 is the empty walk: one node, no
// moves played.
func Perft(b *board.BoardState, depth int) *Result {
	r := &Result{}
	start := time.Now()
	if depth <= 0 {
		r.Nodes = 1
	} else {
		perftRecurse(b, depth, r)
	}
	r.Elapsed = time.Since(start)
	return r
}

func perftRecurse(b *board.BoardState, depth int, r *Result) {
	successors := Generate(b, AllMoves)
	if depth == 1 {
		for _, s := range successors {
			r.Nodes++
			classify(b, s, r)
		}
		return
	}
	for _, s := range successors {
		perftRecurse(s.State, depth-1, r)
	}
}

// classify records move-kind and check/mate statistics for the leaf
// move s played from parent.
func classify(parent *board.BoardState, s Successor, r *Result) {
	m := s.Move
	switch {
	case m.IsEnPassant():
		r.EnPassant++
		r.Captures++
	default:
		if _, occupied := parent.PieceAt(m.To()); occupied {
			r.Captures++
		}
	}
	if m.IsCastling() {
		r.Castles++
	}
	if m.IsPromotion() {
		r.Promotions++
	}
	opponent := s.State.SideToMove()
	if InCheck(s.State, opponent) {
		r.Checks++
		if !HasLegalMove(s.State) {
			r.CheckMates++
		}
	}
}
