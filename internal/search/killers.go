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

package search

import . "github.com/haldorsen/corvid/internal/types"

// killerTable holds, for every ply, the two most recent quiet moves
// that caused a beta cutoff there. Quiet moves
// repeat across sibling positions at the same ply far more often than
// captures, so trying them early before falling back to order_heuristic
// tends to find the same cutoff without regenerating it from scratch.
type killerTable [maxPly][2]Move

// store inserts m as ply's most recent killer, shifting the previous
// one into the second slot. A move already stored as the first killer
// is left alone rather than duplicated.
func (k *killerTable) store(ply int, m Move) {
	if ply >= maxPly || k[ply][0] == m {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = m
}

// isKiller reports whether m is one of ply's two stored killers.
func (k *killerTable) isKiller(ply int, m Move) bool {
	return ply < maxPly && (k[ply][0] == m || k[ply][1] == m)
}
