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

// Statistics are extra counters not essential to a functioning search,
// kept around for the UCI "info" string and for tests that want to
// sanity-check move ordering quality.
type Statistics struct {
	Nodes        uint64
	TTHits       uint64
	TTCuts       uint64
	BetaCutoffs  uint64
	BetaCutoffs1 uint64 // cutoffs on the first move searched, move-ordering quality

	CurrentDepth int
	SelDepth     int
	Checkmates   uint64
	Stalemates   uint64
}

func (s *Statistics) String() string {
	return out.Sprintf(
		"nodes=%d ttHits=%d ttCuts=%d betaCutoffs=%d (1st=%d) depth=%d seldepth=%d",
		s.Nodes, s.TTHits, s.TTCuts, s.BetaCutoffs, s.BetaCutoffs1, s.CurrentDepth, s.SelDepth)
}
