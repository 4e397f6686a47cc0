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

// Mate is the sentinel score for "side to move is checkmated here",
// chosen comfortably above any score the evaluator can produce from
// material plus piece-square bonuses alone. Scores close to Mate
// encode distance to mate: -Mate+ply is a shorter (better) mate for
// the side delivering it than -Mate+ply2 with ply2 > ply.
const Mate = 32000

// Infinity is a search-window bound wider than any value Mate or the
// evaluator can return, used to open the root window.
const Infinity = Mate + 1

// maxPly bounds killer-move storage, quiescence recursion and
// mate-distance detection in valueToTT/valueFromTT. Search depth is
// separately bounded by config.Settings.Search.MaxDepth; this is a
// generous ceiling on top of that for quiescence's unlimited recursion
// into captures.
const maxPly = 128

// isMateScore reports whether v encodes a forced mate (for or against
// the side to move) rather than a material evaluation.
func isMateScore(v int) bool {
	return v >= Mate-maxPly || v <= -Mate+maxPly
}

// valueToTT adjusts a mate score found ply levels below the table
// entry's own position into a ply-independent score before storing it,
// so a later probe at a different ply can re-adjust it correctly.
func valueToTT(v, ply int) int {
	switch {
	case v >= Mate-maxPly:
		return v + ply
	case v <= -Mate+maxPly:
		return v - ply
	default:
		return v
	}
}

// valueFromTT reverses valueToTT when reading an entry back at ply.
func valueFromTT(v, ply int) int {
	switch {
	case v >= Mate-maxPly:
		return v - ply
	case v <= -Mate+maxPly:
		return v + ply
	default:
		return v
	}
}
