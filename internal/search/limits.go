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

import "time"

// Limits holds everything a UCI "go" command can constrain a search
// by. A caller sets exactly the fields relevant to the search
// mode it wants; zero value fields are simply not limits.
type Limits struct {
	// Infinite marks a search with no depth, node or time limit, as a
	// UCI "go infinite" requests. The search does not read it; whether
	// the time controller is armed depends on TimeControl alone.
	Infinite bool

	// Depth caps iterative deepening below config.Settings.Search.MaxDepth
	// when positive.
	Depth int

	// Nodes, when positive, ends iterative deepening after the first
	// completed iteration whose node count has reached this value; an
	// iteration in progress is not cut short.
	Nodes uint64

	// TimeControl, when true, arms the time controller using either
	// MoveTime directly or the remaining-clock fields via timectl.Budget.
	TimeControl bool
	MoveTime    time.Duration
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MovesToGo   int
}

// NewLimits returns an empty Limits value.
func NewLimits() Limits {
	return Limits{}
}
