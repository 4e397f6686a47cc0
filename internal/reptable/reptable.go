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

// Package reptable tracks how many times each position visited on the
// current search path has occurred, so the search driver can score a
// move that would create a third occurrence of a Zobrist key as an
// immediate draw rather than recursing into it.
package reptable

import "github.com/haldorsen/corvid/internal/zobrist"

// Table counts visits to each Zobrist key along the line currently
// being searched. It is not safe for concurrent use.
type Table struct {
	counts map[zobrist.Key]uint8
}

// New returns an empty Table.
func New() *Table {
	return &Table{counts: make(map[zobrist.Key]uint8)}
}

// Clear empties the table, used on "ucinewgame".
func (t *Table) Clear() {
	t.counts = make(map[zobrist.Key]uint8)
}

// Push records a descent into key, incrementing its visit count.
func (t *Table) Push(key zobrist.Key) {
	t.counts[key]++
}

// Pop records backing out of key, decrementing its visit count. It is
// a no-op if the count is already zero.
func (t *Table) Pop(key zobrist.Key) {
	if t.counts[key] == 0 {
		return
	}
	t.counts[key]--
	if t.counts[key] == 0 {
		delete(t.counts, key)
	}
}

// WouldRepeatThreefold reports whether descending into key would be
// that position's third occurrence on the current search path.
func (t *Table) WouldRepeatThreefold(key zobrist.Key) bool {
	return t.counts[key] == 2
}

// Count returns the current visit count for key.
func (t *Table) Count(key zobrist.Key) uint8 {
	return t.counts[key]
}
