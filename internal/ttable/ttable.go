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

// Package ttable implements the search's transposition table: a
// fixed-size, power-of-two-addressed cache from Zobrist key to the
// best information found for that position on a previous visit. The
// table is not safe for concurrent use — the engine's single search
// worker owns it exclusively.
package ttable

import (
	"math"
	"math/bits"
	"unsafe"

	"github.com/haldorsen/corvid/internal/logging"
	"github.com/haldorsen/corvid/internal/types"
	"github.com/haldorsen/corvid/internal/zobrist"
)

var log = logging.GetLog("ttable")

// Bound records how an entry's score relates to the search window
// that produced it.
type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

// entrySize is the in-memory footprint of one Entry, used to turn a
// megabyte budget into a power-of-two entry count.
const entrySize = uint64(unsafe.Sizeof(Entry{}))

// Entry is one transposition-table record.
type Entry struct {
	Key          zobrist.Key
	Depth        int
	Score        int
	Bound        Bound
	BestMove     types.Move
	hasBestMove  bool
	hasBeenUsed  bool
}

// Move returns the stored best move, if any was recorded.
func (e Entry) Move() (types.Move, bool) {
	return e.BestMove, e.hasBestMove
}

// Table is the transposition table itself.
type Table struct {
	data     []Entry
	mask     uint64
	size     int
	entries  int
	probes   uint64
	hits     uint64
}

// New creates a table sized to the largest power of two that fits in
// sizeMB megabytes.
func New(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize replaces the table's backing storage, discarding all
// entries. Never call this while a search is using the table.
func (t *Table) Resize(sizeMB int) {
	if sizeMB <= 0 {
		t.data = nil
		t.mask = 0
		t.size = 0
		t.entries = 0
		return
	}
	bytes := uint64(sizeMB) * 1024 * 1024
	count := uint64(1) << uint64(math.Floor(math.Log2(float64(bytes/entrySize))))
	if count == 0 {
		count = 1
	}
	t.data = make([]Entry, count)
	t.mask = count - 1
	t.size = int(count)
	t.entries = 0
	log.Infof("transposition table sized to %d entries (%d MB requested)", count, sizeMB)
}

// Clear empties the table without reallocating.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
	t.entries = 0
	t.probes = 0
	t.hits = 0
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.mask
}

// Probe returns the entry stored for key, if the slot's key matches.
func (t *Table) Probe(key zobrist.Key) (Entry, bool) {
	if t.size == 0 {
		return Entry{}, false
	}
	t.probes++
	e := &t.data[t.index(key)]
	if e.hasBeenUsed && e.Key == key {
		t.hits++
		return *e, true
	}
	return Entry{}, false
}

// Store records an entry at key's slot, always replacing whatever was
// there before: "always replace" is sufficient at these search
// depths.
func (t *Table) Store(key zobrist.Key, depth, score int, bound Bound, move types.Move) {
	if t.size == 0 {
		return
	}
	e := &t.data[t.index(key)]
	if !e.hasBeenUsed {
		t.entries++
	}
	e.Key = key
	e.Depth = depth
	e.Score = score
	e.Bound = bound
	e.BestMove = move
	e.hasBestMove = move != types.MoveNone
	e.hasBeenUsed = true
}

// Hashfull reports table occupancy in permille, as UCI's "hashfull"
// info field expects.
func (t *Table) Hashfull() int {
	if t.size == 0 {
		return 0
	}
	return (1000 * t.entries) / t.size
}

// Len returns the number of occupied slots.
func (t *Table) Len() int {
	return t.entries
}

// bitLength returns the number of bits needed to represent n.
func bitLength(n uint64) int {
	return bits.Len64(n)
}
