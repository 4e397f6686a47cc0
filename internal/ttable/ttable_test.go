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

package ttable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haldorsen/corvid/internal/ttable"
	"github.com/haldorsen/corvid/internal/types"
	"github.com/haldorsen/corvid/internal/zobrist"
)

func TestStoreAndProbeRoundTrip(t *testing.T) {
	tt := ttable.New(1)
	key := zobrist.Key(12345)
	move := types.NewMove(types.MakeSquare("e2"), types.MakeSquare("e4"), types.King, types.Normal)
	tt.Store(key, 4, 17, ttable.Exact, move)

	e, ok := tt.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, 4, e.Depth)
	assert.Equal(t, 17, e.Score)
	assert.Equal(t, ttable.Exact, e.Bound)
	gotMove, hasMove := e.Move()
	assert.True(t, hasMove)
	assert.Equal(t, move, gotMove)
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := ttable.New(1)
	_, ok := tt.Probe(zobrist.Key(999))
	assert.False(t, ok)
}

func TestZeroSizeTableNeverStores(t *testing.T) {
	tt := ttable.New(0)
	tt.Store(zobrist.Key(1), 1, 1, ttable.Exact, types.MoveNone)
	_, ok := tt.Probe(zobrist.Key(1))
	assert.False(t, ok)
	assert.Equal(t, 0, tt.Hashfull())
}

func TestAlwaysReplaceOverwritesCollidingSlot(t *testing.T) {
	tt := ttable.New(1)
	// Two distinct keys that collide on a small table's mask.
	a := zobrist.Key(1)
	b := a + (1 << 40) // differs only in high bits a 1MB table's mask ignores
	tt.Store(a, 2, 5, ttable.Exact, types.MoveNone)
	tt.Store(b, 3, 9, ttable.LowerBound, types.MoveNone)

	e, ok := tt.Probe(b)
	assert.True(t, ok)
	assert.Equal(t, 9, e.Score)

	_, ok = tt.Probe(a)
	assert.False(t, ok, "always-replace should have evicted the first entry")
}

func TestClearEmptiesTable(t *testing.T) {
	tt := ttable.New(1)
	tt.Store(zobrist.Key(7), 1, 1, ttable.Exact, types.MoveNone)
	assert.Equal(t, 1, tt.Len())
	tt.Clear()
	assert.Equal(t, 0, tt.Len())
	_, ok := tt.Probe(zobrist.Key(7))
	assert.False(t, ok)
}
