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

package reptable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haldorsen/corvid/internal/reptable"
	"github.com/haldorsen/corvid/internal/zobrist"
)

func TestPushIncrementsCount(t *testing.T) {
	rt := reptable.New()
	key := zobrist.Key(42)
	rt.Push(key)
	assert.Equal(t, uint8(1), rt.Count(key))
	rt.Push(key)
	assert.Equal(t, uint8(2), rt.Count(key))
}

func TestWouldRepeatThreefoldAtSecondOccurrence(t *testing.T) {
	rt := reptable.New()
	key := zobrist.Key(42)
	assert.False(t, rt.WouldRepeatThreefold(key))
	rt.Push(key)
	assert.False(t, rt.WouldRepeatThreefold(key))
	rt.Push(key)
	assert.True(t, rt.WouldRepeatThreefold(key))
}

func TestPopDecrementsAndRemovesAtZero(t *testing.T) {
	rt := reptable.New()
	key := zobrist.Key(7)
	rt.Push(key)
	rt.Push(key)
	rt.Pop(key)
	assert.Equal(t, uint8(1), rt.Count(key))
	rt.Pop(key)
	assert.Equal(t, uint8(0), rt.Count(key))
	// popping an already-empty key is a no-op, not a panic
	rt.Pop(key)
	assert.Equal(t, uint8(0), rt.Count(key))
}

func TestClearResetsAllCounts(t *testing.T) {
	rt := reptable.New()
	rt.Push(zobrist.Key(1))
	rt.Push(zobrist.Key(2))
	rt.Clear()
	assert.Equal(t, uint8(0), rt.Count(zobrist.Key(1)))
	assert.Equal(t, uint8(0), rt.Count(zobrist.Key(2)))
}
