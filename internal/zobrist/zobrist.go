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

// Package zobrist holds the pre-computed random tables used to
// maintain a BoardState's incremental hash key. There is exactly one
// process-wide table (Base), seeded deterministically so the same
// position always hashes to the same key across runs.
package zobrist

import (
	. "github.com/haldorsen/corvid/internal/types"
)

// Key is the hash type used throughout the engine: board hashing,
// transposition table addressing and repetition detection all share
// this type.
type Key uint64

// table holds one random value per (piece, square) pair, one per
// individual castling right (WK/WQ/BK/BQ, not per combination — each
// right's term is XORed independently so clearing one right never
// disturbs the others), one per en-passant file and one for side to
// move.
type table struct {
	pieces         [12][144]Key
	castlingRight  [4]Key
	enPassantFile  [8]Key
	nextPlayer     Key
}

// Base is the single process-wide Zobrist table. Every BoardState
// hashes against it.
var Base = newTable()

func newTable() table {
	var t table
	r := newRandom(1070372)
	for pc := 0; pc < 12; pc++ {
		for sq := 0; sq < BoardDim*BoardDim; sq++ {
			t.pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := 0; cr < 4; cr++ {
		t.castlingRight[cr] = Key(r.rand64())
	}
	for f := 0; f < 8; f++ {
		t.enPassantFile[f] = Key(r.rand64())
	}
	t.nextPlayer = Key(r.rand64())
	return t
}

// Piece returns the hash term for a piece standing on a square.
func (t *table) Piece(p Piece, sq Square) Key {
	return t.pieces[p.Index()][sq]
}

// castlingRightBit returns the bit index (0-3) of a single castling
// right flag.
func castlingRightBit(r CastlingRight) int {
	switch r {
	case WhiteOO:
		return 0
	case WhiteOOO:
		return 1
	case BlackOO:
		return 2
	default: // BlackOOO
		return 3
	}
}

// CastlingRight returns the hash term for one individual castling
// right (not a combination), XORed in while that right is held.
func (t *table) CastlingRight(r CastlingRight) Key {
	return t.castlingRight[castlingRightBit(r)]
}

// EnPassantFile returns the hash term for a pawn-double-move target
// file (0-7, 'a'-'h').
func (t *table) EnPassantFile(file int) Key {
	return t.enPassantFile[file]
}

// NextPlayer returns the hash term XORed in whenever the side to move
// changes.
func (t *table) NextPlayer() Key {
	return t.nextPlayer
}

// random is an xorshift64star pseudo-random number generator. Based on
// original code written and dedicated to the public domain by
// Sebastiano Vigna (2014). Deterministic: same seed, same sequence,
// so Base is reproducible across processes.
type random struct {
	s uint64
}

func newRandom(seed uint64) random {
	if seed == 0 {
		panic("zobrist: seed must not be 0")
	}
	return random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * uint64(2685821657736338717)
}
