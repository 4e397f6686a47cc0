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

package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haldorsen/corvid/internal/board"
	. "github.com/haldorsen/corvid/internal/movegen"
	. "github.com/haldorsen/corvid/internal/types"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func mustBoard(t *testing.T, fen string) *board.BoardState {
	t.Helper()
	b, err := board.NewBoardState(fen)
	assert.NoError(t, err)
	return b
}

func TestPerftStartingPosition(t *testing.T) {
	b := mustBoard(t, startFEN)
	expected := []uint64{20, 400, 8902, 197281, 4865609}
	for depth, want := range expected {
		r := Perft(b, depth+1)
		assert.Equalf(t, want, r.Nodes, "depth %d", depth+1)
	}
}

func TestPerftKiwipete(t *testing.T) {
	b := mustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	expected := []uint64{48, 2039, 97862, 4085603}
	for depth, want := range expected {
		r := Perft(b, depth+1)
		assert.Equalf(t, want, r.Nodes, "depth %d", depth+1)
	}
}

func TestPerftEndgame(t *testing.T) {
	b := mustBoard(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	expected := []uint64{14, 191, 2812, 43238, 674624}
	for depth, want := range expected {
		r := Perft(b, depth+1)
		assert.Equalf(t, want, r.Nodes, "depth %d", depth+1)
	}
}

func TestPerftPromotionCastlingMix(t *testing.T) {
	b := mustBoard(t, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	expected := []uint64{6, 264, 9467, 422333}
	for depth, want := range expected {
		r := Perft(b, depth+1)
		assert.Equalf(t, want, r.Nodes, "depth %d", depth+1)
	}
}

func TestPerftMirroredPositionMatchesOriginal(t *testing.T) {
	original := mustBoard(t, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	mirrored := mustBoard(t, "r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1")
	for depth := 1; depth <= 3; depth++ {
		assert.Equal(t, Perft(original, depth).Nodes, Perft(mirrored, depth).Nodes)
	}
}

func TestGenerateCapturesOnlySubsetOfAllMoves(t *testing.T) {
	b := mustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	all := Generate(b, AllMoves)
	caps := Generate(b, CapturesOnly)
	allSet := make(map[Move]bool, len(all))
	for _, s := range all {
		allSet[s.Move] = true
	}
	for _, s := range caps {
		assert.True(t, allSet[s.Move], "capture move %s missing from AllMoves", s.Move)
	}
}

func TestGenerateCastlingTraversedSquaresUnattacked(t *testing.T) {
	b := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	successors := Generate(b, AllMoves)
	found := false
	for _, s := range successors {
		if s.Move.IsCastling() && s.Move.To() == s.Move.From().Offset(0, 2) {
			found = true
		}
	}
	assert.True(t, found, "expected a legal king-side castle for white")
}

func TestGenerateCastlingBlockedByCheckOnPassedSquare(t *testing.T) {
	// black rook on e8-file's neighbor attacks f1, the square the
	// white king must cross to castle king-side.
	b := mustBoard(t, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	b2, err := board.NewBoardState("4k3/8/8/8/8/5r2/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)

	unblocked := Generate(b, AllMoves)
	blocked := Generate(b2, AllMoves)

	hasKingSideCastle := func(successors []Successor) bool {
		for _, s := range successors {
			if s.Move.IsCastling() && s.Move.To().File() == 6 {
				return true
			}
		}
		return false
	}
	assert.True(t, hasKingSideCastle(unblocked))
	assert.False(t, hasKingSideCastle(blocked))
}

func TestHasLegalMoveDetectsCheckmate(t *testing.T) {
	// fool's mate final position, black to move is not relevant here;
	// white has just been mated.
	b := mustBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.False(t, HasLegalMove(b))
	assert.True(t, InCheck(b, White))
}

func TestHasLegalMoveStalemate(t *testing.T) {
	b := mustBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.False(t, HasLegalMove(b))
	assert.False(t, InCheck(b, Black))
}

// Unit-level: each piece-type generator on an otherwise empty board
// from its canonical center square.
func TestLeaperAndSliderMoveCountsFromCenter(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want int
	}{
		{"knight", "8/8/8/3N4/8/8/8/4k2K w - - 0 1", 8},
		{"king", "8/8/8/3K4/8/8/8/7k w - - 0 1", 8},
		{"rook", "8/8/8/3R4/8/8/8/4k2K w - - 0 1", 14},
		{"bishop", "8/8/8/3B4/8/8/8/K3k3 w - - 0 1", 13},
		{"queen", "8/8/8/3Q4/8/8/8/K3k3 w - - 0 1", 27},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, tc.fen)
			var count int
			for _, s := range Generate(b, AllMoves) {
				if s.Move.From() == MakeSquare("d5") {
					count++
				}
			}
			assert.Equal(t, tc.want, count)
		})
	}
}
