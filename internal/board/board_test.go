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

package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haldorsen/corvid/internal/board"
	. "github.com/haldorsen/corvid/internal/types"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestNewBoardStateStartingPosition(t *testing.T) {
	b, err := board.NewBoardState(startFEN)
	assert.NoError(t, err)
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, SqNone, b.PawnDoubleMove())
	assert.Equal(t, MakeSquare("e1"), b.KingSquare(White))
	assert.Equal(t, MakeSquare("e8"), b.KingSquare(Black))
	assert.True(t, b.CastlingRights().Has(WhiteOO))
	assert.True(t, b.CastlingRights().Has(WhiteOOO))
	assert.True(t, b.CastlingRights().Has(BlackOO))
	assert.True(t, b.CastlingRights().Has(BlackOOO))

	p, ok := b.PieceAt(MakeSquare("e1"))
	assert.True(t, ok)
	assert.Equal(t, NewPiece(White, King), p)

	_, ok = b.PieceAt(MakeSquare("e4"))
	assert.False(t, ok)
}

func TestNewBoardStateRejectsMalformedInput(t *testing.T) {
	_, err := board.NewBoardState("not a fen")
	assert.Error(t, err)

	_, err = board.NewBoardState("8/8/8/8/8/8/8/8 w KQkq - 0 1")
	assert.Error(t, err, "a board with no kings must be rejected")

	_, err = board.NewBoardState("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.Error(t, err, "side to move must be w or b")
}

func TestZobristKeyIsDeterministic(t *testing.T) {
	a, err := board.NewBoardState(startFEN)
	assert.NoError(t, err)
	b, err := board.NewBoardState(startFEN)
	assert.NoError(t, err)
	assert.Equal(t, a.ZobristKey(), b.ZobristKey())
	assert.NotZero(t, a.ZobristKey())
}

// The incrementally maintained key must always equal a from-scratch rehash.
func TestZobristKeyMatchesRehash(t *testing.T) {
	fens := []string{
		startFEN,
		"rnbqkbnr/1ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		b, err := board.NewBoardState(fen)
		assert.NoError(t, err, fen)
		assert.Equal(t, b.Rehash(), b.ZobristKey(), fen)
	}
}

func TestFENRoundTrip(t *testing.T) {
	b, err := board.NewBoardState(startFEN)
	assert.NoError(t, err)
	reparsed, err := board.NewBoardState(b.FEN())
	assert.NoError(t, err)
	assert.Equal(t, b.ZobristKey(), reparsed.ZobristKey())
	assert.Equal(t, b.FEN(), reparsed.FEN())
}

func TestApplyMoveDoesNotMutateParent(t *testing.T) {
	parent, err := board.NewBoardState(startFEN)
	assert.NoError(t, err)
	m := NewMove(MakeSquare("e2"), MakeSquare("e4"), King, Normal)
	child := parent.ApplyMove(m)

	assert.Equal(t, White, parent.SideToMove())
	p, ok := parent.PieceAt(MakeSquare("e2"))
	assert.True(t, ok)
	assert.Equal(t, NewPiece(White, Pawn), p)

	assert.Equal(t, Black, child.SideToMove())
	_, ok = child.PieceAt(MakeSquare("e2"))
	assert.False(t, ok)
	p, ok = child.PieceAt(MakeSquare("e4"))
	assert.True(t, ok)
	assert.Equal(t, NewPiece(White, Pawn), p)
}

func TestApplyMovePawnDoublePushSetsEnPassantTarget(t *testing.T) {
	parent, err := board.NewBoardState(startFEN)
	assert.NoError(t, err)
	m := NewMove(MakeSquare("e2"), MakeSquare("e4"), King, Normal)
	child := parent.ApplyMove(m)

	assert.Equal(t, MakeSquare("e3"), child.PawnDoubleMove())
	assert.Equal(t, child.Rehash(), child.ZobristKey())
	assert.Equal(t, m, child.LastMove())
}

func TestApplyMoveClearsStalePawnDoubleMove(t *testing.T) {
	parent, err := board.NewBoardState(startFEN)
	assert.NoError(t, err)
	afterPush := parent.ApplyMove(NewMove(MakeSquare("e2"), MakeSquare("e4"), King, Normal))
	assert.Equal(t, MakeSquare("e3"), afterPush.PawnDoubleMove())

	afterReply := afterPush.ApplyMove(NewMove(MakeSquare("b8"), MakeSquare("c6"), King, Normal))
	assert.Equal(t, SqNone, afterReply.PawnDoubleMove())
	assert.Equal(t, afterReply.Rehash(), afterReply.ZobristKey())
}

func TestApplyMoveCapture(t *testing.T) {
	b, err := board.NewBoardState("rnbqkbnr/pppp1ppp/8/4p3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 1")
	assert.NoError(t, err)
	capture := NewMove(MakeSquare("d4"), MakeSquare("e5"), King, Normal)
	child := b.ApplyMove(capture)

	p, ok := child.PieceAt(MakeSquare("e5"))
	assert.True(t, ok)
	assert.Equal(t, NewPiece(White, Pawn), p)
	assert.Equal(t, 15, child.OrderHeuristic()) // pawn takes pawn: mvvLva[Pawn][Pawn]
	assert.Equal(t, child.Rehash(), child.ZobristKey())
}

func TestApplyMoveQuietMoveHasMinimalOrderHeuristic(t *testing.T) {
	b, err := board.NewBoardState(startFEN)
	assert.NoError(t, err)
	child := b.ApplyMove(NewMove(MakeSquare("g1"), MakeSquare("f3"), King, Normal))
	assert.Less(t, child.OrderHeuristic(), 0)
}

func TestApplyMoveCastlingKingSide(t *testing.T) {
	b, err := board.NewBoardState("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	m := NewMove(MakeSquare("e1"), MakeSquare("g1"), King, CastlingMove)
	child := b.ApplyMove(m)

	king, ok := child.PieceAt(MakeSquare("g1"))
	assert.True(t, ok)
	assert.Equal(t, NewPiece(White, King), king)
	rook, ok := child.PieceAt(MakeSquare("f1"))
	assert.True(t, ok)
	assert.Equal(t, NewPiece(White, Rook), rook)
	_, ok = child.PieceAt(MakeSquare("h1"))
	assert.False(t, ok)
	_, ok = child.PieceAt(MakeSquare("e1"))
	assert.False(t, ok)

	assert.Equal(t, MakeSquare("g1"), child.KingSquare(White))
	assert.False(t, child.CastlingRights().Has(WhiteOO))
	assert.False(t, child.CastlingRights().Has(WhiteOOO))
	assert.True(t, child.CastlingRights().Has(BlackOO))
	assert.Equal(t, child.Rehash(), child.ZobristKey())
}

func TestApplyMoveCastlingQueenSide(t *testing.T) {
	b, err := board.NewBoardState("r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	assert.NoError(t, err)
	m := NewMove(MakeSquare("e8"), MakeSquare("c8"), King, CastlingMove)
	child := b.ApplyMove(m)

	rook, ok := child.PieceAt(MakeSquare("d8"))
	assert.True(t, ok)
	assert.Equal(t, NewPiece(Black, Rook), rook)
	assert.Equal(t, MakeSquare("c8"), child.KingSquare(Black))
	assert.False(t, child.CastlingRights().Has(BlackOO))
	assert.False(t, child.CastlingRights().Has(BlackOOO))
	assert.Equal(t, child.Rehash(), child.ZobristKey())
}

func TestApplyMoveEnPassant(t *testing.T) {
	b, err := board.NewBoardState("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)
	m := NewMove(MakeSquare("e5"), MakeSquare("d6"), King, EnPassantMove)
	child := b.ApplyMove(m)

	_, ok := child.PieceAt(MakeSquare("d5"))
	assert.False(t, ok, "captured pawn must be removed")
	_, ok = child.PieceAt(MakeSquare("e5"))
	assert.False(t, ok)
	p, ok := child.PieceAt(MakeSquare("d6"))
	assert.True(t, ok)
	assert.Equal(t, NewPiece(White, Pawn), p)
	assert.Equal(t, SqNone, child.PawnDoubleMove())
	assert.Equal(t, child.Rehash(), child.ZobristKey())
}

func TestApplyMovePromotion(t *testing.T) {
	b, err := board.NewBoardState("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	m := NewMove(MakeSquare("a7"), MakeSquare("a8"), Queen, PromotionMove)
	child := b.ApplyMove(m)

	p, ok := child.PieceAt(MakeSquare("a8"))
	assert.True(t, ok)
	assert.Equal(t, NewPiece(White, Queen), p)
	promo, ok := child.PawnPromotion()
	assert.True(t, ok)
	assert.Equal(t, Queen, promo)
	assert.Equal(t, 800, child.OrderHeuristic())
	assert.Equal(t, child.Rehash(), child.ZobristKey())
}

func TestApplyMoveCastlingRightClearedWhenRookCaptured(t *testing.T) {
	b, err := board.NewBoardState("r3k3/1P6/8/8/8/8/8/4K3 w q - 0 1")
	assert.NoError(t, err)
	assert.True(t, b.CastlingRights().Has(BlackOOO))

	m := NewMove(MakeSquare("b7"), MakeSquare("a8"), Queen, PromotionMove)
	child := b.ApplyMove(m)

	q, ok := child.PieceAt(MakeSquare("a8"))
	assert.True(t, ok)
	assert.Equal(t, NewPiece(White, Queen), q)
	assert.False(t, child.CastlingRights().Has(BlackOOO), "capturing the rook on a8 must clear the right")
	assert.Equal(t, child.Rehash(), child.ZobristKey())
}

func TestApplyMoveCastlingRightClearedWhenRookVacatesWithoutKingMove(t *testing.T) {
	b, err := board.NewBoardState("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)
	m := NewMove(MakeSquare("a1"), MakeSquare("a4"), King, Normal)
	child := b.ApplyMove(m)

	assert.False(t, child.CastlingRights().Has(WhiteOOO))
	assert.True(t, child.CastlingRights().Has(WhiteOO), "unrelated right must survive")
	assert.Equal(t, child.Rehash(), child.ZobristKey())
}
