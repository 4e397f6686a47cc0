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

// Package movegen generates the legal successor BoardStates available
// to the side to move. Generation is pull-based rather than
// incremental: every call re-derives moves from the mailbox, and
// legality is decided by applying a pseudo-legal move and checking
// whether the mover's own king ends up attacked, rather than by
// pin/check bookkeeping threaded through generation.
package movegen

import (
	"github.com/haldorsen/corvid/internal/board"
	"github.com/haldorsen/corvid/internal/logging"
	. "github.com/haldorsen/corvid/internal/types"
)

var log = logging.GetLog("movegen")

// Mode selects which pseudo-legal moves are produced. CapturesOnly
// feeds quiescence search, where quiet moves would only widen the
// tree without resolving tactics.
type Mode int

const (
	AllMoves Mode = iota
	CapturesOnly
)

// Successor pairs a legal move with the BoardState it produces, so
// search does not need to re-apply the move to recurse into it.
type Successor struct {
	Move  Move
	State *board.BoardState
}

// Generate returns every legal successor of b for the side to move in
// mode. A pseudo-legal move is legal iff, after playing it, the
// mover's own king is not attacked.
func Generate(b *board.BoardState, mode Mode) []Successor {
	mover := b.SideToMove()
	pseudo := pseudoLegalMoves(b, mode)
	successors := make([]Successor, 0, len(pseudo))
	for _, m := range pseudo {
		child := b.ApplyMove(m)
		if IsSquareAttacked(child, child.KingSquare(mover), child.SideToMove()) {
			continue
		}
		successors = append(successors, Successor{Move: m, State: child})
	}
	return successors
}

// HasLegalMove reports whether b's side to move has at least one
// legal move, without building the full successor slice. Used by
// search to distinguish checkmate from stalemate.
func HasLegalMove(b *board.BoardState) bool {
	mover := b.SideToMove()
	for _, m := range pseudoLegalMoves(b, AllMoves) {
		child := b.ApplyMove(m)
		if !IsSquareAttacked(child, child.KingSquare(mover), child.SideToMove()) {
			return true
		}
	}
	return false
}

func pseudoLegalMoves(b *board.BoardState, mode Mode) []Move {
	us := b.SideToMove()
	moves := make([]Move, 0, 48)
	for row := 2; row <= 9; row++ {
		for col := 2; col <= 9; col++ {
			sq := NewSquare(row, col)
			p, ok := b.PieceAt(sq)
			if !ok || p.Color != us {
				continue
			}
			switch p.Kind {
			case Pawn:
				moves = genPawnMoves(b, sq, us, mode, moves)
			case Knight:
				moves = genLeaperMoves(b, sq, us, mode, knightOffsets[:], moves)
			case King:
				moves = genLeaperMoves(b, sq, us, mode, kingOffsets[:], moves)
			case Bishop:
				moves = genSliderMoves(b, sq, us, mode, bishopDirs[:], moves)
			case Rook:
				moves = genSliderMoves(b, sq, us, mode, rookDirs[:], moves)
			case Queen:
				moves = genSliderMoves(b, sq, us, mode, bishopDirs[:], moves)
				moves = genSliderMoves(b, sq, us, mode, rookDirs[:], moves)
			}
		}
	}
	if mode == AllMoves {
		moves = genCastling(b, us, moves)
	}
	return moves
}

func genLeaperMoves(b *board.BoardState, from Square, us Color, mode Mode, offsets [][2]int, moves []Move) []Move {
	for _, d := range offsets {
		to := from.Offset(d[0], d[1])
		if !to.IsValid() || !to.IsOnBoard() {
			continue
		}
		if target, occupied := b.PieceAt(to); occupied {
			if target.Color != us {
				moves = append(moves, NewMove(from, to, King, Normal))
			}
			continue
		}
		if mode == AllMoves {
			moves = append(moves, NewMove(from, to, King, Normal))
		}
	}
	return moves
}

func genSliderMoves(b *board.BoardState, from Square, us Color, mode Mode, dirs [][2]int, moves []Move) []Move {
	for _, d := range dirs {
		to := from
		for {
			to = to.Offset(d[0], d[1])
			if !to.IsValid() || !to.IsOnBoard() {
				break
			}
			target, occupied := b.PieceAt(to)
			if occupied {
				if target.Color != us {
					moves = append(moves, NewMove(from, to, King, Normal))
				}
				break
			}
			if mode == AllMoves {
				moves = append(moves, NewMove(from, to, King, Normal))
			}
		}
	}
	return moves
}

func genPawnMoves(b *board.BoardState, from Square, us Color, mode Mode, moves []Move) []Move {
	fwd := forwardDir(us)
	startRow, promoRow := pawnStartRow(us), pawnPromoRow(us)

	if mode == AllMoves {
		if one := from.Offset(fwd, 0); one.IsValid() && one.IsOnBoard() {
			if _, occ := b.PieceAt(one); !occ {
				moves = appendPawnMove(moves, from, one, promoRow)
				if from.Row() == startRow {
					if two := from.Offset(2*fwd, 0); two.IsValid() && two.IsOnBoard() {
						if _, occ2 := b.PieceAt(two); !occ2 {
							moves = append(moves, NewMove(from, two, King, Normal))
						}
					}
				}
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(fwd, dc)
		if !to.IsValid() || !to.IsOnBoard() {
			continue
		}
		if target, occ := b.PieceAt(to); occ {
			if target.Color != us {
				moves = appendPawnMove(moves, from, to, promoRow)
			}
		} else if b.PawnDoubleMove() == to {
			moves = append(moves, NewMove(from, to, King, EnPassantMove))
		}
	}
	return moves
}

// appendPawnMove expands a pawn's destination into the four
// promotion moves when it lands on the last rank, or a single normal
// move otherwise.
func appendPawnMove(moves []Move, from, to Square, promoRow int) []Move {
	if to.Row() != promoRow {
		return append(moves, NewMove(from, to, King, Normal))
	}
	return append(moves,
		NewMove(from, to, Queen, PromotionMove),
		NewMove(from, to, Rook, PromotionMove),
		NewMove(from, to, Bishop, PromotionMove),
		NewMove(from, to, Knight, PromotionMove))
}

func pawnStartRow(c Color) int {
	if c == White {
		return 8
	}
	return 3
}

func pawnPromoRow(c Color) int {
	if c == White {
		return 2
	}
	return 9
}

var (
	sqE1 = SquareFromFileRank(4, 0)
	sqF1 = SquareFromFileRank(5, 0)
	sqG1 = SquareFromFileRank(6, 0)
	sqD1 = SquareFromFileRank(3, 0)
	sqC1 = SquareFromFileRank(2, 0)
	sqB1 = SquareFromFileRank(1, 0)
	sqE8 = SquareFromFileRank(4, 7)
	sqF8 = SquareFromFileRank(5, 7)
	sqG8 = SquareFromFileRank(6, 7)
	sqD8 = SquareFromFileRank(3, 7)
	sqC8 = SquareFromFileRank(2, 7)
	sqB8 = SquareFromFileRank(1, 7)
)

// genCastling appends the castling moves still available to us. It
// does not check that a rook actually sits on the corner square:
// BoardState.ApplyMove's corner-square bookkeeping guarantees the
// right is already cleared the instant that rook leaves home or is
// captured, so a set right always implies the rook is still there.
func genCastling(b *board.BoardState, us Color, moves []Move) []Move {
	opp := us.Opposite()
	rights := b.CastlingRights()
	if us == White {
		if rights.Has(WhiteOO) && allEmpty(b, sqF1, sqG1) && noneAttacked(b, opp, sqE1, sqF1, sqG1) {
			moves = append(moves, NewMove(sqE1, sqG1, King, CastlingMove))
		}
		if rights.Has(WhiteOOO) && allEmpty(b, sqB1, sqC1, sqD1) && noneAttacked(b, opp, sqE1, sqD1, sqC1) {
			moves = append(moves, NewMove(sqE1, sqC1, King, CastlingMove))
		}
	} else {
		if rights.Has(BlackOO) && allEmpty(b, sqF8, sqG8) && noneAttacked(b, opp, sqE8, sqF8, sqG8) {
			moves = append(moves, NewMove(sqE8, sqG8, King, CastlingMove))
		}
		if rights.Has(BlackOOO) && allEmpty(b, sqB8, sqC8, sqD8) && noneAttacked(b, opp, sqE8, sqD8, sqC8) {
			moves = append(moves, NewMove(sqE8, sqC8, King, CastlingMove))
		}
	}
	return moves
}

func allEmpty(b *board.BoardState, squares ...Square) bool {
	for _, sq := range squares {
		if _, occupied := b.PieceAt(sq); occupied {
			return false
		}
	}
	return true
}

func noneAttacked(b *board.BoardState, by Color, squares ...Square) bool {
	for _, sq := range squares {
		if IsSquareAttacked(b, sq, by) {
			return false
		}
	}
	return true
}
