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

import (
	"math"
	"sort"

	"github.com/haldorsen/corvid/internal/board"
	"github.com/haldorsen/corvid/internal/config"
	"github.com/haldorsen/corvid/internal/movegen"
	"github.com/haldorsen/corvid/internal/ttable"
	. "github.com/haldorsen/corvid/internal/types"
	"github.com/haldorsen/corvid/internal/zobrist"
)

// quietOrderHeuristic mirrors board's unexported noCaptureOrder: the
// order_heuristic value BoardState.ApplyMove assigns to a quiet
// (non-capture, non-promotion) move, the minimum possible int32. A
// killer move is by definition quiet, so this is how the search
// recognizes one to store without needing board to export the concept.
const quietOrderHeuristic = math.MinInt32

// checkInterval is how often (in visited nodes) a recursing node polls
// the time controller.
const checkInterval = 2048

// timeUp reports whether the search must stop now: either Stop was
// called, or the time controller's deadline has passed. Once true it
// is sticky for the rest of this search (stopFlag only resets in the
// next Go call).
func (s *Search) timeUp() bool {
	if s.stopFlag.Load() {
		return true
	}
	if s.limits.TimeControl && s.clock.Expired() {
		s.stopFlag.Store(true)
		return true
	}
	return false
}

// pollTime is timeUp but rate-limited to every checkInterval nodes, for
// call sites inside the recursive search where checking on every node
// would itself be a meaningful overhead.
func (s *Search) pollTime() bool {
	if s.nodes&(checkInterval-1) == 0 && s.timeUp() {
		return true
	}
	return s.stopFlag.Load()
}

// rootSearch runs one full-width search at the root, populating s.pv
// with the new best line and returning the best score and move found.
// It is the same algorithm as negamax but kept separate because the
// root always has at least one legal move already in hand (checked by
// the caller) and always records its own PV, rather than receiving a
// pvLine pointer from a parent.
func (s *Search) rootSearch(b *board.BoardState, successors []movegen.Successor, depth int, alpha, beta int) (int, Move) {
	ttMove := s.probeTTMove(b)
	s.orderSuccessors(successors, ttMove, 0)

	origAlpha := alpha
	bestScore := -Infinity
	bestMove := successors[0].Move
	var childPV MoveList

	for i := range successors {
		succ := successors[i]
		key := succ.State.ZobristKey()

		var score int
		if s.rep.WouldRepeatThreefold(key) {
			score = 0
		} else {
			s.rep.Push(key)
			childPV = childPV[:0]
			score = -s.negamax(succ.State, depth-1, 1, -beta, -alpha, &childPV)
			s.rep.Pop(key)
		}

		if s.stopFlag.Load() {
			return bestScore, bestMove
		}

		if score > bestScore || i == 0 {
			bestScore = score
			bestMove = succ.Move
		}
		if score > alpha {
			alpha = score
			s.pv = append(s.pv[:0], succ.Move)
			s.pv = append(s.pv, childPV...)
			if alpha >= beta {
				s.stats.BetaCutoffs++
				if i == 0 {
					s.stats.BetaCutoffs1++
				}
				break
			}
		}
	}

	if config.Settings.Search.UseTT {
		s.storeTT(b.ZobristKey(), depth, 0, bestScore, origAlpha, beta, bestMove)
	}
	return bestScore, bestMove
}

// negamax is the interior-node search: transposition lookup,
// terminal/draw detection, quiescence handoff at the horizon, move
// ordering, recursion, killer/PV/TT bookkeeping.
func (s *Search) negamax(b *board.BoardState, depth, ply int, alpha, beta int, pvLine *MoveList) int {
	s.nodes++
	s.stats.Nodes++
	if ply > s.stats.SelDepth {
		s.stats.SelDepth = ply
	}
	if s.pollTime() {
		return 0
	}

	key := b.ZobristKey()
	origAlpha := alpha

	ttMove := MoveNone
	if config.Settings.Search.UseTT {
		if e, ok := s.tt.Probe(key); ok {
			s.stats.TTHits++
			if m, has := e.Move(); has {
				ttMove = m
			}
			if e.Depth >= depth {
				score := valueFromTT(e.Score, ply)
				switch e.Bound {
				case ttable.Exact:
					*pvLine = (*pvLine)[:0]
					return score
				case ttable.LowerBound:
					if score > alpha {
						alpha = score
					}
				case ttable.UpperBound:
					if score < beta {
						beta = score
					}
				}
				if alpha >= beta {
					s.stats.TTCuts++
					return score
				}
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(b, ply, alpha, beta)
	}

	successors := movegen.Generate(b, movegen.AllMoves)
	if len(successors) == 0 {
		if movegen.IsSquareAttacked(b, b.KingSquare(b.SideToMove()), b.SideToMove().Opposite()) {
			s.stats.Checkmates++
			return -Mate + ply
		}
		s.stats.Stalemates++
		return 0
	}

	s.orderSuccessors(successors, ttMove, ply)

	bestScore := -Infinity
	bestMove := MoveNone
	var childPV MoveList

	for i := range successors {
		succ := successors[i]
		childKey := succ.State.ZobristKey()

		var score int
		if s.rep.WouldRepeatThreefold(childKey) {
			score = 0
		} else {
			s.rep.Push(childKey)
			childPV = childPV[:0]
			score = -s.negamax(succ.State, depth-1, ply+1, -beta, -alpha, &childPV)
			s.rep.Pop(childKey)
		}

		if s.stopFlag.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = succ.Move
			if score > alpha {
				alpha = score
				*pvLine = append((*pvLine)[:0], succ.Move)
				*pvLine = append(*pvLine, childPV...)
				if alpha >= beta {
					s.stats.BetaCutoffs++
					if i == 0 {
						s.stats.BetaCutoffs1++
					}
					if succ.State.OrderHeuristic() == quietOrderHeuristic {
						s.killers.store(ply, succ.Move)
					}
					break
				}
			}
		}
	}

	if config.Settings.Search.UseTT && !s.stopFlag.Load() {
		s.storeTT(key, depth, ply, bestScore, origAlpha, beta, bestMove)
	}
	return bestScore
}

// quiescence resolves tactical sequences past the nominal horizon by
// only considering captures, using the static evaluation as a
// stand-pat lower bound.
func (s *Search) quiescence(b *board.BoardState, ply int, alpha, beta int) int {
	s.nodes++
	s.stats.Nodes++
	if ply > s.stats.SelDepth {
		s.stats.SelDepth = ply
	}
	if s.pollTime() {
		return 0
	}

	standPat := s.eval.Evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= maxPly || !config.Settings.Search.UseQuiescence {
		return alpha
	}

	captures := movegen.Generate(b, movegen.CapturesOnly)
	sort.SliceStable(captures, func(i, j int) bool {
		return captures[i].State.OrderHeuristic() > captures[j].State.OrderHeuristic()
	})

	for _, succ := range captures {
		score := -s.quiescence(succ.State, ply+1, -beta, -alpha)
		if s.stopFlag.Load() {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// probeTTMove looks up b's transposition entry purely for its stored
// best move, ignoring depth/bound - used to seed move ordering before
// the depth-gated lookup inside negamax/rootSearch runs again.
func (s *Search) probeTTMove(b *board.BoardState) Move {
	if !config.Settings.Search.UseTT {
		return MoveNone
	}
	if e, ok := s.tt.Probe(b.ZobristKey()); ok {
		if m, has := e.Move(); has {
			return m
		}
	}
	return MoveNone
}

// storeTT records the result of searching key to the transposition
// table, deriving the bound type from how bestScore relates to the
// window it was found in.
func (s *Search) storeTT(key zobrist.Key, depth, ply, bestScore, alpha, beta int, move Move) {
	bound := ttable.Exact
	switch {
	case bestScore <= alpha:
		bound = ttable.UpperBound
	case bestScore >= beta:
		bound = ttable.LowerBound
	}
	s.tt.Store(key, depth, valueToTT(bestScore, ply), bound, move)
}

// orderSuccessors sorts successors in place by a four-tier move
// ordering: transposition-table move, previous iteration's PV move at
// this ply, either killer for this ply, then descending order_heuristic
// (MVV-LVA for captures/promotions, the minimum for quiet moves).
func (s *Search) orderSuccessors(successors []movegen.Successor, ttMove Move, ply int) {
	var pvMove Move = MoveNone
	if ply < len(s.pvMoves) {
		pvMove = s.pvMoves[ply]
	}
	tier := func(m Move) int {
		switch {
		case ttMove != MoveNone && m == ttMove:
			return 0
		case pvMove != MoveNone && m == pvMove:
			return 1
		case config.Settings.Search.UseKillers && s.killers.isKiller(ply, m):
			return 2
		default:
			return 3
		}
	}
	sort.SliceStable(successors, func(i, j int) bool {
		ti, tj := tier(successors[i].Move), tier(successors[j].Move)
		if ti != tj {
			return ti < tj
		}
		return successors[i].State.OrderHeuristic() > successors[j].State.OrderHeuristic()
	})
}
