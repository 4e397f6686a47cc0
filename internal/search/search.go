//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package search implements the engine's iterative-deepening
// alpha-beta driver: move ordering by TT/PV/killer/order_heuristic,
// transposition-table cutoffs, repetition-table draw scoring, mate/
// stalemate terminal detection, and quiescence at the horizon.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/haldorsen/corvid/internal/board"
	"github.com/haldorsen/corvid/internal/config"
	"github.com/haldorsen/corvid/internal/evaluator"
	myLogging "github.com/haldorsen/corvid/internal/logging"
	"github.com/haldorsen/corvid/internal/movegen"
	"github.com/haldorsen/corvid/internal/reptable"
	"github.com/haldorsen/corvid/internal/timectl"
	"github.com/haldorsen/corvid/internal/ttable"
	. "github.com/haldorsen/corvid/internal/types"
	"github.com/haldorsen/corvid/internal/util"
	"github.com/haldorsen/corvid/internal/zobrist"
)

var out = message.NewPrinter(language.German)

// Search is the engine's search worker. It owns the transposition
// table, repetition table and evaluator used across the lifetime of a
// game, and reinitializes its per-search state (killers, PV, node
// count, statistics) at the top of every Go call. Not safe for
// concurrent use: sem is exactly what enforces that a single goroutine
// ever runs a search at a time.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	sem *semaphore.Weighted

	tt   *ttable.Table
	rep  *reptable.Table
	eval *evaluator.Evaluator

	stopFlag *util.Bool
	clock    *timectl.Controller

	startTime time.Time
	limits    Limits

	nodes   uint64
	stats   Statistics
	killers killerTable
	pvMoves MoveList // previous iteration's PV, used to seed move ordering
	pv      MoveList // PV being assembled by the iteration in progress
}

// NewSearch creates a Search ready for repeated Go calls across a
// single game; call NewGame between games to clear its tables.
func NewSearch() *Search {
	return &Search{
		log:      myLogging.GetLog("search"),
		slog:     getSearchTraceLog(),
		sem:      semaphore.NewWeighted(1),
		tt:       ttable.New(config.Settings.Search.TTSizeMB),
		rep:      reptable.New(),
		eval:     evaluator.New(),
		stopFlag: util.NewBool(false),
		clock:    timectl.New(),
	}
}

// NewGame clears the transposition and repetition tables for a new
// game, matching UCI's "ucinewgame".
func (s *Search) NewGame() {
	s.tt.Clear()
	s.rep.Clear()
}

// ResizeHash reallocates the transposition table to sizeMB. Must not
// be called while a search is running.
func (s *Search) ResizeHash(sizeMB int) {
	s.tt.Resize(sizeMB)
}

// RecordPlayed registers key as a position actually reached by a move
// played in the real game, as opposed to one only visited inside a
// search's own recursion (Go's rootSearch/negamax Push every
// successor they descend into, but Pop it again on the way back out,
// so none of that leaves a trace once Go returns). Without a
// permanent record of the game's own history, a position repeated
// three times across successive "position ... moves ..." commands
// would never look different from one visited for the first time.
// Call once per move actually applied, including the move that
// produces the position a following Go call will search from.
func (s *Search) RecordPlayed(key zobrist.Key) {
	s.rep.Push(key)
}

// ResetHistory discards the played-game history RecordPlayed has
// accumulated, without touching the transposition table. A UCI
// "position" command always restates the game from its starting
// position or FEN, so the history it implies must replace whatever
// came before rather than add to it.
func (s *Search) ResetHistory() {
	s.rep.Clear()
}

// Go runs iterative deepening on b under limits and returns the best
// result found (or the best found before time ran out). ctx governs
// only the wait to acquire the search's serializing semaphore: a
// caller that wants to cancel a Go call still queued behind a running
// one should cancel ctx, not wait for Stop (Stop only affects a
// search already in progress).
func (s *Search) Go(ctx context.Context, b *board.BoardState, limits Limits) (Result, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return Result{}, err
	}
	defer s.sem.Release(1)

	s.startTime = time.Now()
	s.limits = limits
	s.stopFlag.Store(false)
	s.nodes = 0
	s.stats = Statistics{}
	s.killers = killerTable{}
	s.pvMoves = nil
	s.pv = nil

	if limits.TimeControl {
		s.clock.Start(s.budgetFor(b, limits))
	} else {
		s.clock.Stop()
	}

	result := s.iterativeDeepening(b)
	result.SearchTime = time.Since(s.startTime)
	result.Nodes = s.nodes
	s.log.Infof("search finished: %s nodes=%d nps=%d time=%s",
		result.BestMove.StringUci(), s.nodes, util.Nps(s.nodes, result.SearchTime), result.SearchTime)
	return result, nil
}

// Stop requests that a running Go call abort as soon as it next polls
// the stop flag. It has no effect if no search is running.
func (s *Search) Stop() {
	s.stopFlag.Store(true)
}

// iterativeDeepening runs successive full-width searches at increasing
// depth, stopping at config.Settings.Search.MaxDepth, a
// limits.Depth cap, a proven forced mate, or a time-out. A time-out
// mid-iteration discards that iteration's partial result entirely;
// the returned Result is from the last iteration that ran to
// completion, or, if none did, holds the first generated move with a
// zero value and depth.
func (s *Search) iterativeDeepening(b *board.BoardState) Result {
	// b itself, not just a position reachable from it, can already be a
	// threefold repetition: RecordPlayed pushes every real move applied,
	// including the one that produced b, so by the time a search starts
	// from b its own count already reflects how many times it has
	// actually occurred in the game. WouldRepeatThreefold (count==2) is
	// the right test for a position about to be descended into for the
	// first time; here the occurrence already happened, so the test is
	// count reaching 3, not 2.
	if s.rep.Count(b.ZobristKey()) >= 3 {
		return Result{BestMove: MoveNone, Value: 0}
	}

	successors := movegen.Generate(b, movegen.AllMoves)
	if len(successors) == 0 {
		if movegen.IsSquareAttacked(b, b.KingSquare(b.SideToMove()), b.SideToMove().Opposite()) {
			return Result{BestMove: MoveNone, Value: -Mate}
		}
		return Result{BestMove: MoveNone, Value: 0}
	}

	maxDepth := config.Settings.Search.MaxDepth
	if s.limits.Depth > 0 && s.limits.Depth < maxDepth {
		maxDepth = s.limits.Depth
	}

	result := Result{BestMove: successors[0].Move}
	for depth := 1; depth <= maxDepth; depth++ {
		if s.timeUp() {
			break
		}
		s.stats.CurrentDepth = depth

		score, move := s.rootSearch(b, successors, depth, -Infinity, Infinity)
		if s.stopFlag.Load() {
			break
		}

		result = Result{BestMove: move, Value: score, Depth: depth, PV: s.pv.Clone()}
		s.pvMoves = result.PV

		if s.limits.Nodes > 0 && s.nodes >= s.limits.Nodes {
			break
		}
		if len(successors) == 1 {
			break
		}
		if isMateScore(score) {
			break
		}
	}
	return result
}

// budgetFor computes the time allowance for the move about to be
// searched, from either a fixed move time or the remaining clock via
// timectl.Budget.
func (s *Search) budgetFor(b *board.BoardState, limits Limits) time.Duration {
	if limits.MoveTime > 0 {
		return limits.MoveTime
	}
	clock, inc := limits.WhiteTime, limits.WhiteInc
	if b.SideToMove() == Black {
		clock, inc = limits.BlackTime, limits.BlackInc
	}
	return timectl.Budget(clock, inc, limits.MovesToGo)
}

// Statistics returns the statistics gathered by the most recent Go call.
func (s *Search) Statistics() Statistics {
	return s.stats
}

// NodesVisited returns the node count of the most recent Go call.
func (s *Search) NodesVisited() uint64 {
	return s.nodes
}
