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

package testsuite

import (
	"time"

	"github.com/haldorsen/corvid/internal/board"
	"github.com/haldorsen/corvid/internal/movegen"
)

// PerftScenario names one of the reference positions whose leaf-node
// counts at increasing depth are known exactly.
type PerftScenario struct {
	Name     string
	FEN      string
	Expected []uint64 // Expected[i] is the node count at depth i+1
}

// Scenarios is the fixed reference set run by this runner and the
// CLI's -perftsuite flag. movegen's own tests keep their own copy of
// these positions and counts; they do not read this variable.
var Scenarios = []PerftScenario{
	{
		Name:     "startpos",
		FEN:      "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Expected: []uint64{20, 400, 8902, 197281, 4865609},
	},
	{
		Name:     "kiwipete",
		FEN:      "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		Expected: []uint64{48, 2039, 97862, 4085603},
	},
	{
		Name:     "endgame",
		FEN:      "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		Expected: []uint64{14, 191, 2812, 43238, 674624},
	},
	{
		Name:     "promotion-castling-mix",
		FEN:      "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		Expected: []uint64{6, 264, 9467, 422333},
	},
	{
		Name:     "promotion-castling-mix-mirrored",
		FEN:      "r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1",
		Expected: []uint64{6, 264, 9467, 422333},
	},
}

// PerftScenarioResult is one scenario's per-depth pass/fail record.
type PerftScenarioResult struct {
	Scenario PerftScenario
	Actual   []uint64
	Elapsed  []time.Duration
}

// Passed reports whether every depth in the scenario matched its
// expected node count.
func (r PerftScenarioResult) Passed() bool {
	for i, want := range r.Scenario.Expected {
		if r.Actual[i] != want {
			return false
		}
	}
	return true
}

// RunPerftScenario walks s.FEN to each depth named in s.Expected and
// records movegen.Perft's node counts.
func RunPerftScenario(s PerftScenario) (PerftScenarioResult, error) {
	b, err := board.NewBoardState(s.FEN)
	if err != nil {
		return PerftScenarioResult{}, err
	}
	result := PerftScenarioResult{
		Scenario: s,
		Actual:   make([]uint64, len(s.Expected)),
		Elapsed:  make([]time.Duration, len(s.Expected)),
	}
	for i := range s.Expected {
		r := movegen.Perft(b, i+1)
		result.Actual[i] = r.Nodes
		result.Elapsed[i] = r.Elapsed
	}
	return result, nil
}

// RunAllScenarios runs every entry of Scenarios in turn.
func RunAllScenarios() ([]PerftScenarioResult, error) {
	results := make([]PerftScenarioResult, 0, len(Scenarios))
	for _, s := range Scenarios {
		r, err := RunPerftScenario(s)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
