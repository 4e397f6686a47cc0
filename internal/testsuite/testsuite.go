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

// Package testsuite runs chess test positions given as EPD (Extended
// Position Description) lines against the engine's search, plus the
// fixed perft scenarios (perftsuite.go). EPD lines carry a FEN plus
// metadata describing the expected result; of EPD's many opcodes only
// "bm" (best move), "am" (avoid move) and "dm" (direct mate) are
// implemented.
//
// Move fields in bm/am are UCI long-algebraic tokens (e.g. "e2e4",
// "e7e8q"), not SAN: this engine has no SAN parser, unlike the
// teacher's movegen.GetMoveFromSan, so EPD fixtures used here must be
// pre-converted to UCI notation.
// https://www.chessprogramming.org/Extended_Position_Description
package testsuite

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/haldorsen/corvid/internal/board"
	myLogging "github.com/haldorsen/corvid/internal/logging"
	"github.com/haldorsen/corvid/internal/movegen"
	"github.com/haldorsen/corvid/internal/search"
	. "github.com/haldorsen/corvid/internal/types"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// testType is the EPD opcode a Test was built from.
type testType uint8

const (
	none testType = iota
	dm
	bm
	am
)

// resultType is the verdict of running a Test.
type resultType uint8

const (
	notTested resultType = iota
	skipped
	failed
	success
)

// SuiteResult sums the verdicts of a TestSuite run.
type SuiteResult struct {
	Counter          int
	SuccessCounter   int
	FailedCounter    int
	SkippedCounter   int
	NotTestedCounter int
}

// Test is one EPD line, parsed to a FEN plus expectation, and later
// filled in with the search's actual answer.
type Test struct {
	id          string
	fen         string
	tType       testType
	targetMoves MoveList
	mateDepth   int
	actual      Move
	value       int
	rType       resultType
	line        string
}

// TestSuite is one EPD file's worth of Test cases.
type TestSuite struct {
	Tests      []*Test
	Time       time.Duration
	Depth      int
	FilePath   string
	LastResult *SuiteResult
}

// NewTestSuite reads filePath and builds one Test per recognized EPD
// line. searchTime and depth bound each Test's search the same way a
// UCI "go movetime"/"go depth" would.
func NewTestSuite(filePath string, searchTime time.Duration, depth int) (*TestSuite, error) {
	if log == nil {
		log = myLogging.GetLog("testsuite")
	}

	lines, err := readLines(filePath)
	if err != nil {
		return nil, err
	}

	ts := &TestSuite{
		Tests:    make([]*Test, 0, len(lines)),
		Time:     searchTime,
		Depth:    depth,
		FilePath: filePath,
	}
	for _, line := range lines {
		if t := parseTest(line); t != nil {
			ts.Tests = append(ts.Tests, t)
		}
	}
	return ts, nil
}

// RunTests runs every Test in the suite in turn and populates
// ts.LastResult with the tallied verdicts.
func (ts *TestSuite) RunTests() {
	if len(ts.Tests) == 0 {
		return
	}

	s := search.NewSearch()
	limits := search.NewLimits()
	if ts.Time > 0 {
		limits.MoveTime = ts.Time
		limits.TimeControl = true
	}
	limits.Depth = ts.Depth

	out.Printf("Running Test Suite\n")
	out.Printf("EPD File:    %s\n", ts.FilePath)
	out.Printf("No of tests: %d\n", len(ts.Tests))

	for i, t := range ts.Tests {
		out.Printf("Test %d of %d: %s\n", i+1, len(ts.Tests), t.line)
		runSingleTest(s, limits, t)
	}

	r := &SuiteResult{}
	for _, t := range ts.Tests {
		r.Counter++
		switch t.rType {
		case notTested:
			r.NotTestedCounter++
		case skipped:
			r.SkippedCounter++
		case failed:
			r.FailedCounter++
		case success:
			r.SuccessCounter++
		}
	}
	ts.LastResult = r
}

func runSingleTest(s *search.Search, limits search.Limits, t *Test) {
	s.NewGame()
	b, err := board.NewBoardState(t.fen)
	if err != nil {
		log.Warningf("EPD id %q: invalid FEN %q: %v", t.id, t.fen, err)
		t.rType = skipped
		return
	}

	testLimits := limits
	if t.tType == dm {
		// Give the search two extra plies of headroom above the
		// shortest possible mate line so it has room to confirm it.
		testLimits.Depth = t.mateDepth*2 + 1
	}

	res, err := s.Go(context.Background(), b, testLimits)
	if err != nil {
		log.Warningf("EPD id %q: search error: %v", t.id, err)
		t.rType = skipped
		return
	}
	t.actual = res.BestMove
	t.value = res.Value

	switch t.tType {
	case dm:
		wantPly := 2*t.mateDepth - 1
		wantValue := search.Mate - wantPly
		if res.Value == wantValue {
			t.rType = success
		} else {
			t.rType = failed
		}
	case bm:
		t.rType = failed
		for _, m := range t.targetMoves {
			if m == res.BestMove {
				t.rType = success
				break
			}
		}
	case am:
		t.rType = success
		for _, m := range t.targetMoves {
			if m == res.BestMove {
				t.rType = failed
				break
			}
		}
	default:
		log.Warningf("EPD id %q: unknown test type", t.id)
		t.rType = skipped
	}
}

var trailingComment = regexp.MustCompile(`#.*$`)
var epdLine = regexp.MustCompile(`^\s*(.*?) (bm|dm|am) (.*?);(.* id "(.*?)";)?.*$`)

// parseTest turns one EPD line into a Test, or nil if the line is
// blank, a comment, or doesn't match the recognized opcodes.
func parseTest(line string) *Test {
	line = strings.TrimSpace(trailingComment.ReplaceAllString(line, ""))
	if line == "" {
		return nil
	}

	m := epdLine.FindStringSubmatch(line)
	if m == nil {
		log.Warningf("no EPD found in line: %s", line)
		return nil
	}

	fen := m[1]
	b, err := board.NewBoardState(fen)
	if err != nil {
		log.Warningf("EPD fen is invalid: %s", fen)
		return nil
	}

	var tt testType
	switch m[2] {
	case "dm":
		tt = dm
	case "bm":
		tt = bm
	case "am":
		tt = am
	default:
		return nil
	}

	test := &Test{
		id:    m[5],
		fen:   fen,
		tType: tt,
		line:  line,
	}

	if tt == dm {
		depth, err := strconv.Atoi(strings.TrimSpace(m[3]))
		if err != nil {
			log.Warningf("EPD dm depth is invalid: %s", m[3])
			return nil
		}
		test.mateDepth = depth
		return test
	}

	var moves MoveList
	for _, token := range strings.Fields(m[3]) {
		token = strings.Trim(token, "!?")
		move := matchUciToken(b, token)
		if move.IsValid() {
			moves.PushBack(move)
		}
	}
	if moves.Len() == 0 {
		log.Warningf("EPD bm/am moves are not legal on this position: %s", m[3])
		return nil
	}
	test.targetMoves = moves
	return test
}

func matchUciToken(b *board.BoardState, token string) Move {
	for _, succ := range movegen.Generate(b, movegen.AllMoves) {
		if succ.Move.StringUci() == token {
			return succ.Move
		}
	}
	return MoveNone
}

func readLines(filePath string) ([]string, error) {
	if !filepath.IsAbs(filePath) {
		wd, _ := os.Getwd()
		filePath = filepath.Join(wd, filePath)
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (rt resultType) String() string {
	switch rt {
	case notTested:
		return "not tested"
	case skipped:
		return "skipped"
	case failed:
		return "failed"
	case success:
		return "success"
	default:
		return "n/a"
	}
}

func (tt testType) String() string {
	switch tt {
	case bm:
		return "bm"
	case am:
		return "am"
	case dm:
		return "dm"
	default:
		return "n/a"
	}
}
