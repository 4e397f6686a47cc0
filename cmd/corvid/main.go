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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/haldorsen/corvid/internal/board"
	"github.com/haldorsen/corvid/internal/config"
	"github.com/haldorsen/corvid/internal/logging"
	"github.com/haldorsen/corvid/internal/movegen"
	"github.com/haldorsen/corvid/internal/search"
	"github.com/haldorsen/corvid/internal/testsuite"
	"github.com/haldorsen/corvid/internal/uci"
	"github.com/haldorsen/corvid/internal/util"
)

var out = message.NewPrinter(language.German)

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	hashMB := flag.Int("hash", 0, "transposition table size in MB\n(overrides config.toml when positive)")
	testSuite := flag.String("testsuite", "", "path to a file containing EPD tests, or a folder containing EPD files")
	testMoveTime := flag.Int("testtime", 2000, "search time for each test position in milliseconds")
	testDepth := flag.Int("testdepth", 0, "search depth limit for each test position")
	perft := flag.Int("perft", 0, "runs perft on -fen (default: start position) to the given depth, printing per-depth node counts")
	perftSuite := flag.Bool("perftsuite", false, "runs the five fixed perft scenarios and reports pass/fail")
	fen := flag.String("fen", startFen, "fen used by -perft and -nps")
	nps := flag.Int("nps", 0, "runs a search for the given number of seconds on -fen and reports nodes per second")
	cpuProfile := flag.Bool("cpuprofile", false, "writes a CPU profile (cpu.pprof) for the duration of this run")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logLvl != "" {
		config.Settings.Log.LogLvl = *logLvl
	}
	if *searchLogLvl != "" {
		config.Settings.Log.SearchLogLvl = *searchLogLvl
	}
	if *hashMB > 0 {
		config.Settings.Search.TTSizeMB = *hashMB
	}
	logging.GetLog("main")

	switch {
	case *nps != 0:
		runNps(*fen, *nps)
	case *perftSuite:
		runPerftSuite()
	case *perft != 0:
		runPerft(*fen, *perft)
	case *testSuite != "":
		runTestSuite(*testSuite, *testMoveTime, *testDepth)
	default:
		u := uci.NewUciHandler()
		u.Loop()
	}
}

func runNps(fen string, seconds int) {
	b, err := board.NewBoardState(fen)
	if err != nil {
		out.Println("invalid -fen:", err)
		return
	}
	s := search.NewSearch()
	limits := search.NewLimits()
	limits.TimeControl = true
	limits.MoveTime = time.Duration(seconds) * time.Second
	res, err := s.Go(context.Background(), b, limits)
	if err != nil {
		out.Println("search error:", err)
		return
	}
	out.Println()
	out.Printf("Nodes: %d  Time: %s  NPS: %d\n", res.Nodes, res.SearchTime, util.Nps(res.Nodes, res.SearchTime))
}

func runPerft(fen string, depth int) {
	b, err := board.NewBoardState(fen)
	if err != nil {
		out.Println("invalid -fen:", err)
		return
	}
	for d := 1; d <= depth; d++ {
		r := movegen.Perft(b, d)
		out.Printf("Depth %d: %d nodes in %s (%d nps)\n", d, r.Nodes, r.Elapsed, util.Nps(r.Nodes, r.Elapsed))
	}
}

func runPerftSuite() {
	results, err := testsuite.RunAllScenarios()
	if err != nil {
		out.Println("perft suite error:", err)
		return
	}
	allPassed := true
	for _, r := range results {
		status := "PASS"
		if !r.Passed() {
			status = "FAIL"
			allPassed = false
		}
		out.Printf("%-32s %s  %v\n", r.Scenario.Name, status, r.Actual)
	}
	if !allPassed {
		os.Exit(1)
	}
}

func runTestSuite(path string, moveTimeMs, depth int) {
	fi, err := os.Stat(path)
	if err != nil {
		out.Println(err)
		return
	}
	moveTime := time.Duration(moveTimeMs) * time.Millisecond
	if fi.IsDir() {
		fmt.Println(testsuite.FeatureTests(path, moveTime, depth))
		return
	}
	ts, err := testsuite.NewTestSuite(path, moveTime, depth)
	if err != nil {
		out.Println(err)
		return
	}
	ts.RunTests()
}

func printVersionInfo() {
	out.Printf("Corvid %s\n", uci.Version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
