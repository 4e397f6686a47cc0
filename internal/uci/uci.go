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

// Package uci contains the UciHandler data structure and functionality to
// handle the UCI protocol communication between the chess user interface
// and the engine.
package uci

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/haldorsen/corvid/internal/board"
	"github.com/haldorsen/corvid/internal/engineerr"
	myLogging "github.com/haldorsen/corvid/internal/logging"
	"github.com/haldorsen/corvid/internal/movegen"
	"github.com/haldorsen/corvid/internal/search"
	. "github.com/haldorsen/corvid/internal/types"
)

// Version identifies the engine in the UCI "id" response and in
// cmd/corvid's "-version" output.
const Version = "1.0"

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var out = message.NewPrinter(language.German)
var log *logging.Logger

// UciHandler owns the board and search worker for one engine
// lifetime, parsing UCI commands and driving the one search.Search
// instance that owns the transposition and repetition tables.
type UciHandler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	board  *board.BoardState
	mySearch *search.Search

	cancelSearch context.CancelFunc
	uciLog       *logging.Logger
}

// NewUciHandler creates a new UciHandler instance.
// Input / Output io can be replaced by changing the instance's
// InIo and OutIo members.
func NewUciHandler() *UciHandler {
	if log == nil {
		log = myLogging.GetLog("uci")
	}
	b, _ := board.NewBoardState(startFen)
	return &UciHandler{
		InIo:     bufio.NewScanner(os.Stdin),
		OutIo:    bufio.NewWriter(os.Stdout),
		board:    b,
		mySearch: search.NewSearch(),
		uciLog:   getUciLog(),
	}
}

// Loop starts the main loop reading commands from InIo until "quit".
func (u *UciHandler) Loop() {
	for {
		log.Debugf("Waiting for command:")
		for u.InIo.Scan() {
			if u.handleReceivedCommand(u.InIo.Text()) {
				return
			}
			log.Debugf("Waiting for command:")
		}
	}
}

// Command handles a single line of UCI protocol and returns the
// response(s) written to OutIo as a string. Useful for tests.
func (u *UciHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

// SendInfoString sends an arbitrary diagnostic string to the UCI
// client: parse/protocol errors surface this way rather than
// terminating the engine.
func (u *UciHandler) SendInfoString(info string) {
	u.send(out.Sprintf("info string %s", info))
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	if len(cmd) == 0 {
		return false
	}
	log.Debugf("Received command: %s", cmd)
	u.uciLog.Infof("<< %s", cmd)
	tokens := regexWhiteSpace.Split(strings.TrimSpace(cmd), -1)
	firstToken := tokens[0]
	switch firstToken {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "isready":
		u.isReadyCommand()
	case "ucinewgame":
		u.uciNewGameCommand()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.stopCommand()
	case "setoption":
		u.setOptionCommand(tokens)
	case "register":
		u.registerCommand()
	case "debug":
		u.debugCommand()
	case "":
	default:
		err := engineerr.NewProtocolError(cmd, "unknown command")
		log.Warningf("%s", err)
	}
	log.Debugf("Processed command: %s", cmd)
	return false
}

// uciCommand replies to "uci" with id, options and "uciok".
func (u *UciHandler) uciCommand() {
	u.send("id name Corvid " + Version)
	u.send("id author the Corvid project")
	for _, o := range availableOptions() {
		u.send(o)
	}
	u.send("uciok")
}

func (u *UciHandler) isReadyCommand() {
	u.send("readyok")
}

// stopCommand cancels an in-flight search; goCommand's goroutine
// still sends "bestmove" once Go returns (5. "Cancellation").
func (u *UciHandler) stopCommand() {
	if u.cancelSearch != nil {
		u.cancelSearch()
	}
	u.mySearch.Stop()
}

func (u *UciHandler) uciNewGameCommand() {
	b, _ := board.NewBoardState(startFen)
	u.board = b
	u.mySearch.NewGame()
}

func (u *UciHandler) debugCommand() {
	u.SendInfoString("command 'debug' not implemented")
}

func (u *UciHandler) registerCommand() {
	u.SendInfoString("command 'register' not implemented")
}

// positionCommand sets the board from "startpos" or a FEN, then
// applies each trailing UCI move in turn, rejecting the whole
// command on the first illegal one (7. IllegalMoveError: "leave the
// prior position intact").
func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.malformed("position", tokens)
		return
	}
	fen := startFen
	i := 1
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(fenb.String())
		if fen == "" {
			u.malformed("position", tokens)
			return
		}
	default:
		u.malformed("position", tokens)
		return
	}

	newBoard, err := board.NewBoardState(fen)
	if err != nil {
		u.SendInfoString(out.Sprintf("command 'position' invalid FEN: %v", err))
		log.Warningf("invalid FEN %q: %v", fen, err)
		return
	}

	// A "position" command always restates the game from startpos/FEN,
	// not just the newest move, so the repetition history it implies
	// replaces whatever RecordPlayed calls came before rather than
	// adding to them.
	u.mySearch.ResetHistory()

	if i < len(tokens) {
		if tokens[i] != "moves" {
			u.malformed("position", tokens)
			return
		}
		i++
		for ; i < len(tokens); i++ {
			move := findMoveByUci(newBoard, tokens[i])
			if !move.IsValid() {
				err := engineerr.NewIllegalMoveError(tokens[i], newBoard.FEN())
				u.SendInfoString(err.Error())
				log.Warningf("%s", err)
				return
			}
			for _, succ := range movegen.Generate(newBoard, movegen.AllMoves) {
				if succ.Move == move {
					newBoard = succ.State
					break
				}
			}
			u.mySearch.RecordPlayed(newBoard.ZobristKey())
		}
	}

	u.board = newBoard
	log.Debugf("new position: %s", u.board.FEN())
}

// findMoveByUci matches a UCI long-algebraic token against the
// board's legal moves, since Move itself carries no string form that
// round-trips without a position to resolve ambiguity (e.g. castling
// encoded as a king move).
func findMoveByUci(b *board.BoardState, token string) Move {
	for _, succ := range movegen.Generate(b, movegen.AllMoves) {
		if succ.Move.StringUci() == token {
			return succ.Move
		}
	}
	return MoveNone
}

// goCommand parses search limits and runs the search in its own
// goroutine so Loop keeps reading "stop"/other commands while it
// runs: the UCI reader thread hands work to the search and keeps
// listening for cancellation.
func (u *UciHandler) goCommand(tokens []string) {
	limits, ok := u.readSearchLimits(tokens)
	if !ok {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	u.cancelSearch = cancel
	b := u.board
	go func() {
		defer cancel()
		result, err := u.mySearch.Go(ctx, b, limits)
		if err != nil {
			return
		}
		u.sendResult(result)
	}()
}

func (u *UciHandler) sendResult(r search.Result) {
	u.send(out.Sprintf("info depth %d nodes %d time %d pv %s",
		r.Depth, r.Nodes, r.SearchTime.Milliseconds(), r.PV.StringUci()))
	var resultStr strings.Builder
	resultStr.WriteString("bestmove ")
	resultStr.WriteString(r.BestMove.StringUci())
	if ponder := r.PonderMove(); ponder != MoveNone {
		resultStr.WriteString(" ponder ")
		resultStr.WriteString(ponder.StringUci())
	}
	u.send(resultStr.String())
}

func (u *UciHandler) readSearchLimits(tokens []string) (search.Limits, bool) {
	limits := search.NewLimits()
	i := 1
	for i < len(tokens) {
		var parseErr error
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
			i++
		case "depth":
			i++
			limits.Depth, parseErr = strconv.Atoi(tokens[i])
			i++
		case "nodes":
			i++
			n, err := strconv.ParseInt(tokens[i], 10, 64)
			parseErr = err
			limits.Nodes = uint64(n)
			i++
		case "movetime":
			i++
			n, err := strconv.ParseInt(tokens[i], 10, 64)
			parseErr = err
			limits.MoveTime = time.Duration(n) * time.Millisecond
			limits.TimeControl = true
			i++
		case "wtime":
			i++
			n, err := strconv.ParseInt(tokens[i], 10, 64)
			parseErr = err
			limits.WhiteTime = time.Duration(n) * time.Millisecond
			limits.TimeControl = true
			i++
		case "btime":
			i++
			n, err := strconv.ParseInt(tokens[i], 10, 64)
			parseErr = err
			limits.BlackTime = time.Duration(n) * time.Millisecond
			limits.TimeControl = true
			i++
		case "winc":
			i++
			n, err := strconv.ParseInt(tokens[i], 10, 64)
			parseErr = err
			limits.WhiteInc = time.Duration(n) * time.Millisecond
			i++
		case "binc":
			i++
			n, err := strconv.ParseInt(tokens[i], 10, 64)
			parseErr = err
			limits.BlackInc = time.Duration(n) * time.Millisecond
			i++
		case "movestogo":
			i++
			limits.MovesToGo, parseErr = strconv.Atoi(tokens[i])
			i++
		case "ponder":
			// accepted, not implemented as a distinct search mode
			i++
		default:
			u.malformed("go", tokens)
			return search.Limits{}, false
		}
		if parseErr != nil {
			msg := out.Sprintf("command 'go' malformed near %q: %v", tokens[i-1], parseErr)
			u.SendInfoString(msg)
			log.Warning(msg)
			return search.Limits{}, false
		}
	}
	if !limits.Infinite && !limits.TimeControl && limits.Depth == 0 && limits.Nodes == 0 {
		limits.Infinite = true
	}
	return limits, true
}

func (u *UciHandler) malformed(cmd string, tokens []string) {
	err := engineerr.NewProtocolError(cmd, "malformed: "+strings.Join(tokens, " "))
	u.SendInfoString(err.Error())
	log.Warningf("%s", err)
}

func (u *UciHandler) setOptionCommand(tokens []string) {
	name, value, ok := parseSetOption(tokens)
	if !ok {
		u.malformed("setoption", tokens)
		return
	}
	o, found := uciOptions[name]
	if !found {
		msg := out.Sprintf("command 'setoption': no such option %q", name)
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}
	o.CurrentValue = value
	o.HandlerFunc(u, o)
}

func parseSetOption(tokens []string) (name, value string, ok bool) {
	if len(tokens) < 2 || tokens[1] != "name" {
		return "", "", false
	}
	i := 2
	var nameb strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		nameb.WriteString(tokens[i])
		nameb.WriteString(" ")
		i++
	}
	name = strings.TrimSpace(nameb.String())
	if i < len(tokens) && tokens[i] == "value" && i+1 < len(tokens) {
		value = tokens[i+1]
	}
	return name, value, name != ""
}

// getUciLog returns a logger dedicated to raw UCI protocol traffic,
// independent of the engine's general log level, grounded on the
// same pattern as search.getSearchTraceLog.
func getUciLog() *logging.Logger {
	uciLog := logging.MustGetLogger("uci.protocol")
	format := logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(leveled)
	return uciLog
}

func (u *UciHandler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
