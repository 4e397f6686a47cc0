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

package uci

import (
	"bufio"
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haldorsen/corvid/internal/config"
)

// syncBuffer lets a test observe output written by goCommand's background
// goroutine while it polls from the test goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestMain(m *testing.M) {
	config.Setup()
	m.Run()
}

func TestUciCommandRepliesUciok(t *testing.T) {
	u := NewUciHandler()
	result := u.Command("uci")
	assert.Contains(t, result, "id name Corvid")
	assert.Contains(t, result, "uciok")
	assert.Contains(t, result, "option name Hash")
}

func TestIsReadyCommandRepliesReadyok(t *testing.T) {
	u := NewUciHandler()
	assert.Contains(t, u.Command("isready"), "readyok")
}

func TestPositionStartpos(t *testing.T) {
	u := NewUciHandler()
	u.Command("position startpos")
	assert.Equal(t, startFen, u.board.FEN())
}

func TestPositionFen(t *testing.T) {
	u := NewUciHandler()
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	u.Command("position fen " + fen)
	// Halfmove and fullmove counters are not kept, so FEN writes "0 1".
	assert.Equal(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 1", u.board.FEN())
}

func TestPositionWithMoves(t *testing.T) {
	u := NewUciHandler()
	u.Command("position startpos moves e2e4 e7e5")
	assert.NotEqual(t, startFen, u.board.FEN())
	assert.Equal(t, "w", strings.Fields(u.board.FEN())[1])
}

func TestPositionRejectsIllegalMove(t *testing.T) {
	u := NewUciHandler()
	before := u.board
	out := u.Command("position startpos moves e2e5")
	assert.Contains(t, out, "info string")
	assert.Same(t, before, u.board)
}

func TestUciNewGameResetsBoard(t *testing.T) {
	u := NewUciHandler()
	u.Command("position startpos moves e2e4")
	u.Command("ucinewgame")
	assert.Equal(t, startFen, u.board.FEN())
}

func TestGoDepthProducesBestmove(t *testing.T) {
	u := NewUciHandler()
	u.handleReceivedCommand("position startpos")

	buffer := &syncBuffer{}
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand("go depth 2")

	require.Eventually(t, func() bool {
		return strings.Contains(buffer.String(), "bestmove")
	}, time.Second, 5*time.Millisecond)
}

func TestStopCommandDoesNotPanicWithoutSearch(t *testing.T) {
	u := NewUciHandler()
	assert.NotPanics(t, func() { u.Command("stop") })
}

func TestLoopExitsOnQuit(t *testing.T) {
	u := NewUciHandler()
	u.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.Loop()
	assert.Contains(t, buffer.String(), "uciok")
}

func TestSetOptionTogglesConfig(t *testing.T) {
	u := NewUciHandler()
	u.Command("setoption name UseQuiescence value false")
	assert.False(t, config.Settings.Search.UseQuiescence)
	u.Command("setoption name UseQuiescence value true")
	assert.True(t, config.Settings.Search.UseQuiescence)
}

func TestSetOptionUnknownNameReportsInfoString(t *testing.T) {
	u := NewUciHandler()
	out := u.Command("setoption name DoesNotExist value 1")
	assert.Contains(t, out, "info string")
}
