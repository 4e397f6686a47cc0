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

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search.
package evaluator

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/haldorsen/corvid/internal/board"
	"github.com/haldorsen/corvid/internal/config"
	"github.com/haldorsen/corvid/internal/logging"
	. "github.com/haldorsen/corvid/internal/types"
)

var log = logging.GetLog("evaluator")

var out = message.NewPrinter(language.German)

// Evaluator scores a BoardState by material and piece-square tables.
// It holds no per-position state; a single instance is safe to reuse
// (and to share) across searches.
type Evaluator struct{}

// New creates a new Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the position's value from the side-to-move's
// perspective: positive means the side to move stands better.
func (e *Evaluator) Evaluate(b *board.BoardState) int {
	var whiteScore, blackScore, nonKingMaterial int

	for row := 2; row < BoardDim-2; row++ {
		for col := 2; col < BoardDim-2; col++ {
			sq := NewSquare(row, col)
			p, ok := b.PieceAt(sq)
			if !ok || p.Kind == King {
				continue
			}
			nonKingMaterial += p.Kind.Value()
			contribution := p.Kind.Value() + pieceSquareValue(p.Kind, false, p.Color, sq)
			if p.Color == White {
				whiteScore += contribution
			} else {
				blackScore += contribution
			}
		}
	}

	endgame := config.Settings.Eval.UseEndgameKingTable &&
		nonKingMaterial <= int(config.Settings.Eval.EndgameMaterialThreshold)

	whiteKing := b.KingSquare(White)
	blackKing := b.KingSquare(Black)
	whiteScore += pieceSquareValue(King, endgame, White, whiteKing)
	blackScore += pieceSquareValue(King, endgame, Black, blackKing)

	if b.SideToMove() == White {
		return whiteScore - blackScore
	}
	return blackScore - whiteScore
}

// Report returns a human-readable breakdown of an evaluation, for
// debugging.
func (e *Evaluator) Report(b *board.BoardState) string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", b.FEN()))
	report.WriteString(out.Sprintf("%s\n", b.String()))
	report.WriteString(out.Sprintf("Eval value  : %d (from the view of next player = %s)\n", e.Evaluate(b), b.SideToMove().String()))
	return report.String()
}
