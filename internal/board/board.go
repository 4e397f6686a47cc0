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

// Package board holds BoardState, the value-typed snapshot of one
// chess position on the 12x12 sentinel mailbox. BoardStates are
// immutable from the caller's point of view: every mutating method
// documented as such actually operates on a just-cloned copy, never
// on the receiver a caller still holds elsewhere.
package board

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/haldorsen/corvid/internal/assert"
	"github.com/haldorsen/corvid/internal/engineerr"
	"github.com/haldorsen/corvid/internal/logging"
	. "github.com/haldorsen/corvid/internal/types"
	"github.com/haldorsen/corvid/internal/zobrist"
)

var log = logging.GetLog("board")

// cell is one mailbox slot: cellBoundary for the sentinel ring,
// cellEmpty for a playable but vacant square, or a piece's dense
// Piece.Index() (0..11) for an occupied one.
type cell int8

const (
	cellBoundary cell = -2
	cellEmpty    cell = -1
)

func cellFromPiece(p Piece) cell {
	return cell(p.Index())
}

// piece decodes the cell back into a Piece. ok is false for Boundary
// or Empty.
func (c cell) piece() (Piece, bool) {
	if c < 0 {
		return NoPiece, false
	}
	return Piece{Color: Color(int(c) / int(PieceKindLength)), Kind: PieceKind(int(c) % int(PieceKindLength))}, true
}

// noPromotion marks BoardState.pawnPromotion as "this state was not
// produced by a promotion". King can never be a promotion target, but
// using PieceKindLength keeps the zero value of PieceKind (King)
// unambiguous rather than overloading it.
const noPromotion = PieceKindLength

// noCaptureOrder is the order_heuristic assigned to a quiet move: the
// minimum value, so quiet moves always sort after every capture and
// promotion.
const noCaptureOrder = math.MinInt32

// promotionOrder is the fixed order_heuristic shared by all four
// promotion choices (queen value minus pawn value).
const promotionOrder = 800

// mvvLva[victim][attacker] holds the Most-Valuable-Victim,
// Least-Valuable-Attacker ordering score. Row and column order match
// PieceKind's own ordinals (King, Queen, Rook, Bishop, Knight, Pawn),
// so no translation table is needed.
var mvvLva = [PieceKindLength][PieceKindLength]int{
	King:   {0, 0, 0, 0, 0, 0},
	Queen:  {50, 51, 52, 53, 54, 55},
	Rook:   {40, 41, 42, 43, 44, 45},
	Bishop: {30, 31, 32, 33, 34, 35},
	Knight: {20, 21, 22, 23, 24, 25},
	Pawn:   {10, 11, 12, 13, 14, 15},
}

var (
	sqA1 = SquareFromFileRank(0, 0)
	sqH1 = SquareFromFileRank(7, 0)
	sqA8 = SquareFromFileRank(0, 7)
	sqH8 = SquareFromFileRank(7, 7)
)

// BoardState is one complete chess position: the mailbox, side to
// move, castling rights, the en-passant target (if any), cached king
// squares, and the incremental Zobrist key.
type BoardState struct {
	mailbox        [BoardDim * BoardDim]cell
	sideToMove     Color
	pawnDoubleMove Square
	kingSquare     [ColorLength]Square
	castling       CastlingRights
	lastMove       Move
	pawnPromotion  PieceKind
	zobristKey     zobrist.Key
	orderHeuristic int
}

// NewBoardState parses the standard six-field position notation
// (board placement, side to move, castling availability, en-passant
// target, halfmove clock, fullmove number) into a fresh BoardState.
func NewBoardState(fen string) (*BoardState, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		err := engineerr.NewParseError(fen, fmt.Sprintf("expected 6 space-separated fields, got %d", len(fields)))
		log.Errorf("%s", err)
		return nil, err
	}

	b := &BoardState{
		pawnDoubleMove: SqNone,
		pawnPromotion:  noPromotion,
		lastMove:       MoveNone,
		kingSquare:     [ColorLength]Square{SqNone, SqNone},
	}
	for i := range b.mailbox {
		b.mailbox[i] = cellBoundary
	}
	for r := 2; r <= 9; r++ {
		for c := 2; c <= 9; c++ {
			b.mailbox[NewSquare(r, c)] = cellEmpty
		}
	}

	if err := b.placePieces(fields[0], fen); err != nil {
		log.Errorf("%s", err)
		return nil, err
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
		b.zobristKey ^= zobrist.Base.NextPlayer()
	default:
		err := engineerr.NewParseError(fen, "side to move must be 'w' or 'b'")
		log.Errorf("%s", err)
		return nil, err
	}

	if err := b.placeCastling(fields[2], fen); err != nil {
		log.Errorf("%s", err)
		return nil, err
	}

	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			err := engineerr.NewParseError(fen, "invalid en-passant target square")
			log.Errorf("%s", err)
			return nil, err
		}
		if rank := sq.Rank(); rank != 2 && rank != 5 {
			err := engineerr.NewParseError(fen, "en-passant target must be on rank 3 or rank 6")
			log.Errorf("%s", err)
			return nil, err
		}
		b.pawnDoubleMove = sq
		b.zobristKey ^= zobrist.Base.EnPassantFile(sq.File())
	}

	if _, err := strconv.Atoi(fields[4]); err != nil {
		perr := engineerr.NewParseError(fen, "invalid halfmove clock")
		log.Errorf("%s", perr)
		return nil, perr
	}
	if _, err := strconv.Atoi(fields[5]); err != nil {
		perr := engineerr.NewParseError(fen, "invalid fullmove number")
		log.Errorf("%s", perr)
		return nil, perr
	}

	if b.kingSquare[White] == SqNone || b.kingSquare[Black] == SqNone {
		err := engineerr.NewParseError(fen, "both kings must be present")
		log.Errorf("%s", err)
		return nil, err
	}

	return b, nil
}

func (b *BoardState) placePieces(placement, fen string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return engineerr.NewParseError(fen, "board placement must have 8 ranks")
	}
	for i, rowStr := range rows {
		row := 2 + i
		col := 2
		for _, ch := range []byte(rowStr) {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p, ok := PieceFromChar(ch)
			if !ok {
				return engineerr.NewParseError(fen, fmt.Sprintf("invalid piece letter %q", ch))
			}
			if col > 9 {
				return engineerr.NewParseError(fen, "rank has too many squares")
			}
			sq := NewSquare(row, col)
			b.putPiece(p, sq)
			if p.Kind == King {
				b.kingSquare[p.Color] = sq
			}
			col++
		}
		if col != 10 {
			return engineerr.NewParseError(fen, "rank does not sum to 8 squares")
		}
	}
	return nil
}

func (b *BoardState) placeCastling(s, fen string) error {
	if s == "-" {
		return nil
	}
	for _, ch := range []byte(s) {
		switch ch {
		case 'K':
			b.setCastlingRight(WhiteOO)
		case 'Q':
			b.setCastlingRight(WhiteOOO)
		case 'k':
			b.setCastlingRight(BlackOO)
		case 'q':
			b.setCastlingRight(BlackOOO)
		default:
			return engineerr.NewParseError(fen, fmt.Sprintf("invalid castling letter %q", ch))
		}
	}
	return nil
}

// Clone returns an independent copy; mutating it never affects the
// receiver. Every array field is a fixed-size Go array, so a plain
// struct copy is a full deep copy.
func (b *BoardState) Clone() *BoardState {
	c := *b
	return &c
}

// PieceAt reports the piece standing on sq, if any.
func (b *BoardState) PieceAt(sq Square) (Piece, bool) {
	return b.mailbox[sq].piece()
}

// SideToMove returns the color to move.
func (b *BoardState) SideToMove() Color {
	return b.sideToMove
}

// CastlingRights returns the current set of castling privileges.
func (b *BoardState) CastlingRights() CastlingRights {
	return b.castling
}

// PawnDoubleMove returns the en-passant target square, or SqNone.
func (b *BoardState) PawnDoubleMove() Square {
	return b.pawnDoubleMove
}

// KingSquare returns the cached king square for c.
func (b *BoardState) KingSquare(c Color) Square {
	return b.kingSquare[c]
}

// ZobristKey returns the incrementally maintained hash key.
func (b *BoardState) ZobristKey() zobrist.Key {
	return b.zobristKey
}

// LastMove returns the move that produced this state, or MoveNone.
func (b *BoardState) LastMove() Move {
	return b.lastMove
}

// PawnPromotion returns the piece this state's producing move
// promoted to, if it was a promotion.
func (b *BoardState) PawnPromotion() (PieceKind, bool) {
	if b.pawnPromotion == noPromotion {
		return 0, false
	}
	return b.pawnPromotion, true
}

// OrderHeuristic returns the scalar used to sort this state among its
// siblings in the search (see the MVV-LVA table in ApplyMove).
func (b *BoardState) OrderHeuristic() int {
	return b.orderHeuristic
}

// Rehash recomputes the Zobrist key from scratch by walking the
// mailbox and the side-to-move/castling/en-passant fields. The
// incremental key maintained during move-making must always equal
// this; it exists for that check and for tests, not for normal
// move-making.
func (b *BoardState) Rehash() zobrist.Key {
	var k zobrist.Key
	for sq := 0; sq < BoardDim*BoardDim; sq++ {
		if p, ok := b.mailbox[sq].piece(); ok {
			k ^= zobrist.Base.Piece(p, Square(sq))
		}
	}
	if b.sideToMove == Black {
		k ^= zobrist.Base.NextPlayer()
	}
	for _, r := range [...]CastlingRight{WhiteOO, WhiteOOO, BlackOO, BlackOOO} {
		if b.castling.Has(r) {
			k ^= zobrist.Base.CastlingRight(r)
		}
	}
	if b.pawnDoubleMove != SqNone {
		k ^= zobrist.Base.EnPassantFile(b.pawnDoubleMove.File())
	}
	return k
}

// FEN renders the current placement, side to move, castling rights
// and en-passant target as a position string. Halfmove and fullmove
// counters are not retained after parsing and are always emitted as
// "0 1".
func (b *BoardState) FEN() string {
	var sb strings.Builder
	for row := 2; row <= 9; row++ {
		empties := 0
		for col := 2; col <= 9; col++ {
			sq := NewSquare(row, col)
			if p, ok := b.mailbox[sq].piece(); ok {
				if empties > 0 {
					sb.WriteString(strconv.Itoa(empties))
					empties = 0
				}
				sb.WriteString(p.Char())
			} else {
				empties++
			}
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
		if row != 9 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	if b.pawnDoubleMove == SqNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.pawnDoubleMove.String())
	}
	sb.WriteString(" 0 1")
	return sb.String()
}

// String renders the position as FEN, for logging and debugging.
func (b *BoardState) String() string {
	return b.FEN()
}

// --- the four zobrist-discipline helpers ---------------------------
//
// putPiece and removePiece are the low-level single-square writers
// every other helper is built from:
// movePiece(from, to) = putPiece(removePiece(from), to).

func (b *BoardState) putPiece(p Piece, sq Square) {
	b.mailbox[sq] = cellFromPiece(p)
	b.zobristKey ^= zobrist.Base.Piece(p, sq)
}

func (b *BoardState) removePiece(sq Square) Piece {
	p, ok := b.mailbox[sq].piece()
	if assert.DEBUG {
		assert.Assert(ok, "removePiece called on empty/boundary square %s", sq)
	}
	b.zobristKey ^= zobrist.Base.Piece(p, sq)
	b.mailbox[sq] = cellEmpty
	return p
}

// movePiece relocates the piece on from to to. If to is occupied, the
// occupant is captured: its term is XORed out before the mover's
// to-term is XORed in.
func (b *BoardState) movePiece(from, to Square) {
	p := b.removePiece(from)
	if _, ok := b.mailbox[to].piece(); ok {
		b.removePiece(to)
	}
	b.putPiece(p, to)
}

// swapSideToMove flips the side to move and XORs the side-to-move term.
func (b *BoardState) swapSideToMove() {
	b.zobristKey ^= zobrist.Base.NextPlayer()
	b.sideToMove = b.sideToMove.Opposite()
}

// clearCastlingRight clears r if it is set, XORing its term exactly
// once. A second call on an already-cleared right is a no-op.
func (b *BoardState) clearCastlingRight(r CastlingRight) {
	if !b.castling.Has(r) {
		return
	}
	b.castling.Clear(r)
	b.zobristKey ^= zobrist.Base.CastlingRight(r)
}

// setCastlingRight sets r if it is not already set. Only ever called
// during construction from a position string: rights only clear
// afterwards.
func (b *BoardState) setCastlingRight(r CastlingRight) {
	if b.castling.Has(r) {
		return
	}
	b.castling.Set(r)
	b.zobristKey ^= zobrist.Base.CastlingRight(r)
}

// clearPawnDoubleMove clears the en-passant target if one is set,
// XORing its file term exactly once. Idempotent.
func (b *BoardState) clearPawnDoubleMove() {
	if b.pawnDoubleMove == SqNone {
		return
	}
	b.zobristKey ^= zobrist.Base.EnPassantFile(b.pawnDoubleMove.File())
	b.pawnDoubleMove = SqNone
}

// setPawnDoubleMove sets the en-passant target. Callers always call
// clearPawnDoubleMove first in the same move, so there is never a
// stale term to XOR out here.
func (b *BoardState) setPawnDoubleMove(sq Square) {
	b.pawnDoubleMove = sq
	b.zobristKey ^= zobrist.Base.EnPassantFile(sq.File())
}

// ApplyMove clones the receiver and plays m on the clone, handling
// normal moves, captures, castling, en passant and promotion, plus
// all the attendant bookkeeping: side-to-move, en-passant target,
// cached king squares, castling-rights clearing (on king move or on the
// corresponding rook square being vacated or captured onto), last
// move, pawn_promotion and order_heuristic. It performs no legality
// check — that is the move generator's job, applied to the result.
func (b *BoardState) ApplyMove(m Move) *BoardState {
	c := b.Clone()
	from, to := m.From(), m.To()

	mover, ok := c.mailbox[from].piece()
	if assert.DEBUG {
		assert.Assert(ok, "ApplyMove: no piece on from-square %s (move %s)", from, m)
	}
	victim, hadVictim := c.mailbox[to].piece()

	switch m.Type() {
	case CastlingMove:
		c.applyCastling(mover.Color, from, to)
	case EnPassantMove:
		captured := NewSquare(from.Row(), to.Col())
		c.removePiece(captured)
		c.movePiece(from, to)
	case PromotionMove:
		c.removePiece(from)
		if hadVictim {
			c.removePiece(to)
		}
		c.putPiece(Piece{Color: mover.Color, Kind: m.PromotionKind()}, to)
	default:
		c.movePiece(from, to)
	}

	if mover.Kind == King && m.Type() != CastlingMove {
		c.kingSquare[mover.Color] = to
	}
	if mover.Kind == King {
		if mover.Color == White {
			c.clearCastlingRight(WhiteOO)
			c.clearCastlingRight(WhiteOOO)
		} else {
			c.clearCastlingRight(BlackOO)
			c.clearCastlingRight(BlackOOO)
		}
	}
	c.clearCornerRight(from)
	c.clearCornerRight(to)

	c.clearPawnDoubleMove()
	if m.Type() == Normal && mover.Kind == Pawn {
		if rowDiff := int(from.Row()) - int(to.Row()); rowDiff == 2 || rowDiff == -2 {
			c.setPawnDoubleMove(NewSquare((from.Row()+to.Row())/2, from.Col()))
		}
	}

	if m.IsPromotion() {
		c.pawnPromotion = m.PromotionKind()
	} else {
		c.pawnPromotion = noPromotion
	}
	c.lastMove = m
	c.orderHeuristic = orderHeuristicFor(m, mover, victim, hadVictim)

	c.swapSideToMove()

	if assert.DEBUG {
		assert.Assert(c.zobristKey == c.Rehash(), "zobrist key out of sync after move %s from %s", m, b)
	}
	return c
}

// applyCastling moves the king two squares and the rook to the square
// the king crossed, then clears both of the moving side's rights (the
// generic king-moved check in ApplyMove does this too, redundantly
// but harmlessly, since clearCastlingRight is idempotent).
func (c *BoardState) applyCastling(color Color, kingFrom, kingTo Square) {
	c.movePiece(kingFrom, kingTo)
	rank := kingFrom.Rank()
	var rookFrom, rookTo Square
	if kingTo.File() == 6 {
		rookFrom = SquareFromFileRank(7, rank)
		rookTo = SquareFromFileRank(5, rank)
	} else {
		rookFrom = SquareFromFileRank(0, rank)
		rookTo = SquareFromFileRank(3, rank)
	}
	c.movePiece(rookFrom, rookTo)
	c.kingSquare[color] = kingTo
}

// clearCornerRight drops the castling right tied to a rook's home
// square whenever that square is touched, whether the rook walked
// off it or an enemy piece captured onto it.
func (b *BoardState) clearCornerRight(sq Square) {
	switch sq {
	case sqA1:
		b.clearCastlingRight(WhiteOOO)
	case sqH1:
		b.clearCastlingRight(WhiteOO)
	case sqA8:
		b.clearCastlingRight(BlackOOO)
	case sqH8:
		b.clearCastlingRight(BlackOO)
	}
}

func orderHeuristicFor(m Move, mover, victim Piece, hadVictim bool) int {
	switch {
	case m.IsPromotion():
		return promotionOrder
	case m.IsEnPassant():
		return mvvLva[Pawn][mover.Kind]
	case hadVictim:
		return mvvLva[victim.Kind][mover.Kind]
	default:
		return noCaptureOrder
	}
}
