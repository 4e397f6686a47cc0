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

package types

// MoveType distinguishes the irregular move kinds the generator must
// special-case (castling, en passant, promotion) from an otherwise
// ordinary move.
type MoveType uint8

// The four move types.
const (
	Normal MoveType = iota
	PromotionMove
	CastlingMove
	EnPassantMove
)

// Move is a bit-packed (from, to, promotion piece, move type) tuple,
// 32 bits wide: bits 0-7 from-square, 8-15 to-square, 16-18 promotion
// piece kind, 19-20 move type. It is the unit passed between the move
// generator, the search and the UCI layer.
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 8
	movePromoShift = 16
	moveTypeShift  = 19
	moveSquareMask = 0xFF
	movePromoMask  = 0x7
	moveTypeMask   = 0x3
)

// MoveNone is the zero-information move, returned where "no move"
// needs to be represented (empty PV slot, no TT hit, etc.).
var MoveNone = NewMove(SqNone, SqNone, King, Normal)

// NewMove packs a move. promo is ignored unless mt is PromotionMove.
func NewMove(from, to Square, promo PieceKind, mt MoveType) Move {
	return Move(uint32(from)<<moveFromShift |
		uint32(to)<<moveToShift |
		uint32(promo)<<movePromoShift |
		uint32(mt)<<moveTypeShift)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((uint32(m) >> moveFromShift) & moveSquareMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((uint32(m) >> moveToShift) & moveSquareMask)
}

// PromotionKind returns the piece kind to promote to; meaningful only
// when Type is PromotionMove.
func (m Move) PromotionKind() PieceKind {
	return PieceKind((uint32(m) >> movePromoShift) & movePromoMask)
}

// Type returns the move's MoveType.
func (m Move) Type() MoveType {
	return MoveType((uint32(m) >> moveTypeShift) & moveTypeMask)
}

// IsPromotion reports whether the move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Type() == PromotionMove
}

// IsCastling reports whether the move is a castling move.
func (m Move) IsCastling() bool {
	return m.Type() == CastlingMove
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Type() == EnPassantMove
}

// IsValid reports whether m carries a real from/to pair.
func (m Move) IsValid() bool {
	return m.From().IsValid() && m.To().IsValid() && m != MoveNone
}

// StringUci renders the move in UCI long algebraic notation, e.g.
// "e2e4" or "e7e8q". Promotion letters are always lowercase.
func (m Move) StringUci() string {
	if !m.IsValid() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.PromotionKind().Char()
	}
	return s
}

// String is an alias for StringUci, used by %v/%s formatting.
func (m Move) String() string {
	return m.StringUci()
}
