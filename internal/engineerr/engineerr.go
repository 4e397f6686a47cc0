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

// Package engineerr defines the engine's error taxonomy: ParseError,
// ProtocolError and IllegalMoveError, the three kinds that must never
// corrupt or propagate past the UCI boundary. InternalInvariantViolation
// is not an error value here — it is a panic raised from
// internal/assert in debug builds, since by definition it is not
// recoverable state.
package engineerr

import "fmt"

// ParseError reports malformed input to a position string, move
// string or command argument.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s (input: %q)", e.Msg, e.Input)
}

// NewParseError builds a ParseError.
func NewParseError(input, msg string) *ParseError {
	return &ParseError{Input: input, Msg: msg}
}

// ProtocolError reports an unknown or out-of-order UCI command. It is
// always recoverable: the caller logs it and keeps the session alive.
type ProtocolError struct {
	Command string
	Msg     string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %s (command: %q)", e.Msg, e.Command)
}

// NewProtocolError builds a ProtocolError.
func NewProtocolError(command, msg string) *ProtocolError {
	return &ProtocolError{Command: command, Msg: msg}
}

// IllegalMoveError reports that a move supplied in a
// "position ... moves ..." command is not legal in the position it
// was applied to. The caller must reject the whole command and leave
// the prior position untouched.
type IllegalMoveError struct {
	MoveUci string
	Fen     string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %q in position %q", e.MoveUci, e.Fen)
}

// NewIllegalMoveError builds an IllegalMoveError.
func NewIllegalMoveError(moveUci, fen string) *IllegalMoveError {
	return &IllegalMoveError{MoveUci: moveUci, Fen: fen}
}
