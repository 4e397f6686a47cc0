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

package config

// SearchConfig is a data structure to hold the configuration of an
// instance of a search.
type SearchConfig struct {
	// Move ordering / pruning toggles
	UseQuiescence bool
	UseKillers    bool

	// Transposition table
	UseTT    bool
	TTSizeMB int

	// Iterative deepening
	MaxDepth int

	// Time control
	MovesToGoDefault int
	SafeguardMillis  int
	MaxUsageFrac     float64
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Search.UseQuiescence = true
	Settings.Search.UseKillers = true

	Settings.Search.UseTT = true
	Settings.Search.TTSizeMB = 64

	Settings.Search.MaxDepth = 64

	Settings.Search.MovesToGoDefault = 30
	Settings.Search.SafeguardMillis = 100
	Settings.Search.MaxUsageFrac = 0.8
}
