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

package uci

import (
	"strconv"
	"strings"

	. "github.com/haldorsen/corvid/internal/config"
)

// uciOptionType is an enum of the UCI option kinds the protocol
// defines.
type uciOptionType int

const (
	Check uciOptionType = iota
	Spin
	Button
)

// optionHandler is called from setoption with the option's new
// CurrentValue already stored.
type optionHandler func(*UciHandler, *uciOption)

// uciOption mirrors one entry of the UCI "option name ... type ..."
// handshake line.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	CurrentValue string
}

func (o *uciOption) String() string {
	var s strings.Builder
	s.WriteString("option name ")
	s.WriteString(o.NameID)
	s.WriteString(" type ")
	switch o.OptionType {
	case Check:
		s.WriteString("check default ")
		s.WriteString(o.DefaultValue)
	case Spin:
		s.WriteString("spin default ")
		s.WriteString(o.DefaultValue)
		s.WriteString(" min ")
		s.WriteString(o.MinValue)
		s.WriteString(" max ")
		s.WriteString(o.MaxValue)
	case Button:
		s.WriteString("button")
	}
	return s.String()
}

// uciOptions and sortOrderUciOptions together expose the subset of
// config.SearchConfig a UCI client may toggle at runtime,
// registered as a map + handler func plus an explicit sort order for
// "uci" output.
var uciOptions map[string]*uciOption
var sortOrderUciOptions []string

func init() {
	uciOptions = map[string]*uciOption{
		"Clear Hash": {NameID: "Clear Hash", OptionType: Button, HandlerFunc: clearHash},
		"Hash": {
			NameID: "Hash", OptionType: Spin, HandlerFunc: resizeHash,
			DefaultValue: strconv.Itoa(Settings.Search.TTSizeMB),
			CurrentValue: strconv.Itoa(Settings.Search.TTSizeMB),
			MinValue:     "1", MaxValue: "4096",
		},
		"UseHash": {
			NameID: "UseHash", OptionType: Check, HandlerFunc: useHash,
			DefaultValue: strconv.FormatBool(Settings.Search.UseTT),
			CurrentValue: strconv.FormatBool(Settings.Search.UseTT),
		},
		"UseQuiescence": {
			NameID: "UseQuiescence", OptionType: Check, HandlerFunc: useQuiescence,
			DefaultValue: strconv.FormatBool(Settings.Search.UseQuiescence),
			CurrentValue: strconv.FormatBool(Settings.Search.UseQuiescence),
		},
		"UseKillers": {
			NameID: "UseKillers", OptionType: Check, HandlerFunc: useKillers,
			DefaultValue: strconv.FormatBool(Settings.Search.UseKillers),
			CurrentValue: strconv.FormatBool(Settings.Search.UseKillers),
		},
	}
	sortOrderUciOptions = []string{"Hash", "UseHash", "Clear Hash", "UseQuiescence", "UseKillers"}
}

func availableOptions() []string {
	options := make([]string, 0, len(sortOrderUciOptions))
	for _, name := range sortOrderUciOptions {
		options = append(options, uciOptions[name].String())
	}
	return options
}

func clearHash(u *UciHandler, _ *uciOption) {
	u.mySearch.NewGame()
	log.Debug("hash cleared")
}

func resizeHash(u *UciHandler, o *uciOption) {
	mb, err := strconv.Atoi(o.CurrentValue)
	if err != nil || mb <= 0 {
		log.Warningf("invalid Hash size %q", o.CurrentValue)
		return
	}
	Settings.Search.TTSizeMB = mb
	u.mySearch.ResizeHash(mb)
	log.Debugf("Hash size set to %d MB", mb)
}

func useHash(_ *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseTT = v
	log.Debugf("UseHash set to %v", v)
}

func useQuiescence(_ *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseQuiescence = v
	log.Debugf("UseQuiescence set to %v", v)
}

func useKillers(_ *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseKillers = v
	log.Debugf("UseKillers set to %v", v)
}
