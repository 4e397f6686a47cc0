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

// Package config holds globally available configuration variables
// which are either set by defaults, read from a config file or set
// by command line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"

	"github.com/haldorsen/corvid/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working directory).
	ConfFile = "./config.toml"

	// Settings is the global configuration, read in from file and
	// falling back to the defaults set by each sub-config's init().
	Settings conf

	initialized = false
)

type conf struct {
	Log    LogConfig
	Search SearchConfig
	Eval   EvalConfig
}

// Setup reads the configuration file over the defaults already set by
// each sub-config's init(), so anything the file does not provide
// keeps its default; it also fills in empty log level names.
// Idempotent: later calls are no-ops.
func Setup() {
	if initialized {
		return
	}

	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config file could not be parsed, using defaults (", err, ")")
	}

	setupLogLvl()
	initialized = true
}

// logLevels maps the string names accepted in config.toml to
// go-logging levels.
var logLevels = map[string]logging.Level{
	"critical": logging.CRITICAL,
	"error":    logging.ERROR,
	"warning":  logging.WARNING,
	"notice":   logging.NOTICE,
	"info":     logging.INFO,
	"debug":    logging.DEBUG,
}

// LogLevel returns the configured engine log level, defaulting to
// INFO if the configured name is unrecognized.
func LogLevel() logging.Level {
	if lvl, ok := logLevels[strings.ToLower(Settings.Log.LogLvl)]; ok {
		return lvl
	}
	return logging.INFO
}

// SearchLogLevel returns the configured search log level, defaulting
// to INFO if the configured name is unrecognized.
func SearchLogLevel() logging.Level {
	if lvl, ok := logLevels[strings.ToLower(Settings.Log.SearchLogLvl)]; ok {
		return lvl
	}
	return logging.INFO
}

func setupLogLvl() {
	if Settings.Log.LogLvl == "" {
		Settings.Log.LogLvl = "info"
	}
	if Settings.Log.SearchLogLvl == "" {
		Settings.Log.SearchLogLvl = "info"
	}
}

// String prints out the current configuration settings and values
// using reflection, so new fields show up without updating this method.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Search Config:\n")
	s := reflect.ValueOf(&settings.Search).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	c.WriteString("\nEvaluation Config:\n")
	s = reflect.ValueOf(&settings.Eval).Elem()
	typeOfT = s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	return c.String()
}
