//
// GoKnight - a UCI chess engine written in Go
//
// MIT License
//
// Copyright (c) 2019-2020 The GoKnight Authors
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

// Package config is the single place the rest of the engine goes to
// ask "what is the current setting for X" — populated from built-in
// defaults, a TOML file, and (by whatever called Setup) command line
// flags, in that override order.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gopherchess/goknight/internal/util"
)

// Knobs any caller may poke before Setup runs; Setup overwrites
// LogLevel and SearchLogLevel with the levels named in Settings.Log.
var (
	// ConfFile is the path (relative to the working directory) Setup
	// reads its TOML settings from.
	ConfFile = "./config.toml"

	// LogLevel is the general logger's verbosity.
	LogLevel = 5

	// SearchLogLevel is the search logger's verbosity.
	SearchLogLevel = 5

	// TestLogLevel is the verbosity used while running tests.
	TestLogLevel = 5

	// Settings holds every decoded (or defaulted) configuration value.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup decodes ConfFile into Settings, falling back to the package's
// built-in defaults for anything the file omits or doesn't exist, then
// runs each section's post-decode fixups. Calling it more than once is
// a no-op.
func Setup() {
	if initialized {
		return
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	setupLogLvl()
	setupSearch()
	setupEval()
	initialized = true
}

// describeFields writes one line per exported field of v (a pointer to
// struct) to sb, formatted as "index: name type = value".
func describeFields(sb *strings.Builder, v interface{}) {
	s := reflect.ValueOf(v).Elem()
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		field := s.Field(i)
		fmt.Fprintf(sb, "%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, field.Type(), field.Interface())
	}
}

// String renders every Search and Eval setting currently in effect,
// one line per field, via reflection.
func (settings *conf) String() string {
	var sb strings.Builder
	sb.WriteString("Search Config:\n")
	describeFields(&sb, &settings.Search)
	sb.WriteString("\nEvaluation Config:\n")
	describeFields(&sb, &settings.Eval)
	return sb.String()
}
