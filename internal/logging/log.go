/*
 * GoKnight - a UCI chess engine written in Go
 *
 * MIT License
 *
 * Copyright (c) 2019-2020 The GoKnight Authors
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

// Package logging wraps "github.com/op/go-logging" so the rest of the
// engine can get a preconfigured Logger in one call instead of wiring
// up a backend and formatter at every call site.
package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"

	"github.com/gopherchess/goknight/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger
	uciLog      *logging.Logger
	uciLogFile  *os.File

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

	uciLogFilePath string
)

func init() {
	programName, _ := os.Executable()
	exeDir := filepath.Dir(programName)
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	uciLogFilePath = exeDir + "/../logs/" + exeName + "_ucilog.log"

	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
	uciLog = logging.MustGetLogger("UCI ")
}

// stdoutBackend builds a single-level logging backend writing to
// os.Stdout with format, leveled at level.
func stdoutBackend(format logging.Formatter, level logging.Level) logging.LeveledBackend {
	raw := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(raw, format))
	leveled.SetLevel(level, "")
	return leveled
}

// GetLog returns the standard Logger, writing to stdout at
// config.LogLevel.
func GetLog() *logging.Logger {
	standardLog.SetBackend(stdoutBackend(standardFormat, logging.Level(config.LogLevel)))
	return standardLog
}

// GetSearchLog returns the Logger used inside the search package,
// writing to stdout at config.LogLevel.
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(stdoutBackend(standardFormat, logging.Level(config.LogLevel)))
	return searchLog
}

// GetTestLog returns the Logger used by test files, writing to stdout
// at config.TestLogLevel.
func GetTestLog() *logging.Logger {
	testLog.SetBackend(stdoutBackend(standardFormat, logging.Level(config.TestLogLevel)))
	return testLog
}

// GetUciLog returns the Logger that records raw UCI protocol traffic.
// It always logs to stdout at DEBUG and additionally appends to a log
// file in the logs folder beside the executable's folder
// (<exeDir>/../logs) if that file can be opened.
func GetUciLog() *logging.Logger {
	uciFormat := logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
	stdoutBe := stdoutBackend(uciFormat, logging.DEBUG)

	var err error
	uciLogFile, err = os.OpenFile(uciLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("Logfile could not be created", err)
		uciLog.SetBackend(stdoutBe)
		return uciLog
	}

	raw := logging.NewLogBackend(uciLogFile, "", log.Lmsgprefix)
	fileBe := logging.AddModuleLevel(logging.NewBackendFormatter(raw, uciFormat))
	fileBe.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(logging.SetBackend(stdoutBe, fileBe))
	return uciLog
}
