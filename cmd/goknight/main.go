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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gopherchess/goknight/internal/config"
	"github.com/gopherchess/goknight/internal/logging"
	"github.com/gopherchess/goknight/internal/movegen"
	"github.com/gopherchess/goknight/internal/position"
	"github.com/gopherchess/goknight/internal/search"
	"github.com/gopherchess/goknight/internal/testsuite"
	"github.com/gopherchess/goknight/internal/uci"
	"github.com/gopherchess/goknight/internal/util"
	"github.com/gopherchess/goknight/internal/version"
)

var stdout = message.NewPrinter(language.German)

// cliFlags holds every command-line option main accepts, grouped here
// instead of as a page of loose local vars in main itself.
type cliFlags struct {
	version         bool
	configFile      string
	logLvl          string
	searchLogLvl    string
	logPath         string
	bookPath        string
	bookFile        string
	bookFormat      string
	testSuite       string
	testMovetimeMs  int
	testSearchdepth int
	perftDepth      int
	fen             string
	npsSeconds      int
	profile         bool
}

func parseFlags() *cliFlags {
	f := &cliFlags{}
	flag.BoolVar(&f.version, "version", false, "prints version and exits")
	flag.StringVar(&f.configFile, "config", "./config.toml", "path to configuration settings file")
	flag.StringVar(&f.logLvl, "loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	flag.StringVar(&f.searchLogLvl, "searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	flag.StringVar(&f.logPath, "logpath", "../logs", "path where to write log files to")
	flag.StringVar(&f.bookPath, "bookpath", "../assets/books", "path to opening book files")
	flag.StringVar(&f.bookFile, "bookfile", "", "opening book file\nprovide path if file is not in same directory as executable\nPlease also provide bookFormat otherwise this will be ignored")
	flag.StringVar(&f.bookFormat, "bookFormat", "", "format of opening book\n(Simple|San|Pgn)")
	flag.StringVar(&f.testSuite, "testsuite", "", "path to file containing EPD tests or folder containing EPD files")
	flag.IntVar(&f.testMovetimeMs, "testtime", 2000, "search time for each test position in milliseconds")
	flag.IntVar(&f.testSearchdepth, "testdepth", 0, "search depth limit for each test position")
	flag.IntVar(&f.perftDepth, "perft", 0, "starts perft on the start position with the given depth\nuse -fen to provide a different position")
	flag.StringVar(&f.fen, "fen", position.StartFen, "fen for perft and nps test")
	flag.IntVar(&f.npsSeconds, "nps", 0, "starts nodes per second test on the start position for given amount of seconds\nuse -fen to provide a different position")
	flag.BoolVar(&f.profile, "profile", false, "writes a CPU profile (cpu.pprof) to the working directory\nview with: go tool pprof -http=localhost:8080 <binary> cpu.pprof")
	flag.Parse()
	return f
}

// applyToConfig overlays command-line overrides onto the settings
// config.Setup() already loaded from the config file and its defaults.
func (f *cliFlags) applyToConfig() {
	if f.logPath != "" {
		config.Settings.Log.LogPath = f.logPath
	}
	if lvl, found := config.LogLevels[f.logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[f.searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	if f.bookPath != "" {
		config.Settings.Search.BookPath = f.bookPath
	}
	if f.bookFile != "" && f.bookFormat != "" {
		config.Settings.Search.BookFile = f.bookFile
		config.Settings.Search.BookFormat = f.bookFormat
	}
}

func main() {
	f := parseFlags()
	if f.version {
		printVersionInfo()
		return
	}

	if f.profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// ConfFile must be set before Setup() or the default path is used.
	config.ConfFile = f.configFile
	config.Setup()
	f.applyToConfig()

	// Reset the standard logger's level now that config overrides are
	// in. Most packages hold the standard logger as a global var set up
	// at package-init time, before any flags are parsed.
	logging.GetLog()

	switch {
	case f.npsSeconds != 0:
		runNpsBenchmark(f)
	case f.perftDepth != 0:
		runPerft(f)
	case f.testSuite != "":
		runTestSuite(f)
	default:
		uci.NewUciHandler().Loop()
	}
}

func runNpsBenchmark(f *cliFlags) {
	config.Settings.Search.UseBook = false
	s := search.NewSearch()
	p := position.NewPosition(f.fen)
	limits := search.NewSearchLimits()
	limits.TimeControl = true
	limits.MoveTime = time.Duration(f.npsSeconds) * time.Second
	s.StartSearch(*p, *limits)
	s.WaitWhileSearching()
	stdout.Println()
	stdout.Println("NPS : ", util.Nps(s.NodesVisited(), s.LastSearchResult().SearchTime))
}

func runPerft(f *cliFlags) {
	var p movegen.Perft
	for depth := 1; depth <= f.perftDepth; depth++ {
		p.StartPerft(f.fen, depth, true)
	}
}

func runTestSuite(f *cliFlags) {
	info, err := os.Stat(f.testSuite)
	if err != nil {
		fmt.Println(err)
		return
	}
	movetime := time.Duration(f.testMovetimeMs) * time.Millisecond
	switch {
	case info.Mode().IsDir():
		stdout.Println(testsuite.FeatureTests(f.testSuite+"/", movetime, f.testSearchdepth))
	case info.Mode().IsRegular():
		ts, _ := testsuite.NewTestSuite(f.testSuite, movetime, f.testSearchdepth)
		ts.RunTests()
	}
}

func printVersionInfo() {
	stdout.Printf("GoKnight %s\n", version.Version())
	stdout.Println("Environment:")
	stdout.Printf("  Using GO version %s\n", runtime.Version())
	stdout.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	stdout.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	stdout.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	stdout.Printf("  Working directory: %s\n", cwd)
}
