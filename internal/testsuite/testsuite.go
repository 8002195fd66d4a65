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

// Package testsuite runs batches of EPD (Extended Position Description)
// test positions against the search. An EPD line is a FEN plus opcodes
// describing the expected outcome; this package implements the "bm"
// (best move), "am" (avoid move) and "dm" (direct mate) opcodes.
// https://www.chessprogramming.org/Extended_Position_Description
package testsuite

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gopherchess/goknight/internal/config"
	myLogging "github.com/gopherchess/goknight/internal/logging"
	"github.com/gopherchess/goknight/internal/movegen"
	"github.com/gopherchess/goknight/internal/moveslice"
	"github.com/gopherchess/goknight/internal/position"
	"github.com/gopherchess/goknight/internal/search"
	. "github.com/gopherchess/goknight/internal/types"
	"github.com/gopherchess/goknight/internal/util"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// testType is the EPD opcode a Test was parsed from.
type testType uint8

const (
	None testType = iota
	DM   testType = iota
	BM   testType = iota
	AM   testType = iota
)

// resultType is the outcome of running a single Test.
type resultType uint8

const (
	NotTested resultType = iota
	Skipped   resultType = iota
	Failed    resultType = iota
	Success   resultType = iota
)

// SuiteResult tallies the outcome of running every Test in a TestSuite.
type SuiteResult struct {
	Counter          int
	SuccessCounter   int
	FailedCounter    int
	SkippedCounter   int
	NotTestedCounter int
	Nodes            uint64
	Time             time.Duration
}

// Test is one EPD line: the starting position, the expected opcode
// result, and (after RunTests) what the search actually produced.
type Test struct {
	id          string
	fen         string
	tType       testType
	targetMoves moveslice.MoveSlice
	mateDepth   int
	target      Move
	actual      Move
	value       Value
	rType       resultType
	line        string
	nps         uint64
}

// TestSuite is a parsed EPD file ready to run via RunTests.
type TestSuite struct {
	Tests      []*Test
	Time       time.Duration
	Depth      int
	FilePath   string
	LastResult *SuiteResult
}

// NewTestSuite parses filePath into a set of Tests. searchTime and depth
// become the search limits each Test is run under; a zero searchTime
// with non-zero depth runs to a fixed depth instead of a time budget.
func NewTestSuite(filePath string, searchTime time.Duration, depth int) (*TestSuite, error) {
	out.Println("Preparing Test Suite", filePath)

	if log == nil {
		log = myLogging.GetLog()
	}

	config.LogLevel = 2
	config.SearchLogLevel = 2
	config.Settings.Search.UseBook = false

	lines, err := readLines(filePath)
	if err != nil {
		return nil, err
	}

	suite := &TestSuite{
		Tests:    make([]*Test, 0, len(lines)),
		Time:     searchTime,
		Depth:    depth,
		FilePath: filePath,
	}
	for _, line := range lines {
		if t := getTest(line); t != nil {
			suite.Tests = append(suite.Tests, t)
		}
	}

	return suite, nil
}

// RunTests runs every Test in the suite sequentially against a fresh
// search instance and leaves the tally in ts.LastResult.
func (ts *TestSuite) RunTests() {
	if len(ts.Tests) == 0 {
		out.Printf("No tests to run\n")
		return
	}

	start := time.Now()

	s := search.NewSearch()
	limits := search.NewSearchLimits()
	limits.MoveTime = ts.Time
	limits.Depth = ts.Depth
	if limits.MoveTime > 0 {
		limits.TimeControl = true
	}

	ts.printHeader()
	for i, t := range ts.Tests {
		out.Printf("Test %d of %d\nTest: %s -- Target Result %s\n", i+1, len(ts.Tests), t.line, t.targetMoves.StringUci())
		testStart := time.Now()
		runSingleTest(s, limits, t)
		t.nps = util.Nps(s.NodesVisited(), s.LastSearchResult().SearchTime)
		out.Printf("Test finished in %d ms with result %s (%s) - nps: %d\n\n",
			time.Since(testStart).Milliseconds(), t.rType.String(), t.actual.StringUci(), t.nps)
	}

	result := &SuiteResult{Nodes: s.NodesVisited(), Time: time.Since(start)}
	for _, t := range ts.Tests {
		result.Counter++
		switch t.rType {
		case NotTested:
			result.NotTestedCounter++
		case Skipped:
			result.SkippedCounter++
		case Failed:
			result.FailedCounter++
		case Success:
			result.SuccessCounter++
		}
	}
	ts.LastResult = result

	ts.printReport(result)
}

func (ts *TestSuite) printHeader() {
	out.Printf("Running Test Suite\n")
	out.Printf("==================================================================\n")
	out.Printf("EPD File:    %s\n", ts.FilePath)
	out.Printf("SearchTime:  %d ms\n", ts.Time.Milliseconds())
	out.Printf("MaxDepth:    %d\n", ts.Depth)
	out.Printf("Date:        %s\n", time.Now().Local())
	out.Printf("No of tests: %d\n", len(ts.Tests))
	out.Println()
}

func (ts *TestSuite) printReport(result *SuiteResult) {
	out.Printf("Results for Test Suite\n", ts.FilePath)
	out.Printf("------------------------------------------------------------------------------------------------------------------------------------\n")
	out.Printf("EPD File:   %s\n", ts.FilePath)
	out.Printf("SearchTime: %d ms\n", ts.Time.Milliseconds())
	out.Printf("MaxDepth:   %d\n", ts.Depth)
	out.Printf("Date:       %s\n", time.Now().Local())
	out.Printf("====================================================================================================================================\n")
	out.Printf(" %-4s | %-10s | %-8s | %-8s | %-15s | %s | %s\n", " Nr.", "Result", "Move", "Value", "Expected Result", "Fen", "Id")
	out.Printf("====================================================================================================================================\n")
	for i, t := range ts.Tests {
		if t.tType == DM {
			out.Printf(" %-4d | %-10s | %-8s | %-8s | %s%-15d | %s | %s\n",
				i+1, t.rType.String(), t.actual.StringUci(), t.value.String(), "dm ", t.mateDepth, t.fen, t.id)
		} else {
			out.Printf(" %-4d | %-10s | %-8s | %-8s | %s %-15s | %s | %s\n",
				i+1, t.rType.String(), t.actual.StringUci(), t.value.String(), t.tType.String(), t.targetMoves.StringUci(), t.fen, t.id)
		}
	}
	out.Printf("====================================================================================================================================\n")
	out.Printf("Summary:\n")
	out.Printf("EPD File:   %s\n", ts.FilePath)
	out.Printf("SearchTime: %d ms\n", ts.Time.Milliseconds())
	out.Printf("MaxDepth:   %d\n", ts.Depth)
	out.Printf("Date:       %s\n", time.Now().Local())
	out.Printf("Successful: %-3d (%d %%)\n", result.SuccessCounter, 100*result.SuccessCounter/result.Counter)
	out.Printf("Failed:     %-3d (%d %%)\n", result.FailedCounter, 100*result.FailedCounter/result.Counter)
	out.Printf("Skipped:    %-3d (%d %%)\n", result.SkippedCounter, 100*result.SkippedCounter/result.Counter)
	out.Printf("Not tested: %-3d (%d %%)\n", result.NotTestedCounter, 100*result.NotTestedCounter/result.Counter)
	out.Printf("Test time: %s\n", result.Time)
	out.Printf("Configuration: %s\n", config.Settings.String())
}

// runSingleTest resets the search state, builds the EPD's start
// position and dispatches to the opcode-specific checker.
func runSingleTest(s *search.Search, limits *search.Limits, t *Test) {
	s.NewGame()
	limits.Mate = 0
	p, _ := position.NewPositionFen(t.fen)
	switch t.tType {
	case DM:
		limits.Mate = t.mateDepth
		finishTest(s, limits, p, t, wantsString(s, fmt.Sprintf("mate %d", t.mateDepth)))
	case BM:
		finishTest(s, limits, p, t, wantsMove(s, t.targetMoves, true))
	case AM:
		finishTest(s, limits, p, t, wantsMove(s, t.targetMoves, false))
	default:
		log.Warningf("Unknown Test type: %d", t.tType)
	}
}

// finishTest runs the search and records its result, deciding success
// via the supplied predicate which is evaluated after the search
// completes (predicates close over s so they can read its result).
func finishTest(s *search.Search, limits *search.Limits, p *position.Position, t *Test, success func() bool) {
	s.StartSearch(*p, *limits)
	s.WaitWhileSearching()
	t.actual = s.LastSearchResult().BestMove
	t.value = s.LastSearchResult().BestValue
	if success() {
		log.Infof("TestSet: id = '%s' SUCCESS", t.id)
		t.rType = Success
	} else {
		log.Infof("TestSet: id = '%s' FAILED", t.id)
		t.rType = Failed
	}
}

// wantsString reports whether the search's best value, once computed,
// stringifies to want (used for the "dm" mate-in-n opcode).
func wantsString(s *search.Search, want string) func() bool {
	return func() bool {
		return s.LastSearchResult().BestValue.String() == want
	}
}

// wantsMove reports whether the search's best move is among candidates,
// with the sense inverted for "am" (avoid move) tests: match==true
// means a hit is success ("bm"), match==false means a hit is failure
// ("am").
func wantsMove(s *search.Search, candidates moveslice.MoveSlice, match bool) func() bool {
	return func() bool {
		best := s.LastSearchResult().BestMove
		for _, m := range candidates {
			if m == best {
				return match
			}
		}
		return !match
	}
}

var leadingComment = regexp.MustCompile(`^\s*#.*$`)
var trailingComment = regexp.MustCompile(`^(.*)#([^;]*)$`)
var epdLine = regexp.MustCompile(`^\s*(.*?) (bm|dm|am) (.*?);(.* id "(.*?)";)?.*$`)

// getTest parses a single EPD line into a Test, or nil if the line is
// blank, a comment, or doesn't match a supported opcode.
func getTest(line string) *Test {
	line = strings.TrimSpace(line)
	line = leadingComment.ReplaceAllString(line, "")
	line = trailingComment.ReplaceAllString(line, "")
	if len(line) == 0 {
		return nil
	}

	if !epdLine.MatchString(line) {
		log.Warningf("No EPD found in %s", line)
		return nil
	}
	parts := epdLine.FindStringSubmatch(line)

	fen := parts[1]
	p, err := position.NewPositionFen(fen)
	if err != nil {
		log.Warningf("fen part of EPD is invalid. %s", fen)
		return nil
	}

	var opcode testType
	switch parts[2] {
	case "dm":
		opcode = DM
	case "bm":
		opcode = BM
	case "am":
		opcode = AM
	default:
		log.Warningf("Opcode from EPD is invalid or not implemented %s", parts[2])
		return nil
	}

	targets := moveslice.NewMoveSlice(4)
	mateDepth := 0
	switch opcode {
	case BM, AM:
		mg := movegen.NewMoveGen()
		for _, token := range strings.Split(parts[3], " ") {
			token = strings.TrimSpace(strings.NewReplacer("!", "", "?", "").Replace(token))
			if m := mg.GetMoveFromSan(p, token); m != MoveNone {
				targets.PushBack(m)
			}
		}
		if targets.Len() == 0 {
			log.Warningf("Result moves from EPD is/are invalid on this position %s", parts[3])
			return nil
		}
	case DM:
		var err error
		mateDepth, err = strconv.Atoi(parts[3])
		if err != nil {
			log.Warningf("Direct mate depth from EPD is invalid %s", parts[3])
			return nil
		}
	}

	return &Test{
		id:          parts[5],
		fen:         fen,
		tType:       opcode,
		targetMoves: *targets,
		mateDepth:   mateDepth,
		line:        line,
	}
}

// readLines resolves filePath to an absolute path and reads it line by line.
func readLines(filePath string) ([]string, error) {
	if !filepath.IsAbs(filePath) {
		wd, _ := os.Getwd()
		filePath = wd + "/" + filePath
	}
	filePath = filepath.Clean(filePath)

	if _, err := os.Stat(filePath); err != nil {
		log.Errorf("File \"%s\" does not exist\n", filePath)
		return nil, err
	}

	log.Infof("Reading test suite tests from file: %s\n", filePath)
	start := time.Now()

	f, err := os.Open(filePath)
	if err != nil {
		log.Errorf("File \"%s\" could not be read; %s\n", filePath, err)
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Errorf("File \"%s\" could not be closed: %s\n", filePath, err)
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("Error while reading file \"%s\": %s\n", filePath, err)
		return nil, err
	}

	log.Infof("Finished reading %d lines from file in: %d ms\n", len(lines), time.Since(start).Milliseconds())
	return lines, nil
}

func (rt *resultType) String() string {
	switch *rt {
	case NotTested:
		return "Not tested"
	case Skipped:
		return "Skipped"
	case Failed:
		return "Failed"
	case Success:
		return "Success"
	default:
		return "N/A"
	}
}

func (tt *testType) String() string {
	switch *tt {
	case BM:
		return "bm"
	case AM:
		return "am"
	case DM:
		return "dm"
	default:
		return "N/A"
	}
}
