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

package testsuite

import (
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gopherchess/goknight/internal/config"
	"github.com/gopherchess/goknight/internal/util"
)

// FeatureTests runs every *.epd file in folder as its own TestSuite and
// returns a formatted report summarizing all of them plus a grand total.
func FeatureTests(folder string, searchTime time.Duration, searchDepth int) string {
	files, err := epdFiles(folder)
	if err != nil {
		log.Fatal(err)
	}

	config.Settings.Search.UseBook = false

	results := make(map[string]TestSuite, len(files))
	executedTests := 0
	start := time.Now()
	for _, name := range files {
		ts, _ := NewTestSuite(folder+name, searchTime, searchDepth)
		ts.RunTests()
		executedTests += len(ts.Tests)
		results[name] = *ts
	}
	elapsed := time.Since(start)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	return formatFeatureReport(folder, names, results, searchTime, searchDepth, executedTests, elapsed)
}

// epdFiles lists the base names of every *.epd file directly under folder.
func epdFiles(folder string) ([]string, error) {
	entries, err := ioutil.ReadDir(folder)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, f := range entries {
		if filepath.Ext(f.Name()) == ".epd" {
			files = append(files, f.Name())
		}
	}
	return files, nil
}

func formatFeatureReport(folder string, names []string, results map[string]TestSuite, searchTime time.Duration, searchDepth, executedTests int, elapsed time.Duration) string {
	var total SuiteResult
	var b strings.Builder

	b.WriteString(out.Sprintf("Feature Test Result Report\n"))
	b.WriteString(out.Sprintf("==============================================================================\n"))
	b.WriteString(out.Sprintf("Date                 : %s\n", time.Now()))
	b.WriteString(out.Sprintf("Test took            : %s\n", elapsed))
	b.WriteString(out.Sprintf("Test setup           : search time: %s max depth: %d\n", searchTime, searchDepth))
	b.WriteString(out.Sprintf("Number of testsuites : %d\n", len(results)))
	b.WriteString(out.Sprintf("Number of tests      : %d\n", executedTests))
	b.WriteString(out.Sprintln())
	b.WriteString(out.Sprintf("===============================================================================================================================================\n"))
	b.WriteString(out.Sprintf(" %-25s | %-12s | %-15s | %-10s | %-10s | %-10s | %-10s | %-6s | %s\n", "Test Suite", "Success Rate", "          Nodes", "Successful", "    Failed", "   Skipped", "       N/A", "  Tests", "File"))
	b.WriteString(out.Sprintf("===============================================================================================================================================\n"))
	for _, name := range names {
		r := results[name].LastResult
		successRate := float64(r.SuccessCounter) / float64(r.Counter) * 100
		total.Nodes += r.Nodes
		total.Time += r.Time
		total.SuccessCounter += r.SuccessCounter
		total.FailedCounter += r.FailedCounter
		total.SkippedCounter += r.SkippedCounter
		total.NotTestedCounter += r.NotTestedCounter
		total.Counter += r.Counter
		b.WriteString(out.Sprintf(" %-25s |      %5.1f %% | %15d |   %8d |   %8d |   %8d |   %8d |  %6d | %s\n",
			name, successRate, r.Nodes, r.SuccessCounter, r.FailedCounter, r.SkippedCounter, r.NotTestedCounter, len(results[name].Tests), folder+name))
	}
	totalSuccessRate := float64(total.SuccessCounter) / float64(total.Counter) * 100
	b.WriteString(out.Sprintf("-----------------------------------------------------------------------------------------------------------------------------------------------\n"))
	b.WriteString(out.Sprintf(" %-25s |      %5.1f %% | %15d |   %8d |   %8d |   %8d |   %8d |  %6d | %s\n",
		"TOTAL", totalSuccessRate, total.Nodes, total.SuccessCounter, total.FailedCounter, total.SkippedCounter, total.NotTestedCounter, total.Counter, ""))
	b.WriteString(out.Sprintf("===============================================================================================================================================\n"))
	b.WriteString(out.Sprintln())
	b.WriteString(out.Sprintf("Total Time: %s\n", total.Time))
	b.WriteString(out.Sprintf("Total NPS : %d\n", util.Nps(total.Nodes, total.Time)))
	b.WriteString(out.Sprintln())
	b.WriteString(out.Sprintf("Configuration: %s\n", config.Settings.String()))
	b.WriteString(out.Sprintln())

	return b.String()
}
