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

package search

import (
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/gopherchess/goknight/internal/config"
	"github.com/gopherchess/goknight/internal/logging"
	"github.com/gopherchess/goknight/internal/position"
	. "github.com/gopherchess/goknight/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

// Setup the tests.
func TestMain(m *testing.M) {
	config.Setup()
	config.Settings.Search.UseBook = false
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestSearchIsReady(t *testing.T) {
	search := NewSearch()
	search.IsReady()
}

func TestSetupTimeControl(t *testing.T) {
	s := NewSearch()

	// 20 moves to go: (60s + 20*2s) / 20, minus the 10% safety margin
	p := position.NewPosition()
	sl := NewSearchLimits()
	sl.TimeControl = true
	sl.WhiteTime = 60 * time.Second
	sl.BlackTime = 60 * time.Second
	sl.WhiteInc = 2 * time.Second
	sl.BlackInc = 2 * time.Second
	sl.MovesToGo = 20
	assert.EqualValues(t, 4500, s.setupTimeControl(p, sl).Milliseconds())

	// no moves-to-go: 40 moves assumed in the opening
	sl.MovesToGo = 0
	assert.EqualValues(t, 3150, s.setupTimeControl(p, sl).Milliseconds())

	// 15 moves assumed at game phase 0
	p, _ = position.NewPositionFen("8/2P1P1P1/3PkP2/8/4K3/8/8/8 w - - 0 1")
	sl.WhiteInc = 0
	sl.BlackInc = 0
	assert.EqualValues(t, 3600, s.setupTimeControl(p, sl).Milliseconds())
}

func TestWaitWhileSearching(t *testing.T) {
	search := NewSearch()
	p := position.NewPosition()
	sl := NewSearchLimits()
	sl.Infinite = true
	go func() {
		time.Sleep(3 * time.Second)
		search.StopSearch()
	}()
	start := time.Now()
	search.StartSearch(*p, *sl)
	search.WaitWhileSearching()
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed.Milliseconds(), int64(2_000))
}

func TestIsSearching(t *testing.T) {
	search := NewSearch()
	p := position.NewPosition()
	sl := NewSearchLimits()
	search.StartSearch(*p, *sl)
	time.Sleep(time.Second)
	assert.True(t, search.IsSearching())
	search.StopSearch()
	search.WaitWhileSearching()
	assert.False(t, search.IsSearching())
}

// A search started on a position that is already mate reports the mate
// without a best move.
func TestMatePosition(t *testing.T) {
	search := NewSearch()
	p, _ := position.NewPositionFen("8/8/8/8/8/5K2/8/R4k2 b - -")
	sl := NewSearchLimits()
	search.StartSearch(*p, *sl)
	search.WaitWhileSearching()
	result := search.LastSearchResult()
	logTest.Debug(result.String())
	assert.EqualValues(t, -ValueCheckMate, result.BestValue)
}

func TestStaleMatePosition(t *testing.T) {
	search := NewSearch()
	p, _ := position.NewPositionFen("6R1/8/8/8/8/5K2/R7/7k b - -")
	sl := NewSearchLimits()
	search.StartSearch(*p, *sl)
	search.WaitWhileSearching()
	result := search.LastSearchResult()
	logTest.Debug(result.String())
	assert.EqualValues(t, ValueDraw, result.BestValue)
}

// Back rank mate in one: the search must find the mating rook lift and
// report a mate score one ply away.
func TestMateInOne(t *testing.T) {
	search := NewSearch()
	p, _ := position.NewPositionFen("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - -")
	sl := NewSearchLimits()
	sl.Depth = 4
	search.StartSearch(*p, *sl)
	search.WaitWhileSearching()
	result := search.LastSearchResult()
	logTest.Debug(result.String())
	assert.Equal(t, "a1a8", result.BestMove.StringUci())
	assert.EqualValues(t, ValueCheckMate-1, result.BestValue)
}
