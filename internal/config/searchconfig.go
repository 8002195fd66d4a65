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

package config

// searchConfiguration is the Search section of the TOML config file —
// every feature toggle and tunable constant alphabeta/search.go reads
// to decide which pruning, extension, and ordering heuristics run.
type searchConfiguration struct {
	// opening book
	UseBook    bool
	BookPath   string
	BookFile   string
	BookFormat string

	UsePonder bool

	// Threads is accepted over UCI for GUI compatibility; only a single
	// search ever runs.
	Threads int

	// quiescence search
	UseQuiescence   bool
	UseQSStandpat   bool
	UseSEE          bool
	UseQSTT         bool
	UseQFP          bool
	UsePromNonQuiet bool

	// move ordering
	UseMoveOrder      bool
	UsePVS            bool
	UseAspiration     bool
	UseMTDf           bool
	UseKiller         bool
	UseHistoryCounter bool
	UseCounterMoves   bool
	UseIID            bool
	IIDDepth          int
	IIDReduction      int

	// transposition table
	UseTT               bool
	TTSize              int
	TTSizeExponent      int
	UseTTAgeReplacement bool
	UseTTMove           bool
	UseTTValue          bool
	UseEvalTT           bool

	// pruning before move generation
	UseMDP       bool
	UseRFP       bool
	UseRazoring  bool
	RazorMargin  int
	UseNullMove  bool
	NmpDepth     int
	NmpReduction int

	// search-depth extensions
	UseExt         bool
	UseExtAddDepth bool
	UseCheckExt    bool
	UseThreatExt   bool

	// pruning after move generation, before making the move
	UseFP            bool
	UseLmp           bool
	UseLmr           bool
	LmrDepth         int
	LmrMovesSearched int
}

// defaultSearchConfiguration seeds Settings.Search before any config
// file is decoded over it.
var defaultSearchConfiguration = searchConfiguration{
	UseBook:    true,
	BookPath:   "./assets/books",
	BookFile:   "book.txt",
	BookFormat: "Simple",

	UsePonder: true,

	Threads: 1,

	UseQuiescence:   true,
	UseQSStandpat:   true,
	UseSEE:          true,
	UseQSTT:         true,
	UseQFP:          false,
	UsePromNonQuiet: false,

	UseMoveOrder:      true,
	UsePVS:            true,
	UseAspiration:     false,
	UseMTDf:           false,
	UseKiller:         true,
	UseHistoryCounter: true,
	UseCounterMoves:   true,
	UseIID:            true,
	IIDDepth:          6,
	IIDReduction:      2,

	UseTT:               true,
	TTSize:              128,
	TTSizeExponent:      0, // 0 means "derive from TTSize MB instead"
	UseTTAgeReplacement: false,
	UseTTMove:           true,
	UseTTValue:          true,
	UseEvalTT:           false,

	UseMDP:       true,
	UseRFP:       false,
	UseRazoring:  false,
	RazorMargin:  531,
	UseNullMove:  true,
	NmpDepth:     3,
	NmpReduction: 2,

	UseExt:         true,
	UseExtAddDepth: false,
	UseCheckExt:    true,
	UseThreatExt:   false,

	UseFP:            false,
	UseLmp:           true,
	UseLmr:           true,
	LmrDepth:         3,
	LmrMovesSearched: 3,
}

func init() {
	Settings.Search = defaultSearchConfiguration
}

// setupSearch would resolve any Search fields needing post-decode
// adjustment; none currently do.
func setupSearch() {
}
