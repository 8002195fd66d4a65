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

// Package history tracks move-ordering statistics gathered while
// searching, so later searches (and later nodes of the same search) can
// try the moves most likely to be good first.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/gopherchess/goknight/internal/types"
)

var printer = message.NewPrinter(language.German)

// History records, per color and from/to square pair, how often a
// quiet move caused a beta cutoff (HistoryCount), and the last move
// that refuted a given opponent move at that from/to pair
// (CounterMoves). Both feed move ordering in the search.
type History struct {
	HistoryCount [2][64][64]int64
	CounterMoves [64][64]Move
}

func (h History) String() string {
	var sb strings.Builder
	for from := SqA1; from < SqNone; from++ {
		for to := SqA1; to < SqNone; to++ {
			sb.WriteString(printer.Sprintf("Move=%s%s: ", from.String(), to.String()))
			for c := White; c <= Black; c++ {
				sb.WriteString(printer.Sprintf("%s=%-7d ", c.String(), h.HistoryCount[c][from][to]))
			}
			sb.WriteString(printer.Sprintf("cm=%s\n", h.CounterMoves[from][to].StringUci()))
		}
	}
	return sb.String()
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}
