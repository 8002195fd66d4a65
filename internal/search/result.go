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
	"fmt"
	"time"

	"github.com/gopherchess/goknight/internal/moveslice"
	. "github.com/gopherchess/goknight/internal/types"
)

// Result is the outcome of one completed (or stopped) search: the move
// to play, the move expected in reply, the value the search attached to
// them, and how deep and how long the search ran. BookMove marks a
// result answered from the opening book, in which case value and depth
// carry no information.
type Result struct {
	BestMove    Move
	PonderMove  Move
	BestValue   Value
	SearchDepth int
	ExtraDepth  int
	BookMove    bool
	SearchTime  time.Duration
	Pv          moveslice.MoveSlice
}

func (r *Result) String() string {
	return fmt.Sprintf(
		"best move = %s (%s), ponder move = %s, depth = %d(%d), time = %s, book move = %v, pv = %s",
		r.BestMove.StringUci(), r.BestValue.String(), r.PonderMove.StringUci(),
		r.SearchDepth, r.ExtraDepth, r.SearchTime, r.BookMove, r.Pv.StringUci())
}
