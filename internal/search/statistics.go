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
	"github.com/gopherchess/goknight/internal/moveslice"
	. "github.com/gopherchess/goknight/internal/types"
)

// Statistics accumulates counters and current-iteration info gathered
// during a search. None of it feeds search decisions; it exists purely
// to report search quality (move ordering, pruning effectiveness, TT
// hit rate) to the UCI "info" output and to tests.
type Statistics struct {
	// cutoffs and window re-searches
	BetaCuts             uint64
	BetaCuts1st          uint64
	RootPvsResearches    uint64
	PvsResearches        uint64
	AspirationResearches uint64
	BestMoveChange       uint64

	// pruning
	Mdp          uint64
	RfpPrunings  uint64
	RazorCuts    uint64
	NullMoveCuts uint64
	NMPMateAlpha uint64
	NMPMateBeta  uint64
	FpPrunings   uint64
	QFpPrunings  uint64
	LmpCuts      uint64

	// reductions and extensions
	LmrReductions   uint64
	LmrResearches   uint64
	CheckExtension  uint64
	ThreatExtension uint64

	// transposition table
	TTHit       uint64
	TTMiss      uint64
	TTMoveUsed  uint64
	NoTTMove    uint64
	TTCuts      uint64
	TTNoCuts    uint64
	IIDsearches uint64
	IIDmoves    uint64

	// evaluation and terminal nodes
	Evaluations            uint64
	EvaluationsFromTT      uint64
	LeafPositionsEvaluated uint64
	StandpatCuts           uint64
	CheckInQS              uint64
	Checkmates             uint64
	Stalemates             uint64

	// current-iteration info for UCI reporting
	CurrentIterationDepth    int
	CurrentSearchDepth       int
	CurrentExtraSearchDepth  int
	CurrentVariation         moveslice.MoveSlice
	CurrentRootMoveIndex     int
	CurrentRootMove          Move
	CurrentBestRootMove      Move
	CurrentBestRootMoveValue Value
}

func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}
