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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gopherchess/goknight/internal/position"
	. "github.com/gopherchess/goknight/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft counts leaf nodes of the full game tree to a fixed depth,
// used to validate the move generator against known node counts for
// a given position rather than to play chess.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopped          bool
}

// NewPerft returns a Perft ready to run.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop interrupts a perft run started in another goroutine at its
// next recursion step.
func (perft *Perft) Stop() {
	perft.stopped = true
}

// StartPerftMulti runs StartPerft once per depth from startDepth to
// endDepth inclusive, stopping early if Stop is called.
func (perft *Perft) StartPerftMulti(fen string, startDepth, endDepth int, onDemand bool) {
	perft.stopped = false
	for depth := startDepth; depth <= endDepth; depth++ {
		if perft.stopped {
			out.Print("perft multi-depth run stopped\n")
			return
		}
		perft.StartPerft(fen, depth, onDemand)
	}
}

// StartPerft runs a perft search from fen to depth and prints a
// result summary. onDemand selects the phased on-demand generator
// instead of materializing the full move list at every ply.
func (perft *Perft) StartPerft(fen string, depth int, onDemand bool) {
	perft.stopped = false
	if depth <= 0 {
		depth = 1
	}
	perft.resetCounters()

	rootPos, _ := position.NewPositionFen(fen)
	generators := make([]*Movegen, depth+1)
	for i := range generators {
		generators[i] = NewMoveGen()
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	var nodes uint64
	if onDemand {
		nodes = perft.searchOnDemand(depth, rootPos, generators)
	} else {
		nodes = perft.search(depth, rootPos, generators)
	}
	elapsed := time.Since(start)

	if nodes == 0 {
		out.Print("perft run stopped\n")
		return
	}
	perft.Nodes = nodes

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// search walks the game tree using a fully-materialized pseudo-legal
// move list at each ply.
func (perft *Perft) search(depth int, pos *position.Position, generators []*Movegen) uint64 {
	if perft.stopped {
		return 0
	}
	var nodes uint64
	for _, move := range *generators[depth].GeneratePseudoLegalMoves(pos, GenAll) {
		if perft.stopped {
			return 0
		}
		if depth > 1 {
			pos.DoMove(move)
			if pos.WasLegalMove() {
				nodes += perft.search(depth-1, pos, generators)
			}
			pos.UndoMove()
			continue
		}
		nodes += perft.countLeaf(pos, move, generators[0])
	}
	return nodes
}

// searchOnDemand is the same traversal as search but pulls moves one
// at a time from the phased on-demand generator.
func (perft *Perft) searchOnDemand(depth int, pos *position.Position, generators []*Movegen) uint64 {
	if perft.stopped {
		return 0
	}
	var nodes uint64
	mg := generators[depth]
	for move := mg.GetNextMove(pos, GenAll); move != MoveNone; move = mg.GetNextMove(pos, GenAll) {
		if perft.stopped {
			return 0
		}
		if depth > 1 {
			pos.DoMove(move)
			if pos.WasLegalMove() {
				nodes += perft.searchOnDemand(depth-1, pos, generators)
			}
			pos.UndoMove()
			continue
		}
		nodes += perft.countLeaf(pos, move, generators[0])
	}
	return nodes
}

// countLeaf plays move on pos, tallies its category into perft's
// counters if it was legal, and undoes it. It returns 1 for a legal
// leaf move, 0 otherwise.
func (perft *Perft) countLeaf(pos *position.Position, move Move, leafGen *Movegen) uint64 {
	wasCapture := pos.GetPiece(move.To()) != PieceNone
	moveType := move.MoveType()

	pos.DoMove(move)
	defer pos.UndoMove()

	if !pos.WasLegalMove() {
		return 0
	}

	if moveType == EnPassant {
		perft.EnpassantCounter++
		perft.CaptureCounter++
	}
	if wasCapture {
		perft.CaptureCounter++
	}
	if moveType == Castling {
		perft.CastleCounter++
	}
	if moveType == Promotion {
		perft.PromotionCounter++
	}
	if pos.HasCheck() {
		perft.CheckCounter++
	}
	if !leafGen.HasLegalMove(pos) {
		perft.CheckMateCounter++
	}
	return 1
}

func (perft *Perft) resetCounters() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
