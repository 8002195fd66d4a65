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

package evaluator

import (
	. "github.com/gopherchess/goknight/internal/config"
	. "github.com/gopherchess/goknight/internal/types"
)

// evaluatePawns scores the pawn structure of the position, checking the
// pawn hash cache first since pawn structure changes rarely relative to
// the rest of a position and is expensive enough to be worth caching.
func (e *Evaluator) evaluatePawns() *Score {
	scratch.MidGameValue = 0
	scratch.EndGameValue = 0

	if Settings.Eval.UsePawnCache {
		if entry := e.pawnCache.getEntry(e.position.PawnKey()); entry != nil {
			scratch.MidGameValue += entry.score.MidGameValue
			scratch.EndGameValue += entry.score.EndGameValue
			return &scratch
		}
	}

	e.pawnStructure(White, 1)
	e.pawnStructure(Black, -1)

	if Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &scratch)
	}

	return &scratch
}

// pawnStructure accumulates color c's pawn-structure terms into scratch
// with the given sign (+1 white, -1 black): isolated, doubled, passed,
// blocked, phalanx, and supported pawns. The maluses are stored as
// negative weights, so everything here is additive.
func (e *Evaluator) pawnStructure(c Color, sign int16) {
	ownPawns := e.position.PiecesBb(c, Pawn)
	oppPawns := e.position.PiecesBb(c.Flip(), Pawn)
	fwd := c.MoveDirection()

	for remaining := ownPawns; remaining != BbZero; {
		sq := remaining.PopLsb()

		if sq.NeighbourFilesMask()&ownPawns == BbZero {
			scratch.MidGameValue += sign * Settings.Eval.PawnIsolatedMidMalus
			scratch.EndGameValue += sign * Settings.Eval.PawnIsolatedEndMalus
		}

		// every pawn behind another own pawn on its file counts once
		if sq.FileOf().Bb()&sq.Ray(orientationOf(c))&ownPawns != BbZero {
			scratch.MidGameValue += sign * Settings.Eval.PawnDoubledMidMalus
			scratch.EndGameValue += sign * Settings.Eval.PawnDoubledEndMalus
		}

		if sq.PassedPawnMask(c)&oppPawns == BbZero {
			scratch.MidGameValue += sign * Settings.Eval.PawnPassedMidBonus
			scratch.EndGameValue += sign * Settings.Eval.PawnPassedEndBonus
		}

		if front := sq.To(fwd); front != SqNone && e.position.GetPiece(front) != PieceNone {
			scratch.MidGameValue += sign * Settings.Eval.PawnBlockedMidMalus
			scratch.EndGameValue += sign * Settings.Eval.PawnBlockedEndMalus
		}

		if (ShiftBitboard(sq.Bb(), East)|ShiftBitboard(sq.Bb(), West))&ownPawns != BbZero {
			scratch.MidGameValue += sign * Settings.Eval.PawnPhalanxMidBonus
			scratch.EndGameValue += sign * Settings.Eval.PawnPhalanxEndBonus
		}

		if GetPawnAttacks(c.Flip(), sq)&ownPawns != BbZero {
			scratch.MidGameValue += sign * Settings.Eval.PawnSupportedMidBonus
			scratch.EndGameValue += sign * Settings.Eval.PawnSupportedEndBonus
		}
	}
}

// orientationOf returns the ray orientation pointing forward for c,
// used to find own pawns ahead on the same file.
func orientationOf(c Color) Orientation {
	if c == White {
		return N
	}
	return S
}
