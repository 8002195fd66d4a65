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

// Package evaluator scores a chess position from white's point of view:
// material, tapered piece-square tables, pawn structure, mobility, and a
// handful of piece- and king-safety heuristics, combined into a single
// centipawn Value for the search to negamax over.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gopherchess/goknight/internal/attacks"
	"github.com/gopherchess/goknight/internal/config"
	myLogging "github.com/gopherchess/goknight/internal/logging"
	"github.com/gopherchess/goknight/internal/position"
	. "github.com/gopherchess/goknight/internal/types"
)

var out = message.NewPrinter(language.German)

// Evaluator holds the scratch state needed to score one position: which
// position is being scored, whose turn it is, cached king squares/rings,
// and an optional pawn-structure cache shared across calls.
//
// Create one with NewEvaluator() and reuse it across an entire search.
type Evaluator struct {
	log *logging.Logger

	position        *position.Position
	gamePhaseFactor float64
	us              Color
	them            Color
	ourKing         Square
	theirKing       Square
	kingRing        [ColorLength]Bitboard
	allPieces       Bitboard
	ourPieces       Bitboard

	score Score

	attack *attacks.Attacks

	pawnCache *pawnCache
}

// scratch is a reused Score returned by the per-term helpers below, so
// scoring a node's pieces/king/pawns never allocates. Every helper
// overwrites it fully before returning, so callers must consume the
// pointer before the next helper call.
var scratch = Score{}

// lazyEvalMargin[phase] is the lazy-eval early-exit threshold for a given
// game phase, widened in the opening and narrowed toward the endgame.
var lazyEvalMargin [GamePhaseMax + 1]int16

func init() {
	for phase := 0; phase <= GamePhaseMax; phase++ {
		factor := float64(phase) / GamePhaseMax
		base := config.Settings.Eval.LazyEvalThreshold
		lazyEvalMargin[phase] = base + int16(float64(base)*factor)
	}
}

// NewEvaluator builds an Evaluator, enabling the pawn-structure cache
// unless it has been turned off in configuration.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		log:    myLogging.GetLog(),
		attack: attacks.NewAttacks(),
	}
	if config.Settings.Eval.UsePawnCache {
		e.pawnCache = newPawnCache()
	} else {
		e.log.Info("Pawn Cache is disabled in configuration")
	}
	return e
}

// InitEval primes the evaluator's per-position scratch fields. Evaluate
// calls this itself; it is exported separately so tests can run the
// individual scoring helpers against a fixed position.
func (e *Evaluator) InitEval(p *position.Position) {
	e.position = p
	e.gamePhaseFactor = p.GamePhaseFactor()
	e.us = p.NextPlayer()
	e.them = e.us.Flip()
	e.ourKing = e.position.KingSquare(e.us)
	e.theirKing = e.position.KingSquare(e.them)
	e.kingRing[e.us] = GetAttacksBb(King, e.ourKing, BbZero)
	e.kingRing[e.them] = GetAttacksBb(King, e.theirKing, BbZero)
	e.allPieces = e.position.OccupiedAll()
	e.ourPieces = e.position.OccupiedBb(e.us)

	e.score.MidGameValue = 0
	e.score.EndGameValue = 0

	if config.Settings.Eval.UseAttacksInEval {
		e.attack.Clear()
	}
}

// Evaluate scores p from the next player's perspective: positive means
// the side to move stands better.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	e.InitEval(p)
	return e.evaluate()
}

// tapered blends the accumulated mid/end scores by the current game-phase
// factor into a single value, still from white's perspective.
func (e *Evaluator) tapered() Value {
	return e.score.ValueFromScore(e.gamePhaseFactor)
}

// evaluate runs every enabled scoring term and returns the final,
// perspective-adjusted value. Assumes InitEval has already run.
func (e *Evaluator) evaluate() Value {
	if e.position.HasInsufficientMaterial() {
		return ValueDraw
	}

	// Every term below accumulates white-relative centipawns; the
	// perspective flip happens once, in finalEval.

	if config.Settings.Eval.UseMaterialEval {
		e.score.MidGameValue = int16(e.position.Material(White) - e.position.Material(Black))
		e.score.EndGameValue = e.score.MidGameValue
	}

	if config.Settings.Eval.UsePositionalEval {
		e.score.MidGameValue += int16(e.position.PsqMidValue(White) - e.position.PsqMidValue(Black))
		e.score.EndGameValue += int16(e.position.PsqEndValue(White) - e.position.PsqEndValue(Black))
	}

	// optional bonus for the side to move, smoothing evaluation swings
	// between plies. Zero by default so a symmetric position scores
	// exactly zero.
	e.score.MidGameValue += config.Settings.Eval.Tempo

	if config.Settings.Eval.UseLazyEval {
		margin := Value(lazyEvalMargin[e.position.GamePhase()])
		if rough := e.tapered(); rough > margin || rough < -margin {
			return e.finalEval(rough)
		}
	}

	if config.Settings.Eval.UseMobility {
		e.score.Add(e.mobility())
	}

	if config.Settings.Eval.UsePawnEval {
		e.score.Add(e.evaluatePawns())
	}

	if config.Settings.Eval.UseAttacksInEval {
		e.attack.Compute(e.position)
	}

	if config.Settings.Eval.UseAdvancedPieceEval {
		for _, pt := range [...]PieceType{Knight, Bishop, Rook, Queen} {
			e.score.Add(e.evalPieceType(White, pt))
			e.score.Sub(e.evalPieceType(Black, pt))
		}
	}

	if config.Settings.Eval.UseKingEval {
		e.score.Add(e.evalKing(White))
		e.score.Sub(e.evalKing(Black))
	}

	return e.finalEval(e.tapered())
}

// finalEval flips a white-relative value to the next player's perspective.
func (e *Evaluator) finalEval(value Value) Value {
	return value * Value(e.position.NextPlayer().Direction())
}

// mobility scores the destination-square counts of both sides' knights,
// bishops, rooks and queens (squares occupied by own pieces excluded),
// weighted by MobilityBonus, white minus black.
func (e *Evaluator) mobility() *Score {
	occupied := e.position.OccupiedAll()

	diff := 0
	for c := White; c <= Black; c++ {
		own := e.position.OccupiedBb(c)
		count := 0
		for pt := Knight; pt <= Queen; pt++ {
			for pieces := e.position.PiecesBb(c, pt); pieces != BbZero; {
				from := pieces.PopLsb()
				count += (GetAttacksBb(pt, from, occupied) &^ own).PopCount()
			}
		}
		if c == White {
			diff += count
		} else {
			diff -= count
		}
	}

	weighted := int16(diff) * config.Settings.Eval.MobilityBonus
	scratch.MidGameValue = weighted
	scratch.EndGameValue = weighted
	return &scratch
}

// evalPieceType scores every piece of kind pt owned by c, except pawns
// and the king which have their own dedicated scoring functions.
func (e *Evaluator) evalPieceType(c Color, pt PieceType) *Score {
	scratch.MidGameValue = 0
	scratch.EndGameValue = 0

	pieces := e.position.PiecesBb(c, pt)
	if pieces == BbZero {
		return &scratch
	}

	us, them := c, c.Flip()

	switch pt {
	case Knight:
		for pieces != BbZero {
			e.knightEval(us, them, pieces.PopLsb())
		}
	case Bishop:
		if pieces.PopCount() > 1 {
			scratch.MidGameValue += config.Settings.Eval.BishopPairBonus
			scratch.EndGameValue += config.Settings.Eval.BishopPairBonus
		}
		for pieces != BbZero {
			e.bishopEval(us, them, pieces.PopLsb())
		}
	case Rook:
		for pieces != BbZero {
			e.rookEval(us, pieces.PopLsb())
		}
	case Queen:
		// queen mobility/placement is folded into the generic
		// mobility term above; no queen-specific bonus yet.
	}

	return &scratch
}

// behindOwnPawn reports whether sq (a minor piece's square) sits directly
// behind one of us's pawns, from us's perspective.
func (e *Evaluator) behindOwnPawn(us, them Color, sq Square) bool {
	down := them.MoveDirection()
	return ShiftBitboard(e.position.PiecesBb(us, Pawn), down)&sq.Bb() > 0
}

func (e *Evaluator) knightEval(us Color, them Color, sq Square) {
	if e.behindOwnPawn(us, them, sq) {
		scratch.MidGameValue += config.Settings.Eval.MinorBehindPawnBonus
	}
}

func (e *Evaluator) bishopEval(us Color, them Color, sq Square) {
	if e.behindOwnPawn(us, them, sq) {
		scratch.MidGameValue += config.Settings.Eval.MinorBehindPawnBonus
	}

	// bishops are worse on the color of their own pawns, and more so
	// as the game heads toward the endgame.
	sameColorSquares := SquaresBb(Black)
	if SquaresBb(White).Has(sq) {
		sameColorSquares = SquaresBb(White)
	}
	blockedByOwnPawns := int16((e.position.PiecesBb(us, Pawn) & sameColorSquares).PopCount())
	scratch.EndGameValue -= config.Settings.Eval.BishopPawnMalus * blockedByOwnPawns

	centerAim := int16((GetAttacksBb(Bishop, sq, BbZero) & CenterSquares).PopCount())
	scratch.MidGameValue += config.Settings.Eval.BishopCenterAimBonus * centerAim

	onBackRank := (us == White && sq.RankOf() == Rank1) || (us == Black && sq.RankOf() == Rank8)
	if onBackRank && GetAttacksBb(Bishop, sq, e.allPieces)&^e.position.OccupiedBb(us) == BbZero {
		scratch.MidGameValue -= config.Settings.Eval.BishopBlockedMalus
		scratch.EndGameValue -= config.Settings.Eval.BishopBlockedMalus
	}
}

func (e *Evaluator) rookEval(us Color, sq Square) {
	if sq.FileOf().Bb()&e.position.PiecesBb(us, Queen) > 0 {
		scratch.MidGameValue += config.Settings.Eval.RookOnQueenFileBonus
		scratch.EndGameValue += config.Settings.Eval.RookOnQueenFileBonus
	}

	if sq.FileOf().Bb()&e.position.PiecesBb(us, Pawn) == 0 {
		scratch.MidGameValue += config.Settings.Eval.RookOnOpenFileBonus
	}

	// a rook shut in behind its own uncastled king, on the outside of it,
	// cannot help in the center.
	kingSquare := e.position.KingSquare(us)
	switch {
	case KingSideCastleMask(us).Has(kingSquare) && sq.RankOf() == kingSquare.RankOf() && sq > kingSquare:
		scratch.MidGameValue -= config.Settings.Eval.RookTrappedMalus
	case QueenSideCastMask(us).Has(kingSquare) && sq.RankOf() == kingSquare.RankOf() && sq < kingSquare:
		scratch.MidGameValue -= config.Settings.Eval.RookTrappedMalus
	}
}

func (e *Evaluator) evalKing(c Color) *Score {
	scratch.MidGameValue = 0
	scratch.EndGameValue = 0
	us := c
	them := us.Flip()

	kingSquare := e.position.KingSquare(us)
	switch {
	case KingSideCastleMask(us).Has(kingSquare):
		shieldPawns := int16((ShiftBitboard(KingSideCastleMask(us), us.MoveDirection()) & e.position.PiecesBb(us, Pawn)).PopCount())
		scratch.MidGameValue += shieldPawns * config.Settings.Eval.KingCastlePawnShieldBonus
	case QueenSideCastMask(us).Has(kingSquare):
		shieldPawns := int16((ShiftBitboard(QueenSideCastMask(us), us.MoveDirection()) & e.position.PiecesBb(us, Pawn)).PopCount())
		scratch.MidGameValue += shieldPawns * config.Settings.Eval.KingCastlePawnShieldBonus
	}

	if config.Settings.Eval.UseAttacksInEval {
		attackers := e.kingRing[us] & e.attack.All[them]
		defenders := e.kingRing[us] & e.attack.All[us]
		if attackers.PopCount() > defenders.PopCount() {
			scratch.MidGameValue -= int16(attackers.PopCount()-defenders.PopCount()) * config.Settings.Eval.KingDangerMalus
			scratch.EndGameValue -= scratch.MidGameValue
		} else {
			scratch.MidGameValue += int16(defenders.PopCount()-attackers.PopCount()) * config.Settings.Eval.KingDefenderBonus
			scratch.EndGameValue += scratch.MidGameValue
		}

		if e.attack.All[us]&e.kingRing[them] > 0 {
			scratch.MidGameValue += config.Settings.Eval.KingRingAttacksBonus
			scratch.EndGameValue += config.Settings.Eval.KingRingAttacksBonus
		}
	}
	return &scratch
}

// Report renders a human-readable summary of the last evaluation run
// against the evaluator's current position, for debugging.
func (e *Evaluator) Report() string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", e.position.StringFen()))
	report.WriteString(out.Sprintf("%s\n", e.position.StringBoard()))
	report.WriteString(out.Sprintf("GamePhase Factor: %f\n", e.position.GamePhaseFactor()))
	report.WriteString("(evals from the view of white player)\n")
	report.WriteString("-------------------------\n")
	report.WriteString(out.Sprintf("Eval value  : %d \n(from the view of next player = %s)\n", e.Evaluate(e.position), e.position.NextPlayer().String()))
	return report.String()
}
