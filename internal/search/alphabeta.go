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

package search

import (
	golog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/op/go-logging"

	. "github.com/gopherchess/goknight/internal/config"
	"github.com/gopherchess/goknight/internal/movegen"
	"github.com/gopherchess/goknight/internal/moveslice"
	"github.com/gopherchess/goknight/internal/position"
	"github.com/gopherchess/goknight/internal/transpositiontable"
	. "github.com/gopherchess/goknight/internal/types"
	"github.com/gopherchess/goknight/internal/util"
)

var trace = false

// rootSearch runs the first ply of alpha-beta directly over
// s.rootMoves instead of through the generic search, since root
// bookkeeping (sorting root moves by value, recording statistics per
// root move index) doesn't belong mixed into every recursive call. It
// returns the value of the best root move found.
func (s *Search) rootSearch(pos *position.Position, depth int, alpha, beta Value) Value {
	if trace {
		s.slog.Debugf("Ply %-2.d Depth %-2.d start: %s", 0, depth, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("Ply %-2.d Depth %-2.d end: %s", 0, depth, s.statistics.CurrentVariation.StringUci())
	}

	bestNodeValue := ValueNA
	var value Value

	for i, m := range *s.rootMoves {
		pos.DoMove(m)
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(m)
		s.statistics.CurrentRootMoveIndex = i
		s.statistics.CurrentRootMove = m

		if !Settings.Search.UsePVS || i == 0 {
			// first move is assumed to be the PV and gets the full window
			value = -s.search(pos, depth-1, 1, -beta, -alpha, true, true)
		} else {
			// null-window search; only re-search with the full window if
			// it actually raised alpha without failing high
			value = -s.search(pos, depth-1, 1, -alpha-1, -alpha, false, true)
			if value > alpha && value < beta && !s.stopConditions() {
				s.statistics.RootPvsResearches++
				value = -s.search(pos, depth-1, 1, -beta, -alpha, true, true)
			}
		}

		s.statistics.CurrentVariation.PopBack()
		pos.UndoMove()

		// always finish at least one full depth-1 pass so pv[0] is set
		if s.stopConditions() && depth > 1 {
			return bestNodeValue
		}

		s.rootMoves.Set(i, m.SetValue(value))

		if value > bestNodeValue {
			bestNodeValue = value
			savePV(m, s.pv[1], s.pv[0])
		}
	}
	return bestNodeValue
}

// aspirationSearch re-runs rootSearch inside a narrow window centered
// on prevValue, widening and re-searching on a fail-high or fail-low
// until the result lands inside the window. A successful narrow
// window cuts far more nodes than searching [ValueMin, ValueMax]
// outright; the cost is the occasional re-search when the true value
// has moved outside the guessed window since the last iteration.
func (s *Search) aspirationSearch(pos *position.Position, depth int, prevValue Value) Value {
	if prevValue == ValueNA || !Settings.Search.UseAspiration {
		return s.rootSearch(pos, depth, ValueMin, ValueMax)
	}

	step := 0
	window := aspirationSteps[step]
	alpha := clampValue(prevValue - window)
	beta := clampValue(prevValue + window)

	for {
		value := s.rootSearch(pos, depth, alpha, beta)
		if s.stopConditions() {
			return value
		}

		if value > alpha && value < beta {
			return value
		}

		s.statistics.AspirationResearches++
		if step < len(aspirationSteps)-1 {
			step++
		}
		window = aspirationSteps[step]

		if value <= alpha {
			s.sendAspirationResearchInfo("upperbound")
			alpha = clampValue(prevValue - window)
		} else {
			s.sendAspirationResearchInfo("lowerbound")
			beta = clampValue(prevValue + window)
		}

		if window == ValueMax {
			alpha, beta = ValueMin, ValueMax
		}
	}
}

// clampValue keeps an aspiration-window bound inside the representable
// value range.
func clampValue(v Value) Value {
	switch {
	case v < ValueMin:
		return ValueMin
	case v > ValueMax:
		return ValueMax
	default:
		return v
	}
}

// mtdf implements MTD(f): a sequence of minimal-window zero-width
// searches around a guess, each one proving whether the true value is
// above or below the guess, converging on the exact value. It tends
// to visit fewer nodes than a single wide-window search at the cost
// of relying heavily on the transposition table between probes, which
// is why it's only worth enabling alongside UseTT.
func (s *Search) mtdf(pos *position.Position, depth int, firstGuess Value) Value {
	if firstGuess == ValueNA {
		firstGuess = 0
	}
	guess := firstGuess
	lowerBound := ValueMin
	upperBound := ValueMax

	for lowerBound < upperBound {
		beta := guess
		if guess == lowerBound {
			beta++
		}
		guess = s.rootSearch(pos, depth, beta-1, beta)
		if s.stopConditions() {
			return guess
		}
		if guess < beta {
			upperBound = guess
		} else {
			lowerBound = guess
		}
	}
	return guess
}

// search is the alpha-beta search below the root (ply > 0), recursing
// until depth runs out and quiescence search takes over. Move
// ordering, pruning, and extensions below all depend on move-by-move
// bookkeeping so this stays one long function rather than many small
// ones threading the same dozen local variables between them.
func (s *Search) search(p *position.Position, depth, ply int, alpha, beta Value, isPV, doNull bool) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d pv:%-6.v start:  %s", ply, "", ply, depth, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d pv:%-6.v end  :  %s", ply, "", ply, depth, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
	}

	if s.stopConditions() {
		return ValueNA
	}

	if depth == 0 || ply >= MaxDepth {
		return s.qsearch(p, ply, alpha, beta, isPV)
	}

	// Mate Distance Pruning: don't bother improving on a mate we've
	// already found shorter than what this ply could still deliver.
	if Settings.Search.UseMDP {
		if alpha < -ValueCheckMate+Value(ply) {
			alpha = -ValueCheckMate + Value(ply)
		}
		if beta > ValueCheckMate-Value(ply) {
			beta = ValueCheckMate - Value(ply)
		}
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	us := p.NextPlayer()
	bestNodeValue := ValueNA
	bestNodeMove := MoveNone
	ttMove := MoveNone
	ttType := ALPHA
	hasCheck := p.HasCheck()
	matethreat := false

	// TT Lookup: reuse a previous search's result for this position
	// outright if it's an exact value or an alpha/beta bound that
	// already settles this window, and otherwise still seed ttMove
	// for PV-move ordering below.
	var ttEntry *transpositiontable.TtEntry
	if Settings.Search.UseTT {
		ttEntry = s.tt.Probe(p.ZobristKey())
		if ttEntry != nil {
			s.statistics.TTHit++
			ttMove = ttEntry.Move()
			if int(ttEntry.Depth()) >= depth {
				ttValue := valueFromTT(ttEntry.Value(), ply)
				cut := false
				switch {
				case !ttValue.IsValid():
					cut = false
				case ttEntry.Vtype() == EXACT:
					cut = true
				case ttEntry.Vtype() == ALPHA && ttValue <= alpha:
					cut = true
				case ttEntry.Vtype() == BETA && ttValue >= beta:
					cut = true
				}
				if cut && Settings.Search.UseTTValue {
					s.getPVLine(p, s.pv[ply], depth)
					s.statistics.TTCuts++
					return ttValue
				}
				s.statistics.TTNoCuts++
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	// Reverse Futility Pruning: if a static eval already clears beta
	// by more than a depth-dependent margin, assume a move would too
	// and cut before generating any.
	if Settings.Search.UseRFP && doNull && depth <= 3 && !isPV && !hasCheck {
		staticEval := s.evaluate(p, ply)
		margin := rfp[depth]
		if staticEval-margin >= beta {
			s.statistics.RfpPrunings++
			return staticEval - margin
		}
	}

	// Razoring: one or two plies above the horizon, a static eval far
	// below alpha is unlikely to be saved by quiet play; drop straight
	// into quiescence to verify instead of searching full width.
	if Settings.Search.UseRazoring && doNull && !isPV && !hasCheck && depth <= 2 {
		if s.evaluate(p, ply)+Value(Settings.Search.RazorMargin) <= alpha {
			s.statistics.RazorCuts++
			return s.qsearch(p, ply, alpha, beta, isPV)
		}
	}

	// Null Move Pruning: if passing the move entirely still clears
	// beta, a real move almost certainly would too, except in
	// zugzwang (guarded by requiring non-pawn material) or while
	// already in check (a null move there would be illegal).
	if Settings.Search.UseNullMove && doNull && !isPV &&
		depth >= Settings.Search.NmpDepth && p.MaterialNonPawn(us) > 0 && !hasCheck {

		r := Settings.Search.NmpReduction
		if depth > 8 || (depth > 6 && p.GamePhase() >= 3) {
			r++
		}
		newDepth := depth - r - 1
		if newDepth < 0 {
			newDepth = 0
		}

		p.DoNullMove()
		s.nodesVisited++
		nullValue := -s.search(p, newDepth, ply+1, -beta, -beta+1, false, false)
		p.UndoNullMove()

		if s.stopConditions() {
			return ValueNA
		}

		switch {
		case nullValue > ValueCheckMateThreshold:
			// still a proven mate score despite not moving; don't
			// report an inflated unproven mate distance
			s.statistics.NMPMateBeta++
			nullValue = ValueCheckMateThreshold
		case nullValue < -ValueCheckMateThreshold:
			// passing gets us mated: extend rather than prune below
			s.statistics.NMPMateAlpha++
			matethreat = true
		}

		if nullValue >= beta {
			s.statistics.NullMoveCuts++
			if Settings.Search.UseTT {
				s.storeTT(p, depth, ply, ttMove, nullValue, BETA)
			}
			return nullValue
		}
	}

	// Internal Iterative Deepening: without a TT move to try first,
	// spend a cheap reduced-depth search just to find one.
	if Settings.Search.UseIID && depth >= Settings.Search.IIDDepth &&
		ttMove == MoveNone && doNull && isPV {

		newDepth := depth - Settings.Search.IIDReduction
		if newDepth < 0 {
			newDepth = 0
		}
		s.search(p, newDepth, ply, alpha, beta, isPV, true)
		s.statistics.IIDsearches++

		if s.stopConditions() {
			return ValueNA
		}
		if s.pv[ply].Len() > 0 {
			s.statistics.IIDmoves++
			ttMove = (*s.pv[ply])[0].MoveOf()
		}
	}

	// must run after IID, which recurses into this same ply's generator
	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	if Settings.Search.UseTTMove {
		if ttMove != MoveNone {
			s.statistics.TTMoveUsed++
			myMg.SetPvMove(ttMove)
		} else {
			s.statistics.NoTTMove++
		}
	}

	var value Value
	movesSearched := 0

	for move := myMg.GetNextMove(p, movegen.GenAll); move != MoveNone; move = myMg.GetNextMove(p, movegen.GenAll) {
		from := move.From()
		to := move.To()

		newDepth := depth - 1
		lmrDepth := newDepth
		extension := 0
		givesCheck := p.GivesCheck(move)

		// Search extensions: spend depth on lines worth looking
		// further into rather than pruning them.
		if Settings.Search.UseExt {
			if Settings.Search.UseCheckExt && givesCheck {
				s.statistics.CheckExtension++
				extension = 1
			}
			if Settings.Search.UseThreatExt && matethreat {
				s.statistics.ThreatExtension++
				extension = 1
			}
			if Settings.Search.UseExtAddDepth {
				newDepth += extension
			}
		}

		// Forward pruning only applies to otherwise uninteresting
		// quiet moves: no extension, not the TT move or a killer, not
		// a promotion or capture, and no check on either side of it.
		if !isPV && extension == 0 && move != ttMove &&
			move != (*myMg.KillerMoves())[0] && move != (*myMg.KillerMoves())[1] &&
			move.MoveType() != Promotion && !p.IsCapturingMove(move) &&
			!hasCheck && !givesCheck && !matethreat {

			materialEval := p.Material(us) - p.Material(us.Flip())
			moveGain := p.GetPiece(to).ValueOf()

			// Futility Pruning: skip moves whose best-case material
			// swing still falls well short of alpha.
			if Settings.Search.UseFP && depth < 7 {
				futilityMargin := fp[depth]
				if materialEval+moveGain+futilityMargin <= alpha {
					if materialEval+moveGain > bestNodeValue {
						bestNodeValue = materialEval + moveGain
					}
					s.statistics.FpPrunings++
					continue
				}
			}

			// Late Move Pruning: stop considering quiet moves past a
			// depth-dependent count, on the assumption move ordering
			// already put the promising ones first.
			if Settings.Search.UseLmp && movesSearched >= LmpMovesSearched(depth) {
				s.statistics.LmpCuts++
				continue
			}

			// Late Move Reduction: search later quiet moves to a
			// reduced depth first, re-searching at full depth only if
			// the reduced search says the move might beat alpha.
			if Settings.Search.UseLmr && depth >= Settings.Search.LmrDepth &&
				movesSearched >= Settings.Search.LmrMovesSearched {
				lmrDepth -= LmrReduction(depth, movesSearched)
				s.statistics.LmrReductions++
			}
			if lmrDepth < 0 {
				lmrDepth = 0
			}
		}

		p.DoMove(move)
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		if !Settings.Search.UsePVS || movesSearched == 0 {
			// assumed PV move (move ordering put it first) gets the
			// full window
			value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
		} else {
			// null-window search, at the LMR-reduced depth if one
			// applies; escalate to a full-depth, full-window
			// re-search only if it actually threatens to beat alpha
			value = -s.search(p, lmrDepth, ply+1, -alpha-1, -alpha, false, true)
			if value > alpha && !s.stopConditions() {
				if lmrDepth < newDepth {
					s.statistics.LmrResearches++
					value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
				} else if value < beta {
					s.statistics.PvsResearches++
					value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
				}
			}
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if Settings.Search.UseKiller && !p.IsCapturingMove(move) {
						myMg.StoreKiller(move)
					}
					if Settings.Search.UseHistoryCounter {
						s.history.HistoryCount[us][from][to] += 1 << depth
					}
					if Settings.Search.UseCounterMoves {
						if lastMove := p.LastMove(); lastMove != MoveNone {
							s.history.CounterMoves[lastMove.From()][lastMove.To()] = move
						}
					}
					ttType = BETA
					break
				}
				alpha = value
				ttType = EXACT
			}
		}

		// a quiet move that didn't cut off loses a bit of history
		// weight, so moves that stop working eventually fall back down
		if Settings.Search.UseHistoryCounter {
			s.history.HistoryCount[us][from][to] -= 1 << depth
			if s.history.HistoryCount[us][from][to] < 0 {
				s.history.HistoryCount[us][from][to] = 0
			}
		}
	}

	if movesSearched == 0 && !s.stopConditions() {
		if p.HasCheck() {
			s.statistics.Checkmates++
			bestNodeValue = -ValueCheckMate + Value(ply)
		} else {
			s.statistics.Stalemates++
			bestNodeValue = ValueDraw
		}
		ttType = EXACT
	}

	if Settings.Search.UseTT {
		s.storeTT(p, depth, ply, bestNodeMove, bestNodeValue, ttType)
	}

	return bestNodeValue
}

// qsearch extends search past the nominal depth limit along
// "noisy" lines (captures, and all moves while in check) to avoid
// misjudging a position that looks quiet only because the search
// horizon cut off mid-exchange.
func (s *Search) qsearch(p *position.Position, ply int, alpha, beta Value, isPV bool) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d QSearch     a:%-6.d b:%-6.d pv:%-6.v start:  %s", ply, "", ply, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("%0*s Ply %-2.d QSearch     a:%-6.d b:%-6.d pv:%-6.v end  :  %s", ply, "", ply, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
	}

	if s.statistics.CurrentExtraSearchDepth < ply {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	if !Settings.Search.UseQuiescence || ply >= MaxDepth {
		return s.evaluate(p, ply)
	}

	if Settings.Search.UseMDP {
		if alpha < -ValueCheckMate+Value(ply) {
			alpha = -ValueCheckMate + Value(ply)
		}
		if beta > ValueCheckMate-Value(ply) {
			beta = ValueCheckMate - Value(ply)
		}
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	bestNodeValue := ValueNA
	ttType := ALPHA
	ttMove := MoveNone
	hasCheck := p.HasCheck()

	if !hasCheck {
		staticEval := s.evaluate(p, ply)
		// Stand pat: assume some quiet move would improve on the
		// static eval, so treat it as a lower bound rather than
		// generating quiet moves to confirm that.
		if Settings.Search.UseQSStandpat && staticEval > alpha {
			if staticEval >= beta {
				s.statistics.StandpatCuts++
				return staticEval
			}
			alpha = staticEval
		}
		bestNodeValue = staticEval
	}

	var ttEntry *transpositiontable.TtEntry
	if Settings.Search.UseQSTT {
		ttEntry = s.tt.Probe(p.ZobristKey())
		if ttEntry != nil {
			s.statistics.TTHit++
			ttMove = ttEntry.Move()
			ttValue := valueFromTT(ttEntry.Value(), ply)
			cut := false
			switch {
			case !ttValue.IsValid():
				cut = false
			case ttEntry.Vtype() == EXACT:
				cut = true
			case ttEntry.Vtype() == ALPHA && ttValue <= alpha:
				cut = true
			case ttEntry.Vtype() == BETA && ttValue >= beta:
				cut = true
			}
			if cut && Settings.Search.UseTTValue {
				s.statistics.TTCuts++
				return ttValue
			}
			s.statistics.TTNoCuts++
		} else {
			s.statistics.TTMiss++
		}
	}

	bestNodeMove := MoveNone
	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	if Settings.Search.UseQSTT {
		if ttMove != MoveNone {
			s.statistics.TTMoveUsed++
			myMg.SetPvMove(ttMove)
		} else {
			s.statistics.NoTTMove++
		}
	}

	var value Value
	movesSearched := 0

	// in check, search everything (a search extension in all but
	// name); otherwise only captures are worth generating at all
	mode := movegen.GenCap
	if hasCheck {
		s.statistics.CheckInQS++
		mode = movegen.GenAll
	}

	for move := myMg.GetNextMove(p, mode); move != MoveNone; move = myMg.GetNextMove(p, mode) {
		if !hasCheck && !s.goodCapture(p, move) {
			continue
		}

		// Futility pruning on captures: when even winning the target
		// piece outright can't bring the stand-pat value near alpha,
		// the capture isn't worth making.
		if Settings.Search.UseQFP && !hasCheck && move.MoveType() != Promotion &&
			bestNodeValue+p.GetPiece(move.To()).ValueOf()+qfpMargin <= alpha {
			s.statistics.QFpPrunings++
			continue
		}

		p.DoMove(move)
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		value = -s.qsearch(p, ply+1, -beta, -alpha, isPV)

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if Settings.Search.UseHistoryCounter {
						s.history.HistoryCount[p.NextPlayer()][move.From()][move.To()] += 1 << 1
					}
					if Settings.Search.UseCounterMoves {
						if lastMove := p.LastMove(); lastMove != MoveNone {
							s.history.CounterMoves[lastMove.From()][lastMove.To()] = move
						}
					}
					ttType = BETA
					break
				}
				alpha = value
				ttType = EXACT
			}
		}
	}

	if movesSearched == 0 && !s.stopConditions() && p.HasCheck() {
		// no legal reply to check: mate. If we're not in check the
		// move list is capture-only, so an empty list there just
		// means "no good captures", not stalemate - bestNodeValue
		// already holds the stand-pat value for that case.
		s.statistics.Checkmates++
		bestNodeValue = -ValueCheckMate + Value(ply)
		ttType = EXACT
	}

	if Settings.Search.UseQSTT {
		s.storeTT(p, 1, ply, bestNodeMove, bestNodeValue, ttType)
	}

	return bestNodeValue
}

// evaluate scores p, optionally reusing a cached value stored in the
// TT by an earlier call at the same key when UseEvalTT is on.
func (s *Search) evaluate(pos *position.Position, ply int) Value {
	s.statistics.LeafPositionsEvaluated++

	value := ValueNA
	if Settings.Search.UseTT && Settings.Search.UseEvalTT {
		if ttEntry := s.tt.Probe(pos.ZobristKey()); ttEntry != nil {
			s.statistics.TTHit++
			s.statistics.EvaluationsFromTT++
			value = valueFromTT(ttEntry.Value(), ply)
		}
	}

	if value == ValueNA {
		s.statistics.Evaluations++
		value = s.eval.Evaluate(pos)
	}

	if Settings.Search.UseTT && Settings.Search.UseEvalTT {
		s.storeTT(pos, 0, ply, MoveNone, value, EXACT)
	}

	return value
}

// goodCapture filters which captures qsearch bothers searching: by
// SEE score if enabled, or otherwise by a handful of cheap heuristics
// (lower captures higher, recaptures, undefended targets).
func (s *Search) goodCapture(p *position.Position, move Move) bool {
	if Settings.Search.UseSEE {
		return see(p, move) > 0
	}
	return p.GetPiece(move.From()).ValueOf()+50 < p.GetPiece(move.To()).ValueOf() ||
		(p.LastMove() != MoveNone && p.LastMove().To() == move.To() && p.LastCapturedPiece() != PieceNone) ||
		!p.IsAttacked(move.To(), p.NextPlayer().Flip())
}

// savePV makes move the first entry of dest, followed by a copy of
// src — used to propagate a new best line up one ply once a move
// improves on the previous best at this node.
func savePV(move Move, src, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	*dest = append(*dest, *src...)
}

func (s *Search) storeTT(p *position.Position, depth, ply int, move Move, value Value, valueType ValueType) {
	s.tt.Put(p.ZobristKey(), move, int8(depth), valueToTT(value, ply), valueType, ValueNA)
}

// getPVLine reconstructs the principal variation from depth onward by
// walking the TT entry chain from p's current position, undoing every
// move it played once it's done so p is left unchanged.
func (s *Search) getPVLine(p *position.Position, pv *moveslice.MoveSlice, depth int) {
	pv.Clear()
	played := 0
	ttMatch := s.tt.GetEntry(p.ZobristKey())
	for ttMatch != nil && ttMatch.Move() != MoveNone && played < depth {
		pv.PushBack(ttMatch.Move().MoveOf())
		p.DoMove(ttMatch.Move().MoveOf())
		played++
		ttMatch = s.tt.GetEntry(p.ZobristKey())
	}
	for i := 0; i < played; i++ {
		p.UndoMove()
	}
}

// valueToTT shifts a mate value by ply before storing it, so the
// stored value is relative to the position rather than to the root.
func valueToTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			value += Value(ply)
		} else {
			value -= Value(ply)
		}
	}
	return value
}

// valueFromTT reverses valueToTT's ply shift when reading a mate value
// back out of the TT.
func valueFromTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			value -= Value(ply)
		} else {
			value += Value(ply)
		}
	}
	return value
}

// getSearchTraceLog returns a logger for the search package's own
// trace/debug output, configured with a stdout backend; when a log
// folder can be resolved and the log file opened, a file backend
// replaces the stdout one.
func getSearchTraceLog() *logging.Logger {
	searchLog := logging.MustGetLogger("search")
	searchLogFormat := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:-7.7s}:  %{message}`)

	stdoutBackend := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	stdoutFormatted := logging.NewBackendFormatter(stdoutBackend, searchLogFormat)
	leveled := logging.AddModuleLevel(stdoutFormatted)
	leveled.SetLevel(logging.Level(SearchLogLevel), "")
	searchLog.SetBackend(leveled)

	programName, _ := os.Executable()
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")

	logPath, err := util.ResolveFolder(Settings.Log.LogPath)
	if err != nil {
		golog.Println("Log folder could not be found:", err)
		return searchLog
	}
	searchLogFilePath := filepath.Join(logPath, exeName+"_search.log")

	searchLogFile, err := os.OpenFile(searchLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		golog.Println("Logfile could not be created:", err)
		return searchLog
	}
	fileBackend := logging.NewLogBackend(searchLogFile, "", golog.Lmsgprefix)
	fileFormatted := logging.NewBackendFormatter(fileBackend, searchLogFormat)
	fileLeveled := logging.AddModuleLevel(fileFormatted)
	fileLeveled.SetLevel(logging.DEBUG, "")
	searchLog.SetBackend(fileLeveled)
	searchLog.Infof("Log %s started at %s:", searchLogFile.Name(), time.Now().String())
	return searchLog
}
