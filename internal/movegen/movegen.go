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

// Package movegen generates chess moves for a position: pseudo-legal
// and legal move lists in one shot, plus a phased on-demand generator
// that search can pull moves from one at a time without materializing
// the whole list up front.
package movegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/op/go-logging"

	"github.com/gopherchess/goknight/internal/config"
	"github.com/gopherchess/goknight/internal/history"
	myLogging "github.com/gopherchess/goknight/internal/logging"
	"github.com/gopherchess/goknight/internal/moveslice"
	"github.com/gopherchess/goknight/internal/position"
	. "github.com/gopherchess/goknight/internal/types"
)

var log *logging.Logger

// Movegen generates moves for a position. Build one with NewMoveGen;
// the zero value is not usable.
type Movegen struct {
	pseudoLegalMoves   *moveslice.MoveSlice
	legalMoves         *moveslice.MoveSlice
	onDemandMoves      *moveslice.MoveSlice
	killerMoves        [2]Move
	currentIteratorKey position.Key
	takeIndex          int
	pvMove             Move
	currentODStage     int8
	pvMovePushed       bool
	historyData        *history.History
}

// GenMode selects which kind of moves a generation call produces.
type GenMode int

// GenMode values; GenCap and GenNonCap can be OR'd (GenAll) or used
// alone to generate only captures or only quiet moves.
const (
	GenZero   GenMode = 0b00
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = 0b11
)

// NewMoveGen returns a ready-to-use move generator.
func NewMoveGen() *Movegen {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(MaxMoves),
		legalMoves:       moveslice.NewMoveSlice(MaxMoves),
		onDemandMoves:    moveslice.NewMoveSlice(MaxMoves),
		killerMoves:      [2]Move{MoveNone, MoveNone},
		pvMove:           MoveNone,
		currentODStage:   odNew,
	}
}

// GeneratePseudoLegalMoves returns every pseudo-legal move for the
// side to move in mode, sorted by descending internal sort value when
// UseMoveOrder is on (in generation order otherwise). A
// pseudo-legal move may leave its own king in check or be an
// unavailable castle — callers filter via Position.IsLegalMove.
func (mg *Movegen) GeneratePseudoLegalMoves(pos *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	if mode&GenCap != 0 {
		mg.generatePawnMoves(pos, GenCap, mg.pseudoLegalMoves)
		mg.generateCastling(pos, GenCap, mg.pseudoLegalMoves)
		mg.generateKingMoves(pos, GenCap, mg.pseudoLegalMoves)
		mg.generateOfficerMoves(pos, GenCap, mg.pseudoLegalMoves)
	}
	if mode&GenNonCap != 0 {
		mg.generatePawnMoves(pos, GenNonCap, mg.pseudoLegalMoves)
		mg.generateCastling(pos, GenNonCap, mg.pseudoLegalMoves)
		mg.generateKingMoves(pos, GenNonCap, mg.pseudoLegalMoves)
		mg.generateOfficerMoves(pos, GenNonCap, mg.pseudoLegalMoves)
	}
	if config.Settings.Search.UseMoveOrder {
		mg.promoteOrderedMoves(pos)
		mg.pseudoLegalMoves.Sort()
	}
	mg.pseudoLegalMoves.ForEach(func(i int) {
		mg.pseudoLegalMoves.Set(i, mg.pseudoLegalMoves.At(i).MoveOf())
	})
	return mg.pseudoLegalMoves
}

// promoteOrderedMoves overwrites the sort value of the PV move and
// both killer moves so Sort places them ahead of everything else, and
// otherwise nudges quiet moves by their history/counter-move bonus.
func (mg *Movegen) promoteOrderedMoves(pos *position.Position) {
	mg.pseudoLegalMoves.ForEach(func(i int) {
		at := mg.pseudoLegalMoves.At(i)
		switch at.MoveOf() {
		case mg.pvMove:
			mg.pseudoLegalMoves.Set(i, at.SetValue(ValueMax))
		case mg.killerMoves[0]:
			mg.pseudoLegalMoves.Set(i, at.SetValue(-4000))
		case mg.killerMoves[1]:
			mg.pseudoLegalMoves.Set(i, at.SetValue(-4001))
		default:
			if bonus := mg.historyBonus(pos, at); bonus > 0 {
				mg.pseudoLegalMoves.Set(i, at.SetValue(at.ValueOf()+bonus))
			}
		}
	})
}

// GenerateLegalMoves returns every legal move for the side to move in
// mode, derived from GeneratePseudoLegalMoves by filtering out moves
// that leave the mover's king in check.
func (mg *Movegen) GenerateLegalMoves(pos *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.legalMoves.Clear()
	mg.GeneratePseudoLegalMoves(pos, mode)
	mg.pseudoLegalMoves.FilterCopy(mg.legalMoves, func(i int) bool {
		return pos.IsLegalMove(mg.pseudoLegalMoves.At(i))
	})
	return mg.legalMoves
}

// GetNextMove returns moves for pos one at a time in phased order
// (PV move, then captures, then quiet moves), generating each phase
// lazily so a caller that stops early (e.g. after a beta cutoff) never
// pays for phases it didn't need.
//
// SetPvMove primes the move returned first. Killer moves registered
// via StoreKiller surface as soon as their phase is generated. Call
// ResetOnDemand to replay the same position from the start; switching
// to a different position resets automatically.
func (mg *Movegen) GetNextMove(pos *position.Position, mode GenMode) Move {
	if pos.ZobristKey() != mg.currentIteratorKey {
		mg.onDemandMoves.Clear()
		mg.currentODStage = odNew
		mg.pvMovePushed = false
		mg.takeIndex = 0
		mg.currentIteratorKey = pos.ZobristKey()
	}

	// takeIndex lets us consume from the front of onDemandMoves without
	// shifting every remaining element on each call.
	if mg.onDemandMoves.Len() == 0 {
		mg.fillOnDemandMoveList(pos, mode)
	}

	if mg.onDemandMoves.Len() == 0 {
		mg.takeIndex = 0
		mg.pvMovePushed = false
		return MoveNone
	}

	// a pushed PV move must be skipped once it resurfaces in its normal
	// generation phase, or it would be searched twice.
	if mg.currentODStage != od1 && mg.pvMovePushed && (*mg.onDemandMoves)[mg.takeIndex].MoveOf() == mg.pvMove.MoveOf() {
		mg.takeIndex++
		mg.pvMovePushed = false
		if mg.takeIndex >= mg.onDemandMoves.Len() {
			mg.takeIndex = 0
			mg.onDemandMoves.Clear()
			mg.fillOnDemandMoveList(pos, mode)
			if mg.onDemandMoves.Len() == 0 {
				return MoveNone
			}
		}
	}

	move := (*mg.onDemandMoves)[mg.takeIndex].MoveOf()
	mg.takeIndex++
	if mg.takeIndex >= mg.onDemandMoves.Len() {
		mg.takeIndex = 0
		mg.onDemandMoves.Clear()
	}
	return move
}

// ResetOnDemand restarts the on-demand generator from its first phase
// and clears any PV move set on it; killer moves are kept.
func (mg *Movegen) ResetOnDemand() {
	mg.onDemandMoves.Clear()
	mg.currentODStage = odNew
	mg.currentIteratorKey = 0
	mg.pvMove = MoveNone
	mg.pvMovePushed = false
	mg.takeIndex = 0
}

// SetPvMove makes move the first move GetNextMove returns.
func (mg *Movegen) SetPvMove(move Move) {
	mg.pvMove = move.MoveOf()
}

// SetHistoryData gives the generator access to the search's history
// heuristics so quiet moves can be sorted by how often they've caused
// a beta cutoff, and recognized counter moves can be favored.
func (mg *Movegen) SetHistoryData(historyData *history.History) {
	mg.historyData = historyData
}

// historyBonus returns a sort-value bump for move derived from its
// history-count and counter-move status, or 0 if no history data is
// attached or the move has no history worth rewarding.
func (mg *Movegen) historyBonus(pos *position.Position, move Move) Value {
	if mg.historyData == nil {
		return 0
	}
	us := pos.NextPlayer()
	bonus := Value(mg.historyData.HistoryCount[us][move.From()][move.To()] / 100)
	if lastMove := pos.LastMove(); lastMove != MoveNone &&
		mg.historyData.CounterMoves[lastMove.From()][lastMove.To()] == move.MoveOf() {
		bonus += 500
	}
	return bonus
}

// StoreKiller records move as a killer move for GetNextMove to
// surface as soon as its generation phase runs. The two most recent
// distinct killers are kept, most recent first.
func (mg *Movegen) StoreKiller(move Move) {
	moveOf := move.MoveOf()
	switch moveOf {
	case mg.killerMoves[0]:
		return
	default:
		mg.killerMoves[1] = mg.killerMoves[0]
		mg.killerMoves[0] = moveOf
	}
}

// HasLegalMove reports whether pos has at least one legal move,
// stopping at the first one found rather than generating the full
// list. Pieces are probed roughly most-likely-to-move first.
func (mg *Movegen) HasLegalMove(pos *position.Position) bool {
	nextPlayer := pos.NextPlayer()
	nextPlayerBb := pos.OccupiedBb(nextPlayer)

	// king moves don't need a castling check: any legal castle implies
	// a legal king or rook move already covered elsewhere.
	kingSquare := pos.KingSquare(nextPlayer)
	for targets := GetPseudoAttacks(King, kingSquare) &^ nextPlayerBb; targets != 0; {
		toSquare := targets.PopLsb()
		if pos.IsLegalMove(CreateMove(kingSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	myPawns := pos.PiecesBb(nextPlayer, Pawn)
	opponentBb := pos.OccupiedBb(nextPlayer.Flip())
	fwd := nextPlayer.MoveDirection()
	back := nextPlayer.Flip().MoveDirection()

	for _, dir := range [2]Direction{West, East} {
		for targets := ShiftBitboard(myPawns, fwd+dir) & opponentBb; targets != 0; {
			toSquare := targets.PopLsb()
			fromSquare := toSquare.To(back - dir)
			if pos.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
				return true
			}
		}
	}

	occupiedBb := pos.OccupiedAll()
	// single pushes only: if a single push is legal somewhere, whether
	// the matching double push also is doesn't change the answer.
	for targets := ShiftBitboard(myPawns, fwd) &^ occupiedBb; targets != 0; {
		toSquare := targets.PopLsb()
		fromSquare := toSquare.To(back)
		if pos.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	for pt := Knight; pt <= Queen; pt++ {
		for pieces := pos.PiecesBb(nextPlayer, pt); pieces != 0; {
			fromSquare := pieces.PopLsb()
			for targets := GetPseudoAttacks(pt, fromSquare) &^ nextPlayerBb; targets != 0; {
				toSquare := targets.PopLsb()
				if pt > Knight && Intermediate(fromSquare, toSquare)&occupiedBb != 0 {
					continue // sliding piece is blocked
				}
				if pos.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
					return true
				}
			}
		}
	}

	if epSquare := pos.GetEnPassantSquare(); epSquare != SqNone {
		for _, dir := range [2]Direction{West, East} {
			if attackers := ShiftBitboard(epSquare.Bb(), back+dir) & myPawns; attackers != 0 {
				fromSquare := attackers.PopLsb()
				toSquare := fromSquare.To(fwd - dir)
				if pos.IsLegalMove(CreateMove(fromSquare, toSquare, EnPassant, PtNone)) {
					return true
				}
			}
		}
	}

	return false
}

var regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])([NBRQnbrq])?")

// GetMoveFromUci matches uciMove against every legal move of pos and
// returns the matching Move, or MoveNone if none matches. It generates
// the full legal move list and compares strings, so it's meant for
// parsing input, not for use inside search.
func (mg *Movegen) GetMoveFromUci(pos *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}

	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 {
		// accept lowercase promotion letters even though UCI specifies upper case.
		promotionPart = strings.ToUpper(matches[2])
	}

	mg.GenerateLegalMoves(pos, GenAll)
	for _, m := range *mg.legalMoves {
		if m.StringUci() == movePart+promotionPart {
			return m
		}
	}
	return MoveNone
}

var regexSanMove = regexp.MustCompile("([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?([!?+#]*)?")

// castlingSan maps a castling move's king-destination square to its
// SAN notation.
var castlingSan = map[Square]string{
	SqG1: "O-O", SqG8: "O-O",
	SqC1: "O-O-O", SqC8: "O-O-O",
}

// GetMoveFromSan matches sanMove against every legal move of pos and
// returns the matching Move, or MoveNone if none (uniquely) matches.
// Like GetMoveFromUci this compares strings against the full legal
// move list and isn't meant for use inside search.
func (mg *Movegen) GetMoveFromSan(pos *position.Position, sanMove string) Move {
	matches := regexSanMove.FindStringSubmatch(sanMove)
	if matches == nil {
		return MoveNone
	}

	pieceType := matches[1]
	disambFile := matches[2]
	disambRank := matches[3]
	toSquare := matches[4]
	promotion := matches[6]

	movesFound := 0
	moveFromSAN := MoveNone

	mg.GenerateLegalMoves(pos, GenAll)
	for _, genMove := range *mg.legalMoves {
		if genMove.MoveType() == Castling {
			san, ok := castlingSan[genMove.To()]
			if !ok {
				log.Error("Move type CASTLING but wrong to square: %s", genMove.To().String())
				continue
			}
			if san == toSquare {
				moveFromSAN = genMove
				movesFound++
			}
			continue
		}

		if genMove.To().String() != toSquare {
			continue
		}

		legalPt := pos.GetPiece(genMove.From()).TypeOf()
		if (len(pieceType) == 0 || legalPt.Char() != pieceType) && (len(pieceType) != 0 || legalPt != Pawn) {
			continue
		}
		if len(disambFile) != 0 && genMove.From().FileOf().String() != disambFile {
			continue
		}
		if len(disambRank) != 0 && genMove.From().RankOf().String() != disambRank {
			continue
		}
		if (len(promotion) != 0 && genMove.PromotionType().Char() != promotion) ||
			(len(promotion) == 0 && genMove.MoveType() == Promotion) {
			continue
		}

		moveFromSAN = genMove
		movesFound++
	}

	switch {
	case movesFound > 1:
		log.Warningf("SAN move %s is ambiguous (%d matches) on %s!", sanMove, movesFound, pos.StringFen())
	case movesFound == 0 || !moveFromSAN.IsValid():
		log.Warningf("SAN move not valid! SAN move %s not found on position: %s", sanMove, pos.StringFen())
	default:
		return moveFromSAN
	}
	return MoveNone
}

// ValidateMove reports whether move is a legal move on p.
func (mg *Movegen) ValidateMove(p *position.Position, move Move) bool {
	if move == MoveNone {
		return false
	}
	for _, m := range *mg.GenerateLegalMoves(p, GenAll) {
		if move.MoveOf() == m {
			return true
		}
	}
	return false
}

// PvMove returns the move currently primed to be returned first by
// GetNextMove.
func (mg *Movegen) PvMove() Move {
	return mg.pvMove
}

// KillerMoves returns a pointer to the generator's two killer move
// slots, most recent first.
func (mg *Movegen) KillerMoves() *[2]Move {
	return &mg.killerMoves
}

// String summarizes the on-demand generator's current phase, PV move,
// and killer moves.
func (mg *Movegen) String() string {
	return fmt.Sprintf("MoveGen: { OnDemand Stage: { %d }, PV Move: %s Killer Move 1: %s Killer Move 2: %s }",
		mg.currentODStage, mg.pvMove.String(), mg.killerMoves[0].String(), mg.killerMoves[1].String())
}

// on-demand generator phases, roughly ordered most-promising-first.
const (
	odNew = iota
	odPv
	od1
	od2
	od3
	od4
	od5
	od6
	od7
	od8
	odEnd
)

// fillOnDemandMoveList advances the on-demand generator through
// phases until it has produced at least one move or has no phases
// left to try.
func (mg *Movegen) fillOnDemandMoveList(p *position.Position, mode GenMode) {
	for mg.onDemandMoves.Len() == 0 && mg.currentODStage < odEnd {
		switch mg.currentODStage {
		case odNew:
			mg.currentODStage = odPv
			fallthrough
		case odPv:
			mg.pushPvMoveIfSet(p, mode)
			if mode&GenCap != 0 {
				mg.currentODStage = od1
			} else {
				mg.currentODStage = od4
			}
		case od1:
			mg.generatePawnMoves(p, GenCap, mg.onDemandMoves)
			mg.currentODStage = od2
		case od2:
			mg.generateOfficerMoves(p, GenCap, mg.onDemandMoves)
			mg.currentODStage = od3
		case od3:
			mg.generateKingMoves(p, GenCap, mg.onDemandMoves)
			mg.currentODStage = od4
		case od4:
			if mode&GenNonCap != 0 {
				mg.currentODStage = od5
			} else {
				mg.currentODStage = odEnd
			}
		case od5:
			mg.generatePawnMoves(p, GenNonCap, mg.onDemandMoves)
			mg.pushKiller(p, mg.onDemandMoves)
			mg.currentODStage = od6
		case od6:
			mg.generateCastling(p, GenNonCap, mg.onDemandMoves)
			mg.pushKiller(p, mg.onDemandMoves)
			mg.currentODStage = od7
		case od7:
			mg.generateOfficerMoves(p, GenNonCap, mg.onDemandMoves)
			mg.pushKiller(p, mg.onDemandMoves)
			mg.currentODStage = od8
		case od8:
			mg.generateKingMoves(p, GenNonCap, mg.onDemandMoves)
			mg.pushKiller(p, mg.onDemandMoves)
			mg.currentODStage = odEnd
		case odEnd:
			break
		}
		if mg.onDemandMoves.Len() > 0 && config.Settings.Search.UseMoveOrder {
			mg.onDemandMoves.Sort()
		}
	}
}

// pushPvMoveIfSet pushes the primed PV move onto onDemandMoves if it
// matches mode (a capture when generating captures, etc.).
func (mg *Movegen) pushPvMoveIfSet(p *position.Position, mode GenMode) {
	if mg.pvMove == MoveNone {
		return
	}
	switch mode {
	case GenAll:
	case GenCap:
		if !p.IsCapturingMove(mg.pvMove) {
			return
		}
	case GenNonCap:
		if p.IsCapturingMove(mg.pvMove) {
			return
		}
	default:
		return
	}
	mg.pvMovePushed = true
	mg.onDemandMoves.PushBack(mg.pvMove)
}

// pushKiller resorts killer moves already present in m to the front
// and, for everything else, applies the history/counter-move bonus —
// cheap, and only needs doing once a phase has actually been
// generated, since a killer recorded for this ply may not even be
// pseudo-legal here.
func (mg *Movegen) pushKiller(pos *position.Position, m *moveslice.MoveSlice) {
	for i := range *m {
		move := &(*m)[i]
		switch {
		case mg.killerMoves[0] == move.MoveOf():
			move.SetValue(Value(-4000))
		case mg.killerMoves[1] == move.MoveOf():
			move.SetValue(Value(-4001))
		default:
			if bonus := mg.historyBonus(pos, move.MoveOf()); bonus > 0 {
				move.SetValue(move.ValueOf() + bonus)
			}
		}
	}
}

// generatePawnMoves appends every pawn move/capture/promotion matching
// mode to ml. Moves are generated by shifting the whole pawn bitboard
// in one of the four pawn-move directions and ANDing against the
// relevant target squares, rather than looping square by square.
// Sort values are ordered descending: captures by victim value minus
// attacker value, non-captures (and promotions) anchored below all
// captures via a -10000 offset. Promotions are to queen only — this
// engine never generates under-promotions.
func (mg *Movegen) generatePawnMoves(pos *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := pos.NextPlayer()
	myPawns := pos.PiecesBb(nextPlayer, Pawn)
	oppPieces := pos.OccupiedBb(nextPlayer.Flip())
	gamePhase := pos.GamePhase()
	piece := MakePiece(nextPlayer, Pawn)
	fwd := nextPlayer.MoveDirection()
	back := nextPlayer.Flip().MoveDirection()

	if mode&GenCap != 0 {
		for _, dir := range [2]Direction{West, East} {
			captures := ShiftBitboard(myPawns, fwd+dir) & oppPieces
			promCaptures := captures & nextPlayer.PromotionRankBb()
			for promCaptures != 0 {
				toSquare := promCaptures.PopLsb()
				fromSquare := toSquare.To(back - dir)
				value := pos.GetPiece(toSquare).ValueOf() - pos.GetPiece(fromSquare).ValueOf() + PosValue(piece, toSquare, gamePhase)
				pushPromotions(ml, fromSquare, toSquare, value)
			}
			captures &= ^nextPlayer.PromotionRankBb()
			for captures != 0 {
				toSquare := captures.PopLsb()
				fromSquare := toSquare.To(back - dir)
				value := pos.GetPiece(toSquare).ValueOf() - pos.GetPiece(fromSquare).ValueOf() + PosValue(piece, toSquare, gamePhase)
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
			}
		}

		if epSquare := pos.GetEnPassantSquare(); epSquare != SqNone {
			for _, dir := range [2]Direction{West, East} {
				if attackers := ShiftBitboard(epSquare.Bb(), back+dir) & myPawns; attackers != 0 {
					fromSquare := attackers.PopLsb()
					toSquare := fromSquare.To(fwd - dir)
					value := PosValue(piece, toSquare, gamePhase)
					ml.PushBack(CreateMoveValue(fromSquare, toSquare, EnPassant, PtNone, value))
				}
			}
		}

		// with UsePromNonQuiet a queen promotion by push counts as a
		// non-quiet move so quiescence search sees it.
		if config.Settings.Search.UsePromNonQuiet {
			promSteps := ShiftBitboard(myPawns, fwd) &^ pos.OccupiedAll() & nextPlayer.PromotionRankBb()
			for promSteps != 0 {
				toSquare := promSteps.PopLsb()
				fromSquare := toSquare.To(back)
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Queen, Queen.ValueOf()))
			}
		}
	}

	if mode&GenNonCap != 0 {
		singleSteps := ShiftBitboard(myPawns, fwd) &^ pos.OccupiedAll()
		doubleSteps := ShiftBitboard(singleSteps&nextPlayer.PawnDoubleRank(), fwd) &^ pos.OccupiedAll()

		// with UsePromNonQuiet the promotion was already generated in
		// the capture phase
		if !config.Settings.Search.UsePromNonQuiet {
			promSteps := singleSteps & nextPlayer.PromotionRankBb()
			for promSteps != 0 {
				toSquare := promSteps.PopLsb()
				fromSquare := toSquare.To(back)
				pushPromotions(ml, fromSquare, toSquare, Value(-10_000))
			}
		}
		for doubleSteps != 0 {
			toSquare := doubleSteps.PopLsb()
			fromSquare := toSquare.To(back).To(back)
			value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
		}
		singleSteps &= ^nextPlayer.PromotionRankBb()
		for singleSteps != 0 {
			toSquare := singleSteps.PopLsb()
			fromSquare := toSquare.To(back)
			value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
		}
	}
}

// pushPromotions appends the queen promotion for a pawn reaching
// toSquare from fromSquare. Under-promotions are never generated: a
// knight, rook, or bishop promotion is strictly worse than queening
// outside rare stalemate-avoidance lines, and this engine accepts
// that known gap.
func pushPromotions(ml *moveslice.MoveSlice, fromSquare, toSquare Square, baseValue Value) {
	ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Queen, baseValue+Queen.ValueOf()))
}

// castlingMoves lists, per color, the castling moves to try along with
// the right that must be held and the squares that must be empty.
var castlingMoves = map[Color][]struct {
	right            CastlingRights
	from, to         Square
	emptyFrom, empty Square
}{
	White: {
		{CastlingWhiteOO, SqE1, SqG1, SqE1, SqH1},
		{CastlingWhiteOOO, SqE1, SqC1, SqE1, SqA1},
	},
	Black: {
		{CastlingBlackOO, SqE8, SqG8, SqE8, SqH8},
		{CastlingBlackOOO, SqE8, SqC8, SqE8, SqA8},
	},
}

// generateCastling appends every castling move whose right is still
// held and whose path is unblocked. This is the pseudo-legal form: it
// does not check whether the king starts, crosses, or lands in check —
// Position.IsLegalMove does that.
func (mg *Movegen) generateCastling(pos *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	if mode&GenNonCap == 0 || pos.CastlingRights() == CastlingNone {
		return
	}
	cr := pos.CastlingRights()
	occupied := pos.OccupiedAll()
	for _, c := range castlingMoves[pos.NextPlayer()] {
		if cr.Has(c.right) && Intermediate(c.emptyFrom, c.empty)&occupied == 0 {
			ml.PushBack(CreateMoveValue(c.from, c.to, Castling, PtNone, Value(-5000)))
		}
	}
}

func (mg *Movegen) generateKingMoves(pos *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := pos.NextPlayer()
	piece := MakePiece(nextPlayer, King)
	gamePhase := pos.GamePhase()
	kingBb := pos.PiecesBb(nextPlayer, King)
	fromSquare := kingBb.PopLsb()
	pseudoMoves := GetPseudoAttacks(King, fromSquare)

	if mode&GenCap != 0 {
		for captures := pseudoMoves & pos.OccupiedBb(nextPlayer.Flip()); captures != 0; {
			toSquare := captures.PopLsb()
			value := pos.GetPiece(toSquare).ValueOf() - pos.GetPiece(fromSquare).ValueOf() + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
		}
	}
	if mode&GenNonCap != 0 {
		for quiet := pseudoMoves &^ pos.OccupiedAll(); quiet != 0; {
			toSquare := quiet.PopLsb()
			value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
		}
	}
}

// generateOfficerMoves appends knight/bishop/rook/queen moves using
// the magic-bitboard attack tables, which already account for blockers
// and so need no separate "is the path clear" check for sliders.
func (mg *Movegen) generateOfficerMoves(pos *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := pos.NextPlayer()
	gamePhase := pos.GamePhase()
	occupiedBb := pos.OccupiedAll()

	for pt := Knight; pt <= Queen; pt++ {
		piece := MakePiece(nextPlayer, pt)
		for pieces := pos.PiecesBb(nextPlayer, pt); pieces != 0; {
			fromSquare := pieces.PopLsb()
			moves := GetAttacksBb(pt, fromSquare, occupiedBb)

			if mode&GenCap != 0 {
				for captures := moves & pos.OccupiedBb(nextPlayer.Flip()); captures != 0; {
					toSquare := captures.PopLsb()
					value := pos.GetPiece(toSquare).ValueOf() - pos.GetPiece(fromSquare).ValueOf() + PosValue(piece, toSquare, gamePhase)
					ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
				}
			}
			if mode&GenNonCap != 0 {
				for quiet := moves &^ occupiedBb; quiet != 0; {
					toSquare := quiet.PopLsb()
					value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
					ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
				}
			}
		}
	}
}
