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

// Package position models one chess position: an 8x8 piece board backed
// by per-color/per-piece-type bitboards, an undo history for DoMove (no
// repetition detection), incrementally maintained zobrist key, material
// counts, and piece-square totals.
//
// Build one with NewPosition(), or NewPosition(fen) to start from an
// arbitrary FEN string.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/gopherchess/goknight/internal/assert"
	myLogging "github.com/gopherchess/goknight/internal/logging"
	. "github.com/gopherchess/goknight/internal/types"
)

var log *logging.Logger

var initialized = false

func init() {
	if !initialized {
		initZobrist()
		initialized = true
	}
}

// StartFen is the FEN string for the standard chess starting position.
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Key is a zobrist hash identifying a position; it needs the full
// 64 bits for a good distribution across a transposition table.
type Key uint64

// castleRookMove describes, for one castling destination square, where
// the rook starts and ends and which castling rights the move clears.
type castleRookMove struct {
	rookFrom, rookTo Square
	clears           CastlingRights
}

var castleRookMoves = map[Square]castleRookMove{
	SqG1: {SqH1, SqF1, CastlingWhite},
	SqC1: {SqA1, SqD1, CastlingWhite},
	SqG8: {SqH8, SqF8, CastlingBlack},
	SqC8: {SqA8, SqD8, CastlingBlack},
}

// crossedCastleSquare is the square a king passes through en route to
// each castling destination; castling is illegal if the opponent
// attacks it.
var crossedCastleSquare = map[Square]Square{
	SqG1: SqF1,
	SqC1: SqD1,
	SqG8: SqF8,
	SqC8: SqD8,
}

// Position is a single chess position: board, bitboards, move history,
// and the incrementally maintained values derived from them.
//
// Build one with NewPosition() or NewPositionFen(fen).
type Position struct {
	// zobristKey is updated incrementally on every state change rather
	// than recomputed from scratch. pawnKey covers the pawns only and
	// keys the evaluator's pawn-structure cache; XOR updates reverse
	// themselves on undo, so it needs no history slot.
	zobristKey Key
	pawnKey    Key

	// board state uniquely identifying a position (aside from 3-fold
	// repetition, which lives outside a single FEN).
	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color

	// derived/cached state, redundant with the above but convenient.
	kingSquare         [ColorLength]Square
	nextHalfMoveNumber int
	piecesBb           [ColorLength][PtLength]Bitboard
	occupiedBb         [ColorLength]Bitboard

	historyCounter int
	history        [maxHistory]historyEntry

	// kept up to date by doMove/undoMove.
	material        [ColorLength]Value
	materialNonPawn [ColorLength]Value
	psqMidValue     [ColorLength]Value
	psqEndValue     [ColorLength]Value
	gamePhase       int

	// hasCheckFlag memoizes HasCheck for the current position; it is
	// reset to checkUnknown by every DoMove/UndoMove/DoNullMove/UndoNullMove.
	hasCheckFlag int
}

// historyEntry is everything DoMove/DoNullMove must restore on undo
// that isn't otherwise recoverable from the move itself.
type historyEntry struct {
	zobristKey      Key
	move            Move
	fromPiece       Piece
	capturedPiece   Piece
	castlingRights  CastlingRights
	enpassantSquare Square
	halfMoveClock   int
	hasCheckFlag    int
}

const maxHistory int = MaxMoves

// hasCheckFlag states.
const (
	checkUnknown int = 0
	checkFalse   int = 1
	checkTrue    int = 2
)

// NewPosition returns the standard starting position, or the position
// described by fen if one is given (additional arguments are ignored).
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, _ := NewPositionFen(fen[0])
	return p
}

// NewPositionFen builds a Position from fen, or returns nil and an
// error if fen does not parse.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{}
	if err := p.setupBoard(fen); err != nil {
		log.Errorf("fen for position setup not valid and position can't be created: %s", err)
		return nil, err
	}
	return p, nil
}

// DoMove applies m to the board. Legality is not checked here — by the
// time a move reaches DoMove it is assumed to have come from a move
// generator or otherwise already been validated.
func (p *Position) DoMove(m Move) {
	fromSq := m.From()
	fromPc := p.board[fromSq]
	myColor := fromPc.ColorOf()
	toSq := m.To()
	targetPc := p.board[toSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Position DoMove: Invalid move %s", m.String())
		assert.Assert(fromPc != PieceNone, "Position DoMove: No piece on %s for move %s", fromPc.String(), m.StringUci())
		assert.Assert(myColor == p.nextPlayer, "Position DoMove: Piece to move does not belong to next player %s", fromPc.String())
		assert.Assert(targetPc.TypeOf() != King, "Position DoMove: King cannot be captured yet target piece is %s", targetPc.String())
	}

	p.pushHistory(m, fromPc, targetPc)

	switch m.MoveType() {
	case Normal:
		p.doNormalMove(fromSq, toSq, targetPc, fromPc, myColor)
	case Promotion:
		p.doPromotionMove(m, fromPc, myColor, toSq, targetPc, fromSq)
	case EnPassant:
		p.doEnPassantMove(toSq, myColor, fromPc, fromSq)
	case Castling:
		p.doCastlingMove(fromPc, myColor, toSq, fromSq)
	}

	p.hasCheckFlag = checkUnknown
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer
}

// pushHistory records the state DoMove/DoNullMove needs to undo, by
// overwriting the next history slot in place rather than allocating.
func (p *Position) pushHistory(m Move, fromPc, capturedPc Piece) {
	n := p.historyCounter
	p.history[n] = historyEntry{
		zobristKey:      p.zobristKey,
		move:            m,
		fromPiece:       fromPc,
		capturedPiece:   capturedPc,
		castlingRights:  p.castlingRights,
		enpassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
		hasCheckFlag:    p.hasCheckFlag,
	}
	p.historyCounter++
}

// UndoMove reverts the last move applied via DoMove.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "Position UndoMove: Cannot undo initial position")
	}

	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	entry := p.history[p.historyCounter]
	move := entry.move

	switch move.MoveType() {
	case Normal:
		p.movePiece(move.To(), move.From())
		if entry.capturedPiece != PieceNone {
			p.putPiece(entry.capturedPiece, move.To())
		}
	case Promotion:
		p.removePiece(move.To())
		p.putPiece(MakePiece(p.nextPlayer, Pawn), move.From())
		if entry.capturedPiece != PieceNone {
			p.putPiece(entry.capturedPiece, move.To())
		}
	case EnPassant:
		// zobrist key is restored from history below, not recomputed.
		p.movePiece(move.To(), move.From())
		p.putPiece(MakePiece(p.nextPlayer.Flip(), Pawn), move.To().To(p.nextPlayer.Flip().MoveDirection()))
	case Castling:
		// zobrist key and castling rights are both restored from history.
		p.movePiece(move.To(), move.From()) // king
		rm, ok := castleRookMoves[move.To()]
		if !ok {
			panic("Invalid castle move!")
		}
		p.movePiece(rm.rookTo, rm.rookFrom) // rook goes back to its starting square
	}

	p.restoreFromHistory(entry)
}

// restoreFromHistory writes back every field undoing a move can't
// recompute by reversing the board update alone.
func (p *Position) restoreFromHistory(entry historyEntry) {
	p.castlingRights = entry.castlingRights
	p.enPassantSquare = entry.enpassantSquare
	p.halfMoveClock = entry.halfMoveClock
	p.hasCheckFlag = entry.hasCheckFlag
	p.zobristKey = entry.zobristKey
}

// DoNullMove passes the turn without moving a piece, used by null move
// pruning. The position before the pass is pushed to history exactly
// as DoMove would, so UndoNullMove restores it byte for byte even
// though the history entry's move/piece fields are meaningless.
func (p *Position) DoNullMove() {
	p.pushHistory(MoveNone, PieceNone, PieceNone)
	p.hasCheckFlag = checkUnknown
	p.clearEnPassant()
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer
}

// UndoNullMove reverts a DoNullMove. The history slot is left rolled
// back rather than erased, which is fine since nothing reads a
// history counter past the current one.
func (p *Position) UndoNullMove() {
	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	p.restoreFromHistory(p.history[p.historyCounter])
}

// IsAttacked reports whether sq is attacked by any piece of color by,
// found via a reverse attack scan from sq outward.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	// non-sliding pieces
	if (GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0) ||
		(GetPseudoAttacks(Knight, sq)&p.piecesBb[by][Knight] != 0) ||
		(GetPseudoAttacks(King, sq)&p.piecesBb[by][King] != 0) {
		return true
	}

	// sliders: place a queen on sq and see if it would hit one of by's sliders.
	occupied := p.OccupiedAll()
	if GetAttacksBb(Bishop, sq, occupied)&p.piecesBb[by][Bishop] > 0 ||
		GetAttacksBb(Rook, sq, occupied)&p.piecesBb[by][Rook] > 0 ||
		GetAttacksBb(Queen, sq, occupied)&p.piecesBb[by][Queen] > 0 {
		return true
	}

	return p.isAttackedEnPassant(sq, by)
}

// isAttackedEnPassant covers the one case IsAttacked's piece scan
// can't: a pawn capturable en passant attacking sq from the side.
func (p *Position) isAttackedEnPassant(sq Square, by Color) bool {
	if p.enPassantSquare == SqNone {
		return false
	}
	switch by {
	case White:
		if p.board[p.enPassantSquare.To(South)] != BlackPawn || p.enPassantSquare.To(South) != sq {
			return false
		}
		return p.board[sq.To(West)] == WhitePawn || p.board[sq.To(East)] == WhitePawn
	case Black:
		if p.board[p.enPassantSquare.To(North)] != WhitePawn || p.enPassantSquare.To(North) != sq {
			return false
		}
		return p.board[sq.To(West)] == BlackPawn || p.board[sq.To(East)] == BlackPawn
	}
	return false
}

// IsLegalMove reports whether move is legal on the current position:
// it must not leave the mover's own king in check, and a castling move
// must not cross or land on a square the opponent attacks.
func (p *Position) IsLegalMove(move Move) bool {
	if move.MoveType() == Castling {
		opponent := p.nextPlayer.Flip()
		if p.IsAttacked(move.From(), opponent) {
			return false
		}
		if crossed, ok := crossedCastleSquare[move.To()]; ok && p.IsAttacked(crossed, opponent) {
			return false
		}
	}
	p.DoMove(move)
	legal := !p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer)
	p.UndoMove()
	return legal
}

// WasLegalMove reports whether the most recently applied move was
// legal: the mover's king must not now be in check, and if the move
// was castling it must not have crossed or started from an attacked
// square. With no history this only checks whether the opponent's king
// is presently attacked.
func (p *Position) WasLegalMove() bool {
	if p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer) {
		return false
	}
	if p.historyCounter == 0 {
		return true
	}
	move := p.history[p.historyCounter-1].move
	if move.MoveType() != Castling {
		return true
	}
	if p.IsAttacked(move.From(), p.nextPlayer) {
		return false
	}
	crossed, ok := crossedCastleSquare[move.To()]
	return !ok || !p.IsAttacked(crossed, p.nextPlayer)
}

// HasCheck reports whether the side to move is in check, caching the
// result against the current position so repeated calls are cheap.
func (p *Position) HasCheck() bool {
	if p.hasCheckFlag != checkUnknown {
		return p.hasCheckFlag == checkTrue
	}
	check := p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip())
	if check {
		p.hasCheckFlag = checkTrue
	} else {
		p.hasCheckFlag = checkFalse
	}
	return check
}

// IsCapturingMove reports whether move captures a piece, including en
// passant captures.
func (p *Position) IsCapturingMove(move Move) bool {
	return p.occupiedBb[p.nextPlayer.Flip()].Has(move.To()) || move.MoveType() == EnPassant
}

// HasInsufficientMaterial reports whether neither side has enough
// material to force mate. It doesn't rule out a helpmate the weaker
// side's opponent could only reach by blundering.
func (p *Position) HasInsufficientMaterial() bool {
	if p.material[White]+p.material[Black] == 0 {
		return true
	}
	if p.piecesBb[White][Pawn].PopCount() != 0 || p.piecesBb[Black][Pawn].PopCount() != 0 {
		return false
	}

	wm, bm := p.materialNonPawn[White], p.materialNonPawn[Black]
	switch {
	case wm < 400 && bm < 400:
		// king and at most one minor piece each.
		return true
	case (wm == 2*Knight.ValueOf() && bm <= Bishop.ValueOf()) || (bm == 2*Knight.ValueOf() && wm <= Bishop.ValueOf()):
		// two knights can't force mate against a bare king or lone minor.
		return true
	case (wm == 2*Bishop.ValueOf() && bm == Bishop.ValueOf()) || (bm == 2*Bishop.ValueOf() && wm == Bishop.ValueOf()):
		return true
	case wm == 2*Bishop.ValueOf() || bm == 2*Bishop.ValueOf():
		// a bishop pair against anything weaker can force mate.
		return false
	case (wm < 2*Bishop.ValueOf() && bm <= Bishop.ValueOf()) || (wm <= Bishop.ValueOf() && bm < 2*Bishop.ValueOf()):
		return true
	}
	return false
}

// GivesCheck reports whether playing move would check the opponent of
// the side to move.
func (p *Position) GivesCheck(move Move) bool {
	us := p.nextPlayer
	them := us.Flip()
	kingSq := p.kingSquare[them]

	fromSq := move.From()
	toSq := move.To()
	fromPt := p.board[fromSq].TypeOf()
	epTargetSq := SqNone

	switch move.MoveType() {
	case Promotion:
		fromPt = move.PromotionType()
	case Castling:
		// the king can't give check and castling reveals no check, so
		// only the rook's arrival square and type matter here.
		fromPt = Rook
		if rm, ok := castleRookMoves[toSq]; ok {
			toSq = rm.rookTo
		}
	case EnPassant:
		epTargetSq = toSq.To(them.MoveDirection())
	}

	boardAfterMove := p.OccupiedAll()
	boardAfterMove.PopSquare(fromSq)
	boardAfterMove.PushSquare(toSq)
	if move.MoveType() == EnPassant {
		boardAfterMove.PopSquare(epTargetSq)
	}

	// direct check from the moved/promoted piece.
	switch fromPt {
	case Pawn:
		if GetPawnAttacks(us, toSq).Has(kingSq) {
			return true
		}
	case King:
		// a king can never give check.
	default:
		if GetAttacksBb(fromPt, toSq, boardAfterMove).Has(kingSq) {
			return true
		}
	}

	// revealed check: only sliders can newly attack through a vacated
	// square; knights and pawns can't be revealed this way, except the
	// en passant capture square handled above via boardAfterMove.
	return GetAttacksBb(Bishop, kingSq, boardAfterMove)&p.piecesBb[us][Bishop] > 0 ||
		GetAttacksBb(Rook, kingSq, boardAfterMove)&p.piecesBb[us][Rook] > 0 ||
		GetAttacksBb(Queen, kingSq, boardAfterMove)&p.piecesBb[us][Queen] > 0
}

// String renders the FEN, a board diagram, and the position's cached
// game phase, material, and piece-square values.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.StringFen())
	sb.WriteString("\n")
	sb.WriteString(p.StringBoard())
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Next Player    : %s\n", p.nextPlayer.String())
	fmt.Fprintf(&sb, "Game Phase     : %d\n", p.gamePhase)
	fmt.Fprintf(&sb, "Material White : %d\n", p.material[White])
	fmt.Fprintf(&sb, "Material Black : %d\n", p.material[Black])
	fmt.Fprintf(&sb, "Pos value White: %d/%d\n", p.psqMidValue[White], p.psqEndValue[White])
	fmt.Fprintf(&sb, "Pos value Black: %d/%d\n", p.psqMidValue[Black], p.psqEndValue[Black])
	return sb.String()
}

// StringFen returns the FEN string for the current position.
func (p *Position) StringFen() string {
	return p.fen()
}

// StringBoard renders an ASCII diagram of the board.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(p.board[SquareOf(f, Rank8-r)].Char())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}

func (p *Position) doNormalMove(fromSq Square, toSq Square, targetPc Piece, fromPc Piece, myColor Color) {
	p.invalidateCastlingRights(fromSq, toSq)
	p.clearEnPassant()
	switch {
	case targetPc != PieceNone:
		p.removePiece(toSq)
		p.halfMoveClock = 0
	case fromPc.TypeOf() == Pawn:
		p.halfMoveClock = 0
		if SquareDistance(fromSq, toSq) == 2 {
			p.enPassantSquare = toSq.To(myColor.Flip().MoveDirection())
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	default:
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

// invalidateCastlingRights clears whichever castling rights a move
// touching fromSq/toSq (as mover or as captured rook) forfeits.
func (p *Position) invalidateCastlingRights(fromSq, toSq Square) {
	if p.castlingRights == CastlingNone {
		return
	}
	if cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq); cr != CastlingNone {
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
		p.castlingRights.Remove(cr)
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	}
}

func (p *Position) doCastlingMove(fromPc Piece, myColor Color, toSq Square, fromSq Square) {
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, King), "Position DoMove: Move type castling but from piece not king")
		p.assertCastlingPreconditions(toSq, fromSq)
	}
	rm, ok := castleRookMoves[toSq]
	if !ok {
		panic("Invalid castle move!")
	}
	p.movePiece(fromSq, toSq)
	p.movePiece(rm.rookFrom, rm.rookTo)
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	p.castlingRights.Remove(rm.clears)
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	p.clearEnPassant()
	p.halfMoveClock++
}

func (p *Position) assertCastlingPreconditions(toSq, fromSq Square) {
	rm := castleRookMoves[toSq]
	right := map[Square]CastlingRights{SqG1: CastlingWhiteOO, SqC1: CastlingWhiteOOO, SqG8: CastlingBlackOO, SqC8: CastlingBlackOOO}[toSq]
	kingHome := map[Square]Square{SqG1: SqE1, SqC1: SqE1, SqG8: SqE8, SqC8: SqE8}[toSq]
	kingPc := map[Square]Piece{SqG1: WhiteKing, SqC1: WhiteKing, SqG8: BlackKing, SqC8: BlackKing}[toSq]
	rookPc := map[Square]Piece{SqG1: WhiteRook, SqC1: WhiteRook, SqG8: BlackRook, SqC8: BlackRook}[toSq]
	assert.Assert(p.castlingRights.Has(right), "Position DoMove: castling right not available for %s", toSq.String())
	assert.Assert(fromSq == kingHome, "Position DoMove: Castling from square not correct")
	assert.Assert(p.board[kingHome] == kingPc, "Position DoMove: king home square has no king for castling")
	assert.Assert(p.board[rm.rookFrom] == rookPc, "Position DoMove: rook square has no rook for castling")
	assert.Assert(p.OccupiedAll()&Intermediate(kingHome, rm.rookFrom) == 0, "Position DoMove: castling blocked")
}

func (p *Position) doEnPassantMove(toSq Square, myColor Color, fromPc Piece, fromSq Square) {
	capSq := toSq.To(myColor.Flip().MoveDirection())
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "Position DoMove: Move type en passant but from piece not pawn")
		assert.Assert(p.enPassantSquare != SqNone, "Position DoMove: EnPassant move type without en passant")
		assert.Assert(p.board[capSq] == MakePiece(myColor.Flip(), Pawn), "Position DoMove: Captured en passant piece invalid")
	}
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) doPromotionMove(m Move, fromPc Piece, myColor Color, toSq Square, targetPc Piece, fromSq Square) {
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "Position DoMove: Move type promotion but From piece not Pawn")
		assert.Assert(myColor.PromotionRankBb().Has(toSq), "Position DoMove: Promotion move but wrong Rank")
	}
	if targetPc != PieceNone {
		p.removePiece(toSq)
	}
	p.invalidateCastlingRights(fromSq, toSq)
	p.removePiece(fromSq)
	p.putPiece(MakePiece(myColor, m.PromotionType()), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) movePiece(fromSq Square, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

func (p *Position) putPiece(piece Piece, square Square) {
	color := piece.ColorOf()
	pieceType := piece.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.board[square] == PieceNone, "tried to put piece on an occupied square: %s", square.String())
		assert.Assert(!p.piecesBb[color][pieceType].Has(square), "tried to set bit on pieceBb which is already set: %s", square.String())
		assert.Assert(!p.occupiedBb[color].Has(square), "tried to set bit on occupiedBb which is already set: %s", square.String())
	}

	p.board[square] = piece
	if pieceType == King {
		p.kingSquare[color] = square
	}
	p.piecesBb[color][pieceType].PushSquare(square)
	p.occupiedBb[color].PushSquare(square)
	p.zobristKey ^= zobristBase.pieces[piece][square]
	if pieceType == Pawn {
		p.pawnKey ^= zobristBase.pieces[piece][square]
	}

	p.gamePhase += pieceType.GamePhaseValue()
	if p.gamePhase > GamePhaseMax {
		p.gamePhase = GamePhaseMax
	}
	p.material[color] += pieceType.ValueOf()
	if pieceType > Pawn {
		p.materialNonPawn[color] += pieceType.ValueOf()
	}
	p.psqMidValue[color] += PosMidValue(piece, square)
	p.psqEndValue[color] += PosEndValue(piece, square)
}

func (p *Position) removePiece(square Square) Piece {
	removed := p.board[square]
	color := removed.ColorOf()
	pieceType := removed.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.board[square] != PieceNone, "tried to remove piece from an empty square: %s", square.String())
		assert.Assert(p.piecesBb[color][pieceType].Has(square), "tried to clear bit from pieceBb which is not set: %s", square.String())
		assert.Assert(p.occupiedBb[color].Has(square), "tried to clear bit from occupiedBb which is not set: %s", square.String())
	}

	p.board[square] = PieceNone
	p.piecesBb[color][pieceType].PopSquare(square)
	p.occupiedBb[color].PopSquare(square)
	p.zobristKey ^= zobristBase.pieces[removed][square]
	if pieceType == Pawn {
		p.pawnKey ^= zobristBase.pieces[removed][square]
	}

	p.gamePhase -= pieceType.GamePhaseValue()
	if p.gamePhase < 0 {
		p.gamePhase = 0
	}
	p.material[color] -= pieceType.ValueOf()
	if pieceType > Pawn {
		p.materialNonPawn[color] -= pieceType.ValueOf()
	}
	p.psqMidValue[color] -= PosMidValue(removed, square)
	p.psqEndValue[color] -= PosEndValue(removed, square)
	return removed
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
}

func (p *Position) fen() string {
	var sb strings.Builder
	for r := Rank1; r <= Rank8; r++ {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank8-r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r < Rank8 {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(p.nextPlayer.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa((p.nextHalfMoveNumber + 1) / 2))
	return sb.String()
}

var (
	regexFenPos         = regexp.MustCompile("[0-8pPnNbBrRqQkK/]+")
	regexNextPlayer     = regexp.MustCompile("^[w|b]$")
	regexCastlingRights = regexp.MustCompile("^(K?Q?k?q?|-)$")
	regexEnPassant      = regexp.MustCompile("^([a-h][1-8]|-)$")
)

// castlingRightChars maps each FEN castling-rights letter to the
// right it grants.
var castlingRightChars = map[string]CastlingRights{
	"K": CastlingWhiteOO,
	"Q": CastlingWhiteOOO,
	"k": CastlingBlackOO,
	"q": CastlingBlackOOO,
}

// setupBoard parses fen and initializes every field of p from it. This
// is the only path that produces a valid Position; all other fields
// start at their zero value and are filled in as the FEN is consumed.
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")

	if len(fenParts) == 0 {
		return errors.New("fen must not be empty")
	}
	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen position contains invalid characters")
	}

	// the board part of a FEN starts at a8 and reads toward h8, with
	// '/' jumping to file a of the next rank down.
	currentSquare := SqA8
	for _, c := range fenParts[0] {
		switch {
		case c == '/':
			currentSquare = Square(int(currentSquare) + 2*int(South))
		case c >= '1' && c <= '8':
			currentSquare = Square(int(currentSquare) + (int(c-'0') * int(East)))
		default:
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character: %s", string(c))
			}
			p.putPiece(piece, currentSquare)
			currentSquare++
		}
	}
	if currentSquare != SqA2 {
		return errors.New("not reached last square (h1) after reading fen")
	}

	p.nextHalfMoveNumber = 1
	p.enPassantSquare = SqNone

	// everything past the board layout is optional; defaults apply
	// when a field is missing.

	if len(fenParts) >= 2 {
		if !regexNextPlayer.MatchString(fenParts[1]) {
			return errors.New("fen next player contains invalid characters")
		}
		switch fenParts[1] {
		case "w":
			p.nextPlayer = White
		case "b":
			p.nextPlayer = Black
			p.zobristKey ^= zobristBase.nextPlayer
			p.nextHalfMoveNumber++
		}
	}

	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return errors.New("fen castling rights contains invalid characters")
		}
		if fenParts[2] != "-" {
			for _, c := range fenParts[2] {
				if right, ok := castlingRightChars[string(c)]; ok {
					p.castlingRights.Add(right)
				}
			}
		}
	}
	// the rights' key is always part of the hash, even with no rights
	// left, so incremental updates stay consistent with this setup.
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]

	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return errors.New("fen en passant square contains invalid characters")
		}
		if fenParts[3] != "-" {
			p.enPassantSquare = MakeSquare(fenParts[3])
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	}

	if len(fenParts) >= 5 {
		n, err := strconv.Atoi(fenParts[4])
		if err != nil {
			return err
		}
		p.halfMoveClock = n
	}

	if len(fenParts) >= 6 {
		moveNumber, err := strconv.Atoi(fenParts[5])
		if err != nil {
			return err
		}
		if moveNumber == 0 {
			moveNumber = 1
		}
		p.nextHalfMoveNumber = 2*moveNumber - (1 - int(p.nextPlayer))
	}

	return nil
}

// ZobristKey returns the position's current zobrist hash.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// PawnKey returns the zobrist hash over the pawns alone, used to key
// the pawn-structure cache.
func (p *Position) PawnKey() Key {
	return p.pawnKey
}

// NextPlayer returns the color to move.
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// GetPiece returns the piece on sq, or PieceNone if sq is empty.
func (p *Position) GetPiece(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the bitboard of color c's pieces of type pt.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedAll returns every occupied square on the board.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// OccupiedBb returns every square occupied by color c.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// GamePhase returns the position's current game phase, from 0 (no
// officers left) up to GamePhaseMax (full starting material).
func (p *Position) GamePhase() int {
	return p.gamePhase
}

// GamePhaseFactor returns GamePhase divided by GamePhaseMax, a value
// in [0, 1].
func (p *Position) GamePhaseFactor() float64 {
	return float64(p.gamePhase) / GamePhaseMax
}

// GetEnPassantSquare returns the current en passant target square, or
// SqNone if none is set.
func (p *Position) GetEnPassantSquare() Square {
	return p.enPassantSquare
}

// CastlingRights returns the position's current castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// KingSquare returns the square color c's king stands on.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the position's half-move clock (for the
// 50-move rule).
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// Material returns color c's total material value.
func (p *Position) Material(c Color) Value {
	return p.material[c]
}

// MaterialNonPawn returns color c's material value excluding pawns.
func (p *Position) MaterialNonPawn(c Color) Value {
	return p.materialNonPawn[c]
}

// PsqMidValue returns color c's piece-square value weighted for the
// middlegame.
func (p *Position) PsqMidValue(c Color) Value {
	return p.psqMidValue[c]
}

// PsqEndValue returns color c's piece-square value weighted for the
// endgame.
func (p *Position) PsqEndValue(c Color) Value {
	return p.psqEndValue[c]
}

// LastMove returns the most recently applied move, or MoveNone if the
// position has no history.
func (p *Position) LastMove() Move {
	if p.historyCounter <= 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

// LastCapturedPiece returns the piece captured by the most recent
// move, or PieceNone if that move wasn't a capture or there is no
// history.
func (p *Position) LastCapturedPiece() Piece {
	if p.historyCounter <= 0 {
		return PieceNone
	}
	return p.history[p.historyCounter-1].capturedPiece
}

// WasCapturingMove reports whether the most recent move was a capture.
func (p *Position) WasCapturingMove() bool {
	return p.LastCapturedPiece() != PieceNone
}
