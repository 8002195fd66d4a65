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
	"github.com/gopherchess/goknight/internal/position"
	. "github.com/gopherchess/goknight/internal/types"
)

// see runs a static exchange evaluation of move on p: it replays the
// capture sequence on toSquare with both sides always recapturing with
// their least valuable attacker, and returns the net material result
// from the side to move's perspective. Used to filter losing captures
// out of quiescence search without a full recursive search.
func see(p *position.Position, move Move) Value {
	// en passant is treated as an always-winning capture; the move that
	// enabled it was never a capture itself, so there is nothing to
	// unwind here.
	if move.MoveType() == EnPassant {
		return 100
	}

	// one entry per capture in the exchange; 32 is more than any legal
	// position could ever produce on a single square.
	gainAtPly := make([]Value, 32, 32)

	ply := 0
	toSquare := move.To()
	fromSquare := move.From()
	attacker := p.GetPiece(fromSquare)
	sideToMove := p.NextPlayer()

	// occupancy shrinks as pieces are removed from the board, to reveal
	// x-ray attacks behind them.
	occupied := p.OccupiedAll()

	attackers := AttacksTo(p, toSquare, White) | AttacksTo(p, toSquare, Black)

	gainAtPly[ply] = p.GetPiece(toSquare).ValueOf()

	for {
		ply++
		sideToMove = sideToMove.Flip()

		if move.MoveType() == Promotion {
			gainAtPly[ply] = move.PromotionType().ValueOf() - Pawn.ValueOf() - gainAtPly[ply-1]
		} else {
			gainAtPly[ply] = attacker.ValueOf() - gainAtPly[ply-1]
		}

		// standing pat here already loses no more than this ply's
		// potential gain, so no recapture can improve the final score.
		if seeMax(-gainAtPly[ply-1], gainAtPly[ply]) < 0 {
			break
		}

		attackers.PopSquare(fromSquare)
		occupied.PopSquare(fromSquare)

		attackers |= revealedAttacks(p, toSquare, occupied, White) |
			revealedAttacks(p, toSquare, occupied, Black)

		fromSquare = getLeastValuablePiece(p, attackers, sideToMove)
		if fromSquare == SqNone {
			break
		}

		attacker = p.GetPiece(fromSquare)
	}

	ply--
	for ply > 0 {
		gainAtPly[ply-1] = -seeMax(-gainAtPly[ply-1], gainAtPly[ply])
		ply--
	}

	return gainAtPly[0]
}

// AttacksTo returns every square from which a piece of color color
// attacks square, ignoring en passant (the move preceding an en passant
// capture is never itself a capture, so it never feeds an exchange
// sequence).
func AttacksTo(p *position.Position, square Square, color Color) Bitboard {
	occupied := p.OccupiedAll()
	return (GetPawnAttacks(color.Flip(), square) & p.PiecesBb(color, Pawn)) |
		(GetAttacksBb(Knight, square, occupied) & p.PiecesBb(color, Knight)) |
		(GetAttacksBb(King, square, occupied) & p.PiecesBb(color, King)) |
		(GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen))) |
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)))
}

// revealedAttacks returns the slider attacks on square that become
// visible once occupied reflects a piece having just been removed from
// the board. Only sliders can gain a new attack this way.
func revealedAttacks(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	return (GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen)) & occupied) |
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)) & occupied)
}

// leastValuableOrder is the priority static exchange evaluation always
// recaptures in: cheapest attacker first.
var leastValuableOrder = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// getLeastValuablePiece returns the square of color's cheapest attacker
// among bitboard, or SqNone if color has no attacker left in bitboard.
// Ties between same-type attackers resolve to the lowest-numbered
// square.
func getLeastValuablePiece(position *position.Position, bitboard Bitboard, color Color) Square {
	for _, pt := range leastValuableOrder {
		if attackers := bitboard & position.PiecesBb(color, pt); attackers != 0 {
			return attackers.Lsb()
		}
	}
	return SqNone
}

func seeMax(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
