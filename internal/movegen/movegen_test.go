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

package movegen

import (
	"os"
	"path"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherchess/goknight/internal/config"
	"github.com/gopherchess/goknight/internal/moveslice"
	"github.com/gopherchess/goknight/internal/position"
	. "github.com/gopherchess/goknight/internal/types"
)

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

// uciSet returns the moves of ml as a sorted list of uci strings, for
// order-independent comparisons.
func uciSet(ml *moveslice.MoveSlice) []string {
	set := make([]string, 0, ml.Len())
	for _, m := range *ml {
		set = append(set, m.StringUci())
	}
	sort.Strings(set)
	return set
}

func indexOf(ml *moveslice.MoveSlice, uci string) int {
	for i, m := range *ml {
		if m.StringUci() == uci {
			return i
		}
	}
	return -1
}

func TestGeneratePawnMoves(t *testing.T) {
	mg := NewMoveGen()
	pos, _ := position.NewPositionFen("1kr3nr/pp1pP1P1/2p1p3/3P1p2/1n1bP3/2P5/PP3PPP/RNBQKBNR w KQ -")
	moves := moveslice.NewMoveSlice(MaxMoves)

	mg.generatePawnMoves(pos, GenCap, moves)
	assert.Equal(t, 6, moves.Len()) // 5 captures + the queen promotion capture on h8

	moves.Clear()
	mg.generatePawnMoves(pos, GenNonCap, moves)
	assert.Equal(t, 13, moves.Len()) // 8 single, 4 double, 1 push promotion

	moves.Clear()
	mg.generatePawnMoves(pos, GenAll, moves)
	assert.Equal(t, 19, moves.Len())
}

func TestGenerateCastling(t *testing.T) {
	mg := NewMoveGen()
	moves := moveslice.NewMoveSlice(MaxMoves)

	pos, _ := position.NewPositionFen("r3k2r/pbppqppp/1pn2n2/1B2p3/1b2P3/N1PP1N2/PP1BQPPP/R3K2R w KQkq -")
	mg.generateCastling(pos, GenAll, moves)
	assert.Equal(t, 2, moves.Len())
	assert.Equal(t, "e1g1 e1c1", moves.StringUci())

	moves.Clear()
	pos, _ = position.NewPositionFen("r3k2r/pbppqppp/1pn2n2/1B2p3/1b2P3/N1PP1N2/PP1BQPPP/R3K2R b KQkq -")
	mg.generateCastling(pos, GenAll, moves)
	assert.Equal(t, 2, moves.Len())
	assert.Equal(t, "e8g8 e8c8", moves.StringUci())

	// blocked path: no castling move generated
	moves.Clear()
	pos, _ = position.NewPositionFen("r3k2r/pbppqppp/1pn2n2/1B2p3/1b2P3/N1PP1N2/PP1BQPPP/RN2K2R w KQkq -")
	mg.generateCastling(pos, GenAll, moves)
	assert.Equal(t, 1, moves.Len())
	assert.Equal(t, "e1g1", moves.StringUci())
}

func TestGenerateKingMoves(t *testing.T) {
	mg := NewMoveGen()
	moves := moveslice.NewMoveSlice(MaxMoves)

	pos, _ := position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R w KQkq -")
	mg.generateKingMoves(pos, GenAll, moves)
	assert.Equal(t, 3, moves.Len())
	assert.ElementsMatch(t, []string{"e1d2", "e1d1", "e1f1"}, uciSet(moves))

	moves.Clear()
	pos, _ = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R b KQkq -")
	mg.generateKingMoves(pos, GenAll, moves)
	assert.Equal(t, 3, moves.Len())
	assert.ElementsMatch(t, []string{"e8d7", "e8d8", "e8f8"}, uciSet(moves))
}

func TestGeneratePseudoLegalMoves(t *testing.T) {
	mg := NewMoveGen()

	pos := position.NewPosition()
	moves := mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 20, moves.Len())

	pos, _ = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R w KQkq -")
	moves = mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 40, moves.Len())

	pos, _ = position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")
	moves = mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 74, moves.Len())

	// 218 is the most moves known for any reachable position
	pos, _ = position.NewPositionFen("R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - -")
	moves = mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 218, moves.Len())
}

func TestGenerateLegalMoves(t *testing.T) {
	mg := NewMoveGen()

	pos := position.NewPosition()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 20, moves.Len())

	pos, _ = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R w KQkq -")
	moves = mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 38, moves.Len())
	// king side castling is pseudo-legal but crosses an attacked square
	assert.Equal(t, -1, indexOf(moves, "e1g1"))
	assert.NotEqual(t, -1, indexOf(moves, "e1c1"))

	pos, _ = position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")
	moves = mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 71, moves.Len())

	pos, _ = position.NewPositionFen("R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - -")
	moves = mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 218, moves.Len())
}

// A piece pinned against its own king produces no legal moves.
func TestPinnedPieceHasNoMoves(t *testing.T) {
	mg := NewMoveGen()
	pos, _ := position.NewPositionFen("4k3/4r3/8/8/8/8/4B3/4K3 w - -")
	moves := mg.GenerateLegalMoves(pos, GenAll)
	for _, m := range *moves {
		assert.NotEqual(t, SqE2, m.From(), "pinned bishop must not move: %s", m.StringUci())
	}
	assert.Equal(t, 4, moves.Len()) // king steps only
}

// En passant captures are generated only while the en passant square
// from the immediately preceding double push is set.
func TestEnPassantOnlyAfterDoublePush(t *testing.T) {
	mg := NewMoveGen()

	pos, _ := position.NewPositionFen("rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6")
	moves := mg.GenerateLegalMoves(pos, GenAll)
	assert.NotEqual(t, -1, indexOf(moves, "e5d6"))
	epMove := mg.GetMoveFromUci(pos, "e5d6")
	assert.Equal(t, EnPassant, epMove.MoveType())

	// same position without the en passant right
	pos, _ = position.NewPositionFen("rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq -")
	moves = mg.GenerateLegalMoves(pos, GenAll)
	for _, m := range *moves {
		assert.NotEqual(t, EnPassant, m.MoveType())
	}

	// the right expires after any other reply
	pos, _ = position.NewPositionFen("rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6")
	pos.DoMove(CreateMove(SqB1, SqC3, Normal, PtNone))
	pos.DoMove(CreateMove(SqH7, SqH6, Normal, PtNone))
	moves = mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, -1, indexOf(moves, "e5d6"))
}

// A pawn reaching the last rank is emitted as a queen promotion and
// nothing else: under-promotions are not part of this engine's move set.
func TestPromotionGeneration(t *testing.T) {
	mg := NewMoveGen()
	pos, _ := position.NewPositionFen("6k1/P7/8/8/8/8/8/3K4 w - -")
	moves := mg.GenerateLegalMoves(pos, GenAll)
	assert.NotEqual(t, -1, indexOf(moves, "a7a8Q"))
	queenProm := mg.GetMoveFromUci(pos, "a7a8Q")
	assert.Equal(t, Promotion, queenProm.MoveType())
	assert.Equal(t, Queen, queenProm.PromotionType())
	for _, underProm := range []string{"a7a8N", "a7a8R", "a7a8B"} {
		assert.Equal(t, -1, indexOf(moves, underProm))
		assert.Equal(t, MoveNone, mg.GetMoveFromUci(pos, underProm))
	}
}

// Checkmate: no legal moves and the side to move is in check.
func TestCheckmatePosition(t *testing.T) {
	mg := NewMoveGen()
	pos, _ := position.NewPositionFen("rnbqkbnr/pppppQpp/8/8/2B5/8/PPPPPPPP/RNB1K1NR b - -")
	moves := mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 0, moves.Len())
	assert.True(t, pos.HasCheck())
	assert.False(t, mg.HasLegalMove(pos))
}

// Stalemate: no legal moves and the king is not in check.
func TestStalematePosition(t *testing.T) {
	mg := NewMoveGen()
	pos, _ := position.NewPositionFen("7k/5K2/6Q1/8/8/8/8/8 b - -")
	moves := mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 0, moves.Len())
	assert.False(t, pos.HasCheck())
	assert.False(t, mg.HasLegalMove(pos))
}

func TestHasLegalMove(t *testing.T) {
	mg := NewMoveGen()

	// checkmate
	pos, _ := position.NewPositionFen("rn2kbnr/pbpp1ppp/8/1p2p1q1/4K3/3P4/PPP1PPPP/RNBQ1BNR w kq -")
	assert.False(t, mg.HasLegalMove(pos))
	assert.True(t, pos.HasCheck())

	// the only legal move is an en passant capture
	pos, _ = position.NewPositionFen("8/8/8/8/5Pp1/6P1/7k/K3BQ2 b - f3")
	assert.True(t, mg.HasLegalMove(pos))
	assert.False(t, pos.HasCheck())
}

// The on-demand generator must produce exactly the same move set as
// the one-shot generator, just phase by phase.
func TestOnDemandMatchesBatch(t *testing.T) {
	mg := NewMoveGen()
	od := NewMoveGen()

	for _, fen := range []string{
		position.StartFen,
		"r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R w KQkq -",
		"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3",
		"R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - -",
	} {
		pos, _ := position.NewPositionFen(fen)
		batch := mg.GeneratePseudoLegalMoves(pos, GenAll)

		collected := moveslice.NewMoveSlice(MaxMoves)
		for move := od.GetNextMove(pos, GenAll); move != MoveNone; move = od.GetNextMove(pos, GenAll) {
			collected.PushBack(move)
		}
		assert.Equal(t, uciSet(batch), uciSet(collected), "fen %s", fen)
	}
}

func TestOnDemandKillerPv(t *testing.T) {
	mg := NewMoveGen()
	pos, _ := position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")

	mg.StoreKiller(mg.GetMoveFromUci(pos, "g6h4"))
	mg.StoreKiller(mg.GetMoveFromUci(pos, "b7b6"))
	mg.SetPvMove(mg.GetMoveFromUci(pos, "a2b1Q"))

	collected := moveslice.NewMoveSlice(MaxMoves)
	for move := mg.GetNextMove(pos, GenAll); move != MoveNone; move = mg.GetNextMove(pos, GenAll) {
		collected.PushBack(move)
	}

	// PV first, nothing generated twice
	assert.Equal(t, 74, collected.Len())
	assert.Equal(t, "a2b1Q", collected.Front().StringUci())

	// the most recent killer leads the quiet pawn moves of its phase
	assert.True(t, indexOf(collected, "b7b6") < indexOf(collected, "f4f3"))
	assert.True(t, indexOf(collected, "b7b6") < indexOf(collected, "h7h6"))
	// the older killer leads the quiet officer moves of its phase
	assert.True(t, indexOf(collected, "g6h4") < indexOf(collected, "d7b8"))
}

func TestPseudoLegalPvKiller(t *testing.T) {
	mg := NewMoveGen()
	pos, _ := position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")

	mg.SetPvMove(mg.GetMoveFromUci(pos, "a2b1Q"))
	mg.StoreKiller(mg.GetMoveFromUci(pos, "g6h4"))
	mg.StoreKiller(mg.GetMoveFromUci(pos, "b7b6"))

	moves := mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 74, moves.Len())
	assert.Equal(t, "a2b1Q", moves.Front().StringUci())
	// killers sort directly behind the captures, ahead of other quiets
	assert.True(t, indexOf(moves, "b7b6") < indexOf(moves, "h7h6"))
	assert.True(t, indexOf(moves, "g6h4") < indexOf(moves, "h7h6"))
}

func TestGetMoveFromUci(t *testing.T) {
	mg := NewMoveGen()
	pos, _ := position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")

	// invalid pattern
	assert.Equal(t, MoveNone, mg.GetMoveFromUci(pos, "8888"))
	// valid move
	assert.Equal(t, CreateMove(SqB7, SqB5, Normal, PtNone), mg.GetMoveFromUci(pos, "b7b5"))
	// well-formed but not a legal move here
	assert.Equal(t, MoveNone, mg.GetMoveFromUci(pos, "a7a5"))
	// promotions, upper and lower case
	assert.Equal(t, CreateMove(SqA2, SqA1, Promotion, Queen), mg.GetMoveFromUci(pos, "a2a1Q"))
	assert.Equal(t, CreateMove(SqA2, SqA1, Promotion, Queen), mg.GetMoveFromUci(pos, "a2a1q"))
	// castling: queen side is legal, king side is not
	assert.Equal(t, CreateMove(SqE8, SqC8, Castling, PtNone), mg.GetMoveFromUci(pos, "e8c8"))
	assert.Equal(t, MoveNone, mg.GetMoveFromUci(pos, "e8g8"))
}

func TestGetMoveFromSan(t *testing.T) {
	mg := NewMoveGen()
	pos, _ := position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")

	assert.Equal(t, MoveNone, mg.GetMoveFromSan(pos, "33"))
	assert.Equal(t, CreateMove(SqB7, SqB5, Normal, PtNone), mg.GetMoveFromSan(pos, "b5"))
	assert.Equal(t, MoveNone, mg.GetMoveFromSan(pos, "a5"))
	assert.Equal(t, CreateMove(SqA2, SqA1, Promotion, Queen), mg.GetMoveFromSan(pos, "a1Q"))
	assert.Equal(t, MoveNone, mg.GetMoveFromSan(pos, "a1q"))
	assert.Equal(t, CreateMove(SqE8, SqC8, Castling, PtNone), mg.GetMoveFromSan(pos, "O-O-O"))
	assert.Equal(t, MoveNone, mg.GetMoveFromSan(pos, "O-O"))

	// ambiguity and disambiguation
	assert.Equal(t, MoveNone, mg.GetMoveFromSan(pos, "Ne5"))
	assert.Equal(t, CreateMove(SqD7, SqE5, Normal, PtNone), mg.GetMoveFromSan(pos, "Nde5"))
	assert.Equal(t, CreateMove(SqG6, SqE5, Normal, PtNone), mg.GetMoveFromSan(pos, "Nge5"))
	assert.Equal(t, CreateMove(SqD7, SqE5, Normal, PtNone), mg.GetMoveFromSan(pos, "N7e5"))
	assert.Equal(t, CreateMove(SqG6, SqE5, Normal, PtNone), mg.GetMoveFromSan(pos, "N6e5"))
	assert.Equal(t, CreateMove(SqA2, SqB1, Promotion, Queen), mg.GetMoveFromSan(pos, "ab1Q"))
	assert.Equal(t, CreateMove(SqC2, SqB1, Promotion, Queen), mg.GetMoveFromSan(pos, "cb1Q"))
}

func TestValidateMove(t *testing.T) {
	mg := NewMoveGen()
	pos := position.NewPosition()
	assert.True(t, mg.ValidateMove(pos, CreateMove(SqE2, SqE4, Normal, PtNone)))
	assert.False(t, mg.ValidateMove(pos, CreateMove(SqE2, SqE5, Normal, PtNone)))
	assert.False(t, mg.ValidateMove(pos, MoveNone))
}

func TestMovegenString(t *testing.T) {
	mg := NewMoveGen()
	assert.True(t, strings.Contains(mg.String(), "OnDemand Stage"))
}
