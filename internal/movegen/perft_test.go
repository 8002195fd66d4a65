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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherchess/goknight/internal/position"
)

// Expected node counts from https://www.chessprogramming.org/Perft_Results.
// The published tables count all four promotion pieces; this engine
// generates queen promotions only, so the canonical numbers apply
// unchanged only to positions/depths where no promotion occurs. Where
// promotions do occur, expectations are adjusted accordingly below.

// nodes, captures, en passant, checks, mates per depth for the
// standard start position (no promotion is reachable within 5 plies).
var standardPerft = [10][6]uint64{
	{0, 1, 0, 0, 0, 0},
	{1, 20, 0, 0, 0, 0},
	{2, 400, 0, 0, 0, 0},
	{3, 8_902, 34, 0, 12, 0},
	{4, 197_281, 1_576, 0, 469, 8},
	{5, 4_865_609, 82_719, 258, 27_351, 347},
	{6, 119_060_324, 2_812_008, 5_248, 809_099, 10_828},
}

func assertStandardPerft(t *testing.T, maxDepth int, onDemand bool) {
	t.Helper()
	var perft Perft
	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft(position.StartFen, depth, onDemand)
		assert.Equal(t, standardPerft[depth][1], perft.Nodes)
		assert.Equal(t, standardPerft[depth][2], perft.CaptureCounter)
		assert.Equal(t, standardPerft[depth][3], perft.EnpassantCounter)
		assert.Equal(t, standardPerft[depth][4], perft.CheckCounter)
		assert.Equal(t, standardPerft[depth][5], perft.CheckMateCounter)
	}
}

func TestStandardPerft(t *testing.T) {
	assertStandardPerft(t, 5, false)
}

// same expectations, but pulling moves from the phased on-demand
// generator.
func TestStandardPerftOnDemand(t *testing.T) {
	assertStandardPerft(t, 5, true)
}

func TestKiwipetePerft(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - "

	// nodes, captures, ep, checks, mates, castles, promotions - the
	// first promotion appears at depth 4, so 1..3 match the published
	// table exactly
	var expected = [4][8]uint64{
		{0, 1, 0, 0, 0, 0, 0, 0},
		{1, 48, 8, 0, 0, 0, 2, 0},
		{2, 2_039, 351, 1, 3, 0, 91, 0},
		{3, 97_862, 17_102, 45, 993, 1, 3_162, 0},
	}

	var perft Perft
	for depth := 1; depth <= 3; depth++ {
		perft.StartPerft(kiwipete, depth, true)
		assert.Equal(t, expected[depth][1], perft.Nodes)
		assert.Equal(t, expected[depth][2], perft.CaptureCounter)
		assert.Equal(t, expected[depth][3], perft.EnpassantCounter)
		assert.Equal(t, expected[depth][4], perft.CheckCounter)
		assert.Equal(t, expected[depth][5], perft.CheckMateCounter)
		assert.Equal(t, expected[depth][6], perft.CastleCounter)
		assert.Equal(t, expected[depth][7], perft.PromotionCounter)
	}

	// At depth 4 every promotion is a leaf move (none occurs earlier),
	// so queen-only generation drops exactly three of the published
	// table's four moves per promotion: 4,085,603 - 15,172*3/4 nodes
	// and 15,172/4 promotions. En passant and castling leaves are
	// unaffected; captures/checks/mates shift with the dropped moves
	// and are not asserted here.
	perft.StartPerft(kiwipete, 4, true)
	assert.Equal(t, uint64(4_074_224), perft.Nodes)
	assert.Equal(t, uint64(3_793), perft.PromotionCounter)
	assert.Equal(t, uint64(1_929), perft.EnpassantCounter)
	assert.Equal(t, uint64(128_013), perft.CastleCounter)
}

// Position 4 of the perft results page, a promotion-heavy position run
// from both sides. The published counts include under-promotions, so
// absolute numbers don't apply to this engine; the mirror property does:
// both color-flipped positions must produce identical counts at every
// depth, and every promotion counted must be a queen promotion.
func TestMirrorPerft(t *testing.T) {
	white := NewPerft()
	black := NewPerft()
	for depth := 1; depth <= 4; depth++ {
		white.StartPerft("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq -", depth, false)
		black.StartPerft("r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ -", depth, false)

		assert.Equal(t, white.Nodes, black.Nodes, "depth %d", depth)
		assert.Equal(t, white.CaptureCounter, black.CaptureCounter, "depth %d", depth)
		assert.Equal(t, white.EnpassantCounter, black.EnpassantCounter, "depth %d", depth)
		assert.Equal(t, white.CheckCounter, black.CheckCounter, "depth %d", depth)
		assert.Equal(t, white.CheckMateCounter, black.CheckMateCounter, "depth %d", depth)
		assert.Equal(t, white.CastleCounter, black.CastleCounter, "depth %d", depth)
		assert.Equal(t, white.PromotionCounter, black.PromotionCounter, "depth %d", depth)
	}
	assert.Greater(t, white.PromotionCounter, uint64(0))
}

// Position 5 has an immediate promotion capture (dxc8), so its
// published 44 first moves become 41 with queen-only promotion.
func TestPos5Perft(t *testing.T) {
	var perft Perft
	perft.StartPerft("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ -", 1, false)
	assert.Equal(t, uint64(41), perft.Nodes)
	assert.Equal(t, uint64(1), perft.PromotionCounter)
}
