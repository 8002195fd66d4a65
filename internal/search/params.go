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
	"math"

	"github.com/gopherchess/goknight/internal/types"
)

// lmr[depth][movesSearched] is the precomputed late-move-reduction
// depth cut, indexed by remaining depth and how many moves have
// already been searched at this node.
var lmr [32][64]int

// LmrReduction returns how many plies to reduce a late, quiet move's
// search depth by, given the remaining depth and the count of moves
// already searched at this node.
func LmrReduction(depth int, movesSearched int) int {
	if depth >= 32 || movesSearched >= 64 {
		return lmr[31][63]
	}
	return lmr[depth][movesSearched]
}

func init() {
	for d := 0; d < 32; d++ {
		for n := 0; n < 64; n++ {
			switch {
			case d <= 3:
				lmr[d][n] = 1
			case n <= 3:
				lmr[d][n] = 1
			default:
				lmr[d][n] = int(math.Round((float64(d)*0.7)*(float64(n)*0.005) + 1.0))
			}
		}
	}
}

// lmpMovesAtDepth[depth] bounds how many moves are tried at a leaf-near
// node before late move pruning skips the rest.
var lmpMovesAtDepth [16]int

func init() {
	for d := 1; d < 16; d++ {
		// formula taken from the Crafty engine
		lmpMovesAtDepth[d] = 6 + int(math.Pow(float64(d)+0.5, 1.3))
	}
}

// LmpMovesSearched returns the move-count threshold for late move
// pruning at the given remaining depth.
func LmpMovesSearched(depth int) int {
	if depth >= 16 {
		return lmpMovesAtDepth[15]
	}
	return lmpMovesAtDepth[depth]
}

// fp holds futility pruning margins indexed by remaining depth.
var fp = [7]types.Value{0, 100, 200, 300, 500, 900, 1200}

// qfpMargin is the futility margin applied to captures in quiescence.
const qfpMargin = types.Value(150)

// rfp holds reverse futility pruning margins indexed by remaining depth.
var rfp = [4]types.Value{0, 200, 400, 800}

// aspirationSteps are the successive window widenings tried after an
// aspiration-window search fails high or low.
var aspirationSteps = []types.Value{50, 200, types.ValueMax}
