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

package types

import "fmt"

// Color is one of the two sides of a chess game.
type Color uint8

const (
	White Color = iota
	Black

	ColorLength int = 2
)

// Flip returns the other color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c < 2
}

// String renders c as "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("Invalid color %d", c))
	}
}

// pawnAdvanceSign is +1 for White (pawns advance toward rank 8) and -1
// for Black (pawns advance toward rank 1).
var pawnAdvanceSign = [2]int{1, -1}

// Direction returns +1 for White, -1 for Black.
func (c Color) Direction() int {
	return pawnAdvanceSign[c]
}

var pawnPushDir = [2]Direction{North, South}

// MoveDirection returns the Direction a pawn of color c advances in.
func (c Color) MoveDirection() Direction {
	return pawnPushDir[c]
}

var promotionRank = [2]Bitboard{Rank8_Bb, Rank1_Bb}

// PromotionRankBb returns the rank on which pawns of color c promote.
func (c Color) PromotionRankBb() Bitboard {
	return promotionRank[c]
}

var doublePushOriginRank = [2]Bitboard{Rank3_Bb, Rank6_Bb}

// PawnDoubleRank returns the rank a pawn of color c reaches with the
// first step of a two-square push (rank 3 for White, rank 6 for Black).
func (c Color) PawnDoubleRank() Bitboard {
	return doublePushOriginRank[c]
}
