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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePiece(t *testing.T) {
	assert.Equal(t, WhiteKing, MakePiece(White, King))
	assert.Equal(t, BlackKing, MakePiece(Black, King))
	assert.Equal(t, WhiteKnight, MakePiece(White, Knight))
	assert.Equal(t, BlackKnight, MakePiece(Black, Knight))

	// color and piece type survive the round trip
	assert.Equal(t, Black, BlackKnight.ColorOf())
	assert.Equal(t, Knight, BlackKnight.TypeOf())
	assert.Equal(t, White, WhiteQueen.ColorOf())
	assert.Equal(t, Queen, WhiteQueen.TypeOf())
}

func TestPieceValueOf(t *testing.T) {
	assert.Equal(t, Value(2000), WhiteKing.ValueOf())
	assert.Equal(t, Value(2000), BlackKing.ValueOf())
	assert.Equal(t, Value(330), WhiteBishop.ValueOf())
	assert.Equal(t, Value(320), BlackKnight.ValueOf())
}

func TestPieceFromChar(t *testing.T) {
	assert.Equal(t, PieceNone, PieceFromChar(""))
	assert.Equal(t, PieceNone, PieceFromChar("nnn"))
	assert.Equal(t, PieceNone, PieceFromChar("-"))
	assert.Equal(t, WhiteKing, PieceFromChar("K"))
	assert.Equal(t, BlackKing, PieceFromChar("k"))
	assert.Equal(t, WhiteKnight, PieceFromChar("N"))
	assert.Equal(t, BlackKnight, PieceFromChar("n"))
}
