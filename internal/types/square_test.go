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

func TestSquareValues(t *testing.T) {
	for _, tc := range []struct {
		sq    Square
		index int
		valid bool
		label string
	}{
		{SqA1, 0, true, "a1"},
		{SqH8, 63, true, "h8"},
		{SqNone, 64, false, "-"},
		{Square(100), 100, false, "-"},
	} {
		assert.Equal(t, tc.index, int(tc.sq))
		assert.Equal(t, tc.valid, tc.sq.IsValid())
		assert.Equal(t, tc.label, tc.sq.String())
	}
}

func TestSquareOf(t *testing.T) {
	assert.Equal(t, SqA1, SquareOf(FileA, Rank1))
	assert.Equal(t, SqH8, SquareOf(FileH, Rank8))
	assert.Equal(t, SqNone, SquareOf(FileNone, RankNone))
	assert.Equal(t, SqNone, SquareOf(FileA, Rank(50)))
}

func TestSquareTo(t *testing.T) {
	assert.Equal(t, SqA2, SqA1.To(North))
	assert.Equal(t, SqA3, SqA1.To(North).To(North))
	assert.Equal(t, SqB1, SqA1.To(East))
	assert.Equal(t, SqA1, SqA2.To(South))
	assert.Equal(t, SqH7, SqH8.To(South))
	// off the board in any direction is SqNone
	assert.Equal(t, SqNone, SqA2.To(South).To(South))
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqH8.To(North))
	assert.Equal(t, SqNone, SqH8.To(East))
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqNone, MakeSquare("i1"))
	assert.Equal(t, SqNone, MakeSquare("a9"))
	assert.Equal(t, SqNone, MakeSquare("aa"))
}
