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

// Packing a move and reading its fields back is the identity on every
// field, for every move type.
func TestMoveEncodeDecode(t *testing.T) {
	for _, tc := range []struct {
		from, to Square
		mt       MoveType
		promType PieceType
	}{
		{SqE2, SqE4, Normal, PtNone},
		{SqA1, SqH8, Normal, PtNone},
		{SqE1, SqG1, Castling, PtNone},
		{SqE8, SqC8, Castling, PtNone},
		{SqE5, SqD6, EnPassant, PtNone},
		{SqE7, SqE8, Promotion, Queen},
		{SqA2, SqB1, Promotion, Knight},
		{SqH7, SqH8, Promotion, Rook},
		{SqC7, SqC8, Promotion, Bishop},
	} {
		m := CreateMove(tc.from, tc.to, tc.mt, tc.promType)
		assert.Equal(t, tc.from, m.From())
		assert.Equal(t, tc.to, m.To())
		assert.Equal(t, tc.mt, m.MoveType())
		if tc.mt == Promotion {
			assert.Equal(t, tc.promType, m.PromotionType())
		}
		assert.True(t, m.IsValid())
	}
}

func TestMoveValue(t *testing.T) {
	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	assert.Equal(t, ValueNA, m.ValueOf())

	// the sort value lives in the high bits and never affects identity
	withValue := CreateMoveValue(SqE2, SqE4, Normal, PtNone, Value(999))
	assert.Equal(t, Value(999), withValue.ValueOf())
	assert.Equal(t, m, withValue.MoveOf())
	assert.NotEqual(t, m, withValue)

	withValue.SetValue(Value(-999))
	assert.Equal(t, Value(-999), withValue.ValueOf())
	assert.Equal(t, m, withValue.MoveOf())

	// MoveNone can't carry a value
	none := MoveNone
	none.SetValue(Value(100))
	assert.Equal(t, MoveNone, none)
}

func TestMoveStringUci(t *testing.T) {
	assert.Equal(t, "e2e4", CreateMove(SqE2, SqE4, Normal, PtNone).StringUci())
	assert.Equal(t, "e7e8Q", CreateMove(SqE7, SqE8, Promotion, Queen).StringUci())
	assert.Equal(t, "e1g1", CreateMove(SqE1, SqG1, Castling, PtNone).StringUci())
	assert.Equal(t, "NoMove", MoveNone.StringUci())
}

func TestMoveNoneInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.True(t, CreateMove(SqE2, SqE4, Normal, PtNone).IsValid())
}
