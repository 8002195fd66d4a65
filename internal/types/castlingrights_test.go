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

func TestCastlingRightsAddRemove(t *testing.T) {
	var cr CastlingRights
	cr.Add(CastlingAny)
	assert.Equal(t, CastlingAny, cr)

	// removing one right leaves the other three bits set
	assert.True(t, cr.Has(CastlingWhiteOO))
	cr.Remove(CastlingWhiteOO)
	assert.Equal(t, 0b1110, int(cr))
	assert.False(t, cr.Has(CastlingWhiteOO))

	// removing a combined right clears both of its bits
	assert.True(t, cr.Has(CastlingBlack))
	assert.True(t, cr.Has(CastlingBlackOO))
	assert.True(t, cr.Has(CastlingBlackOOO))
	cr.Remove(CastlingBlack)
	assert.False(t, cr.Has(CastlingBlack))
	assert.False(t, cr.Has(CastlingBlackOO))
	assert.False(t, cr.Has(CastlingBlackOOO))
	assert.True(t, cr.Has(CastlingWhiteOOO))
}
