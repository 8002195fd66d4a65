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

package openingbook

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherchess/goknight/internal/position"
)

func TestNewBookIsEmpty(t *testing.T) {
	b := NewBook()
	_, found := b.GetEntry(position.Key(12345))
	assert.False(t, found)
}

func TestInitializeAlwaysReportsUnavailable(t *testing.T) {
	b := NewBook()
	err := b.Initialize("./books", "empty.txt", FormatSimple, true, false)
	assert.Error(t, err)
	_, found := b.GetEntry(position.Key(1))
	assert.False(t, found)
}

func TestFormatFromStringKnowsConfiguredFormats(t *testing.T) {
	f, found := FormatFromString["simple"]
	assert.True(t, found)
	assert.Equal(t, FormatSimple, f)
}
