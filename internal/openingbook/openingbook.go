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

// Package openingbook defines the narrow contract the search package needs
// to consult an opening book before a timed search starts. Book file
// parsing (PGN/SAN, Polyglot) is treated as an external collaborator and
// is intentionally not implemented here; Initialize always reports the
// book as unavailable so search falls back to the normal search.
package openingbook

import (
	"fmt"

	"github.com/gopherchess/goknight/internal/position"
)

// BookFormat identifies an on-disk opening book format.
type BookFormat int

// Supported (recognised but unimplemented) book formats.
const (
	FormatSimple BookFormat = iota
	FormatSan
	FormatPgn
)

// FormatFromString maps a configuration string to a BookFormat.
var FormatFromString = map[string]BookFormat{
	"simple": FormatSimple,
	"san":    FormatSan,
	"pgn":    FormatPgn,
}

// BookMove is a single candidate move stored for a position.
type BookMove struct {
	Move uint32
}

// BookEntry is the set of book moves known for a given position.
type BookEntry struct {
	Moves []BookMove
}

// Book is an opening book lookup table keyed by Zobrist key. This
// implementation never loads any entries; it exists so search can hold
// a consistent handle and disable book usage cleanly when no book data
// is available.
type Book struct {
	entries map[position.Key]BookEntry
}

// NewBook creates an empty, unopened Book.
func NewBook() *Book {
	return &Book{entries: make(map[position.Key]BookEntry)}
}

// Initialize would load book data from bookPath/bookFile in the given
// format. Parsing external book formats is out of scope, so this always
// returns an error, leaving the book empty and search to proceed without it.
func (b *Book) Initialize(bookPath string, bookFile string, format BookFormat, _ bool, _ bool) error {
	return fmt.Errorf("opening book support not implemented: %s/%s", bookPath, bookFile)
}

// GetEntry looks up book moves for the given position key.
func (b *Book) GetEntry(key position.Key) (BookEntry, bool) {
	e, found := b.entries[key]
	return e, found
}
