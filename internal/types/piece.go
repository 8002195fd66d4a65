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
	"strings"
)

// Piece is a colored PieceType packed into one value: bit 3 carries the
// color (0 white, 1 black) and the low three bits are the PieceType, so
// ColorOf and TypeOf are a shift and a mask.
type Piece int8

const (
	PieceNone Piece = iota
	WhiteKing
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	_
	_
	BlackKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	_

	PieceLength
)

// MakePiece packs a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((int(c) << 3) + int(pt))
}

// ColorOf extracts p's color.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf extracts p's piece type, discarding color.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns p's static material value.
func (p Piece) ValueOf() Value {
	return typeValue[p.TypeOf()]
}

// pieceLetters indexes by Piece value: white pieces then black; the
// unused slots hold '-' (7 and 15) or a blank (8).
const pieceLetters = " KPNBRQ- kpnbrq-"

// PieceFromChar returns the Piece whose letter is s, or PieceNone if s
// isn't exactly one recognized character.
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	index := strings.Index(pieceLetters, s)
	if index == -1 {
		return PieceNone
	}
	return Piece(index)
}

// String returns p's algebraic letter, e.g. "Q" or "q".
func (p Piece) String() string {
	return string(pieceLetters[p])
}

// pieceGlyphs mirrors pieceLetters but spells pawns as O (white) and *
// (black) rather than reusing P for both colors.
const pieceGlyphs = " KONBRQ- k*nbrq-"

// Char returns p's single-character glyph, distinguishing white and
// black pawns as 'O' and '*'.
func (p Piece) Char() string {
	return string(pieceGlyphs[p])
}

var pieceUnicode = [PieceLength]string{" ", "♔", "♙", "♘", "♗", "♖", "♕", "-", " ", "♚", "♟", "♞", "♝", "♜", "♛", "-"}

// UniChar returns p rendered as a Unicode chess glyph.
func (p Piece) UniChar() string {
	return pieceUnicode[p]
}
