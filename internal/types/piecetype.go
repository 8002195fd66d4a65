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

// PieceType identifies a piece by kind only, ignoring color. The three
// low bits encode sliding-ness directly: bit 2 set (>= Bishop) means the
// piece slides.
type PieceType uint8

const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen

	PtLength
)

// IsValid reports whether pt is PtNone or one of King..Queen (anything
// beyond Queen is excluded).
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// phaseWeight credits a piece type toward the game-phase estimate used to
// blend midgame and endgame evaluation terms.
var phaseWeight = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue returns pt's weight for the running game-phase tally.
func (pt PieceType) GamePhaseValue() int {
	return phaseWeight[pt]
}

// typeValue holds the static material worth of one piece of type pt.
var typeValue = [PtLength]Value{0, 2000, 100, 320, 330, 500, 900}

// ValueOf returns the static material value of pt.
func (pt PieceType) ValueOf() Value {
	return typeValue[pt]
}

var pieceTypeNames = [PtLength]string{"NOPIECE", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// String returns the full name of pt, e.g. "Knight".
func (pt PieceType) String() string {
	return pieceTypeNames[pt]
}

const pieceTypeLetters = "-KPNBRQ"

// Char returns the single-letter algebraic symbol for pt (K, P, N, ...).
func (pt PieceType) Char() string {
	return string(pieceTypeLetters[pt])
}
