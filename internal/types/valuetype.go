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

// ValueType tags a search/TT score with what it actually bounds: an exact
// score, or a cutoff-induced upper/lower bound.
type ValueType int8

// The four bound kinds a TtEntry can carry.
const (
	Vnone ValueType = iota // no stored bound
	EXACT                  // score is exact
	ALPHA                  // fail-low: score is an upper bound
	BETA                   // fail-high: score is a lower bound

	Vlength int = 4 // number of ValueType variants, for sizing lookup tables
)

// boundKindNames is indexed by ValueType for String().
var boundKindNames = [Vlength]string{"NoneValue", "ExactValue", "AlphaValue", "BetaValue"}

// String renders the bound kind's name.
func (vt ValueType) String() string {
	return boundKindNames[vt]
}

// IsValid reports whether vt is one of the four declared bound kinds.
func (vt ValueType) IsValid() bool {
	return vt < ValueType(Vlength)
}
