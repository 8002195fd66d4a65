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

package transpositiontable

import (
	"github.com/gopherchess/goknight/internal/position"
	. "github.com/gopherchess/goknight/internal/types"
)

// TtEntry is one slot of the transposition table. It packs the search
// result for a position into 16 bytes: a 64-bit Zobrist key plus a
// 16-bit move, two 16-bit evaluation/search values, and a bitfield of
// depth, bound type, and generation age, so many entries fit per cache
// line.
type TtEntry struct {
	key   position.Key
	move  uint16
	eval  int16
	value int16
	vmeta uint16 // bits [0:3)=age [3:5)=vtype [5:12)=depth
}

const (
	// TtEntrySize is the size in bytes of one TtEntry.
	TtEntrySize = 16

	ageMask    = uint16(0b0000_0000_0000_0111)
	vtypeMask  = uint16(0b0000_0000_0001_1000)
	vtypeShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)
)

// decreaseAge marks e as one generation fresher, done when a probe
// confirms the entry still matches the current position.
func (e *TtEntry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

// increaseAge marks e as one generation staler, done once per search
// for every entry not refreshed that search.
func (e *TtEntry) increaseAge() {
	if e.Age() < 7 {
		e.vmeta++
	}
}

// Key returns the full Zobrist key stored in e, used to detect hash
// collisions against the 64-bit index used to locate this slot.
func (e *TtEntry) Key() position.Key {
	return e.key
}

// Move returns the best move found the last time e was written.
func (e *TtEntry) Move() Move {
	return Move(e.move)
}

// Value returns the search value stored in e.
func (e *TtEntry) Value() Value {
	return Value(e.value)
}

// Eval returns the static evaluation stored in e.
func (e *TtEntry) Eval() Value {
	return Value(e.eval)
}

// Depth returns the search depth e was stored at.
func (e *TtEntry) Depth() int8 {
	return int8((e.vmeta & depthMask) >> depthShift)
}

// Age returns how many searches have passed since e was last written.
func (e *TtEntry) Age() int8 {
	return int8(e.vmeta & ageMask)
}

// Vtype reports whether Value is exact or a lower/upper bound.
func (e *TtEntry) Vtype() ValueType {
	return ValueType((e.vmeta & vtypeMask) >> vtypeShift)
}
