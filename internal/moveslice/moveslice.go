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

// Package moveslice is a deque-like container for chess moves, built on
// a plain Go slice, used for move lists, principal variations, and
// search-line buffers throughout the engine.
package moveslice

import (
	"fmt"
	"strings"
	"sync"

	. "github.com/gopherchess/goknight/internal/types"
)

// MoveSlice is a slice of Move with deque-style helpers attached.
type MoveSlice []Move

// NewMoveSlice returns an empty MoveSlice with the given capacity
// preallocated.
func NewMoveSlice(capacity int) *MoveSlice {
	moves := make([]Move, 0, capacity)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves in ms.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap returns ms's underlying array capacity.
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends m to the end of ms.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// PopBack removes and returns the last move in ms. Panics if ms is
// empty.
func (ms *MoveSlice) PopBack() Move {
	if len(*ms) <= 0 {
		panic("MoveSlice: PopBack() called on empty slice")
	}
	last := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return last
}

// PushFront inserts m at the front of ms, shifting every other element
// one slot down within the underlying array.
func (ms *MoveSlice) PushFront(m Move) {
	*ms = append(*ms, MoveNone)
	copy((*ms)[1:], *ms)
	(*ms)[0] = m
}

// PopFront removes and returns the first move in ms. Panics if ms is
// empty. Shrinking from the front rather than reslicing from a fixed
// base means the backing array's capacity is consumed faster than
// PopBack's, which can force an earlier reallocation on the next push.
func (ms *MoveSlice) PopFront() Move {
	if len(*ms) <= 0 {
		panic("MoveSlice: PopFront() called on empty slice")
	}
	first := (*ms)[0]
	*ms = (*ms)[1:]
	return first
}

// Front returns the first move in ms without removing it. Panics if ms
// is empty.
func (ms *MoveSlice) Front() Move {
	if len(*ms) <= 0 {
		panic("MoveSlice: Front() called when empty")
	}
	return (*ms)[0]
}

// Back returns the last move in ms without removing it. Panics if ms is
// empty.
func (ms *MoveSlice) Back() Move {
	if len(*ms) <= 0 {
		panic("MoveSlice: Back() called when empty")
	}
	return (*ms)[len(*ms)-1]
}

// At returns the move at index i. Panics if i is out of bounds.
func (ms *MoveSlice) At(i int) Move {
	if len(*ms) == 0 || i < 0 || i >= len(*ms) {
		panic("MoveSlice: Index out of bounds")
	}
	return (*ms)[i]
}

// Set overwrites the move at index i with move. Panics if i is out of
// bounds.
func (ms *MoveSlice) Set(i int, move Move) {
	if len(*ms) == 0 || i < 0 || i >= len(*ms) {
		panic("MoveSlice: Index out of bounds")
	}
	(*ms)[i] = move
}

// Filter keeps only the elements for which keep returns true,
// rebuilding ms in place over its existing backing array.
func (ms *MoveSlice) Filter(keep func(index int) bool) {
	kept := (*ms)[:0]
	for i, m := range *ms {
		if keep(i) {
			kept = append(kept, m)
		}
	}
	*ms = kept
}

// FilterCopy appends to dest every element of ms for which keep
// returns true, leaving ms itself untouched.
func (ms *MoveSlice) FilterCopy(dest *MoveSlice, keep func(index int) bool) {
	for i, m := range *ms {
		if keep(i) {
			*dest = append(*dest, m)
		}
	}
}

// Clone returns a deep copy of ms.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len(), ms.Cap())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Equals reports whether ms and other hold the same moves in the same
// order.
func (ms *MoveSlice) Equals(other *MoveSlice) bool {
	if ms.Len() != other.Len() {
		return false
	}
	for i, m := range *ms {
		if m != (*other)[i] {
			return false
		}
	}
	return true
}

// ForEach calls f once per index of ms, in order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for index := range *ms {
		f(index)
	}
}

// ForEachParallel calls f once per index of ms, each call in its own
// goroutine, and blocks until all have returned. f is responsible for
// any synchronization it needs against the other concurrent calls.
func (ms *MoveSlice) ForEachParallel(f func(index int)) {
	var wg sync.WaitGroup
	wg.Add(len(*ms))
	for index := range *ms {
		go func(i int) {
			defer wg.Done()
			f(i)
		}(index)
	}
	wg.Wait()
}

// Clear empties ms while keeping its backing array, avoiding a
// reallocation the next time it's reused.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Sort stable-sorts ms from highest Value to lowest, comparing only
// each move's encoded Value bits (insertion sort, since move lists here
// are short and usually already close to sorted).
func (ms *MoveSlice) Sort() {
	for i := 1; i < len(*ms); i++ {
		pivot := (*ms)[i]
		j := i
		for j > 0 && (pivot&0xFFFF0000) > ((*ms)[j-1]&0xFFFF0000) {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = pivot
	}
}

// String renders ms as "MoveList: [n] { e2e4, e7e5, ... }".
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveList: [%d] { ", len(*ms)))
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// StringUci renders ms as a space-separated list of moves in UCI
// notation.
func (ms *MoveSlice) StringUci() string {
	var sb strings.Builder
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}
