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

package util

import (
	"sync/atomic"
)

// Flag is a bool that can be read and written from multiple goroutines
// without a mutex, e.g. a search-stop signal checked from deep inside
// the search tree while UCI handles "stop" on another goroutine.
type Flag struct{ bits uint32 }

// NewFlag creates a Flag set to initial.
func NewFlag(initial bool) *Flag {
	return &Flag{asUint32(initial)}
}

// Load reads the current value.
func (f *Flag) Load() bool {
	return atomic.LoadUint32(&f.bits) == 1
}

// CAS atomically sets the flag to new if it currently equals old,
// reporting whether the swap happened.
func (f *Flag) CAS(old, new bool) bool {
	return atomic.CompareAndSwapUint32(&f.bits, asUint32(old), asUint32(new))
}

// Store atomically sets the flag to new.
func (f *Flag) Store(new bool) {
	atomic.StoreUint32(&f.bits, asUint32(new))
}

// Swap atomically sets the flag to new and returns the prior value.
func (f *Flag) Swap(new bool) bool {
	return atomic.SwapUint32(&f.bits, asUint32(new)) == 1
}

// Toggle atomically flips the flag and returns the value it held before
// flipping. Retries under contention since there's no atomic "not".
func (f *Flag) Toggle() bool {
	for {
		old := f.Load()
		if f.CAS(old, !old) {
			return old
		}
	}
}

func asUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
