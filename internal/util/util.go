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

// Package util collects small numeric and string helpers shared across
// the engine that have no natural home in a more specific package.
package util

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.German)

// Abs returns the absolute value of n, branch-free via sign-extending
// shift and xor.
func Abs(n int) int {
	sign := n >> 63
	return (n ^ sign) - sign
}

// Abs16 is Abs for int16.
func Abs16(n int16) int16 {
	sign := n >> 15
	return (n ^ sign) - sign
}

// Abs64 is Abs for int64.
func Abs64(n int64) int64 {
	sign := n >> 63
	return (n ^ sign) - sign
}

// Min returns the smaller of x and y.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Min64 is Min for int64.
func Min64(x, y int64) int64 {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Max64 is Max for int64.
func Max64(x, y int64) int64 {
	if x > y {
		return x
	}
	return y
}

// TimeTrack logs how long has elapsed since start, labeled name.
// Usage: defer util.TimeTrack(time.Now(), "some text").
func TimeTrack(start time.Time, name string) {
	_, _ = printer.Printf("%s took %d ns\n", name, time.Since(start).Nanoseconds())
}

// Nps computes nodes searched per second. A zero duration is nudged by
// one nanosecond to avoid dividing by zero.
func Nps(nodes uint64, duration time.Duration) uint64 {
	return uint64(int64(nodes) * time.Second.Nanoseconds() / (duration.Nanoseconds() + 1))
}

// MemStat renders the current heap allocation and GC counters.
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return printer.Sprintf("Alloc: %d TotalAlloc: %d HeapAlloc: %d HeapObjects: %d NumGC: %d",
		mem.Alloc, mem.TotalAlloc, mem.HeapAlloc, mem.HeapObjects, mem.NumGC)
}

// GcWithStats forces a garbage collection and reports memory stats and
// elapsed time around it.
func GcWithStats() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mem stats: %s ", MemStat()))
	start := time.Now()
	runtime.GC()
	sb.WriteString(fmt.Sprintf("GC took: %d ms ", time.Since(start).Milliseconds()))
	sb.WriteString(fmt.Sprintf("Mem stats: %s", MemStat()))
	return sb.String()
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c uint8) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsLower reports whether c is an ASCII lowercase letter.
func IsLower(c uint8) bool {
	return c >= 'a' && c <= 'z'
}

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c uint8) bool {
	return c >= '0' && c <= '9'
}
