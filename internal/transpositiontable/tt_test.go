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
	"os"
	"path"
	"runtime"
	"testing"
	"unsafe"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/gopherchess/goknight/internal/config"
	"github.com/gopherchess/goknight/internal/logging"
	"github.com/gopherchess/goknight/internal/position"
	. "github.com/gopherchess/goknight/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestEntrySize(t *testing.T) {
	assert.EqualValues(t, TtEntrySize, unsafe.Sizeof(TtEntry{}))
}

func TestNewSizes(t *testing.T) {
	// number of slots is the largest power of two fitting the MB budget
	tt := NewTtTable(2)
	assert.EqualValues(t, 2*MB/TtEntrySize, tt.maxNumberOfEntries)
	assert.EqualValues(t, uint64(0), tt.Len())

	tt = NewTtTable(64)
	assert.EqualValues(t, 64*MB/TtEntrySize, tt.maxNumberOfEntries)

	// a 0 MB table stores nothing but must not crash
	tt = NewTtTable(0)
	assert.EqualValues(t, uint64(0), tt.maxNumberOfEntries)
	tt.Put(position.Key(111), MoveNone, 5, Value(100), EXACT, ValueNA)
	assert.EqualValues(t, uint64(0), tt.Len())
	assert.Equal(t, 0, tt.Hashfull())
}

func TestNewFromExponent(t *testing.T) {
	tt := NewTtTableFromExponent(10)
	assert.EqualValues(t, uint64(1)<<10, tt.maxNumberOfEntries)
	tt.ResizeFromExponent(12)
	assert.EqualValues(t, uint64(1)<<12, tt.maxNumberOfEntries)
	tt.ResizeFromExponent(0)
	assert.EqualValues(t, uint64(0), tt.maxNumberOfEntries)
}

func TestGetAndProbe(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	key := position.Key(0xDEADBEEF)

	tt.Put(key, move, 6, Value(42), EXACT, ValueNA)
	assert.EqualValues(t, uint64(1), tt.Len())

	e := tt.GetEntry(key)
	assert.NotNil(t, e)
	assert.Equal(t, key, e.Key())
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 6, e.Depth())
	assert.Equal(t, Value(42), e.Value())
	assert.Equal(t, EXACT, e.Vtype())
	assert.Nil(t, tt.GetEntry(key+1))

	// equal index but different key is a miss, not a fallback scan
	collidingKey := key + position.Key(tt.maxNumberOfEntries)
	assert.Equal(t, tt.hash(key), tt.hash(collidingKey))
	assert.Nil(t, tt.Probe(collidingKey))

	// probe refreshes the age of a hit
	before := tt.GetEntry(key).Age()
	e = tt.Probe(key)
	assert.NotNil(t, e)
	assert.Equal(t, before-1, e.Age())
}

func TestClear(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	tt.Put(position.Key(111), move, 4, Value(11), EXACT, ValueNA)
	tt.Put(position.Key(222), move, 5, Value(22), BETA, ValueNA)
	assert.EqualValues(t, uint64(2), tt.Len())

	tt.Clear()
	assert.EqualValues(t, uint64(0), tt.Len())
	assert.Nil(t, tt.Probe(position.Key(111)))
	assert.Nil(t, tt.Probe(position.Key(222)))
}

func TestAgeEntries(t *testing.T) {
	tt := NewTtTable(16)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	for i := 1; i <= 100; i++ {
		tt.Put(position.Key(i*1017), move, 4, Value(i), EXACT, ValueNA)
	}

	e := tt.GetEntry(position.Key(1017))
	assert.EqualValues(t, 1, e.Age())
	tt.AgeEntries()
	assert.EqualValues(t, 2, e.Age())
	tt.AgeEntries()
	assert.EqualValues(t, 3, e.Age())

	// probing an entry freshens it again
	tt.Probe(position.Key(1017))
	assert.EqualValues(t, 2, e.Age())
}

func TestPutReplacementPolicy(t *testing.T) {
	tt := NewTtTable(4)
	tt.AgeReplacement = false
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	key := position.Key(42)
	collidingKey := key + position.Key(tt.maxNumberOfEntries)

	// new entry
	tt.Put(key, move, 6, Value(10), EXACT, ValueNA)
	assert.EqualValues(t, uint64(1), tt.Len())

	// a colliding key with lower depth must not displace the entry
	tt.Put(collidingKey, move, 5, Value(20), EXACT, ValueNA)
	e := tt.GetEntry(key)
	assert.NotNil(t, e)
	assert.Equal(t, Value(10), e.Value())
	assert.Nil(t, tt.GetEntry(collidingKey))

	// equal or greater depth wins the slot
	tt.Put(collidingKey, move, 6, Value(20), BETA, ValueNA)
	assert.Nil(t, tt.GetEntry(key))
	e = tt.GetEntry(collidingKey)
	assert.NotNil(t, e)
	assert.Equal(t, Value(20), e.Value())
	assert.Equal(t, BETA, e.Vtype())

	// same key always updates value/bound
	tt.Put(collidingKey, move, 7, Value(30), ALPHA, ValueNA)
	e = tt.GetEntry(collidingKey)
	assert.Equal(t, Value(30), e.Value())
	assert.Equal(t, ALPHA, e.Vtype())
	assert.EqualValues(t, 7, e.Depth())

	// an update with MoveNone preserves the stored move
	tt.Put(collidingKey, MoveNone, 8, Value(40), EXACT, ValueNA)
	e = tt.GetEntry(collidingKey)
	assert.Equal(t, move, e.Move())
	assert.Equal(t, Value(40), e.Value())
}

func TestPutAgeReplacement(t *testing.T) {
	tt := NewTtTable(4)
	tt.AgeReplacement = true
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	key := position.Key(42)
	collidingKey := key + position.Key(tt.maxNumberOfEntries)

	tt.Put(key, move, 6, Value(10), EXACT, ValueNA)

	// depth tie, entry still fresh: keep the old entry
	tt.Put(collidingKey, move, 6, Value(20), EXACT, ValueNA)
	assert.NotNil(t, tt.GetEntry(key))
	assert.Nil(t, tt.GetEntry(collidingKey))

	// depth tie, entry aged out: replace
	tt.AgeEntries()
	tt.Put(collidingKey, move, 6, Value(20), EXACT, ValueNA)
	assert.Nil(t, tt.GetEntry(key))
	assert.NotNil(t, tt.GetEntry(collidingKey))
}
