/*
 * GoKnight - a UCI chess engine written in Go
 *
 * MIT License
 *
 * Copyright (c) 2019-2020 The GoKnight Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package evaluator

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/gopherchess/goknight/internal/position"
	. "github.com/gopherchess/goknight/internal/types"
)

// the cache is sized in entries-per-MB, so the entry must stay compact
func TestCacheEntrySize(t *testing.T) {
	assert.EqualValues(t, EntrySize, unsafe.Sizeof(cacheEntry{}))
}

func TestNewPawnCacheEmpty(t *testing.T) {
	pc := newPawnCache()
	assert.EqualValues(t, 0, pc.len())
	assert.EqualValues(t, 0, pc.hits)
	assert.EqualValues(t, 0, pc.misses)
	assert.EqualValues(t, 0, pc.replace)
}

func TestPawnCachePutGet(t *testing.T) {
	pc := newPawnCache()
	p := position.NewPosition()

	startKey := p.PawnKey()
	pc.put(startKey, &Score{MidGameValue: 1, EndGameValue: 11})
	assert.EqualValues(t, 1, pc.len())

	// a pawn move produces a new pawn key and a second entry
	p.DoMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	assert.NotEqual(t, startKey, p.PawnKey())
	pc.put(p.PawnKey(), &Score{MidGameValue: 2, EndGameValue: 22})
	assert.EqualValues(t, 2, pc.len())

	e := pc.getEntry(p.PawnKey())
	assert.NotNil(t, e)
	assert.EqualValues(t, 2, e.score.MidGameValue)
	assert.EqualValues(t, 22, e.score.EndGameValue)
	assert.EqualValues(t, 1, pc.hits)

	// undoing the move gets the original pawn key (and entry) back
	p.UndoMove()
	e = pc.getEntry(p.PawnKey())
	assert.NotNil(t, e)
	assert.EqualValues(t, 1, e.score.MidGameValue)
	assert.EqualValues(t, 11, e.score.EndGameValue)
	assert.EqualValues(t, 2, pc.hits)

	// an unseen pawn structure misses
	p.DoMove(CreateMove(SqD2, SqD4, Normal, PtNone))
	assert.Nil(t, pc.getEntry(p.PawnKey()))
	assert.EqualValues(t, 1, pc.misses)

	pc.clear()
	assert.EqualValues(t, 0, pc.len())
	assert.EqualValues(t, 0, pc.hits)
	assert.EqualValues(t, 0, pc.misses)
	assert.EqualValues(t, 0, pc.replace)
}

// a non-pawn move must not disturb the pawn key
func TestPawnKeyIgnoresPieceMoves(t *testing.T) {
	p := position.NewPosition()
	key := p.PawnKey()
	p.DoMove(CreateMove(SqG1, SqF3, Normal, PtNone))
	assert.Equal(t, key, p.PawnKey())
	p.UndoMove()
	assert.Equal(t, key, p.PawnKey())
}
