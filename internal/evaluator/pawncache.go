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
	"math"
	"unsafe"

	"github.com/op/go-logging"

	"github.com/gopherchess/goknight/internal/config"
	myLogging "github.com/gopherchess/goknight/internal/logging"
	"github.com/gopherchess/goknight/internal/position"
	. "github.com/gopherchess/goknight/internal/types"
)

const (
	// MaxSizeInMB is the largest pawn-cache size this engine will honor.
	MaxSizeInMB = 1_024

	// EntrySize is the in-memory size of one cacheEntry, in bytes.
	EntrySize = 16
)

// pawnCache is a direct-mapped, power-of-two-sized cache from a
// position's pawn-only Zobrist subkey to the pawn-structure score
// already computed for it, so repeated positions sharing a pawn
// skeleton don't re-run pawn evaluation.
type pawnCache struct {
	log         *logging.Logger
	data        []cacheEntry
	sizeInByte  uint64
	slotCount   uint64
	hashKeyMask uint64
	entries     uint64
	hits        uint64
	misses      uint64
	replace     uint64
}

type cacheEntry struct {
	pawnKey position.Key
	score   Score
}

func newPawnCache() *pawnCache {
	pc := &pawnCache{log: myLogging.GetLog()}
	pc.resize(config.Settings.Eval.PawnCacheSize)
	return pc
}

// resize rebuilds the cache to hold as many power-of-two slots as fit in
// sizeInMByte, clamped to MaxSizeInMB.
func (pc *pawnCache) resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		pc.log.Error(out.Sprintf("Requested size for Pawn Cache of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	pc.sizeInByte = uint64(sizeInMByte) * MB
	pc.slotCount = 1 << uint64(math.Floor(math.Log2(float64(pc.sizeInByte/EntrySize))))
	pc.hashKeyMask = pc.slotCount - 1

	if pc.sizeInByte == 0 {
		pc.slotCount = 0
	}
	pc.sizeInByte = pc.slotCount * EntrySize

	pc.data = make([]cacheEntry, pc.slotCount)

	pc.log.Info(out.Sprintf("PawnCache Size %d MByte, Capacity %d entries (size=%dByte) (Requested were %d MBytes)",
		pc.sizeInByte/MB, pc.slotCount, unsafe.Sizeof(cacheEntry{}), sizeInMByte))
}

// getEntry returns the slot for key if its stored key matches, counting
// the lookup as a hit or a miss either way. A mismatching occupant is a
// miss, never a fallback scan — this cache is strictly direct-mapped.
func (pc *pawnCache) getEntry(key position.Key) *cacheEntry {
	slot := &pc.data[pc.hash(key)]
	if slot.pawnKey == key {
		pc.hits++
		return slot
	}
	pc.misses++
	return nil
}

// put stores score under key's slot, overwriting whatever else (if
// anything) occupied it.
func (pc *pawnCache) put(key position.Key, score *Score) {
	slot := &pc.data[pc.hash(key)]
	switch slot.pawnKey {
	case 0:
		pc.entries++
	case key:
		pc.log.Warningf("Update to pawn cache entry - should not happen. Missing a read to cache?")
		pc.replace++
	default:
		pc.replace++
	}
	slot.pawnKey = key
	slot.score.MidGameValue = score.MidGameValue
	slot.score.EndGameValue = score.EndGameValue
}

// clear drops every entry and resets the hit/miss/replace counters.
func (pc *pawnCache) clear() {
	pc.data = make([]cacheEntry, pc.slotCount)
	pc.entries = 0
	pc.hits = 0
	pc.misses = 0
	pc.replace = 0
}

// len reports how many non-empty slots the cache currently holds.
func (pc *pawnCache) len() uint64 {
	return pc.entries
}

// hash maps a pawn Zobrist key onto a slot index.
func (pc *pawnCache) hash(key position.Key) uint64 {
	return uint64(key) & pc.hashKeyMask
}
