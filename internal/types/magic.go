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

package types

// Magic is one square's entry in a fancy-magic sliding-attack table: the
// relevant occupancy mask, the magic multiplier that maps a masked
// occupancy onto a dense index, the shift that collapses the multiply
// result to that index's bit width, and the slice of this square's
// attack bitboards, indexed by Magic.index.
//
// The magic-bitboard technique and the generator below follow the
// Stockfish engine (https://stockfishchess.org/about/).
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// initMagics fills in magics (and the backing table slice) for every
// square, for the four directions a sliding piece of one kind moves in.
// See https://www.chessprogramming.org/Magic_Bitboards for the technique.
func initMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {
	// Seeds chosen to keep the magic search below fast for every rank.
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancySubsets [4096]Bitboard
	var attackForSubset [4096]Bitboard
	var lastVerifiedAt [4096]int
	subsetCount := 0
	attempt := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		// Board edge squares never add information to the relevant
		// occupancy: a slider either stops before the edge anyway or
		// the edge square itself is always occupied-or-not irrelevant.
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		m := &(*magics)[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		// each square's attack slice starts where the previous square's
		// entries end, subsetCount still holding the previous square's
		// table size.
		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[subsetCount:]
		}

		// Carry-Rippler trick: enumerate every subset of m.Mask and
		// record the attack bitboard each subset produces, to check
		// candidate magics against below.
		// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
		subsetCount = 0
		for subset := Bitboard(0); ; {
			occupancySubsets[subsetCount] = subset
			attackForSubset[subsetCount] = slidingAttack(directions, sq, subset)
			subsetCount++
			subset = (subset - m.Mask) & m.Mask
			if subset == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])
		attempt = findMagic(m, rng, attempt, subsetCount, &occupancySubsets, &attackForSubset, &lastVerifiedAt)
	}
}

// findMagic draws candidate magic multipliers from rng until one maps
// every occupancy subset in occupancies to the correct attack bitboard
// in attacks, storing the winning magic and its attack table in m.
// verifiedAt tracks, per table slot, which candidate last wrote it, so a
// failed candidate's partial writes don't need to be undone before the
// next attempt. attempt must increase monotonically across squares
// since verifiedAt is shared between them; the updated count is
// returned for the next square's search.
func findMagic(m *Magic, rng *PrnG, attempt, subsetCount int, occupancies, attacks *[4096]Bitboard, verifiedAt *[4096]int) int {
	for i := 0; i < subsetCount; {
		for m.Magic = 0; ; {
			m.Magic = Bitboard(rng.sparseRand())
			if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
				break
			}
		}

		attempt++
		for i = 0; i < subsetCount; i++ {
			idx := m.index(occupancies[i])
			if verifiedAt[idx] < attempt {
				verifiedAt[idx] = attempt
				m.Attacks[idx] = attacks[i]
			} else if m.Attacks[idx] != attacks[i] {
				break
			}
		}
	}
	return attempt
}

// slidingAttack returns the attack set of a slider standing on sq and
// moving along directions, stopping at (and including) the first
// occupied square in each direction. O(rays * ray length); fine for
// one-time table construction, not for use during search.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			s = s.To(directions[i])
			if !s.IsValid() {
				break
			}
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
			if !s.To(directions[i]).IsValid() || SquareDistance(s, s.To(directions[i])) != 1 {
				break
			}
		}
	}
	return attack
}

// index maps an occupancy bitboard onto this square's dense attack-table
// slot via the classic mask/multiply/shift fancy-magic formula.
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// PrnG is a xorshift64star pseudo-random generator, chosen (following
// Stockfish) for the magic-number search because it needs no warm-up and
// is fast enough to try many candidates per square.
type PrnG struct {
	s uint64
}

func newPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand ANDs three rand64 draws together, biasing the result toward
// mostly-zero bits (about 1/8th set on average) since sparse candidate
// magics tend to collide less during verification.
func (r *PrnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
