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

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/gopherchess/goknight/internal/assert"
	"github.com/gopherchess/goknight/internal/util"
)

// Bitboard is a set of squares, one bit per square, a1 at bit 0 up to h8
// at bit 63.
type Bitboard uint64

// Bb returns the single-bit Bitboard for sq.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare returns b with s's bit set.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets s's bit on b in place and returns the new value.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare returns b with s's bit cleared.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare clears s's bit on b in place and returns the new value.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has reports whether s's bit is set in b.
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// ShiftBitboard shifts every set bit of b one square in direction d,
// masking off whichever edge file/rank would otherwise let bits wrap
// around to the opposite side of the board.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (Rank8Mask & b) << 8
	case East:
		return (MsbMask & b) << 1 & FileAMask
	case South:
		return b >> 8
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (Rank8Mask & b) << 9 & FileAMask
	case Southeast:
		return (b >> 7) & FileAMask
	case Southwest:
		return (b >> 9) & FileHMask
	case Northwest:
		return (b << 7) & FileHMask
	}
	return b
}

// GetMovesOnRank looks up the rank-slider moves from sq given content,
// the raw (non-rotated) occupancy bitboard.
//
// Deprecated: use GetAttacksBb.
func GetMovesOnRank(sq Square, content Bitboard) Bitboard {
	rankOccupancy := content >> (8 * int(sq.RankOf()))
	return movesRank[sq][rankOccupancy&255]
}

// GetMovesOnFileRotated looks up file-slider moves from sq given an
// already-L90-rotated occupancy bitboard.
//
// Deprecated: use GetAttacksBb.
func GetMovesOnFileRotated(sq Square, rotated Bitboard) Bitboard {
	fileOccupancy := rotated >> (int(sq.FileOf()) * 8)
	return movesFile[sq][fileOccupancy&255]
}

// GetMovesOnFile looks up file-slider moves from sq given the raw
// (non-rotated) occupancy bitboard.
//
// Deprecated: use GetAttacksBb.
func GetMovesOnFile(sq Square, content Bitboard) Bitboard {
	return GetMovesOnFileRotated(sq, RotateL90(content))
}

// GetMovesDiagUpRotated looks up up-diagonal slider moves from sq given
// an already-R45-rotated occupancy bitboard.
//
// Deprecated: use GetAttacksBb.
func GetMovesDiagUpRotated(sq Square, rotated Bitboard) Bitboard {
	shifted := rotated >> shiftsDiagUp[sq]
	masked := shifted & ((BbOne << lengthDiagUp[sq]) - 1)
	return movesDiagUp[sq][masked]
}

// GetMovesDiagUp looks up up-diagonal slider moves from sq given the raw
// (non-rotated) occupancy bitboard.
//
// Deprecated: use GetAttacksBb.
func GetMovesDiagUp(sq Square, content Bitboard) Bitboard {
	return GetMovesDiagUpRotated(sq, RotateR45(content))
}

// GetMovesDiagDownRotated looks up down-diagonal slider moves from sq
// given an already-L45-rotated occupancy bitboard.
//
// Deprecated: use GetAttacksBb.
func GetMovesDiagDownRotated(sq Square, rotated Bitboard) Bitboard {
	shifted := rotated >> shiftsDiagDown[sq]
	masked := shifted & ((BbOne << lengthDiagDown[sq]) - 1)
	return movesDiagDown[sq][masked]
}

// GetMovesDiagDown looks up down-diagonal slider moves from sq given the
// raw (non-rotated) occupancy bitboard.
//
// Deprecated: use GetAttacksBb.
func GetMovesDiagDown(sq Square, content Bitboard) Bitboard {
	return GetMovesDiagDownRotated(sq, RotateL45(content))
}

// Lsb returns the lowest-numbered set square in b, or SqNone if b is
// empty.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the highest-numbered set square in b, or SqNone if b is
// empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb removes and returns the lowest-numbered set square in b, or
// returns SqNone without modifying b if it is empty.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b = *b & (*b - 1)
	return lsb
}

// PopCount returns the number of set squares in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String renders b as 64 binary digits.
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard renders b as an 8x8 ASCII board, X marking set squares.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if (b & SquareOf(f, Rank8-r).Bb()) > 0 {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}

// StringGrouped renders b as 64 binary digits split into one group per
// rank (a1..h1, then a2..h2, ...), followed by its decimal value.
func (b Bitboard) StringGrouped() string {
	var sb strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			sb.WriteString(".")
		}
		if (b & (BbOne << i)) != 0 {
			sb.WriteString("1")
		} else {
			sb.WriteString("0")
		}
	}
	sb.WriteString(fmt.Sprintf(" (%d)", b))
	return sb.String()
}

// FileDistance returns the number of files between f1 and f2.
func FileDistance(f1 File, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the number of ranks between r1 and r2.
func RankDistance(r1 Rank, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance between s1 and s2 (the
// number of king steps to get from one to the other), or 0 if either is
// invalid or they're equal.
func SquareDistance(s1 Square, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	return squareDistance[s1][s2]
}

// CenterDistance returns sq's king-step distance to the nearest of the
// four center squares.
func (sq Square) CenterDistance() int {
	return centerDistance[sq]
}

// RotateR90 rotates b 90 degrees clockwise.
func RotateR90(b Bitboard) Bitboard {
	return rotate(b, &rotateMapR90)
}

// RotateL90 rotates b 90 degrees counter-clockwise.
func RotateL90(b Bitboard) Bitboard {
	return rotate(b, &rotateMapL90)
}

// RotateR45 rotates b 45 degrees clockwise, packing every up-diagonal
// into a contiguous run of bits (used for file/diagonal slider lookups
// before magic bitboards took over rook and bishop attacks).
func RotateR45(b Bitboard) Bitboard {
	return rotate(b, &rotateMapR45)
}

// RotateL45 rotates b 45 degrees counter-clockwise, packing every
// down-diagonal into a contiguous run of bits.
func RotateL45(b Bitboard) Bitboard {
	return rotate(b, &rotateMapL45)
}

// RotateSquareR90 maps sq to its position after a 90-degree clockwise
// board rotation.
func RotateSquareR90(sq Square) Square {
	return indexMapR90[sq]
}

// RotateSquareL90 maps sq to its position after a 90-degree
// counter-clockwise board rotation.
func RotateSquareL90(sq Square) Square {
	return indexMapL90[sq]
}

// RotateSquareR45 maps sq to its position after a 45-degree clockwise
// board rotation.
func RotateSquareR45(sq Square) Square {
	return indexMapR45[sq]
}

// RotateSquareL45 maps sq to its position after a 45-degree
// counter-clockwise board rotation.
func RotateSquareL45(sq Square) Square {
	return indexMapL45[sq]
}

// GetAttacksBb returns the squares a piece of type pt (not Pawn)
// standing on sq attacks, given board occupancy. Sliding pieces look up
// the magic-bitboard attack table; King and Knight ignore occupied and
// use the precomputed pseudo-attack table instead.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	if pt == Pawn {
		panic(fmt.Sprint("GetAttackBb called with piece type Pawn is not supported"))
	}
	switch pt {
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] | rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	default:
		return pseudoAttacks[pt][sq]
	}
}

// GetPseudoAttacks returns the attacks of a piece of type pt on sq as if
// the board were otherwise empty.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// FilesWestMask returns every file west of sq's file.
func (sq Square) FilesWestMask() Bitboard {
	return filesWestMask[sq]
}

// FilesEastMask returns every file east of sq's file.
func (sq Square) FilesEastMask() Bitboard {
	return filesEastMask[sq]
}

// FileWestMask returns the single file immediately west of sq, if any.
func (sq Square) FileWestMask() Bitboard {
	return fileWestMask[sq]
}

// FileEastMask returns the single file immediately east of sq, if any.
func (sq Square) FileEastMask() Bitboard {
	return fileEastMask[sq]
}

// RanksNorthMask returns every rank north of sq's rank.
func (sq Square) RanksNorthMask() Bitboard {
	return ranksNorthMask[sq]
}

// RanksSouthMask returns every rank south of sq's rank.
func (sq Square) RanksSouthMask() Bitboard {
	return ranksSouthMask[sq]
}

// NeighbourFilesMask returns the files immediately east and west of sq.
func (sq Square) NeighbourFilesMask() Bitboard {
	return neighbourFilesMask[sq]
}

// Ray returns every square reachable from sq along orientation o on an
// otherwise empty board.
func (sq Square) Ray(o Orientation) Bitboard {
	return rays[o][sq]
}

// Intermediate returns the squares strictly between sq1 and sq2, if they
// share a rank, file, or diagonal; otherwise BbZero.
func Intermediate(sq1 Square, sq2 Square) Bitboard {
	return intermediate[sq1][sq2]
}

// Intermediate returns the squares strictly between sq and to, if they
// share a rank, file, or diagonal; otherwise BbZero.
func (sq Square) Intermediate(to Square) Bitboard {
	return intermediate[sq][to]
}

// PassedPawnMask returns the squares on which an enemy pawn (or, on the
// same/adjacent file, any pawn of color c's own side being checked) would
// block or capture a color-c pawn standing on sq from ever promoting
// unopposed. AND this with the opponent's pawn bitboard to test "passed".
func (sq Square) PassedPawnMask(c Color) Bitboard {
	return passedPawnMask[c][sq]
}

// KingSideCastleMask returns the kingside squares f1, g1 and h1 (f8, g8
// and h8 for Black), the rook's corner included.
func KingSideCastleMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// QueenSideCastMask returns the queenside squares a1, b1, c1 and d1 (a8
// to d8 for Black), the rook's corner included.
func QueenSideCastMask(c Color) Bitboard {
	return queenSideCastleMask[c]
}

// GetCastlingRights returns which castling rights are forfeited when a
// piece moves to or from sq.
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRights[sq]
}

// SquaresBb returns every square of color c, e.g. to test whether two
// bishops run on the same color.
func SquaresBb(c Color) Bitboard {
	return squaresBb[c]
}

const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)

	MsbMask   Bitboard = ^(Bitboard(1) << 63)
	Rank8Mask Bitboard = ^Rank8_Bb
	FileAMask Bitboard = ^FileA_Bb
	FileHMask Bitboard = ^FileH_Bb

	DiagUpA1 Bitboard = 0b10000000_01000000_00100000_00010000_00001000_00000100_00000010_00000001
	DiagUpB1 Bitboard = (MsbMask & DiagUpA1) << 1 & FileAMask
	DiagUpC1 Bitboard = (MsbMask & DiagUpB1) << 1 & FileAMask
	DiagUpD1 Bitboard = (MsbMask & DiagUpC1) << 1 & FileAMask
	DiagUpE1 Bitboard = (MsbMask & DiagUpD1) << 1 & FileAMask
	DiagUpF1 Bitboard = (MsbMask & DiagUpE1) << 1 & FileAMask
	DiagUpG1 Bitboard = (MsbMask & DiagUpF1) << 1 & FileAMask
	DiagUpH1 Bitboard = (MsbMask & DiagUpG1) << 1 & FileAMask
	DiagUpA2 Bitboard = (Rank8Mask & DiagUpA1) << 8
	DiagUpA3 Bitboard = (Rank8Mask & DiagUpA2) << 8
	DiagUpA4 Bitboard = (Rank8Mask & DiagUpA3) << 8
	DiagUpA5 Bitboard = (Rank8Mask & DiagUpA4) << 8
	DiagUpA6 Bitboard = (Rank8Mask & DiagUpA5) << 8
	DiagUpA7 Bitboard = (Rank8Mask & DiagUpA6) << 8
	DiagUpA8 Bitboard = (Rank8Mask & DiagUpA7) << 8

	DiagDownH1 Bitboard = 0b0000000100000010000001000000100000010000001000000100000010000000
	DiagDownH2 Bitboard = (Rank8Mask & DiagDownH1) << 8
	DiagDownH3 Bitboard = (Rank8Mask & DiagDownH2) << 8
	DiagDownH4 Bitboard = (Rank8Mask & DiagDownH3) << 8
	DiagDownH5 Bitboard = (Rank8Mask & DiagDownH4) << 8
	DiagDownH6 Bitboard = (Rank8Mask & DiagDownH5) << 8
	DiagDownH7 Bitboard = (Rank8Mask & DiagDownH6) << 8
	DiagDownH8 Bitboard = (Rank8Mask & DiagDownH7) << 8
	DiagDownG1 Bitboard = (DiagDownH1 >> 1) & FileHMask
	DiagDownF1 Bitboard = (DiagDownG1 >> 1) & FileHMask
	DiagDownE1 Bitboard = (DiagDownF1 >> 1) & FileHMask
	DiagDownD1 Bitboard = (DiagDownE1 >> 1) & FileHMask
	DiagDownC1 Bitboard = (DiagDownD1 >> 1) & FileHMask
	DiagDownB1 Bitboard = (DiagDownC1 >> 1) & FileHMask
	DiagDownA1 Bitboard = (DiagDownB1 >> 1) & FileHMask

	CenterFiles   Bitboard = FileD_Bb | FileE_Bb
	CenterRanks   Bitboard = Rank4_Bb | Rank5_Bb
	CenterSquares Bitboard = CenterFiles & CenterRanks
)

// rotate applies a square-index permutation: bit y of the result comes
// from bit rotationMap[y] of b.
func rotate(b Bitboard, rotationMap *[SqLength]int) Bitboard {
	rotated := BbZero
	for sq := SqA1; sq < SqNone; sq++ {
		if (b & sqBb[Square(rotationMap[sq])]) != 0 {
			rotated |= sqBb[sq]
		}
	}
	return rotated
}

// bitboard returns the single-bit Bitboard for sq, computed directly
// rather than via the (not yet initialized, during setup) sqBb table.
func (sq Square) bitboard() Bitboard {
	return Bitboard(uint64(1) << sq)
}

var (
	rotateMapR90 = [SqLength]int{
		7, 15, 23, 31, 39, 47, 55, 63,
		6, 14, 22, 30, 38, 46, 54, 62,
		5, 13, 21, 29, 37, 45, 53, 61,
		4, 12, 20, 28, 36, 44, 52, 60,
		3, 11, 19, 27, 35, 43, 51, 59,
		2, 10, 18, 26, 34, 42, 50, 58,
		1, 9, 17, 25, 33, 41, 49, 57,
		0, 8, 16, 24, 32, 40, 48, 56}

	rotateMapL90 = [SqLength]int{
		56, 48, 40, 32, 24, 16, 8, 0,
		57, 49, 41, 33, 25, 17, 9, 1,
		58, 50, 42, 34, 26, 18, 10, 2,
		59, 51, 43, 35, 27, 19, 11, 3,
		60, 52, 44, 36, 28, 20, 12, 4,
		61, 53, 45, 37, 29, 21, 13, 5,
		62, 54, 46, 38, 30, 22, 14, 6,
		63, 55, 47, 39, 31, 23, 15, 7}

	rotateMapR45 = [SqLength]int{
		7,
		6, 15,
		5, 14, 23,
		4, 13, 22, 31,
		3, 12, 21, 30, 39,
		2, 11, 20, 29, 38, 47,
		1, 10, 19, 28, 37, 46, 55,
		0, 9, 18, 27, 36, 45, 54, 63,
		8, 17, 26, 35, 44, 53, 62,
		16, 25, 34, 43, 52, 61,
		24, 33, 42, 51, 60,
		32, 41, 50, 59,
		40, 49, 58,
		48, 57,
		56}

	rotateMapL45 = [SqLength]int{
		0,
		8, 1,
		16, 9, 2,
		24, 17, 10, 3,
		32, 25, 18, 11, 4,
		40, 33, 26, 19, 12, 5,
		48, 41, 34, 27, 20, 13, 6,
		56, 49, 42, 35, 28, 21, 14, 7,
		57, 50, 43, 36, 29, 22, 15,
		58, 51, 44, 37, 30, 23,
		59, 52, 45, 38, 31,
		60, 53, 46, 39,
		61, 54, 47,
		62, 55,
		63}

	lengthDiagUp = [SqLength]int{
		8, 7, 6, 5, 4, 3, 2, 1,
		7, 8, 7, 6, 5, 4, 3, 2,
		6, 7, 8, 7, 6, 5, 4, 3,
		5, 6, 7, 8, 7, 6, 5, 4,
		4, 5, 6, 7, 8, 7, 6, 5,
		3, 4, 5, 6, 7, 8, 7, 6,
		2, 3, 4, 5, 6, 7, 8, 7,
		1, 2, 3, 4, 5, 6, 7, 8}

	lengthDiagDown = [SqLength]int{
		1, 2, 3, 4, 5, 6, 7, 8,
		2, 3, 4, 5, 6, 7, 8, 7,
		3, 4, 5, 6, 7, 8, 7, 6,
		4, 5, 6, 7, 8, 7, 6, 5,
		5, 6, 7, 8, 7, 6, 5, 4,
		6, 7, 8, 7, 6, 5, 4, 3,
		7, 8, 7, 6, 5, 4, 3, 2,
		8, 7, 6, 5, 4, 3, 2, 1}

	shiftsDiagUp = [SqLength]int{
		28, 21, 15, 10, 6, 3, 1, 0,
		36, 28, 21, 15, 10, 6, 3, 1,
		43, 36, 28, 21, 15, 10, 6, 3,
		49, 43, 36, 28, 21, 15, 10, 6,
		54, 49, 43, 36, 28, 21, 15, 10,
		58, 54, 49, 43, 36, 28, 21, 15,
		61, 58, 54, 49, 43, 36, 28, 21,
		63, 61, 58, 54, 49, 43, 36, 28}

	shiftsDiagDown = [SqLength]int{
		0, 1, 3, 6, 10, 15, 21, 28,
		1, 3, 6, 10, 15, 21, 28, 36,
		3, 6, 10, 15, 21, 28, 36, 43,
		6, 10, 15, 21, 28, 36, 43, 49,
		10, 15, 21, 28, 36, 43, 49, 54,
		15, 21, 28, 36, 43, 49, 54, 58,
		21, 28, 36, 43, 49, 54, 58, 61,
		28, 36, 43, 49, 54, 58, 61, 63}

	indexMapR90 = [SqLength]Square{}
	indexMapL90 = [SqLength]Square{}
	indexMapR45 = [SqLength]Square{}
	indexMapL45 = [SqLength]Square{}

	sqBb [SqLength]Bitboard

	sqToFileBb [SqLength]Bitboard
	sqToRankBb [SqLength]Bitboard

	sqDiagUpBb   [SqLength]Bitboard
	sqDiagDownBb [SqLength]Bitboard

	rankBb [8]Bitboard
	fileBb [8]Bitboard

	squareDistance [SqLength][SqLength]int

	movesRank     [SqLength][256]Bitboard
	movesFile     [SqLength][256]Bitboard
	movesDiagUp   [SqLength][256]Bitboard
	movesDiagDown [SqLength][256]Bitboard

	pawnAttacks   [2][SqLength]Bitboard
	pseudoAttacks [PtLength][SqLength]Bitboard

	rookTable  []Bitboard
	rookMagics [SqLength]Magic

	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic

	filesWestMask      [SqLength]Bitboard
	filesEastMask      [SqLength]Bitboard
	ranksNorthMask     [SqLength]Bitboard
	ranksSouthMask     [SqLength]Bitboard
	fileWestMask       [SqLength]Bitboard
	fileEastMask       [SqLength]Bitboard
	neighbourFilesMask [SqLength]Bitboard

	rays [8][SqLength]Bitboard

	intermediate [SqLength][SqLength]Bitboard

	passedPawnMask [2][SqLength]Bitboard

	kingSideCastleMask  [2]Bitboard
	queenSideCastleMask [2]Bitboard

	castlingRights [SqLength]CastlingRights

	squaresBb [2]Bitboard

	centerDistance [SqLength]int
)

// initBb builds every precomputed bitboard table used by move
// generation and evaluation. Must run once before any other function in
// this package is called.
func initBb() {
	squareBitboardsPreCompute()
	rankFileBbPreCompute()
	castleMasksPreCompute()
	squareDistancePreCompute()
	movesRankPreCompute()
	movesFilePreCompute()
	movesDiagUpPreCompute()
	movesDiagDownPreCompute()
	pseudoAttacksPreCompute()
	neighbourMasksPreCompute()
	raysPreCompute()
	intermediatePreCompute()
	maskPassedPawnsPreCompute()
	squareColorsPreCompute()
	centerDistancePreCompute()
	initMagicBitboards()
}

// initMagicBitboards builds the fancy-magic attack tables for rooks and
// bishops, following Stockfish's approach
// (https://www.chessprogramming.org/Magic_Bitboards).
func initMagicBitboards() {
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable = make([]Bitboard, 0x19000, 0x19000)
	bishopTable = make([]Bitboard, 0x1480, 0x1480)

	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)

	if assert.DEBUG {
		verifyMagics(&rookMagics, &rookDirections)
		verifyMagics(&bishopMagics, &bishopDirections)
	}
}

// verifyMagics cross-checks every finished attack-table entry against a
// fresh ray-walk. A mismatch means a magic collided during table
// construction and the table is corrupt, which must halt the engine
// rather than feed the search wrong attack sets.
func verifyMagics(magics *[64]Magic, directions *[4]Direction) {
	for sq := SqA1; sq <= SqH8; sq++ {
		m := &(*magics)[sq]
		for subset := Bitboard(0); ; {
			assert.Assert(m.Attacks[m.index(subset)] == slidingAttack(directions, sq, subset),
				"magic attack table collision on square %s", sq.String())
			subset = (subset - m.Mask) & m.Mask
			if subset == 0 {
				break
			}
		}
	}
}

func rankFileBbPreCompute() {
	for i := Rank1; i <= Rank8; i++ {
		rankBb[i] = Rank1_Bb << (8 * i)
	}
	for i := FileA; i <= FileH; i++ {
		fileBb[i] = FileA_Bb << i
	}
}

func castleMasksPreCompute() {
	kingSideCastleMask[White] = sqBb[SqF1] | sqBb[SqG1] | sqBb[SqH1]
	kingSideCastleMask[Black] = sqBb[SqF8] | sqBb[SqG8] | sqBb[SqH8]
	queenSideCastleMask[White] = sqBb[SqD1] | sqBb[SqC1] | sqBb[SqB1] | sqBb[SqA1]
	queenSideCastleMask[Black] = sqBb[SqD8] | sqBb[SqC8] | sqBb[SqB8] | sqBb[SqA8]
	castlingRights[SqE1] = CastlingWhite
	castlingRights[SqA1] = CastlingWhiteOOO
	castlingRights[SqH1] = CastlingWhiteOO
	castlingRights[SqE8] = CastlingBlack
	castlingRights[SqA8] = CastlingBlackOOO
	castlingRights[SqH8] = CastlingBlackOO
}

// upDiagonalsA1H8 lists every up-diagonal from the one through a8 down
// to the one through h1, the order squareBitboardsPreCompute checks
// them in. Each square belongs to exactly one, so check order doesn't
// affect the result.
var upDiagonalsA1H8 = [15]Bitboard{
	DiagUpA8, DiagUpA7, DiagUpA6, DiagUpA5, DiagUpA4, DiagUpA3, DiagUpA2, DiagUpA1,
	DiagUpB1, DiagUpC1, DiagUpD1, DiagUpE1, DiagUpF1, DiagUpG1, DiagUpH1,
}

// downDiagonalsA8H1 is the down-diagonal counterpart of upDiagonalsA1H8.
var downDiagonalsA8H1 = [15]Bitboard{
	DiagDownH8, DiagDownH7, DiagDownH6, DiagDownH5, DiagDownH4, DiagDownH3, DiagDownH2, DiagDownH1,
	DiagDownG1, DiagDownF1, DiagDownE1, DiagDownD1, DiagDownC1, DiagDownB1, DiagDownA1,
}

func squareBitboardsPreCompute() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = sq.bitboard()

		sqToFileBb[sq] = FileA_Bb << sq.FileOf()
		sqToRankBb[sq] = Rank1_Bb << (8 * sq.RankOf())

		for _, diag := range upDiagonalsA1H8 {
			if diag&sq.bitboard() != 0 {
				sqDiagUpBb[sq] = diag
				break
			}
		}
		for _, diag := range downDiagonalsA8H1 {
			if diag&sq.bitboard() != 0 {
				sqDiagDownBb[sq] = diag
				break
			}
		}

		indexMapR90[rotateMapR90[sq]] = sq
		indexMapL90[rotateMapL90[sq]] = sq
		indexMapR45[rotateMapR45[sq]] = sq
		indexMapL45[rotateMapL45[sq]] = sq
	}
}

// centerDistancePreCompute resolves, per square, which of the board's
// four quadrants it lies in and records its distance to that quadrant's
// center square.
func centerDistancePreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		switch {
		case (sqBb[sq] & ranksNorthMask[27] & filesWestMask[36]) != 0:
			centerDistance[sq] = squareDistance[sq][SqD5]
		case (sqBb[sq] & ranksNorthMask[28] & filesEastMask[35]) != 0:
			centerDistance[sq] = squareDistance[sq][SqE5]
		case (sqBb[sq] & ranksSouthMask[35] & filesWestMask[28]) != 0:
			centerDistance[sq] = squareDistance[sq][SqD4]
		case (sqBb[sq] & ranksSouthMask[36] & filesEastMask[27]) != 0:
			centerDistance[sq] = squareDistance[sq][SqE4]
		}
	}
}

// squareColorsPreCompute records which squares are "light" and which are
// "dark", used e.g. to compare bishops for same-color-square heuristics.
func squareColorsPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		if (int(sq.FileOf())+int(sq.RankOf()))%2 == 0 {
			squaresBb[Black] |= BbOne << sq
		} else {
			squaresBb[White] |= BbOne << sq
		}
	}
}

// maskPassedPawnsPreCompute builds, for each color and square, the mask
// of squares on the same file and the two neighbouring files ahead of
// that square (from that color's perspective) that an enemy pawn could
// occupy to stop a pawn there from being passed.
func maskPassedPawnsPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := sq.FileOf()
		r := sq.RankOf()

		passedPawnMask[White][sq] |= rays[N][sq]
		if f < 7 && r < 7 {
			passedPawnMask[White][sq] |= rays[N][sq.To(East)]
		}
		if f > 0 && r < 7 {
			passedPawnMask[White][sq] |= rays[N][sq.To(West)]
		}

		passedPawnMask[Black][sq] |= rays[S][sq]
		if f < 7 && r > 0 {
			passedPawnMask[Black][sq] |= rays[S][sq.To(East)]
		}
		if f > 0 && r > 0 {
			passedPawnMask[Black][sq] |= rays[S][sq.To(West)]
		}
	}
}

// intermediatePreCompute fills the intermediate[from][to] table: for any
// pair of squares that share a rank, file, or diagonal, the squares
// strictly between them.
func intermediatePreCompute() {
	for from := SqA1; from <= SqH8; from++ {
		for to := SqA1; to <= SqH8; to++ {
			toBb := sqBb[to]
			for o := 0; o < 8; o++ {
				if rays[Orientation(o)][from]&toBb != BbZero {
					intermediate[from][to] |= rays[Orientation(o)][from] & ^rays[Orientation(o)][to] & ^toBb
				}
			}
		}
	}
}

func raysPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rays[N][sq] = pseudoAttacks[Rook][sq] & ranksNorthMask[sq]
		rays[E][sq] = pseudoAttacks[Rook][sq] & filesEastMask[sq]
		rays[S][sq] = pseudoAttacks[Rook][sq] & ranksSouthMask[sq]
		rays[W][sq] = pseudoAttacks[Rook][sq] & filesWestMask[sq]

		rays[NW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksNorthMask[sq]
		rays[NE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksNorthMask[sq]
		rays[SE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksSouthMask[sq]
		rays[SW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksSouthMask[sq]
	}
}

// neighbourMasksPreCompute builds, per square, the masks of files and
// ranks lying strictly west/east/north/south of it.
func neighbourMasksPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for j := 0; j <= 7; j++ {
			if j < f {
				filesWestMask[sq] |= FileA_Bb << j
			}
			if 7-j > f {
				filesEastMask[sq] |= FileA_Bb << (7 - j)
			}
			if 7-j > r {
				ranksNorthMask[sq] |= Rank1_Bb << (8 * (7 - j))
			}
			if j < r {
				ranksSouthMask[sq] |= Rank1_Bb << (8 * j)
			}
		}
		if f > 0 {
			fileWestMask[sq] = FileA_Bb << (f - 1)
		}
		if f < 7 {
			fileEastMask[sq] = FileA_Bb << (f + 1)
		}
		neighbourFilesMask[sq] = fileEastMask[sq] | fileWestMask[sq]
	}
}

func squareDistancePreCompute() {
	for s1 := SqA1; s1 <= SqH8; s1++ {
		for s2 := SqA1; s2 <= SqH8; s2++ {
			if s1 != s2 {
				squareDistance[s1][s2] = util.Max(FileDistance(s1.FileOf(), s2.FileOf()), RankDistance(s1.RankOf(), s2.RankOf()))
			}
		}
	}
}

// pseudoAttacksPreCompute builds the attack tables for non-sliding
// pieces (king, pawn, knight) on an otherwise empty board, and derives
// the sliding pieces' empty-board pseudo-attacks from the already-built
// rank/file/diagonal move tables.
func pseudoAttacksPreCompute() {
	// step offsets for king, pawn, knight, written for White; Black's
	// are obtained by negating via c.Direction().
	nonSlidingSteps := [][]Direction{
		{},
		{Northwest, North, Northeast, East}, // king
		{Northwest, Northeast},              // pawn
		{West + Northwest, East + Northeast, North + Northwest, North + Northeast}, // knight
	}

	for c := White; c <= Black; c++ {
		for _, pt := range []PieceType{King, Pawn, Knight} {
			for sq := SqA1; sq <= SqH8; sq++ {
				for _, step := range nonSlidingSteps[pt] {
					to := Square(int(sq) + c.Direction()*int(step))
					if to.IsValid() && squareDistance[sq][to] < 3 { // reject board-edge wraparound
						if pt == Pawn {
							pawnAttacks[c][sq] |= sqBb[to]
						} else {
							pseudoAttacks[pt][sq] |= sqBb[to]
						}
					}
				}
			}
		}
	}

	for sq := SqA1; sq <= SqH8; sq++ {
		pseudoAttacks[Bishop][sq] |= movesDiagUp[sq][0]
		pseudoAttacks[Bishop][sq] |= movesDiagDown[sq][0]
		pseudoAttacks[Rook][sq] |= movesFile[sq][0]
		pseudoAttacks[Rook][sq] |= movesRank[sq][0]
		pseudoAttacks[Queen][sq] |= pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]
	}
}

// movesDiagDownPreCompute builds, for every square and every possible
// occupancy of its down-diagonal, the resulting slider attack set.
// Adapted from the Beowulf engine's rotated-bitboard approach.
func movesDiagDownPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		file := sq.FileOf()
		rank := sq.RankOf()
		diagStart := Square(7*(util.Min(int(file), 7-int(rank))) + int(sq))
		diagStartFile := diagStart.FileOf()
		diagLen := lengthDiagDown[sq]

		for occ := 0; occ < (1 << diagLen); occ++ {
			var mask, rotated Bitboard
			for x := int(file) - int(diagStartFile) - 1; x >= 0; x-- {
				mask += BbOne << x
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for x := int(file) - int(diagStartFile) + 1; x < diagLen; x++ {
				mask += BbOne << x
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for x := 0; x < diagLen; x++ {
				rotated += ((mask >> x) & 1) << (int(diagStart) - (7 * x))
			}
			movesDiagDown[sq][occ] = rotated
		}
	}
}

// movesDiagUpPreCompute is the up-diagonal counterpart of
// movesDiagDownPreCompute.
func movesDiagUpPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		file := sq.FileOf()
		rank := sq.RankOf()
		diagStart := sq - Square(9*util.Min(int(file), int(rank)))
		diagStartFile := diagStart.FileOf()
		diagLen := lengthDiagUp[sq]

		for occ := 0; occ < (1 << diagLen); occ++ {
			var mask, rotated Bitboard
			for x := int(file) - int(diagStartFile) - 1; x >= 0; x-- {
				mask += BbOne << x
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for x := int(file) - int(diagStartFile) + 1; x < diagLen; x++ {
				mask += BbOne << x
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for x := 0; x < diagLen; x++ {
				rotated += ((mask >> x) & 1) << (int(diagStart) + (9 * x))
			}
			movesDiagUp[sq][occ] = rotated
		}
	}
}

// movesFilePreCompute builds, for every rank-local occupancy byte and
// every file, the resulting vertical slider attack set, replicated
// across all eight files of that rank's row of squares. Adapted from the
// Beowulf engine's rotated-bitboard approach.
func movesFilePreCompute() {
	for rank := int(Rank1); rank <= int(Rank8); rank++ {
		for occ := 0; occ < 256; occ++ {
			mask := BbZero
			for x := 6 - rank; x >= 0; x-- {
				mask += BbOne << (8 * (7 - x))
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for x := 8 - rank; x < 8; x++ {
				mask += BbOne << (8 * (7 - x))
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for file := int(FileA); file <= int(FileH); file++ {
				movesFile[(rank*8)+file][occ] = mask << file
			}
		}
	}
}

// movesRankPreCompute builds, for every file-local occupancy byte and
// every rank, the resulting horizontal slider attack set. Adapted from
// the Beowulf engine's rotated-bitboard approach.
func movesRankPreCompute() {
	for file := int(FileA); file <= int(FileH); file++ {
		for occ := 0; occ < 256; occ++ {
			mask := BbZero
			for x := file - 1; x >= 0; x-- {
				mask += BbOne << x
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for x := file + 1; x < 8; x++ {
				mask += BbOne << x
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for rank := int(Rank1); rank <= int(Rank8); rank++ {
				movesRank[(rank*8)+file][occ] = mask << (rank * 8)
			}
		}
	}
}
