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

package search

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/gopherchess/goknight/internal/config"
	"github.com/gopherchess/goknight/internal/evaluator"
	"github.com/gopherchess/goknight/internal/history"
	myLogging "github.com/gopherchess/goknight/internal/logging"
	"github.com/gopherchess/goknight/internal/movegen"
	"github.com/gopherchess/goknight/internal/moveslice"
	"github.com/gopherchess/goknight/internal/openingbook"
	"github.com/gopherchess/goknight/internal/position"
	"github.com/gopherchess/goknight/internal/transpositiontable"
	. "github.com/gopherchess/goknight/internal/types"
	"github.com/gopherchess/goknight/internal/uciInterface"
	"github.com/gopherchess/goknight/internal/util"
)

var out = message.NewPrinter(language.German)

// Search drives an iterative-deepening alpha-beta search on behalf of
// a UCI session. Build one with NewSearch, then drive it via
// StartSearch/StopSearch; a Search is not safe to reuse across two
// concurrent searches but is safe to call StopSearch from any
// goroutine while one runs.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	uciHandlerPtr uciInterface.UciDriver
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	book *openingbook.Book
	tt   *transpositiontable.TtTable
	eval *evaluator.Evaluator

	history *history.History

	lastSearchResult *Result

	stopFlag          *util.Flag
	startTime         time.Time
	hasResult         bool
	currentPosition   *position.Position
	searchLimits      *Limits
	timeLimit         time.Duration
	extraTime         time.Duration
	nodesVisited      uint64
	mg                []*movegen.Movegen
	pv                []*moveslice.MoveSlice
	rootMoves         *moveslice.MoveSlice
	hadBookMove       bool
	lastUciUpdateTime time.Time
	statistics        Statistics
}

// NewSearch returns a Search with no UCI handler attached; output
// goes to Stdout via its logger until SetUciHandler is called.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		slog:          getSearchTraceLog(),
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
		eval:          evaluator.NewEvaluator(),
		history:       history.NewHistory(),
		stopFlag:      util.NewFlag(false),
	}
}

// NewGame stops any running search and clears state that must not
// leak across games: the transposition table and history heuristics.
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
	s.history = history.NewHistory()
}

// StartSearch copies p and sl and starts searching in a new goroutine.
// It returns once that goroutine has finished its (potentially slow)
// setup and is actually running. Stop the search with StopSearch,
// check its status with IsSearching.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.currentPosition = &p
	s.searchLimits = &sl
	go s.run(&p, &sl)
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch signals a running search to stop and blocks until it has,
// sending a result to the UCI handler before returning.
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
	s.WaitWhileSearching()
}

// PonderHit tells an in-progress ponder search that the pondered move
// was actually played, switching on time control without interrupting
// the search. A no-op if no search is running.
func (s *Search) PonderHit() {
	if s.IsSearching() && s.searchLimits.Ponder {
		s.log.Debug("Ponderhit during search - activating time control")
		s.startTimer()
		return
	}
	s.log.Warning("Ponderhit received while not pondering")
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until no search is running.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// SetUciHandler routes search output through uciHandler instead of the
// logger.
func (s *Search) SetUciHandler(uciHandler uciInterface.UciDriver) {
	s.uciHandlerPtr = uciHandler
}

// GetUciHandlerPtr returns the attached UCI handler, or nil if none.
func (s *Search) GetUciHandlerPtr() uciInterface.UciDriver {
	return s.uciHandlerPtr
}

// IsReady runs whatever setup the search still needs (book, TT) and
// then reports "readyok" to the UCI handler, or logs it if none is
// attached. Part of the UCI handshake a GUI uses to confirm the
// engine is initialized.
func (s *Search) IsReady() {
	s.initialize()
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendReadyOk()
	} else {
		s.log.Debug("uci >> readyok")
	}
}

// ClearHash clears the transposition table. Refused with a warning
// while a search is running.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		msg := "Can't clear hash while searching."
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return
	}
	if s.tt != nil {
		s.tt.Clear()
		s.sendInfoStringToUci("Hash cleared")
	}
}

// ResizeCache drops and rebuilds the transposition table at whatever
// size config.Settings.Search now specifies. Refused with a warning
// while a search is running.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		msg := "Can't resize hash while searching."
		s.uciHandlerPtr.SendInfoString(msg)
		s.log.Warning(msg)
		return
	}
	s.tt = nil
	s.initialize()
	s.log.Debug(util.GcWithStats())
	if s.tt != nil {
		s.uciHandlerPtr.SendInfoString(out.Sprintf("Hash resized: %s", s.tt.String()))
	}
}

// run is the body of the search goroutine started by StartSearch. It
// sets up per-search state, plays a book move if one is available,
// otherwise runs iterativeDeepening, and finally reports the result.
func (s *Search) run(rootPos *position.Position, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.log.Infof("Searching: %s", rootPos.StringFen())

	s.stopFlag.Store(false)
	s.hasResult = false
	s.timeLimit = 0
	s.extraTime = 0
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.lastUciUpdateTime = s.startTime
	s.initialize()

	s.setupSearchLimits(rootPos, sl)

	if s.searchLimits.TimeControl && !s.searchLimits.Ponder {
		s.startTimer()
	}

	bookMove := s.findBookMove(rootPos, sl)

	if s.tt != nil {
		s.log.Infof("Transposition Table: Using TT (%s)", s.tt.String())
		s.tt.AgeEntries()
	} else {
		s.log.Info("Transposition Table: Not using TT")
	}

	s.mg = make([]*movegen.Movegen, 0, MaxDepth+1)
	s.pv = make([]*moveslice.MoveSlice, 0, MaxDepth+1)
	for i := 0; i <= MaxDepth; i++ {
		mg := movegen.NewMoveGen()
		if config.Settings.Search.UseHistoryCounter || config.Settings.Search.UseCounterMoves {
			mg.SetHistoryData(s.history)
		}
		s.mg = append(s.mg, mg)
		s.pv = append(s.pv, moveslice.NewMoveSlice(MaxDepth+1))
	}

	s.log.Infof("Search using: PVS=%t ASP=%t MTDf=%t",
		config.Settings.Search.UsePVS,
		config.Settings.Search.UseAspiration,
		config.Settings.Search.UseMTDf)

	// release the init lock so StartSearch's caller can return now
	// that all the slow setup above is done.
	s.initSemaphore.Release(1)

	var searchResult *Result
	if bookMove == MoveNone {
		searchResult = s.iterativeDeepening(rootPos)
	} else {
		searchResult = &Result{BestMove: bookMove, BookMove: true}
		s.hadBookMove = true
	}

	// Ponder/infinite searches that finish on their own before a stop
	// or ponderhit must wait for one before reporting a result.
	if (s.searchLimits.Ponder || s.searchLimits.Infinite) && !s.stopFlag.Load() {
		s.log.Debug("Search finished before stopped or ponderhit! Waiting for stop/ponderhit to send result")
		for !s.stopFlag.Load() && (s.searchLimits.Ponder || s.searchLimits.Infinite) {
			time.Sleep(5 * time.Millisecond)
		}
	}

	searchResult.SearchTime = time.Since(s.startTime)
	searchResult.Pv = *s.pv[0]

	s.log.Info(out.Sprintf("Search finished after %s", searchResult.SearchTime))
	s.log.Info(out.Sprintf("Search depth was %d(%d) with %d nodes visited. NPS = %d nps",
		s.statistics.CurrentSearchDepth, s.statistics.CurrentExtraSearchDepth, s.nodesVisited,
		util.Nps(s.nodesVisited, searchResult.SearchTime)))
	s.log.Debugf("Search stats: %s", s.statistics.String())
	s.log.Infof("Search result: %s", searchResult.String())

	s.lastSearchResult = searchResult
	s.hasResult = true

	// the timer goroutine, if any, exits on this flag regardless of
	// whether a real time limit was ever reached.
	s.stopFlag.Store(true)

	s.sendResult(searchResult)
}

// findBookMove looks up rootPos in the opening book when book moves
// are enabled and the game is time controlled, picking uniformly at
// random among the book's recorded replies.
func (s *Search) findBookMove(rootPos *position.Position, sl *Limits) Move {
	if s.book == nil || !config.Settings.Search.UseBook || !sl.TimeControl {
		s.log.Info("Opening Book: Not using book")
		return MoveNone
	}
	entry, found := s.book.GetEntry(rootPos.ZobristKey())
	if !found || len(entry.Moves) == 0 {
		return MoveNone
	}
	rand.Seed(int64(time.Now().Nanosecond()))
	move := Move(entry.Moves[rand.Intn(len(entry.Moves))].Move)
	s.log.Debug("Opening Book: Choosing book move: ", move.StringUci())
	return move
}

// iterativeDeepening searches rootPos at increasing depths until a
// stop condition fires, returning the best result found so far. Each
// iteration's root moves are sorted by the previous iteration's
// values, so the partial result of an interrupted iteration is never
// worse than the prior completed one.
func (s *Search) iterativeDeepening(rootPos *position.Position) *Result {
	s.rootMoves = s.mg[0].GenerateLegalMoves(rootPos, movegen.GenAll)
	if s.rootMoves.Len() == 0 {
		return s.noMoveResult(rootPos)
	}

	// the move right after the last book move gets extra time since
	// the book's cheap depth is no longer backing the decision.
	if s.hadBookMove && s.searchLimits.TimeControl && s.searchLimits.MoveTime == 0 {
		s.log.Debugf(out.Sprintf("First non-book move to search. Adding extra time: Before: %d ms After: %s ms",
			s.timeLimit.Milliseconds(), 2*s.timeLimit.Milliseconds()))
		s.addExtraTime(2.0)
		s.hadBookMove = false
	}

	maxDepth := MaxDepth
	if s.searchLimits.Depth > 0 {
		maxDepth = s.searchLimits.Depth
	}

	alpha := ValueMin
	beta := ValueMax
	bestValue := ValueNA

	for iterationDepth := 1; iterationDepth <= maxDepth; iterationDepth++ {
		s.nodesVisited++
		s.statistics.CurrentIterationDepth = iterationDepth
		s.statistics.CurrentSearchDepth = iterationDepth
		if s.statistics.CurrentExtraSearchDepth < iterationDepth {
			s.statistics.CurrentExtraSearchDepth = iterationDepth
		}

		switch {
		case config.Settings.Search.UseAspiration && iterationDepth > 3:
			bestValue = s.aspirationSearch(rootPos, iterationDepth, bestValue)
		case config.Settings.Search.UseMTDf && iterationDepth > 3:
			bestValue = s.mtdf(rootPos, iterationDepth, bestValue)
		default:
			bestValue = s.rootSearch(rootPos, iterationDepth, alpha, beta)
		}

		// stop once asked to, or once there's only one legal move and
		// no point searching deeper to confirm it.
		if s.stopConditions() || s.rootMoves.Len() <= 1 {
			break
		}
		s.rootMoves.Sort()
		s.statistics.CurrentBestRootMove = s.pv[0].At(0)
		s.statistics.CurrentBestRootMoveValue = s.pv[0].At(0).ValueOf()
		s.sendIterationEndInfoToUci()
	}

	return s.buildResult(rootPos)
}

// noMoveResult builds the Result for a position with no legal moves:
// checkmate if the side to move is in check, stalemate otherwise.
func (s *Search) noMoveResult(rootPos *position.Position) *Result {
	if rootPos.HasCheck() {
		s.statistics.Checkmates++
		msg := "Search called on a mate position"
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return &Result{BestValue: -ValueCheckMate}
	}
	s.statistics.Stalemates++
	msg := "Search called on a stalemate position"
	s.sendInfoStringToUci(msg)
	s.log.Warning(msg)
	return &Result{BestValue: ValueDraw}
}

// buildResult assembles the final Result from pv[0], falling back to
// the transposition table for a ponder move when the principal
// variation is only one move deep.
func (s *Search) buildResult(rootPos *position.Position) *Result {
	result := &Result{
		BestMove:    s.pv[0].At(0).MoveOf(),
		BestValue:   s.pv[0].At(0).ValueOf(),
		PonderMove:  MoveNone,
		SearchDepth: s.statistics.CurrentIterationDepth,
		ExtraDepth:  s.statistics.CurrentExtraSearchDepth,
	}

	if s.pv[0].Len() > 1 {
		result.PonderMove = s.pv[0].At(1).MoveOf()
		return result
	}

	if config.Settings.Search.UseTT {
		rootPos.DoMove(result.BestMove)
		if ttEntry := s.tt.Probe(rootPos.ZobristKey()); ttEntry != nil {
			s.statistics.TTHit++
			result.PonderMove = ttEntry.Move()
			s.log.Debugf(out.Sprintf("Using ponder move from hash: %s", result.PonderMove.StringUci()))
		}
		rootPos.UndoMove()
	}
	return result
}

// initialize lazily sets up the opening book and transposition table
// per the current config. Safe to call repeatedly; already-built
// components are left alone.
func (s *Search) initialize() {
	if config.Settings.Search.UseBook {
		if s.book == nil {
			s.book = openingbook.NewBook()
			bookPath := config.Settings.Search.BookPath
			bookFile := config.Settings.Search.BookFile
			bookFormat, found := openingbook.FormatFromString[config.Settings.Search.BookFormat]
			if !found {
				s.log.Warningf("Book format invalid %s", config.Settings.Search.BookFormat)
				s.book = nil
			} else if err := s.book.Initialize(bookPath, bookFile, bookFormat, true, false); err != nil {
				s.log.Warningf("Book could not be initialized: %s (%s)", bookPath, err)
				s.book = nil
			}
		}
	} else {
		s.log.Info("Opening book is disabled in configuration")
	}

	if config.Settings.Search.UseTT {
		if s.tt == nil {
			if exp := config.Settings.Search.TTSizeExponent; exp > 0 {
				s.tt = transpositiontable.NewTtTableFromExponent(exp)
			} else {
				sizeInMByte := config.Settings.Search.TTSize
				if sizeInMByte == 0 {
					sizeInMByte = 64
				}
				s.tt = transpositiontable.NewTtTable(sizeInMByte)
			}
		}
		s.tt.AgeReplacement = config.Settings.Search.UseTTAgeReplacement
	} else {
		s.log.Info("Transposition Table is disabled in configuration")
	}
}

// stopConditions reports whether the search should stop: either
// StopSearch was called, or the node-count limit was just reached.
func (s *Search) stopConditions() bool {
	if s.stopFlag.Load() {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag.Store(true)
	}
	return s.stopFlag.Load()
}

// setupSearchLimits logs the active search mode(s) derived from sl
// and, for time-controlled searches, computes the time budget.
func (s *Search) setupSearchLimits(rootPos *position.Position, sl *Limits) {
	if sl.Infinite {
		s.log.Info("Search mode: Infinite")
	}
	if sl.Ponder {
		s.log.Info("Search mode: Ponder")
	}
	if sl.Mate > 0 {
		s.log.Infof("Search mode: Search for mate in %d", sl.Mate)
	}
	if sl.TimeControl {
		s.timeLimit = s.setupTimeControl(rootPos, sl)
		s.extraTime = 0
		if sl.MoveTime > 0 {
			s.log.Infof("Search mode: Time controlled: Time per move %s", sl.MoveTime)
		} else {
			s.log.Info(out.Sprintf("Search mode: Time controlled: White = %s (inc %s) Black = %s (inc %s) Moves to go: %d",
				sl.WhiteTime, sl.WhiteInc, sl.BlackTime, sl.BlackInc, sl.MovesToGo))
			s.log.Info(out.Sprintf("Search mode: Time limit     : %s", s.timeLimit))
		}
		if sl.Ponder {
			s.log.Info("Search mode: Ponder - time control postponed until ponderhit received")
		}
	} else {
		s.log.Info("Search mode: No time control")
	}
	if sl.Depth > 0 {
		s.log.Debugf("Search mode: Depth limited  : %d", sl.Depth)
	}
	if sl.Nodes > 0 {
		s.log.Infof(out.Sprintf("Search mode: Nodes limited  : %d", sl.Nodes))
	}
	if sl.Moves.Len() > 0 {
		s.log.Infof(out.Sprintf("Search mode: Moves limited  : %s", sl.Moves.StringUci()))
	}
}

// setupTimeControl derives a per-move time budget from sl: a fixed
// budget for "time per move" mode, or an estimate of remaining-time
// divided by estimated-moves-remaining otherwise, shaved down to
// leave headroom for the engine's own overhead.
func (s *Search) setupTimeControl(p *position.Position, sl *Limits) time.Duration {
	if sl.MoveTime > 0 {
		duration := sl.MoveTime - (20 * time.Millisecond)
		if duration < 0 {
			s.log.Warningf("Very short move time: %s. ", sl.MoveTime)
			return sl.MoveTime
		}
		return duration
	}

	movesLeft := int64(sl.MovesToGo)
	if movesLeft == 0 {
		// assume 15 moves left in the endgame, growing toward 40 the
		// earlier in the game we are.
		movesLeft = int64(15 + (25 * p.GamePhaseFactor()))
	}

	var timeLeft time.Duration
	switch p.NextPlayer() {
	case White:
		timeLeft = sl.WhiteTime + time.Duration(movesLeft*sl.WhiteInc.Nanoseconds())
	case Black:
		timeLeft = sl.BlackTime + time.Duration(movesLeft*sl.BlackInc.Nanoseconds())
	}

	timeLimit := time.Duration(timeLeft.Nanoseconds() / movesLeft)
	if timeLimit.Milliseconds() < 100 {
		timeLimit = time.Duration(int64(0.8 * float64(timeLimit.Nanoseconds())))
	} else {
		timeLimit = time.Duration(int64(0.9 * float64(timeLimit.Nanoseconds())))
	}
	return timeLimit
}

// addExtraTime adds (f-1.0) times the current time limit to extraTime
// — f=1.1 extends the budget 10%, f=0.9 shrinks it 10%. No-op outside
// time-controlled, non-fixed-move-time searches.
func (s *Search) addExtraTime(f float64) {
	if s.searchLimits.TimeControl && s.searchLimits.MoveTime == 0 {
		duration := time.Duration(int64((f - 1.0) * float64(s.timeLimit.Nanoseconds())))
		s.extraTime += duration
		s.log.Debugf(out.Sprintf("Time added/reduced by %s to %s ",
			duration, s.timeLimit+s.extraTime))
	}
}

// startTimer runs a goroutine that sets stopFlag once timeLimit plus
// any extraTime has elapsed. timeLimit/extraTime can change while it
// runs, so it polls rather than sleeping for a fixed duration.
func (s *Search) startTimer() {
	go func() {
		timerStart := time.Now()
		s.log.Debugf("Timer started with time limit of %s", s.timeLimit)
		for time.Since(timerStart) < s.timeLimit+s.extraTime && !s.stopFlag.Load() {
			time.Sleep(5 * time.Millisecond)
		}
		if s.stopFlag.Load() {
			s.log.Debugf("Timer stopped early after wall time: %s (time limit %s and extra time %s)",
				time.Since(timerStart), s.timeLimit, s.extraTime)
		} else {
			s.log.Debugf("Timer stops search after wall time: %s (time limit %s and extra time %s)",
				time.Since(timerStart), s.timeLimit, s.extraTime)
			s.stopFlag.Store(true)
		}
	}()
}

func (s *Search) sendResult(searchResult *Result) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendResult(searchResult.BestMove, searchResult.PonderMove)
	}
}

func (s *Search) sendInfoStringToUci(msg string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendInfoString(msg)
	}
}

// sendSearchUpdateToUci reports progress at most once a second, to
// the attached UCI handler if any, otherwise to the log.
func (s *Search) sendSearchUpdateToUci() {
	if time.Since(s.lastUciUpdateTime) <= time.Second {
		return
	}
	s.lastUciUpdateTime = time.Now()
	hashfull := 0
	if s.tt != nil {
		hashfull = s.tt.Hashfull()
	}
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendSearchUpdate(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			hashfull)
		s.uciHandlerPtr.SendCurrentRootMove(s.statistics.CurrentRootMove, s.statistics.CurrentRootMoveIndex)
		s.uciHandlerPtr.SendCurrentLine(s.statistics.CurrentVariation)
	} else {
		s.log.Infof(out.Sprintf("depth %d seldepth %d value %s nodes %d nps %d time %d hashful %d",
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue.String(),
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime).Milliseconds(),
			hashfull))
	}
}

// sendIterationEndInfoToUci reports the result of a completed
// iterative-deepening iteration.
func (s *Search) sendIterationEndInfoToUci() {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendIterationEndInfo(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			*s.pv[0])
	} else {
		s.log.Infof(out.Sprintf("depth %d seldepth %d value %s nodes %d nps %d time %d pv %s",
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue.String(),
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime).Milliseconds(),
			s.pv[0].StringUci()))
	}
}

// sendAspirationResearchInfo reports a fail-high/fail-low re-search
// during aspiration-window search, tagged with bound ("upperbound" or
// "lowerbound").
func (s *Search) sendAspirationResearchInfo(bound string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendAspirationResearchInfo(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue,
			bound,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			*s.pv[0])
	} else {
		s.log.Infof(out.Sprintf("depth %d seldepth %d value %s %s nodes %d nps %d time %d pv %s",
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue.String(),
			bound,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime).Milliseconds(),
			s.pv[0].StringUci()))
	}
}

// getNps returns nodes-per-second relative to startTime, clamped to 0
// above a sanity ceiling so a near-zero elapsed time can't produce an
// absurd spike.
func (s *Search) getNps() uint64 {
	nps := util.Nps(s.nodesVisited, time.Since(s.startTime)+100)
	if nps > 15_000_000 {
		nps = 0
	}
	return nps
}

// LastSearchResult returns a copy of the last completed search result.
func (s *Search) LastSearchResult() Result {
	return *s.lastSearchResult
}

// NodesVisited returns the number of nodes visited in the running or
// most recently finished search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns the running or most recently finished search's
// statistics.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}
