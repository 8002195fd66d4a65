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

package uci

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	. "github.com/gopherchess/goknight/internal/config"
)

// checkOption builds the map entry for a plain boolean UCI option
// backed by target, wiring boolOption(target, label) as its handler.
func checkOption(target *bool, label string) *uciOption {
	v := strconv.FormatBool(*target)
	return &uciOption{NameID: label, HandlerFunc: boolOption(target, label), OptionType: Check, DefaultValue: v, CurrentValue: v}
}

// init will define all available uci options and store them into the uciOption map
func init() {
	uciOptions = map[string]*uciOption{
		"Print Config": {NameID: "Print Config", HandlerFunc: printConfig, OptionType: Button},
		"Clear Hash":   {NameID: "Clear Hash", HandlerFunc: clearCache, OptionType: Button},
		"Use_Hash":     checkOption(&Settings.Search.UseTT, "Use_Hash"),
		"Hash":         {NameID: "Hash", HandlerFunc: cacheSize, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.TTSize), CurrentValue: strconv.Itoa(Settings.Search.TTSize), MinValue: "0", MaxValue: "65000"},

		"Use_Book": checkOption(&Settings.Search.UseBook, "Use_Book"),
		"OwnBook":  checkOption(&Settings.Search.UseBook, "OwnBook"),

		"Ponder":  checkOption(&Settings.Search.UsePonder, "Ponder"),
		"Threads": {NameID: "Threads", HandlerFunc: threadCount, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.Threads), CurrentValue: strconv.Itoa(Settings.Search.Threads), MinValue: "1", MaxValue: "1"},

		"Use_MoveOrder": checkOption(&Settings.Search.UseMoveOrder, "Use_MoveOrder"),

		"Quiescence": checkOption(&Settings.Search.UseQuiescence, "Quiescence"),
		"Use_QHash":  checkOption(&Settings.Search.UseQSTT, "Use_QHash"),
		"Use_SEE":    checkOption(&Settings.Search.UseSEE, "Use_SEE"),

		"Use_PVS":         checkOption(&Settings.Search.UsePVS, "Use_PVS"),
		"Use_IID":         checkOption(&Settings.Search.UseIID, "Use_IID"),
		"Use_Killer":      checkOption(&Settings.Search.UseKiller, "Use_Killer"),
		"Use_HistCount":   checkOption(&Settings.Search.UseHistoryCounter, "Use_HistCount"),
		"Use_CounterMove": checkOption(&Settings.Search.UseCounterMoves, "Use_CounterMove"),

		"Use_Rfp":      checkOption(&Settings.Search.UseRFP, "Use_Rfp"),
		"Use_NullMove": checkOption(&Settings.Search.UseNullMove, "Use_NullMove"),
		"Use_Mdp":      checkOption(&Settings.Search.UseMDP, "Use_Mdp"),
		"Use_Fp":       checkOption(&Settings.Search.UseFP, "Use_Fp"),
		"Use_Lmr":      checkOption(&Settings.Search.UseLmr, "Use_Lmr"),
		"Use_Lmp":      checkOption(&Settings.Search.UseLmp, "Use_Lmp"),

		"Use_Ext":         checkOption(&Settings.Search.UseExt, "Use_Ext"),
		"Use_ExtAddDepth": checkOption(&Settings.Search.UseExtAddDepth, "Use_ExtAddDepth"),
		"Use_CheckExt":    checkOption(&Settings.Search.UseCheckExt, "Use_CheckExt"),
		"Use_ThreatExt":   checkOption(&Settings.Search.UseThreatExt, "Use_ThreatExt"),

		"Eval_Lazy":     checkOption(&Settings.Eval.UseLazyEval, "Eval_Lazy"),
		"Eval_Mobility": checkOption(&Settings.Eval.UseMobility, "Eval_Mobility"),
		"Eval_AdvPiece": checkOption(&Settings.Eval.UseAdvancedPieceEval, "Eval_AdvPiece"),
	}
	sortOrderUciOptions = []string{
		"Print Config",
		"Clear Hash",
		"Use_Hash",
		"Hash",
		"Use_Book",
		"OwnBook",
		"Ponder",
		"Threads",
		"Use_MoveOrder",

		"Quiescence",
		"Use_QHash",
		"Use_SEE",

		"Use_IID",
		"Use_PVS",
		"Use_Killer",
		"Use_HistCount",
		"Use_CounterMove",

		"Use_Mdp",
		"Use_Rfp",
		"Use_NullMove",
		"Use_Fp",
		"Use_Lmr",
		"Use_Lmp",

		"Use_Ext",
		"Use_ExtAddDepth",
		"Use_CheckExt",
		"Use_ThreatExt",

		"Eval_Lazy",
		"Eval_Mobility",
		"Eval_AdvPiece",
	}
}

// GetOptions returns all available uci options a slice of strings
// to be send to the UCI user interface during the initialization
// phase of the UCI protocol
func (o *optionMap) GetOptions() *[]string {
	var options []string
	for _, opt := range sortOrderUciOptions {
		options = append(options, uciOptions[opt].String())
	}
	return &options
}

// String for uciOption will return a representation of the uci option as required by
// the UCI protocol during the initialization phase of the UCI protocol
func (o *uciOption) String() string {
	var os strings.Builder
	os.WriteString("option name ")
	os.WriteString(o.NameID)
	os.WriteString(" type ")
	switch o.OptionType {
	case Check:
		os.WriteString("check ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
	case Spin:
		os.WriteString("spin ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" min ")
		os.WriteString(o.MinValue)
		os.WriteString(" max ")
		os.WriteString(o.MaxValue)
	case Combo:
		os.WriteString("combo ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" var ")
		os.WriteString(o.VarValue)
	case Button:
		os.WriteString("button")
	case String:
		os.WriteString("string ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
	}

	return os.String()
}

// uciOptionType is a enum representing the different UCI Option types
type uciOptionType int

// uci option types constants
const (
	Check  uciOptionType = 0
	Spin   uciOptionType = 1
	Combo  uciOptionType = 2
	Button uciOptionType = 3
	String uciOptionType = 4
)

// optionHandler is a function type to by used as function pointer
// in each uci option defined. This is called when the uci option
// is changed by the "setoption" command
type optionHandler func(*UciHandler, *uciOption)

// uciOption defines UCI Options as described in the UCI protocol.
// Each options has a function pointer to a handler which will be
// called when the "setoption" command changes the option.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	VarValue     string
	CurrentValue string
}

// optionMap convenience type for a map of pointers to uci options
type optionMap map[string]*uciOption

// uciOptions stores all available uci options
var uciOptions optionMap

// to control the sort order of all options
var sortOrderUciOptions []string

// ////////////////////////////////////////////////////////////////
// HandlerFunc for uci options changes
// ////////////////////////////////////////////////////////////////

func printConfig(handler *UciHandler, option *uciOption) {
	s := reflect.ValueOf(&Settings.Eval).Elem()
	typeOfT := s.Type()
	for i := s.NumField() - 1; i >= 0; i-- {
		f := s.Field(i)
		handler.SendInfoString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	handler.SendInfoString("Evaluation Config:\n")
	s = reflect.ValueOf(&Settings.Search).Elem()
	typeOfT = s.Type()
	for i := s.NumField() - 1; i >= 0; i-- {
		f := s.Field(i)
		handler.SendInfoString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	handler.SendInfoString("Search Config:\n")
	log.Debug(Settings.String())

}

func clearCache(u *UciHandler, o *uciOption) {
	u.mySearch.ClearHash()
	log.Debug("Cleared Cache")
}

// boolOption returns a setoption handler that parses the option's new
// current value as a bool into target. Nearly every search/eval toggle
// is exactly this, so the ~25 option entries above share this one
// handler instead of a near-identical function each.
func boolOption(target *bool, label string) optionHandler {
	return func(u *UciHandler, o *uciOption) {
		v, _ := strconv.ParseBool(o.CurrentValue)
		*target = v
		log.Debugf("Set %s to %v", label, v)
	}
}

// threadCount accepts the UCI Threads option for GUI compatibility;
// only one search ever runs, so anything but 1 is clamped and noted.
func threadCount(u *UciHandler, o *uciOption) {
	v, err := strconv.Atoi(o.CurrentValue)
	if err != nil || v < 1 {
		v = 1
	}
	if v > 1 {
		u.SendInfoString("only a single search thread is supported")
		v = 1
	}
	Settings.Search.Threads = v
}

func cacheSize(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.TTSize = v
	u.mySearch.ResizeCache()
}
