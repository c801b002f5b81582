// Package report formats search statistics for log and debug output using a
// locale-aware printer, grounded on the teacher's "var out =
// message.NewPrinter(language.German)" pattern used throughout
// internal/search for thousands-separated node counts.
package report

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"chesseng/internal/board"
)

var printer = message.NewPrinter(language.German)

// Nodes renders a node count with locale thousands separators, e.g.
// "1.234.567" under the German locale.
func Nodes(n uint64) string { return printer.Sprintf("%d", n) }

// Nps renders nodes-per-second the same way.
func Nps(n uint64) string { return printer.Sprintf("%d", n) }

// Summary formats a single human-readable line summarizing a completed
// iterative-deepening iteration. No other package calls it; the UCI "info"
// line is formatted separately by the protocol package, which uses plain
// un-localized digits per the UCI wire format.
func Summary(depth int, score board.Value, nodes uint64, elapsed time.Duration, pv []board.Move) string {
	return printer.Sprintf("depth %d score %s nodes %s time %s pv %s",
		depth, score.String(), Nodes(nodes), elapsed.Round(time.Millisecond), moveListString(pv))
}

func moveListString(pv []board.Move) string {
	s := ""
	for i, m := range pv {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}
