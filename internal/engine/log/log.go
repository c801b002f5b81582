// Package log is a thin wrapper around github.com/op/go-logging that hands
// out one named *Logger per concern (board, search, protocol, ...), each
// preconfigured with a stdout backend and a shared format string. Grounded
// on the teacher's internal/logging and franky_logging packages, collapsed
// from several hand-duplicated GetXLog functions into one Get(name).
package log

import (
	stdlog "log"
	"os"
	"sync"

	"github.com/op/go-logging"
)

// Logger is the handle every package in chesseng logs through.
type Logger = logging.Logger

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-10.10s} %{level:-7.7s} %{message}`)

var (
	mu      sync.Mutex
	loggers = map[string]*Logger{}
	level   = logging.INFO
)

// SetLevel changes the level applied to every logger returned by Get from
// this point on (existing loggers are re-leveled in place); called by
// internal/config once the configured log level is known.
func SetLevel(l logging.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	for _, lg := range loggers {
		applyBackend(lg)
	}
}

func applyBackend(lg *Logger) {
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	lg.SetBackend(leveled)
}

// Get returns the named logger, creating it on first use.
func Get(name string) *Logger {
	mu.Lock()
	defer mu.Unlock()
	if lg, ok := loggers[name]; ok {
		return lg
	}
	lg := logging.MustGetLogger(name)
	applyBackend(lg)
	loggers[name] = lg
	return lg
}
