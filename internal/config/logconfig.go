package config

import "github.com/op/go-logging"

// logConfiguration controls the verbosity of every named logger obtained
// through internal/engine/log (spec.md §2).
type logConfiguration struct {
	Level logging.Level
}

func init() {
	Settings.Log.Level = logging.INFO
}
