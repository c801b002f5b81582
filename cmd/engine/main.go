// Command engine is the chesseng UCI executable (spec.md §6), grounded on
// the teacher's cmd/FrankyGo/main.go flag set, trimmed to the options this
// engine actually has (no opening book, no test-suite runner).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/pkg/profile"

	"chesseng/internal/board"
	"chesseng/internal/config"
	"chesseng/internal/engine/log"
	"chesseng/internal/movegen"
	"chesseng/internal/protocol"
)

var version = "0.1.0"

func main() {
	configFile := flag.String("config", "", "path to a TOML configuration file (optional)")
	logLevel := flag.String("loglevel", "info", "log level: critical|error|warning|notice|info|debug")
	versionFlag := flag.Bool("version", false, "print version and exit")
	fen := flag.String("fen", board.StartFEN, "FEN to use with -perft")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen and exit")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to ./cpu.pprof")
	flag.Parse()

	if *versionFlag {
		fmt.Println("chesseng", version)
		return
	}

	config.Setup(*configFile)
	if lvl, err := logging.LogLevel(*logLevel); err == nil {
		log.SetLevel(lvl)
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *perftDepth > 0 {
		pos := board.NewPosition(*fen)
		results, total := movegen.PerftDivide(pos, *perftDepth)
		for _, r := range results {
			fmt.Printf("%s: %d\n", r.Move.String(), r.Nodes)
		}
		fmt.Printf("Nodes searched: %d\n", total)
		return
	}

	protocol.NewHandler(os.Stdin, os.Stdout).Loop()
}
