// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position options
	fenFlag   = flag.String("fen", "", "Start position in FEN (default: standard starting position)")
	movesFlag = flag.String("moves", "", "Moves to play before counting, long algebraic (e.g. 'e2e4 e7e5')")

	// Counting options
	depth  = flag.Int("depth", 3, "Number of plies to count")
	divide = flag.Bool("divide", false, "Print the node count below each root move")

	// Performance options
	workers   = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	cacheSize = flag.Int("cache", 0, "Transposition cache entries (0 = disabled)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("verbose", 1, "Diagnostics level: 0=none, 1=summary, 2=per root move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig creates the configuration from command-line flags.
func buildConfig() *config.Config {
	level := *verbosity
	if *quiet {
		level = 0
	}
	b := config.NewConfigBuilder().
		WithVerbosity(level).
		WithPerftCache(*cacheSize).
		WithStartFEN(*fenFlag)
	if *workers > 0 {
		b.WithPerftWorkers(*workers)
	}
	return b.Build()
}
