// perft counts the legal move tree of a chess position, the standard check
// of a move generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/fen"
	"github.com/lgbarn/chessrules-go/internal/perft"
	"github.com/lgbarn/chessrules-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := buildConfig()
	setupLogFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, strings.Fields(*movesFlag), *depth, *divide, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// run sets up the position, plays moves and writes the count to out.
func run(ctx context.Context, cfg *config.Config, moves []string, depth int, divide bool, out io.Writer) error {
	registry, err := session.NewRegistry(cfg)
	if err != nil {
		return err
	}
	id, err := registry.Create()
	if err != nil {
		return err
	}
	defer registry.Remove(id) //nolint:errcheck // the ID was just created

	for _, s := range moves {
		m, err := engine.ParseMove(s)
		if err != nil {
			return err
		}
		if _, err := registry.Play(id, m); err != nil {
			return err
		}
	}

	g, err := registry.Snapshot(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Position: %s\n", fen.Format(g))
	fmt.Fprintf(out, "State: %v\n", g.State())

	runner := perft.NewRunner(cfg)
	if !divide {
		nodes, err := runner.Perft(ctx, g, depth)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Nodes searched: %d\n", nodes)
		return nil
	}

	entries, err := runner.Divide(ctx, g, depth)
	if err != nil {
		return err
	}
	perft.SortByMove(entries)
	var total uint64
	for _, e := range entries {
		fmt.Fprintf(out, "%v: %d\n", e.Move, e.Nodes)
		total += e.Nodes
	}
	fmt.Fprintf(out, "\nMoves: %d\nNodes searched: %d\n", len(entries), total)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the leaf nodes of the legal move tree of a chess position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExample:\n")
	fmt.Fprintf(os.Stderr, "  perft -depth 4 -divide -moves 'e2e4 e7e5'\n")
}
