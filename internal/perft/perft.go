// Package perft counts the leaf nodes of the legal move tree, the standard
// way of checking a move generator against published figures.
package perft

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Entry is the node count below one root move.
type Entry struct {
	Move  engine.Move
	Nodes uint64
}

// Runner counts nodes, spreading root moves over a worker pool.
// A Runner may be reused; its cache persists between calls.
type Runner struct {
	cfg   *config.Config
	cache *hashing.ThreadSafeTable // nil when caching is disabled
}

// NewRunner creates a Runner. A nil cfg uses config.NewConfig defaults.
func NewRunner(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	r := &Runner{cfg: cfg}
	if cfg.Perft.CacheSize > 0 {
		r.cache = hashing.NewThreadSafeTable(cfg.Perft.CacheSize)
	}
	return r
}

// Count counts the leaf nodes depth plies below g on the calling goroutine,
// without caching. g is not modified.
func Count(g *engine.Game, depth int) uint64 {
	n, _ := count(context.Background(), g, depth, nil)
	return n
}

// Perft returns the number of leaf nodes depth plies below g.
func (r *Runner) Perft(ctx context.Context, g *engine.Game, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	entries, err := r.Divide(ctx, g, depth)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total, nil
}

// Divide returns the node count below each legal root move, in the order
// AllLegalMoves lists them. A depth below 1 yields no entries.
func (r *Runner) Divide(ctx context.Context, g *engine.Game, depth int) ([]Entry, error) {
	if depth <= 0 {
		return nil, nil
	}
	start := time.Now()
	moves := g.AllLegalMoves()

	bufferSize := len(moves)
	if bufferSize > r.cfg.Perft.BufferSize {
		bufferSize = r.cfg.Perft.BufferSize
	}
	pool := worker.NewPool(r.countJob,
		worker.WithWorkers(r.cfg.Perft.Workers),
		worker.WithBufferSize(bufferSize))
	pool.Start(ctx)

	go func() {
		for i, m := range moves {
			child := g.Clone()
			if err := child.Play(m); err != nil {
				// AllLegalMoves only lists playable moves
				panic(fmt.Sprintf("perft: generated move %v rejected: %v", m, err))
			}
			pool.Submit(worker.Job{Game: child, Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	entries := make([]Entry, len(moves))
	var firstErr error
	for result := range pool.Results() {
		if result.Err != nil {
			if firstErr == nil {
				firstErr = result.Err
				pool.Stop()
			}
			continue
		}
		entries[result.Index] = Entry{Move: result.Move, Nodes: result.Nodes}
		if r.cfg.Verbosity > 1 {
			fmt.Fprintf(r.cfg.LogFile, "%v: %d\n", result.Move, result.Nodes)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	if r.cfg.Verbosity > 0 {
		var total uint64
		for _, e := range entries {
			total += e.Nodes
		}
		fmt.Fprintf(r.cfg.LogFile, "perft depth %d: %d nodes, %d root moves, %d workers, %v\n",
			depth, total, len(entries), pool.NumWorkers(), time.Since(start).Round(time.Millisecond))
	}
	return entries, nil
}

func (r *Runner) countJob(ctx context.Context, job worker.Job) worker.Result {
	nodes, err := count(ctx, job.Game, job.Depth, r.cache)
	return worker.Result{Move: job.Move, Index: job.Index, Nodes: nodes, Err: err}
}

// CacheHits returns how many subtree counts were served from the cache.
func (r *Runner) CacheHits() int {
	if r.cache == nil {
		return 0
	}
	return r.cache.Hits()
}

func count(ctx context.Context, g *engine.Game, depth int, cache *hashing.ThreadSafeTable) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	moves := g.AllLegalMoves()
	if depth == 1 {
		return uint64(len(moves)), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var key uint64
	if cache != nil {
		key = hashing.Zobrist(g)
		if n, ok := cache.Lookup(key, depth); ok {
			return n, nil
		}
	}

	var nodes uint64
	for _, m := range moves {
		child := g.Clone()
		if err := child.Play(m); err != nil {
			return 0, err
		}
		n, err := count(ctx, child, depth-1, cache)
		if err != nil {
			return 0, err
		}
		nodes += n
	}

	if cache != nil {
		cache.Store(key, depth, nodes)
	}
	return nodes, nil
}

// SortByMove orders entries by their long algebraic move text.
func SortByMove(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
}
