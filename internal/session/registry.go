// Package session keeps games in progress for concurrent callers, each
// game under its own lock.
package session

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/fen"
)

// entry serializes access to one game.
type entry struct {
	mu   sync.Mutex
	game *engine.Game
}

// Registry maps game IDs to games. It is safe for concurrent use.
type Registry struct {
	cfg   *config.Config
	start chess.Setup

	mu    sync.RWMutex
	games map[string]*entry
}

// NewRegistry creates an empty registry. New games start from
// cfg.Session.StartFEN, or the standard position when it is empty.
// A nil cfg uses config.NewConfig defaults.
func NewRegistry(cfg *config.Config) (*Registry, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	start := chess.InitialSetup()
	if cfg.Session.StartFEN != "" {
		setup, err := fen.Parse(cfg.Session.StartFEN)
		if err != nil {
			return nil, errors.Wrap(err, "session start position")
		}
		start = setup
	}
	return &Registry{
		cfg:   cfg,
		start: start,
		games: make(map[string]*entry),
	}, nil
}

// Create starts a game from the configured start position and returns its ID.
func (r *Registry) Create() (string, error) {
	return r.add(engine.NewGameFromSetup(r.start))
}

// CreateFromFEN starts a game from a FEN position and returns its ID.
func (r *Registry) CreateFromFEN(s string) (string, error) {
	setup, err := fen.Parse(s)
	if err != nil {
		return "", err
	}
	return r.add(engine.NewGameFromSetup(setup))
}

func (r *Registry) add(g *engine.Game) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit := r.cfg.Session.MaxGames; limit > 0 && len(r.games) >= limit {
		return "", errors.Wrapf(errors.ErrRegistryFull, "%d games", limit)
	}
	id := uuid.New().String()
	r.games[id] = &entry{game: g}

	if r.cfg.Verbosity > 0 {
		fmt.Fprintf(r.cfg.LogFile, "session %s created (%d active)\n", id, len(r.games))
	}
	return id, nil
}

func (r *Registry) lookup(id string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}
	return e, nil
}

// Do runs fn with exclusive access to the game id and returns its error.
// fn must not keep the game after it returns.
func (r *Registry) Do(id string, fn func(g *engine.Game) error) error {
	e, err := r.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.game)
}

// MovePiece moves a piece in game id; see engine.Game.MovePiece.
func (r *Registry) MovePiece(id string, from, to chess.Square) (engine.State, error) {
	var state engine.State
	err := r.Do(id, func(g *engine.Game) error {
		if err := g.MovePiece(from, to); err != nil {
			return err
		}
		state = g.State()
		return nil
	})
	if err != nil && r.cfg.Verbosity > 1 {
		fmt.Fprintf(r.cfg.LogFile, "session %s: %v\n", id, err)
	}
	return state, err
}

// Play applies a complete move in game id; see engine.Game.Play.
func (r *Registry) Play(id string, m engine.Move) (engine.State, error) {
	var state engine.State
	err := r.Do(id, func(g *engine.Game) error {
		if err := g.Play(m); err != nil {
			return err
		}
		state = g.State()
		return nil
	})
	if err != nil && r.cfg.Verbosity > 1 {
		fmt.Fprintf(r.cfg.LogFile, "session %s: %v\n", id, err)
	}
	return state, err
}

// Snapshot returns an independent copy of game id.
func (r *Registry) Snapshot(id string) (*engine.Game, error) {
	var clone *engine.Game
	err := r.Do(id, func(g *engine.Game) error {
		clone = g.Clone()
		return nil
	})
	return clone, err
}

// FEN returns the FEN of game id.
func (r *Registry) FEN(id string) (string, error) {
	var s string
	err := r.Do(id, func(g *engine.Game) error {
		s = fen.Format(g)
		return nil
	})
	return s, err
}

// Remove discards game id.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[id]; !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}
	delete(r.games, id)

	if r.cfg.Verbosity > 0 {
		fmt.Fprintf(r.cfg.LogFile, "session %s removed (%d active)\n", id, len(r.games))
	}
	return nil
}

// Len returns the number of games held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}

// IDs returns the IDs of all games held, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := maps.Keys(r.games)
	r.mu.RUnlock()

	slices.Sort(ids)
	return ids
}
