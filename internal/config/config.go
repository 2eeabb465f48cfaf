// Package config provides configuration for the perft runner and the
// session registry.
package config

import (
	"io"
	"os"
	"runtime"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summaries, 2=running commentary

	// LogFile receives diagnostics. It is never nil after NewConfig.
	LogFile io.Writer

	Perft   *PerftConfig
	Session *SessionConfig
}

// PerftConfig holds settings for perft node counting.
type PerftConfig struct {
	// Workers is the number of goroutines counting root moves in parallel
	Workers int

	// BufferSize is the job queue length of the worker pool
	BufferSize int

	// CacheSize limits the transposition cache (0 disables it)
	CacheSize int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
		CacheSize:  0,
	}
}

// SessionConfig holds settings for the game registry.
type SessionConfig struct {
	// StartFEN is the position new games start from; empty means the
	// standard starting position
	StartFEN string

	// MaxGames limits concurrently held games (0 = unlimited)
	MaxGames int
}

// NewSessionConfig creates a SessionConfig with default values.
func NewSessionConfig() *SessionConfig {
	return &SessionConfig{}
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: 0,
		LogFile:   os.Stderr,
		Perft:     NewPerftConfig(),
		Session:   NewSessionConfig(),
	}
}
