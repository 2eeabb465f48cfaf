package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFile sets the diagnostics writer. A nil writer discards output.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	if w == nil {
		w = io.Discard
	}
	b.cfg.LogFile = w
	return b
}

// WithPerftWorkers sets the number of perft goroutines.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	if n >= 1 {
		b.cfg.Perft.Workers = n
	}
	return b
}

// WithPerftCache enables the transposition cache with the given capacity.
func (b *ConfigBuilder) WithPerftCache(size int) *ConfigBuilder {
	if size >= 0 {
		b.cfg.Perft.CacheSize = size
	}
	return b
}

// WithStartFEN sets the position new registry games start from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Session.StartFEN = fen
	return b
}

// WithMaxGames limits how many games a registry holds at once.
func (b *ConfigBuilder) WithMaxGames(n int) *ConfigBuilder {
	if n >= 0 {
		b.cfg.Session.MaxGames = n
	}
	return b
}
