package search

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/arbortrace/voxelcore/costfn"
	"github.com/arbortrace/voxelcore/heuristic"
	"github.com/arbortrace/voxelcore/slicemap"
	"github.com/arbortrace/voxelcore/voxel"
)

// DefaultCheckInterval is how many expansions pass between
// cancellation/timeout checks by default.
const DefaultCheckInterval = 10000

// Config bundles everything an Engine or BidirectionalEngine needs to
// run: the volume, its physical spacing, the pluggable oracles, and
// the optional progress/cancellation knobs. Accessor, Spacing, Cost,
// and Heuristic have no defaults and must be supplied; everything else
// has a sensible zero-ish default applied by NewConfig.
type Config struct {
	Accessor  voxel.Accessor
	Spacing   voxel.Spacing
	Cost      costfn.Oracle
	Heuristic heuristic.Oracle

	// Backend selects the sparse voxel map's per-slice storage
	// strategy. Defaults to slicemap.HashBackend.
	Backend slicemap.Backend

	// Connectivity selects the neighbor topology. Defaults to
	// voxel.Conn26, the richest connectivity the engine supports.
	Connectivity voxel.Connectivity

	// Timeout caps wall-clock run time; 0 disables the cap.
	Timeout time.Duration

	// ProgressInterval is the minimum wall-clock gap between
	// OnProgress calls; 0 disables progress reporting entirely.
	ProgressInterval time.Duration

	// CheckInterval is how many expansions pass between
	// cancellation/timeout checks. 0 is normalized to
	// DefaultCheckInterval by NewConfig.
	CheckInterval int

	// OnProgress, if non-nil, is invoked on the engine's own goroutine
	// at most once per ProgressInterval. Implementations must not
	// block: the engine's hot loop waits on this call.
	OnProgress func(Progress)

	// OnFinished, if non-nil, is invoked exactly once when the engine
	// terminates, before the engine's call returns.
	OnFinished func(Finished)

	// Logger receives lifecycle events (run start, periodic progress,
	// terminal outcome). Defaults to a disabled logger so library use
	// without logging configured stays silent.
	Logger zerolog.Logger
}

// Option configures a Config via functional options.
type Option func(*Config)

// WithBackend selects the sparse voxel map's storage backend.
func WithBackend(b slicemap.Backend) Option {
	return func(c *Config) { c.Backend = b }
}

// WithConnectivity selects the neighbor topology.
func WithConnectivity(c voxel.Connectivity) Option {
	return func(cfg *Config) { cfg.Connectivity = c }
}

// WithTimeout caps wall-clock run time. A zero or negative duration
// disables the cap.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithProgressInterval sets the minimum gap between progress callbacks.
func WithProgressInterval(d time.Duration) Option {
	return func(c *Config) { c.ProgressInterval = d }
}

// WithCheckInterval overrides how many expansions pass between
// cancellation/timeout checks.
func WithCheckInterval(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.CheckInterval = n
		}
	}
}

// WithOnProgress registers a periodic progress callback.
func WithOnProgress(fn func(Progress)) Option {
	return func(c *Config) { c.OnProgress = fn }
}

// WithOnFinished registers the terminal callback.
func WithOnFinished(fn func(Finished)) Option {
	return func(c *Config) { c.OnFinished = fn }
}

// WithLogger overrides the default disabled logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// NewConfig builds a Config from the required inputs and applies opts
// left to right, then normalizes zero-valued optional fields.
func NewConfig(acc voxel.Accessor, spacing voxel.Spacing, cost costfn.Oracle, heur heuristic.Oracle, opts ...Option) Config {
	cfg := Config{
		Accessor:      acc,
		Spacing:       spacing,
		Cost:          cost,
		Heuristic:     heur,
		Backend:       slicemap.HashBackend,
		Connectivity:  voxel.Conn26,
		CheckInterval: DefaultCheckInterval,
		Logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = DefaultCheckInterval
	}
	return cfg
}
