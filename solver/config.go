package solver

import (
	"math"
	"time"

	"github.com/mwpf-decode/mwpf/plugins"
	"github.com/mwpf-decode/mwpf/primalmodule"
	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGrowingStrategy grows every defect vertex's dual node at once.
	DefaultGrowingStrategy = primalmodule.MultipleClusters

	// DefaultClusterNodeLimit is "no limit": a cluster never falls back to
	// the timeout-style resolution purely because of its vertex count.
	DefaultClusterNodeLimit = uint64(math.MaxUint64)

	// DefaultTimeout is "no timeout": Decode runs until every cluster
	// resolves or is proven unbounded, however long that takes.
	DefaultTimeout = time.Duration(0)
)

// Option mutates a Config. Safe to apply in any order; the last WithX call
// for a given field wins.
type Option func(*Config)

// Config is the solver's configuration, always assembled via gatherOptions
// from zero or more Option values layered on top of the documented
// defaults above.
type Config struct {
	growingStrategy  primalmodule.GrowingStrategy
	timeout          time.Duration // zero means no deadline
	clusterNodeLimit uint64
	pluginList       []plugins.Plugin
	logger           zerolog.Logger
}

// WithGrowingStrategy selects SingleCluster or MultipleClusters.
func WithGrowingStrategy(strategy primalmodule.GrowingStrategy) Option {
	return func(c *Config) { c.growingStrategy = strategy }
}

// WithTimeout sets the wall-clock budget for one Solve call. A zero or
// negative duration means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.timeout = d }
}

// WithClusterNodeLimit sets the vertex-count budget past which a cluster is
// given up on and finalized using its best echelon solution.
func WithClusterNodeLimit(limit uint64) Option {
	return func(c *Config) { c.clusterNodeLimit = limit }
}

// WithPlugins sets the ordered plugin list tried for every cluster that
// still needs progress. See ParsePluginList to build one from the
// recognized string identifiers.
func WithPlugins(pluginList []plugins.Plugin) Option {
	return func(c *Config) { c.pluginList = pluginList }
}

// WithLogger injects a structured logger for decode progress. The zero
// value (the default) is zerolog.Nop(), matching a service in this corpus
// that makes logging optional rather than global.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) { c.logger = logger }
}

func gatherOptions(opts ...Option) Config {
	c := Config{
		growingStrategy:  DefaultGrowingStrategy,
		timeout:          DefaultTimeout,
		clusterNodeLimit: DefaultClusterNodeLimit,
		pluginList:       []plugins.Plugin{plugins.UnionFind{}},
		logger:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
