package pursuit

import (
	"github.com/google/uuid"

	"github.com/zeusync/purepursuit/pkg/observability/log"
)

// Option configures a Pursuer.
type Option func(*Config)

// Config holds the runtime settings of a Pursuer.
type Config struct {
	Name   string  // Identifies the pursuer in log entries
	Logger log.Log // Receives segment transitions and fallbacks
	Clamp  bool    // Keep intersection targets on the segment
}

func defaultConfig() Config {
	return Config{
		Name:   uuid.NewString(),
		Logger: log.NewNop(),
		Clamp:  true,
	}
}

// WithName sets the name reported in log entries. Defaults to a random UUID.
func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}

// WithLogger sets the logger. Defaults to a logger that discards everything.
func WithLogger(l log.Log) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithoutClamp returns intersections anywhere on the infinite line through
// the current segment instead of clamping them to the segment.
func WithoutClamp() Option {
	return func(c *Config) { c.Clamp = false }
}

// WithClamp sets clamping explicitly; see WithoutClamp.
func WithClamp(enabled bool) Option {
	return func(c *Config) { c.Clamp = enabled }
}
