package game

import (
	"log/slog"
	"math/rand/v2"

	"github.com/lixenwraith/cube-boxer/status"
)

// Option customizes a Game at construction
type Option func(*Game)

// WithListener sets the outbound notification sink
func WithListener(l Listener) Option {
	return func(g *Game) {
		if l != nil {
			g.listener = l
		}
	}
}

// WithLogger sets the structured logger; default discards
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithRand sets the spawn random source
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithRegistry shares a metrics registry with the host
func WithRegistry(r *status.Registry) Option {
	return func(g *Game) {
		if r != nil {
			g.reg = r
		}
	}
}
