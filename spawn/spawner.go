package spawn

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/cube-boxer/phase"
	"github.com/lixenwraith/cube-boxer/target"
	"github.com/lixenwraith/cube-boxer/vmath"
)

// Sink receives spawned targets; implemented by the simulation
type Sink interface {
	Add(kind target.Kind, pos vmath.Vec3, now time.Duration) *target.Target
}

// Config holds spawn placement and odds
type Config struct {
	Anchor        vmath.Vec3 // fixed spawn point
	HalfRange     float64    // jitter half width before phase range scaling
	ForbiddenOdds int        // draw size; a draw of 0 spawns a forbidden target
	MaxSpawns     int        // 0 = unlimited
}

// Spawner decides whether and what to spawn on each tick
// Polling semantics: after each attempt the next deadline is now + the interval of the phase at that moment,
// an in-flight wait is never rescaled and suppressed attempts still consume their slot
type Spawner struct {
	cfg     Config
	rng     *rand.Rand
	nextAt  time.Duration
	spawned int
}

// New creates a spawner; the first attempt is due at time zero
func New(cfg Config, rng *rand.Rand) *Spawner {
	if cfg.ForbiddenOdds < 1 {
		cfg.ForbiddenOdds = 1
	}
	return &Spawner{cfg: cfg, rng: rng}
}

// Reset rearms the spawner so the next attempt is due at now
func (s *Spawner) Reset(now time.Duration) {
	s.nextAt = now
	s.spawned = 0
}

// Tick performs at most one spawn attempt
// allowed is false during rest; the deadline still advances so no burst follows the rest
func (s *Spawner) Tick(now time.Duration, settings phase.Settings, allowed bool, sink Sink) *target.Target {
	if now < s.nextAt {
		return nil
	}
	s.nextAt = now + settings.SpawnInterval

	if !allowed || s.Exhausted() {
		return nil
	}

	kind := s.drawKind()
	pos := s.drawPosition(settings.SpawnRangeMultiplier)
	s.spawned++
	return sink.Add(kind, pos, now)
}

// drawKind: uniform [0, odds), 0 is forbidden, otherwise a fair left/right coin
func (s *Spawner) drawKind() target.Kind {
	if s.rng.IntN(s.cfg.ForbiddenOdds) == 0 {
		return target.KindForbidden
	}
	if s.rng.IntN(2) == 0 {
		return target.KindLeft
	}
	return target.KindRight
}

// drawPosition jitters X and Y independently within +/- HalfRange*rangeMult
func (s *Spawner) drawPosition(rangeMult float64) vmath.Vec3 {
	half := s.cfg.HalfRange * rangeMult
	offset := vmath.V3(
		(s.rng.Float64()*2-1)*half,
		(s.rng.Float64()*2-1)*half,
		0,
	)
	return vmath.V3Add(s.cfg.Anchor, offset)
}

// Exhausted reports whether the spawn cap has been reached
func (s *Spawner) Exhausted() bool {
	return s.cfg.MaxSpawns > 0 && s.spawned >= s.cfg.MaxSpawns
}

// Spawned returns the number of targets created since the last reset
func (s *Spawner) Spawned() int {
	return s.spawned
}

// NextAttempt returns the game time of the next due attempt
func (s *Spawner) NextAttempt() time.Duration {
	return s.nextAt
}
