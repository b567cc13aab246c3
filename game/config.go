package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/cube-boxer/parameter"
	"github.com/lixenwraith/cube-boxer/phase"
	"github.com/lixenwraith/cube-boxer/vmath"
)

// ErrInvalidConfig wraps every configuration validation failure
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the tunables of one game instance
type Config struct {
	BaseSpeed       float64 // m/s before phase scaling
	Schedule        phase.Schedule
	MinHitVelocity  float64 // inclusive
	LifeTime        time.Duration
	HistoryCapacity int // velocity samples kept per hand
	ForbiddenOdds   int // 1 in ForbiddenOdds spawns is forbidden
	SpawnAnchor     vmath.Vec3
	SpawnJitter     float64 // half range before phase scaling
	DestroyPlaneZ   float64
	MaxSpawns       int // 0 = unlimited
	MinScoreToWin   int
	Countdown       time.Duration // pre-game countdown, 0 = none
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		BaseSpeed:       parameter.BaseMoveSpeed,
		Schedule:        phase.DefaultSchedule(),
		MinHitVelocity:  parameter.MinHitVelocity,
		LifeTime:        parameter.TargetLifeTime,
		HistoryCapacity: parameter.VelocityHistory,
		ForbiddenOdds:   parameter.ForbiddenOdds,
		SpawnAnchor:     vmath.V3(parameter.SpawnAnchorX, parameter.SpawnAnchorY, parameter.SpawnAnchorZ),
		SpawnJitter:     parameter.SpawnJitterHalfRange,
		DestroyPlaneZ:   parameter.DestroyPlaneZ,
		MaxSpawns:       parameter.MaxSpawns,
		MinScoreToWin:   parameter.MinScoreToWin,
		Countdown:       parameter.Countdown,
	}
}

// Validate reports the first problem found, wrapped in ErrInvalidConfig
func (c Config) Validate() error {
	if err := c.Schedule.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch {
	case c.BaseSpeed <= 0:
		return fmt.Errorf("%w: base speed must be positive, got %v", ErrInvalidConfig, c.BaseSpeed)
	case c.LifeTime <= 0:
		return fmt.Errorf("%w: lifetime must be positive, got %v", ErrInvalidConfig, c.LifeTime)
	case c.HistoryCapacity < 2:
		return fmt.Errorf("%w: history capacity must be at least 2, got %d", ErrInvalidConfig, c.HistoryCapacity)
	case c.ForbiddenOdds < 1:
		return fmt.Errorf("%w: forbidden odds must be at least 1, got %d", ErrInvalidConfig, c.ForbiddenOdds)
	case c.MinHitVelocity < 0:
		return fmt.Errorf("%w: min hit velocity must not be negative, got %v", ErrInvalidConfig, c.MinHitVelocity)
	case c.SpawnJitter < 0:
		return fmt.Errorf("%w: spawn jitter must not be negative, got %v", ErrInvalidConfig, c.SpawnJitter)
	case c.MaxSpawns < 0:
		return fmt.Errorf("%w: max spawns must not be negative, got %d", ErrInvalidConfig, c.MaxSpawns)
	case c.MinScoreToWin < 0:
		return fmt.Errorf("%w: min score to win must not be negative, got %d", ErrInvalidConfig, c.MinScoreToWin)
	case c.Countdown < 0:
		return fmt.Errorf("%w: countdown must not be negative, got %v", ErrInvalidConfig, c.Countdown)
	case c.DestroyPlaneZ >= c.SpawnAnchor.Z:
		return fmt.Errorf("%w: destroy plane z=%v must lie behind spawn anchor z=%v", ErrInvalidConfig, c.DestroyPlaneZ, c.SpawnAnchor.Z)
	}
	return nil
}
