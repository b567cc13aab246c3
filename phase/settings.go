package phase

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/cube-boxer/parameter"
)

// Sentinel errors
var (
	ErrInvalidDuration = errors.New("phase duration must be positive")
	ErrInvalidInterval = errors.New("spawn interval must be positive")
	ErrNegativeValue   = errors.New("phase settings must not be negative")
)

// Settings are the immutable timing and spawn parameters of one phase
type Settings struct {
	Duration             time.Duration // active spawning time
	SpawnInterval        time.Duration // time between spawn attempts
	SpeedMultiplier      float64
	SpawnRangeMultiplier float64
	RestTime             time.Duration // spawn pause before transition, 0 for none
}

// Span is the full length of the phase including rest
func (s Settings) Span() time.Duration {
	return s.Duration + s.RestTime
}

// Validate rejects settings the simulation cannot run on
func (s Settings) Validate() error {
	if s.SpeedMultiplier < 0 || s.SpawnRangeMultiplier < 0 || s.RestTime < 0 {
		return ErrNegativeValue
	}
	if s.Duration <= 0 {
		return ErrInvalidDuration
	}
	if s.SpawnInterval <= 0 {
		return ErrInvalidInterval
	}
	return nil
}

// Schedule is the static per-phase table indexed by Easy, Normal, Hard
type Schedule [Count]Settings

// DefaultSchedule returns the stock three-phase table
func DefaultSchedule() Schedule {
	return Schedule{
		Easy: {
			Duration:             parameter.EasyDuration,
			SpawnInterval:        parameter.EasySpawnInterval,
			SpeedMultiplier:      parameter.EasySpeedMult,
			SpawnRangeMultiplier: parameter.EasyRangeMult,
			RestTime:             parameter.EasyRestTime,
		},
		Normal: {
			Duration:             parameter.NormalDuration,
			SpawnInterval:        parameter.NormalSpawnInterval,
			SpeedMultiplier:      parameter.NormalSpeedMult,
			SpawnRangeMultiplier: parameter.NormalRangeMult,
			RestTime:             parameter.NormalRestTime,
		},
		Hard: {
			Duration:             parameter.HardDuration,
			SpawnInterval:        parameter.HardSpawnInterval,
			SpeedMultiplier:      parameter.HardSpeedMult,
			SpawnRangeMultiplier: parameter.HardRangeMult,
			RestTime:             parameter.HardRestTime,
		},
	}
}

// Validate checks every entry, naming the offending phase
func (s Schedule) Validate() error {
	for i, st := range s {
		if err := st.Validate(); err != nil {
			return fmt.Errorf("%s phase: %w", Phase(i), err)
		}
	}
	return nil
}

// For returns the settings of p; Finished and unknown phases report false
func (s Schedule) For(p Phase) (Settings, bool) {
	if p < Easy || p >= Finished {
		return Settings{}, false
	}
	return s[p], true
}
