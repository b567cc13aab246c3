package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/cube-boxer/game"
	"github.com/lixenwraith/cube-boxer/parameter"
	"github.com/lixenwraith/cube-boxer/phase"
	"github.com/lixenwraith/cube-boxer/vmath"
)

// EnvPrefix prefixes every environment override, e.g. BOXER_GAME_BASE_SPEED
const EnvPrefix = "BOXER_"

// ErrUnknownKey reports a TOML key that maps to no setting
var ErrUnknownKey = errors.New("unknown config key")

// Config is the file and environment view of the tunables
// Precedence: defaults < TOML file < environment < command line flags (applied by the host)
type Config struct {
	Game   GameConfig  `toml:"game" envPrefix:"GAME_"`
	Easy   PhaseConfig `toml:"easy" envPrefix:"EASY_"`
	Normal PhaseConfig `toml:"normal" envPrefix:"NORMAL_"`
	Hard   PhaseConfig `toml:"hard" envPrefix:"HARD_"`
	Host   HostConfig  `toml:"host" envPrefix:"HOST_"`

	// Keys maps a key name to an action name, e.g. "q" = "quit"; file only
	Keys map[string]string `toml:"keys"`
}

// GameConfig mirrors game.Config scalars
type GameConfig struct {
	BaseSpeed       float64       `toml:"base_speed" env:"BASE_SPEED"`
	MinHitVelocity  float64       `toml:"min_hit_velocity" env:"MIN_HIT_VELOCITY"`
	LifeTime        time.Duration `toml:"lifetime" env:"LIFETIME"`
	HistoryCapacity int           `toml:"history_capacity" env:"HISTORY_CAPACITY"`
	ForbiddenOdds   int           `toml:"forbidden_odds" env:"FORBIDDEN_ODDS"`
	AnchorX         float64       `toml:"anchor_x" env:"ANCHOR_X"`
	AnchorY         float64       `toml:"anchor_y" env:"ANCHOR_Y"`
	AnchorZ         float64       `toml:"anchor_z" env:"ANCHOR_Z"`
	SpawnJitter     float64       `toml:"spawn_jitter" env:"SPAWN_JITTER"`
	DestroyPlaneZ   float64       `toml:"destroy_plane_z" env:"DESTROY_PLANE_Z"`
	MaxSpawns       int           `toml:"max_spawns" env:"MAX_SPAWNS"`
	MinScoreToWin   int           `toml:"min_score_to_win" env:"MIN_SCORE_TO_WIN"`
	Countdown       time.Duration `toml:"countdown" env:"COUNTDOWN"`
}

// PhaseConfig mirrors phase.Settings
type PhaseConfig struct {
	Duration             time.Duration `toml:"duration" env:"DURATION"`
	SpawnInterval        time.Duration `toml:"spawn_interval" env:"SPAWN_INTERVAL"`
	SpeedMultiplier      float64       `toml:"speed_multiplier" env:"SPEED_MULTIPLIER"`
	SpawnRangeMultiplier float64       `toml:"spawn_range_multiplier" env:"SPAWN_RANGE_MULTIPLIER"`
	RestTime             time.Duration `toml:"rest_time" env:"REST_TIME"`
}

// HostConfig holds terminal host settings
type HostConfig struct {
	Seed  uint64 `toml:"seed" env:"SEED"` // 0 = random
	Mute  bool   `toml:"mute" env:"MUTE"`
	Debug bool   `toml:"debug" env:"DEBUG"`
}

// Default returns the stock configuration with the host countdown
func Default() Config {
	sched := phase.DefaultSchedule()
	return Config{
		Game: GameConfig{
			BaseSpeed:       parameter.BaseMoveSpeed,
			MinHitVelocity:  parameter.MinHitVelocity,
			LifeTime:        parameter.TargetLifeTime,
			HistoryCapacity: parameter.VelocityHistory,
			ForbiddenOdds:   parameter.ForbiddenOdds,
			AnchorX:         parameter.SpawnAnchorX,
			AnchorY:         parameter.SpawnAnchorY,
			AnchorZ:         parameter.SpawnAnchorZ,
			SpawnJitter:     parameter.SpawnJitterHalfRange,
			DestroyPlaneZ:   parameter.DestroyPlaneZ,
			MaxSpawns:       parameter.MaxSpawns,
			MinScoreToWin:   parameter.MinScoreToWin,
			Countdown:       parameter.HostCountdown,
		},
		Easy:   fromSettings(sched[phase.Easy]),
		Normal: fromSettings(sched[phase.Normal]),
		Hard:   fromSettings(sched[phase.Hard]),
	}
}

// Load applies the TOML file at path (skipped when empty) then environment overrides over the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("config %s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv overlays BOXER_ prefixed environment variables onto target
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// GameConfig converts to a validated game.Config
func (c Config) GameConfig() (game.Config, error) {
	gc := game.Config{
		BaseSpeed: c.Game.BaseSpeed,
		Schedule: phase.Schedule{
			phase.Easy:   c.Easy.settings(),
			phase.Normal: c.Normal.settings(),
			phase.Hard:   c.Hard.settings(),
		},
		MinHitVelocity:  c.Game.MinHitVelocity,
		LifeTime:        c.Game.LifeTime,
		HistoryCapacity: c.Game.HistoryCapacity,
		ForbiddenOdds:   c.Game.ForbiddenOdds,
		SpawnAnchor:     vmath.V3(c.Game.AnchorX, c.Game.AnchorY, c.Game.AnchorZ),
		SpawnJitter:     c.Game.SpawnJitter,
		DestroyPlaneZ:   c.Game.DestroyPlaneZ,
		MaxSpawns:       c.Game.MaxSpawns,
		MinScoreToWin:   c.Game.MinScoreToWin,
		Countdown:       c.Game.Countdown,
	}
	if err := gc.Validate(); err != nil {
		return game.Config{}, err
	}
	return gc, nil
}

func (p PhaseConfig) settings() phase.Settings {
	return phase.Settings{
		Duration:             p.Duration,
		SpawnInterval:        p.SpawnInterval,
		SpeedMultiplier:      p.SpeedMultiplier,
		SpawnRangeMultiplier: p.SpawnRangeMultiplier,
		RestTime:             p.RestTime,
	}
}

func fromSettings(s phase.Settings) PhaseConfig {
	return PhaseConfig{
		Duration:             s.Duration,
		SpawnInterval:        s.SpawnInterval,
		SpeedMultiplier:      s.SpeedMultiplier,
		SpawnRangeMultiplier: s.SpawnRangeMultiplier,
		RestTime:             s.RestTime,
	}
}
