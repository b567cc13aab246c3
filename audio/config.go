package audio

import "github.com/lixenwraith/cube-boxer/parameter"

// Config holds audio output settings
type Config struct {
	SampleRate   int
	MasterVolume float64
	CueVolumes   [CueCount]float64
}

// DefaultConfig returns the stock mix
func DefaultConfig() *Config {
	cfg := &Config{
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
	}
	for i := range cfg.CueVolumes {
		cfg.CueVolumes[i] = 1.0
	}
	cfg.CueVolumes[CueMiss] = 0.5
	cfg.CueVolumes[CueCountdown] = 0.7
	return cfg
}
