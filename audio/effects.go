package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/cube-boxer/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping and cuts the stream at its total length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a single shaped note
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// chime plays notes back to back
func chime(freqs []float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(f, wave, parameter.ChimeNoteDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate)
	}
	return beep.Seq(notes...)
}

// Cue generators

// CreateHitSound generates a bright punch thump
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	d, a, r := parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease
	return beep.Take(rate.N(d), beep.Mix(
		newVolume(tone(660, WaveSine, d, a, r, rate), 0.7),
		newVolume(tone(1320, WaveSquare, d, a, r, rate), 0.15),
		newVolume(tone(0, WaveNoise, d/3, 0, d/3, rate), 0.2),
	))
}

// CreateComboSound generates a two-note rising hit
func CreateComboSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ComboSoundNoteDuration
	return beep.Seq(
		tone(880, WaveSine, d, parameter.HitSoundAttack, d/2, rate),
		tone(1174.66, WaveSine, d, parameter.HitSoundAttack, d/2, rate),
	)
}

// CreateWrongHandSound generates a harsh low buzz
func CreateWrongHandSound(rate beep.SampleRate) beep.Streamer {
	return tone(110, WaveSaw, parameter.WrongSoundDuration, parameter.WrongSoundAttack, parameter.WrongSoundRelease, rate)
}

// CreateTooWeakSound generates a dull soft thud
func CreateTooWeakSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(196, WaveSine, parameter.WeakSoundDuration, parameter.WeakSoundAttack, parameter.WeakSoundRelease, rate), 0.6)
}

// CreateMissSound generates a fading whoosh
func CreateMissSound(rate beep.SampleRate) beep.Streamer {
	return tone(0, WaveNoise, parameter.MissSoundDuration, parameter.MissSoundAttack, parameter.MissSoundRelease, rate)
}

// CreateForbiddenSound generates a dissonant alarm
func CreateForbiddenSound(rate beep.SampleRate) beep.Streamer {
	d, a, r := parameter.ForbiddenSoundDuration, parameter.ForbiddenSoundAttack, parameter.ForbiddenSoundRelease
	return beep.Take(rate.N(d), beep.Mix(
		newVolume(tone(92, WaveSquare, d, a, r, rate), 0.4),
		newVolume(tone(97, WaveSaw, d, a, r, rate), 0.4),
	))
}

// CreateCountdownSound generates a short beep from a sine tone generator
func CreateCountdownSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.TickSoundDuration
	sine, err := generators.SineTone(rate, 1000)
	if err != nil {
		return tone(1000, WaveSine, d, d/6, d/3, rate)
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, d/6, d/3, rate)
}

// CreatePhaseSound generates a rising major triad
func CreatePhaseSound(rate beep.SampleRate) beep.Streamer {
	return chime([]float64{1046.5, 1318.51, 1567.98}, WaveSine, rate)
}

// CreateWinSound generates a four-note fanfare
func CreateWinSound(rate beep.SampleRate) beep.Streamer {
	return chime([]float64{523.25, 659.25, 783.99, 1046.5}, WaveSquare, rate)
}

// CreateLoseSound generates a falling line
func CreateLoseSound(rate beep.SampleRate) beep.Streamer {
	return chime([]float64{392, 329.63, 261.63}, WaveSaw, rate)
}

// GetCue returns a fresh, finite streamer for cue scaled by the configured volumes
// Unknown cues return nil
func GetCue(cue Cue, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case CueHit:
		s = CreateHitSound(rate)
	case CueCombo:
		s = CreateComboSound(rate)
	case CueWrongHand:
		s = CreateWrongHandSound(rate)
	case CueTooWeak:
		s = CreateTooWeakSound(rate)
	case CueMiss:
		s = CreateMissSound(rate)
	case CueForbidden:
		s = CreateForbiddenSound(rate)
	case CueCountdown:
		s = CreateCountdownSound(rate)
	case CuePhase:
		s = CreatePhaseSound(rate)
	case CueWin:
		s = CreateWinSound(rate)
	case CueLose:
		s = CreateLoseSound(rate)
	default:
		return nil
	}

	return newVolume(s, cfg.CueVolumes[cue]*cfg.MasterVolume)
}
