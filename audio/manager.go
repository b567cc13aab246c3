package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cube-boxer/parameter"
)

// Manager plays cues through a single mixer on the speaker
// Safe for concurrent use; every call is a no-op until Initialize succeeds or while muted
type Manager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      [CueCount]int
}

// NewManager creates a manager; nil cfg uses DefaultConfig
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Manager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	rate := beep.SampleRate(m.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferLength)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}

// SetMuted silences or restores cue playback
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted reports the mute state
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Play queues a cue on the mixer
func (m *Manager) Play(cue Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}

	s := GetCue(cue, m.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
	m.played[cue]++
}

// Played returns how many times cue reached the mixer
func (m *Manager) Played(cue Cue) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cue < 0 || cue >= CueCount {
		return 0
	}
	return m.played[cue]
}
