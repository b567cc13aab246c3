package parameter

import "time"

// Audio Output
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
	AudioMasterVolume = 0.6
)

// Cue Envelopes
const (
	HitSoundDuration = 90 * time.Millisecond
	HitSoundAttack   = 3 * time.Millisecond
	HitSoundRelease  = 60 * time.Millisecond

	ComboSoundNoteDuration = 70 * time.Millisecond

	WrongSoundDuration = 160 * time.Millisecond
	WrongSoundAttack   = 5 * time.Millisecond
	WrongSoundRelease  = 40 * time.Millisecond

	WeakSoundDuration = 120 * time.Millisecond
	WeakSoundAttack   = 10 * time.Millisecond
	WeakSoundRelease  = 80 * time.Millisecond

	MissSoundDuration = 200 * time.Millisecond
	MissSoundAttack   = 20 * time.Millisecond
	MissSoundRelease  = 150 * time.Millisecond

	ForbiddenSoundDuration = 350 * time.Millisecond
	ForbiddenSoundAttack   = 5 * time.Millisecond
	ForbiddenSoundRelease  = 120 * time.Millisecond

	TickSoundDuration = 60 * time.Millisecond

	ChimeNoteDuration = 140 * time.Millisecond
	ChimeAttack       = 5 * time.Millisecond
	ChimeRelease      = 100 * time.Millisecond
)
