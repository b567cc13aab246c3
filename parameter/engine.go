package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the host frame interval (~60 FPS), one simulation tick per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta clamps a single tick after a stall so the simulation never jumps a whole phase
	MaxTickDelta = 250 * time.Millisecond
)

// Inbound Event Lanes (sizes must be powers of two)
const (
	// PoseLaneSize holds about two seconds of samples for both hands at 60 FPS
	PoseLaneSize = 256

	// ContactLaneSize bounds contacts waiting for the next tick
	ContactLaneSize = 64
)
