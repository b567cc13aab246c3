package parameter

// Keyboard Hands
const (
	// HandRestZ is the resting depth of both hands
	HandRestZ = 0.0

	// HandY is the fixed height of both hands
	HandY = 1.3

	// HandStartOffsetX is the resting lateral offset of each hand from center
	HandStartOffsetX = 0.35

	// HandStepX is how far one key press moves a hand's lateral goal
	HandStepX = 0.15

	// HandSlideSpeed (m/s) is how fast a hand travels toward its lateral goal
	// Stays below MinHitVelocity so sidestepping into a target never counts as a hit
	HandSlideSpeed = 1.5

	// HandLimitX clamps lateral hand movement
	HandLimitX = 1.2

	// PunchReach is the forward displacement of a strong punch within one frame
	PunchReach = 0.6

	// JabReach is the forward displacement of a weak jab within one frame
	JabReach = 0.02

	// ContactHalfWidth is the lateral half width of a hand's contact box
	ContactHalfWidth = 0.45

	// ContactHalfDepth is the depth half extent of a hand's contact box
	ContactHalfDepth = 0.3
)

// HUD
const (
	// StatusMessageFrames is how many frames a resolution message stays on the status line
	StatusMessageFrames = 45

	// FieldMaxWidth caps the playfield width in cells
	FieldMaxWidth = 61
)
