package parameter

import "time"

// Target Movement
const (
	// BaseMoveSpeed is the target travel speed in m/s before phase scaling
	BaseMoveSpeed = 5.0

	// TargetLifeTime is how long an unresolved target survives before it counts as missed
	TargetLifeTime = 10 * time.Second

	// SpawnAnchorX, SpawnAnchorY, SpawnAnchorZ locate the spawn point in front of the player
	SpawnAnchorX = 0.0
	SpawnAnchorY = 1.3
	SpawnAnchorZ = 12.0

	// SpawnJitterHalfRange is the half width of the jitter square before range scaling
	SpawnJitterHalfRange = 0.5

	// DestroyPlaneZ is the plane behind the player; crossing it is a miss
	DestroyPlaneZ = -1.0
)

// Spawn Odds
const (
	// ForbiddenOdds is the size of the kind draw; a draw of 0 yields a forbidden target (1/20)
	ForbiddenOdds = 20

	// MaxSpawns caps total spawns per run, 0 disables the cap
	MaxSpawns = 0
)

// Hit Policy
const (
	// MinHitVelocity is the minimum instant hand speed (m/s) for a hit to count
	MinHitVelocity = 2.0

	// VelocityHistory is the per-hand sample ring capacity
	VelocityHistory = 10

	// ComboTierTwo is the combo at which a hit is worth 2 points
	ComboTierTwo = 5

	// ComboTierThree is the combo at which a hit is worth 3 points
	ComboTierThree = 20
)

// Run Outcome
const (
	// MinScoreToWin is the final score needed for a successful run
	MinScoreToWin = 100

	// Countdown is the pre-game countdown; the core default is none, the terminal host uses HostCountdown
	Countdown     = 0 * time.Second
	HostCountdown = 5 * time.Second
)

// Phase Table
const (
	EasyDuration      = 20 * time.Second
	EasySpawnInterval = 1000 * time.Millisecond
	EasySpeedMult     = 1.0
	EasyRangeMult     = 1.0
	EasyRestTime      = 8 * time.Second

	NormalDuration      = 20 * time.Second
	NormalSpawnInterval = 750 * time.Millisecond
	NormalSpeedMult     = 1.3
	NormalRangeMult     = 1.3
	NormalRestTime      = 8 * time.Second

	HardDuration      = 20 * time.Second
	HardSpawnInterval = 500 * time.Millisecond
	HardSpeedMult     = 1.6
	HardRangeMult     = 1.6
	HardRestTime      = 0
)
