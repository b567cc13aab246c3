package render

import (
	"time"

	"github.com/lixenwraith/cube-boxer/game"
	"github.com/lixenwraith/cube-boxer/phase"
	"github.com/lixenwraith/cube-boxer/status"
	"github.com/lixenwraith/cube-boxer/target"
	"github.com/lixenwraith/cube-boxer/vmath"
)

// View is everything one frame draws, captured by the host after Tick
type View struct {
	Targets []target.Target
	Hands   [target.HandCount]vmath.Vec3
	Speeds  [target.HandCount]float64

	Phase     phase.Phase
	Remaining time.Duration
	Resting   bool

	Running      bool
	CountingDown bool
	Countdown    int

	Score     int
	Combo     int
	BestCombo int
	Goal      int // score needed to win

	Status  string // transient feedback line
	Muted   bool
	Metrics []status.Metric

	Result *game.Result // set once the run finished
}
