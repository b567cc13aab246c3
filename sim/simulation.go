package sim

import (
	"time"

	"github.com/lixenwraith/cube-boxer/target"
	"github.com/lixenwraith/cube-boxer/vmath"
)

// MissReason tells why an active target was resolved as missed
type MissReason uint8

const (
	MissBoundary MissReason = iota // crossed the destroy plane
	MissTimeout                    // outlived its lifetime
)

func (r MissReason) String() string {
	if r == MissBoundary {
		return "boundary"
	}
	return "timeout"
}

// Miss is emitted for every target resolved as missed during a step
type Miss struct {
	Target target.Target
	Reason MissReason
}

// Config holds the movement and expiry constants
type Config struct {
	BaseSpeed     float64       // m/s before phase scaling
	LifeTime      time.Duration // unresolved targets miss after this age
	DestroyPlaneZ float64       // crossing at or below this Z is a miss
}

// Simulation owns the live target set
// Targets are removed within the tick they resolve; none are reused
type Simulation struct {
	cfg    Config
	live   []*target.Target // spawn order
	byID   map[target.ID]*target.Target
	nextID target.ID
}

// New creates an empty simulation
func New(cfg Config) *Simulation {
	return &Simulation{
		cfg:    cfg,
		byID:   make(map[target.ID]*target.Target),
		nextID: 1,
	}
}

// Add creates an active target and takes ownership of it
func (s *Simulation) Add(kind target.Kind, pos vmath.Vec3, now time.Duration) *target.Target {
	t := target.New(s.nextID, kind, pos, now)
	s.nextID++
	s.live = append(s.live, t)
	s.byID[t.ID] = t
	return t
}

// Get returns a live target by id
func (s *Simulation) Get(id target.ID) (*target.Target, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// Remove drops a target from the live set, returns false if unknown
func (s *Simulation) Remove(id target.ID) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, t := range s.live {
		if t.ID == id {
			s.live = append(s.live[:i], s.live[i+1:]...)
			break
		}
	}
	return true
}

// Step advances every active target and resolves misses
// Movement first, then boundary check, then timeout check
func (s *Simulation) Step(dt time.Duration, now time.Duration, speedMultiplier float64) []Miss {
	var misses []Miss
	distance := s.cfg.BaseSpeed * speedMultiplier * dt.Seconds()

	kept := s.live[:0]
	for _, t := range s.live {
		if !t.Active() {
			delete(s.byID, t.ID)
			continue
		}

		t.Position = vmath.V3Add(t.Position, vmath.V3Scale(vmath.Back, distance))

		reason, missed := s.missReason(t, now)
		if missed && t.Resolve(target.OutcomeMissed) {
			misses = append(misses, Miss{Target: *t, Reason: reason})
			delete(s.byID, t.ID)
			continue
		}
		kept = append(kept, t)
	}
	clear(s.live[len(kept):])
	s.live = kept

	return misses
}

func (s *Simulation) missReason(t *target.Target, now time.Duration) (MissReason, bool) {
	if t.Position.Z <= s.cfg.DestroyPlaneZ {
		return MissBoundary, true
	}
	if t.Age(now) >= s.cfg.LifeTime {
		return MissTimeout, true
	}
	return 0, false
}

// Len returns the number of live targets
func (s *Simulation) Len() int {
	return len(s.live)
}

// Snapshot copies live targets in spawn order for rendering
func (s *Simulation) Snapshot() []target.Target {
	out := make([]target.Target, len(s.live))
	for i, t := range s.live {
		out[i] = *t
	}
	return out
}

// Clear discards every live target without resolving it, returns how many were dropped
// Ids keep increasing so stale contacts never match a new target
func (s *Simulation) Clear() int {
	n := len(s.live)
	clear(s.live)
	s.live = s.live[:0]
	clear(s.byID)
	return n
}
