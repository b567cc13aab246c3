package input

import (
	"math"
	"time"

	"github.com/lixenwraith/cube-boxer/parameter"
	"github.com/lixenwraith/cube-boxer/target"
	"github.com/lixenwraith/cube-boxer/vmath"
)

// Contact is a hand entering a target's contact box
type Contact struct {
	Hand     target.Hand
	TargetID target.ID
}

type touch struct {
	hand target.Hand
	id   target.ID
}

// Hands turns keyboard intents into per-frame hand poses and detects contacts
// Strikes displace a hand forward for exactly one frame
// Lateral moves set a goal the hand slides toward at HandSlideSpeed
type Hands struct {
	rest     [target.HandCount]vmath.Vec3
	goalX    [target.HandCount]float64
	reach    [target.HandCount]float64 // pending forward displacement for the next frame
	touching map[touch]struct{}
}

// NewHands places both hands at their resting positions
func NewHands() *Hands {
	h := &Hands{touching: make(map[touch]struct{})}
	h.Reset()
	return h
}

// Reset recenters both hands and forgets current overlaps
func (h *Hands) Reset() {
	h.rest[target.HandLeft] = vmath.V3(-parameter.HandStartOffsetX, parameter.HandY, parameter.HandRestZ)
	h.rest[target.HandRight] = vmath.V3(parameter.HandStartOffsetX, parameter.HandY, parameter.HandRestZ)
	for i := range h.rest {
		h.goalX[i] = h.rest[i].X
	}
	h.reach = [target.HandCount]float64{}
	clear(h.touching)
}

// Apply handles a hand intent; other intents are ignored
func (h *Hands) Apply(in Intent) {
	if !in.Type.HandIntent() || !in.Hand.Valid() {
		return
	}

	switch in.Type {
	case IntentMoveLeft:
		h.shift(in.Hand, -parameter.HandStepX)
	case IntentMoveRight:
		h.shift(in.Hand, parameter.HandStepX)
	case IntentPunch:
		h.reach[in.Hand] = parameter.PunchReach
	case IntentJab:
		h.reach[in.Hand] = math.Max(h.reach[in.Hand], parameter.JabReach)
	}
}

func (h *Hands) shift(hand target.Hand, dx float64) {
	x := h.goalX[hand] + dx
	h.goalX[hand] = math.Max(-parameter.HandLimitX, math.Min(parameter.HandLimitX, x))
}

// Frame slides hands toward their goals over dt, returns this frame's poses and consumes pending strikes
func (h *Hands) Frame(dt time.Duration) [target.HandCount]vmath.Vec3 {
	maxStep := parameter.HandSlideSpeed * dt.Seconds()

	var poses [target.HandCount]vmath.Vec3
	for i := range poses {
		if diff := h.goalX[i] - h.rest[i].X; math.Abs(diff) <= maxStep {
			h.rest[i].X = h.goalX[i]
		} else {
			h.rest[i].X += math.Copysign(maxStep, diff)
		}
		poses[i] = vmath.V3Add(h.rest[i], vmath.V3(0, 0, h.reach[i]))
		h.reach[i] = 0
	}
	return poses
}

// Rest returns the current resting position of hand, strikes excluded
func (h *Hands) Rest(hand target.Hand) vmath.Vec3 {
	return h.rest[hand]
}

// Detect reports hands that entered a target's contact box since the previous call
// Overlap uses the top-down X/Z footprint; a pair stays silent until it separates
func (h *Hands) Detect(poses [target.HandCount]vmath.Vec3, targets []target.Target) []Contact {
	var contacts []Contact
	current := make(map[touch]struct{}, len(h.touching))

	for _, t := range targets {
		if !t.Active() {
			continue
		}
		for hand, pose := range poses {
			if !overlaps(pose, t.Position) {
				continue
			}
			key := touch{hand: target.Hand(hand), id: t.ID}
			current[key] = struct{}{}
			if _, already := h.touching[key]; !already {
				contacts = append(contacts, Contact{Hand: key.hand, TargetID: t.ID})
			}
		}
	}

	h.touching = current
	return contacts
}

func overlaps(hand, pos vmath.Vec3) bool {
	return math.Abs(pos.X-hand.X) <= parameter.ContactHalfWidth &&
		math.Abs(pos.Z-hand.Z) <= parameter.ContactHalfDepth
}
