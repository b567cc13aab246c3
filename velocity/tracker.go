package velocity

import (
	"time"

	"github.com/lixenwraith/cube-boxer/target"
	"github.com/lixenwraith/cube-boxer/vmath"
)

// Sample is one time-stamped hand position
type Sample struct {
	Position vmath.Vec3
	Time     time.Duration
}

// history is a fixed-capacity ring holding the most recent samples
type history struct {
	samples []Sample
	next    int // write index
	count   int
}

func (h *history) push(s Sample) {
	h.samples[h.next] = s
	h.next = (h.next + 1) % len(h.samples)
	if h.count < len(h.samples) {
		h.count++
	}
}

// at returns the i-th newest sample (0 = newest)
func (h *history) at(i int) Sample {
	idx := (h.next - 1 - i + 2*len(h.samples)) % len(h.samples)
	return h.samples[idx]
}

// Tracker keeps a bounded position history per hand and derives instant speed
// Speed uses only the newest two samples; a single frame hitch can spike it
type Tracker struct {
	hands [target.HandCount]history
}

// NewTracker creates a tracker with the given per-hand capacity (minimum 2)
func NewTracker(capacity int) *Tracker {
	if capacity < 2 {
		capacity = 2
	}
	t := &Tracker{}
	for i := range t.hands {
		t.hands[i].samples = make([]Sample, capacity)
	}
	return t
}

// Sample appends one position for hand, overwriting the oldest when full
// Unknown hands are ignored
func (t *Tracker) Sample(hand target.Hand, pos vmath.Vec3, at time.Duration) {
	if !hand.Valid() {
		return
	}
	t.hands[hand].push(Sample{Position: pos, Time: at})
}

// InstantSpeed returns |p[last]-p[last-1]| / (t[last]-t[last-1]) in units per second
// Fewer than two samples or a non-positive time delta yield 0
func (t *Tracker) InstantSpeed(hand target.Hand) float64 {
	if !hand.Valid() {
		return 0
	}
	h := &t.hands[hand]
	if h.count < 2 {
		return 0
	}

	last, prev := h.at(0), h.at(1)
	dt := (last.Time - prev.Time).Seconds()
	if dt <= 0 {
		return 0
	}
	return vmath.V3Dist(last.Position, prev.Position) / dt
}

// Len returns the number of stored samples for hand
func (t *Tracker) Len(hand target.Hand) int {
	if !hand.Valid() {
		return 0
	}
	return t.hands[hand].count
}

// Capacity returns the per-hand ring size
func (t *Tracker) Capacity() int {
	return len(t.hands[0].samples)
}

// Reset drops all history
func (t *Tracker) Reset() {
	for i := range t.hands {
		h := &t.hands[i]
		clear(h.samples)
		h.next = 0
		h.count = 0
	}
}
