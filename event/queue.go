package event

import "github.com/lixenwraith/cube-boxer/parameter"

// Queue carries hand input from any goroutine to the game tick
// Poses and contacts travel in separate lanes so a flood of samples can never push out a contact
//   - Pose lane: when full the oldest sample is dropped; velocity only reads the newest ones
//   - Contact lane: when full the incoming contact is dropped; the earliest contact on a target decides it
//
// Thread-Safety: Push from any number of producers, Drain from the tick goroutine
type Queue struct {
	poses    *lane
	contacts *lane
}

// NewQueue creates empty lanes sized by parameter
func NewQueue() *Queue {
	return &Queue{
		poses:    newLane(parameter.PoseLaneSize, true),
		contacts: newLane(parameter.ContactLaneSize, false),
	}
}

// Push routes ev to its lane; unknown types are ignored
func (q *Queue) Push(ev Input) {
	switch ev.Type {
	case InputPose:
		q.poses.push(ev)
	case InputContact:
		q.contacts.push(ev)
	}
}

// Drain returns pending poses and contacts, each in arrival order
func (q *Queue) Drain() (poses, contacts []Input) {
	return q.poses.drain(nil), q.contacts.drain(nil)
}

// Len returns the approximate number of pending entries
func (q *Queue) Len() int {
	return q.poses.len() + q.contacts.len()
}

// TakeDropped returns the drop counts since the previous call and clears them
func (q *Queue) TakeDropped() (poses, contacts uint64) {
	return q.poses.dropped.Swap(0), q.contacts.dropped.Swap(0)
}

// Discard drops every pending entry without counting it as dropped
func (q *Queue) Discard() {
	for {
		_, p := q.poses.poll()
		_, c := q.contacts.poll()
		if !p && !c {
			return
		}
	}
}
