package event

import (
	"time"

	"github.com/lixenwraith/cube-boxer/target"
	"github.com/lixenwraith/cube-boxer/vmath"
)

// InputType represents the type of inbound event
type InputType uint8

const (
	// InputPose is a hand position sample
	// Trigger: host frame, once per hand | Consumer: velocity tracker
	InputPose InputType = iota

	// InputContact reports a hand touching a target
	// Trigger: host collision detection | Consumer: hit resolver
	InputContact
)

func (t InputType) String() string {
	switch t {
	case InputPose:
		return "Pose"
	case InputContact:
		return "Contact"
	default:
		return "Unknown"
	}
}

// Input is one inbound event, a flat value so a lane never allocates per push
// Position is set for poses, TargetID for contacts
type Input struct {
	Type     InputType
	Hand     target.Hand
	Position vmath.Vec3
	TargetID target.ID
	Time     time.Duration // host clock at capture
}

// Pose builds a pose event
func Pose(hand target.Hand, pos vmath.Vec3, at time.Duration) Input {
	return Input{Type: InputPose, Hand: hand, Position: pos, Time: at}
}

// Contact builds a contact event
func Contact(hand target.Hand, id target.ID, at time.Duration) Input {
	return Input{Type: InputContact, Hand: hand, TargetID: id, Time: at}
}
