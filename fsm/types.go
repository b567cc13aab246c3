package fsm

import "time"

// StateID is a unique identifier for a node
type StateID int

// StateNone marks an uninitialized machine and the parent of top-level nodes
const StateNone StateID = 0

// Event is an external trigger routed through the active path
type Event uint8

// EventTimeout fires when the leaf has spent its Timeout in state
// Raised by Update, never passed to HandleEvent
const EventTimeout Event = 0

// Machine is a hierarchical state machine with a single active leaf
// T is the context passed to actions and guards
type Machine[T any] struct {
	// Graph data, immutable after CompilePaths
	nodes   map[StateID]*Node[T]
	initial StateID

	// Runtime state
	active      StateID       // current leaf
	timeInState time.Duration // elapsed in the current leaf, including carried overflow
	activePath  []StateID     // root -> leaf
}

// Node is a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from the top-level ancestor to this node for LCA lookup
	Path []StateID

	// Timeout > 0 raises EventTimeout once TimeInState reaches it
	Timeout time.Duration

	OnEnter []Action[T]
	OnExit  []Action[T]

	// Transitions in evaluation priority
	Transitions []Transition[T]
}

// Transition links a node to a target on an event
type Transition[T any] struct {
	TargetID StateID
	Event    Event
	Guard    Guard[T] // nil = always true
}

// Action is a side effect run on enter or exit
type Action[T any] func(ctx T)

// Guard returns true if the transition should occur
type Guard[T any] func(ctx T) bool
