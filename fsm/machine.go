package fsm

import (
	"fmt"
	"slices"
	"time"
)

// NewMachine creates an empty machine
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:      make(map[StateID]*Node[T]),
		activePath: make([]StateID, 0, 4),
	}
}

// Init enters initial, running OnEnter from the top-level ancestor down
// The initial state is remembered for Reset
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("initial state %d not found", initial)
	}
	if len(node.Path) == 0 {
		return fmt.Errorf("state %d has no path, CompilePaths not called", initial)
	}

	m.initial = initial
	m.active = initial
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		for _, action := range m.nodes[id].OnEnter {
			action(ctx)
		}
	}
	return nil
}

// Update advances time in the active leaf and fires timeouts
// Time past a timeout carries into the next state's TimeInState, so chained timeouts resolve within one call
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.active == StateNone {
		return
	}
	m.timeInState += dt

	for {
		leaf := m.nodes[m.active]
		if leaf.Timeout <= 0 || m.timeInState < leaf.Timeout {
			return
		}
		target, ok := m.match(ctx, EventTimeout)
		if !ok {
			return
		}
		m.transition(ctx, target, m.timeInState-leaf.Timeout)
	}
}

// HandleEvent routes ev from the leaf up through its ancestors
// Returns true if a transition fired
func (m *Machine[T]) HandleEvent(ctx T, ev Event) bool {
	if m.active == StateNone || ev == EventTimeout {
		return false
	}
	target, ok := m.match(ctx, ev)
	if !ok {
		return false
	}
	m.transition(ctx, target, 0)
	return true
}

// match finds the first enabled transition for ev, bubbling Leaf -> Parent -> Top
func (m *Machine[T]) match(ctx T, ev Event) (StateID, bool) {
	for currID := m.active; currID != StateNone; {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event == ev && (trans.Guard == nil || trans.Guard(ctx)) {
				return trans.TargetID, true
			}
		}
		currID = node.ParentID
	}
	return StateNone, false
}

// transition exits up to the LCA, switches the leaf, then enters down to the target
// State is updated before OnEnter so actions observe the new leaf and carried time
// A self transition restarts the timer without running actions
func (m *Machine[T]) transition(ctx T, targetID StateID, carry time.Duration) {
	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("fsm: transition to unknown state %d", targetID))
	}

	lcaIndex := -1
	currentPath, targetPath := m.activePath, targetNode.Path
	for i := range min(len(currentPath), len(targetPath)) {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit: walk up from the leaf to the LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		for _, action := range m.nodes[currentPath[i]].OnExit {
			action(ctx)
		}
	}

	m.active = targetID
	m.timeInState = carry
	m.activePath = append(m.activePath[:0], targetPath...)

	// Enter: walk down from the LCA (exclusive) to the target
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		for _, action := range m.nodes[targetPath[i]].OnEnter {
			action(ctx)
		}
	}
}

// Reset exits the active path and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		for _, action := range m.nodes[m.activePath[i]].OnExit {
			action(ctx)
		}
	}
	m.active = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx, m.initial)
}

// State returns the active leaf
func (m *Machine[T]) State() StateID {
	return m.active
}

// StateName returns the active leaf's name, empty before Init
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.active]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time spent in the active leaf
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// In reports whether id is the active leaf or one of its ancestors
func (m *Machine[T]) In(id StateID) bool {
	return slices.Contains(m.activePath, id)
}
