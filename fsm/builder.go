package fsm

import "fmt"

// AddState adds a node; parentID StateNone makes it top-level
func (m *Machine[T]) AddState(id StateID, name string, parentID StateID) *Node[T] {
	node := &Node[T]{
		ID:       id,
		Name:     name,
		ParentID: parentID,
	}
	m.nodes[id] = node
	return node
}

// AddTransition appends a transition to the source node, ignored for unknown sources
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// CompilePaths calculates Path for every node
// Must be called after all nodes are added and before Init
func (m *Machine[T]) CompilePaths() error {
	for id, node := range m.nodes {
		path := make([]StateID, 0, 4)

		for curr := node; ; {
			path = append(path, curr.ID)
			if curr.ParentID == StateNone {
				break
			}
			parent, ok := m.nodes[curr.ParentID]
			if !ok {
				return fmt.Errorf("node %d references missing parent %d", id, curr.ParentID)
			}
			if len(path) > len(m.nodes) {
				return fmt.Errorf("node %d is part of a parent cycle", id)
			}
			curr = parent
		}

		// Reverse to get [Top, ..., Leaf]
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		node.Path = path
	}

	for id, node := range m.nodes {
		for _, t := range node.Transitions {
			if _, ok := m.nodes[t.TargetID]; !ok {
				return fmt.Errorf("node %d transitions to missing state %d", id, t.TargetID)
			}
		}
	}
	return nil
}
