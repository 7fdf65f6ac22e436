// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package scene implements the vizardry node network: a tree of named
// nodes with behaviours, parameters and event propagation, plus the render
// and cleanup walks that drive GL-rendering nodes through their per-node
// resource managers.
package scene

import (
	"errors"
)

// New creates a scene with an empty root node.
func New() *Scene {
	s := &Scene{}
	root, err := s.NewNode("root", nil)
	if err != nil {
		panic(err) // the literal name "root" always validates
	}
	s.root = root
	return s
}

// Scene contains the node network and manages the execution clock. Time,
// DeltaTime and Frame can be set before a render pass to influence nodes
// that depend on time; Advance maintains them for the common case.
type Scene struct {
	root   *Node
	active *Node
	events Handler

	Time      float64
	DeltaTime float64
	Frame     int
}

// NewNode creates a node for this scene. The node starts detached; use
// Attach to place it in the tree. When a behaviour is given, its Attached
// hook runs before the node is returned.
func (s *Scene) NewNode(name string, b Behaviour) (*Node, error) {
	n := &Node{scene: s, behaviour: b}
	if err := n.checkName(name, nil); err != nil {
		return nil, err
	}
	n.name = name
	n.params.node = n
	if b != nil {
		b.Attached(n)
	}
	return n, nil
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Active returns the node the viewport focuses on, or nil.
func (s *Scene) Active() *Node {
	return s.active
}

// SetActive changes the focused node and emits EventActiveNodeChanged.
func (s *Scene) SetActive(n *Node) error {
	if n != nil && n.scene != s {
		return ErrWrongScene
	}
	old := s.active
	if n == old {
		return nil
	}
	s.active = n
	s.events.Emit(Event{
		Kind:   EventActiveNodeChanged,
		Data:   map[string]interface{}{"old": old, "new": n},
		Source: n,
	})
	return nil
}

// Bind registers a scene-wide listener.
func (s *Scene) Bind(kind EventKind, fn Listener) {
	s.events.Bind(kind, fn)
}

// Emit sends an event to scene-wide listeners.
func (s *Scene) Emit(kind EventKind, data map[string]interface{}, source interface{}) {
	s.events.Emit(Event{Kind: kind, Data: data, Source: source})
}

// Advance moves the scene clock forward by dt seconds.
func (s *Scene) Advance(dt float64) {
	s.Time += dt
	s.DeltaTime = dt
	s.Frame++
}

// Find resolves an absolute node path against the root.
func (s *Scene) Find(path string) (*Node, error) {
	n := s.root.Find(path)
	if n == nil {
		return nil, errors.New("scene: no node at " + path)
	}
	return n, nil
}
