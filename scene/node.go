// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package scene

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
)

// node naming errors
var (
	ErrNameInvalid  = errors.New("scene: node name contains invalid characters")
	ErrNameConflict = errors.New("scene: node name already taken in this hierarchy level")
	ErrWrongScene   = errors.New("scene: node belongs to a different scene")
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Node is an element of the scene tree. It has a name that is unique among
// its siblings, an optional behaviour that defines what it does, a set of
// parameters and an event stream.
type Node struct {
	scene     *Scene
	name      string
	parent    *Node
	children  []*Node
	behaviour Behaviour
	params    Parameters
	events    Handler
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// Scene returns the scene the node was created for.
func (n *Node) Scene() *Scene {
	return n.scene
}

// Parent returns the parent node, or nil for the root and detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in order. The returned slice is a
// copy, mutating it does not affect the tree.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Behaviour returns the behaviour bound at creation, or nil.
func (n *Node) Behaviour() Behaviour {
	return n.behaviour
}

// Params returns the node's parameter collection.
func (n *Node) Params() *Parameters {
	return &n.params
}

func (n *Node) String() string {
	return fmt.Sprintf("<node %s>", n.Path())
}

// Rename changes the node's name, enforcing the scene's naming rules, and
// emits EventNameChanged when the name actually changed.
func (n *Node) Rename(name string) error {
	if err := n.checkName(name, n.parent); err != nil {
		return err
	}
	old := n.name
	oldPath := n.Path()
	n.name = name
	if old != name {
		n.Emit(EventNameChanged, map[string]interface{}{"old": old, "new": name}, Both)
		n.emitPathChanged(oldPath)
	}
	return nil
}

// emitPathChanged announces that the node's absolute path moved. It
// propagates down as well, since every descendant's path moved with it.
func (n *Node) emitPathChanged(oldPath string) {
	n.Emit(EventPathChanged, map[string]interface{}{"old": oldPath, "new": n.Path()}, Both)
}

func (n *Node) checkName(name string, parent *Node) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrNameInvalid, name)
	}
	if parent != nil {
		for _, sibling := range parent.children {
			if sibling != n && sibling.name == name {
				return fmt.Errorf("%w: %q under %s", ErrNameConflict, name, parent.Path())
			}
		}
	}
	return nil
}

// Detach removes the node from its parent. Detached nodes keep their
// children and can be re-attached elsewhere in the same scene.
func (n *Node) Detach() {
	if n.parent == nil {
		return
	}
	old := n.parent
	oldPath := n.Path()
	for i, child := range old.children {
		if child == n {
			old.children = append(old.children[:i], old.children[i+1:]...)
			break
		}
	}
	n.parent = nil
	n.Emit(EventParentChanged, map[string]interface{}{"old": old, "new": nil}, Both)
	n.emitPathChanged(oldPath)
}

// Attach appends the node as the last child of parent.
func (n *Node) Attach(parent *Node) error {
	return n.attachAt(parent, -1)
}

// AttachFirst inserts the node as the first child of parent.
func (n *Node) AttachFirst(parent *Node) error {
	return n.attachAt(parent, 0)
}

// AttachBefore inserts the node as a child of parent, directly before the
// given sibling.
func (n *Node) AttachBefore(parent, sibling *Node) error {
	idx, err := childIndex(parent, sibling)
	if err != nil {
		return err
	}
	return n.attachAt(parent, idx)
}

// AttachAfter inserts the node as a child of parent, directly after the
// given sibling.
func (n *Node) AttachAfter(parent, sibling *Node) error {
	idx, err := childIndex(parent, sibling)
	if err != nil {
		return err
	}
	return n.attachAt(parent, idx+1)
}

func childIndex(parent, child *Node) (int, error) {
	for i, c := range parent.children {
		if c == child {
			return i, nil
		}
	}
	return -1, fmt.Errorf("scene: %s is not a child of %s", child.Path(), parent.Path())
}

func (n *Node) attachAt(parent *Node, index int) error {
	if parent == nil {
		return errors.New("scene: attach requires a parent node")
	}
	if parent == n {
		return errors.New("scene: can not attach a node to itself")
	}
	if parent.scene != n.scene {
		return ErrWrongScene
	}
	for anc := parent; anc != nil; anc = anc.parent {
		if anc == n {
			return errors.New("scene: can not attach a node below itself")
		}
	}
	if err := n.checkName(n.name, parent); err != nil {
		return err
	}

	n.Detach()
	oldPath := n.Path()
	if index < 0 || index > len(parent.children) {
		index = len(parent.children)
	}
	parent.children = append(parent.children, nil)
	copy(parent.children[index+1:], parent.children[index:])
	parent.children[index] = n
	n.parent = parent

	n.Emit(EventParentChanged, map[string]interface{}{"old": nil, "new": parent}, Both)
	n.emitPathChanged(oldPath)
	return nil
}

// Path returns the node's absolute path: "/" for the root, "/a/b" below it.
// A node outside the tree hierarchy reports a relative path.
func (n *Node) Path() string {
	if n == n.scene.root {
		return "/"
	}
	if n.parent == nil {
		return n.name
	}
	if n.parent == n.scene.root {
		return "/" + n.name
	}
	return n.parent.Path() + "/" + n.name
}

// Abs resolves p against the node's own path, normalising "." and "..".
func (n *Node) Abs(p string) string {
	return path.Clean(path.Join(n.Path(), p))
}

// Find returns the node at the given path, relative to this node unless
// the path is absolute. Returns nil when no node matches.
func (n *Node) Find(p string) *Node {
	p = n.Abs(p)
	var node *Node
	var parts []string
	if strings.HasPrefix(p, "/") {
		node = n.scene.root
		parts = strings.Split(p, "/")[1:]
	} else {
		node = n
		parts = strings.Split(p, "/")
	}
	for _, part := range parts {
		if node == nil || part == "" || part == "." {
			continue
		}
		if part == ".." {
			node = node.parent
			continue
		}
		var next *Node
		for _, child := range node.children {
			if child.name == part {
				next = child
				break
			}
		}
		node = next
	}
	return node
}

// Walk visits the node and its hierarchy depth first, in child order. When
// fn returns false the node's children are skipped.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// Bind registers fn for events of the given kind that were emitted by this
// very node.
func (n *Node) Bind(kind EventKind, fn Listener) {
	self := n
	n.events.bind(kind, fn, func(ev Event) bool { return ev.Source == self })
}

// BindGlobal registers fn for any event of the given kind that reaches the
// node, including events propagated from elsewhere in the hierarchy.
func (n *Node) BindGlobal(kind EventKind, fn Listener) {
	n.events.Bind(kind, fn)
}

// Emit sends an event from this node and propagates it through the tree in
// the given direction.
func (n *Node) Emit(kind EventKind, data map[string]interface{}, dir Direction) {
	n.deliver(Event{Kind: kind, Data: data, Source: n}, dir)
}

func (n *Node) deliver(ev Event, dir Direction) {
	n.events.Emit(ev)
	if dir == Both || dir == Up {
		if n.parent != nil {
			n.parent.deliver(ev, Up)
		}
	}
	if dir == Both || dir == Down {
		for _, child := range n.children {
			child.deliver(ev, Down)
		}
	}
}
