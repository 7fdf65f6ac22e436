// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package scene

import (
	"github.com/vizardry/vizardry/gl"
)

// Behaviour defines what a node does. A node's capabilities are discovered
// by asserting its behaviour against the smaller interfaces below, so a
// behaviour mixes capabilities by implementing more of them.
type Behaviour interface {
	// Attached is called once, after the behaviour has been bound to its
	// node. Parameter declarations belong here.
	Attached(node *Node)
}

// GLObject is implemented by behaviours that render into the viewport.
// Every GLObject keeps its GPU-side state in a dedicated resource manager;
// the scene makes that manager current around each callback so anything
// the behaviour creates is owned by the right node.
type GLObject interface {
	// Resources returns the node's resource manager, creating it on first
	// use for the given context.
	Resources(ctx *gl.Context) *gl.ResourceManager

	// GLRender draws the node. Called with the node's manager current.
	GLRender(ctx *gl.Context) error

	// GLCleanup runs before the node will never be rendered again. The
	// scene releases the node's manager right after, so most behaviours
	// only reset their own bookkeeping here.
	GLCleanup(ctx *gl.Context) error
}

// Computer is implemented by behaviours that declare data slots. Slot
// scheduling is not part of the engine core; the declarations exist so
// networks can be wired and inspected.
type Computer interface {
	Inputs() []Input
	Outputs() []Output

	// Compute fills the behaviour's output values from its inputs.
	Compute() error
}
