// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package scene

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vizardry/vizardry/gl"
)

// GLRender draws every rendering node in the scene into the current
// viewport. Each node's GLRender callback runs with the node's own resource
// manager current, so everything the node creates stays owned by it. A
// failing node is logged and skipped; one broken shader must not black out
// the whole viewport.
func (s *Scene) GLRender(ctx *gl.Context) {
	fns := ctx.Functions()
	fns.ClearColor(0, 0, 0, 1)
	fns.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.root.Walk(func(n *Node) bool {
		obj, ok := n.behaviour.(GLObject)
		if !ok {
			return true
		}
		m := obj.Resources(ctx)
		err := m.Scope(func() error {
			return renderNode(obj, ctx)
		})
		if err != nil {
			log.WithFields(log.Fields{
				"node": n.Path(),
			}).WithError(err).Error("node render failed")
		}
		return true
	})
}

// GLCleanup runs before the scene will never be rendered again: every
// rendering node gets its GLCleanup callback and its resource manager
// released. Errors are logged, the sweep always finishes.
func (s *Scene) GLCleanup(ctx *gl.Context) {
	s.root.Walk(func(n *Node) bool {
		obj, ok := n.behaviour.(GLObject)
		if !ok {
			return true
		}
		m := obj.Resources(ctx)
		err := m.Scope(func() error {
			return cleanupNode(obj, ctx)
		})
		if relErr := m.Release(); err == nil {
			err = relErr
		}
		if err != nil {
			log.WithFields(log.Fields{
				"node": n.Path(),
			}).WithError(err).Error("node cleanup failed")
		}
		return true
	})
}

// renderNode converts a panicking behaviour into an error so the render
// walk can continue past it.
func renderNode(obj GLObject, ctx *gl.Context) (err error) {
	defer recoverTo(&err)
	return obj.GLRender(ctx)
}

func cleanupNode(obj GLObject, ctx *gl.Context) (err error) {
	defer recoverTo(&err)
	return obj.GLCleanup(ctx)
}

func recoverTo(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = e
			return
		}
		*err = &panicError{value: r}
	}
}

type panicError struct {
	value interface{}
}

func (p *panicError) Error() string {
	return fmt.Sprintf("behaviour panicked: %v", p.value)
}
