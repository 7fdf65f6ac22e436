// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

import (
	"errors"
	"fmt"
)

// NewResourceManager creates an empty manager bound to the given context.
func NewResourceManager(ctx *Context) *ResourceManager {
	return &ResourceManager{ctx: ctx}
}

// ResourceManager groups the lifetime of a batch of native GL objects so
// they can be released together. While a manager is current (between Begin
// and End) every newly created resource attaches to it.
//
// A released manager may be reused: the next resource registered with it
// re-arms it as a fresh, empty manager.
type ResourceManager struct {
	ctx   *Context
	owned []*object
}

// Context returns the context the manager is bound to.
func (m *ResourceManager) Context() *Context {
	return m.ctx
}

// Len reports how many live resources the manager owns.
func (m *ResourceManager) Len() int {
	return len(m.owned)
}

// Begin pushes the manager onto the context's current-manager stack.
// Scopes nest: a manager may be pushed multiple times, each push must be
// matched by an End.
func (m *ResourceManager) Begin() {
	m.ctx.push(m)
}

// End pops the manager off the stack. It fails with ErrStackDiscipline when
// the manager is not the innermost scope, in which case no resource
// collection is mutated.
func (m *ResourceManager) End() error {
	return m.ctx.pop(m)
}

// Scope runs fn with the manager current, guaranteeing the scope is closed
// on every exit path, including panics in fn.
func (m *ResourceManager) Scope(fn func() error) (err error) {
	m.Begin()
	defer func() {
		if endErr := m.End(); endErr != nil && err == nil {
			err = endErr
		}
	}()
	return fn()
}

// Release invalidates and natively destroys every resource the manager
// owns, in reverse creation order. Native destroy failures never abort the
// sweep: the logical handle is invalidated regardless and the failures are
// returned joined. Releasing an already-released manager is a no-op.
func (m *ResourceManager) Release() error {
	if len(m.owned) == 0 {
		return nil
	}
	return m.releaseOwned()
}

// Close ends the manager's scope and releases everything it owns. This is
// the common teardown path; use End alone to keep resources alive across
// render passes.
func (m *ResourceManager) Close() error {
	if err := m.End(); err != nil {
		return err
	}
	return m.Release()
}

func (m *ResourceManager) releaseOwned() error {
	var errs []error
	for i := len(m.owned) - 1; i >= 0; i-- {
		obj := m.owned[i]
		obj.destroy(m.ctx.fns)
		if code := m.ctx.fns.GetError(); code != NO_ERROR {
			errs = append(errs, fmt.Errorf("gl: deleting %s %d: error 0x%04x", obj.kind, obj.lastHandle, uint32(code)))
		}
		m.owned[i] = nil
	}
	m.owned = m.owned[:0]
	m.ctx.markReleased(m)
	return errors.Join(errs...)
}

// register attaches a freshly created resource to the manager. Called by
// resource constructors only.
func (m *ResourceManager) register(obj *object) {
	obj.owner = m
	m.owned = append(m.owned, obj)
	m.ctx.markLive(m)
}
