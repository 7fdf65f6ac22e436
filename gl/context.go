// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

import (
	"errors"
)

// NewContext wraps a set of native GL functions into a Context. One Context
// is created per native rendering context and must only be used from the
// thread that context is bound to.
func NewContext(fns Functions) *Context {
	return &Context{fns: fns}
}

// Context carries the state that the original design kept in a global: the
// stack of current resource managers and the registry of managers that still
// own live resources. Passing it explicitly keeps independent rendering
// contexts (multiple windows, parallel tests) from interfering.
type Context struct {
	fns   Functions
	stack []*ResourceManager
	live  []*ResourceManager
}

// Functions returns the native GL functions behind this context.
func (c *Context) Functions() Functions {
	return c.fns
}

// Current returns the manager new resources register with, or nil when no
// manager scope is open.
func (c *Context) Current() *ResourceManager {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

// Flush is the safety net behind the application-wide "GL Flush" event:
// it releases every manager that still owns live resources and resets the
// scope stack. Used on context loss and shutdown.
func (c *Context) Flush() error {
	// releaseOwned unregisters each manager from c.live as it goes, so the
	// sweep runs over a detached snapshot.
	live := c.live
	c.live = nil
	c.stack = c.stack[:0]

	var errs []error
	for _, m := range live {
		if err := m.releaseOwned(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Context) push(m *ResourceManager) {
	c.stack = append(c.stack, m)
}

func (c *Context) pop(m *ResourceManager) error {
	if len(c.stack) == 0 || c.stack[len(c.stack)-1] != m {
		return ErrStackDiscipline
	}
	c.stack[len(c.stack)-1] = nil
	c.stack = c.stack[:len(c.stack)-1]
	return nil
}

func (c *Context) markLive(m *ResourceManager) {
	for _, other := range c.live {
		if other == m {
			return
		}
	}
	c.live = append(c.live, m)
}

func (c *Context) markReleased(m *ResourceManager) {
	for i, other := range c.live {
		if other == m {
			c.live = append(c.live[:i], c.live[i+1:]...)
			return
		}
	}
}
