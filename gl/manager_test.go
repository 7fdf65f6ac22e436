// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl_test

import (
	"errors"
	"testing"

	"github.com/vizardry/vizardry/gl"
)

// countingFns counts native delete calls on top of the no-op backend so
// tests can detect double frees.
type countingFns struct {
	gl.Functions
	deleted map[uint32]int
}

func newCountingFns() *countingFns {
	return &countingFns{Functions: gl.Null(), deleted: make(map[uint32]int)}
}

func (c *countingFns) DeleteShader(h uint32)      { c.deleted[h]++ }
func (c *countingFns) DeleteProgram(h uint32)     { c.deleted[h]++ }
func (c *countingFns) DeleteTexture(h uint32)     { c.deleted[h]++ }
func (c *countingFns) DeleteFramebuffer(h uint32) { c.deleted[h]++ }
func (c *countingFns) DeleteBuffer(h uint32)      { c.deleted[h]++ }
func (c *countingFns) DeleteVertexArray(h uint32) { c.deleted[h]++ }

func TestReleaseInvalidatesOwnedResources(t *testing.T) {
	fns := newCountingFns()
	ctx := gl.NewContext(fns)
	m := gl.NewResourceManager(ctx)

	m.Begin()
	shader, err := gl.NewShader(ctx, gl.FRAGMENT_SHADER, "")
	if err != nil {
		t.Fatal(err)
	}
	tex, err := gl.NewTexture(ctx)
	if err != nil {
		t.Fatal(err)
	}
	buf, err := gl.NewBuffer(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.End(); err != nil {
		t.Fatal(err)
	}

	if m.Len() != 3 {
		t.Fatalf("manager owns %d resources, want 3", m.Len())
	}
	if err := m.Release(); err != nil {
		t.Fatal(err)
	}

	for _, r := range []interface{ Valid() bool }{shader, tex, buf} {
		if r.Valid() {
			t.Errorf("%T still valid after release", r)
		}
	}
	if shader.Handle() != 0 {
		t.Errorf("shader handle = %d after release, want 0", shader.Handle())
	}
	if m.Len() != 0 {
		t.Errorf("manager still owns %d resources after release", m.Len())
	}
}

func TestCreateWithoutCurrentManager(t *testing.T) {
	ctx := gl.NewContext(gl.Null())

	if _, err := gl.NewShader(ctx, gl.VERTEX_SHADER, ""); !errors.Is(err, gl.ErrNoCurrentManager) {
		t.Errorf("NewShader error = %v, want ErrNoCurrentManager", err)
	}
	if _, err := gl.NewProgram(ctx); !errors.Is(err, gl.ErrNoCurrentManager) {
		t.Errorf("NewProgram error = %v, want ErrNoCurrentManager", err)
	}
	if _, err := gl.NewTexture(ctx); !errors.Is(err, gl.ErrNoCurrentManager) {
		t.Errorf("NewTexture error = %v, want ErrNoCurrentManager", err)
	}
	if _, err := gl.NewFramebuffer(ctx); !errors.Is(err, gl.ErrNoCurrentManager) {
		t.Errorf("NewFramebuffer error = %v, want ErrNoCurrentManager", err)
	}
	if _, err := gl.NewBuffer(ctx); !errors.Is(err, gl.ErrNoCurrentManager) {
		t.Errorf("NewBuffer error = %v, want ErrNoCurrentManager", err)
	}
	if _, err := gl.NewVertexArray(ctx); !errors.Is(err, gl.ErrNoCurrentManager) {
		t.Errorf("NewVertexArray error = %v, want ErrNoCurrentManager", err)
	}
	if _, err := gl.SimpleProgram(ctx, "void main() {}"); !errors.Is(err, gl.ErrNoCurrentManager) {
		t.Errorf("SimpleProgram error = %v, want ErrNoCurrentManager", err)
	}
}

func TestNestedScopesRestorePreviousCurrent(t *testing.T) {
	ctx := gl.NewContext(gl.Null())
	a := gl.NewResourceManager(ctx)
	b := gl.NewResourceManager(ctx)

	if ctx.Current() != nil {
		t.Fatal("fresh context has a current manager")
	}

	a.Begin()
	b.Begin()
	b.Begin() // reentrant push of the same manager
	if ctx.Current() != b {
		t.Fatal("current is not b after nested Begin")
	}
	if err := b.End(); err != nil {
		t.Fatal(err)
	}
	if ctx.Current() != b {
		t.Fatal("reentrant pop should leave b current")
	}
	if err := b.End(); err != nil {
		t.Fatal(err)
	}
	if ctx.Current() != a {
		t.Fatal("current is not a after ending b's scope")
	}
	if err := a.End(); err != nil {
		t.Fatal(err)
	}
	if ctx.Current() != nil {
		t.Fatal("current is not none after all scopes ended")
	}
}

func TestEndOutOfStackOrder(t *testing.T) {
	ctx := gl.NewContext(gl.Null())
	a := gl.NewResourceManager(ctx)
	b := gl.NewResourceManager(ctx)

	a.Begin()
	if _, err := gl.NewTexture(ctx); err != nil {
		t.Fatal(err)
	}
	b.Begin()
	if _, err := gl.NewTexture(ctx); err != nil {
		t.Fatal(err)
	}

	if err := a.End(); !errors.Is(err, gl.ErrStackDiscipline) {
		t.Fatalf("a.End() = %v, want ErrStackDiscipline", err)
	}
	if ctx.Current() != b {
		t.Error("failed End must not change the current manager")
	}
	if a.Len() != 1 || b.Len() != 1 {
		t.Error("failed End must not mutate resource collections")
	}

	if err := b.End(); err != nil {
		t.Fatal(err)
	}
	if err := a.End(); err != nil {
		t.Fatal(err)
	}
	if err := a.End(); !errors.Is(err, gl.ErrStackDiscipline) {
		t.Errorf("End on an empty stack = %v, want ErrStackDiscipline", err)
	}
}

func TestReleaseNeverCrossesManagers(t *testing.T) {
	fns := newCountingFns()
	ctx := gl.NewContext(fns)
	a := gl.NewResourceManager(ctx)
	b := gl.NewResourceManager(ctx)

	a.Begin()
	ra, _ := gl.NewTexture(ctx)
	if err := a.End(); err != nil {
		t.Fatal(err)
	}
	b.Begin()
	rb, _ := gl.NewTexture(ctx)

	if err := a.Release(); err != nil {
		t.Fatal(err)
	}
	if err := a.Release(); err != nil {
		t.Fatal(err) // idempotent
	}

	if ra.Valid() {
		t.Error("a's resource still valid after release")
	}
	if !rb.Valid() {
		t.Error("releasing a invalidated b's resource")
	}
	for h, n := range fns.deleted {
		if n > 1 {
			t.Errorf("handle %d deleted %d times", h, n)
		}
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
}

// The end-to-end scenario: nested managers release independently and the
// previous current manager is restored at each step.
func TestNestedManagerScenario(t *testing.T) {
	ctx := gl.NewContext(gl.Null())
	a := gl.NewResourceManager(ctx)
	b := gl.NewResourceManager(ctx)

	a.Begin()
	r1, _ := gl.NewBuffer(ctx)
	r2, _ := gl.NewTexture(ctx)

	b.Begin()
	r3, _ := gl.NewFramebuffer(ctx)

	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	if r3.Valid() {
		t.Error("r3 still valid after releasing b")
	}
	if !r1.Valid() || !r2.Valid() {
		t.Error("releasing b invalidated a's resources")
	}
	if ctx.Current() != a {
		t.Error("current manager is not a after b's scope closed")
	}

	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if r1.Valid() || r2.Valid() {
		t.Error("a's resources still valid after releasing a")
	}
	if ctx.Current() != nil {
		t.Error("current manager is not none at the end")
	}
}

func TestScopeClosesOnPanic(t *testing.T) {
	ctx := gl.NewContext(gl.Null())
	m := gl.NewResourceManager(ctx)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		m.Scope(func() error {
			panic("render failure")
		})
	}()

	if ctx.Current() != nil {
		t.Error("scope left open after panic")
	}
}

func TestFlushReleasesAllLiveManagers(t *testing.T) {
	ctx := gl.NewContext(gl.Null())

	// More than two managers so the sweep is exercised past the point where
	// unregistering a manager shifts the live registry under it.
	managers := make([]*gl.ResourceManager, 4)
	resources := make([]*gl.Texture, 4)
	for i := range managers {
		m := gl.NewResourceManager(ctx)
		m.Begin()
		r, err := gl.NewTexture(ctx)
		if err != nil {
			t.Fatal(err)
		}
		managers[i], resources[i] = m, r
	}

	if err := ctx.Flush(); err != nil {
		t.Fatal(err)
	}
	for i, r := range resources {
		if r.Valid() {
			t.Errorf("flush left manager %d's resource valid", i)
		}
	}
	for i, m := range managers {
		if m.Len() != 0 {
			t.Errorf("flush left manager %d owning %d resources", i, m.Len())
		}
	}
	if ctx.Current() != nil {
		t.Error("flush must reset the scope stack")
	}
}

func TestManagerReuseAfterRelease(t *testing.T) {
	ctx := gl.NewContext(gl.Null())
	m := gl.NewResourceManager(ctx)

	m.Begin()
	old, _ := gl.NewTexture(ctx)
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}

	// A released manager re-arms as a fresh empty manager.
	m.Begin()
	fresh, err := gl.NewTexture(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !fresh.Valid() {
		t.Error("resource created on a reused manager is invalid")
	}
	if old.Valid() {
		t.Error("reuse revived a released resource")
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if fresh.Valid() {
		t.Error("second release left the fresh resource valid")
	}
}
