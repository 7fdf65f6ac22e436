// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glsl_test

import (
	"strings"
	"testing"

	"github.com/vizardry/vizardry/behaviour/glsl"
	"github.com/vizardry/vizardry/gl"
	"github.com/vizardry/vizardry/scene"
)

// tracingFns counts draw and delete calls on top of the no-op backend.
type tracingFns struct {
	gl.Functions
	draws           int
	deletedPrograms int
}

func newTracingFns() *tracingFns {
	return &tracingFns{Functions: gl.Null()}
}

func (f *tracingFns) DrawArrays(gl.Enum, int32, int32) { f.draws++ }
func (f *tracingFns) DeleteProgram(uint32)             { f.deletedPrograms++ }

func newShaderNode(t *testing.T, s *scene.Scene) (*scene.Node, *glsl.Behaviour) {
	t.Helper()
	b := glsl.New()
	n, err := s.NewNode("shader", b)
	if err != nil {
		t.Fatal(err)
	}
	if err := n.Attach(s.Root()); err != nil {
		t.Fatal(err)
	}
	return n, b
}

func TestRenderBuildsAndDraws(t *testing.T) {
	fns := newTracingFns()
	ctx := gl.NewContext(fns)
	s := scene.New()
	n, b := newShaderNode(t, s)

	src, err := n.Params().Get("frag")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(src.(string), "fragColor") {
		t.Error("node did not start with the default fragment source")
	}

	s.GLRender(ctx)
	s.GLRender(ctx)
	if fns.draws != 2 {
		t.Errorf("draw calls = %d, want 2", fns.draws)
	}
	if fns.deletedPrograms != 0 {
		t.Error("steady-state rendering must not rebuild the program")
	}

	// The program, vertex array and buffer live in the node's manager.
	if got := b.Resources(ctx).Len(); got != 3 {
		t.Errorf("node manager owns %d resources, want 3", got)
	}
}

func TestEditRebuildsProgram(t *testing.T) {
	fns := newTracingFns()
	ctx := gl.NewContext(fns)
	s := scene.New()
	n, b := newShaderNode(t, s)

	var updates int
	s.Root().BindGlobal(scene.EventViewportUpdate, func(scene.Event) { updates++ })

	s.GLRender(ctx)

	if err := n.Params().Set("frag", "#version 330 core\nvoid main() {}\n"); err != nil {
		t.Fatal(err)
	}
	if updates != 1 {
		t.Error("editing the source must request a viewport update")
	}

	s.GLRender(ctx)
	if fns.deletedPrograms == 0 {
		t.Error("editing the source must release the previous program")
	}
	if got := b.Resources(ctx).Len(); got != 3 {
		t.Errorf("node manager owns %d resources after rebuild, want 3", got)
	}
}

func TestCleanupReleasesEverything(t *testing.T) {
	fns := newTracingFns()
	ctx := gl.NewContext(fns)
	s := scene.New()
	_, b := newShaderNode(t, s)

	s.GLRender(ctx)
	s.GLCleanup(ctx)

	if got := b.Resources(ctx).Len(); got != 0 {
		t.Errorf("node manager owns %d resources after cleanup, want 0", got)
	}

	// A cleaned-up node can come back: the manager re-arms on render.
	s.GLRender(ctx)
	if got := b.Resources(ctx).Len(); got != 3 {
		t.Errorf("node manager owns %d resources after revival, want 3", got)
	}
}

// failingCompile reports every compile as failed, as a live driver would
// for bad GLSL.
type failingCompile struct {
	gl.Functions
}

func (failingCompile) GetShaderi(uint32, gl.Enum) int32 { return gl.FALSE }
func (failingCompile) GetShaderInfoLog(uint32) string   { return "0:1: error: bad source" }

func TestBrokenSourceKeepsSceneAlive(t *testing.T) {
	ctx := gl.NewContext(failingCompile{gl.Null()})
	s := scene.New()
	_, b := newShaderNode(t, s)

	// Render must not panic and must leave no open scope behind.
	s.GLRender(ctx)
	if ctx.Current() != nil {
		t.Error("failed rebuild left a manager scope open")
	}

	// Nothing half-built may stay behind in the node's manager.
	if got := b.Resources(ctx).Len(); got != 0 {
		t.Errorf("node manager owns %d resources after failed build, want 0", got)
	}
	s.GLCleanup(ctx)
}
