// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package glsl implements the inline-shader node behaviour: the node holds
// a fragment shader source as an editable parameter and renders it over a
// fullscreen quad. This is the workhorse node of vizardry networks.
package glsl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vizardry/vizardry/gl"
	"github.com/vizardry/vizardry/scene"
)

// DefaultFragmentSource is the shader a fresh node starts with: an animated
// color wash that proves the pipeline end to end.
const DefaultFragmentSource = `#version 330 core
in vec2 fragCoord;
out vec4 fragColor;
uniform float u_time;
uniform vec2 u_resolution;
void main() {
	vec3 color = 0.5 + 0.5 * cos(u_time + fragCoord.xyx * 6.28318 + vec3(0.0, 2.0, 4.0));
	fragColor = vec4(color, 1.0);
}
`

// quad is a fullscreen triangle strip in clip space.
var quad = []mgl32.Vec2{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Behaviour renders a user-editable fragment shader. It implements
// scene.Behaviour and scene.GLObject. Editing the "frag" parameter marks
// the program dirty; the next render releases the node's resources and
// rebuilds them from the new source.
type Behaviour struct {
	node *scene.Node
	res  *gl.ResourceManager

	width, height int32

	dirty bool
	prog  *gl.Program
	vao   *gl.VertexArray
	vbo   *gl.Buffer
}

// New creates a behaviour preloaded with DefaultFragmentSource.
func New() *Behaviour {
	return &Behaviour{width: 800, height: 600, dirty: true}
}

// Attached implements scene.Behaviour.
func (b *Behaviour) Attached(n *scene.Node) {
	b.node = n
	frag := scene.NewText("frag", "Fragment Source", true)
	frag.Syntax = "glsl"
	frag.SetText(DefaultFragmentSource)
	if err := n.Params().Add(frag); err != nil {
		panic(err) // fresh node, the name can not be taken
	}
	frag.Bind(scene.EventValueChanged, func(scene.Event) {
		b.dirty = true
		n.Emit(scene.EventViewportUpdate, nil, scene.Up)
	})
}

// SetViewport tells the behaviour the pixel size it renders at, for the
// u_resolution uniform.
func (b *Behaviour) SetViewport(width, height int32) {
	b.width, b.height = width, height
}

// Resources implements scene.GLObject.
func (b *Behaviour) Resources(ctx *gl.Context) *gl.ResourceManager {
	if b.res == nil {
		b.res = gl.NewResourceManager(ctx)
	}
	return b.res
}

// GLRender implements scene.GLObject. It is called with the node's manager
// current.
func (b *Behaviour) GLRender(ctx *gl.Context) error {
	if b.dirty || b.prog == nil || !b.prog.Valid() {
		if err := b.rebuild(ctx); err != nil {
			return err
		}
	}

	fns := ctx.Functions()
	if err := b.prog.Use(); err != nil {
		return err
	}
	if loc := b.prog.UniformLocation("u_time"); loc >= 0 {
		fns.Uniform1f(loc, float32(b.node.Scene().Time))
	}
	if loc := b.prog.UniformLocation("u_resolution"); loc >= 0 {
		fns.Uniform2f(loc, float32(b.width), float32(b.height))
	}
	if err := b.vao.Bind(); err != nil {
		return err
	}
	fns.DrawArrays(gl.TRIANGLE_STRIP, 0, int32(len(quad)))
	return nil
}

// GLCleanup implements scene.GLObject. The scene releases the node's
// manager right after, so only the stale references are dropped here.
func (b *Behaviour) GLCleanup(*gl.Context) error {
	b.prog, b.vao, b.vbo = nil, nil, nil
	b.dirty = true
	return nil
}

// rebuild drops the previous program and geometry and compiles the current
// fragment source. A compile failure leaves the behaviour dirty so the next
// edit retries.
func (b *Behaviour) rebuild(ctx *gl.Context) error {
	if err := b.res.Release(); err != nil {
		return err
	}
	b.prog, b.vao, b.vbo = nil, nil, nil

	src, err := b.node.Params().Get("frag")
	if err != nil {
		return err
	}
	source, ok := src.(string)
	if !ok || source == "" {
		return fmt.Errorf("glsl: node %s has no fragment source", b.node.Path())
	}

	prog, err := gl.SimpleProgram(ctx, source)
	if err != nil {
		return err
	}
	vao, err := gl.NewVertexArray(ctx)
	if err != nil {
		return err
	}
	vbo, err := gl.NewBuffer(ctx)
	if err != nil {
		return err
	}
	if err := vao.Bind(); err != nil {
		return err
	}
	if err := vbo.Upload(gl.ARRAY_BUFFER, vertexBytes(quad), gl.STATIC_DRAW); err != nil {
		return err
	}
	fns := ctx.Functions()
	fns.EnableVertexAttribArray(0)
	fns.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, 0)

	b.prog, b.vao, b.vbo = prog, vao, vbo
	b.dirty = false
	return nil
}

// vertexBytes reslices vertex data for buffer upload.
func vertexBytes(verts []mgl32.Vec2) []byte {
	size := int(unsafe.Sizeof(mgl32.Vec2{}))
	return unsafe.Slice((*byte)(unsafe.Pointer(&verts[0])), len(verts)*size)
}
