// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

import (
	"fmt"
)

// defaultVertexSource is the canonical passthrough vertex shader paired
// with user fragment shaders: a fullscreen position attribute mapped to a
// 0..1 fragCoord.
const defaultVertexSource = `#version 330 core
layout(location = 0) in vec2 position;
out vec2 fragCoord;
void main() {
	gl_Position = vec4(position, 0.0, 1.0);
	fragCoord = (position + 1.0) * 0.5;
}
`

// Shader wraps a native shader object.
type Shader struct {
	object
	log string
}

// NewShader creates a shader of the given stage, owned by the current
// manager, and compiles src if it is non-empty.
func NewShader(ctx *Context, stage Enum, src string) (*Shader, error) {
	if ctx.Current() == nil {
		return nil, ErrNoCurrentManager
	}
	handle := ctx.fns.CreateShader(stage)
	if handle == 0 {
		return nil, fmt.Errorf("gl: glCreateShader(0x%04x) failed", uint32(stage))
	}
	s := &Shader{object: object{ctx: ctx, kind: KindShader, handle: handle}}
	if err := register(ctx, &s.object); err != nil {
		return nil, err
	}
	if src != "" {
		if err := s.Compile(src); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Log returns the info log from the most recent compilation.
func (s *Shader) Log() string {
	return s.log
}

// Compile uploads src and compiles the shader. The info log is retained
// either way.
func (s *Shader) Compile(src string) error {
	if err := s.live(); err != nil {
		return err
	}
	fns := s.ctx.fns
	fns.ShaderSource(s.handle, src)
	fns.CompileShader(s.handle)
	s.log = fns.GetShaderInfoLog(s.handle)
	if fns.GetShaderi(s.handle, COMPILE_STATUS) == FALSE {
		return fmt.Errorf("gl: shader compilation failed: %s", s.log)
	}
	return nil
}

// Program wraps a native program object.
type Program struct {
	object
	log string
}

// NewProgram creates a program owned by the current manager and, when
// shaders are given, links them into it.
func NewProgram(ctx *Context, shaders ...*Shader) (*Program, error) {
	if ctx.Current() == nil {
		return nil, ErrNoCurrentManager
	}
	handle := ctx.fns.CreateProgram()
	if handle == 0 {
		return nil, fmt.Errorf("gl: glCreateProgram() failed")
	}
	p := &Program{object: object{ctx: ctx, kind: KindProgram, handle: handle}}
	if err := register(ctx, &p.object); err != nil {
		return nil, err
	}
	if len(shaders) > 0 {
		if err := p.Link(shaders...); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Log returns the info log from the most recent link.
func (p *Program) Log() string {
	return p.log
}

// Link attaches the shaders, links the program and detaches them again.
// Shaders are detached even when linking fails.
func (p *Program) Link(shaders ...*Shader) error {
	if err := p.live(); err != nil {
		return err
	}
	fns := p.ctx.fns
	for _, s := range shaders {
		if err := s.live(); err != nil {
			return err
		}
		fns.AttachShader(p.handle, s.handle)
	}
	fns.LinkProgram(p.handle)
	for _, s := range shaders {
		fns.DetachShader(p.handle, s.handle)
	}
	p.log = fns.GetProgramInfoLog(p.handle)
	if fns.GetProgrami(p.handle, LINK_STATUS) == FALSE {
		return fmt.Errorf("gl: program link failed: %s", p.log)
	}
	return nil
}

// Use installs the program as part of the current rendering state.
func (p *Program) Use() error {
	if err := p.live(); err != nil {
		return err
	}
	p.ctx.fns.UseProgram(p.handle)
	return nil
}

// UniformLocation returns the location of a uniform, or -1 when the
// program does not define it.
func (p *Program) UniformLocation(name string) int32 {
	if p.handle == 0 {
		return -1
	}
	return p.ctx.fns.GetUniformLocation(p.handle, name)
}

// SimpleProgram compiles fragment source against the default passthrough
// vertex shader and links both into a program owned by the current manager.
// The intermediate shaders live in a temporary manager and are released
// before the call returns.
func SimpleProgram(ctx *Context, fragment string) (*Program, error) {
	if ctx.Current() == nil {
		return nil, ErrNoCurrentManager
	}

	scratch := NewResourceManager(ctx)
	defer scratch.Release()

	var vert, frag *Shader
	err := scratch.Scope(func() error {
		var err error
		if vert, err = NewShader(ctx, VERTEX_SHADER, defaultVertexSource); err != nil {
			return err
		}
		if frag, err = NewShader(ctx, FRAGMENT_SHADER, fragment); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return NewProgram(ctx, vert, frag)
}
