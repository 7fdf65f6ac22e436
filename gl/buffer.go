// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

// Texture wraps a native texture object.
type Texture struct {
	object
}

// NewTexture creates a texture owned by the current manager.
func NewTexture(ctx *Context) (*Texture, error) {
	if ctx.Current() == nil {
		return nil, ErrNoCurrentManager
	}
	t := &Texture{object{ctx: ctx, kind: KindTexture, handle: ctx.fns.GenTexture()}}
	if err := register(ctx, &t.object); err != nil {
		return nil, err
	}
	return t, nil
}

// Framebuffer wraps a native framebuffer object.
type Framebuffer struct {
	object
}

// NewFramebuffer creates a framebuffer owned by the current manager.
func NewFramebuffer(ctx *Context) (*Framebuffer, error) {
	if ctx.Current() == nil {
		return nil, ErrNoCurrentManager
	}
	f := &Framebuffer{object{ctx: ctx, kind: KindFramebuffer, handle: ctx.fns.GenFramebuffer()}}
	if err := register(ctx, &f.object); err != nil {
		return nil, err
	}
	return f, nil
}

// Buffer wraps a native buffer object.
type Buffer struct {
	object
}

// NewBuffer creates a buffer owned by the current manager.
func NewBuffer(ctx *Context) (*Buffer, error) {
	if ctx.Current() == nil {
		return nil, ErrNoCurrentManager
	}
	b := &Buffer{object{ctx: ctx, kind: KindBuffer, handle: ctx.fns.GenBuffer()}}
	if err := register(ctx, &b.object); err != nil {
		return nil, err
	}
	return b, nil
}

// Bind binds the buffer to target.
func (b *Buffer) Bind(target Enum) error {
	if err := b.live(); err != nil {
		return err
	}
	b.ctx.fns.BindBuffer(target, b.handle)
	return nil
}

// Upload binds the buffer to target and uploads data with the given usage.
func (b *Buffer) Upload(target Enum, data []byte, usage Enum) error {
	if err := b.Bind(target); err != nil {
		return err
	}
	b.ctx.fns.BufferData(target, data, usage)
	return nil
}

// VertexArray wraps a native vertex array object.
type VertexArray struct {
	object
}

// NewVertexArray creates a vertex array owned by the current manager.
func NewVertexArray(ctx *Context) (*VertexArray, error) {
	if ctx.Current() == nil {
		return nil, ErrNoCurrentManager
	}
	a := &VertexArray{object{ctx: ctx, kind: KindVertexArray, handle: ctx.fns.GenVertexArray()}}
	if err := register(ctx, &a.object); err != nil {
		return nil, err
	}
	return a, nil
}

// Bind makes the vertex array current.
func (a *VertexArray) Bind() error {
	if err := a.live(); err != nil {
		return err
	}
	a.ctx.fns.BindVertexArray(a.handle)
	return nil
}
