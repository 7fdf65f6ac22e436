// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

import (
	"fmt"
	"strings"

	gl33 "github.com/go-gl/gl/v3.3-core/gl"
)

// OpenGL loads the native OpenGL 3.3 core functions. A native context must
// already be current on the calling thread.
func OpenGL() (Functions, error) {
	if err := gl33.Init(); err != nil {
		return nil, fmt.Errorf("gl: initialising bindings: %w", err)
	}
	return openGL{}, nil
}

type openGL struct{}

func (openGL) CreateShader(kind Enum) uint32 {
	return gl33.CreateShader(uint32(kind))
}

func (openGL) ShaderSource(shader uint32, src string) {
	csources, free := gl33.Strs(src + "\x00")
	defer free()
	gl33.ShaderSource(shader, 1, csources, nil)
}

func (openGL) CompileShader(shader uint32) {
	gl33.CompileShader(shader)
}

func (openGL) GetShaderi(shader uint32, pname Enum) int32 {
	var value int32
	gl33.GetShaderiv(shader, uint32(pname), &value)
	return value
}

func (o openGL) GetShaderInfoLog(shader uint32) string {
	length := o.GetShaderi(shader, INFO_LOG_LENGTH)
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	gl33.GetShaderInfoLog(shader, length, nil, gl33.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (openGL) DeleteShader(shader uint32) {
	gl33.DeleteShader(shader)
}

func (openGL) CreateProgram() uint32 {
	return gl33.CreateProgram()
}

func (openGL) AttachShader(program, shader uint32) {
	gl33.AttachShader(program, shader)
}

func (openGL) DetachShader(program, shader uint32) {
	gl33.DetachShader(program, shader)
}

func (openGL) LinkProgram(program uint32) {
	gl33.LinkProgram(program)
}

func (openGL) GetProgrami(program uint32, pname Enum) int32 {
	var value int32
	gl33.GetProgramiv(program, uint32(pname), &value)
	return value
}

func (o openGL) GetProgramInfoLog(program uint32) string {
	length := o.GetProgrami(program, INFO_LOG_LENGTH)
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	gl33.GetProgramInfoLog(program, length, nil, gl33.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (openGL) UseProgram(program uint32) {
	gl33.UseProgram(program)
}

func (openGL) DeleteProgram(program uint32) {
	gl33.DeleteProgram(program)
}

func (openGL) GenTexture() uint32 {
	var handle uint32
	gl33.GenTextures(1, &handle)
	return handle
}

func (openGL) DeleteTexture(texture uint32) {
	gl33.DeleteTextures(1, &texture)
}

func (openGL) GenFramebuffer() uint32 {
	var handle uint32
	gl33.GenFramebuffers(1, &handle)
	return handle
}

func (openGL) DeleteFramebuffer(framebuffer uint32) {
	gl33.DeleteFramebuffers(1, &framebuffer)
}

func (openGL) GenBuffer() uint32 {
	var handle uint32
	gl33.GenBuffers(1, &handle)
	return handle
}

func (openGL) BindBuffer(target Enum, buffer uint32) {
	gl33.BindBuffer(uint32(target), buffer)
}

func (openGL) BufferData(target Enum, data []byte, usage Enum) {
	gl33.BufferData(uint32(target), len(data), gl33.Ptr(data), uint32(usage))
}

func (openGL) DeleteBuffer(buffer uint32) {
	gl33.DeleteBuffers(1, &buffer)
}

func (openGL) GenVertexArray() uint32 {
	var handle uint32
	gl33.GenVertexArrays(1, &handle)
	return handle
}

func (openGL) BindVertexArray(array uint32) {
	gl33.BindVertexArray(array)
}

func (openGL) DeleteVertexArray(array uint32) {
	gl33.DeleteVertexArrays(1, &array)
}

func (openGL) EnableVertexAttribArray(index uint32) {
	gl33.EnableVertexAttribArray(index)
}

func (openGL) VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride, offset int32) {
	gl33.VertexAttribPointerWithOffset(index, size, uint32(xtype), normalized, stride, uintptr(offset))
}

func (openGL) GetUniformLocation(program uint32, name string) int32 {
	return gl33.GetUniformLocation(program, gl33.Str(name+"\x00"))
}

func (openGL) Uniform1f(location int32, v float32) {
	gl33.Uniform1f(location, v)
}

func (openGL) Uniform2f(location int32, v0, v1 float32) {
	gl33.Uniform2f(location, v0, v1)
}

func (openGL) Uniform3f(location int32, v0, v1, v2 float32) {
	gl33.Uniform3f(location, v0, v1, v2)
}

func (openGL) ClearColor(r, g, b, a float32) {
	gl33.ClearColor(r, g, b, a)
}

func (openGL) Clear(mask Enum) {
	gl33.Clear(uint32(mask))
}

func (openGL) Viewport(x, y, width, height int32) {
	gl33.Viewport(x, y, width, height)
}

func (openGL) DrawArrays(mode Enum, first, count int32) {
	gl33.DrawArrays(uint32(mode), first, count)
}

func (openGL) GetError() Enum {
	return Enum(gl33.GetError())
}
