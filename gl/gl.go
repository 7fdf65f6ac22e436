// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gl implements scoped lifetime management for OpenGL resources.
//
// Every GPU-side object (shader, program, texture, framebuffer, buffer,
// vertex array) is owned by exactly one ResourceManager, fixed when the
// object is created. Managers are made current on a Context, which models
// the thread-bound native rendering context, and releasing a manager
// invalidates everything it owns in a single sweep.
package gl

// Enum is a GL enumeration value.
type Enum uint32

// The subset of GL constants the engine uses.
const (
	FALSE    = 0
	TRUE     = 1
	NO_ERROR = 0

	VERTEX_SHADER   Enum = 0x8B31
	FRAGMENT_SHADER Enum = 0x8B30

	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84

	COLOR_BUFFER_BIT Enum = 0x4000
	DEPTH_BUFFER_BIT Enum = 0x0100

	ARRAY_BUFFER Enum = 0x8892
	STATIC_DRAW  Enum = 0x88E4
	DYNAMIC_DRAW Enum = 0x88E8

	FLOAT Enum = 0x1406

	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005

	TEXTURE_2D  Enum = 0x0DE1
	FRAMEBUFFER Enum = 0x8D40
)

// Kind identifies the native type of a managed resource.
type Kind int

// Resource kinds understood by the ResourceManager.
const (
	KindShader Kind = iota
	KindProgram
	KindTexture
	KindFramebuffer
	KindBuffer
	KindVertexArray
)

func (k Kind) String() string {
	switch k {
	case KindShader:
		return "shader"
	case KindProgram:
		return "program"
	case KindTexture:
		return "texture"
	case KindFramebuffer:
		return "framebuffer"
	case KindBuffer:
		return "buffer"
	case KindVertexArray:
		return "vertex array"
	default:
		return "unknown"
	}
}

// Functions abstracts the native GL calls the engine needs. The live
// implementation is returned by OpenGL, tests and headless runs use Null.
// All calls assume a native context is current on the calling thread.
type Functions interface {
	CreateShader(kind Enum) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenTexture() uint32
	DeleteTexture(texture uint32)

	GenFramebuffer() uint32
	DeleteFramebuffer(framebuffer uint32)

	GenBuffer() uint32
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, data []byte, usage Enum)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)

	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride, offset int32)

	GetUniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)

	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Viewport(x, y, width, height int32)
	DrawArrays(mode Enum, first, count int32)

	GetError() Enum
}
