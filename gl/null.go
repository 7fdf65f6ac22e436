// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

// Null returns a Functions implementation that performs no native calls.
// Handles are distinct and non-zero, compilation and linking always
// succeed. It backs tests and headless runs where no context exists.
func Null() Functions {
	return &nullFunctions{}
}

type nullFunctions struct {
	next uint32
}

func (n *nullFunctions) handle() uint32 {
	n.next++
	return n.next
}

func (n *nullFunctions) CreateShader(Enum) uint32        { return n.handle() }
func (n *nullFunctions) ShaderSource(uint32, string)     {}
func (n *nullFunctions) CompileShader(uint32)            {}
func (n *nullFunctions) GetShaderi(uint32, Enum) int32   { return TRUE }
func (n *nullFunctions) GetShaderInfoLog(uint32) string  { return "" }
func (n *nullFunctions) DeleteShader(uint32)             {}
func (n *nullFunctions) CreateProgram() uint32           { return n.handle() }
func (n *nullFunctions) AttachShader(uint32, uint32)     {}
func (n *nullFunctions) DetachShader(uint32, uint32)     {}
func (n *nullFunctions) LinkProgram(uint32)              {}
func (n *nullFunctions) GetProgrami(uint32, Enum) int32  { return TRUE }
func (n *nullFunctions) GetProgramInfoLog(uint32) string { return "" }
func (n *nullFunctions) UseProgram(uint32)               {}
func (n *nullFunctions) DeleteProgram(uint32)            {}
func (n *nullFunctions) GenTexture() uint32              { return n.handle() }
func (n *nullFunctions) DeleteTexture(uint32)            {}
func (n *nullFunctions) GenFramebuffer() uint32          { return n.handle() }
func (n *nullFunctions) DeleteFramebuffer(uint32)        {}
func (n *nullFunctions) GenBuffer() uint32               { return n.handle() }
func (n *nullFunctions) BindBuffer(Enum, uint32)         {}
func (n *nullFunctions) BufferData(Enum, []byte, Enum)   {}
func (n *nullFunctions) DeleteBuffer(uint32)             {}
func (n *nullFunctions) GenVertexArray() uint32          { return n.handle() }
func (n *nullFunctions) BindVertexArray(uint32)          {}
func (n *nullFunctions) DeleteVertexArray(uint32)        {}
func (n *nullFunctions) EnableVertexAttribArray(uint32)  {}
func (n *nullFunctions) VertexAttribPointer(uint32, int32, Enum, bool, int32, int32) {
}
func (n *nullFunctions) GetUniformLocation(uint32, string) int32 { return 0 }
func (n *nullFunctions) Uniform1f(int32, float32)                {}
func (n *nullFunctions) Uniform2f(int32, float32, float32)       {}
func (n *nullFunctions) Uniform3f(int32, float32, float32, float32) {
}
func (n *nullFunctions) ClearColor(float32, float32, float32, float32) {
}
func (n *nullFunctions) Clear(Enum) {}
func (n *nullFunctions) Viewport(int32, int32, int32, int32) {
}
func (n *nullFunctions) DrawArrays(Enum, int32, int32) {}
func (n *nullFunctions) GetError() Enum                { return NO_ERROR }
