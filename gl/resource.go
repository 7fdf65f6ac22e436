// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

// object is the shared core of every managed resource: the native handle,
// the resource kind and the back-reference to the owning manager. A zero
// handle is the sentinel for a released resource.
type object struct {
	ctx        *Context
	owner      *ResourceManager
	kind       Kind
	handle     uint32
	lastHandle uint32
}

// Handle returns the native handle, or zero once the owning manager
// released the resource.
func (o *object) Handle() uint32 {
	return o.handle
}

// Valid reports whether the resource is still live.
func (o *object) Valid() bool {
	return o.handle != 0
}

// Kind returns the native type of the resource.
func (o *object) Kind() Kind {
	return o.kind
}

// Owner returns the manager the resource registered with at creation.
// Ownership never changes over the resource's lifetime.
func (o *object) Owner() *ResourceManager {
	return o.owner
}

// live guards native calls against use after release.
func (o *object) live() error {
	if o.handle == 0 {
		return ErrUseAfterRelease
	}
	return nil
}

// destroy issues the native delete call and invalidates the handle. The
// handle is zeroed even if the native call fails so the object can never be
// freed twice.
func (o *object) destroy(fns Functions) {
	if o.handle == 0 {
		return
	}
	o.lastHandle = o.handle
	o.handle = 0
	switch o.kind {
	case KindShader:
		fns.DeleteShader(o.lastHandle)
	case KindProgram:
		fns.DeleteProgram(o.lastHandle)
	case KindTexture:
		fns.DeleteTexture(o.lastHandle)
	case KindFramebuffer:
		fns.DeleteFramebuffer(o.lastHandle)
	case KindBuffer:
		fns.DeleteBuffer(o.lastHandle)
	case KindVertexArray:
		fns.DeleteVertexArray(o.lastHandle)
	}
}

// register attaches a freshly created resource to the current manager of
// its context. Creating a resource with no open manager scope is a
// call-site error.
func register(ctx *Context, obj *object) error {
	m := ctx.Current()
	if m == nil {
		return ErrNoCurrentManager
	}
	m.register(obj)
	return nil
}
