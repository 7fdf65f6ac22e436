// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// parameter errors
var (
	ErrParamExists  = errors.New("scene: parameter name already occupied")
	ErrParamUnknown = errors.New("scene: unknown parameter")
)

// Parameter is a named, typed value attached to a node. Changing the value
// emits EventValueChanged on the parameter and on the owning node, which is
// how behaviours react to edits.
type Parameter interface {
	Name() string
	Label() string
	Value() interface{}
	SetValue(v interface{}) error

	// Bind registers a listener for events emitted by this parameter.
	Bind(kind EventKind, fn Listener)
}

// Parameters is an ordered collection of a node's parameters.
type Parameters struct {
	node   *Node
	params []Parameter
}

// Add appends a parameter to the collection.
func (p *Parameters) Add(param Parameter) error {
	for _, other := range p.params {
		if other.Name() == param.Name() {
			return fmt.Errorf("%w: %q", ErrParamExists, param.Name())
		}
	}
	if bp, ok := param.(interface{ setOwner(*Parameters) }); ok {
		bp.setOwner(p)
	}
	p.params = append(p.params, param)
	return nil
}

// Param returns the parameter with the given name, or nil.
func (p *Parameters) Param(name string) Parameter {
	for _, param := range p.params {
		if param.Name() == name {
			return param
		}
	}
	return nil
}

// Remove deletes the named parameter from the collection.
func (p *Parameters) Remove(name string) error {
	for i, param := range p.params {
		if param.Name() == name {
			p.params = append(p.params[:i], p.params[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrParamUnknown, name)
}

// Len reports the number of parameters.
func (p *Parameters) Len() int {
	return len(p.params)
}

// Get returns the value of the named parameter.
func (p *Parameters) Get(name string) (interface{}, error) {
	param := p.Param(name)
	if param == nil {
		return nil, fmt.Errorf("%w: %q", ErrParamUnknown, name)
	}
	return param.Value(), nil
}

// Set changes the value of the named parameter.
func (p *Parameters) Set(name string, value interface{}) error {
	param := p.Param(name)
	if param == nil {
		return fmt.Errorf("%w: %q", ErrParamUnknown, name)
	}
	return param.SetValue(value)
}

// baseParam carries the naming and event plumbing shared by all parameter
// types.
type baseParam struct {
	name   string
	label  string
	owner  *Parameters
	events Handler
}

func (b *baseParam) Name() string  { return b.name }
func (b *baseParam) Label() string { return b.label }

func (b *baseParam) Bind(kind EventKind, fn Listener) {
	b.events.Bind(kind, fn)
}

func (b *baseParam) setOwner(p *Parameters) {
	b.owner = p
}

// changed fires value-changed on the parameter and forwards it to the
// owning node, when there is one.
func (b *baseParam) changed(param Parameter) {
	ev := Event{
		Kind:   EventValueChanged,
		Data:   map[string]interface{}{"param": b.name},
		Source: param,
	}
	b.events.Emit(ev)
	if b.owner != nil && b.owner.node != nil {
		b.owner.node.deliver(ev, Local)
	}
}

// Text is a string-valued parameter. Multiline text is how user shader and
// script sources are held.
type Text struct {
	baseParam
	Multiline bool
	Syntax    string

	value string
}

// NewText creates a text parameter.
func NewText(name, label string, multiline bool) *Text {
	return &Text{baseParam: baseParam{name: name, label: label}, Multiline: multiline}
}

// Text returns the current text.
func (t *Text) Text() string { return t.value }

// SetText replaces the text and notifies listeners.
func (t *Text) SetText(v string) {
	t.value = v
	t.changed(t)
}

// Value implements Parameter.
func (t *Text) Value() interface{} { return t.value }

// SetValue implements Parameter, accepting a string.
func (t *Text) SetValue(v interface{}) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("scene: parameter %q wants string, got %T", t.name, v)
	}
	t.SetText(s)
	return nil
}

// Number is a float64-valued parameter with optional bounds.
type Number struct {
	baseParam
	Min, Max *float64
	Integer  bool

	value float64
}

// NewNumber creates a number parameter.
func NewNumber(name, label string, value float64) *Number {
	return &Number{baseParam: baseParam{name: name, label: label}, value: value}
}

// Float returns the current value.
func (n *Number) Float() float64 { return n.value }

// SetFloat clamps v into the parameter's bounds, stores it and notifies
// listeners.
func (n *Number) SetFloat(v float64) {
	if n.Min != nil && v < *n.Min {
		v = *n.Min
	}
	if n.Max != nil && v > *n.Max {
		v = *n.Max
	}
	if n.Integer {
		v = float64(int64(v))
	}
	n.value = v
	n.changed(n)
}

// Value implements Parameter.
func (n *Number) Value() interface{} { return n.value }

// SetValue implements Parameter, accepting float64 or int.
func (n *Number) SetValue(v interface{}) error {
	switch x := v.(type) {
	case float64:
		n.SetFloat(x)
	case int:
		n.SetFloat(float64(x))
	default:
		return fmt.Errorf("scene: parameter %q wants a number, got %T", n.name, v)
	}
	return nil
}

// Vec3 is a three-component vector parameter, used for colors and
// positions.
type Vec3 struct {
	baseParam

	value mgl32.Vec3
}

// NewVec3 creates a vector parameter.
func NewVec3(name, label string, value mgl32.Vec3) *Vec3 {
	return &Vec3{baseParam: baseParam{name: name, label: label}, value: value}
}

// Vec returns the current vector.
func (v *Vec3) Vec() mgl32.Vec3 { return v.value }

// SetVec replaces the vector and notifies listeners.
func (v *Vec3) SetVec(val mgl32.Vec3) {
	v.value = val
	v.changed(v)
}

// Value implements Parameter.
func (v *Vec3) Value() interface{} { return v.value }

// SetValue implements Parameter, accepting an mgl32.Vec3.
func (v *Vec3) SetValue(val interface{}) error {
	vec, ok := val.(mgl32.Vec3)
	if !ok {
		return fmt.Errorf("scene: parameter %q wants mgl32.Vec3, got %T", v.name, val)
	}
	v.SetVec(vec)
	return nil
}
