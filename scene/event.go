// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package scene

import (
	log "github.com/sirupsen/logrus"
)

// EventKind names a category of events flowing through the scene.
type EventKind string

// Event kinds emitted by the engine core.
const (
	EventValueChanged      EventKind = "value.changed"
	EventPathChanged       EventKind = "path.changed"
	EventNameChanged       EventKind = "name.changed"
	EventParentChanged     EventKind = "parent.changed"
	EventViewportUpdate    EventKind = "viewport.update"
	EventActiveNodeChanged EventKind = "active-node.changed"
)

// Direction controls how a node event propagates through the hierarchy.
type Direction int

// Event propagation directions.
const (
	// Both propagates the event up and down from the emitting node.
	Both Direction = iota
	Up
	Down
	Local
)

// Event is what listeners receive. Source is the object the event
// originated from, a *Node or a Parameter.
type Event struct {
	Kind   EventKind
	Data   map[string]interface{}
	Source interface{}
}

// Listener is a callback bound to an event kind.
type Listener func(Event)

type binding struct {
	fn     Listener
	filter func(Event) bool
}

// Handler dispatches events to bound listeners. A listener that panics is
// logged and skipped, it never takes down the emitter.
type Handler struct {
	bindings map[EventKind][]binding
}

// Bind registers fn for events of the given kind.
func (h *Handler) Bind(kind EventKind, fn Listener) {
	h.bind(kind, fn, nil)
}

func (h *Handler) bind(kind EventKind, fn Listener, filter func(Event) bool) {
	if h.bindings == nil {
		h.bindings = make(map[EventKind][]binding)
	}
	h.bindings[kind] = append(h.bindings[kind], binding{fn: fn, filter: filter})
}

// Emit invokes every listener bound to the event's kind.
func (h *Handler) Emit(ev Event) {
	for _, b := range h.bindings[ev.Kind] {
		if b.filter != nil && !b.filter(ev) {
			continue
		}
		invoke(b.fn, ev)
	}
}

func invoke(fn Listener, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"kind":  ev.Kind,
				"panic": r,
			}).Error("event listener panicked")
		}
	}()
	fn(ev)
}
