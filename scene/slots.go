// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package scene

import (
	"errors"
	"fmt"
	"strings"
)

// ErrChannelRef is returned when a channel reference string is malformed.
var ErrChannelRef = errors.New("scene: invalid channel reference")

// ChannelRef points at a named channel of a node, written as
// "path/to/node:channel".
type ChannelRef struct {
	Path    string
	Channel string
}

// ParseChannelRef parses a "path:channel" string.
func ParseChannelRef(s string) (ChannelRef, error) {
	path, channel, ok := strings.Cut(s, ":")
	if !ok || path == "" || channel == "" || strings.Contains(channel, ":") {
		return ChannelRef{}, fmt.Errorf("%w: %q", ErrChannelRef, s)
	}
	return ChannelRef{Path: path, Channel: channel}, nil
}

func (r ChannelRef) String() string {
	return r.Path + ":" + r.Channel
}

// Resolve returns the node the reference points at, relative to from.
func (r ChannelRef) Resolve(from *Node) *Node {
	return from.Find(r.Path)
}

// Output is an output channel of a node and its computed value.
type Output struct {
	Name       string
	Calculated bool
	Value      interface{}
}

// Input is an input channel of a node. Ref is nil while the input is not
// connected.
type Input struct {
	Name string
	Ref  *ChannelRef
}
