// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

import "errors"

// package errors
var (
	// ErrNoCurrentManager is returned when a resource is created while no
	// ResourceManager is current on the context. It indicates a missing
	// Begin/Scope at the call site and is never retried internally.
	ErrNoCurrentManager = errors.New("gl: no current resource manager")

	// ErrStackDiscipline is returned when End is called on a manager that
	// is not the innermost current one.
	ErrStackDiscipline = errors.New("gl: resource manager is not the innermost scope")

	// ErrUseAfterRelease is returned when a resource is used after its
	// owning manager released it.
	ErrUseAfterRelease = errors.New("gl: resource used after release")
)
