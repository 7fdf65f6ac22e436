// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core holds the engine configuration and the clock service that
// paces the render and event loops.
package core

// Configuration defines a global engine configuration setting.
type Configuration struct {
	Clock   ClockConfiguration
	Display DisplayConfiguration
}

// ClockConfiguration is used to configure the engine clock.
type ClockConfiguration struct {
	// FramesPerSecond caps the viewport frame rate. Set to 0 to unlimit.
	FramesPerSecond int

	// EventPollDelay is the interval between input polls, in milliseconds.
	EventPollDelay int
}

// DisplayConfiguration is used to configure the viewport window.
type DisplayConfiguration struct {
	Title  string
	Width  uint32
	Height uint32
}
