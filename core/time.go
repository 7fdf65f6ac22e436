// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"time"
)

// NewClock creates a new clock service.
func NewClock(cfg ClockConfiguration) Clock {
	var frameInterval time.Duration
	if cfg.FramesPerSecond == 0 {
		frameInterval = time.Nanosecond
	} else {
		frameInterval = time.Second / time.Duration(cfg.FramesPerSecond)
	}

	pollDelay := cfg.EventPollDelay
	if pollDelay <= 0 {
		pollDelay = 1
	}

	return Clock{
		fps:         cfg.FramesPerSecond,
		frameTicker: time.NewTicker(frameInterval),
		eventTicker: time.NewTicker(time.Duration(pollDelay) * time.Millisecond),
	}
}

// Clock paces the render and event loops.
type Clock struct {
	fps int

	frameTicker *time.Ticker
	eventTicker *time.Ticker
}

// Fps gets the configured frames per second.
func (c *Clock) Fps() int {
	return c.fps
}

// FrameTicker gets the ticker that paces frame rendering.
func (c *Clock) FrameTicker() *time.Ticker {
	return c.frameTicker
}

// EventTicker gets the ticker that paces input polling.
func (c *Clock) EventTicker() *time.Ticker {
	return c.eventTicker
}

// Stop stops the underlying tickers.
func (c *Clock) Stop() {
	c.frameTicker.Stop()
	c.eventTicker.Stop()
}
