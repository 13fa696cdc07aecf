// Package backend defines the interface a presentation + input adapter
// implements: render a framebuffer, collect host input, clean up on exit.
package backend

import (
	"github.com/corewave/dmgcore/dmg/input/action"
	"github.com/corewave/dmgcore/dmg/input/event"
	"github.com/corewave/dmgcore/dmg/video"
)

// InputEvent is one action/event-type pair a backend observed this Update.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// Backend is a complete presentation + input adapter: a terminal window,
// an SDL window, or a headless frame sink for batch runs.
type Backend interface {
	// Init configures the backend. Called once before the first Update.
	Init(config Config) error

	// Update renders frame and returns whatever input events the host
	// reported since the previous call.
	Update(frame *video.FrameBuffer) ([]InputEvent, error)

	// Cleanup releases backend resources on shutdown.
	Cleanup() error
}

// Config holds the options common to every backend implementation.
type Config struct {
	Title string
	Scale int
}
