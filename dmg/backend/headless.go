package backend

import (
	"log/slog"

	"github.com/corewave/dmgcore/dmg/input/action"
	"github.com/corewave/dmgcore/dmg/input/event"
	"github.com/corewave/dmgcore/dmg/video"
)

// Headless runs a fixed number of frames with no rendering or input,
// for batch/CI use and for driving the core under test.
type Headless struct {
	maxFrames  int
	frameCount int
}

// NewHeadless returns a Headless backend that quits after maxFrames
// frames (0 means run forever, until the host stops calling Update).
func NewHeadless(maxFrames int) *Headless {
	return &Headless{maxFrames: maxFrames}
}

func (h *Headless) Init(config Config) error {
	slog.Info("running headless", "max_frames", h.maxFrames)
	return nil
}

func (h *Headless) Update(frame *video.FrameBuffer) ([]InputEvent, error) {
	h.frameCount++
	if h.frameCount%60 == 0 {
		slog.Debug("frame progress", "completed", h.frameCount)
	}
	if h.maxFrames > 0 && h.frameCount >= h.maxFrames {
		return []InputEvent{{Action: action.EmulatorQuit, Type: event.Press}}, nil
	}
	return nil, nil
}

func (h *Headless) Cleanup() error {
	slog.Info("headless run complete", "frames", h.frameCount)
	return nil
}
