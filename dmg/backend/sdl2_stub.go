//go:build !sdl2

package backend

import (
	"fmt"

	"github.com/corewave/dmgcore/dmg/video"
)

// SDL2 is a stub used when the sdl2 build tag is not set; the real
// implementation requires the SDL2 development libraries at build time.
type SDL2 struct{}

func NewSDL2() *SDL2 { return &SDL2{} }

func (s *SDL2) Init(config Config) error {
	return fmt.Errorf("SDL2 backend not available: rebuild with -tags sdl2")
}

func (s *SDL2) Update(frame *video.FrameBuffer) ([]InputEvent, error) {
	return nil, fmt.Errorf("SDL2 backend not available")
}

func (s *SDL2) Cleanup() error { return nil }
