//go:build sdl2

package backend

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/corewave/dmgcore/dmg/input/action"
	"github.com/corewave/dmgcore/dmg/input/event"
	"github.com/corewave/dmgcore/dmg/video"
)

const defaultPixelScale = 4

// SDL2 renders the framebuffer into a scaled, streamed texture with a
// real window, for hosts that have the SDL2 development libraries.
type SDL2 struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	running  bool
}

func NewSDL2() *SDL2 { return &SDL2{} }

func (s *SDL2) Init(config Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initializing SDL2: %w", err)
	}

	scale := config.Scale
	if scale <= 0 {
		scale = defaultPixelScale
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(video.Width*scale), int32(video.Height*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("creating window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating renderer: %w", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_STREAMING, video.Width, video.Height)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating texture: %w", err)
	}
	s.texture = texture

	s.running = true
	slog.Info("SDL2 backend initialized", "scale", scale)
	return nil
}

func (s *SDL2) Update(frame *video.FrameBuffer) ([]InputEvent, error) {
	var events []InputEvent
	if !s.running {
		return events, nil
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		events = append(events, s.translate(ev)...)
	}
	if !s.running {
		return events, nil
	}

	s.draw(frame)
	return events, nil
}

func (s *SDL2) Cleanup() error {
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
	return nil
}

func (s *SDL2) translate(ev sdl.Event) []InputEvent {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		s.running = false
		return []InputEvent{{Action: action.EmulatorQuit, Type: event.Press}}
	case *sdl.KeyboardEvent:
		act, ok := sdlKeyAction(e.Keysym.Sym)
		if !ok {
			return nil
		}
		if act == action.EmulatorQuit && e.Type == sdl.KEYDOWN {
			s.running = false
		}
		switch e.Type {
		case sdl.KEYDOWN:
			return []InputEvent{{Action: act, Type: event.Press}}
		case sdl.KEYUP:
			return []InputEvent{{Action: act, Type: event.Release}}
		}
	}
	return nil
}

func sdlKeyAction(key sdl.Keycode) (action.Action, bool) {
	switch key {
	case sdl.K_RETURN:
		return action.GBButtonStart, true
	case sdl.K_RSHIFT, sdl.K_LSHIFT:
		return action.GBButtonSelect, true
	case sdl.K_RIGHT:
		return action.GBDPadRight, true
	case sdl.K_LEFT:
		return action.GBDPadLeft, true
	case sdl.K_UP:
		return action.GBDPadUp, true
	case sdl.K_DOWN:
		return action.GBDPadDown, true
	case sdl.K_z:
		return action.GBButtonA, true
	case sdl.K_x:
		return action.GBButtonB, true
	case sdl.K_SPACE:
		return action.EmulatorPauseToggle, true
	case sdl.K_ESCAPE:
		return action.EmulatorQuit, true
	default:
		return 0, false
	}
}

func (s *SDL2) draw(frame *video.FrameBuffer) {
	pixels := frame.Pixels()
	buf := make([]byte, video.Width*video.Height*4)
	for i, c := range pixels {
		buf[i*4] = byte(c >> 24)
		buf[i*4+1] = byte(c >> 16)
		buf[i*4+2] = byte(c >> 8)
		buf[i*4+3] = byte(c)
	}

	s.texture.Update(nil, unsafe.Pointer(&buf[0]), video.Width*4)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
}
