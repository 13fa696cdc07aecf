// Package dmg is the root emulator facade: it owns the CPU, MMU and
// PPU, and drives them through the one-frame loop the external world
// calls into.
package dmg

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/corewave/dmgcore/dmg/cpu"
	"github.com/corewave/dmgcore/dmg/input/action"
	"github.com/corewave/dmgcore/dmg/memory"
	"github.com/corewave/dmgcore/dmg/timing"
	"github.com/corewave/dmgcore/dmg/video"
)

// Emulator wires a CPU, MMU and PPU together and drives them through
// complete frames, preserving the ordering guarantee that a step's
// opcode effects commit before the timer advances, before the PPU
// advances, before interrupts are dispatched.
type Emulator struct {
	cpu *cpu.CPU
	ppu *video.PPU
	mem *memory.MMU

	limiter    timing.Limiter
	frameCount uint64
}

func newEmulator(mem *memory.MMU) *Emulator {
	c := cpu.New(mem)
	e := &Emulator{
		cpu:     c,
		ppu:     video.New(mem),
		mem:     mem,
		limiter: timing.NewNoOpLimiter(),
	}
	mem.OnKeyPress(c.ClearStop)
	return e
}

// New returns an emulator with no cartridge loaded.
func New() *Emulator {
	return newEmulator(memory.New())
}

// NewWithFile loads the ROM at path and returns an emulator ready to run it.
func NewWithFile(path string) (*Emulator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}

	cart, err := memory.NewCartridgeWithData(data)
	if err != nil {
		return nil, fmt.Errorf("loading cartridge: %w", err)
	}
	slog.Debug("loaded cartridge", "title", cart.Title(), "size", len(data))

	return newEmulator(memory.NewWithCartridge(cart)), nil
}

// SetFrameLimiter replaces the pacing used between RunUntilFrame calls.
func (e *Emulator) SetFrameLimiter(limiter timing.Limiter) {
	e.limiter = limiter
}

// RunUntilFrame executes CPU steps, each followed by a timer tick, a
// PPU advance and interrupt dispatch, until the frame's 70,224 T-cycles
// have elapsed or the CPU enters STOP. It then waits out the frame
// limiter before returning.
func (e *Emulator) RunUntilFrame() {
	total := 0
	for total < timing.CyclesPerFrame {
		if e.cpu.Stopped() {
			break
		}

		cycles := e.cpu.Step()
		e.mem.Tick(cycles)
		e.ppu.Advance(cycles)
		e.cpu.ServiceInterrupts()

		total += cycles
	}

	e.frameCount++
	if e.frameCount%60 == 0 {
		slog.Debug("frame completed", "frame", e.frameCount)
	}

	e.limiter.WaitForNextFrame()
}

// CurrentFrame returns the most recently rendered framebuffer.
func (e *Emulator) CurrentFrame() *video.FrameBuffer {
	return e.ppu.FrameBuffer()
}

// HandleAction applies a joypad press/release directly, bypassing the
// input.Manager's debouncing and callback routing — used by backends
// that have already resolved the action/event pairing themselves.
func (e *Emulator) HandleAction(act action.Action, pressed bool) {
	key, ok := joypadKey(act)
	if !ok {
		return
	}
	if pressed {
		e.mem.Joypad.Press(key)
	} else {
		e.mem.Joypad.Release(key)
	}
}

func joypadKey(act action.Action) (memory.JoypadKey, bool) {
	switch act {
	case action.GBButtonA:
		return memory.JoypadA, true
	case action.GBButtonB:
		return memory.JoypadB, true
	case action.GBButtonStart:
		return memory.JoypadStart, true
	case action.GBButtonSelect:
		return memory.JoypadSelect, true
	case action.GBDPadUp:
		return memory.JoypadUp, true
	case action.GBDPadDown:
		return memory.JoypadDown, true
	case action.GBDPadLeft:
		return memory.JoypadLeft, true
	case action.GBDPadRight:
		return memory.JoypadRight, true
	default:
		return 0, false
	}
}

// Joypad exposes the joypad so an input.Manager can be wired to it.
func (e *Emulator) Joypad() *memory.Joypad {
	return e.mem.Joypad
}
