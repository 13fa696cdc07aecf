// Command dmg is the CLI entry point: it loads a ROM, wires it to a
// presentation backend (terminal, SDL2 or headless), and drives the
// emulator's frame loop until the backend reports EmulatorQuit.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/corewave/dmgcore/dmg"
	"github.com/corewave/dmgcore/dmg/backend"
	"github.com/corewave/dmgcore/dmg/input/action"
	"github.com/corewave/dmgcore/dmg/input/event"
	"github.com/corewave/dmgcore/dmg/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "dmg"
	app.Usage = "dmg [options] <ROM file>"
	app.Description = "A Game Boy (DMG) emulator core"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "rom", Usage: "path to the ROM file"},
		cli.BoolFlag{Name: "headless", Usage: "run without a presentation backend"},
		cli.IntFlag{Name: "frames", Usage: "frames to run in headless mode (0 = unbounded)"},
		cli.StringFlag{Name: "backend", Value: "terminal", Usage: "presentation backend: terminal, sdl2"},
		cli.IntFlag{Name: "scale", Value: 4, Usage: "pixel scale factor (SDL2 backend only)"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	emu, err := dmg.NewWithFile(romPath)
	if err != nil {
		return err
	}

	var b backend.Backend
	if c.Bool("headless") {
		b = backend.NewHeadless(c.Int("frames"))
	} else {
		switch c.String("backend") {
		case "sdl2":
			b = backend.NewSDL2()
		default:
			b = backend.NewTerminal()
			emu.SetFrameLimiter(timing.NewTickerLimiter())
		}
	}

	config := backend.Config{Title: "dmg", Scale: c.Int("scale")}
	if err := b.Init(config); err != nil {
		return err
	}
	defer b.Cleanup()

	for {
		emu.RunUntilFrame()

		events, err := b.Update(emu.CurrentFrame())
		if err != nil {
			return err
		}

		for _, ev := range events {
			if ev.Action == action.EmulatorQuit && ev.Type == event.Press {
				return nil
			}
			emu.HandleAction(ev.Action, ev.Type == event.Press || ev.Type == event.Hold)
		}
	}
}
