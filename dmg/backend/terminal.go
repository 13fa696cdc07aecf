package backend

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/corewave/dmgcore/dmg/input"
	"github.com/corewave/dmgcore/dmg/input/action"
	"github.com/corewave/dmgcore/dmg/input/event"
	"github.com/corewave/dmgcore/dmg/render"
	"github.com/corewave/dmgcore/dmg/video"
)

// keyTimeout is slightly longer than a typical key-repeat interval, so
// a still-held key doesn't flicker through Release/Press each poll.
const keyTimeout = 100 * time.Millisecond

// Terminal renders the framebuffer as half-block Unicode glyphs and
// reads keyboard input, both via tcell.
type Terminal struct {
	screen     tcell.Screen
	running    bool
	eventQueue []InputEvent

	keyStates  map[action.Action]time.Time
	activeKeys map[action.Action]bool

	keyMapping map[tcell.Key]action.Action
	runeMap    map[rune]action.Action
}

func NewTerminal() *Terminal {
	return &Terminal{
		keyMapping: buildKeyMapping(),
		runeMap:    buildRuneMapping(),
	}
}

func (t *Terminal) Init(config Config) error {
	t.eventQueue = nil
	t.keyStates = make(map[action.Action]time.Time)
	t.activeKeys = make(map[action.Action]bool)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}

	t.screen = screen
	t.running = true
	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	slog.Info("terminal backend initialized", "title", config.Title)
	return nil
}

func (t *Terminal) Update(frame *video.FrameBuffer) ([]InputEvent, error) {
	var events []InputEvent
	now := time.Now()

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	currentlyActive := make(map[action.Action]bool)
	for act, lastPressed := range t.keyStates {
		if action.GetInfo(act).Category != action.CategoryGameInput {
			continue
		}
		if now.Sub(lastPressed) < keyTimeout {
			currentlyActive[act] = true
			if !t.activeKeys[act] {
				events = append(events, InputEvent{Action: act, Type: event.Press})
			} else {
				events = append(events, InputEvent{Action: act, Type: event.Hold})
			}
		} else {
			delete(t.keyStates, act)
		}
	}
	for act := range t.activeKeys {
		if !currentlyActive[act] {
			events = append(events, InputEvent{Action: act, Type: event.Release})
		}
	}
	t.activeKeys = currentlyActive

	events = append(events, t.eventQueue...)
	t.eventQueue = nil

	if !t.running {
		return events, nil
	}

	t.render(frame)
	t.screen.Show()
	return events, nil
}

func (t *Terminal) Cleanup() error {
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

func (t *Terminal) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	if act, ok := t.keyMapping[ev.Key()]; ok {
		t.dispatchKey(act, now)
		return
	}
	if ev.Key() == tcell.KeyRune {
		if act, ok := t.runeMap[ev.Rune()]; ok {
			t.dispatchKey(act, now)
		}
	}
}

func (t *Terminal) dispatchKey(act action.Action, now time.Time) {
	if act == action.EmulatorQuit {
		t.running = false
	}
	if action.GetInfo(act).Category == action.CategoryGameInput {
		if isDPad(act) {
			delete(t.keyStates, action.GBDPadUp)
			delete(t.keyStates, action.GBDPadDown)
			delete(t.keyStates, action.GBDPadLeft)
			delete(t.keyStates, action.GBDPadRight)
		}
		t.keyStates[act] = now
		return
	}
	t.eventQueue = append(t.eventQueue, InputEvent{Action: act, Type: event.Press})
}

func isDPad(act action.Action) bool {
	return act == action.GBDPadUp || act == action.GBDPadDown || act == action.GBDPadLeft || act == action.GBDPadRight
}

var tcellKeyNames = map[tcell.Key]string{
	tcell.KeyEnter:  "Enter",
	tcell.KeyUp:     "Up",
	tcell.KeyDown:   "Down",
	tcell.KeyLeft:   "Left",
	tcell.KeyRight:  "Right",
	tcell.KeyEscape: "Escape",
}

var tcellRuneNames = map[rune]string{
	'z': "z", 'x': "x", 'w': "w", 's': "s", 'a': "a", 'd': "d",
	'p': "p", 'q': "q", ' ': "Space",
}

func buildKeyMapping() map[tcell.Key]action.Action {
	mapping := make(map[tcell.Key]action.Action)
	for key, name := range tcellKeyNames {
		if act, ok := input.GetDefaultMapping(name); ok {
			mapping[key] = act
		}
	}
	mapping[tcell.KeyCtrlC] = action.EmulatorQuit
	return mapping
}

func buildRuneMapping() map[rune]action.Action {
	mapping := make(map[rune]action.Action)
	for r, name := range tcellRuneNames {
		if act, ok := input.GetDefaultMapping(name); ok {
			mapping[r] = act
		}
	}
	return mapping
}

func (t *Terminal) render(frame *video.FrameBuffer) {
	termWidth, termHeight := t.screen.Size()
	if termWidth < video.Width || termHeight < video.Height/2+2 {
		t.screen.Clear()
		msg := fmt.Sprintf("terminal too small, need at least %dx%d", video.Width, video.Height/2+2)
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		for i, ch := range msg {
			t.screen.SetContent(i, termHeight/2, ch, nil, style)
		}
		return
	}

	t.screen.Clear()
	shadeColors := []tcell.Color{tcell.ColorBlack, tcell.ColorGray, tcell.ColorSilver, tcell.ColorWhite}

	for y := 0; y < video.Height; y += 2 {
		for x := 0; x < video.Width; x++ {
			topShade := render.ShadeOf(frame.At(x, y))
			bottomShade := 3
			if y+1 < video.Height {
				bottomShade = render.ShadeOf(frame.At(x, y+1))
			}

			char := render.HalfBlockChar(topShade, bottomShade)
			fg, bg := shadeColors[topShade], shadeColors[bottomShade]
			if topShade == bottomShade {
				bg = tcell.ColorDefault
			}
			t.screen.SetContent(x, y/2+1, char, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}
