package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/stvsmth/conway-life/model"
)

const (
	// Live cells are drawn as a pair of block glyphs so they come out
	// roughly square in a typical terminal font.
	liveGlyph = '█'

	statusRows = 1
)

// Terminal renders frames to the controlling terminal via tcell. The
// screen is an exclusive resource: Init acquires it and Fini restores the
// terminal, whatever way the run ends.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal returns an unacquired terminal renderer. Call Init before
// the first Render.
func NewTerminal() *Terminal { return &Terminal{} }

// Init acquires the terminal screen and switches it to raw mode.
func (t *Terminal) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[Init] terminal unavailable")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[Init] failed to initialize screen")
	}
	screen.HideCursor()
	t.screen = screen
	return nil
}

// Fini restores the terminal. Safe to call repeatedly and before Init.
func (t *Terminal) Fini() {
	if t.screen != nil {
		t.screen.Fini()
		t.screen = nil
	}
}

// Render draws the status line and the grid, then reports one input
// signal observed since the previous call. Cells beyond the terminal
// edge are clipped, not an error.
func (t *Terminal) Render(frame model.Frame) (model.Signal, error) {
	if t.screen == nil {
		return model.SignalNone, errors.New("[Render] screen not acquired, call Init first")
	}

	t.screen.Clear()
	t.drawStatus(frame)

	style := tcell.StyleDefault
	for row, cells := range frame.Cells {
		for col, alive := range cells {
			if !alive {
				continue
			}
			t.screen.SetContent(col*2, row+statusRows, liveGlyph, nil, style)
			t.screen.SetContent(col*2+1, row+statusRows, liveGlyph, nil, style)
		}
	}
	t.screen.Show()

	return t.pollSignal(), nil
}

func (t *Terminal) drawStatus(frame model.Frame) {
	state := "running"
	if frame.Paused {
		state = "PAUSED"
	}
	status := fmt.Sprintf("gen %d | pop %d | %.1f gen/s | %s | space pauses, q quits",
		frame.Generation, frame.Population, frame.GensPerSec, state)

	style := tcell.StyleDefault.Reverse(true)
	width, _ := t.screen.Size()
	for col, glyph := range []rune(status) {
		if col >= width {
			break
		}
		t.screen.SetContent(col, 0, glyph, nil, style)
	}
}

// pollSignal drains pending events without blocking; the cadence wait
// lives in the game loop, so Render must never stall. Quit wins over
// toggle when both arrive between frames.
func (t *Terminal) pollSignal() model.Signal {
	signal := model.SignalNone
	for t.screen.HasPendingEvent() {
		switch event := t.screen.PollEvent().(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			switch {
			case event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC:
				return model.SignalQuit
			case event.Rune() == 'q' || event.Rune() == 'Q':
				return model.SignalQuit
			case event.Rune() == ' ' || event.Rune() == 'p':
				signal = model.SignalToggleRun
			}
		}
	}
	return signal
}
