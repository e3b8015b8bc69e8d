// Package term adapts a real terminal to the external.Frontend
// interface using tcell. It is the only package in this module that
// touches an actual screen; everything else in internal/ is
// terminal-agnostic.
package term

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/arcweave/runepad/internal/external"
)

// Terminal implements external.Frontend over a tcell.Screen.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// New opens and initializes a tcell screen.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnablePaste()
	return &Terminal{screen: screen}, nil
}

// Close tears down the screen, restoring the terminal to its prior
// state.
func (t *Terminal) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Size reports the terminal's current dimensions in character cells.
func (t *Terminal) Size() external.Size {
	t.mu.Lock()
	defer t.mu.Unlock()
	cols, rows := t.screen.Size()
	return external.Size{Rows: rows, Cols: cols}
}

// Present draws cells to the screen and flips the buffer.
func (t *Terminal) Present(cells [][]external.StyleCell) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	for y, row := range cells {
		for x, cell := range row {
			style := tcell.StyleDefault
			if cell.Bold {
				style = style.Bold(true)
			}
			if cell.Italic {
				style = style.Italic(true)
			}
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// PollKey blocks for the next key event, translating tcell's richer
// event set down to external.KeyEvent. Resize and mouse events are
// consumed and skipped; callers that need them should poll Size
// themselves on a timer or after an EventResize-triggered redraw.
func (t *Terminal) PollKey(ctx context.Context) (external.KeyEvent, error) {
	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case events <- t.screen.PollEvent():
		case <-done:
		}
	}()

	select {
	case <-ctx.Done():
		return external.KeyEvent{}, ctx.Err()
	case ev := <-events:
		switch e := ev.(type) {
		case *tcell.EventKey:
			return keyEventFromTcell(e), nil
		default:
			return t.PollKey(ctx)
		}
	}
}

func keyEventFromTcell(e *tcell.EventKey) external.KeyEvent {
	mod := e.Modifiers()
	ke := external.KeyEvent{
		Ctrl:  mod&tcell.ModCtrl != 0,
		Alt:   mod&tcell.ModAlt != 0,
		Shift: mod&tcell.ModShift != 0,
	}
	if e.Key() == tcell.KeyRune {
		ke.Rune = e.Rune()
		return ke
	}
	// tcell reports Ctrl+letter as its own Key constant rather than
	// KeyRune plus a Ctrl modifier; fold it back into the rune form so
	// callers only need to check KeyEvent.Ctrl once.
	if r, ok := ctrlLetter(e.Key()); ok {
		ke.Ctrl = true
		ke.Rune = r
		return ke
	}
	ke.Name = keyName(e.Key())
	return ke
}

func ctrlLetter(k tcell.Key) (rune, bool) {
	switch k {
	case tcell.KeyTab, tcell.KeyEnter, tcell.KeyBackspace:
		// These share their codes with Ctrl-I, Ctrl-M and Ctrl-H and are
		// reported by name instead.
		return 0, false
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return rune('a' + (k - tcell.KeyCtrlA)), true
	}
	return 0, false
}

func keyName(k tcell.Key) string {
	switch k {
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "Backspace"
	case tcell.KeyDelete:
		return "Delete"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyEscape:
		return "Escape"
	case tcell.KeyUp:
		return "Up"
	case tcell.KeyDown:
		return "Down"
	case tcell.KeyLeft:
		return "Left"
	case tcell.KeyRight:
		return "Right"
	case tcell.KeyHome:
		return "Home"
	case tcell.KeyEnd:
		return "End"
	case tcell.KeyPgUp:
		return "PageUp"
	case tcell.KeyPgDn:
		return "PageDown"
	default:
		return "Unknown"
	}
}
