// Package main is a minimal terminal demo that wires the buffer engine
// to a real tcell screen. It exists to exercise the module end to end;
// it implements no editing feature beyond what internal/buffer already
// provides.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/arcweave/runepad/internal/buffer"
	"github.com/arcweave/runepad/internal/external"
	"github.com/arcweave/runepad/internal/osfs"
	"github.com/arcweave/runepad/internal/statuslog"
	"github.com/arcweave/runepad/internal/term"
)

var errQuit = errors.New("runepad: quit")

func main() {
	os.Exit(run())
}

func run() int {
	path, logLevel := parseFlags()

	level, err := statuslog.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg := statuslog.DefaultConfig()
	cfg.Level = level
	statuslog.SetGlobal(statuslog.New(cfg))

	initial, err := readInitial(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", path, err)
		return 1
	}

	screen, err := term.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start terminal: %v\n", err)
		return 1
	}
	defer screen.Close()

	size := screen.Size()
	buf := buffer.New(path, initial,
		buffer.WithFileSystem(osfs.New()),
		buffer.WithViewport(size),
	)
	defer buf.Close()

	if err := loop(screen, buf); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func readInitial(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// loop polls one key at a time, draining any syntax-parse completions
// before each redraw. A real front-end would select on both the key
// source and the completion channel concurrently; this demo keeps the
// flow linear for clarity.
func loop(screen *term.Terminal, buf *buffer.Buffer) error {
	quit := false
	km := defaultKeymap(&quit)

	for !quit {
		drainCompletions(buf)
		render(screen, buf)

		ev, err := screen.PollKey(context.Background())
		if err != nil {
			return err
		}

		action, _ := km.Feed(ev)
		if action == nil {
			if ev.Rune != 0 && ev.Name == "" {
				buf.InsertChar(string(ev.Rune))
			}
			continue
		}
		action(buf)
	}
	return errQuit
}

// defaultKeymap binds the small set of control-key actions this demo
// exercises. quit is set by Ctrl+Q so loop can exit cleanly.
func defaultKeymap(quit *bool) *buffer.Keymap {
	km := buffer.NewKeymap()
	km.Bind(func(*buffer.Buffer) { *quit = true }, external.KeyEvent{Ctrl: true, Rune: 'q'})
	km.Bind(func(b *buffer.Buffer) { _ = b.Save() }, external.KeyEvent{Ctrl: true, Rune: 's'})
	km.Bind(func(b *buffer.Buffer) { b.Undo() }, external.KeyEvent{Ctrl: true, Rune: 'z'})
	km.Bind(func(b *buffer.Buffer) { b.Redo() }, external.KeyEvent{Ctrl: true, Rune: 'y'})
	km.Bind(func(b *buffer.Buffer) { _ = b.Copy() }, external.KeyEvent{Ctrl: true, Rune: 'c'})
	km.Bind(func(b *buffer.Buffer) { _ = b.Cut() }, external.KeyEvent{Ctrl: true, Rune: 'x'})
	km.Bind(func(b *buffer.Buffer) { _ = b.Paste() }, external.KeyEvent{Ctrl: true, Rune: 'v'})
	km.Bind(func(b *buffer.Buffer) { b.InsertNewLine() }, external.KeyEvent{Name: "Enter"})
	km.Bind(func(b *buffer.Buffer) { b.InsertTab(b.Cursor().HasSelection()) }, external.KeyEvent{Name: "Tab"})
	km.Bind(func(b *buffer.Buffer) { b.DeleteBackward() }, external.KeyEvent{Name: "Backspace"})
	km.Bind(func(b *buffer.Buffer) { b.DeleteForward() }, external.KeyEvent{Name: "Delete"})
	km.Bind(func(b *buffer.Buffer) { b.MoveLeft(false) }, external.KeyEvent{Name: "Left"})
	km.Bind(func(b *buffer.Buffer) { b.MoveRight(false) }, external.KeyEvent{Name: "Right"})
	km.Bind(func(b *buffer.Buffer) { b.MoveUp(false) }, external.KeyEvent{Name: "Up"})
	km.Bind(func(b *buffer.Buffer) { b.MoveDown(false) }, external.KeyEvent{Name: "Down"})
	km.Bind(func(b *buffer.Buffer) { b.MoveToStartOfLine(false) }, external.KeyEvent{Name: "Home"})
	km.Bind(func(b *buffer.Buffer) { b.MoveToEndOfLine(false) }, external.KeyEvent{Name: "End"})
	km.Bind(func(b *buffer.Buffer) { b.MoveUpN(10, false) }, external.KeyEvent{Name: "PageUp"})
	km.Bind(func(b *buffer.Buffer) { b.MoveDownN(10, false) }, external.KeyEvent{Name: "PageDown"})
	return km
}

func drainCompletions(buf *buffer.Buffer) {
	for {
		select {
		case c := <-buf.Completions():
			buf.HandleCompletion(c)
		default:
			return
		}
	}
}

func render(screen *term.Terminal, buf *buffer.Buffer) {
	size := screen.Size()
	cells := make([][]external.StyleCell, size.Rows)
	for y := range cells {
		cells[y] = make([]external.StyleCell, size.Cols)
	}

	it := buf.Rope().Lines()
	top := int(buf.LineOffset())
	for it.Next() {
		y := int(it.Line()) - top
		if y < 0 {
			continue
		}
		if y >= size.Rows {
			break
		}
		text := []rune(it.Text())
		for x := 0; x < size.Cols && x < len(text); x++ {
			cells[y][x] = external.StyleCell{Rune: text[x]}
		}
	}
	_ = screen.Present(cells)
}

func parseFlags() (path string, logLevel string) {
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "runepad - terminal text editor core demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: runepad [options] file\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: a file path is required")
		flag.Usage()
		os.Exit(1)
	}
	return flag.Arg(0), logLevel
}
