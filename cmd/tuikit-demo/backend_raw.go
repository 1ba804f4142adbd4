package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/grindlemire/tuikit"
)

const (
	enterAltScreen = "\x1b[?1049h\x1b[?1000h\x1b[?25l"
	leaveAltScreen = "\x1b[?25h\x1b[?1000l\x1b[?1049l"
)

// runRaw drives the demo from raw stdin through tuikit's own decoder.
func runRaw(ctx context.Context, d *demo) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	fmt.Fprint(os.Stdout, enterAltScreen)
	defer fmt.Fprint(os.Stdout, leaveAltScreen)

	src, err := tuikit.NewTerminalSource(os.Stdin)
	if err != nil {
		return err
	}
	defer src.Close()

	c := &ansiCanvas{w: bufio.NewWriter(os.Stdout)}
	return d.sess.Listen(ctx, &drawingSource{ByteSource: src, d: d, c: c})
}

// drawingSource repaints before each poll, so the screen reflects every
// batch of input once it has been dispatched.
type drawingSource struct {
	tuikit.ByteSource
	d *demo
	c canvas
}

func (s *drawingSource) Poll(timeout time.Duration) (tuikit.Input, error) {
	s.d.draw(s.c)
	return s.ByteSource.Poll(timeout)
}

// ansiCanvas draws with plain ANSI escape sequences.
type ansiCanvas struct {
	w *bufio.Writer
}

func (c *ansiCanvas) Clear() {
	c.w.WriteString("\x1b[2J")
}

func (c *ansiCanvas) Text(x, y int, s string, highlight bool) {
	fmt.Fprintf(c.w, "\x1b[%d;%dH", y+1, x+1)
	if highlight {
		c.w.WriteString("\x1b[7m")
	}
	c.w.WriteString(s)
	if highlight {
		c.w.WriteString("\x1b[0m")
	}
}

func (c *ansiCanvas) Show() {
	c.w.Flush()
}
