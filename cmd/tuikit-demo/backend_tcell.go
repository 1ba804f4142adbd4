package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/tuikit"
	"github.com/grindlemire/tuikit/tcellinput"
)

// runTCell drives the demo from a tcell screen.
func runTCell(ctx context.Context, d *demo) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	c := &tcellCanvas{screen: screen}
	d.draw(c)
	return tcellinput.Run(ctx, screen, d.sess, tcellinput.WithAfterEvent(func(tuikit.Event, bool) {
		d.draw(c)
	}))
}

// tcellCanvas draws onto a tcell screen.
type tcellCanvas struct {
	screen tcell.Screen
}

func (c *tcellCanvas) Clear() {
	c.screen.Clear()
}

func (c *tcellCanvas) Text(x, y int, s string, highlight bool) {
	style := tcell.StyleDefault
	if highlight {
		style = style.Reverse(true)
	}
	for _, r := range s {
		c.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (c *tcellCanvas) Show() {
	c.screen.Show()
}
