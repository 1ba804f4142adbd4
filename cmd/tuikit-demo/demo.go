package main

import (
	"fmt"

	"github.com/grindlemire/tuikit"
)

const (
	mainContainer = "main"
	helpContainer = "help"

	buttonWidth = 14
	buttonGap   = 2
	rowHeight   = 3
	gridTop     = 2
	gridLeft    = 2
)

var helpLines = []string{
	"tab, shift+tab   move through buttons",
	"arrow keys       move to the nearest button",
	"enter, click     press the focused button",
	"escape           close this dialog",
	"q, ctrl+c        quit",
}

// canvas is the drawing surface a backend provides.
type canvas interface {
	Clear()
	Text(x, y int, s string, highlight bool)
	Show()
}

// demo owns the widgets and draws them. All methods run on the input loop.
type demo struct {
	sess    *tuikit.Session
	buttons []*tuikit.BasicElement
	help    []*tuikit.BasicElement
	presses map[*tuikit.BasicElement]int
	rows    int
	status  string
	dirty   bool
}

func newDemo(sess *tuikit.Session, cols, rows int) (*demo, error) {
	d := &demo{
		sess:    sess,
		presses: make(map[*tuikit.BasicElement]int),
		rows:    rows,
		status:  "ready",
		dirty:   true,
	}
	fm := sess.Focus()

	fm.On(tuikit.FocusEventChange, func(ev tuikit.FocusEvent) {
		if el, ok := ev.Target.(*tuikit.BasicElement); ok {
			d.status = "focused " + el.Name()
		}
		d.dirty = true
	})

	if _, err := fm.CreateContainer(mainContainer, tuikit.WithWrapAround(true)); err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			btn := tuikit.NewElement(
				tuikit.WithName(fmt.Sprintf("button %d.%d", r+1, c+1)),
				tuikit.WithPosition(gridLeft+c*(buttonWidth+buttonGap), gridTop+r*rowHeight),
				tuikit.WithSize(buttonWidth, 1),
				tuikit.WithOnInput(d.onButtonInput),
			)
			if err := fm.AddElement(btn, mainContainer); err != nil {
				return nil, err
			}
			d.buttons = append(d.buttons, btn)
		}
	}

	if _, err := fm.CreateContainer(helpContainer); err != nil {
		return nil, err
	}
	helpTop := gridTop + 2 + len(helpLines)
	for i, label := range []string{"ok", "close"} {
		btn := tuikit.NewElement(
			tuikit.WithName(label),
			tuikit.WithPosition(gridLeft+4+i*10, helpTop),
			tuikit.WithSize(8, 1),
			tuikit.WithHidden(),
			tuikit.WithOnInput(d.onHelpInput),
		)
		if err := fm.AddElement(btn, helpContainer); err != nil {
			return nil, err
		}
		d.help = append(d.help, btn)
	}

	dispatcher := sess.Dispatcher()
	dispatcher.Subscribe(func(tuikit.Event) bool {
		d.dirty = true
		return false
	})
	dispatcher.SubscribeKey("c", func(ev tuikit.Event) bool {
		if ke := ev.(tuikit.KeyEvent); ke.Ctrl {
			d.sess.Stop()
			return true
		}
		return false
	})
	dispatcher.SubscribeKey("q", func(ev tuikit.Event) bool {
		if ke := ev.(tuikit.KeyEvent); ke.HasModifiers() || d.helpOpen() {
			return false
		}
		d.sess.Stop()
		return true
	})
	dispatcher.SubscribeKey("?", func(tuikit.Event) bool { return d.openHelp() })
	dispatcher.SubscribeKey(tuikit.KeyF1, func(tuikit.Event) bool { return d.openHelp() })
	dispatcher.SubscribeKey(tuikit.KeyEscape, func(tuikit.Event) bool { return d.closeHelp() })

	return d, nil
}

func (d *demo) helpOpen() bool {
	return d.sess.Focus().ModalDepth() > 0
}

func (d *demo) openHelp() bool {
	if d.helpOpen() {
		return false
	}
	fm := d.sess.Focus()
	for _, btn := range d.help {
		btn.SetVisible(true)
	}
	if err := fm.PushModal(helpContainer); err != nil {
		d.status = err.Error()
		return false
	}
	fm.FocusFrom(d.help[0], tuikit.FocusSourceProgrammatic)
	d.status = "help"
	return true
}

func (d *demo) closeHelp() bool {
	if !d.helpOpen() {
		return false
	}
	d.sess.Focus().PopModal()
	for _, btn := range d.help {
		btn.SetVisible(false)
	}
	return true
}

func (d *demo) onButtonInput(btn *tuikit.BasicElement, ev tuikit.Event) bool {
	switch e := ev.(type) {
	case tuikit.KeyEvent:
		if !e.Is(tuikit.KeyEnter) && !e.Is(" ") {
			return false
		}
	case tuikit.MouseEvent:
		if e.Action != tuikit.MousePress || e.Button != tuikit.MouseLeft {
			return false
		}
	default:
		return false
	}
	d.presses[btn]++
	d.status = fmt.Sprintf("pressed %s (%d)", btn.Name(), d.presses[btn])
	return true
}

func (d *demo) onHelpInput(_ *tuikit.BasicElement, ev tuikit.Event) bool {
	if ke, ok := ev.(tuikit.KeyEvent); ok && ke.Is(tuikit.KeyEnter) {
		return d.closeHelp()
	}
	if me, ok := ev.(tuikit.MouseEvent); ok && me.Action == tuikit.MousePress {
		return d.closeHelp()
	}
	return false
}

func (d *demo) totalPresses() int {
	n := 0
	for _, p := range d.presses {
		n += p
	}
	return n
}

// draw repaints everything if anything changed since the last draw.
func (d *demo) draw(c canvas) {
	if !d.dirty {
		return
	}
	d.dirty = false

	c.Clear()
	c.Text(gridLeft, 0, "tuikit demo  (? for help, q to quit)", false)
	for _, btn := range d.buttons {
		p := btn.Position()
		label := fmt.Sprintf("[%-*s]", buttonWidth-2, btn.Name())
		c.Text(p.X, p.Y, label, btn.Focused())
	}

	if d.helpOpen() {
		for i, line := range helpLines {
			c.Text(gridLeft+2, gridTop+1+i, " "+line+" ", false)
		}
		for _, btn := range d.help {
			p := btn.Position()
			c.Text(p.X, p.Y, "<"+btn.Name()+">", btn.Focused())
		}
	}

	c.Text(gridLeft, gridTop+d.rows*rowHeight, d.status, false)
	c.Show()
}
