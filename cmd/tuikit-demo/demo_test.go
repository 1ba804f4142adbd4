package main

import (
	"strings"
	"testing"

	"github.com/grindlemire/tuikit"
)

// recordingCanvas keeps the last frame as text lines.
type recordingCanvas struct {
	texts []string
	shown int
}

func (c *recordingCanvas) Clear() { c.texts = nil }
func (c *recordingCanvas) Text(x, y int, s string, highlight bool) {
	if highlight {
		s = "*" + s
	}
	c.texts = append(c.texts, s)
}
func (c *recordingCanvas) Show() { c.shown++ }

func newTestDemo(t *testing.T) *demo {
	t.Helper()
	sess, err := tuikit.NewSession()
	if err != nil {
		t.Fatal(err)
	}
	d, err := newDemo(sess, 2, 2)
	if err != nil {
		t.Fatalf("newDemo: %v", err)
	}
	sess.Start()
	return d
}

func focusedName(d *demo) string {
	el, ok := d.sess.Focus().Focused().(*tuikit.BasicElement)
	if !ok {
		return ""
	}
	return el.Name()
}

func TestDemo_Keys(t *testing.T) {
	type tc struct {
		input        []string
		focused      string
		helpOpen     bool
		presses      int
		stillRunning bool
	}

	tests := map[string]tc{
		"starts on the first button": {
			focused: "button 1.1", stillRunning: true,
		},
		"tab moves to the next button": {
			input: []string{"\t"}, focused: "button 1.2", stillRunning: true,
		},
		"down arrow moves a row": {
			input: []string{"\x1b[B"}, focused: "button 2.1", stillRunning: true,
		},
		"enter presses": {
			input: []string{"\r", "\r"}, focused: "button 1.1", presses: 2, stillRunning: true,
		},
		"question mark opens help": {
			input: []string{"?"}, focused: "ok", helpOpen: true, stillRunning: true,
		},
		"tab stays inside help": {
			input: []string{"?", "\t", "\t"}, focused: "ok", helpOpen: true, stillRunning: true,
		},
		"escape closes help and restores focus": {
			input: []string{"\t", "\x1bOP", "\x1b"}, focused: "button 1.2", stillRunning: true,
		},
		"q quits": {
			input: []string{"q"}, focused: "button 1.1",
		},
		"ctrl+c quits": {
			input: []string{"\x03"}, focused: "button 1.1",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d := newTestDemo(t)
			for _, in := range tt.input {
				d.sess.HandleBytes([]byte(in))
			}
			// Resolve a trailing lone ESC the way the escape timeout would.
			d.sess.FlushPending()

			if got := focusedName(d); got != tt.focused {
				t.Errorf("focused = %q, want %q", got, tt.focused)
			}
			if got := d.helpOpen(); got != tt.helpOpen {
				t.Errorf("help open = %v, want %v", got, tt.helpOpen)
			}
			if got := d.totalPresses(); got != tt.presses {
				t.Errorf("presses = %d, want %d", got, tt.presses)
			}
			if got := d.sess.Listening(); got != tt.stillRunning {
				t.Errorf("listening = %v, want %v", got, tt.stillRunning)
			}
		})
	}
}

func TestDemo_ClickPresses(t *testing.T) {
	d := newTestDemo(t)
	target := d.buttons[3]
	p := target.Position()

	// X10 report: button 0 press at (x, y), offsets +33 for coordinates.
	d.sess.HandleBytes([]byte{0x1b, '[', 'M', 32, byte(p.X + 33), byte(p.Y + 33)})

	if focusedName(d) != target.Name() {
		t.Errorf("focused = %q, want %q", focusedName(d), target.Name())
	}
	if d.presses[target] != 1 {
		t.Errorf("presses = %d, want 1", d.presses[target])
	}
}

func TestDemo_Draw(t *testing.T) {
	d := newTestDemo(t)
	c := &recordingCanvas{}

	d.draw(c)
	d.draw(c)

	if c.shown != 1 {
		t.Errorf("shown %d frames, want 1 (second draw is clean)", c.shown)
	}
	frame := strings.Join(c.texts, "\n")
	if !strings.Contains(frame, "*[button 1.1") {
		t.Errorf("focused button not highlighted:\n%s", frame)
	}
}
