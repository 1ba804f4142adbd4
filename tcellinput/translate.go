package tcellinput

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/tuikit"
)

// specialKeys maps tcell's named keys onto tuikit key names. Several tcell
// control keys share codes with these (KeyTab is KeyCtrlI), so this table is
// consulted before the control range.
var specialKeys = map[tcell.Key]string{
	tcell.KeyUp:         tuikit.KeyUp,
	tcell.KeyDown:       tuikit.KeyDown,
	tcell.KeyLeft:       tuikit.KeyLeft,
	tcell.KeyRight:      tuikit.KeyRight,
	tcell.KeyHome:       tuikit.KeyHome,
	tcell.KeyEnd:        tuikit.KeyEnd,
	tcell.KeyPgUp:       tuikit.KeyPageUp,
	tcell.KeyPgDn:       tuikit.KeyPageDown,
	tcell.KeyInsert:     tuikit.KeyInsert,
	tcell.KeyDelete:     tuikit.KeyDelete,
	tcell.KeyTab:        tuikit.KeyTab,
	tcell.KeyEnter:      tuikit.KeyEnter,
	tcell.KeyBackspace:  tuikit.KeyBackspace,
	tcell.KeyBackspace2: tuikit.KeyBackspace,
	tcell.KeyEscape:     tuikit.KeyEscape,
	tcell.KeyF1:         tuikit.KeyF1,
	tcell.KeyF2:         tuikit.KeyF2,
	tcell.KeyF3:         tuikit.KeyF3,
	tcell.KeyF4:         tuikit.KeyF4,
	tcell.KeyF5:         tuikit.KeyF5,
	tcell.KeyF6:         tuikit.KeyF6,
	tcell.KeyF7:         tuikit.KeyF7,
	tcell.KeyF8:         tuikit.KeyF8,
	tcell.KeyF9:         tuikit.KeyF9,
	tcell.KeyF10:        tuikit.KeyF10,
	tcell.KeyF11:        tuikit.KeyF11,
	tcell.KeyF12:        tuikit.KeyF12,
}

// ctrlPunct covers the control codes above Ctrl+Z.
var ctrlPunct = map[tcell.Key]string{
	tcell.KeyCtrlBackslash:  "\\",
	tcell.KeyCtrlRightSq:    "]",
	tcell.KeyCtrlCarat:      "^",
	tcell.KeyCtrlUnderscore: "_",
}

const pressMask = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// Translator converts tcell events into tuikit events. It remembers the
// held mouse button so a report with no buttons can be told apart as a
// release or a plain move. The zero value is ready to use.
type Translator struct {
	held tcell.ButtonMask
	last tuikit.MouseButton
}

// Translate converts ev. The boolean is false for events with no tuikit
// equivalent (wheel, paste, focus, interrupts, unknown keys).
func (t *Translator) Translate(ev tcell.Event) (tuikit.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return translateKey(e)
	case *tcell.EventMouse:
		return t.translateMouse(e)
	case *tcell.EventResize:
		return tuikit.ResizeEvent{}, true
	default:
		return nil, false
	}
}

func translateKey(e *tcell.EventKey) (tuikit.Event, bool) {
	mods := e.Modifiers()
	ke := tuikit.KeyEvent{
		Ctrl:  mods&tcell.ModCtrl != 0,
		Alt:   mods&tcell.ModAlt != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	k := e.Key()
	if name, ok := specialKeys[k]; ok {
		ke.Name = name
		return ke, true
	}
	if name, ok := ctrlPunct[k]; ok {
		ke.Name, ke.Ctrl = name, true
		return ke, true
	}

	switch {
	case k == tcell.KeyBacktab:
		ke.Name, ke.Shift = tuikit.KeyTab, true
	case k == tcell.KeyCtrlSpace:
		ke.Name, ke.Ctrl = tuikit.KeySpace, true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		ke.Name, ke.Ctrl = string(rune('a'+k-tcell.KeyCtrlA)), true
	case k == tcell.KeyRune:
		r := e.Rune()
		if unicode.IsUpper(r) {
			ke.Shift = true
			// Alt chords are reported lowercased, matching the byte decoder.
			if ke.Alt {
				r = unicode.ToLower(r)
			}
		}
		ke.Name = string(r)
	default:
		return nil, false
	}
	return ke, true
}

func (t *Translator) translateMouse(e *tcell.EventMouse) (tuikit.Event, bool) {
	x, y := e.Position()
	pressed := e.Buttons() & pressMask

	switch {
	case pressed != 0 && pressed&^t.held != 0:
		// A newly pressed button, possibly while another is held.
		t.last = buttonOf(pressed &^ t.held)
		t.held = pressed
		return tuikit.MouseEvent{X: x, Y: y, Button: t.last, Action: tuikit.MousePress}, true
	case pressed != 0:
		t.held = pressed
		return tuikit.MouseEvent{X: x, Y: y, Button: buttonOf(pressed), Action: tuikit.MouseMove}, true
	case t.held != 0:
		t.held = 0
		return tuikit.MouseEvent{X: x, Y: y, Button: t.last, Action: tuikit.MouseRelease}, true
	case e.Buttons()&tcell.WheelUp != 0, e.Buttons()&tcell.WheelDown != 0,
		e.Buttons()&tcell.WheelLeft != 0, e.Buttons()&tcell.WheelRight != 0:
		return nil, false
	default:
		return tuikit.MouseEvent{X: x, Y: y, Button: t.last, Action: tuikit.MouseMove}, true
	}
}

func buttonOf(mask tcell.ButtonMask) tuikit.MouseButton {
	switch {
	case mask&tcell.ButtonPrimary != 0:
		return tuikit.MouseLeft
	case mask&tcell.ButtonMiddle != 0:
		return tuikit.MouseMiddle
	default:
		return tuikit.MouseRight
	}
}
