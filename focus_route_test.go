package tuikit

import "testing"

func TestFocusManager_RouteInputEvent(t *testing.T) {
	type tc struct {
		event            Event
		policy           []FocusSource
		expectedFocus    string
		expectedHandled  bool
		expectedReceiver string
	}

	tests := map[string]tc{
		"tab moves forward": {
			event:           KeyEvent{Name: KeyTab},
			expectedFocus:   "b",
			expectedHandled: true,
		},
		"shift+tab moves backward": {
			event:           KeyEvent{Name: KeyTab, Shift: true},
			expectedFocus:   "c",
			expectedHandled: true,
		},
		"ctrl+tab is forwarded": {
			event:            KeyEvent{Name: KeyTab, Ctrl: true},
			expectedFocus:    "a",
			expectedHandled:  true,
			expectedReceiver: "a",
		},
		"right arrow moves spatially": {
			event:           KeyEvent{Name: KeyRight},
			expectedFocus:   "b",
			expectedHandled: true,
		},
		"down arrow moves spatially": {
			event:           KeyEvent{Name: KeyDown},
			expectedFocus:   "c",
			expectedHandled: true,
		},
		"arrow without a target is still consumed": {
			event:           KeyEvent{Name: KeyUp},
			expectedFocus:   "a",
			expectedHandled: true,
		},
		"shifted arrow is forwarded": {
			event:            KeyEvent{Name: KeyRight, Shift: true},
			expectedFocus:    "a",
			expectedHandled:  true,
			expectedReceiver: "a",
		},
		"other keys are forwarded": {
			event:            KeyEvent{Name: "x"},
			expectedFocus:    "a",
			expectedHandled:  true,
			expectedReceiver: "a",
		},
		"press focuses the element under the pointer": {
			event:            MouseEvent{X: 5, Y: 0, Button: MouseLeft, Action: MousePress},
			expectedFocus:    "b",
			expectedHandled:  false,
			expectedReceiver: "b",
		},
		"press is ignored by policy without click": {
			event:            MouseEvent{X: 5, Y: 0, Button: MouseLeft, Action: MousePress},
			policy:           []FocusSource{FocusSourceTab},
			expectedFocus:    "a",
			expectedHandled:  true,
			expectedReceiver: "a",
		},
		"release does not move focus": {
			event:            MouseEvent{X: 5, Y: 0, Button: MouseLeft, Action: MouseRelease},
			expectedFocus:    "a",
			expectedHandled:  true,
			expectedReceiver: "a",
		},
		"press on an empty cell": {
			event:            MouseEvent{X: 9, Y: 9, Button: MouseLeft, Action: MousePress},
			expectedFocus:    "a",
			expectedHandled:  true,
			expectedReceiver: "a",
		},
		"resize is forwarded": {
			event:            ResizeEvent{},
			expectedFocus:    "a",
			expectedHandled:  true,
			expectedReceiver: "a",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newTestManager(t)
			mustContainer(t, m, "main")
			a, b, c := mockAt("a", 0, 0), mockAt("b", 5, 0), mockAt("c", 0, 3)
			a.handled = true
			mustAdd(t, m, "main", a, b, c)
			if tt.policy != nil {
				m.SetFocusPolicy(tt.policy...)
			}

			handled := m.RouteInputEvent(tt.event)

			if handled != tt.expectedHandled {
				t.Errorf("handled = %v, want %v", handled, tt.expectedHandled)
			}
			if got := focusedID(m); got != tt.expectedFocus {
				t.Errorf("focused = %q, want %q", got, tt.expectedFocus)
			}
			for _, e := range []*mockElement{a, b, c} {
				received := len(e.events) > 0
				if want := e.id == tt.expectedReceiver; received != want {
					t.Errorf("%s received event = %v, want %v", e.id, received, want)
				}
			}
		})
	}
}

func TestFocusManager_RouteInputEventWithoutFocus(t *testing.T) {
	m := newTestManager(t)
	mustContainer(t, m, "main")
	a := newMockElement("a")
	a.handled = true
	mustAdd(t, m, "main", a)
	m.Blur(a)

	if m.RouteInputEvent(KeyEvent{Name: "x"}) {
		t.Error("event routed with nothing focused")
	}
	if len(a.events) != 0 {
		t.Errorf("blurred element received %d events", len(a.events))
	}
}

func TestFocusManager_ClickFocusesBasicElement(t *testing.T) {
	m := newTestManager(t)
	mustContainer(t, m, "main")
	var clicked []string
	onInput := func(e *BasicElement, ev Event) bool {
		if _, ok := ev.(MouseEvent); ok {
			clicked = append(clicked, e.Name())
			return true
		}
		return false
	}
	left := NewElement(WithName("left"), WithPosition(0, 0), WithSize(10, 3), WithOnInput(onInput))
	right := NewElement(WithName("right"), WithPosition(12, 0), WithSize(10, 3), WithOnInput(onInput))
	for _, e := range []*BasicElement{left, right} {
		if err := m.AddElement(e, "main"); err != nil {
			t.Fatal(err)
		}
	}

	handled := m.RouteInputEvent(MouseEvent{X: 15, Y: 2, Button: MouseLeft, Action: MousePress})

	if !handled {
		t.Error("press not handled")
	}
	if m.Focused() != Element(right) {
		t.Errorf("focused = %v, want right", m.Focused())
	}
	if left.Focused() || !right.Focused() {
		t.Errorf("flags: left=%v right=%v", left.Focused(), right.Focused())
	}
	if len(clicked) != 1 || clicked[0] != "right" {
		t.Errorf("clicked = %v, want [right]", clicked)
	}
}
