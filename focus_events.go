package tuikit

import (
	"fmt"
	"log/slog"
)

// FocusEventKind names a focus lifecycle transition.
type FocusEventKind string

const (
	// FocusEventFocus fires when an element acquires focus.
	FocusEventFocus FocusEventKind = "focus"
	// FocusEventBlur fires when an element loses focus.
	FocusEventBlur FocusEventKind = "blur"
	// FocusEventEnter fires when focus moves into a different container.
	FocusEventEnter FocusEventKind = "focus-enter"
	// FocusEventLeave fires when a blur appears to take focus out of the
	// active container.
	FocusEventLeave FocusEventKind = "focus-leave"
	// FocusEventChange fires when the focused element changes.
	FocusEventChange FocusEventKind = "focus-change"
)

// FocusEvent describes a focus lifecycle transition.
type FocusEvent struct {
	Kind FocusEventKind

	// Target is the element gaining focus (focus, change, enter) or losing
	// it (blur, leave).
	Target Element

	// Related is the other side of the transition: the previously focused
	// element for focus/change/enter, the next one for blur/leave. May be nil.
	Related Element

	// Container is the id of the container the transition happened in.
	Container string
}

// FocusListener observes focus lifecycle transitions.
type FocusListener func(FocusEvent)

type lifecycleEntry struct {
	sub Subscription
	fn  FocusListener
}

// lifecycle holds focus listeners per kind.
type lifecycle struct {
	byKind map[FocusEventKind][]lifecycleEntry
	log    *slog.Logger
}

func newLifecycle(log *slog.Logger) *lifecycle {
	return &lifecycle{
		byKind: make(map[FocusEventKind][]lifecycleEntry),
		log:    log,
	}
}

func (l *lifecycle) on(kind FocusEventKind, fn FocusListener) Subscription {
	sub := newSubscription()
	l.byKind[kind] = append(l.byKind[kind], lifecycleEntry{sub: sub, fn: fn})
	return sub
}

func (l *lifecycle) off(sub Subscription) bool {
	for kind, entries := range l.byKind {
		for i, e := range entries {
			if e.sub != sub {
				continue
			}
			if len(entries) == 1 {
				delete(l.byKind, kind)
			} else {
				l.byKind[kind] = append(entries[:i:i], entries[i+1:]...)
			}
			return true
		}
	}
	return false
}

func (l *lifecycle) emit(ev FocusEvent) {
	entries := append([]lifecycleEntry(nil), l.byKind[ev.Kind]...)
	for _, e := range entries {
		l.call(e, ev)
	}
}

func (l *lifecycle) call(e lifecycleEntry, ev FocusEvent) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("focus listener panicked",
				"kind", string(ev.Kind),
				"subscription", e.sub.ID(),
				"panic", fmt.Sprint(r))
		}
	}()
	e.fn(ev)
}
