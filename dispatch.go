package tuikit

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/grindlemire/tuikit/internal/debug"
)

// Listener receives a normalized event and reports whether it handled it.
type Listener func(Event) bool

// Subscription identifies a registered listener so it can be removed later.
type Subscription struct {
	id uuid.UUID
}

// ID returns the subscription's identifier.
func (s Subscription) ID() string {
	return s.id.String()
}

// Valid reports whether the subscription was issued by a registry.
func (s Subscription) Valid() bool {
	return s.id != uuid.Nil
}

func newSubscription() Subscription {
	return Subscription{id: uuid.New()}
}

// dispatchEntry is a listener with its subscription handle.
type dispatchEntry struct {
	sub     Subscription
	handler Listener
}

// Dispatcher delivers events in a fixed order, stopping at the first
// listener that reports the event handled:
//
//  1. global listeners, in registration order
//  2. the router (normally FocusManager.RouteInputEvent), if set
//  3. for key events, listeners registered for that key name
//
// A listener that panics is logged and treated as not having handled the
// event; delivery continues with the next listener.
type Dispatcher struct {
	global []dispatchEntry
	keyed  map[string][]dispatchEntry
	router Listener
	log    *slog.Logger
}

// NewDispatcher creates a Dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		keyed: make(map[string][]dispatchEntry),
		log:   debug.Logger().With("component", "dispatcher"),
	}
}

// Subscribe registers a global listener that sees every event first.
func (d *Dispatcher) Subscribe(fn Listener) Subscription {
	sub := newSubscription()
	d.global = append(d.global, dispatchEntry{sub: sub, handler: fn})
	return sub
}

// SubscribeKey registers a listener for key events with the given canonical name.
func (d *Dispatcher) SubscribeKey(name string, fn Listener) Subscription {
	sub := newSubscription()
	d.keyed[name] = append(d.keyed[name], dispatchEntry{sub: sub, handler: fn})
	return sub
}

// Unsubscribe removes a listener. Returns false if it was not registered.
func (d *Dispatcher) Unsubscribe(sub Subscription) bool {
	if entries, ok := removeEntry(d.global, sub); ok {
		d.global = entries
		return true
	}
	for name, list := range d.keyed {
		entries, ok := removeEntry(list, sub)
		if !ok {
			continue
		}
		if len(entries) == 0 {
			delete(d.keyed, name)
		} else {
			d.keyed[name] = entries
		}
		return true
	}
	return false
}

// SetRouter installs the stage that runs between global and per-key listeners.
func (d *Dispatcher) SetRouter(fn Listener) {
	d.router = fn
}

// Dispatch delivers ev and reports whether any listener handled it.
func (d *Dispatcher) Dispatch(ev Event) bool {
	if ev == nil {
		return false
	}

	// Snapshot so listeners may (un)subscribe during delivery.
	global := append([]dispatchEntry(nil), d.global...)
	for i := range global {
		if d.invoke(global[i], ev) {
			return true
		}
	}

	if d.router != nil && d.invoke(dispatchEntry{handler: d.router}, ev) {
		return true
	}

	ke, ok := ev.(KeyEvent)
	if !ok {
		return false
	}
	keyed := append([]dispatchEntry(nil), d.keyed[ke.Name]...)
	for i := range keyed {
		if d.invoke(keyed[i], ev) {
			return true
		}
	}
	return false
}

// invoke runs one listener, converting a panic into "not handled".
func (d *Dispatcher) invoke(entry dispatchEntry, ev Event) (handled bool) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("listener panicked",
				"subscription", entry.sub.ID(),
				"event", eventName(ev),
				"panic", fmt.Sprint(r))
			handled = false
		}
	}()
	return entry.handler(ev)
}

func removeEntry(entries []dispatchEntry, sub Subscription) ([]dispatchEntry, bool) {
	for i, e := range entries {
		if e.sub == sub {
			out := make([]dispatchEntry, 0, len(entries)-1)
			out = append(out, entries[:i]...)
			return append(out, entries[i+1:]...), true
		}
	}
	return entries, false
}
