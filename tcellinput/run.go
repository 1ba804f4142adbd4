package tcellinput

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/tuikit"
	"github.com/grindlemire/tuikit/internal/debug"
)

// RunOption configures Run.
type RunOption func(*runner)

// WithAfterEvent registers fn to run after every translated event has been
// dispatched, typically to redraw.
func WithAfterEvent(fn func(ev tuikit.Event, handled bool)) RunOption {
	return func(r *runner) {
		r.after = fn
	}
}

type runner struct {
	after func(tuikit.Event, bool)
}

// Run starts sess and feeds it events from screen until ctx is done, the
// screen is finalized, or a listener stops the session. The screen must
// already be initialized. Run blocks and must not be called concurrently
// with other session calls.
func Run(ctx context.Context, screen tcell.Screen, sess *tuikit.Session, opts ...RunOption) error {
	var r runner
	for _, opt := range opts {
		opt(&r)
	}
	log := debug.Logger().With("component", "tcellinput")

	sess.Start()
	defer sess.Stop()

	// PollEvent blocks; wake it when the context ends.
	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	var t Translator
	for sess.Listening() {
		ev := screen.PollEvent()
		if ev == nil {
			log.Debug("screen finalized")
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		tev, ok := t.Translate(ev)
		if !ok {
			continue
		}
		handled := sess.Dispatch(tev)
		if r.after != nil {
			r.after(tev, handled)
		}
	}
	return nil
}
