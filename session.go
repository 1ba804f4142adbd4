package tuikit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Session wires a Decoder, a Dispatcher and a FocusManager into one input
// pipeline: bytes are decoded into events, events go to global listeners,
// then to the focused element, then to per-key listeners.
//
// A Session is single-threaded. HandleBytes, HandleResize and Dispatch must
// be called from one goroutine, normally the one running Listen.
type Session struct {
	cfg        config
	decoder    *Decoder
	dispatcher *Dispatcher
	focus      *FocusManager
	log        *slog.Logger

	listening bool
}

// NewSession creates a stopped Session.
func NewSession(opts ...Option) (*Session, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("configuring session: %w", err)
	}

	s := &Session{
		cfg:        cfg,
		decoder:    NewDecoder(),
		dispatcher: NewDispatcher(),
		focus:      newFocusManager(cfg),
		log:        cfg.logger.With("component", "session"),
	}
	s.decoder.log = cfg.logger.With("component", "decoder")
	s.dispatcher.log = cfg.logger.With("component", "dispatcher")
	s.dispatcher.SetRouter(s.focus.RouteInputEvent)
	return s, nil
}

// Decoder returns the session's decoder.
func (s *Session) Decoder() *Decoder { return s.decoder }

// Dispatcher returns the session's dispatcher, for registering listeners.
func (s *Session) Dispatcher() *Dispatcher { return s.dispatcher }

// Focus returns the session's focus manager.
func (s *Session) Focus() *FocusManager { return s.focus }

// Start begins accepting input.
func (s *Session) Start() {
	if s.listening {
		return
	}
	s.listening = true
	s.log.Debug("listening started")
}

// Stop stops accepting input and discards any partial sequence, so stale
// bytes never leak into the next Start.
func (s *Session) Stop() {
	if !s.listening {
		return
	}
	s.listening = false
	if n := s.decoder.Pending(); n > 0 {
		s.log.Debug("discarding pending input", "bytes", n)
	}
	s.decoder.Reset()
	s.log.Debug("listening stopped")
}

// Listening reports whether the session accepts input.
func (s *Session) Listening() bool {
	return s.listening
}

// HandleBytes decodes data and dispatches every resulting event. It does
// nothing while the session is stopped. Returns the number of events
// dispatched.
func (s *Session) HandleBytes(data []byte) int {
	if !s.listening {
		return 0
	}
	events := s.decoder.Decode(data)
	for _, ev := range events {
		s.dispatch(ev)
	}
	return len(events)
}

// HandleResize dispatches a resize event. It does nothing while stopped.
func (s *Session) HandleResize() {
	if !s.listening {
		return
	}
	s.dispatch(s.decoder.Resize())
}

// Dispatch delivers an already-decoded event, such as one produced by the
// tcellinput bridge. It does nothing while stopped.
func (s *Session) Dispatch(ev Event) bool {
	if !s.listening {
		return false
	}
	return s.dispatch(ev)
}

// FlushPending resolves a pending lone ESC into the escape key and drops any
// other partial sequence.
func (s *Session) FlushPending() int {
	if !s.listening {
		return 0
	}
	events := s.decoder.Flush()
	for _, ev := range events {
		s.dispatch(ev)
	}
	return len(events)
}

func (s *Session) dispatch(ev Event) bool {
	handled := s.dispatcher.Dispatch(ev)
	s.log.Debug("dispatched", "event", eventName(ev), "handled", handled)
	return handled
}

// Listen starts the session and feeds it from src until ctx is done, src is
// exhausted, or a listener calls Stop. With an escape timeout configured, a
// partial sequence left idle that long is flushed.
func (s *Session) Listen(ctx context.Context, src ByteSource) error {
	s.Start()
	defer s.Stop()

	lastInput := time.Now()
	for s.listening {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		in, err := src.Poll(s.cfg.pollInterval)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("polling input: %w", err)
		}

		if in.Resized {
			s.HandleResize()
		}
		if len(in.Data) > 0 {
			s.HandleBytes(in.Data)
			lastInput = time.Now()
			continue
		}
		if s.cfg.escapeTimeout > 0 && s.decoder.Pending() > 0 && time.Since(lastInput) >= s.cfg.escapeTimeout {
			s.FlushPending()
		}
	}
	return nil
}

// Close stops the session and resets its focus state.
func (s *Session) Close() error {
	s.Stop()
	s.focus.Reset()
	return nil
}
