package tuikit

import (
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/grindlemire/tuikit/internal/debug"
)

// decodeResult classifies what a byte run turned into.
type decodeResult int

const (
	decodeMiss    decodeResult = iota // matched nothing, cannot grow into a match
	decodePending                     // may still complete; keep buffering
	decodeHit                         // produced an event
)

// Decoder turns raw terminal bytes into normalized events.
//
// Byte runs are recognized by exact whole-buffer match against fixed tables;
// a run that is a strict prefix of a known sequence is held in a residual
// buffer and retried when more bytes arrive. The residual is cleared whenever
// an event is produced. A lone ESC is such a prefix, so it stays pending
// until more input arrives or Flush is called.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	residual []byte

	// lastButton is reported on X10 release, which does not name a button.
	lastButton MouseButton

	log *slog.Logger
}

// NewDecoder creates a Decoder with an empty residual buffer.
func NewDecoder() *Decoder {
	return &Decoder{
		residual: make([]byte, 0, 16),
		log:      debug.Logger().With("component", "decoder"),
	}
}

// Decode appends data to the residual buffer and decodes the combined run.
// It returns at most one event. Malformed input produces no event and no
// error.
func (d *Decoder) Decode(data []byte) []Event {
	if len(data) == 0 && len(d.residual) == 0 {
		return nil
	}

	buf := append(d.residual, data...)
	ev, res := d.decodeRun(buf)

	switch res {
	case decodeHit:
		d.residual = buf[:0]
		return []Event{ev}
	case decodePending:
		d.residual = buf
		return nil
	default:
		d.log.Debug("dropped undecodable input", "bytes", len(buf))
		d.residual = buf[:0]
		return nil
	}
}

// Flush resolves whatever is pending. A lone ESC becomes the escape key;
// any other partial sequence is discarded.
func (d *Decoder) Flush() []Event {
	if len(d.residual) == 0 {
		return nil
	}
	lone := len(d.residual) == 1 && d.residual[0] == escByte
	d.residual = d.residual[:0]
	if lone {
		return []Event{KeyEvent{Name: KeyEscape}}
	}
	return nil
}

// Reset discards the residual buffer and mouse button state.
func (d *Decoder) Reset() {
	d.residual = d.residual[:0]
	d.lastButton = MouseLeft
}

// Pending returns the number of bytes held in the residual buffer.
func (d *Decoder) Pending() int {
	return len(d.residual)
}

// Resize returns the synthetic event for an out-of-band resize signal.
func (d *Decoder) Resize() Event {
	return ResizeEvent{}
}

// decodeRun applies the decoding rules in priority order.
func (d *Decoder) decodeRun(buf []byte) (Event, decodeResult) {
	// 1. X10 mouse report
	if len(buf) >= len(mousePrefix) && string(buf[:len(mousePrefix)]) == mousePrefix {
		if len(buf) < mouseReportLen {
			return nil, decodePending
		}
		return d.decodeMouse(buf[3], buf[4], buf[5]), decodeHit
	}

	// 2. Known sequences
	if k, ok := keySequences[string(buf)]; ok {
		return KeyEvent{Name: k.name, Shift: k.shift}, decodeHit
	}

	// 3. ESC followed by exactly one character is Alt+character
	if len(buf) >= 2 && buf[0] == escByte {
		if r, size := utf8.DecodeRune(buf[1:]); 1+size == len(buf) && !(r == utf8.RuneError && size == 1) {
			return altKey(r), decodeHit
		}
	}

	if len(buf) == 1 {
		b := buf[0]
		// 4. Control characters
		if name, ok := controlKeys[b]; ok {
			return KeyEvent{Name: name, Ctrl: true}, decodeHit
		}
		// 5. Single printable byte
		if b != escByte && b < utf8.RuneSelf {
			return charKey(rune(b)), decodeHit
		}
	}

	// 5. Single multi-byte character
	if buf[0] >= utf8.RuneSelf {
		if r, size := utf8.DecodeRune(buf); size == len(buf) && r != utf8.RuneError {
			return charKey(r), decodeHit
		}
	}

	// 6. Keep buffering while the run can still become something
	if viablePrefix(buf) {
		return nil, decodePending
	}
	return nil, decodeMiss
}

// decodeMouse decodes the three payload bytes of an X10 report.
// Cb carries an offset of 32, Cx and Cy an offset of 33 (1-based to 0-based).
func (d *Decoder) decodeMouse(cb, cx, cy byte) MouseEvent {
	code := int(cb) - 32
	ev := MouseEvent{
		X: int(cx) - 33,
		Y: int(cy) - 33,
	}

	switch {
	case code >= 32:
		ev.Action = MouseMove
		ev.Button = buttonFromCode(code, d.lastButton)
	case code&3 == 3:
		ev.Action = MouseRelease
		ev.Button = d.lastButton
	default:
		ev.Action = MousePress
		ev.Button = buttonFromCode(code, d.lastButton)
		d.lastButton = ev.Button
	}
	return ev
}

func buttonFromCode(code int, fallback MouseButton) MouseButton {
	switch code & 3 {
	case 0:
		return MouseLeft
	case 1:
		return MouseMiddle
	case 2:
		return MouseRight
	default:
		return fallback
	}
}

// altKey builds the event for ESC + r.
func altKey(r rune) KeyEvent {
	if r == escByte {
		return KeyEvent{Name: KeyEscape, Alt: true}
	}
	if r < utf8.RuneSelf {
		if k, ok := keySequences[string(r)]; ok {
			return KeyEvent{Name: k.name, Alt: true, Shift: k.shift}
		}
		if name, ok := controlKeys[byte(r)]; ok {
			return KeyEvent{Name: name, Ctrl: true, Alt: true}
		}
	}
	lower := unicode.ToLower(r)
	return KeyEvent{
		Name:  string(lower),
		Alt:   true,
		Shift: unicode.IsUpper(r) && lower != r,
	}
}

// charKey builds the event for a single character, name kept verbatim.
func charKey(r rune) KeyEvent {
	return KeyEvent{
		Name:  string(r),
		Shift: unicode.IsUpper(r) && unicode.ToLower(r) != r,
	}
}

// viablePrefix reports whether buf could still grow into a decodable run.
func viablePrefix(buf []byte) bool {
	if _, ok := sequencePrefixes[string(buf)]; ok {
		return true
	}
	// Incomplete UTF-8, bare or after ESC
	if buf[0] >= utf8.RuneSelf && !utf8.FullRune(buf) {
		return true
	}
	if len(buf) >= 2 && buf[0] == escByte && buf[1] >= utf8.RuneSelf && !utf8.FullRune(buf[1:]) {
		return true
	}
	return false
}
