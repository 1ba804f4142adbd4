package tuikit

import "time"

// Input is one poll's worth of raw terminal input.
type Input struct {
	// Data is the bytes read, possibly a partial escape sequence.
	Data []byte

	// Resized is set when the terminal size changed since the last poll.
	Resized bool
}

// ByteSource delivers raw terminal input to Session.Listen.
type ByteSource interface {
	// Poll waits up to timeout for input. A zero Input means the timeout
	// elapsed. io.EOF means the source is exhausted.
	Poll(timeout time.Duration) (Input, error)

	// Close releases resources. Must be called when done.
	Close() error
}
