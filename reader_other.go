//go:build !unix

package tuikit

import (
	"os"
	"time"
)

// TerminalSource is unavailable on this platform; use the tcellinput
// package instead.
type TerminalSource struct{}

var _ ByteSource = (*TerminalSource)(nil)

// NewTerminalSource always fails with ErrUnsupportedPlatform.
func NewTerminalSource(*os.File) (*TerminalSource, error) {
	return nil, ErrUnsupportedPlatform
}

// Poll always fails with ErrUnsupportedPlatform.
func (*TerminalSource) Poll(time.Duration) (Input, error) {
	return Input{}, ErrUnsupportedPlatform
}

// Size returns a conventional 80x24.
func (*TerminalSource) Size() (width, height int) {
	return 80, 24
}

// Close is a no-op.
func (*TerminalSource) Close() error {
	return nil
}
