//go:build unix

package tuikit

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// TerminalSource reads raw bytes from a terminal file descriptor and
// watches SIGWINCH for resizes. The terminal should already be in raw mode.
type TerminalSource struct {
	fd    int
	buf   []byte
	sigCh chan os.Signal
}

var _ ByteSource = (*TerminalSource)(nil)

// NewTerminalSource creates a TerminalSource reading from in.
func NewTerminalSource(in *os.File) (*TerminalSource, error) {
	s := &TerminalSource{
		fd:    int(in.Fd()),
		buf:   make([]byte, 256),
		sigCh: make(chan os.Signal, 1),
	}
	signal.Notify(s.sigCh, syscall.SIGWINCH)
	return s, nil
}

// Poll waits up to timeout for bytes on the terminal. A pending resize
// signal is reported alongside whatever was read.
func (s *TerminalSource) Poll(timeout time.Duration) (Input, error) {
	var in Input
	select {
	case <-s.sigCh:
		in.Resized = true
	default:
	}

	ready, err := selectWithTimeout(s.fd, timeout)
	if err != nil {
		return in, fmt.Errorf("waiting for terminal input: %w", err)
	}
	if !ready {
		return in, nil
	}

	n, err := unix.Read(s.fd, s.buf)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return in, nil
		}
		return in, fmt.Errorf("reading terminal input: %w", err)
	}
	if n == 0 {
		return in, io.EOF
	}
	in.Data = append([]byte(nil), s.buf[:n]...)
	return in, nil
}

// Size returns the terminal dimensions, or 80x24 if they cannot be read.
func (s *TerminalSource) Size() (width, height int) {
	ws, err := unix.IoctlGetWinsize(s.fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// Close stops resize notifications.
func (s *TerminalSource) Close() error {
	signal.Stop(s.sigCh)
	return nil
}

// selectWithTimeout reports whether fd becomes readable within timeout.
// A negative timeout blocks. EINTR counts as a timeout.
func selectWithTimeout(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
