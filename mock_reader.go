package tuikit

import (
	"io"
	"time"
)

// MockSource is a ByteSource for testing. It replays scripted inputs in
// order and returns io.EOF once they are consumed.
type MockSource struct {
	inputs []Input
	index  int
	closed bool
}

var _ ByteSource = (*MockSource)(nil)

// NewMockSource creates a MockSource with the given inputs.
func NewMockSource(inputs ...Input) *MockSource {
	return &MockSource{inputs: inputs}
}

// MockBytes is a convenience for an Input carrying data.
func MockBytes(s string) Input {
	return Input{Data: []byte(s)}
}

// MockResize is a convenience for an Input reporting a resize.
func MockResize() Input {
	return Input{Resized: true}
}

// MockIdle is a convenience for an Input reporting an elapsed timeout.
func MockIdle() Input {
	return Input{}
}

// Poll returns the next scripted input, ignoring the timeout.
func (m *MockSource) Poll(time.Duration) (Input, error) {
	if m.closed || m.index >= len(m.inputs) {
		return Input{}, io.EOF
	}
	in := m.inputs[m.index]
	m.index++
	return in, nil
}

// Add queues more inputs.
func (m *MockSource) Add(inputs ...Input) {
	m.inputs = append(m.inputs, inputs...)
}

// Remaining returns the number of inputs yet to be returned.
func (m *MockSource) Remaining() int {
	return len(m.inputs) - m.index
}

// Close makes later polls return io.EOF.
func (m *MockSource) Close() error {
	m.closed = true
	return nil
}
