package tuikit

import "errors"

var (
	// ErrContainerNotFound is returned when a container id is not registered.
	ErrContainerNotFound = errors.New("focus container not found")

	// ErrContainerExists is returned when creating a container whose id is taken.
	ErrContainerExists = errors.New("focus container already exists")

	// ErrElementNotFound is returned when removing an element no container holds.
	ErrElementNotFound = errors.New("element not registered")

	// ErrElementRegistered is returned when adding an element that already
	// belongs to a container.
	ErrElementRegistered = errors.New("element already registered")

	// ErrNilElement is returned when adding a nil element.
	ErrNilElement = errors.New("element is nil")

	// ErrUnsupportedConfig is returned for config files of unknown format.
	ErrUnsupportedConfig = errors.New("unsupported config format")

	// ErrUnsupportedPlatform is returned when the terminal source is not
	// available on this platform.
	ErrUnsupportedPlatform = errors.New("terminal input not supported on this platform")
)
