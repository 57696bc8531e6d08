package native

import "errors"

// Package errors for the native backend.
var (
	// ErrNoDevice is returned when no HAL device or queue is available.
	ErrNoDevice = errors.New("native: no HAL device")

	// ErrUnsupportedTarget is returned by Translate for unknown targets.
	ErrUnsupportedTarget = errors.New("native: unsupported shading language target")

	// ErrNoParameterBuffer is returned by WriteParameters for a slot without
	// a bound uniform buffer.
	ErrNoParameterBuffer = errors.New("native: no parameter buffer bound")

	// ErrDestroyed is returned after Destroy.
	ErrDestroyed = errors.New("native: encoder destroyed")
)
