package texconv

import (
	"errors"

	"github.com/gogpu/texconv/internal/emit"
)

var (
	// ErrNotImplemented is returned for texture formats without an encoder.
	ErrNotImplemented = errors.New("not implemented")

	// ErrBufferOverflow is returned when a generated shader does not fit the
	// generator's buffer capacity. No text is returned with it.
	ErrBufferOverflow = emit.ErrBufferOverflow

	// ErrNilSink is returned by SetShaderParameters without a sink.
	ErrNilSink = errors.New("texconv: nil parameter sink")
)
