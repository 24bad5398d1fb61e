package ui

import "errors"

var (
	// ErrZeroReferenceResolution is returned when a canvas is created with a
	// reference resolution of zero.
	ErrZeroReferenceResolution = errors.New("ui: reference resolution must not be zero")
	// ErrNilRenderer is returned when a canvas is created without a renderer.
	ErrNilRenderer = errors.New("ui: renderer must not be nil")
	// ErrNoTarget is returned when neither a target texture nor a back buffer is available.
	ErrNoTarget = errors.New("ui: no target texture and renderer has no back buffer")
)
