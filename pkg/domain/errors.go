package domain

import "errors"

// ErrSessionEnd is returned through the dispatcher when the user asks to
// leave (the "bye" pattern). It stops the loop rather than producing a
// displayable result.
var ErrSessionEnd = errors.New("session end requested")

// ErrUnknownHandler is returned when a pattern names a handler that is not
// registered.
var ErrUnknownHandler = errors.New("unknown handler")

// ErrInvalidTemplate is returned when pattern text cannot form a usable
// template.
var ErrInvalidTemplate = errors.New("invalid template")
