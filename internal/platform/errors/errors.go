package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrNoSession    = errors.New("no paused session")
	ErrTimerActive  = errors.New("timer already running")
	ErrPresetLimit  = errors.New("preset limit reached")
)
