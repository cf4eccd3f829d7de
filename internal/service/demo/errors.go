package demo

import "errors"

var (
	ErrInvalidDraft = errors.New("validation failed")
	ErrRelayFailed  = errors.New("failed to record demo request")
)
