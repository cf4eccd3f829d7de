package contact

import "errors"

var (
	ErrInvalidMessage = errors.New("name, email, and message are required and email must be valid")
	ErrRelayFailed    = errors.New("failed to send message")
)
