package domain

import "errors"

var (
	ErrNoSession         = errors.New("no session in startup context")
	ErrStatusUnavailable = errors.New("timer status unavailable")
	ErrTickRejected      = errors.New("tick rejected")
	ErrSecretNotFound    = errors.New("secret not found")
)
