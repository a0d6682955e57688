package domain

import "errors"

// sentinel errors shared between the stores and the REST layer
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadySubscribed = errors.New("already subscribed")
	ErrUnknownFlag       = errors.New("unknown flag")
)
