package services

import "errors"

// Error taxonomy shared by every service. All of these are recoverable: the
// caller surfaces a message and may retry after fixing the input or
// re-loading the document.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidState       = errors.New("invalid state")
	ErrValidation         = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
