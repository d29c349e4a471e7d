package service

import "errors"

// Service-level error taxonomy. Handlers translate these to HTTP codes and
// never forward underlying store or transport errors to clients.
var (
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrDuplicateAccount  = errors.New("account already exists")
	ErrNotFound          = errors.New("not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrDeliveryFailed    = errors.New("mail delivery failed")
	ErrMisconfigured     = errors.New("service config invalid")
)
