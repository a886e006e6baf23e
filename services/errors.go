package services

import "errors"

// Every failure a service can report to a caller belongs to this taxonomy.
// Anything outside it is a storage failure and surfaces as a generic 500.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateHandle    = errors.New("handle already registered")
	ErrDuplicateReport    = errors.New("report already exists for this date")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrInvalidStatus      = errors.New("invalid reorder status")

	ErrRenderingUnavailable = errors.New("pdf renderer unavailable")
	ErrRenderingFailed      = errors.New("pdf rendering failed")
)
