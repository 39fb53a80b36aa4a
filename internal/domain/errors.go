package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrShowNotFound indicates the show to update does not exist on the server
	ErrShowNotFound = errors.New("show not found")
)
