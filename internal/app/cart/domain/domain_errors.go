package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrNilProduct       = errors.New("product cannot be nil")
	ErrMissingProductID = errors.New("product identifier cannot be empty")
	ErrUnknownSlot      = errors.New("unknown build slot")
)
