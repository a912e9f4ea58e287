package mway

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("mway: invalid configuration")
	// ErrInvalidStructure signals a violated structural tree invariant.
	ErrInvalidStructure = errors.New("mway: structural invariant violated")
)
