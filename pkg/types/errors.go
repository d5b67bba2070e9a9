package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// Entity and lookup errors.
var (
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidID       = errors.New("invalid entity ID")
	ErrInvalidData     = errors.New("invalid entity data")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidZone     = errors.New("invalid zone")
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrUnknownOption   = errors.New("unknown option")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrInvalidStatus   = errors.New("invalid quote status")
)
