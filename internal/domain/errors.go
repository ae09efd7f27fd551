package domain

import "github.com/locvowork/companyset/internal/errors"

var (
	// ErrNilEmployee is returned when a nil employee is added.
	ErrNilEmployee = errors.New("employee must not be nil")
	// ErrInvalidCapacity is returned for a negative capacity.
	ErrInvalidCapacity = errors.New("capacity must not be negative")
	ErrNotFound        = errors.New("employee not found")
	// ErrCapacityExceeded and ErrDuplicate explain why an add was rejected.
	ErrCapacityExceeded = errors.New("company is at capacity")
	ErrDuplicate        = errors.New("employee already present")
	ErrUnknownKind      = errors.New("unknown employee kind")
	// ErrInvalidEmployee is returned for an employee a company cannot hold,
	// such as one with a NaN or infinite amount.
	ErrInvalidEmployee = errors.New("invalid employee")
)
