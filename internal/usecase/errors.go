package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means the request carries no usable session.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrInvalidSession wraps ErrUnauthenticated for credentials that were
	// present but rejected.
	ErrInvalidSession = fmt.Errorf("%w: invalid session", ErrUnauthenticated)

	ErrForbidden           = errors.New("not allowed to modify this resource")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidFilterOption = errors.New("invalid filter option")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserExists          = errors.New("user already exists")
)
