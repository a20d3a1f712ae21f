package resolver

import "errors"

// Force list errors
var (
	ErrIndexOutOfRange     = errors.New("force index out of range")
	ErrForceNotFound       = errors.New("force not found")
	ErrUnknownFrictionMode = errors.New("unknown friction model")
)
