package kind

import "errors"

var (
	// ErrUnknownKind is returned when a kind name is not part of the closed set.
	ErrUnknownKind = errors.New("kind: unknown kind")

	// ErrInvalidTypes is returned when a type declaration is neither a name nor a list of names.
	ErrInvalidTypes = errors.New("kind: type must be a name or a list of names")
)
