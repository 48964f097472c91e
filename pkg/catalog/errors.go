package catalog

import "errors"

var (
	ErrInvalidDocument = errors.New("catalog: invalid schema document")
	ErrInvalidName     = errors.New("catalog: schema name must not be empty")
	ErrNilNode         = errors.New("catalog: schema node must not be nil")
	ErrNotFound        = errors.New("catalog: schema not found")
)
