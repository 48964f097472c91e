package jsonschema

import "errors"

var (
	ErrCompile  = errors.New("jsonschema: compile failed")
	ErrMismatch = errors.New("jsonschema: value does not match schema")
)
