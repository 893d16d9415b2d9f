package pairfind

import "errors"

var (
	// ErrEmptyInput indicates the input contained no integers at all.
	ErrEmptyInput = errors.New("input is empty")
	// ErrInvalidToken indicates a non-integer token in the input line.
	ErrInvalidToken = errors.New("invalid integer token")
	// ErrRequestSyntax indicates the request is not well-formed JSON.
	ErrRequestSyntax = errors.New("request is not valid JSON")
	// ErrRequestSchemaInvalid indicates the request does not satisfy RequestSchema.
	ErrRequestSchemaInvalid = errors.New("request does not match schema")
)
