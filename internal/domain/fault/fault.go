// Package fault carries the request-level error taxonomy: invalid
// input, missing entity, or a caller acting outside their role. The
// HTTP adapter maps these onto 400/404/403.
package fault

import "errors"

var (
	ErrInvalid   = errors.New("invalid")
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

func Invalid(msg string) error { return &taggedError{kind: ErrInvalid, msg: msg} }

func NotFound(msg string) error { return &taggedError{kind: ErrNotFound, msg: msg} }

func Forbidden(msg string) error { return &taggedError{kind: ErrForbidden, msg: msg} }

// Wrap keeps err's message but classifies it under kind so the HTTP
// layer can pick a status code with errors.Is.
func Wrap(kind, err error) error {
	if err == nil {
		return nil
	}
	return &taggedError{kind: kind, msg: err.Error()}
}

type taggedError struct {
	kind error
	msg  string
}

func (e *taggedError) Error() string { return e.msg }
func (e *taggedError) Is(target error) bool {
	return target == e.kind
}
