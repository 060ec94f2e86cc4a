package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("daemon internal error")
	ErrInvalidAddress      = errors.New("invalid daemon address")
	ErrUnexpectedResponse  = errors.New("unexpected daemon response")
)
