package client

import "errors"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArgument  = errors.New("missing argument")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrTooManyAttempts  = errors.New("too many wrong passwords")
	ErrNoClipboard      = errors.New("clipboard is not available")
)
