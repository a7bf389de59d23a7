package lokat

import "errors"

var (
	// ErrUnexpectedStatus is returned by HTTPLoader when the server responds
	// with a non-2xx status.
	ErrUnexpectedStatus = errors.New("lokat: unexpected response status")
)
