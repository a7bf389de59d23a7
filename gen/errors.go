package gen

import "errors"

var (
	// ErrReferenceLocale is returned by Validate when the reference locale is
	// absent from the layout.
	ErrReferenceLocale = errors.New("gen: reference locale missing from layout")

	// ErrMalformedInput is returned by LoadLayout when a dictionary file
	// cannot be parsed. It aborts the whole run; no partial layout is
	// produced.
	ErrMalformedInput = errors.New("gen: malformed dictionary file")
)
