// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ber

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedData indicates that a length field claims more bytes than remain in the buffer.
	ErrTruncatedData = errors.New("ber: truncated data")

	// ErrMalformedEncoding indicates an invalid identifier or length octet, an
	// indefinite length, or bytes left over after the top-level element.
	ErrMalformedEncoding = errors.New("ber: malformed encoding")

	// ErrDepthExceeded indicates that constructed elements nest deeper than the decoder allows.
	ErrDepthExceeded = errors.New("ber: nesting depth exceeded")

	// ErrUnexpectedType indicates that a node does not hold the value type a caller asked for.
	ErrUnexpectedType = errors.New("ber: unexpected value type")
)

// SyntaxError describes where in the input a decoding failure happened.
// It unwraps to one of ErrTruncatedData, ErrMalformedEncoding or ErrDepthExceeded.
type SyntaxError struct {
	Offset int    // byte offset of the element that failed
	Depth  int    // nesting level of that element, 1 for the root
	Msg    string // short description
	Err    error  // sentinel
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s (offset %d, depth %d)", e.Err, e.Msg, e.Offset, e.Depth)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func syntaxError(err error, offset, depth int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Offset: offset,
		Depth:  depth,
		Msg:    fmt.Sprintf(format, args...),
		Err:    err,
	}
}
