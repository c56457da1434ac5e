package request

import (
	"errors"
	"fmt"
)

var ErrEmptyRequest = errors.New("empty request")
var ErrIncompleteRequest = errors.New("incomplete request")

var ErrMalformedRequestLine = errors.New("malformed request line")
var ErrMissingMethod = fmt.Errorf("%w: missing method token", ErrMalformedRequestLine)
var ErrMissingTarget = fmt.Errorf("%w: missing URI or version token", ErrMalformedRequestLine)

var ErrLineTooLong = errors.New("line too long")
var ErrTooManyHeaders = errors.New("too many headers")
var ErrBodyTooLarge = errors.New("body too large")

// LinePurpose names the part of the request a line was read for.
type LinePurpose string

const (
	PurposeStartLine  LinePurpose = "start line"
	PurposeHeaderLine LinePurpose = "header line"
)

// LineReadError is returned when the start line or a header line could not be read.
type LineReadError struct {
	Purpose LinePurpose
	Err     error
}

func (e *LineReadError) Error() string {
	return fmt.Sprintf("error reading %s: %v", e.Purpose, e.Err)
}

func (e *LineReadError) Unwrap() error {
	return e.Err
}

// BodyReadError is returned when fewer body bytes than declared could be read.
type BodyReadError struct {
	ContentLength int64
	Read          int64
	Err           error
}

func (e *BodyReadError) Error() string {
	return fmt.Sprintf("error reading body (%d of %d bytes): %v", e.Read, e.ContentLength, e.Err)
}

func (e *BodyReadError) Unwrap() error {
	return e.Err
}
