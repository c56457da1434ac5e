package headers

import "errors"

// ErrEmptyFieldName is returned by Set when the trimmed field name is empty.
var ErrEmptyFieldName = errors.New("empty header field name")
