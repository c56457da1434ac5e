package request

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

type bodyReader struct {
	reader        io.Reader // will be io.LimitReader
	bytesConsumed int64
	contentLength int64
}

// Read implements the io.Reader interface.
func (br *bodyReader) Read(p []byte) (int, error) {
	n, err := br.reader.Read(p)
	br.bytesConsumed += int64(n)

	if errors.Is(err, io.EOF) && br.bytesConsumed < br.contentLength {
		return n, ErrIncompleteRequest
	}

	return n, err
}

func newBodyReader(r io.Reader, contentLength int64) *bodyReader {
	return &bodyReader{reader: io.LimitReader(r, contentLength), contentLength: contentLength}
}

// readBody reads exactly contentLength bytes. The buffer grows with the bytes
// that actually arrive rather than with the declared length.
func readBody(r io.Reader, contentLength int64) (string, error) {
	br := newBodyReader(r, contentLength)
	data, err := io.ReadAll(br)
	if err != nil {
		return "", &BodyReadError{ContentLength: contentLength, Read: br.bytesConsumed, Err: err}
	}
	return decodeLossy(data), nil
}

// decodeLossy converts b to a string, replacing every invalid UTF-8 byte with U+FFFD.
func decodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(b[:size])
		}
		b = b[size:]
	}
	return sb.String()
}
