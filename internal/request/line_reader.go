package request

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

var registeredNurse = []byte("\r\n")

// lineReader reads CRLF terminated lines off a buffered reader.
type lineReader struct {
	br       *bufio.Reader
	maxBytes int
}

func newLineReader(br *bufio.Reader, maxBytes int) *lineReader {
	return &lineReader{br: br, maxBytes: maxBytes}
}

// readLine returns the next line without its terminator and whether that
// terminator was CRLF. A missing terminator at the end of the stream is an
// error, the partial line is dropped.
func (lr *lineReader) readLine(purpose LinePurpose) (string, bool, error) {
	var line []byte
	for {
		frag, err := lr.br.ReadSlice('\n')
		line = append(line, frag...)
		if lr.maxBytes > 0 && len(line) > lr.maxBytes+len(registeredNurse) {
			return "", false, &LineReadError{Purpose: purpose, Err: ErrLineTooLong}
		}

		if err == nil {
			break
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		if errors.Is(err, io.EOF) {
			err = ErrIncompleteRequest
			if purpose == PurposeStartLine && len(line) == 0 {
				err = ErrEmptyRequest
			}
		}
		return "", false, &LineReadError{Purpose: purpose, Err: err}
	}

	crlf := bytes.HasSuffix(line, registeredNurse)
	if crlf {
		line = line[:len(line)-len(registeredNurse)]
	} else {
		// bare LF
		line = line[:len(line)-1]
	}
	if lr.maxBytes > 0 && len(line) > lr.maxBytes {
		return "", false, &LineReadError{Purpose: purpose, Err: ErrLineTooLong}
	}
	return string(line), crlf, nil
}
