package diag

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strings"
	"testing"

	"github.com/shravanasati/rawreq/internal/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, raw string) *request.Request {
	t.Helper()
	r, err := request.RequestFromReader(strings.NewReader(raw), request.ParserOpts{})
	require.NoError(t, err)
	return r
}

func TestClassify(t *testing.T) {
	cases := map[Outcome]error{
		OutcomeOK:           nil,
		OutcomeEmpty:        &request.LineReadError{Purpose: request.PurposeStartLine, Err: request.ErrEmptyRequest},
		OutcomeTimeout:      &request.LineReadError{Purpose: request.PurposeHeaderLine, Err: os.ErrDeadlineExceeded},
		OutcomeBadStartLine: request.ErrMissingTarget,
		OutcomeLimit:        &request.LineReadError{Purpose: request.PurposeHeaderLine, Err: request.ErrLineTooLong},
		OutcomeLineRead:     &request.LineReadError{Purpose: request.PurposeHeaderLine, Err: request.ErrIncompleteRequest},
		OutcomeBodyRead:     &request.BodyReadError{ContentLength: 5, Read: 3, Err: request.ErrIncompleteRequest},
		OutcomeError:        errors.New("something else"),
	}

	for want, err := range cases {
		assert.Equal(t, want, Classify(err), "error: %v", err)
	}

	assert.Equal(t, OutcomeLimit, Classify(request.ErrTooManyHeaders))
	assert.Equal(t, OutcomeLimit, Classify(fmt.Errorf("wrapped: %w", request.ErrBodyTooLarge)))
	assert.Equal(t, OutcomeBadStartLine, Classify(request.ErrMissingMethod))
}

func TestFormatRequest(t *testing.T) {
	p := NewPrinter(nil, false)

	r := parse(t, "POST /submit HTTP/1.1\r\nHost: x\r\nContent-Length: 4\r\n\r\nabcd")
	expected := "[POST] /submit HTTP/1.1\n" +
		"  Content-Length: 4\n" +
		"  Host: x\n" +
		"  body (4 bytes):\n" +
		"abcd"
	assert.Equal(t, expected, p.FormatRequest(r))

	r = parse(t, "PATCH /x HTTP/1.1\r\n\r\n")
	assert.Equal(t, "[PATCH] /x HTTP/1.1\n  (no body)", p.FormatRequest(r))
}

func TestFormatRequestColored(t *testing.T) {
	p := NewPrinter(nil, true)
	r := parse(t, "GET /index HTTP/1.1\r\nAccept: */*\r\n\r\n")

	out := p.FormatRequest(r)
	assert.Contains(t, out, "GET")
	assert.Contains(t, out, "/index HTTP/1.1")
	assert.Contains(t, out, "Accept")
	assert.Contains(t, out, "*/*")
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(log.New(&buf, "", 0), false)
	addr := &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 51234}

	p.Report(addr, parse(t, "GET / HTTP/1.1\r\n\r\n"), nil)
	assert.Equal(t, "[OK] from 127.0.0.1:51234\n[GET] / HTTP/1.1\n  (no body)\n", buf.String())

	buf.Reset()
	p.Report(addr, nil, request.ErrMissingTarget)
	assert.Equal(t, "[BAD START LINE] malformed request line: missing URI or version token from 127.0.0.1:51234\n", buf.String())

	buf.Reset()
	p.Report(nil, nil, errors.New("boom"))
	assert.Equal(t, "[ERROR] boom from unknown\n", buf.String())
}
