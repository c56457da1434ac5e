package request

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shravanasati/rawreq/headers"
)

const contentLengthHeader = "Content-Length"

// Request is a parsed HTTP/1.1 request.
type Request struct {
	Method  Method
	URI     string
	Version string
	Headers headers.Headers
	Body    string
}

// String renders the request on one line, for diagnostics.
func (r *Request) String() string {
	return fmt.Sprintf("%s %s %s (%d headers, %d byte body)", r.Method, r.URI, r.Version, r.Headers.Size(), len(r.Body))
}

// DeadlineReader is a stream with a settable read deadline, such as a net.Conn.
type DeadlineReader interface {
	io.Reader
	SetReadDeadline(t time.Time) error
}

type parser struct {
	br    *bufio.Reader
	lines *lineReader
	opts  ParserOpts
	state parseState

	method  Method
	uri     string
	version string
	headers *headers.Headers
	body    string
}

func parseRequestLine(line string) (Method, string, string, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Method{}, "", "", ErrMissingMethod
	}
	if len(parts) < 3 {
		return Method{}, "", "", ErrMissingTarget
	}
	// anything past the version is ignored
	return ParseMethod(parts[0]), parts[1], parts[2], nil
}

func (p *parser) readStartLine() error {
	line, _, err := p.lines.readLine(PurposeStartLine)
	if err != nil {
		return err
	}
	p.method, p.uri, p.version, err = parseRequestLine(line)
	return err
}

func (p *parser) readHeaders() error {
	p.headers = headers.NewHeaders()
	count := 0
	for {
		line, crlf, err := p.lines.readLine(PurposeHeaderLine)
		if err != nil {
			return err
		}
		if line == "" && crlf {
			// end of header block
			return nil
		}

		if !p.headers.ParseFieldLine(line) {
			// no colon, skipped
			continue
		}
		count++
		if p.opts.MaxHeaderCount > 0 && count > p.opts.MaxHeaderCount {
			return ErrTooManyHeaders
		}
	}
}

// contentLength returns the declared body length, zero when the header is
// absent or not an unsigned integer. One leading plus sign is allowed.
func (p *parser) contentLength() int64 {
	v, ok := p.headers.Lookup(contentLengthHeader)
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(v, "+"), 10, 63)
	if err != nil {
		return 0
	}
	return int64(n)
}

func (p *parser) readBody() error {
	n := p.contentLength()
	if n == 0 {
		return nil
	}
	if p.opts.MaxBodyBytes > 0 && n > p.opts.MaxBodyBytes {
		return ErrBodyTooLarge
	}

	body, err := readBody(p.br, n)
	if err != nil {
		return err
	}
	p.body = body
	return nil
}

func (p *parser) parse() (*Request, error) {
	for p.state != stateDone {
		var err error
		switch p.state {
		case stateStart:
			err = p.readStartLine()
		case stateStartLineParsed:
			err = p.readHeaders()
		case stateHeadersParsed:
			err = p.readBody()
		}
		if err != nil {
			return nil, err
		}
		p.state = p.state.advance()
	}

	return &Request{
		Method:  p.method,
		URI:     p.uri,
		Version: p.version,
		Headers: *p.headers,
		Body:    p.body,
	}, nil
}

// ReadRequest reads one request from br. On return br is positioned right
// after the last byte that belongs to the request; with no Content-Length
// that is the byte after the blank line.
func ReadRequest(br *bufio.Reader, opts ParserOpts) (*Request, error) {
	p := &parser{
		br:    br,
		lines: newLineReader(br, opts.MaxLineBytes),
		opts:  opts,
		state: newParseState(),
	}
	return p.parse()
}

// RequestFromReader reads one request from reader.
// Bytes buffered past the end of the request are lost.
func RequestFromReader(reader io.Reader, opts ParserOpts) (*Request, error) {
	return ReadRequest(bufio.NewReader(reader), opts)
}

// FromConn arms the read deadline on conn once, then reads one request from it.
// The connection is not closed.
func FromConn(conn DeadlineReader, opts ParserOpts) (*Request, error) {
	if timeout := opts.readTimeout(); timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return nil, fmt.Errorf("unable to set read deadline: %w", err)
		}
	}
	return RequestFromReader(conn, opts)
}
