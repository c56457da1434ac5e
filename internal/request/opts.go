package request

import "time"

// DefaultReadTimeout bounds the whole exchange when ParserOpts.ReadTimeout is zero.
const DefaultReadTimeout = 5 * time.Second

type ParserOpts struct {
	// ReadTimeout is armed once on the connection before the first read and
	// covers every read after it. Zero means DefaultReadTimeout, a negative
	// value disables the deadline.
	ReadTimeout time.Duration

	// MaxLineBytes limits the length of the start line and of each header line,
	// excluding the terminator. Zero means no limit.
	MaxLineBytes int

	// MaxHeaderCount limits the number of stored header lines. Zero means no limit.
	MaxHeaderCount int

	// MaxBodyBytes limits the declared Content-Length. Zero means no limit.
	MaxBodyBytes int64
}

func (o ParserOpts) readTimeout() time.Duration {
	if o.ReadTimeout == 0 {
		return DefaultReadTimeout
	}
	return o.ReadTimeout
}
