package headers

import (
	"iter"
	"maps"
	"strings"
)

// Headers maps header field names to their values.
// Names are stored as received (after trimming), no case folding is done.
// The zero value is an empty map ready to use.
type Headers struct {
	headers map[string]string
}

func (h *Headers) lazyInit() {
	if h.headers == nil {
		h.headers = map[string]string{}
	}
}

// Set stores a header, replacing any earlier value for the same name.
func (h *Headers) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyFieldName
	}
	h.lazyInit()
	h.headers[key] = strings.TrimSpace(value)
	return nil
}

// Get returns the value of a header, or an empty string if absent.
// The lookup is an exact match on the name.
func (h *Headers) Get(key string) string {
	return h.headers[key]
}

// Lookup returns the value of a header and whether it was present.
func (h *Headers) Lookup(key string) (string, bool) {
	v, ok := h.headers[key]
	return v, ok
}

// Remove removes a header.
func (h *Headers) Remove(key string) {
	delete(h.headers, key)
}

// All returns an iterator over all headers.
func (h *Headers) All() iter.Seq2[string, string] {
	return maps.All(h.headers)
}

// ParseFieldLine parses a single header line and stores it.
// It reports whether the line was stored. Lines without a colon are skipped.
func (h *Headers) ParseFieldLine(line string) bool {
	name, value, found := strings.Cut(line, ":")
	if !found {
		return false
	}

	// an empty name is still a key, same as any other trimmed text
	h.lazyInit()
	h.headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	return true
}

// Size returns the number of headers.
func (h *Headers) Size() int {
	return len(h.headers)
}

// NewHeaders creates a new Headers object.
func NewHeaders() *Headers {
	return &Headers{
		headers: map[string]string{},
	}
}
