package classify

import (
	"net/http"
	"net/url"
	"strings"
)

// Header is a header mapping with case-insensitive keys.
type Header map[string]string

// Get returns the value for key and whether it was present.
func (h Header) Get(key string) (string, bool) {
	if h == nil {
		return "", false
	}
	v, ok := h[strings.ToLower(key)]
	return v, ok
}

// Set stores value under the lower-cased key.
func (h Header) Set(key, value string) {
	h[strings.ToLower(key)] = value
}

// Request is the transport-neutral view of an inbound request.
type Request struct {
	Method  string
	Path    string
	Query   map[string]string // first value per key, keys case-sensitive
	Headers Header
}

// NewRequest returns a Request with empty mappings.
func NewRequest(method, path string) Request {
	return Request{
		Method:  method,
		Path:    path,
		Query:   make(map[string]string),
		Headers: make(Header),
	}
}

// FromHTTP normalizes r. Malformed query pairs are dropped; only the first
// value of a repeated query key or header is kept.
func FromHTTP(r *http.Request) Request {
	req := NewRequest(r.Method, r.URL.Path)

	req.Query = ParseQuery(r.URL.RawQuery)

	for name, values := range r.Header {
		if len(values) > 0 {
			req.Headers.Set(name, values[0])
		}
	}
	// net/http moves Host out of the header map
	if r.Host != "" {
		if _, ok := req.Headers.Get("host"); !ok {
			req.Headers.Set("host", r.Host)
		}
	}
	return req
}

// ParseQuery parses a raw query string leniently, keeping the first value of
// each key. Pairs that fail to decode are skipped instead of failing the whole
// string.
func ParseQuery(raw string) map[string]string {
	out := make(map[string]string)
	for raw != "" {
		var pair string
		pair, raw, _ = strings.Cut(raw, "&")
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			continue
		}
		if _, seen := out[key]; !seen {
			out[key] = value
		}
	}
	return out
}
