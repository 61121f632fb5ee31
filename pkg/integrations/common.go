package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the requested endpoint doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a standard timeout for API requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// Param is a single query string key/value pair.
type Param struct {
	Key, Value string
}

// Query is a query string that keeps its parameters in insertion order.
// [url.Values] sorts keys on encode, which some endpoints reject or which
// callers want to avoid for readable links.
type Query []Param

// Add appends a parameter and returns the extended query.
func (q Query) Add(key, value string) Query {
	return append(q, Param{Key: key, Value: value})
}

// Encode percent-encodes the query in "k1=v1&k2=v2" form, preserving order.
func (q Query) Encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// JoinURL appends path and the encoded query to base, dropping any trailing
// slashes from base first. An empty query leaves no "?".
func JoinURL(base, path string, q Query) string {
	u := strings.TrimRight(base, "/") + path
	if len(q) == 0 {
		return u
	}
	return u + "?" + q.Encode()
}
