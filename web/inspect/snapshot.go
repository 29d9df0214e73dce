package inspect

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// Snapshot is an immutable record of a request as it arrived: the
// method, the full URL, the client IP address, the parsed query
// arguments and every received header. It is built once per request,
// before any body is consumed, and discarded after the response is
// written.
type Snapshot struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Origin  string            `json:"origin"`
	Args    map[string]string `json:"args"`
	Headers HeaderMap         `json:"headers"`
}

// Capture builds a Snapshot from an incoming request. It never fails:
// query strings that don't decode cleanly are kept in their literal
// form rather than rejecting the request.
func Capture(r *http.Request) Snapshot {
	return Snapshot{
		Method:  r.Method,
		URL:     r.URL.String(),
		Origin:  originIP(r.RemoteAddr),
		Args:    ParseQuery(r.URL.RawQuery),
		Headers: NewHeaderMap(r.Header),
	}
}

// ParseQuery splits a raw query string on '&' and '=' and
// percent-decodes both keys and values. A key appearing more than once
// keeps its last value. Sequences that fail to decode are treated as
// literal text instead of aborting, unlike the stricter body decoders.
func ParseQuery(raw string) map[string]string {
	args := make(map[string]string)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		args[unescape(key)] = unescape(value)
	}
	return args
}

func unescape(s string) string {
	dec, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return dec
}

func originIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		// Not in host:port form; pass it through as-is.
		return remoteAddr
	}
	return host
}
