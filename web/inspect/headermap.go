package inspect

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/textproto"
	"sort"
)

// HeaderPair is a single header line as received on the wire.
type HeaderPair struct {
	Name  string
	Value string
}

// HeaderMap is an ordered sequence of header name/value pairs. Unlike
// http.Header, which groups values under a single key, it keeps one
// entry per received header line, so a name that was sent multiple
// times retains every value, count for count.
//
// Names carry the canonical MIME casing applied by net/http during
// parsing, and are ordered by name, with the values of a repeated name
// kept in arrival order. Serializing the same request twice therefore
// produces byte-identical output.
type HeaderMap struct {
	pairs []HeaderPair
}

// NewHeaderMap flattens an http.Header into a HeaderMap.
func NewHeaderMap(h http.Header) HeaderMap {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	hm := HeaderMap{}
	for _, name := range names {
		for _, value := range h[name] {
			hm.pairs = append(hm.pairs, HeaderPair{Name: name, Value: value})
		}
	}

	return hm
}

// Len returns the total number of header lines, counting repeated names
// once per value.
func (hm HeaderMap) Len() int {
	return len(hm.pairs)
}

// Pairs returns a copy of all header lines.
func (hm HeaderMap) Pairs() []HeaderPair {
	pairs := make([]HeaderPair, len(hm.pairs))
	copy(pairs, hm.pairs)
	return pairs
}

// Values returns all values received for the given header name, in
// arrival order. The name is matched case-insensitively.
func (hm HeaderMap) Values(name string) []string {
	canonical := textproto.CanonicalMIMEHeaderKey(name)
	var values []string
	for _, p := range hm.pairs {
		if p.Name == canonical {
			values = append(values, p.Value)
		}
	}
	return values
}

// MarshalJSON emits a flat JSON object with one member per header line.
// A name received more than once appears as multiple members under the
// same key. This deliberately deviates from strict JSON: standard
// parsers keep only the last value of a duplicated key, so clients that
// need every value must read the object with an event-based parser.
// The emission is hand-rolled so the duplicate-key behavior doesn't
// depend on encoding/json object semantics.
func (hm HeaderMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range hm.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(p.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
