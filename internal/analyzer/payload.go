package analyzer

import "fmt"

// Payload wraps one raw provider item. Provider payloads are loosely typed:
// any field may be missing, and the same field may arrive as a string in one
// item and a nested object in the next. The accessors below never panic and
// report absence explicitly instead of relying on type assertions at call
// sites.
type Payload map[string]any

// Content unwraps the provider envelope. Some providers nest the article
// under a "content" key, others put fields at the top level; callers always
// go through Content first and get whichever shape applies.
func (p Payload) Content() Payload {
	if inner, ok := p.Object("content"); ok {
		return inner
	}
	return p
}

// Text returns the string value for key. The default is the empty string:
// a missing key, a nil value or a non-string value all report !ok.
func (p Payload) Text(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Object returns the nested mapping for key. The default is nil; any
// non-mapping value reports !ok.
func (p Payload) Object(key string) (Payload, bool) {
	v, ok := p[key]
	if !ok {
		return nil, false
	}
	switch m := v.(type) {
	case map[string]any:
		return Payload(m), true
	case Payload:
		return m, true
	default:
		return nil, false
	}
}

// List returns the slice value for key. The default is nil.
func (p Payload) List(key string) ([]any, bool) {
	v, ok := p[key]
	if !ok {
		return nil, false
	}
	l, ok := v.([]any)
	return l, ok
}

// Number returns the numeric value for key as a float64. JSON decoding
// produces float64, but adapters hand-building payloads may use Go integer
// types, so all of them are accepted. The default is 0.
func (p Payload) Number(key string) (float64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// preview renders a raw item for error records, truncated to max bytes.
func preview(raw map[string]any, max int) string {
	s := fmt.Sprintf("%v", raw)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
