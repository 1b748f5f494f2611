package sellercenter

import (
	"maps"
	"slices"
	"strings"

	"github.com/aws/smithy-go/encoding/httpbinding"
	"github.com/spf13/cast"
)

// Parameter is one query parameter in canonical order
type Parameter struct {
	Key   string
	Value string
}

// Parameters accumulates request parameters. The set is kept sorted by key
// after every Set so iteration always yields the canonical order.
type Parameters struct {
	values map[string]string
	keys   []string
}

// NewParameters creates an empty parameter set
func NewParameters() *Parameters {
	return &Parameters{values: make(map[string]string)}
}

// Set merges pairs into the set, overwriting existing keys, and re-sorts.
// Values are coerced to strings; nil becomes "".
func (p *Parameters) Set(pairs map[string]any) *Parameters {
	if p.values == nil {
		p.values = make(map[string]string, len(pairs))
	}
	for k, v := range pairs {
		p.values[k] = cast.ToString(v)
	}
	p.keys = slices.Sorted(maps.Keys(p.values))
	return p
}

// Get returns the value stored under key
func (p *Parameters) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of parameters
func (p *Parameters) Len() int {
	return len(p.keys)
}

// All returns every parameter in ascending key order
func (p *Parameters) All() []Parameter {
	out := make([]Parameter, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, Parameter{Key: k, Value: p.values[k]})
	}
	return out
}

// Encode renders the set as a query string using strict percent-encoding
func (p *Parameters) Encode() string {
	return encodePairs(p.All())
}

func encodePairs(pairs []Parameter) string {
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		parts = append(parts, escape(pair.Key)+"="+escape(pair.Value))
	}
	return strings.Join(parts, "&")
}

// escape percent-encodes everything outside the RFC 3986 unreserved set;
// spaces become %20
func escape(s string) string {
	return httpbinding.EscapePath(s, true)
}
