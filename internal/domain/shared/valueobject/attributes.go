package valueobject

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Attributes is an insertion-ordered bag of named wire values.
// Emission order of XML children follows insertion order.
type Attributes struct {
	values *orderedmap.OrderedMap[string, WireValue]
}

// NewAttributes creates an empty attribute bag
func NewAttributes() *Attributes {
	return &Attributes{values: orderedmap.New[string, WireValue]()}
}

// Set stores value under name. Re-setting a name keeps its original position.
func (a *Attributes) Set(name string, value WireValue) *Attributes {
	a.values.Set(name, value)
	return a
}

// Get returns the value stored under name
func (a *Attributes) Get(name string) (WireValue, bool) {
	return a.values.Get(name)
}

// Has reports whether name is present
func (a *Attributes) Has(name string) bool {
	_, ok := a.values.Get(name)
	return ok
}

// Delete removes name from the bag
func (a *Attributes) Delete(name string) {
	a.values.Delete(name)
}

// Len returns the number of attributes
func (a *Attributes) Len() int {
	return a.values.Len()
}

// Names returns attribute names in insertion order
func (a *Attributes) Names() []string {
	names := make([]string, 0, a.values.Len())
	for pair := a.values.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// All iterates over the attributes in insertion order
func (a *Attributes) All() iter.Seq2[string, WireValue] {
	return func(yield func(string, WireValue) bool) {
		for pair := a.values.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Clone returns an independent bag with the same attributes in the same order
func (a *Attributes) Clone() *Attributes {
	out := NewAttributes()
	for name, value := range a.All() {
		out.values.Set(name, value)
	}
	return out
}

// Strings returns the wire form of every attribute, absent values as ""
func (a *Attributes) Strings() map[string]string {
	out := make(map[string]string, a.values.Len())
	for name, value := range a.All() {
		if value == nil {
			out[name] = ""
			continue
		}
		out[name] = value.WireString()
	}
	return out
}
