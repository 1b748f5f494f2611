package valueobject

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateTimeLayout is the layout of every date field in SellerCenter documents
const DateTimeLayout = "2006-01-02 15:04:05"

// WireValue is a value that travels as the text of a single XML element.
// Composite values (categories, brands) implement it as well, so serializers
// never need to inspect concrete types.
type WireValue interface {
	// WireString returns the textual form sent to SellerCenter
	WireString() string
	// IsEmpty reports whether the value is absent
	IsEmpty() bool
}

// Text is a plain string value; the empty string is absent
type Text string

// WireString implements WireValue
func (t Text) WireString() string {
	return string(t)
}

// IsEmpty implements WireValue
func (t Text) IsEmpty() bool {
	return t == ""
}

// Number is an optional decimal value. The zero Number is absent.
type Number struct {
	value decimal.Decimal
	set   bool
}

// NumberOf wraps a decimal
func NumberOf(d decimal.Decimal) Number {
	return Number{value: d, set: true}
}

// NumberOfInt wraps an integer
func NumberOfInt(i int) Number {
	return Number{value: decimal.NewFromInt(int64(i)), set: true}
}

// NumberPtr wraps an optional decimal; nil yields an absent Number
func NumberPtr(d *decimal.Decimal) Number {
	if d == nil {
		return Number{}
	}
	return NumberOf(*d)
}

// IntPtr wraps an optional integer; nil yields an absent Number
func IntPtr(i *int) Number {
	if i == nil {
		return Number{}
	}
	return NumberOfInt(*i)
}

// Decimal returns the wrapped value and whether it is present
func (n Number) Decimal() (decimal.Decimal, bool) {
	return n.value, n.set
}

// WireString implements WireValue
func (n Number) WireString() string {
	if !n.set {
		return ""
	}
	return n.value.String()
}

// IsEmpty implements WireValue
func (n Number) IsEmpty() bool {
	return !n.set
}

// Date is an optional timestamp rendered with DateTimeLayout
type Date struct {
	value time.Time
	set   bool
}

// DateOf wraps a time
func DateOf(t time.Time) Date {
	return Date{value: t, set: true}
}

// DatePtr wraps an optional time; nil yields an absent Date
func DatePtr(t *time.Time) Date {
	if t == nil {
		return Date{}
	}
	return DateOf(*t)
}

// Time returns the wrapped value and whether it is present
func (d Date) Time() (time.Time, bool) {
	return d.value, d.set
}

// WireString implements WireValue
func (d Date) WireString() string {
	if !d.set {
		return ""
	}
	return d.value.Format(DateTimeLayout)
}

// IsEmpty implements WireValue
func (d Date) IsEmpty() bool {
	return !d.set
}

// List is a multi-valued attribute serialized as a comma-joined string
type List []string

// WireString implements WireValue
func (l List) WireString() string {
	return strings.Join(l, ",")
}

// IsEmpty implements WireValue
func (l List) IsEmpty() bool {
	return len(l) == 0
}

// Flag is a boolean rendered as 1 or 0
type Flag bool

// WireString implements WireValue
func (f Flag) WireString() string {
	if f {
		return "1"
	}
	return "0"
}

// IsEmpty implements WireValue
func (f Flag) IsEmpty() bool {
	return false
}

// Integer is a convenience for required integer fields
type Integer int

// WireString implements WireValue
func (i Integer) WireString() string {
	return strconv.Itoa(int(i))
}

// IsEmpty implements WireValue
func (i Integer) IsEmpty() bool {
	return false
}
