package factory

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/erp/sellercenter/internal/domain/shared"
	"github.com/erp/sellercenter/internal/domain/shared/valueobject"
)

// fields reads typed values from the children of one element. Empty or
// missing elements read as absent. The first conversion error is kept in
// err and later reads become no-ops.
type fields struct {
	e     *etree.Element
	model string
	err   error
}

func newFields(e *etree.Element, model string) *fields {
	return &fields{e: e, model: model}
}

func (f *fields) text(tag string) string {
	child := f.e.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func (f *fields) integer(tag string) int {
	n := f.optInt(tag)
	if n == nil {
		return 0
	}
	return *n
}

func (f *fields) optInt(tag string) *int {
	s := f.text(tag)
	if s == "" || f.err != nil {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f.fail(tag, s)
		return nil
	}
	return &n
}

func (f *fields) amount(tag string) decimal.Decimal {
	d := f.optAmount(tag)
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func (f *fields) optAmount(tag string) *decimal.Decimal {
	s := f.text(tag)
	if s == "" || f.err != nil {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		f.fail(tag, s)
		return nil
	}
	return &d
}

// date parses the fixed date layout in UTC; unparseable dates are absent
func (f *fields) date(tag string) *time.Time {
	s := f.text(tag)
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(valueobject.DateTimeLayout, s, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

// flag is true for any non-empty value other than "0"
func (f *fields) flag(tag string) bool {
	s := f.text(tag)
	return s != "" && s != "0"
}

// list returns the texts of the children of tag, skipping empty ones
func (f *fields) list(tag string) []string {
	container := f.e.SelectElement(tag)
	if container == nil {
		return nil
	}
	var out []string
	for _, child := range container.ChildElements() {
		if s := strings.TrimSpace(child.Text()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (f *fields) fail(tag, value string) {
	f.err = shared.NewDomainError("INVALID_NUMBER",
		fmt.Sprintf("%s.%s: %q is not a valid number", f.model, tag, value))
}
