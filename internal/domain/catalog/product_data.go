package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/erp/sellercenter/internal/domain/shared"
	"github.com/erp/sellercenter/internal/domain/shared/valueobject"
)

// Keys of the package attributes every ProductData carries
const (
	AttrConditionType = "ConditionType"
	AttrPackageHeight = "PackageHeight"
	AttrPackageWidth  = "PackageWidth"
	AttrPackageLength = "PackageLength"
	AttrPackageWeight = "PackageWeight"
)

// ProductData is the free-form attribute bag of a product. The condition
// type and package dimensions are always present; any other attribute is
// kept in insertion order.
type ProductData struct {
	attributes *valueobject.Attributes
}

// NewProductData creates a ProductData with the mandatory package attributes
func NewProductData(conditionType string, height, width, length, weight decimal.Decimal) (*ProductData, error) {
	if strings.TrimSpace(conditionType) == "" {
		return nil, shared.NewDomainError("EMPTY_VALUE", "Condition type cannot be empty")
	}
	dims := []struct {
		name  string
		value decimal.Decimal
	}{
		{AttrPackageHeight, height},
		{AttrPackageWidth, width},
		{AttrPackageLength, length},
		{AttrPackageWeight, weight},
	}
	attrs := valueobject.NewAttributes().Set(AttrConditionType, valueobject.Text(conditionType))
	for _, d := range dims {
		if d.value.IsNegative() {
			return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("%s cannot be negative", d.name))
		}
		attrs.Set(d.name, valueobject.NumberOf(d.value))
	}
	return &ProductData{attributes: attrs}, nil
}

// Add stores an additional attribute. Package attributes cannot be replaced this way.
func (d *ProductData) Add(name string, value valueobject.WireValue) error {
	if isPackageAttribute(name) {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("%s is a package attribute", name))
	}
	d.attributes.Set(name, value)
	return nil
}

// Get returns the attribute stored under name
func (d *ProductData) Get(name string) (valueobject.WireValue, bool) {
	return d.attributes.Get(name)
}

// ConditionType returns the condition type
func (d *ProductData) ConditionType() string {
	v, _ := d.attributes.Get(AttrConditionType)
	return v.WireString()
}

// PackageHeight returns the package height
func (d *ProductData) PackageHeight() decimal.Decimal { return d.dimension(AttrPackageHeight) }

// PackageWidth returns the package width
func (d *ProductData) PackageWidth() decimal.Decimal { return d.dimension(AttrPackageWidth) }

// PackageLength returns the package length
func (d *ProductData) PackageLength() decimal.Decimal { return d.dimension(AttrPackageLength) }

// PackageWeight returns the package weight
func (d *ProductData) PackageWeight() decimal.Decimal { return d.dimension(AttrPackageWeight) }

func (d *ProductData) dimension(name string) decimal.Decimal {
	v, ok := d.attributes.Get(name)
	if !ok {
		return decimal.Zero
	}
	n, ok := v.(valueobject.Number)
	if !ok {
		return decimal.Zero
	}
	value, _ := n.Decimal()
	return value
}

// All returns a copy of every attribute in emission order
func (d *ProductData) All() *valueobject.Attributes {
	return d.attributes.Clone()
}

func isPackageAttribute(name string) bool {
	switch name {
	case AttrConditionType, AttrPackageHeight, AttrPackageWidth, AttrPackageLength, AttrPackageWeight:
		return true
	}
	return false
}
