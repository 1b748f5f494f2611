package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp/sellercenter/internal/domain/shared"
	"github.com/erp/sellercenter/internal/domain/shared/valueobject"
)

// BusinessUnit holds the market-specific commercial data of a global product
type BusinessUnit struct {
	businessUnit    string
	operatorCode    string
	price           decimal.Decimal
	specialPrice    *decimal.Decimal
	specialFromDate *time.Time
	specialToDate   *time.Time
	stock           int
	status          ProductStatus
	isPublished     *bool
}

// NewBusinessUnit creates a business unit for one operator
func NewBusinessUnit(businessUnit, operatorCode string, price decimal.Decimal, stock int, status ProductStatus) (*BusinessUnit, error) {
	if strings.TrimSpace(operatorCode) == "" {
		return nil, shared.NewDomainError("EMPTY_VALUE", "Operator code cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown business unit status "+string(status))
	}
	return &BusinessUnit{
		businessUnit: businessUnit,
		operatorCode: strings.ToLower(operatorCode),
		price:        price,
		stock:        stock,
		status:       status,
	}, nil
}

// BusinessUnit returns the business unit name
func (u *BusinessUnit) BusinessUnit() string { return u.businessUnit }

// OperatorCode returns the lowercase operator code
func (u *BusinessUnit) OperatorCode() string { return u.operatorCode }

// Price returns the price
func (u *BusinessUnit) Price() decimal.Decimal { return u.price }

// SpecialPrice returns the special price
func (u *BusinessUnit) SpecialPrice() *decimal.Decimal { return u.specialPrice }

// SpecialFromDate returns the start of the special price window
func (u *BusinessUnit) SpecialFromDate() *time.Time { return u.specialFromDate }

// SpecialToDate returns the end of the special price window
func (u *BusinessUnit) SpecialToDate() *time.Time { return u.specialToDate }

// Stock returns the stock
func (u *BusinessUnit) Stock() int { return u.stock }

// Status returns the status
func (u *BusinessUnit) Status() ProductStatus { return u.status }

// IsPublished returns the published flag, nil when unknown
func (u *BusinessUnit) IsPublished() *bool { return u.isPublished }

// SetSpecialPrice sets the special price and window. A nil price clears it.
func (u *BusinessUnit) SetSpecialPrice(price *decimal.Decimal, from, to *time.Time) error {
	if price != nil && price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Special price cannot be negative")
	}
	if from != nil && to != nil && to.Before(*from) {
		return shared.NewDomainError("INVALID_INPUT", "Special price end date cannot be before start date")
	}
	u.specialPrice = price
	u.specialFromDate = from
	u.specialToDate = to
	return nil
}

// SetPublished sets the published flag
func (u *BusinessUnit) SetPublished(published bool) {
	u.isPublished = &published
}

// All returns the writable fields in emission order
func (u *BusinessUnit) All() *valueobject.Attributes {
	attrs := valueobject.NewAttributes().
		Set("BusinessUnit", valueobject.Text(u.businessUnit)).
		Set("OperatorCode", valueobject.Text(u.operatorCode)).
		Set("Price", valueobject.NumberOf(u.price)).
		Set("SpecialPrice", valueobject.NumberPtr(u.specialPrice)).
		Set("SpecialFromDate", valueobject.DatePtr(u.specialFromDate)).
		Set("SpecialToDate", valueobject.DatePtr(u.specialToDate)).
		Set("Stock", valueobject.Integer(u.stock)).
		Set("Status", valueobject.Text(u.status))
	if u.isPublished != nil {
		attrs.Set("IsPublished", valueobject.Flag(*u.isPublished))
	}
	return attrs
}

// BusinessUnits is a collection of business units keyed by operator code
type BusinessUnits struct {
	items shared.Collection[string, *BusinessUnit]
}

// NewBusinessUnits creates an empty collection
func NewBusinessUnits() *BusinessUnits {
	return &BusinessUnits{}
}

// Add stores a business unit; a unit with the same operator code is replaced
func (c *BusinessUnits) Add(unit *BusinessUnit) {
	c.items.Put(unit.operatorCode, unit)
}

// Get returns the business unit for an operator code
func (c *BusinessUnits) Get(operatorCode string) (*BusinessUnit, bool) {
	return c.items.Get(strings.ToLower(operatorCode))
}

// All returns the business units in insertion order
func (c *BusinessUnits) All() []*BusinessUnit {
	return c.items.Values()
}

// Len returns the number of business units
func (c *BusinessUnits) Len() int {
	return c.items.Len()
}
