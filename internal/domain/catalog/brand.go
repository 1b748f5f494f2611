package catalog

import (
	"strings"

	"github.com/erp/sellercenter/internal/domain/shared"
)

// Brand represents a brand registered in SellerCenter
type Brand struct {
	id               int
	name             string
	globalIdentifier string
}

// NewBrand creates a brand known only by name, as products reference it
func NewBrand(name string) (*Brand, error) {
	if err := validateBrandName(name); err != nil {
		return nil, err
	}
	return &Brand{name: name}, nil
}

// NewBrandWithID creates a brand as listed by GetBrands
func NewBrandWithID(id int, name, globalIdentifier string) (*Brand, error) {
	if err := validateBrandName(name); err != nil {
		return nil, err
	}
	return &Brand{id: id, name: name, globalIdentifier: globalIdentifier}, nil
}

// ID returns the brand id; zero when the brand was built from a name
func (b *Brand) ID() int { return b.id }

// Name returns the brand name
func (b *Brand) Name() string { return b.name }

// GlobalIdentifier returns the cross-venture identifier
func (b *Brand) GlobalIdentifier() string { return b.globalIdentifier }

// WireString implements valueobject.WireValue; brands travel by name
func (b *Brand) WireString() string {
	if b == nil {
		return ""
	}
	return b.name
}

// IsEmpty implements valueobject.WireValue
func (b *Brand) IsEmpty() bool {
	return b == nil || b.name == ""
}

func validateBrandName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("EMPTY_VALUE", "Brand name cannot be empty")
	}
	return nil
}

// Brands is a collection of brands keyed by id
type Brands struct {
	items shared.Collection[int, *Brand]
}

// NewBrands creates an empty collection
func NewBrands() *Brands {
	return &Brands{}
}

// Add stores a brand; an existing brand with the same id is replaced
func (c *Brands) Add(brand *Brand) {
	c.items.Put(brand.id, brand)
}

// Get returns the brand with the given id
func (c *Brands) Get(id int) (*Brand, bool) {
	return c.items.Get(id)
}

// FindByName returns the first brand whose name matches case-insensitively
func (c *Brands) FindByName(name string) (*Brand, bool) {
	return c.items.Find(func(b *Brand) bool {
		return strings.EqualFold(b.name, name)
	})
}

// All returns brands in insertion order
func (c *Brands) All() []*Brand {
	return c.items.Values()
}

// Len returns the number of brands
func (c *Brands) Len() int {
	return c.items.Len()
}
