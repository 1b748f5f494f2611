package catalog

import (
	"github.com/erp/sellercenter/internal/domain/shared"
	"github.com/erp/sellercenter/internal/domain/shared/valueobject"
)

// GlobalProduct is a product sold in several markets, each described by a BusinessUnit
type GlobalProduct struct {
	baseProduct
	businessUnits *BusinessUnits
}

// NewGlobalProduct creates a global product; at least one business unit is required
func NewGlobalProduct(info ProductInfo, units *BusinessUnits) (*GlobalProduct, error) {
	if units == nil || units.Len() == 0 {
		return nil, shared.ErrMissingBusinessUnit
	}
	base, err := newBaseProduct(info)
	if err != nil {
		return nil, err
	}
	return &GlobalProduct{baseProduct: base, businessUnits: units}, nil
}

// Kind implements Sellable
func (p *GlobalProduct) Kind() Variant { return KindGlobalProduct }

// BusinessUnits returns the per-market records
func (p *GlobalProduct) BusinessUnits() *BusinessUnits { return p.businessUnits }

// All implements Sellable
func (p *GlobalProduct) All() *valueobject.Attributes {
	return valueobject.NewAttributes().
		Set("SellerSku", valueobject.Text(p.sellerSku)).
		Set("Name", valueobject.Text(p.name)).
		Set("Variation", valueobject.Text(p.variation)).
		Set("PrimaryCategory", p.primaryCategory).
		Set("Categories", p.categories).
		Set("Description", valueobject.Text(p.description)).
		Set("Brand", p.brand).
		Set("ProductId", valueobject.Text(p.productID)).
		Set("TaxClass", valueobject.Text(p.taxClass)).
		Set("ParentSku", valueobject.Text(p.parentSku)).
		Set("Status", valueobject.Text(p.status))
}
