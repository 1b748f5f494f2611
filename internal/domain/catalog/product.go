package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp/sellercenter/internal/domain/shared"
	"github.com/erp/sellercenter/internal/domain/shared/valueobject"
)

// Variant tags the concrete kind of a Sellable
type Variant string

const (
	KindProduct       Variant = "product"
	KindGlobalProduct Variant = "global_product"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusDeleted  ProductStatus = "deleted"
)

// ParseProductStatus converts the wire status into a ProductStatus
func ParseProductStatus(value string) (ProductStatus, error) {
	status := ProductStatus(strings.ToLower(strings.TrimSpace(value)))
	if !status.IsValid() {
		return "", shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown product status %q", value))
	}
	return status, nil
}

// IsValid returns true if the status is known
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusDeleted:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s ProductStatus) String() string {
	return string(s)
}

// Sellable is implemented by both product variants. Callers needing
// variant-specific data switch on Kind.
type Sellable interface {
	Kind() Variant
	SellerSku() string
	Name() string
	ProductData() *ProductData
	Images() *Images
	// All returns the writable fields in emission order
	All() *valueobject.Attributes
}

// ProductInfo holds the fields shared by every product variant
type ProductInfo struct {
	SellerSku       string
	Name            string
	Variation       string
	Description     string
	Brand           *Brand
	PrimaryCategory *Category
	Categories      *Categories
	Status          ProductStatus
	ProductData     *ProductData
}

// baseProduct carries what both variants have in common
type baseProduct struct {
	sellerSku       string
	name            string
	variation       string
	description     string
	brand           *Brand
	primaryCategory *Category
	categories      *Categories
	status          ProductStatus
	productData     *ProductData
	images          *Images
	shopSku         string
	taxClass        string
	parentSku       string
	productID       string
	url             string
	mainImage       string
}

func newBaseProduct(info ProductInfo) (baseProduct, error) {
	if strings.TrimSpace(info.SellerSku) == "" {
		return baseProduct{}, shared.NewDomainError("EMPTY_VALUE", "Seller SKU cannot be empty")
	}
	if strings.TrimSpace(info.Name) == "" {
		return baseProduct{}, shared.NewDomainError("EMPTY_VALUE", "Product name cannot be empty")
	}
	if info.ProductData == nil {
		return baseProduct{}, shared.NewDomainError("EMPTY_VALUE", "Product data is required")
	}
	status := info.Status
	if status == "" {
		status = ProductStatusActive
	}
	if !status.IsValid() {
		return baseProduct{}, shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown product status %q", status))
	}
	categories := info.Categories
	if categories == nil {
		categories = NewCategories()
	}
	return baseProduct{
		sellerSku:       info.SellerSku,
		name:            info.Name,
		variation:       info.Variation,
		description:     info.Description,
		brand:           info.Brand,
		primaryCategory: info.PrimaryCategory,
		categories:      categories,
		status:          status,
		productData:     info.ProductData,
		images:          NewImages(),
	}, nil
}

// SellerSku returns the seller SKU
func (b *baseProduct) SellerSku() string { return b.sellerSku }

// Name returns the product name
func (b *baseProduct) Name() string { return b.name }

// Variation returns the variation label
func (b *baseProduct) Variation() string { return b.variation }

// Description returns the description
func (b *baseProduct) Description() string { return b.description }

// Brand returns the brand
func (b *baseProduct) Brand() *Brand { return b.brand }

// PrimaryCategory returns the primary category
func (b *baseProduct) PrimaryCategory() *Category { return b.primaryCategory }

// Categories returns the secondary categories
func (b *baseProduct) Categories() *Categories { return b.categories }

// Status returns the product status
func (b *baseProduct) Status() ProductStatus { return b.status }

// ProductData returns the attribute bag
func (b *baseProduct) ProductData() *ProductData { return b.productData }

// Images returns the image collection
func (b *baseProduct) Images() *Images { return b.images }

// Rename changes the product name
func (b *baseProduct) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("EMPTY_VALUE", "Product name cannot be empty")
	}
	b.name = name
	return nil
}

// SetDescription sets the description
func (b *baseProduct) SetDescription(description string) {
	b.description = description
}

// SetBrand sets the brand
func (b *baseProduct) SetBrand(brand *Brand) {
	b.brand = brand
}

// SetPrimaryCategory sets the primary category
func (b *baseProduct) SetPrimaryCategory(category *Category) {
	b.primaryCategory = category
}

// SetStatus changes the product status
func (b *baseProduct) SetStatus(status ProductStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown product status %q", status))
	}
	b.status = status
	return nil
}

// Product is a product sold in a single market
type Product struct {
	baseProduct
	price                    decimal.Decimal
	salePrice                *decimal.Decimal
	saleStartDate            *time.Time
	saleEndDate              *time.Time
	quantity                 int
	available                int
	fulfillmentByNonSellable *int
}

// NewProduct creates a single-market product
func NewProduct(info ProductInfo, price decimal.Decimal, quantity, available int) (*Product, error) {
	base, err := newBaseProduct(info)
	if err != nil {
		return nil, err
	}
	p := &Product{baseProduct: base}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetStock(quantity, available); err != nil {
		return nil, err
	}
	return p, nil
}

// Kind implements Sellable
func (p *Product) Kind() Variant { return KindProduct }

// ShopSku returns the marketplace SKU
func (b *baseProduct) ShopSku() string { return b.shopSku }

// TaxClass returns the tax class
func (b *baseProduct) TaxClass() string { return b.taxClass }

// ParentSku returns the parent SKU for variations
func (b *baseProduct) ParentSku() string { return b.parentSku }

// ProductID returns the product identifier (EAN, UPC, ...)
func (b *baseProduct) ProductID() string { return b.productID }

// Price returns the regular price
func (p *Product) Price() decimal.Decimal { return p.price }

// SalePrice returns the sale price, nil when none
func (p *Product) SalePrice() *decimal.Decimal { return p.salePrice }

// SaleStartDate returns the start of the sale window
func (p *Product) SaleStartDate() *time.Time { return p.saleStartDate }

// SaleEndDate returns the end of the sale window
func (p *Product) SaleEndDate() *time.Time { return p.saleEndDate }

// Quantity returns the stock quantity
func (p *Product) Quantity() int { return p.quantity }

// Available returns the sellable stock
func (p *Product) Available() int { return p.available }

// URL returns the storefront URL
func (b *baseProduct) URL() string { return b.url }

// MainImage returns the main image URL
func (b *baseProduct) MainImage() string { return b.mainImage }

// FulfillmentByNonSellable returns the non-sellable fulfillment count
func (p *Product) FulfillmentByNonSellable() *int { return p.fulfillmentByNonSellable }

// SetShopSku sets the marketplace SKU
func (b *baseProduct) SetShopSku(shopSku string) { b.shopSku = shopSku }

// SetTaxClass sets the tax class
func (b *baseProduct) SetTaxClass(taxClass string) { b.taxClass = taxClass }

// SetParentSku sets the parent SKU
func (b *baseProduct) SetParentSku(parentSku string) { b.parentSku = parentSku }

// SetProductID sets the product identifier
func (b *baseProduct) SetProductID(productID string) { b.productID = productID }

// SetURL sets the storefront URL
func (b *baseProduct) SetURL(url string) { b.url = url }

// SetMainImage sets the main image URL
func (b *baseProduct) SetMainImage(url string) { b.mainImage = url }

// SetFulfillmentByNonSellable sets the non-sellable fulfillment count
func (p *Product) SetFulfillmentByNonSellable(n *int) { p.fulfillmentByNonSellable = n }

// SetPrice sets the regular price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	p.price = price
	return nil
}

// SetSale sets the sale price and window. A nil price clears the sale.
func (p *Product) SetSale(price *decimal.Decimal, start, end *time.Time) error {
	if price != nil && price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}
	if start != nil && end != nil && end.Before(*start) {
		return shared.NewDomainError("INVALID_INPUT", "Sale end date cannot be before start date")
	}
	p.salePrice = price
	p.saleStartDate = start
	p.saleEndDate = end
	return nil
}

// ClearSale removes the sale price and window
func (p *Product) ClearSale() {
	p.salePrice = nil
	p.saleStartDate = nil
	p.saleEndDate = nil
}

// SetStock sets quantity and available stock; available cannot exceed quantity
func (p *Product) SetStock(quantity, available int) error {
	if quantity < 0 || available < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	if available > quantity {
		return shared.NewDomainError("INVALID_STOCK",
			fmt.Sprintf("Available stock %d exceeds quantity %d", available, quantity))
	}
	p.quantity = quantity
	p.available = available
	return nil
}

// All implements Sellable
func (p *Product) All() *valueobject.Attributes {
	return valueobject.NewAttributes().
		Set("SellerSku", valueobject.Text(p.sellerSku)).
		Set("Name", valueobject.Text(p.name)).
		Set("Variation", valueobject.Text(p.variation)).
		Set("PrimaryCategory", p.primaryCategory).
		Set("Categories", p.categories).
		Set("Description", valueobject.Text(p.description)).
		Set("Brand", p.brand).
		Set("Price", valueobject.NumberOf(p.price)).
		Set("ProductId", valueobject.Text(p.productID)).
		Set("TaxClass", valueobject.Text(p.taxClass)).
		Set("ParentSku", valueobject.Text(p.parentSku)).
		Set("Quantity", valueobject.Integer(p.quantity)).
		Set("SalePrice", valueobject.NumberPtr(p.salePrice)).
		Set("SaleStartDate", valueobject.DatePtr(p.saleStartDate)).
		Set("SaleEndDate", valueobject.DatePtr(p.saleEndDate)).
		Set("Status", valueobject.Text(p.status))
}

// Products is a collection of sellables keyed by seller SKU
type Products struct {
	items shared.Collection[string, Sellable]
}

// NewProducts creates an empty collection
func NewProducts() *Products {
	return &Products{}
}

// Add stores a product; a product with the same SKU is replaced
func (c *Products) Add(product Sellable) {
	c.items.Put(product.SellerSku(), product)
}

// FindBySku returns the product with the given seller SKU
func (c *Products) FindBySku(sku string) (Sellable, bool) {
	return c.items.Get(sku)
}

// SearchByName returns the products whose name contains term, case-insensitively
func (c *Products) SearchByName(term string) []Sellable {
	term = strings.ToLower(term)
	return c.items.Filter(func(p Sellable) bool {
		return strings.Contains(strings.ToLower(p.Name()), term)
	})
}

// All returns the products in insertion order
func (c *Products) All() []Sellable {
	return c.items.Values()
}

// Len returns the number of products
func (c *Products) Len() int {
	return c.items.Len()
}
