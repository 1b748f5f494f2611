package factory

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/erp/sellercenter/internal/domain/catalog"
	"github.com/erp/sellercenter/internal/domain/shared"
	"github.com/erp/sellercenter/internal/domain/shared/valueobject"
)

var productFields = []string{
	"SellerSku", "ShopSku", "Name", "Brand", "Description", "TaxClass", "Variation",
	"ParentSku", "Quantity", "Available", "Price", "Status", "ProductId",
	"PrimaryCategory", "Categories", "ProductData",
}

var globalProductFields = []string{
	"SellerSku", "Name", "Variation", "PrimaryCategory", "Description", "Brand",
	"Status", "ProductData", "BusinessUnits",
}

// ParseProductData builds the attribute bag of a <ProductData> element.
// Children other than the package attributes are kept in document order;
// children that contain elements become list values.
func ParseProductData(e *etree.Element) (*catalog.ProductData, error) {
	if err := ValidateStructure(e, "ProductData",
		catalog.AttrConditionType, catalog.AttrPackageHeight, catalog.AttrPackageWidth,
		catalog.AttrPackageLength, catalog.AttrPackageWeight); err != nil {
		return nil, err
	}
	f := newFields(e, "ProductData")
	height := f.amount(catalog.AttrPackageHeight)
	width := f.amount(catalog.AttrPackageWidth)
	length := f.amount(catalog.AttrPackageLength)
	weight := f.amount(catalog.AttrPackageWeight)
	if f.err != nil {
		return nil, f.err
	}
	data, err := catalog.NewProductData(f.text(catalog.AttrConditionType), height, width, length, weight)
	if err != nil {
		return nil, err
	}

	for _, child := range e.ChildElements() {
		switch child.Tag {
		case catalog.AttrConditionType, catalog.AttrPackageHeight, catalog.AttrPackageWidth,
			catalog.AttrPackageLength, catalog.AttrPackageWeight:
			continue
		}
		var value valueobject.WireValue
		if nested := child.ChildElements(); len(nested) > 0 {
			list := make(valueobject.List, 0, len(nested))
			for _, n := range nested {
				list = append(list, strings.TrimSpace(n.Text()))
			}
			value = list
		} else {
			value = valueobject.Text(strings.TrimSpace(child.Text()))
		}
		if err := data.Add(child.Tag, value); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// productInfo reads the fields common to both product variants
func productInfo(e *etree.Element, f *fields) (catalog.ProductInfo, error) {
	status, err := catalog.ParseProductStatus(f.text("Status"))
	if err != nil {
		return catalog.ProductInfo{}, err
	}
	info := catalog.ProductInfo{
		SellerSku:   f.text("SellerSku"),
		Name:        f.text("Name"),
		Variation:   f.text("Variation"),
		Description: f.text("Description"),
		Status:      status,
	}
	if name := f.text("Brand"); name != "" {
		if info.Brand, err = catalog.NewBrand(name); err != nil {
			return catalog.ProductInfo{}, err
		}
	}
	if ref := f.text("PrimaryCategory"); ref != "" {
		if info.PrimaryCategory, err = catalog.ParseCategoryReference(ref); err != nil {
			return catalog.ProductInfo{}, err
		}
	}
	if info.Categories, err = catalog.ParseCategoryReferences(f.text("Categories")); err != nil {
		return catalog.ProductInfo{}, err
	}
	if info.ProductData, err = ParseProductData(e.SelectElement("ProductData")); err != nil {
		return catalog.ProductInfo{}, err
	}
	return info, nil
}

type optionalProductFields interface {
	SetShopSku(string)
	SetTaxClass(string)
	SetParentSku(string)
	SetProductID(string)
	SetURL(string)
	SetMainImage(string)
	Images() *catalog.Images
}

func applyOptionalFields(e *etree.Element, f *fields, p optionalProductFields) error {
	p.SetShopSku(f.text("ShopSku"))
	p.SetTaxClass(f.text("TaxClass"))
	p.SetParentSku(f.text("ParentSku"))
	p.SetProductID(f.text("ProductId"))
	p.SetURL(f.text("Url"))
	p.SetMainImage(f.text("MainImage"))
	// listings may report more images than a product can hold
	return p.Images().AddManyFromURLs(newFields(e, "Product").list("Images"))
}

// ParseProduct builds a single-market product from a <Product> element
func ParseProduct(e *etree.Element) (*catalog.Product, error) {
	if err := ValidateStructure(e, "Product", productFields...); err != nil {
		return nil, err
	}
	f := newFields(e, "Product")
	price := f.amount("Price")
	quantity := f.integer("Quantity")
	available := f.integer("Available")
	salePrice := f.optAmount("SalePrice")
	fulfillment := f.optInt("FulfillmentByNonSellable")
	if f.err != nil {
		return nil, f.err
	}

	info, err := productInfo(e, f)
	if err != nil {
		return nil, err
	}
	product, err := catalog.NewProduct(info, price, quantity, available)
	if err != nil {
		return nil, err
	}
	if err := product.SetSale(salePrice, f.date("SaleStartDate"), f.date("SaleEndDate")); err != nil {
		return nil, err
	}
	product.SetFulfillmentByNonSellable(fulfillment)
	if err := applyOptionalFields(e, f, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ParseBusinessUnit builds a business unit from a <BusinessUnit> element
func ParseBusinessUnit(e *etree.Element) (*catalog.BusinessUnit, error) {
	if err := ValidateStructure(e, "BusinessUnit", "BusinessUnit", "OperatorCode", "Price", "Stock", "Status"); err != nil {
		return nil, err
	}
	f := newFields(e, "BusinessUnit")
	price := f.amount("Price")
	stock := f.integer("Stock")
	specialPrice := f.optAmount("SpecialPrice")
	if f.err != nil {
		return nil, f.err
	}
	status, err := catalog.ParseProductStatus(f.text("Status"))
	if err != nil {
		return nil, err
	}

	unit, err := catalog.NewBusinessUnit(f.text("BusinessUnit"), f.text("OperatorCode"), price, stock, status)
	if err != nil {
		return nil, err
	}
	if err := unit.SetSpecialPrice(specialPrice, f.date("SpecialFromDate"), f.date("SpecialToDate")); err != nil {
		return nil, err
	}
	if f.text("IsPublished") != "" {
		unit.SetPublished(f.flag("IsPublished"))
	}
	return unit, nil
}

// ParseBusinessUnits builds the business units under a <BusinessUnits>
// element, skipping malformed ones
func (fa *Factory) ParseBusinessUnits(e *etree.Element) (*catalog.BusinessUnits, []ItemFailure) {
	items, failures := partition("BusinessUnit", children(e, "BusinessUnit"), ParseBusinessUnit)
	fa.report(failures)
	units := catalog.NewBusinessUnits()
	for _, u := range items {
		units.Add(u)
	}
	return units, failures
}

// ParseGlobalProduct builds a multi-market product from a <Product> element.
// A product without any <BusinessUnit> is a structural error; one whose
// business units are all malformed fails with shared.ErrMissingBusinessUnit.
func (fa *Factory) ParseGlobalProduct(e *etree.Element) (*catalog.GlobalProduct, error) {
	if err := ValidateStructure(e, "GlobalProduct", globalProductFields...); err != nil {
		return nil, err
	}
	unitsElement := e.SelectElement("BusinessUnits")
	if len(children(unitsElement, "BusinessUnit")) == 0 {
		return nil, shared.NewStructureError("GlobalProduct", "BusinessUnit")
	}

	f := newFields(e, "GlobalProduct")
	info, err := productInfo(e, f)
	if err != nil {
		return nil, err
	}
	units, _ := fa.ParseBusinessUnits(unitsElement)
	product, err := catalog.NewGlobalProduct(info, units)
	if err != nil {
		return nil, err
	}
	if err := applyOptionalFields(e, f, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ParseProducts builds the products under a <Products> element. Malformed
// products are skipped and returned as failures.
func (fa *Factory) ParseProducts(e *etree.Element) (*catalog.Products, []ItemFailure) {
	items, failures := partition("Product", children(e, "Product"), ParseProduct)
	fa.report(failures)
	products := catalog.NewProducts()
	for _, p := range items {
		products.Add(p)
	}
	return products, failures
}

// ParseGlobalProducts is ParseProducts for multi-market listings
func (fa *Factory) ParseGlobalProducts(e *etree.Element) (*catalog.Products, []ItemFailure) {
	items, failures := partition("GlobalProduct", children(e, "Product"), fa.ParseGlobalProduct)
	fa.report(failures)
	products := catalog.NewProducts()
	for _, p := range items {
		products.Add(p)
	}
	return products, failures
}
