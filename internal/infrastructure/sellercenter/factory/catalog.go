package factory

import (
	"github.com/beevik/etree"

	"github.com/erp/sellercenter/internal/domain/catalog"
)

// ParseBrand builds a Brand from a <Brand> element
func ParseBrand(e *etree.Element) (*catalog.Brand, error) {
	if err := ValidateStructure(e, "Brand", "BrandId", "Name", "GlobalIdentifier"); err != nil {
		return nil, err
	}
	f := newFields(e, "Brand")
	id := f.integer("BrandId")
	if f.err != nil {
		return nil, f.err
	}
	return catalog.NewBrandWithID(id, f.text("Name"), f.text("GlobalIdentifier"))
}

// ParseBrands builds the brands under a <Brands> element
func ParseBrands(e *etree.Element) (*catalog.Brands, error) {
	items, err := collect(children(e, "Brand"), ParseBrand)
	if err != nil {
		return nil, err
	}
	brands := catalog.NewBrands()
	for _, b := range items {
		brands.Add(b)
	}
	return brands, nil
}

// ParseCategory builds a category and, recursively, its children
func ParseCategory(e *etree.Element) (*catalog.Category, error) {
	if err := ValidateStructure(e, "Category", "CategoryId", "Name", "GlobalIdentifier", "Children"); err != nil {
		return nil, err
	}
	f := newFields(e, "Category")
	id := f.integer("CategoryId")
	attributeSet := f.optInt("AttributeSetId")
	if f.err != nil {
		return nil, f.err
	}

	category, err := catalog.NewCategory(id, f.text("Name"))
	if err != nil {
		return nil, err
	}
	category.SetGlobalIdentifier(f.text("GlobalIdentifier"))
	if attributeSet != nil {
		category.SetAttributeSetID(*attributeSet)
	}

	for _, childElement := range children(e.SelectElement("Children"), "Category") {
		child, err := ParseCategory(childElement)
		if err != nil {
			return nil, err
		}
		if err := category.AddChild(child); err != nil {
			return nil, err
		}
	}
	return category, nil
}

// ParseCategories builds the root categories under a <Categories> element
func ParseCategories(e *etree.Element) (*catalog.Categories, error) {
	items, err := collect(children(e, "Category"), ParseCategory)
	if err != nil {
		return nil, err
	}
	categories := catalog.NewCategories()
	for _, c := range items {
		categories.Add(c)
	}
	return categories, nil
}

// ParseCategoryAttribute builds an attribute definition from an <Attribute> element
func ParseCategoryAttribute(e *etree.Element) (*catalog.CategoryAttribute, error) {
	if err := ValidateStructure(e, "CategoryAttribute", "Name", "Label", "IsMandatory", "AttributeType"); err != nil {
		return nil, err
	}
	f := newFields(e, "CategoryAttribute")
	details := catalog.CategoryAttributeDetails{
		FeedName:          f.text("FeedName"),
		GlobalIdentifier:  f.text("GlobalIdentifier"),
		IsGlobalAttribute: f.flag("IsGlobalAttribute"),
		Description:       f.text("Description"),
		ProductType:       f.text("ProductType"),
		InputType:         f.text("InputType"),
		ExampleValue:      f.text("ExampleValue"),
		MaxLength:         f.integer("MaxLength"),
	}
	if f.err != nil {
		return nil, f.err
	}
	attr, err := catalog.NewCategoryAttribute(f.text("Name"), f.text("Label"), f.flag("IsMandatory"), f.text("AttributeType"), details)
	if err != nil {
		return nil, err
	}

	options, err := collect(children(e.SelectElement("Options"), "Option"), parseAttributeOption)
	if err != nil {
		return nil, err
	}
	for _, o := range options {
		attr.AddOption(o)
	}
	return attr, nil
}

func parseAttributeOption(e *etree.Element) (catalog.AttributeOption, error) {
	if err := ValidateStructure(e, "AttributeOption", "Name", "IsDefault"); err != nil {
		return catalog.AttributeOption{}, err
	}
	f := newFields(e, "AttributeOption")
	return catalog.AttributeOption{
		GlobalIdentifier: f.text("GlobalIdentifier"),
		Name:             f.text("Name"),
		IsDefault:        f.flag("IsDefault"),
	}, nil
}

// ParseCategoryAttributes builds every <Attribute> under e
func ParseCategoryAttributes(e *etree.Element) ([]*catalog.CategoryAttribute, error) {
	return collect(children(e, "Attribute"), ParseCategoryAttribute)
}

// ParseQualityControl builds a record from a <State> element
func ParseQualityControl(e *etree.Element) (*catalog.QualityControl, error) {
	if err := ValidateStructure(e, "QualityControl", "SellerSKU", "Status"); err != nil {
		return nil, err
	}
	f := newFields(e, "QualityControl")
	return catalog.NewQualityControl(f.text("SellerSKU"), f.text("Status"), f.text("Reason"), f.flag("DataChanged"))
}

// ParseQualityControls builds the records under a <Status> element
func ParseQualityControls(e *etree.Element) (*catalog.QualityControls, error) {
	items, err := collect(children(e, "State"), ParseQualityControl)
	if err != nil {
		return nil, err
	}
	qcs := catalog.NewQualityControls()
	for _, qc := range items {
		qcs.Add(qc)
	}
	return qcs, nil
}
