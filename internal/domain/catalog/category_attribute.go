package catalog

import (
	"strings"

	"github.com/erp/sellercenter/internal/domain/shared"
)

// AttributeOption is one allowed value of an option-typed category attribute
type AttributeOption struct {
	GlobalIdentifier string
	Name             string
	IsDefault        bool
}

// CategoryAttribute describes a product attribute available in a category
type CategoryAttribute struct {
	name              string
	label             string
	feedName          string
	globalIdentifier  string
	isMandatory       bool
	isGlobalAttribute bool
	description       string
	productType       string
	inputType         string
	attributeType     string
	exampleValue      string
	maxLength         int
	options           []AttributeOption
}

// CategoryAttributeDetails holds the optional descriptive fields of an attribute
type CategoryAttributeDetails struct {
	FeedName          string
	GlobalIdentifier  string
	IsGlobalAttribute bool
	Description       string
	ProductType       string
	InputType         string
	ExampleValue      string
	MaxLength         int
}

// NewCategoryAttribute creates a category attribute
func NewCategoryAttribute(name, label string, isMandatory bool, attributeType string, details CategoryAttributeDetails) (*CategoryAttribute, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("EMPTY_VALUE", "Attribute name cannot be empty")
	}
	return &CategoryAttribute{
		name:              name,
		label:             label,
		isMandatory:       isMandatory,
		attributeType:     attributeType,
		feedName:          details.FeedName,
		globalIdentifier:  details.GlobalIdentifier,
		isGlobalAttribute: details.IsGlobalAttribute,
		description:       details.Description,
		productType:       details.ProductType,
		inputType:         details.InputType,
		exampleValue:      details.ExampleValue,
		maxLength:         details.MaxLength,
	}, nil
}

func (a *CategoryAttribute) Name() string             { return a.name }
func (a *CategoryAttribute) Label() string            { return a.label }
func (a *CategoryAttribute) FeedName() string         { return a.feedName }
func (a *CategoryAttribute) GlobalIdentifier() string { return a.globalIdentifier }
func (a *CategoryAttribute) IsMandatory() bool        { return a.isMandatory }
func (a *CategoryAttribute) IsGlobalAttribute() bool  { return a.isGlobalAttribute }
func (a *CategoryAttribute) Description() string      { return a.description }
func (a *CategoryAttribute) ProductType() string      { return a.productType }
func (a *CategoryAttribute) InputType() string        { return a.inputType }
func (a *CategoryAttribute) AttributeType() string    { return a.attributeType }
func (a *CategoryAttribute) ExampleValue() string     { return a.exampleValue }
func (a *CategoryAttribute) MaxLength() int           { return a.maxLength }

// AddOption appends an allowed value
func (a *CategoryAttribute) AddOption(option AttributeOption) {
	a.options = append(a.options, option)
}

// Options returns the allowed values in document order
func (a *CategoryAttribute) Options() []AttributeOption {
	return a.options
}

// DefaultOption returns the option flagged as default, if any
func (a *CategoryAttribute) DefaultOption() (AttributeOption, bool) {
	for _, o := range a.options {
		if o.IsDefault {
			return o, true
		}
	}
	return AttributeOption{}, false
}
