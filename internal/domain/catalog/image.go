package catalog

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/erp/sellercenter/internal/domain/shared"
)

// MaxImages is the maximum number of images a product can carry
const MaxImages = 8

var urlValidator = validator.New()

// Image is a product image referenced by URL
type Image struct {
	url string
}

// NewImage creates an image, validating that url is well formed
func NewImage(url string) (*Image, error) {
	if err := urlValidator.Var(url, "required,url"); err != nil {
		return nil, shared.NewDomainError("INVALID_URL", fmt.Sprintf("Invalid image URL %q", url))
	}
	return &Image{url: url}, nil
}

// URL returns the image URL
func (i *Image) URL() string { return i.url }

// WireString implements valueobject.WireValue
func (i *Image) WireString() string {
	if i == nil {
		return ""
	}
	return i.url
}

// IsEmpty implements valueobject.WireValue
func (i *Image) IsEmpty() bool {
	return i == nil || i.url == ""
}

// Images is an ordered collection of at most MaxImages images
type Images struct {
	items []*Image
}

// NewImages creates an empty collection
func NewImages() *Images {
	return &Images{}
}

// Add appends an image; the ninth image is rejected
func (c *Images) Add(image *Image) error {
	if len(c.items) >= MaxImages {
		return shared.NewDomainError("IMAGES_CAPACITY_EXCEEDED",
			fmt.Sprintf("A product cannot have more than %d images", MaxImages))
	}
	c.items = append(c.items, image)
	return nil
}

// AddMany appends images, failing on the first one over capacity
func (c *Images) AddMany(images []*Image) error {
	for _, image := range images {
		if err := c.Add(image); err != nil {
			return err
		}
	}
	return nil
}

// AddManyFromURLs appends images built from urls. URLs beyond the remaining
// capacity are dropped silently; a malformed URL fails the call.
func (c *Images) AddManyFromURLs(urls []string) error {
	remaining := MaxImages - len(c.items)
	if remaining <= 0 {
		return nil
	}
	if len(urls) > remaining {
		urls = urls[:remaining]
	}
	images := make([]*Image, 0, len(urls))
	for _, u := range urls {
		image, err := NewImage(u)
		if err != nil {
			return err
		}
		images = append(images, image)
	}
	c.items = append(c.items, images...)
	return nil
}

// All returns a copy of the images in insertion order
func (c *Images) All() []*Image {
	return slices.Clone(c.items)
}

// URLs returns the image URLs in insertion order
func (c *Images) URLs() []string {
	urls := make([]string, 0, len(c.items))
	for _, image := range c.items {
		urls = append(urls, image.url)
	}
	return urls
}

// Len returns the number of images
func (c *Images) Len() int {
	return len(c.items)
}
