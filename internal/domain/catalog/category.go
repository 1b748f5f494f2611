package catalog

import (
	"strconv"
	"strings"

	"github.com/erp/sellercenter/internal/domain/shared"
)

// Category is a node of the SellerCenter category tree. A category owns its
// children; there are no parent references.
//
// Categories built from the tree carry an id and may have children.
// Categories built from a name (leaf paths reported on products) have neither.
type Category struct {
	id               int
	hasID            bool
	name             string
	globalIdentifier string
	attributeSetID   int
	hasAttributeSet  bool
	children         []*Category
}

// NewCategory creates a category node as reported by GetCategoryTree
func NewCategory(id int, name string) (*Category, error) {
	if id < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category id cannot be negative")
	}
	return &Category{id: id, hasID: true, name: name}, nil
}

// NewCategoryFromID creates a category reference known only by id
func NewCategoryFromID(id int) (*Category, error) {
	return NewCategory(id, "")
}

// NewCategoryByName creates a category reference known only by name
func NewCategoryByName(name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("EMPTY_VALUE", "Category name cannot be empty")
	}
	return &Category{name: name}, nil
}

// ParseCategoryReference builds a reference from a product field:
// numeric values become id references, anything else a name reference.
func ParseCategoryReference(value string) (*Category, error) {
	value = strings.TrimSpace(value)
	if id, err := strconv.Atoi(value); err == nil {
		return NewCategoryFromID(id)
	}
	return NewCategoryByName(value)
}

// ID returns the category id and whether it is known
func (c *Category) ID() (int, bool) { return c.id, c.hasID }

// Name returns the category name
func (c *Category) Name() string { return c.name }

// GlobalIdentifier returns the cross-venture identifier
func (c *Category) GlobalIdentifier() string { return c.globalIdentifier }

// SetGlobalIdentifier sets the cross-venture identifier
func (c *Category) SetGlobalIdentifier(identifier string) {
	c.globalIdentifier = identifier
}

// AttributeSetID returns the attribute set id and whether it is known
func (c *Category) AttributeSetID() (int, bool) { return c.attributeSetID, c.hasAttributeSet }

// SetAttributeSetID sets the attribute set id
func (c *Category) SetAttributeSetID(id int) {
	c.attributeSetID = id
	c.hasAttributeSet = true
}

// AddChild appends a child; name-only categories cannot have children
func (c *Category) AddChild(child *Category) error {
	if !c.hasID {
		return shared.NewDomainError("INVALID_INPUT", "A category referenced by name cannot have children")
	}
	c.children = append(c.children, child)
	return nil
}

// Children returns the direct children in document order
func (c *Category) Children() []*Category {
	return c.children
}

// IsLeaf returns true if the category has no children
func (c *Category) IsLeaf() bool {
	return len(c.children) == 0
}

// Walk visits the category and its descendants depth-first, parents first
func (c *Category) Walk(visit func(node *Category, depth int)) {
	c.walk(visit, 0)
}

func (c *Category) walk(visit func(*Category, int), depth int) {
	visit(c, depth)
	for _, child := range c.children {
		child.walk(visit, depth+1)
	}
}

// WireString implements valueobject.WireValue: the id, or the name for name references
func (c *Category) WireString() string {
	if c == nil {
		return ""
	}
	if c.hasID {
		return strconv.Itoa(c.id)
	}
	return c.name
}

// IsEmpty implements valueobject.WireValue
func (c *Category) IsEmpty() bool {
	return c == nil || (!c.hasID && c.name == "")
}

func (c *Category) key() string {
	if c.hasID {
		return strconv.Itoa(c.id)
	}
	return "name:" + c.name
}

// Categories is a collection of categories keyed by id (or name for name references)
type Categories struct {
	items shared.Collection[string, *Category]
}

// NewCategories creates an empty collection
func NewCategories() *Categories {
	return &Categories{}
}

// ParseCategoryReferences builds a collection from a comma-separated product field
func ParseCategoryReferences(value string) (*Categories, error) {
	categories := NewCategories()
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		category, err := ParseCategoryReference(part)
		if err != nil {
			return nil, err
		}
		categories.Add(category)
	}
	return categories, nil
}

// Add stores a category; a category with the same key is replaced
func (c *Categories) Add(category *Category) {
	c.items.Put(category.key(), category)
}

// Get returns the category with the given id
func (c *Categories) Get(id int) (*Category, bool) {
	return c.items.Get(strconv.Itoa(id))
}

// FindByName returns the first category with the given name
func (c *Categories) FindByName(name string) (*Category, bool) {
	return c.items.Find(func(cat *Category) bool {
		return strings.EqualFold(cat.name, name)
	})
}

// All returns the categories in insertion order
func (c *Categories) All() []*Category {
	return c.items.Values()
}

// Len returns the number of categories
func (c *Categories) Len() int {
	return c.items.Len()
}

// WireString implements valueobject.WireValue: comma-joined ids
func (c *Categories) WireString() string {
	if c == nil {
		return ""
	}
	parts := make([]string, 0, c.items.Len())
	for _, cat := range c.items.Values() {
		parts = append(parts, cat.WireString())
	}
	return strings.Join(parts, ",")
}

// IsEmpty implements valueobject.WireValue
func (c *Categories) IsEmpty() bool {
	return c == nil || c.items.Len() == 0
}
