package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/sellercenter/internal/domain/shared"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates node with id", func(t *testing.T) {
		category, err := NewCategory(1000, "Electronics")
		require.NoError(t, err)

		id, ok := category.ID()
		assert.True(t, ok)
		assert.Equal(t, 1000, id)
		assert.Equal(t, "Electronics", category.Name())
		assert.True(t, category.IsLeaf())
		assert.Equal(t, "1000", category.WireString())
	})

	t.Run("fails with negative id", func(t *testing.T) {
		_, err := NewCategory(-1, "Electronics")
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("name reference has no id and serializes as name", func(t *testing.T) {
		category, err := NewCategoryByName("Shoes")
		require.NoError(t, err)

		_, ok := category.ID()
		assert.False(t, ok)
		assert.Equal(t, "Shoes", category.WireString())
		assert.Error(t, category.AddChild(&Category{}))
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCategoryByName("  ")
		assert.ErrorIs(t, err, shared.ErrEmptyValue)
	})
}

func TestParseCategoryReference(t *testing.T) {
	tests := []struct {
		input  string
		wantID bool
		wire   string
	}{
		{"42", true, "42"},
		{" 7 ", true, "7"},
		{"Women Shoes", false, "Women Shoes"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			category, err := ParseCategoryReference(tt.input)
			require.NoError(t, err)
			_, hasID := category.ID()
			assert.Equal(t, tt.wantID, hasID)
			assert.Equal(t, tt.wire, category.WireString())
		})
	}
}

func TestCategory_Walk(t *testing.T) {
	root, _ := NewCategory(1, "Root")
	child, _ := NewCategory(2, "Child")
	grandchild, _ := NewCategory(3, "Grandchild")
	sibling, _ := NewCategory(4, "Sibling")
	require.NoError(t, child.AddChild(grandchild))
	require.NoError(t, root.AddChild(child))
	require.NoError(t, root.AddChild(sibling))

	var names []string
	var depths []int
	root.Walk(func(node *Category, depth int) {
		names = append(names, node.Name())
		depths = append(depths, depth)
	})

	assert.Equal(t, []string{"Root", "Child", "Grandchild", "Sibling"}, names)
	assert.Equal(t, []int{0, 1, 2, 1}, depths)
	assert.False(t, root.IsLeaf())
}

func TestCategories(t *testing.T) {
	t.Run("parses comma separated references", func(t *testing.T) {
		categories, err := ParseCategoryReferences("10,20,,30")
		require.NoError(t, err)
		assert.Equal(t, 3, categories.Len())
		assert.Equal(t, "10,20,30", categories.WireString())

		c, ok := categories.Get(20)
		require.True(t, ok)
		assert.Equal(t, "20", c.WireString())
	})

	t.Run("last write wins on duplicate id", func(t *testing.T) {
		categories := NewCategories()
		first, _ := NewCategory(5, "First")
		second, _ := NewCategory(5, "Second")
		categories.Add(first)
		categories.Add(second)

		assert.Equal(t, 1, categories.Len())
		c, _ := categories.Get(5)
		assert.Equal(t, "Second", c.Name())
	})

	t.Run("find by name ignores case", func(t *testing.T) {
		categories := NewCategories()
		c, _ := NewCategory(5, "Bags")
		categories.Add(c)

		found, ok := categories.FindByName("bags")
		assert.True(t, ok)
		assert.Same(t, c, found)
	})

	t.Run("nil and empty collections are empty", func(t *testing.T) {
		var nilCategories *Categories
		assert.True(t, nilCategories.IsEmpty())
		assert.True(t, NewCategories().IsEmpty())
	})
}

func TestBrands(t *testing.T) {
	brands := NewBrands()
	nike, err := NewBrandWithID(1, "Nike", "nike")
	require.NoError(t, err)
	adidas, err := NewBrandWithID(2, "Adidas", "adidas")
	require.NoError(t, err)
	brands.Add(nike)
	brands.Add(adidas)

	assert.Equal(t, 2, brands.Len())
	found, ok := brands.FindByName("ADIDAS")
	require.True(t, ok)
	assert.Equal(t, 2, found.ID())
	assert.Equal(t, "Adidas", found.WireString())

	_, err = NewBrand("")
	assert.ErrorIs(t, err, shared.ErrEmptyValue)
}

func TestCategoryAttribute_DefaultOption(t *testing.T) {
	attr, err := NewCategoryAttribute("color_family", "Color", true, "option", CategoryAttributeDetails{MaxLength: 30})
	require.NoError(t, err)
	attr.AddOption(AttributeOption{Name: "Red"})
	attr.AddOption(AttributeOption{Name: "Blue", IsDefault: true})

	option, ok := attr.DefaultOption()
	require.True(t, ok)
	assert.Equal(t, "Blue", option.Name)
	assert.Len(t, attr.Options(), 2)
	assert.Equal(t, 30, attr.MaxLength())
}
