package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollection_PutAndGet(t *testing.T) {
	var c Collection[string, int]

	c.Put("b", 2)
	c.Put("a", 1)
	c.Put("b", 20)

	v, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"b", "a"}, c.Keys())
	assert.Equal(t, []int{20, 1}, c.Values())

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCollection_FindAndFilter(t *testing.T) {
	var c Collection[int, string]
	c.Put(1, "red")
	c.Put(2, "green")
	c.Put(3, "reed")

	found, ok := c.Find(func(s string) bool { return s[0] == 'g' })
	assert.True(t, ok)
	assert.Equal(t, "green", found)

	_, ok = c.Find(func(s string) bool { return s == "blue" })
	assert.False(t, ok)

	assert.Equal(t, []string{"red", "reed"}, c.Filter(func(s string) bool { return s[0] == 'r' }))
	assert.Nil(t, c.Filter(func(s string) bool { return false }))
}

func TestStructureError(t *testing.T) {
	err := NewStructureError("FeedCount", "Finished")

	assert.ErrorIs(t, err, ErrMissingStructuralField)
	assert.Contains(t, err.Error(), "FeedCount")
	assert.Contains(t, err.Error(), "Finished")
}

func TestDomainError_IsMatchesByCode(t *testing.T) {
	err := NewDomainError("INVALID_PRICE", "price -1 is negative")

	assert.ErrorIs(t, err, ErrInvalidPrice)
	assert.NotErrorIs(t, err, ErrInvalidStock)
}
