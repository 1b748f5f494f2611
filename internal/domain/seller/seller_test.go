package seller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/sellercenter/internal/domain/shared"
)

func TestNew(t *testing.T) {
	s, err := New("SC123", "Acme", "ops@acme.example")
	require.NoError(t, err)
	assert.False(t, s.IsActive())
	s.Status = "Active"
	assert.True(t, s.IsActive())

	_, err = New("", "Acme", "ops@acme.example")
	assert.ErrorIs(t, err, shared.ErrEmptyValue)
}

func TestStatistics(t *testing.T) {
	stats := Statistics{
		Orders:       OrderStatistics{Pending: 2, Processing: 1, ReadyToShip: 3, Shipped: 10},
		PendingItems: &PendingItems{Today: 1, Yesterday: 2, Older: 4},
	}
	assert.Equal(t, 6, stats.Orders.Open())
	assert.Equal(t, 7, stats.PendingItems.Total())
}
