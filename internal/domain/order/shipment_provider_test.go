package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/sellercenter/internal/domain/shared"
)

func TestShipmentProvider_ValidateTrackingCode(t *testing.T) {
	provider := &ShipmentProvider{
		Name:                        "Chilexpress",
		TrackingCodeValidationRegex: `/^\d{10}$/`,
		TrackingCodeExample:         "1234567890",
	}

	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{"matching code", "1234567890", nil},
		{"too short", "12345", shared.ErrInvalidInput},
		{"empty", "", shared.ErrEmptyValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := provider.ValidateTrackingCode(tt.code)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("no pattern accepts anything", func(t *testing.T) {
		p := &ShipmentProvider{Name: "Own"}
		assert.NoError(t, p.ValidateTrackingCode("abc"))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		p := &ShipmentProvider{Name: "Broken", TrackingCodeValidationRegex: "(["}
		err := p.ValidateTrackingCode("abc")
		require.Error(t, err)
		assert.NotErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestShipmentProvider_TrackingLink(t *testing.T) {
	p := &ShipmentProvider{TrackingURL: "https://track.example.com/?id={{tracking_number}}"}
	assert.Equal(t, "https://track.example.com/?id=ABC", p.TrackingLink("ABC"))

	p = &ShipmentProvider{TrackingURL: "https://track.example.com/"}
	assert.Equal(t, "https://track.example.com/ABC", p.TrackingLink("ABC"))

	assert.Empty(t, (&ShipmentProvider{}).TrackingLink("ABC"))
}

func TestShipmentProviders_Default(t *testing.T) {
	providers := NewShipmentProviders()
	providers.Add(&ShipmentProvider{Name: "A"})
	providers.Add(&ShipmentProvider{Name: "B", Default: true})

	def, ok := providers.Default()
	require.True(t, ok)
	assert.Equal(t, "B", def.Name)
	assert.Equal(t, 2, providers.Len())
}

func TestFailureReasons_ByType(t *testing.T) {
	reasons := FailureReasons{
		{Type: "canceled", Name: "Out of stock"},
		{Type: "canceled", Name: "Wrong price"},
		{Type: "returned", Name: "Damaged"},
	}
	assert.Len(t, reasons.ByType("Canceled"), 2)
	assert.Empty(t, reasons.ByType("failed"))
}
