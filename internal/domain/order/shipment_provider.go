package order

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/erp/sellercenter/internal/domain/shared"
)

// ShipmentProvider is a carrier available to the seller
type ShipmentProvider struct {
	Name                        string
	Default                     bool
	APIIntegration              bool
	Cod                         bool
	TrackingCodeValidationRegex string
	TrackingCodeExample         string
	TrackingURL                 string
	TrackingCodeSetOnStep       string
	EnabledDeliveryOptions      []string
}

// NewShipmentProvider creates a shipment provider
func NewShipmentProvider(name string) (*ShipmentProvider, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("EMPTY_VALUE", "Shipment provider name cannot be empty")
	}
	return &ShipmentProvider{Name: name}, nil
}

// ValidateTrackingCode checks code against the provider's validation pattern.
// Providers without a pattern accept any non-empty code.
func (p *ShipmentProvider) ValidateTrackingCode(code string) error {
	if code == "" {
		return shared.NewDomainError("EMPTY_VALUE", "Tracking code cannot be empty")
	}
	pattern := strings.TrimSpace(p.TrackingCodeValidationRegex)
	if pattern == "" {
		return nil
	}
	// patterns are reported with PCRE delimiters, e.g. /^\d{10}$/
	if len(pattern) >= 2 && pattern[0] == '/' && strings.LastIndexByte(pattern, '/') > 0 {
		pattern = pattern[1:strings.LastIndexByte(pattern, '/')]
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("shipment provider %s: invalid tracking code pattern: %w", p.Name, err)
	}
	if !re.MatchString(code) {
		return shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("Tracking code %q does not match %s format (example %s)", code, p.Name, p.TrackingCodeExample))
	}
	return nil
}

// TrackingLink returns the tracking URL for code, or "" when the provider has none
func (p *ShipmentProvider) TrackingLink(code string) string {
	if p.TrackingURL == "" {
		return ""
	}
	if strings.Contains(p.TrackingURL, "{{tracking_number}}") {
		return strings.ReplaceAll(p.TrackingURL, "{{tracking_number}}", code)
	}
	return p.TrackingURL + code
}

// ShipmentProviders is a collection keyed by provider name
type ShipmentProviders struct {
	items shared.Collection[string, *ShipmentProvider]
}

// NewShipmentProviders creates an empty collection
func NewShipmentProviders() *ShipmentProviders {
	return &ShipmentProviders{}
}

// Add stores a provider; a provider with the same name is replaced
func (c *ShipmentProviders) Add(p *ShipmentProvider) {
	c.items.Put(p.Name, p)
}

// Get returns the provider with the given name
func (c *ShipmentProviders) Get(name string) (*ShipmentProvider, bool) {
	return c.items.Get(name)
}

// Default returns the provider flagged as default
func (c *ShipmentProviders) Default() (*ShipmentProvider, bool) {
	return c.items.Find(func(p *ShipmentProvider) bool { return p.Default })
}

// All returns the providers in insertion order
func (c *ShipmentProviders) All() []*ShipmentProvider {
	return c.items.Values()
}

// Len returns the number of providers
func (c *ShipmentProviders) Len() int {
	return c.items.Len()
}

// FailureReason is a reason a seller can give when canceling an item
type FailureReason struct {
	Type string
	Name string
}

// FailureReasons is the list returned by GetFailureReasons
type FailureReasons []FailureReason

// ByType returns the reasons of the given type
func (r FailureReasons) ByType(reasonType string) FailureReasons {
	var out FailureReasons
	for _, reason := range r {
		if strings.EqualFold(reason.Type, reasonType) {
			out = append(out, reason)
		}
	}
	return out
}
