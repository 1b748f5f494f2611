package valueobject

import (
	"strings"
)

// Address is a value object representing a billing or shipping address.
// It is immutable; each order owns its own copies.
type Address struct {
	firstName     string
	lastName      string
	phone         string
	phone2        string
	lines         [5]string
	customerEmail string
	city          string
	ward          string
	region        string
	postCode      string
	country       string
}

// AddressOption is a functional option for configuring Address
type AddressOption func(*Address)

// WithPhones sets the primary and secondary phone numbers
func WithPhones(phone, phone2 string) AddressOption {
	return func(a *Address) {
		a.phone = strings.TrimSpace(phone)
		a.phone2 = strings.TrimSpace(phone2)
	}
}

// WithLines sets up to five address lines; extra lines are ignored
func WithLines(lines ...string) AddressOption {
	return func(a *Address) {
		for i := 0; i < len(lines) && i < len(a.lines); i++ {
			a.lines[i] = lines[i]
		}
	}
}

// WithCustomerEmail sets the customer email
func WithCustomerEmail(email string) AddressOption {
	return func(a *Address) {
		a.customerEmail = strings.TrimSpace(email)
	}
}

// WithWard sets the ward
func WithWard(ward string) AddressOption {
	return func(a *Address) {
		a.ward = ward
	}
}

// WithRegion sets the region
func WithRegion(region string) AddressOption {
	return func(a *Address) {
		a.region = region
	}
}

// WithPostCode sets the postal code
func WithPostCode(postCode string) AddressOption {
	return func(a *Address) {
		a.postCode = strings.TrimSpace(postCode)
	}
}

// NewAddress creates a new Address
func NewAddress(firstName, lastName, city, country string, opts ...AddressOption) Address {
	addr := Address{
		firstName: firstName,
		lastName:  lastName,
		city:      city,
		country:   country,
	}
	for _, opt := range opts {
		opt(&addr)
	}
	return addr
}

// FirstName returns the first name
func (a Address) FirstName() string { return a.firstName }

// LastName returns the last name
func (a Address) LastName() string { return a.lastName }

// Phone returns the primary phone
func (a Address) Phone() string { return a.phone }

// Phone2 returns the secondary phone
func (a Address) Phone2() string { return a.phone2 }

// Line returns address line n (1-based); out of range yields ""
func (a Address) Line(n int) string {
	if n < 1 || n > len(a.lines) {
		return ""
	}
	return a.lines[n-1]
}

// CustomerEmail returns the customer email
func (a Address) CustomerEmail() string { return a.customerEmail }

// City returns the city
func (a Address) City() string { return a.city }

// Ward returns the ward
func (a Address) Ward() string { return a.ward }

// Region returns the region
func (a Address) Region() string { return a.region }

// PostCode returns the postal code
func (a Address) PostCode() string { return a.postCode }

// Country returns the country
func (a Address) Country() string { return a.country }

// FullName returns first and last name joined by a space
func (a Address) FullName() string {
	return strings.TrimSpace(a.firstName + " " + a.lastName)
}

// String returns the non-empty address lines, city, region and country joined by ", "
func (a Address) String() string {
	parts := make([]string, 0, len(a.lines)+4)
	for _, line := range a.lines {
		if line != "" {
			parts = append(parts, line)
		}
	}
	for _, p := range []string{a.city, a.region, a.postCode, a.country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Equals returns true if both addresses hold the same values
func (a Address) Equals(other Address) bool {
	return a == other
}
