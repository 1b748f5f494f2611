package seller

import (
	"strings"

	"github.com/erp/sellercenter/internal/domain/shared"
)

// Seller is the account behind the API credentials
type Seller struct {
	SellerID    string
	Name        string
	Email       string
	ShortCode   string
	CompanyName string
	Status      string
}

// New creates a seller
func New(sellerID, name, email string) (*Seller, error) {
	if strings.TrimSpace(sellerID) == "" {
		return nil, shared.NewDomainError("EMPTY_VALUE", "Seller id cannot be empty")
	}
	return &Seller{SellerID: sellerID, Name: name, Email: email}, nil
}

// IsActive returns true if the seller account is active
func (s *Seller) IsActive() bool {
	return strings.EqualFold(s.Status, "active")
}

// ProductStatistics counts products per state
type ProductStatistics struct {
	Total        int
	Active       int
	All          int
	Deleted      int
	ImageMissing int
	Inactive     int
	Live         int
	Pending      int
	PoorQuality  int
	SoldOut      int
}

// OrderStatistics counts orders per state
type OrderStatistics struct {
	Canceled    int
	Delivered   int
	Failed      int
	Pending     int
	Processing  int
	ReadyToShip int
	Returned    int
	Shipped     int
}

// Open returns the orders still requiring seller action
func (o OrderStatistics) Open() int {
	return o.Pending + o.Processing + o.ReadyToShip
}

// PendingItems counts order items waiting for shipment by age
type PendingItems struct {
	Today     int
	Yesterday int
	Older     int
}

// Total returns the number of pending items
func (p PendingItems) Total() int {
	return p.Today + p.Yesterday + p.Older
}

// Statistics is the account dashboard returned by GetStatistics
type Statistics struct {
	Products     ProductStatistics
	Orders       OrderStatistics
	PendingItems *PendingItems
}
