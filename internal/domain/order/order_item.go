package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp/sellercenter/internal/domain/shared"
)

// Order item statuses
const (
	ItemStatusPending     = "pending"
	ItemStatusReadyToShip = "ready_to_ship"
	ItemStatusShipped     = "shipped"
	ItemStatusDelivered   = "delivered"
	ItemStatusCanceled    = "canceled"
	ItemStatusReturned    = "returned"
	ItemStatusFailed      = "failed"
)

// OrderItem is a single line of an order
type OrderItem struct {
	OrderItemID          int
	ShopID               string
	OrderID              int
	Name                 string
	Sku                  string
	Variation            string
	ShopSku              string
	ShippingType         string
	ItemPrice            decimal.Decimal
	PaidPrice            decimal.Decimal
	Currency             string
	WalletCredits        decimal.Decimal
	TaxAmount            decimal.Decimal
	ShippingAmount       decimal.Decimal
	ShippingServiceCost  decimal.Decimal
	VoucherAmount        decimal.Decimal
	VoucherCode          string
	Status               string
	IsProcessable        bool
	ShipmentProvider     string
	IsDigital            bool
	DigitalDeliveryInfo  string
	TrackingCode         string
	TrackingCodePre      string
	Reason               string
	ReasonDetail         string
	PurchaseOrderID      string
	PurchaseOrderNumber  string
	PackageID            string
	PromisedShippingTime *time.Time
	ShippingProviderType string
	CreatedAt            *time.Time
	UpdatedAt            *time.Time
	ReturnStatus         string
	Imei                 string
}

// NewOrderItem creates an order item
func NewOrderItem(orderItemID, orderID int, sku string) (*OrderItem, error) {
	if orderItemID <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order item id must be positive")
	}
	if strings.TrimSpace(sku) == "" {
		return nil, shared.NewDomainError("EMPTY_VALUE", "Order item SKU cannot be empty")
	}
	return &OrderItem{OrderItemID: orderItemID, OrderID: orderID, Sku: sku}, nil
}

// SetImei sets the device IMEI sent by SetOrderItemsImei
func (i *OrderItem) SetImei(imei string) error {
	imei = strings.TrimSpace(imei)
	if imei == "" {
		return shared.NewDomainError("EMPTY_VALUE", "IMEI cannot be empty")
	}
	i.Imei = imei
	return nil
}

// IsCanceled returns true if the item was canceled
func (i *OrderItem) IsCanceled() bool {
	return i.Status == ItemStatusCanceled
}

// OrderItems is a collection of order items keyed by order item id
type OrderItems struct {
	items shared.Collection[int, *OrderItem]
}

// NewOrderItems creates an empty collection
func NewOrderItems() *OrderItems {
	return &OrderItems{}
}

// Add stores an item; an item with the same id is replaced
func (c *OrderItems) Add(item *OrderItem) {
	c.items.Put(item.OrderItemID, item)
}

// Get returns the item with the given id
func (c *OrderItems) Get(orderItemID int) (*OrderItem, bool) {
	return c.items.Get(orderItemID)
}

// FindByStatus returns the items in the given status
func (c *OrderItems) FindByStatus(status string) []*OrderItem {
	return c.items.Filter(func(i *OrderItem) bool { return i.Status == status })
}

// WithImei returns the items carrying an IMEI
func (c *OrderItems) WithImei() []*OrderItem {
	return c.items.Filter(func(i *OrderItem) bool { return i.Imei != "" })
}

// TotalPaid returns the sum of paid prices
func (c *OrderItems) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items.Values() {
		total = total.Add(item.PaidPrice)
	}
	return total
}

// All returns the items in insertion order
func (c *OrderItems) All() []*OrderItem {
	return c.items.Values()
}

// Len returns the number of items
func (c *OrderItems) Len() int {
	return c.items.Len()
}
