package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp/sellercenter/internal/domain/shared"
	"github.com/erp/sellercenter/internal/domain/shared/valueobject"
)

// Order is a customer order. Depending on the call that produced it, an
// order carries either its raw status strings (GetOrder, GetOrders) or its
// items (GetMultipleOrderItems).
type Order struct {
	OrderID                    int
	OrderNumber                string
	CustomerFirstName          string
	CustomerLastName           string
	PaymentMethod              string
	Remarks                    string
	DeliveryInfo               string
	Price                      decimal.Decimal
	GiftOption                 bool
	GiftMessage                string
	VoucherCode                string
	CreatedAt                  *time.Time
	UpdatedAt                  *time.Time
	AddressBilling             valueobject.Address
	AddressShipping            valueobject.Address
	NationalRegistrationNumber string
	ItemsCount                 int
	PromisedShippingTime       *time.Time
	ExtraAttributes            string
	Statuses                   []string
	Items                      *OrderItems
}

// NewOrder creates an order header
func NewOrder(orderID int, orderNumber string) (*Order, error) {
	if orderID <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order id must be positive")
	}
	if strings.TrimSpace(orderNumber) == "" {
		return nil, shared.NewDomainError("EMPTY_VALUE", "Order number cannot be empty")
	}
	return &Order{OrderID: orderID, OrderNumber: orderNumber}, nil
}

// NewOrderWithItems creates an order as returned by GetMultipleOrderItems
func NewOrderWithItems(orderID int, orderNumber string, items *OrderItems) (*Order, error) {
	o, err := NewOrder(orderID, orderNumber)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = NewOrderItems()
	}
	o.Items = items
	o.ItemsCount = items.Len()
	return o, nil
}

// HasItems reports whether the order was built with its items
func (o *Order) HasItems() bool {
	return o.Items != nil
}

// CustomerName returns the customer's full name
func (o *Order) CustomerName() string {
	return strings.TrimSpace(o.CustomerFirstName + " " + o.CustomerLastName)
}

// HasStatus returns true if any of the order statuses matches status
func (o *Order) HasStatus(status string) bool {
	for _, s := range o.Statuses {
		if strings.EqualFold(s, status) {
			return true
		}
	}
	return false
}

// Orders is a collection of orders keyed by order id
type Orders struct {
	items shared.Collection[int, *Order]
}

// NewOrders creates an empty collection
func NewOrders() *Orders {
	return &Orders{}
}

// Add stores an order; an order with the same id is replaced
func (c *Orders) Add(o *Order) {
	c.items.Put(o.OrderID, o)
}

// Get returns the order with the given id
func (c *Orders) Get(orderID int) (*Order, bool) {
	return c.items.Get(orderID)
}

// FindByNumber returns the order with the given order number
func (c *Orders) FindByNumber(number string) (*Order, bool) {
	return c.items.Find(func(o *Order) bool { return o.OrderNumber == number })
}

// All returns the orders in insertion order
func (c *Orders) All() []*Order {
	return c.items.Values()
}

// Len returns the number of orders
func (c *Orders) Len() int {
	return c.items.Len()
}
