package factory

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/erp/sellercenter/internal/domain/order"
	"github.com/erp/sellercenter/internal/domain/shared/valueobject"
)

var addressFields = []string{
	"FirstName", "LastName", "Phone", "Phone2",
	"Address1", "Address2", "Address3", "Address4", "Address5",
	"City", "Ward", "Region", "PostCode", "Country",
}

var orderFields = []string{
	"OrderId", "CustomerFirstName", "CustomerLastName", "OrderNumber", "PaymentMethod",
	"Price", "CreatedAt", "UpdatedAt", "AddressBilling", "AddressShipping",
	"ItemsCount", "Statuses",
}

var orderItemFields = []string{
	"OrderItemId", "ShopId", "OrderId", "Name", "Sku", "ShopSku",
	"ItemPrice", "PaidPrice", "Currency", "Status", "CreatedAt", "UpdatedAt",
}

// ParseAddress builds an address from an <AddressBilling> or <AddressShipping> element
func ParseAddress(e *etree.Element) (valueobject.Address, error) {
	if err := ValidateStructure(e, "Address", addressFields...); err != nil {
		return valueobject.Address{}, err
	}
	f := newFields(e, "Address")
	return valueobject.NewAddress(
		f.text("FirstName"), f.text("LastName"), f.text("City"), f.text("Country"),
		valueobject.WithPhones(f.text("Phone"), f.text("Phone2")),
		valueobject.WithLines(f.text("Address1"), f.text("Address2"), f.text("Address3"), f.text("Address4"), f.text("Address5")),
		valueobject.WithWard(f.text("Ward")),
		valueobject.WithRegion(f.text("Region")),
		valueobject.WithPostCode(f.text("PostCode")),
		valueobject.WithCustomerEmail(f.text("CustomerEmail")),
	), nil
}

// ParseOrder builds an order header with its statuses from an <Order> element
func ParseOrder(e *etree.Element) (*order.Order, error) {
	if err := ValidateStructure(e, "Order", orderFields...); err != nil {
		return nil, err
	}
	f := newFields(e, "Order")
	id := f.integer("OrderId")
	price := f.amount("Price")
	itemsCount := f.integer("ItemsCount")
	if f.err != nil {
		return nil, f.err
	}

	billing, err := ParseAddress(e.SelectElement("AddressBilling"))
	if err != nil {
		return nil, err
	}
	shipping, err := ParseAddress(e.SelectElement("AddressShipping"))
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(id, f.text("OrderNumber"))
	if err != nil {
		return nil, err
	}
	o.CustomerFirstName = f.text("CustomerFirstName")
	o.CustomerLastName = f.text("CustomerLastName")
	o.PaymentMethod = f.text("PaymentMethod")
	o.Remarks = f.text("Remarks")
	o.DeliveryInfo = f.text("DeliveryInfo")
	o.Price = price
	o.GiftOption = f.flag("GiftOption")
	o.GiftMessage = f.text("GiftMessage")
	o.VoucherCode = f.text("VoucherCode")
	o.CreatedAt = f.date("CreatedAt")
	o.UpdatedAt = f.date("UpdatedAt")
	o.AddressBilling = billing
	o.AddressShipping = shipping
	o.NationalRegistrationNumber = f.text("NationalRegistrationNumber")
	o.ItemsCount = itemsCount
	o.PromisedShippingTime = f.date("PromisedShippingTime")
	o.ExtraAttributes = f.text("ExtraAttributes")
	o.Statuses = f.list("Statuses")
	return o, nil
}

// ParseOrders builds every <Order> under an <Orders> element
func ParseOrders(e *etree.Element) (*order.Orders, error) {
	return buildOrders(children(e, "Order"), ParseOrder)
}

// ParseOrderWithItems builds an order from a GetMultipleOrderItems <Order> element
func ParseOrderWithItems(e *etree.Element) (*order.Order, error) {
	if err := ValidateStructure(e, "Order", "OrderId", "OrderNumber", "OrderItems"); err != nil {
		return nil, err
	}
	f := newFields(e, "Order")
	id := f.integer("OrderId")
	if f.err != nil {
		return nil, f.err
	}
	items, err := ParseOrderItems(e.SelectElement("OrderItems"))
	if err != nil {
		return nil, err
	}
	return order.NewOrderWithItems(id, f.text("OrderNumber"), items)
}

// ParseOrdersWithItems builds every GetMultipleOrderItems <Order> under e
func ParseOrdersWithItems(e *etree.Element) (*order.Orders, error) {
	return buildOrders(children(e, "Order"), ParseOrderWithItems)
}

func buildOrders(elements []*etree.Element, build func(*etree.Element) (*order.Order, error)) (*order.Orders, error) {
	items, err := collect(elements, build)
	if err != nil {
		return nil, err
	}
	orders := order.NewOrders()
	for _, o := range items {
		orders.Add(o)
	}
	return orders, nil
}

// ParseOrderItem builds an item from an <OrderItem> element
func ParseOrderItem(e *etree.Element) (*order.OrderItem, error) {
	if err := ValidateStructure(e, "OrderItem", orderItemFields...); err != nil {
		return nil, err
	}
	f := newFields(e, "OrderItem")
	id := f.integer("OrderItemId")
	orderID := f.integer("OrderId")
	itemPrice := f.amount("ItemPrice")
	paidPrice := f.amount("PaidPrice")
	walletCredits := f.amount("WalletCredits")
	taxAmount := f.amount("TaxAmount")
	shippingAmount := f.amount("ShippingAmount")
	shippingServiceCost := f.amount("ShippingServiceCost")
	voucherAmount := f.amount("VoucherAmount")
	if f.err != nil {
		return nil, f.err
	}

	item, err := order.NewOrderItem(id, orderID, f.text("Sku"))
	if err != nil {
		return nil, err
	}
	item.ShopID = f.text("ShopId")
	item.Name = f.text("Name")
	item.Variation = f.text("Variation")
	item.ShopSku = f.text("ShopSku")
	item.ShippingType = f.text("ShippingType")
	item.ItemPrice = itemPrice
	item.PaidPrice = paidPrice
	item.Currency = f.text("Currency")
	item.WalletCredits = walletCredits
	item.TaxAmount = taxAmount
	item.ShippingAmount = shippingAmount
	item.ShippingServiceCost = shippingServiceCost
	item.VoucherAmount = voucherAmount
	item.VoucherCode = f.text("VoucherCode")
	item.Status = strings.ToLower(f.text("Status"))
	item.IsProcessable = f.flag("IsProcessable")
	item.ShipmentProvider = f.text("ShipmentProvider")
	item.IsDigital = f.flag("IsDigital")
	item.DigitalDeliveryInfo = f.text("DigitalDeliveryInfo")
	item.TrackingCode = f.text("TrackingCode")
	item.TrackingCodePre = f.text("TrackingCodePre")
	item.Reason = f.text("Reason")
	item.ReasonDetail = f.text("ReasonDetail")
	item.PurchaseOrderID = f.text("PurchaseOrderId")
	item.PurchaseOrderNumber = f.text("PurchaseOrderNumber")
	item.PackageID = f.text("PackageId")
	item.PromisedShippingTime = f.date("PromisedShippingTime")
	item.ShippingProviderType = f.text("ShippingProviderType")
	item.CreatedAt = f.date("CreatedAt")
	item.UpdatedAt = f.date("UpdatedAt")
	item.ReturnStatus = f.text("ReturnStatus")
	item.Imei = f.text("Imei")
	return item, nil
}

// ParseOrderItems builds every <OrderItem> under an <OrderItems> element
func ParseOrderItems(e *etree.Element) (*order.OrderItems, error) {
	items, err := collect(children(e, "OrderItem"), ParseOrderItem)
	if err != nil {
		return nil, err
	}
	out := order.NewOrderItems()
	for _, item := range items {
		out.Add(item)
	}
	return out, nil
}

// ParseShipmentProvider builds a carrier from a <ShipmentProvider> element
func ParseShipmentProvider(e *etree.Element) (*order.ShipmentProvider, error) {
	if err := ValidateStructure(e, "ShipmentProvider",
		"Name", "Default", "ApiIntegration", "Cod", "TrackingCodeValidationRegex",
		"TrackingCodeExample", "TrackingUrl", "TrackingCodeSetOnStep", "EnabledDeliveryOptions"); err != nil {
		return nil, err
	}
	f := newFields(e, "ShipmentProvider")
	provider, err := order.NewShipmentProvider(f.text("Name"))
	if err != nil {
		return nil, err
	}
	provider.Default = f.flag("Default")
	provider.APIIntegration = f.flag("ApiIntegration")
	provider.Cod = f.flag("Cod")
	provider.TrackingCodeValidationRegex = f.text("TrackingCodeValidationRegex")
	provider.TrackingCodeExample = f.text("TrackingCodeExample")
	provider.TrackingURL = f.text("TrackingUrl")
	provider.TrackingCodeSetOnStep = f.text("TrackingCodeSetOnStep")
	provider.EnabledDeliveryOptions = f.list("EnabledDeliveryOptions")
	if len(provider.EnabledDeliveryOptions) == 0 {
		provider.EnabledDeliveryOptions = splitList(f.text("EnabledDeliveryOptions"))
	}
	return provider, nil
}

// ParseShipmentProviders builds every <ShipmentProvider> under e
func ParseShipmentProviders(e *etree.Element) (*order.ShipmentProviders, error) {
	items, err := collect(children(e, "ShipmentProvider"), ParseShipmentProvider)
	if err != nil {
		return nil, err
	}
	providers := order.NewShipmentProviders()
	for _, p := range items {
		providers.Add(p)
	}
	return providers, nil
}

// ParseFailureReasons builds every <Reason> under a <Reasons> element
func ParseFailureReasons(e *etree.Element) (order.FailureReasons, error) {
	return collect(children(e, "Reason"), func(r *etree.Element) (order.FailureReason, error) {
		if err := ValidateStructure(r, "FailureReason", "Type", "Name"); err != nil {
			return order.FailureReason{}, err
		}
		f := newFields(r, "FailureReason")
		return order.FailureReason{Type: f.text("Type"), Name: f.text("Name")}, nil
	})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
