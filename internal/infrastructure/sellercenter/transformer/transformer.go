// Package transformer renders domain entities as SellerCenter request documents.
package transformer

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/erp/sellercenter/internal/domain/catalog"
	"github.com/erp/sellercenter/internal/domain/order"
	"github.com/erp/sellercenter/internal/domain/shared"
	"github.com/erp/sellercenter/internal/domain/shared/valueobject"
	"github.com/erp/sellercenter/internal/domain/webhook"
)

// Overrides lists attributes that are written even when empty. An empty
// element tells SellerCenter to clear the field; an omitted one leaves it
// unchanged.
type Overrides map[string]bool

// NewOverrides builds an override set from attribute names
func NewOverrides(names ...string) Overrides {
	o := make(Overrides, len(names))
	for _, n := range names {
		o[n] = true
	}
	return o
}

func newRequest() (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc, doc.CreateElement("Request")
}

func render(doc *etree.Document) (string, error) {
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("transformer: render request: %w", err)
	}
	return out, nil
}

// writeAttributes appends one child per attribute in insertion order. Text
// is escaped by the encoder.
func writeAttributes(parent *etree.Element, attrs *valueobject.Attributes, overrides Overrides) {
	for name, value := range attrs.All() {
		empty := value == nil || value.IsEmpty() || value.WireString() == ""
		if empty && !overrides[name] {
			continue
		}
		child := parent.CreateElement(name)
		if !empty {
			child.SetText(value.WireString())
		}
	}
}

// ProductRequest renders the ProductCreate / ProductUpdate document and
// their global variants
func ProductRequest(products []catalog.Sellable, overrides Overrides) (string, error) {
	doc, root := newRequest()
	for _, p := range products {
		e := root.CreateElement("Product")
		writeAttributes(e, p.All(), overrides)
		if data := p.ProductData(); data != nil {
			writeAttributes(e.CreateElement("ProductData"), data.All(), overrides)
		}
		if p.Kind() != catalog.KindGlobalProduct {
			continue
		}
		global, ok := p.(*catalog.GlobalProduct)
		if !ok {
			return "", fmt.Errorf("transformer: %s tagged %s is %T", p.SellerSku(), p.Kind(), p)
		}
		units := e.CreateElement("BusinessUnits")
		for _, u := range global.BusinessUnits().All() {
			writeAttributes(units.CreateElement("BusinessUnit"), u.All(), overrides)
		}
	}
	return render(doc)
}

// ProductRemoveRequest renders the ProductRemove document
func ProductRemoveRequest(sellerSkus ...string) (string, error) {
	doc, root := newRequest()
	for _, sku := range sellerSkus {
		if strings.TrimSpace(sku) == "" {
			return "", shared.NewDomainError("EMPTY_VALUE", "Seller SKU cannot be empty")
		}
		root.CreateElement("Product").CreateElement("SellerSku").SetText(sku)
	}
	return render(doc)
}

// ImageRequest renders the Image document with the images of each product
func ImageRequest(products ...catalog.Sellable) (string, error) {
	doc, root := newRequest()
	for _, p := range products {
		e := root.CreateElement("ProductImage")
		e.CreateElement("SellerSku").SetText(p.SellerSku())
		images := e.CreateElement("Images")
		for _, url := range p.Images().URLs() {
			images.CreateElement("Image").SetText(url)
		}
	}
	return render(doc)
}

// OrderItemImeiRequest renders the SetOrderItemsImei document
func OrderItemImeiRequest(items ...*order.OrderItem) (string, error) {
	doc, root := newRequest()
	for _, item := range items {
		if item.Imei == "" {
			return "", shared.NewDomainError("EMPTY_VALUE",
				fmt.Sprintf("Order item %d has no IMEI", item.OrderItemID))
		}
		e := root.CreateElement("OrderItem")
		e.CreateElement("OrderItemId").SetText(valueobject.Integer(item.OrderItemID).WireString())
		e.CreateElement("Imei").SetText(item.Imei)
	}
	return render(doc)
}

// WebhookRequest renders the CreateWebhook document
func WebhookRequest(w *webhook.Webhook) (string, error) {
	if w == nil {
		return "", shared.NewDomainError("EMPTY_VALUE", "Webhook cannot be nil")
	}
	if strings.TrimSpace(w.CallbackURL) == "" {
		return "", shared.NewDomainError("EMPTY_VALUE", "Webhook callback URL cannot be empty")
	}
	if len(w.Events) == 0 {
		return "", shared.NewDomainError("EMPTY_VALUE", "A webhook needs at least one event")
	}
	doc, root := newRequest()
	e := root.CreateElement("Webhook")
	e.CreateElement("CallbackUrl").SetText(w.CallbackURL)
	events := e.CreateElement("Events")
	for _, alias := range w.Events {
		events.CreateElement("Event").SetText(alias)
	}
	return render(doc)
}

// DeleteWebhookRequest renders the DeleteWebhook document
func DeleteWebhookRequest(webhookID string) (string, error) {
	if strings.TrimSpace(webhookID) == "" {
		return "", shared.NewDomainError("EMPTY_VALUE", "Webhook id cannot be empty")
	}
	doc, root := newRequest()
	root.CreateElement("Webhook").CreateElement("WebhookId").SetText(webhookID)
	return render(doc)
}
