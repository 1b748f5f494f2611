package factory

import (
	"github.com/beevik/etree"

	"github.com/erp/sellercenter/internal/domain/seller"
)

// ParseSeller builds the account from a <Seller> element
func ParseSeller(e *etree.Element) (*seller.Seller, error) {
	if err := ValidateStructure(e, "Seller", "SellerId", "Name", "Email"); err != nil {
		return nil, err
	}
	f := newFields(e, "Seller")
	s, err := seller.New(f.text("SellerId"), f.text("Name"), f.text("Email"))
	if err != nil {
		return nil, err
	}
	s.ShortCode = f.text("ShortCode")
	s.CompanyName = f.text("CompanyName")
	s.Status = f.text("Status")
	return s, nil
}

// ParseStatistics builds the dashboard counters of a GetStatistics body
func ParseStatistics(body *etree.Element) (*seller.Statistics, error) {
	if err := ValidateStructure(body, "Statistics", "Products", "Orders"); err != nil {
		return nil, err
	}

	productsElement := body.SelectElement("Products")
	if err := ValidateStructure(productsElement, "ProductStatistics",
		"Total", "Active", "All", "Deleted", "ImageMissing", "Inactive",
		"Live", "Pending", "PoorQuality", "SoldOut"); err != nil {
		return nil, err
	}
	p := newFields(productsElement, "ProductStatistics")
	stats := &seller.Statistics{
		Products: seller.ProductStatistics{
			Total:        p.integer("Total"),
			Active:       p.integer("Active"),
			All:          p.integer("All"),
			Deleted:      p.integer("Deleted"),
			ImageMissing: p.integer("ImageMissing"),
			Inactive:     p.integer("Inactive"),
			Live:         p.integer("Live"),
			Pending:      p.integer("Pending"),
			PoorQuality:  p.integer("PoorQuality"),
			SoldOut:      p.integer("SoldOut"),
		},
	}
	if p.err != nil {
		return nil, p.err
	}

	ordersElement := body.SelectElement("Orders")
	if err := ValidateStructure(ordersElement, "OrderStatistics",
		"Canceled", "Delivered", "Failed", "Pending", "Processing",
		"ReadyToShip", "Returned", "Shipped"); err != nil {
		return nil, err
	}
	o := newFields(ordersElement, "OrderStatistics")
	stats.Orders = seller.OrderStatistics{
		Canceled:    o.integer("Canceled"),
		Delivered:   o.integer("Delivered"),
		Failed:      o.integer("Failed"),
		Pending:     o.integer("Pending"),
		Processing:  o.integer("Processing"),
		ReadyToShip: o.integer("ReadyToShip"),
		Returned:    o.integer("Returned"),
		Shipped:     o.integer("Shipped"),
	}
	if o.err != nil {
		return nil, o.err
	}

	if pendingElement := body.SelectElement("OrdersItemsPending"); pendingElement != nil {
		pf := newFields(pendingElement, "OrdersItemsPending")
		stats.PendingItems = &seller.PendingItems{
			Today:     pf.integer("Today"),
			Yesterday: pf.integer("Yesterday"),
			Older:     pf.integer("Older"),
		}
		if pf.err != nil {
			return nil, pf.err
		}
	}
	return stats, nil
}
