package catalog

import (
	"strings"

	"github.com/erp/sellercenter/internal/domain/shared"
)

// Quality control states reported by GetQcStatus
const (
	QCStatusPending  = "pending"
	QCStatusApproved = "approved"
	QCStatusRejected = "rejected"
)

// QualityControl is the quality check state of a product
type QualityControl struct {
	SellerSku   string
	Status      string
	Reason      string
	DataChanged bool
}

// NewQualityControl creates a quality control record
func NewQualityControl(sellerSku, status, reason string, dataChanged bool) (*QualityControl, error) {
	if strings.TrimSpace(sellerSku) == "" {
		return nil, shared.NewDomainError("EMPTY_VALUE", "Seller SKU cannot be empty")
	}
	return &QualityControl{
		SellerSku:   sellerSku,
		Status:      status,
		Reason:      reason,
		DataChanged: dataChanged,
	}, nil
}

// IsApproved returns true if the product passed quality control
func (q *QualityControl) IsApproved() bool {
	return strings.EqualFold(q.Status, QCStatusApproved)
}

// QualityControls is a collection keyed by seller SKU
type QualityControls struct {
	items shared.Collection[string, *QualityControl]
}

// NewQualityControls creates an empty collection
func NewQualityControls() *QualityControls {
	return &QualityControls{}
}

// Add stores a record; a record with the same SKU is replaced
func (c *QualityControls) Add(qc *QualityControl) {
	c.items.Put(qc.SellerSku, qc)
}

// Get returns the record for a seller SKU
func (c *QualityControls) Get(sellerSku string) (*QualityControl, bool) {
	return c.items.Get(sellerSku)
}

// FindByStatus returns the records in the given status
func (c *QualityControls) FindByStatus(status string) []*QualityControl {
	return c.items.Filter(func(qc *QualityControl) bool {
		return strings.EqualFold(qc.Status, status)
	})
}

// All returns the records in insertion order
func (c *QualityControls) All() []*QualityControl {
	return c.items.Values()
}

// Len returns the number of records
func (c *QualityControls) Len() int {
	return c.items.Len()
}
