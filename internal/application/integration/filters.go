package integration

import (
	"encoding/json"
	"time"

	"github.com/erp/sellercenter/internal/domain/feed"
	"github.com/erp/sellercenter/internal/infrastructure/sellercenter"
)

// ProductFilter narrows a GetProducts listing. Zero fields are not sent.
type ProductFilter struct {
	// Filter is one of all, live, inactive, deleted, image-missing, pending,
	// rejected, sold-out
	Filter        string
	Search        string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
	Limit         int
	Offset        int
	SellerSkus    []string
}

// Parameters renders the filter as request parameters
func (f ProductFilter) Parameters() map[string]any {
	params := make(map[string]any)
	putString(params, "Filter", f.Filter)
	putString(params, "Search", f.Search)
	putTime(params, "CreatedAfter", f.CreatedAfter)
	putTime(params, "CreatedBefore", f.CreatedBefore)
	putTime(params, "UpdatedAfter", f.UpdatedAfter)
	putTime(params, "UpdatedBefore", f.UpdatedBefore)
	putInt(params, "Limit", f.Limit)
	putInt(params, "Offset", f.Offset)
	putList(params, "SkuSellerList", f.SellerSkus)
	return params
}

// OrderFilter narrows a GetOrders listing. Zero fields are not sent.
type OrderFilter struct {
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
	Status        string
	Limit         int
	Offset        int
	// SortBy is created_at or updated_at
	SortBy string
	// SortDirection is ASC or DESC
	SortDirection string
}

// Parameters renders the filter as request parameters
func (f OrderFilter) Parameters() map[string]any {
	params := make(map[string]any)
	putTime(params, "CreatedAfter", f.CreatedAfter)
	putTime(params, "CreatedBefore", f.CreatedBefore)
	putTime(params, "UpdatedAfter", f.UpdatedAfter)
	putTime(params, "UpdatedBefore", f.UpdatedBefore)
	putString(params, "Status", f.Status)
	putInt(params, "Limit", f.Limit)
	putInt(params, "Offset", f.Offset)
	putString(params, "SortBy", f.SortBy)
	putString(params, "SortDirection", f.SortDirection)
	return params
}

// FeedPageRequest selects one page of FeedOffsetList
type FeedPageRequest struct {
	Offset   int
	PageSize int
	Status   feed.Status
}

// Parameters renders the request as request parameters
func (r FeedPageRequest) Parameters() map[string]any {
	params := map[string]any{"Offset": r.Offset}
	putInt(params, "PageSize", r.PageSize)
	putString(params, "Status", string(r.Status))
	return params
}

func putString(params map[string]any, key, value string) {
	if value != "" {
		params[key] = value
	}
}

func putInt(params map[string]any, key string, value int) {
	if value > 0 {
		params[key] = value
	}
}

func putTime(params map[string]any, key string, value *time.Time) {
	if value != nil {
		params[key] = value.UTC().Format(sellercenter.TimestampLayout)
	}
}

// listElement is the element type of list parameters
type listElement interface {
	~string | ~int
}

// putList encodes values as the JSON array SellerCenter expects for list parameters
func putList[T listElement](params map[string]any, key string, values []T) {
	if len(values) == 0 {
		return
	}
	// marshalling string and int slices cannot fail
	raw, _ := json.Marshal(values)
	params[key] = string(raw)
}
