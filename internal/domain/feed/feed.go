// Package feed models the asynchronous processing feeds created by every
// SellerCenter write action.
package feed

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/erp/sellercenter/internal/domain/shared"
)

// Status of a feed as reported by FeedStatus. Values outside this set are
// kept verbatim.
type Status string

const (
	StatusQueued     Status = "Queued"
	StatusProcessing Status = "Processing"
	StatusFinished   Status = "Finished"
	StatusCanceled   Status = "Canceled"
)

// IsKnown returns true if the status is one of the documented values
func (s Status) IsKnown() bool {
	switch s {
	case StatusQueued, StatusProcessing, StatusFinished, StatusCanceled:
		return true
	}
	return false
}

// IsTerminal returns true once the feed will not change anymore
func (s Status) IsTerminal() bool {
	return s == StatusFinished || s == StatusCanceled
}

// Error is a record rejected while processing a feed
type Error struct {
	Code      int
	Message   string
	SellerSku string
}

// Warning is a record accepted with remarks
type Warning struct {
	Message   string
	SellerSku string
}

// FailureReports points to the downloadable error report of a feed
type FailureReports struct {
	MimeType string
	File     string
}

// Decode returns the report content; File is base64 encoded
func (r *FailureReports) Decode() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(r.File))
	if err != nil {
		return nil, fmt.Errorf("feed: decode failure report: %w", err)
	}
	return data, nil
}

// Feed is the processing state of one write request
type Feed struct {
	ID               string
	Status           Status
	Action           string
	CreationDate     *time.Time
	UpdatedDate      *time.Time
	Source           string
	TotalRecords     *int
	ProcessedRecords *int
	FailedRecords    *int
	Errors           []Error
	Warnings         []Warning
	FailureReports   *FailureReports
}

// New creates a feed
func New(id string, status Status, action string) (*Feed, error) {
	if strings.TrimSpace(id) == "" {
		return nil, shared.NewDomainError("EMPTY_VALUE", "Feed id cannot be empty")
	}
	return &Feed{ID: id, Status: status, Action: action}, nil
}

// HasErrors returns true if any record failed
func (f *Feed) HasErrors() bool {
	return len(f.Errors) > 0 || (f.FailedRecords != nil && *f.FailedRecords > 0)
}

// IsDone returns true once the feed reached a terminal status
func (f *Feed) IsDone() bool {
	return f.Status.IsTerminal()
}

// ErrorsBySku groups the feed errors by seller SKU
func (f *Feed) ErrorsBySku() map[string][]Error {
	out := make(map[string][]Error)
	for _, e := range f.Errors {
		out[e.SellerSku] = append(out[e.SellerSku], e)
	}
	return out
}

// Count is the per-status feed counter returned by FeedOffsetList
type Count struct {
	Total      int
	Queued     int
	Processing int
	Finished   int
	Canceled   int
}

// Pending returns the number of feeds not yet terminal
func (c Count) Pending() int {
	return c.Queued + c.Processing
}

// Feeds is a collection of feeds keyed by id
type Feeds struct {
	items shared.Collection[string, *Feed]
}

// NewFeeds creates an empty collection
func NewFeeds() *Feeds {
	return &Feeds{}
}

// Add stores a feed; a feed with the same id is replaced
func (c *Feeds) Add(f *Feed) {
	c.items.Put(f.ID, f)
}

// Get returns the feed with the given id
func (c *Feeds) Get(id string) (*Feed, bool) {
	return c.items.Get(id)
}

// FindByStatus returns the feeds in the given status
func (c *Feeds) FindByStatus(status Status) []*Feed {
	return c.items.Filter(func(f *Feed) bool { return f.Status == status })
}

// All returns the feeds in insertion order
func (c *Feeds) All() []*Feed {
	return c.items.Values()
}

// Len returns the number of feeds
func (c *Feeds) Len() int {
	return c.items.Len()
}

// Page is one page of FeedOffsetList
type Page struct {
	Count Count
	Feeds *Feeds
}
