package webhook

import (
	"errors"

	"github.com/erp/sellercenter/internal/domain/shared"
)

// Common event aliases
const (
	EventFeedCompleted = "onFeedCompleted"
	EventOrderCreated  = "onOrderCreated"
)

// Event is a notification type a webhook can subscribe to
type Event struct {
	Alias string
	Name  string
}

// Events is a collection keyed by alias
type Events struct {
	items shared.Collection[string, Event]
}

// NewEvents creates an empty collection
func NewEvents() *Events {
	return &Events{}
}

// Add stores an event; an event with the same alias is replaced
func (c *Events) Add(e Event) {
	c.items.Put(e.Alias, e)
}

// Get returns the event with the given alias
func (c *Events) Get(alias string) (Event, bool) {
	return c.items.Get(alias)
}

// Aliases returns the event aliases in insertion order
func (c *Events) Aliases() []string {
	return c.items.Keys()
}

// All returns the events in insertion order
func (c *Events) All() []Event {
	return c.items.Values()
}

// Len returns the number of events
func (c *Events) Len() int {
	return c.items.Len()
}

// Entity groups the events of one resource (Product, Order, Feed, ...)
type Entity struct {
	Name   string
	Events *Events
}

// Entities is the list returned by GetWebhookEntities
type Entities []Entity

// Event looks up an alias across every entity
func (es Entities) Event(alias string) (Event, bool) {
	for _, e := range es {
		if ev, ok := e.Events.Get(alias); ok {
			return ev, true
		}
	}
	return Event{}, false
}

// ErrRejected marks a notification that can never be processed, so
// redelivering it is pointless. Handlers wrap it; receivers check it with errors.Is.
var ErrRejected = errors.New("webhook: notification rejected")

// Notification is a webhook call received from SellerCenter
type Notification struct {
	Event   string         `json:"event" binding:"required"`
	Payload map[string]any `json:"payload"`
}
