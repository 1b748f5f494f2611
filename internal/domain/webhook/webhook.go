package webhook

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/erp/sellercenter/internal/domain/shared"
)

var validate = validator.New()

// Webhook is a callback registration
type Webhook struct {
	ID          string
	CallbackURL string
	Source      string
	Events      []string
}

// New creates a webhook registration for the given event aliases
func New(callbackURL string, events ...string) (*Webhook, error) {
	if err := validate.Var(callbackURL, "required,url"); err != nil {
		return nil, shared.NewDomainError("INVALID_URL", fmt.Sprintf("Invalid callback URL %q", callbackURL))
	}
	if len(events) == 0 {
		return nil, shared.NewDomainError("EMPTY_VALUE", "A webhook needs at least one event")
	}
	return &Webhook{CallbackURL: callbackURL, Events: events}, nil
}

// Subscribes returns true if the webhook listens to alias
func (w *Webhook) Subscribes(alias string) bool {
	for _, e := range w.Events {
		if e == alias {
			return true
		}
	}
	return false
}

// Webhooks is a collection keyed by webhook id
type Webhooks struct {
	items shared.Collection[string, *Webhook]
}

// NewWebhooks creates an empty collection
func NewWebhooks() *Webhooks {
	return &Webhooks{}
}

// Add stores a webhook; a webhook with the same id is replaced
func (c *Webhooks) Add(w *Webhook) {
	c.items.Put(w.ID, w)
}

// Get returns the webhook with the given id
func (c *Webhooks) Get(id string) (*Webhook, bool) {
	return c.items.Get(id)
}

// FindByCallbackURL returns the webhooks registered for url
func (c *Webhooks) FindByCallbackURL(url string) []*Webhook {
	url = strings.TrimRight(url, "/")
	return c.items.Filter(func(w *Webhook) bool {
		return strings.TrimRight(w.CallbackURL, "/") == url
	})
}

// All returns the webhooks in insertion order
func (c *Webhooks) All() []*Webhook {
	return c.items.Values()
}

// Len returns the number of webhooks
func (c *Webhooks) Len() int {
	return c.items.Len()
}
