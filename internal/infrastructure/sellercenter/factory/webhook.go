package factory

import (
	"github.com/beevik/etree"

	"github.com/erp/sellercenter/internal/domain/webhook"
)

// ParseWebhook builds a registration from a <Webhook> element
func ParseWebhook(e *etree.Element) (*webhook.Webhook, error) {
	if err := ValidateStructure(e, "Webhook", "WebhookId", "CallbackUrl", "WebhookSource", "Events"); err != nil {
		return nil, err
	}
	f := newFields(e, "Webhook")
	return &webhook.Webhook{
		ID:          f.text("WebhookId"),
		CallbackURL: f.text("CallbackUrl"),
		Source:      f.text("WebhookSource"),
		Events:      f.list("Events"),
	}, nil
}

// ParseWebhooks builds every <Webhook> under a <Webhooks> element
func ParseWebhooks(e *etree.Element) (*webhook.Webhooks, error) {
	items, err := collect(children(e, "Webhook"), ParseWebhook)
	if err != nil {
		return nil, err
	}
	webhooks := webhook.NewWebhooks()
	for _, w := range items {
		webhooks.Add(w)
	}
	return webhooks, nil
}

// ParseEvent builds an event from an <Event> element
func ParseEvent(e *etree.Element) (webhook.Event, error) {
	if err := ValidateStructure(e, "Event", "Alias", "Name"); err != nil {
		return webhook.Event{}, err
	}
	f := newFields(e, "Event")
	return webhook.Event{Alias: f.text("Alias"), Name: f.text("Name")}, nil
}

// ParseEntity builds an entity and its events from an <Entity> element
func ParseEntity(e *etree.Element) (webhook.Entity, error) {
	if err := ValidateStructure(e, "Entity", "Name", "Events"); err != nil {
		return webhook.Entity{}, err
	}
	items, err := collect(children(e.SelectElement("Events"), "Event"), ParseEvent)
	if err != nil {
		return webhook.Entity{}, err
	}
	events := webhook.NewEvents()
	for _, ev := range items {
		events.Add(ev)
	}
	return webhook.Entity{Name: newFields(e, "Entity").text("Name"), Events: events}, nil
}

// ParseEntities builds every <Entity> under an <Entities> element
func ParseEntities(e *etree.Element) (webhook.Entities, error) {
	return collect(children(e, "Entity"), ParseEntity)
}
