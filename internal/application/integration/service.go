// Package integration exposes one method per SellerCenter action, wiring
// the signed client to the entity factories and request transformers.
package integration

import (
	"context"
	"errors"
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/erp/sellercenter/internal/domain/catalog"
	"github.com/erp/sellercenter/internal/domain/feed"
	"github.com/erp/sellercenter/internal/domain/order"
	"github.com/erp/sellercenter/internal/domain/seller"
	"github.com/erp/sellercenter/internal/domain/webhook"
	"github.com/erp/sellercenter/internal/infrastructure/sellercenter"
	"github.com/erp/sellercenter/internal/infrastructure/sellercenter/factory"
	"github.com/erp/sellercenter/internal/infrastructure/sellercenter/response"
	"github.com/erp/sellercenter/internal/infrastructure/sellercenter/transformer"
)

// Action names
const (
	ActionGetBrands             = "GetBrands"
	ActionGetCategoryTree       = "GetCategoryTree"
	ActionGetCategoryAttributes = "GetCategoryAttributes"
	ActionGetProducts           = "GetProducts"
	ActionProductCreate         = "ProductCreate"
	ActionProductUpdate         = "ProductUpdate"
	ActionProductRemove         = "ProductRemove"
	ActionImage                 = "Image"
	ActionFeedStatus            = "FeedStatus"
	ActionFeedList              = "FeedList"
	ActionFeedOffsetList        = "FeedOffsetList"
	ActionFeedCancel            = "FeedCancel"
	ActionGetOrder              = "GetOrder"
	ActionGetOrders             = "GetOrders"
	ActionGetOrderItems         = "GetOrderItems"
	ActionGetMultipleOrderItems = "GetMultipleOrderItems"
	ActionSetOrderItemsImei     = "SetOrderItemsImei"
	ActionGetFailureReasons     = "GetFailureReasons"
	ActionGetShipmentProviders  = "GetShipmentProviders"
	ActionGetQcStatus           = "GetQcStatus"
	ActionGetWebhooks           = "GetWebhooks"
	ActionGetWebhookEntities    = "GetWebhookEntities"
	ActionCreateWebhook         = "CreateWebhook"
	ActionDeleteWebhook         = "DeleteWebhook"
	ActionGetStatistics         = "GetStatistics"
	ActionGetSellerByUser       = "GetSellerByUser"
)

// Service errors
var (
	ErrOrderNotFound  = errors.New("integration: order not found")
	ErrSellerNotFound = errors.New("integration: seller not found")
	ErrNothingToSend  = errors.New("integration: nothing to send")
)

// Sender performs one signed SellerCenter call; *sellercenter.Client implements it
type Sender interface {
	Send(ctx context.Context, req sellercenter.Request) (*response.SuccessResponse, error)
}

// Service runs SellerCenter actions
type Service struct {
	client  Sender
	factory *factory.Factory
	logger  *zap.Logger
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the service logger; skipped listing items are logged through it
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFactory replaces the entity factory, e.g. to install a custom observer
func WithFactory(f *factory.Factory) Option {
	return func(s *Service) {
		if f != nil {
			s.factory = f
		}
	}
}

// NewService creates a Service on top of client
func NewService(client Sender, opts ...Option) *Service {
	s := &Service{client: client, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.factory == nil {
		s.factory = factory.New(factory.WithLogger(s.logger))
	}
	return s
}

func (s *Service) call(ctx context.Context, action string, params map[string]any) (*etree.Element, error) {
	resp, err := s.client.Send(ctx, sellercenter.Request{Action: action, Parameters: params})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// write posts an XML document and returns the id of the queued feed
func (s *Service) write(ctx context.Context, action, body string, params map[string]any) (string, error) {
	resp, err := s.client.Send(ctx, sellercenter.Request{Action: action, Parameters: params, Body: body})
	if err != nil {
		return "", err
	}
	s.logger.Info("sellercenter request queued",
		zap.String("action", action),
		zap.String("feed", resp.Head.RequestID),
	)
	return resp.Head.RequestID, nil
}

// GetBrands lists every brand
func (s *Service) GetBrands(ctx context.Context) (*catalog.Brands, error) {
	body, err := s.call(ctx, ActionGetBrands, nil)
	if err != nil {
		return nil, err
	}
	return factory.ParseBrands(body.SelectElement("Brands"))
}

// GetCategoryTree returns the root categories with their subtrees
func (s *Service) GetCategoryTree(ctx context.Context) (*catalog.Categories, error) {
	body, err := s.call(ctx, ActionGetCategoryTree, nil)
	if err != nil {
		return nil, err
	}
	return factory.ParseCategories(body.SelectElement("Categories"))
}

// GetCategoryAttributes lists the attributes products of a category accept
func (s *Service) GetCategoryAttributes(ctx context.Context, primaryCategory int) ([]*catalog.CategoryAttribute, error) {
	body, err := s.call(ctx, ActionGetCategoryAttributes, map[string]any{"PrimaryCategory": primaryCategory})
	if err != nil {
		return nil, err
	}
	return factory.ParseCategoryAttributes(body)
}

// GetProducts lists products. Malformed products are skipped and reported.
func (s *Service) GetProducts(ctx context.Context, filter ProductFilter) (*catalog.Products, []factory.ItemFailure, error) {
	body, err := s.call(ctx, ActionGetProducts, filter.Parameters())
	if err != nil {
		return nil, nil, err
	}
	products, failures := s.factory.ParseProducts(body.SelectElement("Products"))
	return products, failures, nil
}

// GetGlobalProducts lists multi-market products. Malformed products are
// skipped and reported.
func (s *Service) GetGlobalProducts(ctx context.Context, filter ProductFilter) (*catalog.Products, []factory.ItemFailure, error) {
	body, err := s.call(ctx, ActionGetProducts, filter.Parameters())
	if err != nil {
		return nil, nil, err
	}
	products, failures := s.factory.ParseGlobalProducts(body.SelectElement("Products"))
	return products, failures, nil
}

// ProductCreate queues the creation of products
func (s *Service) ProductCreate(ctx context.Context, products []catalog.Sellable, overrides transformer.Overrides) (string, error) {
	return s.sendProducts(ctx, ActionProductCreate, products, overrides)
}

// ProductUpdate queues an update of products
func (s *Service) ProductUpdate(ctx context.Context, products []catalog.Sellable, overrides transformer.Overrides) (string, error) {
	return s.sendProducts(ctx, ActionProductUpdate, products, overrides)
}

// GlobalProductCreate queues the creation of multi-market products
func (s *Service) GlobalProductCreate(ctx context.Context, products []*catalog.GlobalProduct, overrides transformer.Overrides) (string, error) {
	return s.sendProducts(ctx, ActionProductCreate, sellables(products), overrides)
}

// GlobalProductUpdate queues an update of multi-market products
func (s *Service) GlobalProductUpdate(ctx context.Context, products []*catalog.GlobalProduct, overrides transformer.Overrides) (string, error) {
	return s.sendProducts(ctx, ActionProductUpdate, sellables(products), overrides)
}

func sellables(products []*catalog.GlobalProduct) []catalog.Sellable {
	out := make([]catalog.Sellable, 0, len(products))
	for _, p := range products {
		out = append(out, p)
	}
	return out
}

func (s *Service) sendProducts(ctx context.Context, action string, products []catalog.Sellable, overrides transformer.Overrides) (string, error) {
	if len(products) == 0 {
		return "", ErrNothingToSend
	}
	body, err := transformer.ProductRequest(products, overrides)
	if err != nil {
		return "", fmt.Errorf("integration: build %s request: %w", action, err)
	}
	return s.write(ctx, action, body, nil)
}

// ProductRemove queues the removal of the given seller SKUs
func (s *Service) ProductRemove(ctx context.Context, sellerSkus ...string) (string, error) {
	if len(sellerSkus) == 0 {
		return "", ErrNothingToSend
	}
	body, err := transformer.ProductRemoveRequest(sellerSkus...)
	if err != nil {
		return "", err
	}
	return s.write(ctx, ActionProductRemove, body, nil)
}

// ProductImage replaces the images of products
func (s *Service) ProductImage(ctx context.Context, products ...catalog.Sellable) (string, error) {
	if len(products) == 0 {
		return "", ErrNothingToSend
	}
	body, err := transformer.ImageRequest(products...)
	if err != nil {
		return "", err
	}
	return s.write(ctx, ActionImage, body, nil)
}

// FeedStatus returns the processing report of one feed
func (s *Service) FeedStatus(ctx context.Context, feedID string) (*feed.Feed, error) {
	body, err := s.call(ctx, ActionFeedStatus, map[string]any{"FeedID": feedID})
	if err != nil {
		return nil, err
	}
	return factory.ParseFeed(body.SelectElement("FeedDetail"))
}

// FeedList lists recent feeds
func (s *Service) FeedList(ctx context.Context) (*feed.Feeds, error) {
	body, err := s.call(ctx, ActionFeedList, nil)
	if err != nil {
		return nil, err
	}
	return factory.ParseFeeds(body)
}

// FeedOffsetList returns one page of feeds with the per-status counters
func (s *Service) FeedOffsetList(ctx context.Context, req FeedPageRequest) (*feed.Page, error) {
	body, err := s.call(ctx, ActionFeedOffsetList, req.Parameters())
	if err != nil {
		return nil, err
	}
	return factory.ParseFeedPage(body)
}

// FeedCancel cancels a queued feed
func (s *Service) FeedCancel(ctx context.Context, feedID string) error {
	_, err := s.call(ctx, ActionFeedCancel, map[string]any{"FeedID": feedID})
	return err
}

// GetOrder returns one order
func (s *Service) GetOrder(ctx context.Context, orderID int) (*order.Order, error) {
	body, err := s.call(ctx, ActionGetOrder, map[string]any{"OrderId": orderID})
	if err != nil {
		return nil, err
	}
	orders, err := factory.ParseOrders(body.SelectElement("Orders"))
	if err != nil {
		return nil, err
	}
	o, ok := orders.Get(orderID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
	}
	return o, nil
}

// GetOrders lists orders
func (s *Service) GetOrders(ctx context.Context, filter OrderFilter) (*order.Orders, error) {
	body, err := s.call(ctx, ActionGetOrders, filter.Parameters())
	if err != nil {
		return nil, err
	}
	return factory.ParseOrders(body.SelectElement("Orders"))
}

// GetOrderItems lists the items of one order
func (s *Service) GetOrderItems(ctx context.Context, orderID int) (*order.OrderItems, error) {
	body, err := s.call(ctx, ActionGetOrderItems, map[string]any{"OrderId": orderID})
	if err != nil {
		return nil, err
	}
	return factory.ParseOrderItems(body.SelectElement("OrderItems"))
}

// GetMultipleOrderItems returns several orders, each with its items
func (s *Service) GetMultipleOrderItems(ctx context.Context, orderIDs ...int) (*order.Orders, error) {
	if len(orderIDs) == 0 {
		return order.NewOrders(), nil
	}
	params := make(map[string]any)
	putList(params, "OrderIdList", orderIDs)
	body, err := s.call(ctx, ActionGetMultipleOrderItems, params)
	if err != nil {
		return nil, err
	}
	return factory.ParseOrdersWithItems(body.SelectElement("Orders"))
}

// SetOrderItemsImei sends the IMEI of each item
func (s *Service) SetOrderItemsImei(ctx context.Context, items ...*order.OrderItem) (string, error) {
	if len(items) == 0 {
		return "", ErrNothingToSend
	}
	body, err := transformer.OrderItemImeiRequest(items...)
	if err != nil {
		return "", err
	}
	return s.write(ctx, ActionSetOrderItemsImei, body, nil)
}

// GetFailureReasons lists cancellation and return reasons
func (s *Service) GetFailureReasons(ctx context.Context) (order.FailureReasons, error) {
	body, err := s.call(ctx, ActionGetFailureReasons, nil)
	if err != nil {
		return nil, err
	}
	return factory.ParseFailureReasons(body.SelectElement("Reasons"))
}

// GetShipmentProviders lists the carriers available to the seller
func (s *Service) GetShipmentProviders(ctx context.Context) (*order.ShipmentProviders, error) {
	body, err := s.call(ctx, ActionGetShipmentProviders, nil)
	if err != nil {
		return nil, err
	}
	return factory.ParseShipmentProviders(body.SelectElement("ShipmentProviders"))
}

// GetQcStatus returns the quality-control state of the given SKUs
func (s *Service) GetQcStatus(ctx context.Context, sellerSkus ...string) (*catalog.QualityControls, error) {
	params := make(map[string]any)
	putList(params, "SkuSellerList", sellerSkus)
	body, err := s.call(ctx, ActionGetQcStatus, params)
	if err != nil {
		return nil, err
	}
	return factory.ParseQualityControls(body.SelectElement("Status"))
}

// GetWebhooks lists registered webhooks, optionally restricted to ids
func (s *Service) GetWebhooks(ctx context.Context, ids ...string) (*webhook.Webhooks, error) {
	params := make(map[string]any)
	putList(params, "WebhookIds", ids)
	body, err := s.call(ctx, ActionGetWebhooks, params)
	if err != nil {
		return nil, err
	}
	return factory.ParseWebhooks(body.SelectElement("Webhooks"))
}

// GetWebhookEntities lists the entities and events a webhook can subscribe to
func (s *Service) GetWebhookEntities(ctx context.Context) (webhook.Entities, error) {
	body, err := s.call(ctx, ActionGetWebhookEntities, nil)
	if err != nil {
		return nil, err
	}
	return factory.ParseEntities(body.SelectElement("Entities"))
}

// CreateWebhook registers w and returns the id SellerCenter assigned
func (s *Service) CreateWebhook(ctx context.Context, w *webhook.Webhook) (string, error) {
	body, err := transformer.WebhookRequest(w)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Send(ctx, sellercenter.Request{Action: ActionCreateWebhook, Body: body})
	if err != nil {
		return "", err
	}
	id := ""
	if e := resp.Body.FindElement("Webhook/WebhookId"); e != nil {
		id = e.Text()
	}
	w.ID = id
	return id, nil
}

// DeleteWebhook removes a webhook registration
func (s *Service) DeleteWebhook(ctx context.Context, webhookID string) error {
	body, err := transformer.DeleteWebhookRequest(webhookID)
	if err != nil {
		return err
	}
	_, err = s.client.Send(ctx, sellercenter.Request{Action: ActionDeleteWebhook, Body: body})
	return err
}

// GetStatistics returns the seller dashboard counters
func (s *Service) GetStatistics(ctx context.Context) (*seller.Statistics, error) {
	body, err := s.call(ctx, ActionGetStatistics, nil)
	if err != nil {
		return nil, err
	}
	return factory.ParseStatistics(body)
}

// GetSellerByUser returns the account of the API user
func (s *Service) GetSellerByUser(ctx context.Context) (*seller.Seller, error) {
	body, err := s.call(ctx, ActionGetSellerByUser, nil)
	if err != nil {
		return nil, err
	}
	e := body.SelectElement("Seller")
	if e == nil {
		return nil, ErrSellerNotFound
	}
	return factory.ParseSeller(e)
}
