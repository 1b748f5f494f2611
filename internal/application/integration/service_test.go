package integration

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/erp/sellercenter/internal/domain/catalog"
	"github.com/erp/sellercenter/internal/domain/feed"
	"github.com/erp/sellercenter/internal/domain/shared"
	"github.com/erp/sellercenter/internal/domain/webhook"
	"github.com/erp/sellercenter/internal/infrastructure/sellercenter"
	"github.com/erp/sellercenter/internal/infrastructure/sellercenter/factory"
	"github.com/erp/sellercenter/internal/infrastructure/sellercenter/response"
	"github.com/erp/sellercenter/internal/infrastructure/sellercenter/transformer"
)

// MockSender is a mock implementation of Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, req sellercenter.Request) (*response.SuccessResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.SuccessResponse), args.Error(1)
}

// success wraps body in a SuccessResponse envelope and decodes it
func success(t *testing.T, requestID, body string) *response.SuccessResponse {
	t.Helper()
	raw := `<?xml version="1.0" encoding="UTF-8"?>
<SuccessResponse>
  <Head><RequestId>` + requestID + `</RequestId><RequestAction>Test</RequestAction><ResponseType/><Timestamp>2015-07-01T11:11:11+00:00</Timestamp></Head>
  <Body>` + body + `</Body>
</SuccessResponse>`
	resp, err := response.Handle([]byte(raw))
	require.NoError(t, err)
	return resp
}

func action(name string) any {
	return mock.MatchedBy(func(req sellercenter.Request) bool { return req.Action == name })
}

const productXML = `<Product>
  <SellerSku>SKU-1</SellerSku><ShopSku>SH-1</ShopSku><Name>Running Shoe</Name>
  <Brand>Nike</Brand><Description>Fast</Description><TaxClass>default</TaxClass>
  <Variation>42</Variation><ParentSku></ParentSku><Quantity>10</Quantity><Available>8</Available>
  <Price>99.90</Price><Status>active</Status><ProductId>789</ProductId>
  <PrimaryCategory>1000</PrimaryCategory><Categories>1000</Categories>
  <ProductData>
    <ConditionType>new</ConditionType><PackageHeight>1</PackageHeight><PackageWidth>2</PackageWidth>
    <PackageLength>3</PackageLength><PackageWeight>4</PackageWeight>
  </ProductData>
</Product>`

func TestService_GetBrands(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, action(ActionGetBrands)).Return(success(t, "", `
    <Brands>
      <Brand><BrandId>1</BrandId><Name>Acme</Name><GlobalIdentifier>acme</GlobalIdentifier></Brand>
      <Brand><BrandId>2</BrandId><Name>Globex</Name><GlobalIdentifier/></Brand>
    </Brands>`), nil)

	brands, err := NewService(sender).GetBrands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, brands.Len())
	sender.AssertExpectations(t)
}

func TestService_GetProducts(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(req sellercenter.Request) bool {
		return req.Action == ActionGetProducts &&
			req.Parameters["Filter"] == "live" &&
			req.Parameters["Limit"] == 50 &&
			req.Parameters["SkuSellerList"] == `["SKU-1","SKU-2"]`
	})).Return(success(t, "", `<Products>`+productXML+`<Product><SellerSku>BROKEN</SellerSku></Product></Products>`), nil)

	var skipped []factory.ItemFailure
	f := factory.New(factory.WithObserver(factory.ObserverFunc(func(failure factory.ItemFailure) {
		skipped = append(skipped, failure)
	})))

	products, failures, err := NewService(sender, WithFactory(f)).GetProducts(context.Background(), ProductFilter{
		Filter:     "live",
		Limit:      50,
		SellerSkus: []string{"SKU-1", "SKU-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, products.Len())
	require.Len(t, failures, 1)
	assert.Equal(t, 1, failures[0].Index)
	assert.Len(t, skipped, 1)
	sender.AssertExpectations(t)
}

func TestService_ProductCreate(t *testing.T) {
	data, err := catalog.NewProductData("new", decimal.NewFromInt(1), decimal.NewFromInt(1), decimal.NewFromInt(1), decimal.NewFromInt(1))
	require.NoError(t, err)
	product, err := catalog.NewProduct(catalog.ProductInfo{SellerSku: "SKU-9", Name: "Shoes & Bags", ProductData: data}, decimal.NewFromInt(10), 1, 1)
	require.NoError(t, err)

	t.Run("posts product document", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(req sellercenter.Request) bool {
			return req.Action == ActionProductCreate &&
				strings.Contains(req.Body, "<SellerSku>SKU-9</SellerSku>") &&
				strings.Contains(req.Body, "Shoes &amp; Bags")
		})).Return(success(t, "feed-123", ""), nil)

		feedID, err := NewService(sender).ProductCreate(context.Background(), []catalog.Sellable{product}, transformer.NewOverrides())
		require.NoError(t, err)
		assert.Equal(t, "feed-123", feedID)
		sender.AssertExpectations(t)
	})

	t.Run("nothing to send", func(t *testing.T) {
		sender := new(MockSender)
		_, err := NewService(sender).ProductUpdate(context.Background(), nil, nil)
		assert.ErrorIs(t, err, ErrNothingToSend)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestService_ProductRemove(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(req sellercenter.Request) bool {
		return req.Action == ActionProductRemove && strings.Contains(req.Body, "<SellerSku>SKU-1</SellerSku>")
	})).Return(success(t, "feed-9", ""), nil)

	feedID, err := NewService(sender).ProductRemove(context.Background(), "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, "feed-9", feedID)
}

func TestService_FeedStatus(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(req sellercenter.Request) bool {
		return req.Action == ActionFeedStatus && req.Parameters["FeedID"] == "feed-1"
	})).Return(success(t, "", `<FeedDetail>
      <Feed>feed-1</Feed><Status>Processing</Status><Action>ProductCreate</Action>
      <CreationDate>2024-03-01 10:00:00</CreationDate><UpdatedDate>2024-03-01 10:05:00</UpdatedDate>
      <Source>api</Source><TotalRecords>3</TotalRecords><ProcessedRecords>1</ProcessedRecords><FailedRecords>0</FailedRecords>
    </FeedDetail>`), nil)

	f, err := NewService(sender).FeedStatus(context.Background(), "feed-1")
	require.NoError(t, err)
	assert.Equal(t, "feed-1", f.ID)
	assert.Equal(t, feed.StatusProcessing, f.Status)
	assert.False(t, f.IsDone())
}

func TestService_FeedOffsetList(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(req sellercenter.Request) bool {
		return req.Action == ActionFeedOffsetList &&
			req.Parameters["Offset"] == 0 &&
			req.Parameters["PageSize"] == 10 &&
			req.Parameters["Status"] == "Queued"
	})).Return(success(t, "", `
    <FeedCount><Total>2</Total><Queued>2</Queued><Processing>0</Processing><Finished>0</Finished><Canceled>0</Canceled></FeedCount>
    <Feeds/>`), nil)

	page, err := NewService(sender).FeedOffsetList(context.Background(), FeedPageRequest{PageSize: 10, Status: feed.StatusQueued})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Count.Total)
	assert.Equal(t, 0, page.Feeds.Len())
}

func TestService_GetOrder_NotFound(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, action(ActionGetOrder)).Return(success(t, "", `<Orders/>`), nil)

	_, err := NewService(sender).GetOrder(context.Background(), 42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestService_GetMultipleOrderItems(t *testing.T) {
	t.Run("sends id list", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(req sellercenter.Request) bool {
			return req.Action == ActionGetMultipleOrderItems && req.Parameters["OrderIdList"] == "[1,2]"
		})).Return(success(t, "", `<Orders/>`), nil)

		orders, err := NewService(sender).GetMultipleOrderItems(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, orders.Len())
	})

	t.Run("no ids", func(t *testing.T) {
		sender := new(MockSender)
		orders, err := NewService(sender).GetMultipleOrderItems(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, orders.Len())
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestService_GetQcStatus(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(req sellercenter.Request) bool {
		return req.Action == ActionGetQcStatus && req.Parameters["SkuSellerList"] == `["SKU-1"]`
	})).Return(success(t, "", `<Status>
      <State><SellerSKU>SKU-1</SellerSKU><Status>approved</Status><DataChanged>0</DataChanged></State>
    </Status>`), nil)

	qcs, err := NewService(sender).GetQcStatus(context.Background(), "SKU-1")
	require.NoError(t, err)
	qc, ok := qcs.Get("SKU-1")
	require.True(t, ok)
	assert.True(t, qc.IsApproved())
}

func TestService_CreateWebhook(t *testing.T) {
	w, err := webhook.New("https://example.com/hooks", "onOrderCreated")
	require.NoError(t, err)

	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(req sellercenter.Request) bool {
		return req.Action == ActionCreateWebhook && strings.Contains(req.Body, "<CallbackUrl>https://example.com/hooks</CallbackUrl>")
	})).Return(success(t, "", `<Webhook><WebhookId>wh-1</WebhookId></Webhook>`), nil)

	id, err := NewService(sender).CreateWebhook(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, "wh-1", id)
	assert.Equal(t, "wh-1", w.ID)

	_, err = NewService(sender).CreateWebhook(context.Background(), nil)
	assert.ErrorIs(t, err, shared.ErrEmptyValue)
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestService_GetSellerByUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, action(ActionGetSellerByUser)).Return(success(t, "", `
      <Seller><SellerId>S-1</SellerId><Name>Acme</Name><Email>look@me.com</Email><Status>active</Status></Seller>`), nil)

		s, err := NewService(sender).GetSellerByUser(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "S-1", s.SellerID)
		assert.True(t, s.IsActive())
	})

	t.Run("missing", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, action(ActionGetSellerByUser)).Return(success(t, "", `<Nothing/>`), nil)

		_, err := NewService(sender).GetSellerByUser(context.Background())
		assert.ErrorIs(t, err, ErrSellerNotFound)
	})
}

func TestService_PropagatesApplicationErrors(t *testing.T) {
	appErr := &response.ApplicationError{Message: "E01: Error Message", Code: 105, Type: "Sender", Action: "GetOrder"}
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil, appErr)

	_, err := NewService(sender).GetOrders(context.Background(), OrderFilter{Status: "pending"})

	var got *response.ApplicationError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 105, got.Code)
}
