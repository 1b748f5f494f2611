package sellercenter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/erp/sellercenter/internal/infrastructure/sellercenter/response"
)

const testKey = "b1bdb357ced10fe4e9a69840cdd4f0e9c03d77fe"

const brandsResponse = `<?xml version="1.0" encoding="UTF-8"?>
<SuccessResponse>
  <Head>
    <RequestId></RequestId>
    <RequestAction>GetBrands</RequestAction>
    <ResponseType>Brands</ResponseType>
    <Timestamp>2015-07-01T11:11:11+00:00</Timestamp>
  </Head>
  <Body>
    <Brands>
      <Brand><BrandId>1</BrandId><Name>Acme</Name><GlobalIdentifier>acme</GlobalIdentifier></Brand>
    </Brands>
  </Body>
</SuccessResponse>`

const senderErrorResponse = `<?xml version="1.0" encoding="UTF-8"?>
<ErrorResponse>
  <Head>
    <RequestAction>GetOrder</RequestAction>
    <ErrorType>Sender</ErrorType>
    <ErrorCode>105</ErrorCode>
    <ErrorMessage>E01: Error Message</ErrorMessage>
  </Head>
  <Body/>
</ErrorResponse>`

func fixedClock() time.Time {
	return time.Date(2015, 7, 1, 11, 11, 11, 0, time.UTC)
}

func newTestClient(t *testing.T, endpoint string, opts ...ClientOption) *Client {
	t.Helper()
	opts = append([]ClientOption{WithClock(fixedClock)}, opts...)
	client, err := NewClient(NewConfig(endpoint, "look@me.com", testKey), opts...)
	require.NoError(t, err)
	return client
}

// verifySignature recomputes the signature from every received parameter except Signature
func verifySignature(t *testing.T, r *http.Request) {
	t.Helper()
	query := r.URL.Query()
	got := query.Get("Signature")
	query.Del("Signature")

	pairs := make(map[string]any, len(query))
	for k := range query {
		pairs[k] = query.Get(k)
	}
	want, err := GenerateSignature(NewParameters().Set(pairs), testKey)
	assert.NoError(t, err)
	assert.Equal(t, want.String(), got)
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(nil)
	assert.ErrorIs(t, err, ErrClientConfig)

	_, err = NewClient(NewConfig("", "u", "k"))
	assert.ErrorIs(t, err, ErrConfigMissingEndpoint)
}

func TestClient_SignedQuery(t *testing.T) {
	client := newTestClient(t, "https://sellercenter-api.example.com")

	query, err := client.SignedQuery(Request{Action: "FeedList"})
	require.NoError(t, err)

	assert.Equal(t,
		"Action=FeedList&Format=XML&Timestamp=2015-07-01T11%3A11%3A11%2B00%3A00&UserID=look%40me.com&Version=1.0"+
			"&Signature=3ceb8ed91049dfc718b0d2d176fb2ed0e5fd74f76c5971f34cdab48412476041",
		query,
	)
}

func TestClient_Send(t *testing.T) {
	t.Run("read action", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "GetBrands", r.URL.Query().Get("Action"))
			assert.Equal(t, "2015-07-01T11:11:11+00:00", r.URL.Query().Get("Timestamp"))
			assert.True(t, strings.HasSuffix(r.URL.RawQuery, "&Signature="+r.URL.Query().Get("Signature")))
			verifySignature(t, r)
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte(brandsResponse))
		}))
		defer server.Close()

		resp, err := newTestClient(t, server.URL).Send(context.Background(), Request{Action: "GetBrands"})
		require.NoError(t, err)
		assert.Equal(t, "GetBrands", resp.Head.RequestAction)
		assert.NotNil(t, resp.Body.SelectElement("Brands"))
	})

	t.Run("write action posts body with action parameters", func(t *testing.T) {
		body := `<?xml version="1.0" encoding="UTF-8"?><Request><Product><SellerSku>A</SellerSku></Product></Request>`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "text/xml; charset=utf-8", r.Header.Get("Content-Type"))
			assert.Equal(t, "10", r.URL.Query().Get("Limit"))
			verifySignature(t, r)
			got, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Equal(t, body, string(got))
			_, _ = w.Write([]byte(brandsResponse))
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL).Send(context.Background(), Request{
			Action:     "ProductCreate",
			Parameters: map[string]any{"Limit": 10},
			Body:       body,
		})
		require.NoError(t, err)
	})

	t.Run("application error", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(senderErrorResponse))
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL, WithLogger(zap.New(core))).
			Send(context.Background(), Request{Action: "GetOrder"})

		var appErr *response.ApplicationError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 105, appErr.Code)
		assert.Equal(t, "Sender", appErr.Type)
		assert.Equal(t, "GetOrder", appErr.Action)
		assert.Equal(t, "E01: Error Message", appErr.Message)
		assert.Equal(t, 1, logs.FilterMessage("sellercenter application error").Len())
	})

	t.Run("error document with error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(senderErrorResponse))
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL).Send(context.Background(), Request{Action: "GetOrder"})
		var appErr *response.ApplicationError
		assert.True(t, errors.As(err, &appErr))
	})

	t.Run("http status without document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL).Send(context.Background(), Request{Action: "GetBrands"})
		assert.ErrorIs(t, err, ErrHTTPStatus)
	})

	t.Run("malformed document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<<<>>>"))
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL).Send(context.Background(), Request{Action: "GetBrands"})
		assert.ErrorIs(t, err, response.ErrMalformedXML)
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := newTestClient(t, url).Send(context.Background(), Request{Action: "GetBrands"})
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("empty action", func(t *testing.T) {
		_, err := newTestClient(t, "https://sellercenter-api.example.com").Send(context.Background(), Request{})
		assert.ErrorIs(t, err, ErrEmptyAction)
	})
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func TestClient_SendWithCustomDoer(t *testing.T) {
	var seen *http.Request
	doer := doerFunc(func(r *http.Request) (*http.Response, error) {
		seen = r
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(brandsResponse)),
		}, nil
	})

	client := newTestClient(t, "https://sellercenter-api.example.com/api", WithHTTPClient(doer))
	_, err := client.Send(context.Background(), Request{Action: "GetBrands", Method: http.MethodGet})
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "/api", seen.URL.Path)
	assert.Equal(t, "sellercenter-api.example.com", seen.URL.Host)
}

func TestClient_SendRecordsSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(original) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(senderErrorResponse))
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Send(context.Background(), Request{Action: "GetOrder"})
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "sellercenter.GetOrder", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}
