package payment

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/time"
)

var testNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

// fakeStripe answers the handful of endpoints the processor calls
type fakeStripe struct {
	mu    sync.Mutex
	calls map[string]int
	forms map[string]map[string]string
}

func (f *fakeStripe) record(r *http.Request) string {
	_ = r.ParseForm()
	key := r.Method + " " + r.URL.Path

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[key]++
	form := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		form[k] = r.PostForm.Get(k)
	}
	f.forms[key] = form
	return key
}

func (f *fakeStripe) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeStripe) form(key string) map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forms[key]
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprint(w, body)
}

func (f *fakeStripe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch f.record(r) {
	case "POST /v1/customers":
		writeJSON(w, http.StatusOK, `{"id":"cus_new123","object":"customer","description":"4"}`)
	case "GET /v1/customers/cus_known":
		writeJSON(w, http.StatusOK, `{"id":"cus_known","object":"customer","description":"4"}`)
	case "GET /v1/customers/cus_deleted":
		writeJSON(w, http.StatusOK, `{"id":"cus_deleted","object":"customer","deleted":true}`)
	case "DELETE /v1/customers/cus_known":
		writeJSON(w, http.StatusOK, `{"id":"cus_known","object":"customer","deleted":true}`)
	case "POST /v1/customers/cus_known/sources":
		writeJSON(w, http.StatusOK, `{"id":"card_1","object":"card","brand":"Visa","last4":"4242","exp_month":12,"exp_year":2030}`)
	case "GET /v1/customers/cus_known/sources/card_1":
		writeJSON(w, http.StatusOK, `{"id":"card_1","object":"card","brand":"Visa","last4":"4242","exp_month":12,"exp_year":2030}`)
	case "DELETE /v1/customers/cus_known/sources/card_1":
		writeJSON(w, http.StatusOK, `{"id":"card_1","object":"card","deleted":true}`)
	case "POST /v1/charges":
		if r.PostForm.Get("source") == "card_declined" {
			writeJSON(w, http.StatusPaymentRequired,
				`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined.","param":"source"}}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"id":"ch_1","object":"charge","amount":2500,"status":"succeeded"}`)
	case "GET /v1/customers/cus_limited":
		writeJSON(w, http.StatusTooManyRequests,
			`{"error":{"type":"invalid_request_error","code":"rate_limit","message":"Too many requests hit the API too quickly."}}`)
	case "GET /v1/customers/cus_revoked", "DELETE /v1/customers/cus_known/sources/card_revoked":
		writeJSON(w, http.StatusUnauthorized,
			`{"error":{"type":"invalid_request_error","message":"Invalid API Key provided: sk_test_***123"}}`)
	case "POST /v1/refunds":
		writeJSON(w, http.StatusOK, `{"id":"re_1","object":"refund","amount":2500,"charge":"ch_1"}`)
	default:
		writeJSON(w, http.StatusNotFound,
			`{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such object","param":"id"}}`)
	}
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
}

func (o *recordingObserver) ObserveGatewayCall(operation string, err error, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, fmt.Sprintf("%s:%t", operation, err == nil))
}

func testBackends(url string) *stripe.Backends {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(url),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return &stripe.Backends{API: backend, Connect: backend, Uploads: backend}
}

func newTestProcessor(t *testing.T) (*StripeProcessor, *fakeStripe, *recordingObserver) {
	t.Helper()
	fake := &fakeStripe{calls: map[string]int{}, forms: map[string]map[string]string{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	observer := &recordingObserver{}
	p := NewStripeProcessor("sk_test_123", testBackends(srv.URL),
		timeprovider.FixedTimeProvider{At: testNow}, logger.NewNoopLogger(), observer)
	return p, fake, observer
}

func validCard() *entity.CardDetails {
	return &entity.CardDetails{
		NameOnCard:      "Ann Lee",
		Number:          "4242 4242 4242 4242",
		CVC:             "123",
		ExpirationMonth: 12,
		ExpirationYear:  2030,
		Zip:             "94110",
	}
}

func TestCreateCustomer(t *testing.T) {
	p, fake, observer := newTestProcessor(t)
	ctx := context.Background()

	t.Run("new account", func(t *testing.T) {
		customer, err := p.CreateCustomer(ctx, &entity.Account{ID: 4, Name: "Lee Family"})
		require.NoError(t, err)
		assert.Equal(t, "cus_new123", customer.ID)
		assert.Equal(t, "4", fake.form("POST /v1/customers")["description"])
	})

	t.Run("existing customer is reused", func(t *testing.T) {
		customer, err := p.CreateCustomer(ctx, &entity.Account{ID: 4, ExternalID: "cus_known"})
		require.NoError(t, err)
		assert.Equal(t, "cus_known", customer.ID)
		assert.Equal(t, 1, fake.count("POST /v1/customers"))
	})

	t.Run("missing customer is replaced", func(t *testing.T) {
		customer, err := p.CreateCustomer(ctx, &entity.Account{ID: 4, ExternalID: "cus_gone"})
		require.NoError(t, err)
		assert.Equal(t, "cus_new123", customer.ID)
		assert.Equal(t, 2, fake.count("POST /v1/customers"))
	})

	assert.Contains(t, observer.calls, "create_customer:true")
	assert.Contains(t, observer.calls, "find_customer:false")
}

func TestFindCustomer(t *testing.T) {
	p, fake, _ := newTestProcessor(t)
	ctx := context.Background()

	_, err := p.FindCustomer(ctx, "bad", false)
	apiErr := errs.FromError(err)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, errs.CodeCustomerMissing, apiErr.Code)

	_, err = p.FindCustomer(ctx, "cus_known", false)
	require.NoError(t, err)
	_, err = p.FindCustomer(ctx, "cus_known", false)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.count("GET /v1/customers/cus_known"), "second lookup is cached")

	_, err = p.FindCustomer(ctx, "cus_known", true)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.count("GET /v1/customers/cus_known"))

	_, err = p.FindCustomer(ctx, "cus_deleted", false)
	assert.True(t, errs.IsGatewayObjectMissing(err))
	assert.True(t, errs.IsNotFoundError(err))
}

func TestDeleteCustomerEvictsCache(t *testing.T) {
	p, fake, _ := newTestProcessor(t)
	ctx := context.Background()

	_, err := p.FindCustomer(ctx, "cus_known", false)
	require.NoError(t, err)
	require.NoError(t, p.DeleteCustomer(ctx, "cus_known"))

	_, err = p.FindCustomer(ctx, "cus_known", false)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.count("GET /v1/customers/cus_known"))
}

func TestCreateAndDeleteCard(t *testing.T) {
	p, fake, _ := newTestProcessor(t)
	ctx := context.Background()

	card, err := p.CreateCard(ctx, "cus_known", validCard())
	require.NoError(t, err)
	assert.Equal(t, &gateway.StoredCard{ID: "card_1", Brand: "Visa", LastFour: "4242", ExpMonth: 12, ExpYear: 2030}, card)

	found, err := p.FindCard(ctx, "cus_known", "card_1", false)
	require.NoError(t, err)
	assert.Equal(t, card, found)
	assert.Zero(t, fake.count("GET /v1/customers/cus_known/sources/card_1"), "created card is cached")

	require.NoError(t, p.DeleteCard(ctx, "cus_known", "card_1"))
	_, err = p.FindCard(ctx, "cus_known", "card_1", false)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.count("GET /v1/customers/cus_known/sources/card_1"))
}

func TestCreateCardValidation(t *testing.T) {
	p, fake, _ := newTestProcessor(t)
	ctx := context.Background()

	details := validCard()
	details.NameOnCard = "A"
	_, err := p.CreateCard(ctx, "cus_known", details)
	assert.True(t, errs.IsValidationError(err))
	assert.Equal(t, errs.CodeCardValidation, errs.ErrorCode(err))

	_, err = p.CreateCard(ctx, "cus_gone", validCard())
	apiErr := errs.FromError(err)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, errs.CodeCustomerMissing, apiErr.Code)
	assert.Zero(t, fake.count("POST /v1/customers/cus_gone/sources"))
}

func TestFindCardRejectsMalformedID(t *testing.T) {
	p, _, _ := newTestProcessor(t)

	_, err := p.FindCard(context.Background(), "cus_known", "src_1", false)
	assert.True(t, errs.IsGatewayObjectMissing(err))
}

func TestChargeCard(t *testing.T) {
	p, fake, _ := newTestProcessor(t)
	ctx := context.Background()

	t.Run("stored card", func(t *testing.T) {
		charge, err := p.ChargeCard(ctx, gateway.ChargeRequest{AmountCents: 2500, CustomerID: "cus_known", CardID: "card_1"})
		require.NoError(t, err)
		assert.Equal(t, &gateway.Charge{ID: "ch_1", AmountCents: 2500, Status: "succeeded"}, charge)

		form := fake.form("POST /v1/charges")
		assert.Equal(t, "2500", form["amount"])
		assert.Equal(t, "usd", form["currency"])
		assert.Equal(t, "SMORES Payment", form["description"])
		assert.Equal(t, "cus_known", form["customer"])
		assert.Equal(t, "card_1", form["source"])
	})

	t.Run("one-time card", func(t *testing.T) {
		_, err := p.ChargeCard(ctx, gateway.ChargeRequest{AmountCents: 2500, Card: validCard()})
		require.NoError(t, err)
		assert.NotContains(t, fake.form("POST /v1/charges"), "customer")
	})

	t.Run("below minimum", func(t *testing.T) {
		_, err := p.ChargeCard(ctx, gateway.ChargeRequest{AmountCents: 99, CustomerID: "cus_known", CardID: "card_1"})
		apiErr := errs.FromError(err)
		assert.Equal(t, int64(errs.CodeChargeBelowMinimum), apiErr.Code)
		assert.Equal(t, "Charge amount must exceed $1.", apiErr.Title)
	})

	t.Run("no source", func(t *testing.T) {
		_, err := p.ChargeCard(ctx, gateway.ChargeRequest{AmountCents: 2500})
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("declined card is a validation error", func(t *testing.T) {
		_, err := p.ChargeCard(ctx, gateway.ChargeRequest{AmountCents: 2500, CustomerID: "cus_known", CardID: "card_declined"})
		apiErr := errs.FromError(err)
		assert.Equal(t, errs.KindValidation, apiErr.Kind)
		assert.Equal(t, errs.CodeCardDeclined, apiErr.Code)
		assert.Equal(t, "Error: Your card was declined.", apiErr.Title)
		assert.Equal(t, "Your card was declined.", apiErr.Fields["field"])
		assert.Contains(t, apiErr.Dev, "Type: card_error")
	})
}

func TestRefundCharge(t *testing.T) {
	p, fake, _ := newTestProcessor(t)

	refund, err := p.RefundCharge(context.Background(), "ch_1")
	require.NoError(t, err)
	assert.Equal(t, &gateway.Refund{ID: "re_1", ChargeID: "ch_1", AmountCents: 2500}, refund)
	assert.Equal(t, "ch_1", fake.form("POST /v1/refunds")["charge"])
}

func TestGatewayErrorBuckets(t *testing.T) {
	err := gatewayError(&stripe.Error{
		Type:           stripe.ErrorTypeInvalidRequest,
		Msg:            "No such token",
		Param:          "source",
		HTTPStatusCode: http.StatusBadRequest,
	})
	apiErr := errs.FromError(err)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, errs.CodeGatewayFailure, apiErr.Code)
	assert.Equal(t, "Status: 400\nType: invalid_request_error\nParam: source\nMessage: No such token", apiErr.Dev)

	assert.Nil(t, gatewayError(nil))
	assert.Equal(t, errs.CodeGatewayFailure, errs.ErrorCode(gatewayError(fmt.Errorf("dial tcp: timeout"))))
}

func TestCreateCustomerKeepsExistingOnGatewayFailure(t *testing.T) {
	testCases := []struct {
		name       string
		externalID string
		status     string
	}{
		{"rate limited", "cus_limited", "Status: 429"},
		{"revoked key", "cus_revoked", "Status: 401"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, fake, _ := newTestProcessor(t)

			customer, err := p.CreateCustomer(context.Background(), &entity.Account{ID: 4, ExternalID: tc.externalID})

			require.Error(t, err)
			assert.Nil(t, customer)
			assert.False(t, errs.IsGatewayObjectMissing(err))
			assert.Equal(t, errs.CodeGatewayFailure, errs.ErrorCode(err))
			assert.Contains(t, errs.FromError(err).Dev, tc.status)
			assert.Zero(t, fake.count("POST /v1/customers"), "no replacement customer is created")
		})
	}
}

func TestDeleteCardClassification(t *testing.T) {
	p, _, _ := newTestProcessor(t)
	ctx := context.Background()

	err := p.DeleteCard(ctx, "cus_known", "card_revoked")
	require.Error(t, err)
	assert.False(t, errs.IsGatewayObjectMissing(err))

	err = p.DeleteCard(ctx, "cus_known", "card_unknown")
	require.Error(t, err)
	assert.True(t, errs.IsGatewayObjectMissing(err))
	assert.Equal(t, errs.CodeGatewayFailure, errs.ErrorCode(err))
}

func TestIsMissing(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"resource missing", &stripe.Error{Code: stripe.ErrorCodeResourceMissing, HTTPStatusCode: http.StatusBadRequest}, true},
		{"http 404", &stripe.Error{HTTPStatusCode: http.StatusNotFound}, true},
		{"unauthorized", &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, HTTPStatusCode: http.StatusUnauthorized}, false},
		{"rate limited", &stripe.Error{HTTPStatusCode: http.StatusTooManyRequests}, false},
		{"bucketed failure", gatewayError(fmt.Errorf("dial tcp: timeout")), false},
		{"marked missing", cardMissing("Card does not exist: card_1", nil), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isMissing(tc.err))
		})
	}
}
