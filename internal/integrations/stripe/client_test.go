package stripe

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const webhookSecret = "whsec_test_secret"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	cfg := Config{
		SecretKey:     "sk_test_123",
		WebhookSecret: webhookSecret,
		Currency:      "brl",
		SuccessURL:    "https://barber.example",
		CancelURL:     "https://barber.example",
		Timeout:       5 * time.Second,
	}
	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		cfg.BaseURL = srv.URL
	}
	return NewClient(cfg, nopLogger{})
}

func signedEvent(t *testing.T, event map[string]interface{}) ([]byte, string) {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    webhookSecret,
		Timestamp: time.Now(),
	})
	return signed.Payload, signed.Header
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(Config{Currency: "brl"}, nopLogger{})

	assert.False(t, c.Configured())
	assert.False(t, c.WebhookConfigured())

	_, err := c.Refund(context.Background(), "ch_1")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.CreateCheckoutSession(context.Background(), CheckoutRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.ParseEvent([]byte("{}"), "t=1,v1=abc")
	assert.ErrorIs(t, err, ErrWebhookNotConfigured)
}

func TestClient_ParseEvent_CheckoutCompleted(t *testing.T) {
	c := newTestClient(t, nil)

	payload, header := signedEvent(t, map[string]interface{}{
		"id":     "evt_1",
		"object": "event",
		"type":   "checkout.session.completed",
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"id":             "cs_1",
				"object":         "checkout.session",
				"payment_status": "paid",
				"metadata": map[string]string{
					"serviceId": "svc",
					"userId":    "user-1",
				},
			},
		},
	})

	event, err := c.ParseEvent(payload, header)

	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, "checkout.session.completed", event.Type)
	require.NotNil(t, event.Session)
	assert.Equal(t, "cs_1", event.Session.ID)
	assert.Equal(t, "paid", event.Session.PaymentStatus)
	assert.Equal(t, "user-1", event.Session.Metadata["userId"])
}

func TestClient_ParseEvent_OtherType(t *testing.T) {
	c := newTestClient(t, nil)

	payload, header := signedEvent(t, map[string]interface{}{
		"id":     "evt_2",
		"object": "event",
		"type":   "customer.created",
		"data": map[string]interface{}{
			"object": map[string]interface{}{"id": "cus_1", "object": "customer"},
		},
	})

	event, err := c.ParseEvent(payload, header)

	require.NoError(t, err)
	assert.Nil(t, event.Session)
}

func TestClient_ParseEvent_BadSignature(t *testing.T) {
	c := newTestClient(t, nil)

	payload, _ := signedEvent(t, map[string]interface{}{"id": "evt_3", "object": "event", "type": "checkout.session.completed"})

	_, err := c.ParseEvent(payload, "t=1,v1=deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = c.ParseEvent(payload, "")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestClient_Refund(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/refunds", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		form, err := url.ParseQuery(string(body))
		assert.NoError(t, err)
		assert.Equal(t, "ch_1", form.Get("charge"))
		assert.Equal(t, "requested_by_customer", form.Get("reason"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"re_1","object":"refund","status":"succeeded"}`))
	})

	refund, err := c.Refund(context.Background(), "ch_1")

	require.NoError(t, err)
	assert.Equal(t, "re_1", refund.ID)
	assert.Equal(t, "succeeded", refund.Status)
}

func TestClient_Refund_ProviderError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such charge"}}`))
	})

	_, err := c.Refund(context.Background(), "ch_missing")

	assert.ErrorIs(t, err, ErrProvider)
}

func TestClient_GetChargeID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions/cs_1", r.URL.Path)
		assert.Equal(t, "payment_intent.latest_charge", r.URL.Query().Get("expand[0]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cs_1",
			"object": "checkout.session",
			"payment_intent": {
				"id": "pi_1",
				"object": "payment_intent",
				"latest_charge": {"id": "ch_1", "object": "charge"}
			}
		}`))
	})

	chargeID, err := c.GetChargeID(context.Background(), "cs_1")

	require.NoError(t, err)
	assert.Equal(t, "ch_1", chargeID)
}

func TestClient_GetChargeID_NoCharge(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "cs_1", "object": "checkout.session"}`))
	})

	_, err := c.GetChargeID(context.Background(), "cs_1")

	assert.ErrorIs(t, err, ErrNoCharge)
}

func TestClient_CreateCheckoutSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		form, err := url.ParseQuery(string(body))
		assert.NoError(t, err)
		assert.Equal(t, "payment", form.Get("mode"))
		assert.Equal(t, "brl", form.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "5000", form.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "Vintage Barber - Corte", form.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "user-1", form.Get("metadata[userId]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_1"}`))
	})

	session, err := c.CreateCheckoutSession(context.Background(), CheckoutRequest{
		ShopName:      "Vintage Barber",
		ServiceName:   "Corte",
		AmountInCents: 5000,
		Metadata:      map[string]string{"userId": "user-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_1", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_1", session.URL)
}
