package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	modePayment          = "payment"
	paymentMethodCard    = "card"
	refundReasonCustomer = "requested_by_customer"
	expandLatestCharge   = "payment_intent.latest_charge"
	checkoutEventPrefix  = "checkout.session."
)

// Config параметры клиента платежного провайдера
type Config struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	SuccessURL    string
	CancelURL     string
	Timeout       time.Duration
	// BaseURL адрес API (пустой - адрес по умолчанию); используется в тестах
	BaseURL string
}

// Client клиент Stripe: checkout-сессии, возвраты и проверка вебхуков
type Client struct {
	sc  *stripego.Client
	cfg Config
	log Logger
}

// NewClient создает клиент. Без секретного ключа клиент создается,
// но платежные операции возвращают ErrNotConfigured
func NewClient(cfg Config, log Logger) *Client {
	c := &Client{cfg: cfg, log: log}

	if cfg.SecretKey != "" {
		backendConfig := &stripego.BackendConfig{
			HTTPClient: &http.Client{Timeout: cfg.Timeout},
		}
		if cfg.BaseURL != "" {
			backendConfig.URL = stripego.String(cfg.BaseURL)
		}
		c.sc = stripego.NewClient(cfg.SecretKey, stripego.WithBackends(stripego.NewBackendsWithConfig(backendConfig)))
	}

	return c
}

// Configured возвращает true, если задан секретный ключ
func (c *Client) Configured() bool {
	return c.sc != nil
}

// WebhookConfigured возвращает true, если заданы секретный ключ и секрет вебхуков
func (c *Client) WebhookConfigured() bool {
	return c.sc != nil && c.cfg.WebhookSecret != ""
}

// CreateCheckoutSession создает платежную сессию на одну позицию
func (c *Client) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	product := &stripego.CheckoutSessionCreateLineItemPriceDataProductDataParams{
		Name: stripego.String(req.ShopName + " - " + req.ServiceName),
	}
	if req.Description != "" {
		product.Description = stripego.String(req.Description)
	}
	if req.ImageURL != "" {
		product.Images = stripego.StringSlice([]string{req.ImageURL})
	}

	params := &stripego.CheckoutSessionCreateParams{
		Mode:               stripego.String(modePayment),
		PaymentMethodTypes: stripego.StringSlice([]string{paymentMethodCard}),
		SuccessURL:         stripego.String(c.cfg.SuccessURL),
		CancelURL:          stripego.String(c.cfg.CancelURL),
		Metadata:           req.Metadata,
		LineItems: []*stripego.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripego.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:    stripego.String(c.cfg.Currency),
					UnitAmount:  stripego.Int64(req.AmountInCents),
					ProductData: product,
				},
				Quantity: stripego.Int64(1),
			},
		},
	}

	session, err := c.sc.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		c.log.Error("CreateCheckoutSession: stripe error: %v", err)
		return nil, fmt.Errorf("%w: CreateCheckoutSession: %v", ErrProvider, err)
	}

	c.log.Info("CreateCheckoutSession: session=%s created", session.ID)

	return &CheckoutSession{
		ID:            session.ID,
		URL:           session.URL,
		PaymentStatus: string(session.PaymentStatus),
		Metadata:      session.Metadata,
	}, nil
}

// GetChargeID получает ID списания оплаченной сессии
func (c *Client) GetChargeID(ctx context.Context, sessionID string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	params := &stripego.CheckoutSessionRetrieveParams{}
	params.AddExpand(expandLatestCharge)

	session, err := c.sc.V1CheckoutSessions.Retrieve(ctx, sessionID, params)
	if err != nil {
		return "", fmt.Errorf("%w: GetChargeID - retrieve %s: %v", ErrProvider, sessionID, err)
	}

	if session.PaymentIntent == nil || session.PaymentIntent.LatestCharge == nil || session.PaymentIntent.LatestCharge.ID == "" {
		return "", fmt.Errorf("%w: session %s", ErrNoCharge, sessionID)
	}

	return session.PaymentIntent.LatestCharge.ID, nil
}

// Refund возвращает списание целиком по запросу клиента
func (c *Client) Refund(ctx context.Context, chargeID string) (*Refund, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	refund, err := c.sc.V1Refunds.Create(ctx, &stripego.RefundCreateParams{
		Charge: stripego.String(chargeID),
		Reason: stripego.String(refundReasonCustomer),
	})
	if err != nil {
		c.log.Error("Refund: charge=%s stripe error: %v", chargeID, err)
		return nil, fmt.Errorf("%w: Refund - charge %s: %v", ErrProvider, chargeID, err)
	}

	c.log.Info("Refund: charge=%s refund=%s status=%s", chargeID, refund.ID, refund.Status)

	return &Refund{ID: refund.ID, Status: string(refund.Status)}, nil
}

// ParseEvent проверяет подпись вебхука и разбирает событие
func (c *Client) ParseEvent(payload []byte, signature string) (*Event, error) {
	if !c.WebhookConfigured() {
		return nil, ErrWebhookNotConfigured
	}
	if signature == "" {
		return nil, fmt.Errorf("%w: missing signature header", ErrInvalidSignature)
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, c.cfg.WebhookSecret, webhook.ConstructEventOptions{
		Tolerance:                webhook.DefaultTolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	result := &Event{
		ID:   event.ID,
		Type: string(event.Type),
	}

	if strings.HasPrefix(result.Type, checkoutEventPrefix) {
		if event.Data == nil {
			return nil, fmt.Errorf("%w: event %s has no data", ErrInvalidPayload, event.ID)
		}
		var session stripego.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: event %s: %v", ErrInvalidPayload, event.ID, err)
		}
		result.Session = &CheckoutSession{
			ID:            session.ID,
			URL:           session.URL,
			PaymentStatus: string(session.PaymentStatus),
			Metadata:      session.Metadata,
		}
	}

	return result, nil
}
