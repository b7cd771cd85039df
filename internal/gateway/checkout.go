package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// CheckoutConfig points at the payment provider's REST API.
type CheckoutConfig struct {
	BaseURL    string
	SecretKey  string
	SuccessURL string
	CancelURL  string
	Timeout    time.Duration
}

type checkoutClient struct {
	cfg    CheckoutConfig
	client *http.Client
	log    *zap.Logger
}

// NewCheckoutClient builds the HTTP client for the checkout provider.
func NewCheckoutClient(cfg CheckoutConfig, log *zap.Logger) CheckoutGateway {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &checkoutClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    log.With(zap.String("gateway", "checkout")),
	}
}

type createSessionBody struct {
	*CheckoutParams
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

func (c *checkoutClient) CreateSession(ctx context.Context, params *CheckoutParams) (*CheckoutSession, error) {
	body := createSessionBody{
		CheckoutParams: params,
		SuccessURL:     c.cfg.SuccessURL,
		CancelURL:      c.cfg.CancelURL,
	}

	var session CheckoutSession
	if err := c.post(ctx, "/v1/checkout/sessions", body, &session); err != nil {
		c.log.Error("Failed to create checkout session",
			zap.Error(err),
			zap.String("pitch_type", params.PitchType),
			zap.String("date", params.Date),
			zap.Int64("amount_cents", params.AmountCents),
		)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	if session.URL == "" {
		return nil, fmt.Errorf("no checkout URL returned from provider")
	}

	c.log.Info("Checkout session created",
		zap.String("session_id", session.SessionID),
		zap.Int64("amount_cents", params.AmountCents),
	)
	return &session, nil
}

func (c *checkoutClient) VerifySession(ctx context.Context, sessionID string) (*VerifyResult, error) {
	var result VerifyResult
	if err := c.get(ctx, "/v1/checkout/sessions/"+sessionID, &result); err != nil {
		c.log.Error("Failed to verify checkout session",
			zap.Error(err),
			zap.String("session_id", sessionID),
		)
		return nil, fmt.Errorf("verify checkout session %s: %w", sessionID, err)
	}

	return &result, nil
}

func (c *checkoutClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	return c.do(req, out)
}

func (c *checkoutClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	return c.do(req, out)
}

func (c *checkoutClient) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// Surface the provider's message verbatim so the UI can show it.
		var apiErr struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("provider returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("provider returned %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
