package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"drivebook/internal/pkg/config"
	"drivebook/internal/pkg/errs"
	"drivebook/internal/usecase"
)

// Gateway talks to the hosted payment provider over HTTP with basic auth.
// Signature verification is local: the provider signs "orderID|paymentID"
// with the shared key secret.
type Gateway struct {
	cfg    config.PaymentConfig
	client *http.Client
}

func NewGateway(cfg config.PaymentConfig) *Gateway {
	return &Gateway{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func (g *Gateway) CreateOrder(ctx context.Context, amountPaise int64) (*usecase.PaymentOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   amountPaise,
		Currency: g.cfg.Currency,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode order request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build order request")
	}
	req.SetBasicAuth(g.cfg.KeyID, g.cfg.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentGatewayUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errs.Mark(
			fmt.Errorf("payment gateway returned status %d", resp.StatusCode),
			errs.ErrPaymentGatewayUnavailable,
		)
	}

	var order usecase.PaymentOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, errs.Wrap(err, "failed to decode order response")
	}
	return &order, nil
}

func (g *Gateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(g.cfg.KeySecret, orderID, paymentID, signature)
}

// VerifySignature checks the provider's HMAC-SHA256 over "orderID|paymentID"
// in constant time.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign produces the signature the provider would attach; exposed for tests
// and sandbox tooling.
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
