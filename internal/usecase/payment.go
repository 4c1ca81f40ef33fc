package usecase

import "context"

// PaymentOrder is the gateway-side order a client completes before the
// booking transaction runs.
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PaymentGateway is the external payment service boundary. BookSlot is only
// ever invoked after VerifySignature returns true; the verified payment id
// travels into the booking as its transaction id.
//go:generate mockgen -destination=../../tests/mock/usecase/payment_mock.go -package=usecasemock drivebook/internal/usecase PaymentGateway
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64) (*PaymentOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}
