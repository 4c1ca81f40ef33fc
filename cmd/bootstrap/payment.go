package bootstrap

import (
	"drivebook/internal/infra/payment"
	"drivebook/internal/pkg/config"
	"drivebook/internal/usecase"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(usecase.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *payment.Gateway {
	return payment.NewGateway(cfg.Payment)
}
