package bootstrap

import (
	"drivebook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	PaymentModule,
	StorageModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
