package bootstrap

import (
	"drivebook/internal/infra/objectstore"
	"drivebook/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewObjectStore,
	),
)

func NewObjectStore(cfg config.Config) *objectstore.LocalStore {
	return objectstore.NewLocalStore(cfg.Storage)
}
