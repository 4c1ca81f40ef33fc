package components

import (
	"drivebook/internal/infra/cache"
	repo_impl "drivebook/internal/infra/repository"
	"drivebook/internal/infra/uow"
	"drivebook/internal/pkg/config"
	"drivebook/internal/usecase"
	"drivebook/internal/usecase/commands"
	"drivebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewCourseReadStore,
			fx.As(new(queries.CourseReadStore)),
		),
		fx.Annotate(
			repo_impl.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			NewCourseCache,
			fx.As(new(commands.CourseCache)),
			fx.As(new(queries.CourseViewCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}

func NewCourseCache(client *redis.Client, cfg config.Config) *cache.CourseCache {
	return cache.NewCourseCache(client, cfg.Redis.CourseTTL)
}
