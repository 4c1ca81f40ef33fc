//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"drivebook/internal/handler"
	"drivebook/internal/handler/api"
	"drivebook/internal/handler/middleware"
	"drivebook/internal/infra/objectstore"
	"drivebook/internal/infra/payment"
	"drivebook/internal/infra/repository"
	"drivebook/internal/infra/uow"
	"drivebook/internal/pkg/clock"
	"drivebook/internal/pkg/config"
	"drivebook/internal/pkg/jwt"
	"drivebook/internal/usecase"
	"drivebook/internal/usecase/commands"
	"drivebook/internal/usecase/queries"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

// Env is one fully wired server over a throwaway database.
type Env struct {
	Pool   *pgxpool.Pool
	Router *gin.Engine
	Config config.Config
}

func SetupEnv(t *testing.T) *Env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	host, port := startPostgres(t)
	pool := prepareDatabase(t, host, port)

	cfg := config.NewTestConfig()
	router := buildServer(t, pool, cfg)

	return &Env{Pool: pool, Router: router, Config: cfg}
}

func startPostgres(t *testing.T) (string, nat.Port) {
	t.Helper()
	ctx := context.Background()

	postgresOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
		}
		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")
		postgresContainer = container
	})

	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	return host, port
}

// prepareDatabase creates a database unique to this test and applies the
// schema, so parallel suites never interfere.
func prepareDatabase(t *testing.T, host string, port nat.Port) *pgxpool.Pool {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, host, port.Port())
	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err)
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testUser, testPassword, host, port.Port(), dbName)
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile(schemaPath(t))
	require.NoError(t, err, "failed to read schema file")
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "failed to apply schema")

	return pool
}

func schemaPath(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "migrations", "schema.sql")
}

func buildServer(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	jwtService := jwt.NewService(cfg.JWT.Secret, 24*time.Hour)
	authUC := usecase.NewAuthUseCase(repository.NewUserRepository(pool), jwtService)
	authMw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))

	unit := uow.NewPostgresUoW(pool)
	courseCommands := commands.NewCourseCommands(unit, nil)
	bookingCommands := commands.NewBookingCommands(unit, nil, clock.NewRealClock())
	courseQueries := queries.NewCourseQueries(repository.NewCourseReadStore(pool), nil)
	bookingQueries := queries.NewBookingQueries(repository.NewBookingReadStore(pool))

	gateway := payment.NewGateway(cfg.Payment)

	storageCfg := cfg.Storage
	storageCfg.UploadDir = t.TempDir()
	store := objectstore.NewLocalStore(storageCfg)

	engine := gin.New()
	handler.NewRouter(
		engine,
		cfg,
		api.NewAuthHandler(authUC, cfg),
		api.NewCourseHandler(courseQueries),
		api.NewBookingHandler(bookingCommands, courseQueries, gateway, cfg),
		api.NewAdminHandler(courseCommands, bookingCommands, bookingQueries),
		api.NewUploadHandler(store),
		authMw,
	)
	return engine
}

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateUser(t *testing.T, pool *pgxpool.Pool, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, true)`,
		userID, email, "Test User", testPasswordHash, role)
	require.NoError(t, err)
	return userID
}
