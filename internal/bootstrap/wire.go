// Package bootstrap assembles the service: config, store, security
// primitives, application service, HTTP transport. Constructors are
// injectable so tests can swap the store without a MongoDB instance.
package bootstrap

import (
	"context"
	"net/http"

	"github.com/baechuer/user-directory/internal/application/users"
	"github.com/baechuer/user-directory/internal/config"
	"github.com/baechuer/user-directory/internal/infrastructure/mongodb"
	"github.com/baechuer/user-directory/internal/infrastructure/security"
	"github.com/baechuer/user-directory/internal/logger"
	"github.com/baechuer/user-directory/internal/metrics"
	"github.com/baechuer/user-directory/internal/transport/http/handlers"
	"github.com/baechuer/user-directory/internal/transport/http/middleware"
	"github.com/baechuer/user-directory/internal/transport/http/response"
	"github.com/baechuer/user-directory/internal/transport/http/router"
)

type Deps struct {
	LoadConfig func() (*config.Config, error)

	// NewUserRepo returns the store and a cleanup. The default connects to
	// MongoDB and ensures indexes.
	NewUserRepo func(ctx context.Context, cfg *config.Config) (users.UserRepo, func(), error)
}

func defaultDeps() Deps {
	return Deps{
		LoadConfig:  config.Load,
		NewUserRepo: newMongoUserRepo,
	}
}

func newMongoUserRepo(ctx context.Context, cfg *config.Config) (users.UserRepo, func(), error) {
	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = client.Disconnect(context.Background()) }

	repo := mongodb.NewUserRepo(client.Database(cfg.MongoDB))
	if err := repo.EnsureIndexes(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}

	logger.Logger.Info().Str("db", cfg.MongoDB).Msg("mongodb connected")
	return repo, cleanup, nil
}

// NewServer builds the production HTTP server and a cleanup function.
func NewServer(ctx context.Context) (*http.Server, func(), error) {
	return newServer(ctx, defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
func NewServerWithDeps(ctx context.Context, deps Deps) (*http.Server, func(), error) {
	return newServer(ctx, deps)
}

func newServer(ctx context.Context, deps Deps) (*http.Server, func(), error) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	repo, cleanup, err := deps.NewUserRepo(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	hasher := security.NewBcryptHasher(0)
	signer := security.NewJWTSigner(cfg.JWTSecret, "user-directory")

	svc := users.NewService(repo, hasher, signer, users.Config{TokenTTL: cfg.TokenTTL})

	handler, err := router.New(router.Deps{
		Health: handlers.NewHealthHandler(),
		Users:  handlers.NewUserHandler(svc, cfg.IsProd()),
		GateMW: middleware.AccessGate(signer, repo, response.WriteError),
		Outer: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.Metrics(),
			middleware.CORS(cfg.AllowedOrigins),
		},
		MetricsHandler: metrics.Handler(),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
	return srv, cleanup, nil
}
