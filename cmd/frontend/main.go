package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/smartlogi/frontend/internal/api"
	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
	"github.com/smartlogi/frontend/internal/core/service"
	"github.com/smartlogi/frontend/internal/infrastructure/backend"
	"github.com/smartlogi/frontend/internal/infrastructure/config"
	"github.com/smartlogi/frontend/internal/infrastructure/navigation"
	"github.com/smartlogi/frontend/internal/infrastructure/storage"
	"github.com/smartlogi/frontend/pkg/logger"
)

func main() {
	// A local .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env != "production",
	})

	vault, err := buildVault(ctx, cfg)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to initialise token vault")
	}

	tokens := service.NewTokenService(vault, logg)
	session := service.NewSessionState()
	nav := navigation.NewRecorder(logg)

	client := backend.New(backend.Options{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout(),
		Tokens:  tokens,
	}, logg)

	auth := service.NewAuthService(tokens, client, session, nav, logg)

	// The session manager reacts to backend authorization faults; it cannot
	// exist before the client it is built on, hence the late hook-up.
	client.SetHooks(backend.Hooks{
		Unauthorized: func() { auth.Logout(context.Background()) },
		Forbidden:    func() { nav.Navigate(domain.AccessDeniedRoute) },
	})

	guard := service.NewGuard(auth)

	e := api.NewRouter(api.Deps{
		Auth:    auth,
		Guard:   guard,
		Colis:   client,
		Manager: client,
		Refs:    client,
		Vault:   vault,
		Backend: client,
		Logger:  logg,
	})

	go func() {
		addr := ":" + cfg.Port
		logg.Info().Str("addr", addr).Str("backend", cfg.Backend.URL).Msg("front-end listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	logg.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func buildVault(ctx context.Context, cfg *config.Config) (ports.TokenVault, error) {
	switch cfg.Token.Driver {
	case "redis":
		client, err := storage.Connect(ctx, storage.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return storage.NewRedisVault(client, cfg.Token.Key), nil
	default:
		return storage.NewFileVault(cfg.Token.File, cfg.Token.Key), nil
	}
}
