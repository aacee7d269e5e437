package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CameronXie/eth-order-api/internal/api/rest"
	"github.com/CameronXie/eth-order-api/internal/api/rest/handlers"
	"github.com/CameronXie/eth-order-api/internal/api/rest/middlewares"
	"github.com/CameronXie/eth-order-api/internal/api/rest/response"
	"github.com/CameronXie/eth-order-api/internal/config"
	"github.com/CameronXie/eth-order-api/internal/enforcer"
	"github.com/CameronXie/eth-order-api/internal/order"
	"github.com/CameronXie/eth-order-api/internal/server"
	"github.com/CameronXie/eth-order-api/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})).With(
		slog.String("version", version.Version),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server_error", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

// run wires the order API for cfg and serves it until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	originEnforcer, err := newEnforcer(cfg, logger)
	if err != nil {
		return err
	}

	validator, err := order.NewValidator()
	if err != nil {
		return err
	}

	responder := response.NewErrorResponder(logger)

	mux := rest.NewMuxWithHandlers(
		&rest.RouterConfig{
			ConnectivityHandler: handlers.NewConnectivityHandler(time.Now),
			OrderHandler: handlers.NewOrderHandler(
				validator,
				order.NewRandomIDGenerator(),
				responder,
				logger,
			),
			NotFoundHandler: handlers.NewNotFoundHandler(responder),
			Middlewares:     newMiddlewares(originEnforcer, responder, logger),
		},
	)

	logger.Info(
		"starting_server",
		slog.Int("port", cfg.Port),
		slog.Any("allowed_origins", cfg.AllowedOrigins),
		slog.String("origin_policy_engine", string(cfg.PolicyEngine)),
	)

	return server.ListenAndServe(ctx, cfg.Addr(), mux, logger)
}

// newMiddlewares returns the middlewares wrapping every route. The request id is assigned first so that
// every later log line, including one for a recovered panic, carries it.
func newMiddlewares(
	originEnforcer enforcer.Enforcer,
	responder *response.ErrorResponder,
	logger *slog.Logger,
) []middlewares.Middleware {
	return []middlewares.Middleware{
		middlewares.NewRequestIDMiddleware(),
		middlewares.NewRecoveryMiddleware(responder),
		middlewares.NewOriginPolicyMiddleware(
			originEnforcer,
			middlewares.DefaultCORSConfig(),
			responder,
			logger,
		),
	}
}
