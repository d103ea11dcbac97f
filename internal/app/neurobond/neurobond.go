// Package neurobond assembles the backend: storage, cache, payment
// gateway, message broker and the HTTP server with all routes.
package neurobond

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/neurobond/neurobond/internal/cache"
	"github.com/neurobond/neurobond/internal/config"
	"github.com/neurobond/neurobond/internal/lib/jwt"
	"github.com/neurobond/neurobond/internal/lib/sl"
	"github.com/neurobond/neurobond/internal/migrations"
	"github.com/neurobond/neurobond/internal/paymentprovider"
	"github.com/neurobond/neurobond/internal/rabbitmq"
	analysisservice "github.com/neurobond/neurobond/internal/services/analysis"
	caseservice "github.com/neurobond/neurobond/internal/services/cases"
	checkoutservice "github.com/neurobond/neurobond/internal/services/checkout"
	userservice "github.com/neurobond/neurobond/internal/services/user"
	"github.com/neurobond/neurobond/internal/storage/repository"
)

// App is the assembled backend.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	broker *amqp.Connection
}

// New builds the App from the configuration. The broker is optional:
// when it is not reachable the app starts without the upgrade mail
// pipeline and logs the fact.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	var gateway paymentprovider.Gateway
	if cfg.Stripe.APIKey != "" {
		paymentprovider.SetKey(cfg.Stripe.APIKey)
		gateway = paymentprovider.NewStripeGateway()
	} else {
		logger.Warn("no payment provider key configured, using the fake gateway")
		gateway = paymentprovider.NewFakeGateway()
	}

	var broker *amqp.Connection
	var channel *amqp.Channel
	if cfg.RabbitMQURL != "" {
		broker, err = rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
		if err != nil {
			logger.Warn("broker unreachable, upgrade mails disabled", sl.Err(err))
		} else {
			channel, err = rabbitmq.SetupChannel(broker, rabbitmq.GetUpgradeQueues())
			if err != nil {
				return nil, err
			}
		}
	}

	var provider analysisservice.Provider = analysisservice.NewStub()
	if cfg.Analysis.EngineURL != "" {
		provider = analysisservice.NewHTTPProvider(cfg.Analysis.EngineURL)
	}

	maker := jwt.NewMaker(cfg.Session.SecretKey, cfg.Session.TokenTTL)

	users := userservice.New(db, cacheRedis, logger)
	cases := caseservice.New(db, cacheRedis, logger)
	checkout := checkoutservice.New(gateway, users, checkoutservice.PriceResolver{
		MonthlyPriceID: cfg.Stripe.MonthlyPriceID,
		YearlyPriceID:  cfg.Stripe.YearlyPriceID,
	}, channel, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, maker, users, cases, checkout, provider)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		broker: broker,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		if a.broker != nil {
			_ = a.broker.Close()
		}
		return err
	}
}
