package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SergeyBogomolovv/storefront-checkout/docs"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/app"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/notify"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/payment"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/repo"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Storefront Checkout API
// @version         1.0
// @description     Каталог, оформление заказов, отслеживание доставки и администрирование магазина
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	panicIfErr("failed to apply migrations", postgres.Migrate(conf.Postgres))

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	productCache := cache.NewLRUCache[string, []byte](conf.Cache.Capacity, conf.Cache.TTL)

	authenticator := auth.NewJWTAuthenticator(conf.Auth)

	catalogService := service.NewCatalogService(logger, store, productCache)
	orderService := service.NewOrderService(logger, txManager, store, store)
	checkoutService := service.NewCheckoutService(logger,
		service.CheckoutConfig{
			Currency:       conf.Checkout.Currency,
			DeliveryWindow: conf.Checkout.DeliveryWindow,
			VerifyPrices:   conf.Checkout.VerifyPrices,
			PublicURL:      conf.Checkout.PublicURL,
		},
		service.CheckoutDeps{
			Auth:     authenticator,
			Repo:     store,
			Prices:   catalogService,
			Payments: payment.NewStripeGateway(logger, conf.Stripe),
			Notifier: notify.NewResendNotifier(logger, conf.Email, conf.Auth.AdminEmails),
			Sink:     store,
			Tracking: service.NewTrackingGenerator(conf.Checkout.TrackingPrefix),
		},
	)

	httpHandler := handler.NewHTTPHandler(logger, checkoutService, orderService, catalogService)
	adminGuard := middleware.RequireAdmin(logger, authenticator)
	adminHandler := handler.NewAdminHandler(logger, orderService, adminGuard)
	catalogHandler := handler.NewCatalogHandler(logger, catalogService, catalogService,
		middleware.RequireUser(logger, authenticator), adminGuard)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler, adminHandler, catalogHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(
		productCache,
		cacheWarmUpAdapter{svc: catalogService, count: conf.Cache.Capacity},
		sweepAdapter{svc: orderService, logger: logger, interval: conf.Sweep.Interval, olderThan: conf.Sweep.OlderThan},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}

type staleCanceller interface {
	CancelStalePending(ctx context.Context, olderThan time.Duration) (int64, error)
}

// sweepAdapter периодически отменяет заказы, для которых так и не создалась платёжная сессия.
type sweepAdapter struct {
	svc       staleCanceller
	logger    *slog.Logger
	interval  time.Duration
	olderThan time.Duration
}

func (a sweepAdapter) Start(ctx context.Context) error {
	if a.interval <= 0 || a.olderThan <= 0 {
		return nil
	}

	go func() {
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := a.svc.CancelStalePending(ctx, a.olderThan); err != nil {
					a.logger.Error("failed to cancel stale orders", slog.Any("error", err))
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}
