package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mymmrac/telego"
	"golang.org/x/sync/errgroup"

	"tarkov_trader/internal/config"
	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/service/catalog"
	"tarkov_trader/internal/domain/service/trend"
	"tarkov_trader/internal/infrastructure/notifier"
	"tarkov_trader/internal/infrastructure/tarkovdev"
	"tarkov_trader/internal/server"
	"tarkov_trader/internal/transport/bot"
	"tarkov_trader/internal/transport/bot/handler"
	"tarkov_trader/internal/worker"
	"tarkov_trader/pkg/application/modules"
	"tarkov_trader/pkg/httpx"
	"tarkov_trader/pkg/logx"
	"tarkov_trader/pkg/middlewarex"
)

const digestBuffer = 1

// Run wires the application and blocks until ctx is cancelled or a module
// fails.
func Run(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	masker := logx.NewSensitiveDataMasker()

	providerClient := tarkovdev.NewClient(cfg.Tarkov.APIURL, &http.Client{
		Timeout: cfg.Tarkov.Timeout,
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithLogFieldMaxLen(cfg.Log.FieldMaxLength),
			httpx.WithSensitiveDataMasker(masker),
		),
	})

	store := catalog.NewStore(providerClient)
	catalogService := catalog.NewService(store, trend.NewGenerator(nil)).
		WithTrendTTL(cfg.Catalog.TrendTTL)

	g, ctx := errgroup.WithContext(ctx)

	loader := worker.NewCatalogLoader(catalogService).
		WithInterval(cfg.Catalog.RefreshInterval)

	if cfg.Bot.Enabled() {
		if err := runBot(ctx, g, cfg.Bot, catalogService, loader); err != nil {
			return err
		}
	} else {
		log.Info("BOT_TOKEN is empty, telegram bot disabled")
	}

	g.Go(func() error {
		return loader.Run(ctx)
	})

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger(log),
		middlewarex.Recovery,
		middlewarex.Metrics,
		middlewarex.RequestLogging(masker, cfg.Log.FieldMaxLength),
		middlewarex.ResponseLogging(masker, cfg.Log.FieldMaxLength),
	)

	server.NewServer(server.NewCatalogServer(catalogService)).RegisterRoutes(router)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	})

	modules.MetricServer{ListenAddress: cfg.Metrics.ListenAddress}.Run(ctx, g)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Ready: func() bool {
			return catalogService.Status().Loaded
		},
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func runBot(
	ctx context.Context,
	g *errgroup.Group,
	cfg config.Bot,
	catalogService *catalog.Service,
	loader *worker.CatalogLoader,
) error {
	telegramBot, err := telego.NewBot(cfg.Token)
	if err != nil {
		return fmt.Errorf("telego.NewBot: %w", err)
	}

	commandBot := bot.New(telegramBot, handler.New(catalogService), cfg.AdminChatID)

	g.Go(func() error {
		return commandBot.Run(ctx)
	})

	if cfg.ChatID == 0 {
		logger(ctx).Info("BOT_CHAT_ID is empty, digests disabled")
		return nil
	}

	digests := make(chan entity.Digest, digestBuffer)
	loader.WithDigests(digests, cfg.DigestSize)

	g.Go(func() error {
		return notifier.NewTelegramBot(telegramBot, cfg.ChatID).Run(ctx, digests)
	})

	return nil
}
