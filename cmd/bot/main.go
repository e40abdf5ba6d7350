package main

import (
	"context"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/redis/go-redis/v9"

	lankabot "github.com/niranga/lankabot"
	"github.com/niranga/lankabot/internal/config"
	"github.com/niranga/lankabot/internal/domain"
	"github.com/niranga/lankabot/internal/engine"
	"github.com/niranga/lankabot/internal/handler"
	"github.com/niranga/lankabot/internal/knowledge"
	"github.com/niranga/lankabot/internal/middleware"
	"github.com/niranga/lankabot/internal/repository"
	"github.com/niranga/lankabot/internal/response"
	"github.com/niranga/lankabot/internal/service"
	"github.com/niranga/lankabot/internal/session"
	"github.com/niranga/lankabot/internal/telegram"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil || sessionTTL <= 0 {
		slog.Error("invalid SESSION_TTL", "value", cfg.SessionTTL, "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Build the session store for the configured backend
	store, err := buildStore(ctx, cfg, sessionTTL)
	if err != nil {
		slog.Error("failed to build session store", "backend", cfg.SessionBackend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// Seed the personalization layer
	seed := cfg.PersonalitySeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pers := response.NewPersonality(rand.New(rand.NewSource(seed)))

	kb := knowledge.NewBase()
	dispatcher := response.NewDispatcher(kb, pers)
	eng := engine.New(store, dispatcher, logger)

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.RateLimit(config.RateLimitPerMinute),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	notifier := telegram.NewNotifier(b, cfg)

	// Surface localization gaps to the admin chat
	dispatcher.OnLocalizationGap(func(language, family string) {
		notifier.LogLocalizationGap(language, family)
	})

	// Initialize handler
	h := handler.New(handler.Deps{
		Bot:      b,
		Cfg:      cfg,
		Engine:   eng,
		KB:       kb,
		Weather:  service.NewWeatherService(),
		Places:   service.NewPlacesService(),
		Notifier: notifier,
	})
	h.Register()

	// Default text handler for free-form conversation
	b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil {
			return
		}
		// Skip commands
		if len(update.Message.Text) > 0 && update.Message.Text[0] == '/' {
			return
		}
		h.HandleText(ctx, b, update)
	})

	// Start idle session sweep goroutine
	go eng.SweepLoop(ctx, config.SweepInterval, sessionTTL)

	// Start bot
	slog.Info("starting bot", "username", me.Username, "id", me.ID, "backend", cfg.SessionBackend)
	b.Start(ctx)

	// Graceful shutdown
	slog.Info("bot stopped gracefully")
}

// buildStore wires the configured session backend, running migrations for
// Postgres and pinging Redis before use.
func buildStore(ctx context.Context, cfg *config.Config, ttl time.Duration) (session.Store, error) {
	switch session.StoreType(cfg.SessionBackend) {
	case session.StoreTypeMemory:
		return session.NewStore(session.StoreTypeMemory,
			session.WithHistoryLimit(cfg.HistoryLimit))

	case session.StoreTypeRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		return session.NewStore(session.StoreTypeRedis,
			session.WithRedisClient(client),
			session.WithRedisTTL(ttl),
			session.WithHistoryLimit(cfg.HistoryLimit))

	case session.StoreTypePostgres:
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		migrationsFS, err := fs.Sub(lankabot.MigrationsFS, "migrations")
		if err != nil {
			pool.Close()
			return nil, err
		}
		if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
			pool.Close()
			return nil, err
		}
		return session.NewStore(session.StoreTypePostgres,
			session.WithPostgresPool(pool),
			session.WithHistoryLimit(cfg.HistoryLimit))

	default:
		return nil, domain.ErrInvalidStoreType
	}
}
