package session

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/niranga/lankabot/internal/domain"
)

// DefaultHistoryLimit bounds the conversation history kept per session.
const DefaultHistoryLimit = 50

// Store is the keyed session state of the engine. A session is either Active
// (created and not reset) or Absent; read operations never create sessions.
// Implementations serialize mutations per session while letting operations on
// different sessions proceed concurrently, and return snapshots from Get.
type Store interface {
	// Create starts a new session for userID. An empty language or guide
	// selects the defaults; invalid values are rejected.
	Create(ctx context.Context, userID string, lang domain.Language, guideID string) (*domain.Session, error)

	// Get returns a copy of the session or domain.ErrSessionNotFound.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// AppendTurn appends one turn and truncates history to the configured
	// limit, oldest first.
	AppendTurn(ctx context.Context, id string, turn domain.Turn) error

	// SetLanguage switches the session language. It fails without side
	// effects when the language is unsupported or the session is absent.
	SetLanguage(ctx context.Context, id string, lang domain.Language) error

	// SetGuide switches the active persona under the same rules.
	SetGuide(ctx context.Context, id string, guideID string) error

	// Reset destroys the session. Resetting an absent session is a no-op.
	Reset(ctx context.Context, id string) error

	// Sweep removes sessions idle for longer than idleFor and reports how
	// many were removed. Backends with native expiry may return (0, nil).
	Sweep(ctx context.Context, idleFor time.Duration) (int, error)

	Close() error
}

// StoreType selects a session backend.
type StoreType string

const (
	StoreTypeMemory   StoreType = "memory"
	StoreTypeRedis    StoreType = "redis"
	StoreTypePostgres StoreType = "postgres"
)

// StoreOption is a functional option for configuring a session store.
type StoreOption func(*storeConfig)

type storeConfig struct {
	historyLimit int
	redisClient  *redis.Client
	redisTTL     time.Duration
	pgPool       *pgxpool.Pool
}

// WithHistoryLimit overrides the per-session history cap.
func WithHistoryLimit(n int) StoreOption {
	return func(c *storeConfig) {
		c.historyLimit = n
	}
}

// WithRedisClient sets the client for the Redis store.
func WithRedisClient(client *redis.Client) StoreOption {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithRedisTTL sets the key TTL for the Redis store.
func WithRedisTTL(ttl time.Duration) StoreOption {
	return func(c *storeConfig) {
		c.redisTTL = ttl
	}
}

// WithPostgresPool sets the connection pool for the Postgres store.
func WithPostgresPool(pool *pgxpool.Pool) StoreOption {
	return func(c *storeConfig) {
		c.pgPool = pool
	}
}

// NewStore creates a session store for the given backend type.
func NewStore(storeType StoreType, opts ...StoreOption) (Store, error) {
	config := &storeConfig{historyLimit: DefaultHistoryLimit}
	for _, opt := range opts {
		opt(config)
	}
	if config.historyLimit <= 0 {
		config.historyLimit = DefaultHistoryLimit
	}

	switch storeType {
	case StoreTypeMemory:
		return newMemoryStore(config.historyLimit), nil

	case StoreTypeRedis:
		if config.redisClient == nil {
			return nil, domain.ErrInvalidStoreConfig
		}
		ttl := config.redisTTL
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		return &redisStore{client: config.redisClient, ttl: ttl, limit: config.historyLimit}, nil

	case StoreTypePostgres:
		if config.pgPool == nil {
			return nil, domain.ErrInvalidStoreConfig
		}
		return &postgresStore{pool: config.pgPool, limit: config.historyLimit}, nil

	default:
		return nil, domain.ErrInvalidStoreType
	}
}

func normalizeLanguage(lang domain.Language) (domain.Language, error) {
	if lang == "" {
		return domain.DefaultLanguage, nil
	}
	if !lang.Valid() {
		return "", domain.ErrUnsupportedLanguage
	}
	return lang, nil
}

func normalizeGuide(guideID string) (string, error) {
	if guideID == "" {
		return domain.DefaultGuideID, nil
	}
	if !domain.KnownGuide(guideID) {
		return "", domain.ErrUnknownGuide
	}
	return guideID, nil
}

func truncateHistory(history []domain.Turn, limit int) []domain.Turn {
	if len(history) <= limit {
		return history
	}
	return history[len(history)-limit:]
}
