package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/niranga/lankabot/internal/domain"
)

const redisKeyPrefix = "session:"

// redisStore persists sessions as JSON values with a native TTL, so Sweep is
// a no-op. Read-modify-write mutations run under WATCH, which serializes
// concurrent writers per key.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	limit  int
}

func (s *redisStore) Create(ctx context.Context, userID string, lang domain.Language, guideID string) (*domain.Session, error) {
	lang, err := normalizeLanguage(lang)
	if err != nil {
		return nil, err
	}
	guideID, err = normalizeGuide(guideID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := domain.Session{
		ID:              uuid.NewString(),
		UserID:          userID,
		Language:        lang,
		Guide:           guideID,
		CreatedAt:       now,
		LastInteraction: now,
	}

	val, err := json.Marshal(&sess)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, redisKeyPrefix+sess.ID, val, s.ttl).Err(); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *redisStore) AppendTurn(ctx context.Context, id string, turn domain.Turn) error {
	return s.mutate(ctx, id, func(sess *domain.Session) {
		sess.History = truncateHistory(append(sess.History, turn), s.limit)
		sess.LastInteraction = turn.Timestamp
	})
}

func (s *redisStore) SetLanguage(ctx context.Context, id string, lang domain.Language) error {
	if !lang.Valid() {
		return domain.ErrUnsupportedLanguage
	}
	return s.mutate(ctx, id, func(sess *domain.Session) {
		sess.Language = lang
	})
}

func (s *redisStore) SetGuide(ctx context.Context, id string, guideID string) error {
	if !domain.KnownGuide(guideID) {
		return domain.ErrUnknownGuide
	}
	return s.mutate(ctx, id, func(sess *domain.Session) {
		sess.Guide = guideID
	})
}

func (s *redisStore) Reset(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisKeyPrefix+id).Err()
}

func (s *redisStore) Sweep(ctx context.Context, idleFor time.Duration) (int, error) {
	// Expiry is handled by the key TTL.
	return 0, nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

func (s *redisStore) mutate(ctx context.Context, id string, apply func(*domain.Session)) error {
	key := redisKeyPrefix + id

	return s.client.Watch(ctx, func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return domain.ErrSessionNotFound
		}
		if err != nil {
			return err
		}

		var sess domain.Session
		if err := json.Unmarshal([]byte(val), &sess); err != nil {
			return err
		}

		apply(&sess)

		newVal, err := json.Marshal(&sess)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, newVal, s.ttl)
			return nil
		})
		return err
	}, key)
}
