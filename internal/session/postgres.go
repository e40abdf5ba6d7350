package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niranga/lankabot/internal/domain"
)

// postgresStore persists sessions in a single table, with the bounded history
// stored as JSONB. Row locks (SELECT ... FOR UPDATE) serialize concurrent
// mutations per session.
type postgresStore struct {
	pool  *pgxpool.Pool
	limit int
}

func (s *postgresStore) Create(ctx context.Context, userID string, lang domain.Language, guideID string) (*domain.Session, error) {
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

	_, err = s.pool.Exec(ctx,
		`INSERT INTO sessions (id, user_id, language, guide, history, created_at, last_interaction)
		 VALUES ($1, $2, $3, $4, '[]'::jsonb, $5, $6)`,
		sess.ID, sess.UserID, string(sess.Language), sess.Guide, sess.CreatedAt, sess.LastInteraction)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return &sess, nil
}

func (s *postgresStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	var (
		sess    domain.Session
		lang    string
		history []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, language, guide, history, created_at, last_interaction
		 FROM sessions WHERE id = $1`, id).
		Scan(&sess.ID, &sess.UserID, &lang, &sess.Guide, &history, &sess.CreatedAt, &sess.LastInteraction)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select session: %w", err)
	}

	sess.Language = domain.Language(lang)
	if len(history) > 0 {
		if err := json.Unmarshal(history, &sess.History); err != nil {
			return nil, fmt.Errorf("decode history: %w", err)
		}
	}
	return &sess, nil
}

func (s *postgresStore) AppendTurn(ctx context.Context, id string, turn domain.Turn) error {
	return s.mutate(ctx, id, func(sess *domain.Session) {
		sess.History = truncateHistory(append(sess.History, turn), s.limit)
		sess.LastInteraction = turn.Timestamp
	})
}

func (s *postgresStore) SetLanguage(ctx context.Context, id string, lang domain.Language) error {
	if !lang.Valid() {
		return domain.ErrUnsupportedLanguage
	}
	return s.mutate(ctx, id, func(sess *domain.Session) {
		sess.Language = lang
	})
}

func (s *postgresStore) SetGuide(ctx context.Context, id string, guideID string) error {
	if !domain.KnownGuide(guideID) {
		return domain.ErrUnknownGuide
	}
	return s.mutate(ctx, id, func(sess *domain.Session) {
		sess.Guide = guideID
	})
}

func (s *postgresStore) Reset(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (s *postgresStore) Sweep(ctx context.Context, idleFor time.Duration) (int, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM sessions WHERE last_interaction < $1`, time.Now().Add(-idleFor))
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *postgresStore) mutate(ctx context.Context, id string, apply func(*domain.Session)) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var (
		sess    domain.Session
		lang    string
		history []byte
	)
	err = tx.QueryRow(ctx,
		`SELECT id, user_id, language, guide, history, created_at, last_interaction
		 FROM sessions WHERE id = $1 FOR UPDATE`, id).
		Scan(&sess.ID, &sess.UserID, &lang, &sess.Guide, &history, &sess.CreatedAt, &sess.LastInteraction)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("lock session: %w", err)
	}

	sess.Language = domain.Language(lang)
	if len(history) > 0 {
		if err := json.Unmarshal(history, &sess.History); err != nil {
			return fmt.Errorf("decode history: %w", err)
		}
	}

	apply(&sess)

	if sess.History == nil {
		sess.History = []domain.Turn{}
	}
	newHistory, err := json.Marshal(sess.History)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	_, err = tx.Exec(ctx,
		`UPDATE sessions SET language = $2, guide = $3, history = $4, last_interaction = $5 WHERE id = $1`,
		sess.ID, string(sess.Language), sess.Guide, newHistory, sess.LastInteraction)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	return tx.Commit(ctx)
}
