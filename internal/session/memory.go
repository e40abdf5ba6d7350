package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/niranga/lankabot/internal/domain"
)

// memoryStore keeps sessions in a map with one lock per session, so turns for
// different sessions never contend with each other. The outer lock only
// guards map membership.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*memoryEntry
	limit    int
}

type memoryEntry struct {
	mu   sync.Mutex
	data domain.Session
}

func newMemoryStore(limit int) *memoryStore {
	return &memoryStore{
		sessions: make(map[string]*memoryEntry),
		limit:    limit,
	}
}

func (s *memoryStore) Create(ctx context.Context, userID string, lang domain.Language, guideID string) (*domain.Session, error) {
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

	s.mu.Lock()
	s.sessions[sess.ID] = &memoryEntry{data: sess}
	s.mu.Unlock()

	return sess.Clone(), nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.data.Clone(), nil
}

func (s *memoryStore) AppendTurn(ctx context.Context, id string, turn domain.Turn) error {
	entry, err := s.entry(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.data.History = truncateHistory(append(entry.data.History, turn), s.limit)
	entry.data.LastInteraction = turn.Timestamp
	return nil
}

func (s *memoryStore) SetLanguage(ctx context.Context, id string, lang domain.Language) error {
	if !lang.Valid() {
		return domain.ErrUnsupportedLanguage
	}
	entry, err := s.entry(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.data.Language = lang
	return nil
}

func (s *memoryStore) SetGuide(ctx context.Context, id string, guideID string) error {
	if !domain.KnownGuide(guideID) {
		return domain.ErrUnknownGuide
	}
	entry, err := s.entry(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.data.Guide = guideID
	return nil
}

func (s *memoryStore) Reset(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Sweep(ctx context.Context, idleFor time.Duration) (int, error) {
	cutoff := time.Now().Add(-idleFor)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.sessions {
		entry.mu.Lock()
		idle := entry.data.LastInteraction.Before(cutoff)
		entry.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	s.sessions = nil
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) entry(id string) (*memoryEntry, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return entry, nil
}
