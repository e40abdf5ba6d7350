package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/niranga/lankabot/internal/domain"
	"github.com/niranga/lankabot/internal/entity"
	"github.com/niranga/lankabot/internal/intent"
	"github.com/niranga/lankabot/internal/language"
	"github.com/niranga/lankabot/internal/response"
	"github.com/niranga/lankabot/internal/session"
)

// languageSwitchThreshold gates automatic session-language switching. Below
// it the detected language is recorded on the turn but the session keeps its
// current language.
const languageSwitchThreshold = 0.7

// TurnRequest is one user utterance addressed to an existing session.
type TurnRequest struct {
	SessionID        string
	Text             string
	LanguageOverride domain.Language // skips detection when set
}

// TurnResult is everything the engine derived from one turn.
type TurnResult struct {
	SessionID           string                `json:"session_id"`
	Reply               string                `json:"reply"`
	Language            domain.Language       `json:"language"`
	Detected            domain.Language       `json:"detected_language"`
	DetectionConfidence float64               `json:"detection_confidence"`
	Intent              domain.Intent         `json:"intent"`
	Confidence          float64               `json:"confidence"`
	Alternatives        []domain.ScoredIntent `json:"alternatives,omitempty"`
	Entities            []domain.Entity       `json:"entities,omitempty"`
}

// Engine runs the full pipeline for a turn: language detection, intent
// recognition, entity extraction, response building and session bookkeeping.
// It is safe for concurrent use; per-session ordering is the store's job.
type Engine struct {
	detector   *language.Detector
	recognizer *intent.Recognizer
	extractor  *entity.Extractor
	dispatcher *response.Dispatcher
	store      session.Store
	log        *slog.Logger
}

func New(store session.Store, dispatcher *response.Dispatcher, log *slog.Logger) *Engine {
	return &Engine{
		detector:   language.NewDetector(),
		recognizer: intent.NewRecognizer(),
		extractor:  entity.NewExtractor(),
		dispatcher: dispatcher,
		store:      store,
		log:        log,
	}
}

// CreateSession starts a session for userID. Empty language or guide pick the
// defaults.
func (e *Engine) CreateSession(ctx context.Context, userID string, lang domain.Language, guideID string) (*domain.Session, error) {
	sess, err := e.store.Create(ctx, userID, lang, guideID)
	if err != nil {
		return nil, err
	}
	e.log.Info("session created", "session_id", sess.ID, "user_id", userID, "language", sess.Language, "guide", sess.Guide)
	return sess, nil
}

// ProcessTurn runs one utterance through the pipeline. Invalid input (empty
// text, unsupported language override) is rejected before the session is
// touched, so a failed turn leaves no trace in the history.
func (e *Engine) ProcessTurn(ctx context.Context, req TurnRequest) (TurnResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return TurnResult{}, domain.ErrEmptyUtterance
	}
	if req.LanguageOverride != "" && !req.LanguageOverride.Valid() {
		return TurnResult{}, domain.ErrUnsupportedLanguage
	}

	sess, err := e.store.Get(ctx, req.SessionID)
	if err != nil {
		return TurnResult{}, err
	}

	detected, confidence := e.resolveLanguage(ctx, sess, text, req.LanguageOverride)
	if err := ctx.Err(); err != nil {
		return TurnResult{}, err
	}

	// Recognize against the session language after any switch, so a confident
	// Sinhala utterance is matched with Sinhala patterns in the same turn.
	rec := e.recognizer.Recognize(text, sess.Language)
	entities := e.extractor.Extract(text)
	reply := e.dispatcher.Dispatch(sess, rec, entities, text)

	turn := domain.Turn{
		Timestamp:        time.Now().UTC(),
		UserText:         text,
		DetectedLanguage: detected,
		Intent:           rec.Intent,
		Entities:         entities,
		Reply:            reply,
	}
	if err := e.store.AppendTurn(ctx, sess.ID, turn); err != nil {
		return TurnResult{}, err
	}

	e.log.Info("turn processed",
		"session_id", sess.ID,
		"language", sess.Language,
		"detected", detected,
		"detect_confidence", confidence,
		"intent", rec.Intent,
		"confidence", rec.Confidence,
		"entities", len(entities))

	return TurnResult{
		SessionID:           sess.ID,
		Reply:               reply,
		Language:            sess.Language,
		Detected:            detected,
		DetectionConfidence: confidence,
		Intent:              rec.Intent,
		Confidence:          rec.Confidence,
		Alternatives:        rec.Alternatives,
		Entities:            entities,
	}, nil
}

// resolveLanguage applies the override or runs detection and, when the result
// clears the switch threshold, moves the session to the detected language.
// It mutates sess in place so the rest of the turn sees the new language.
// The override has already been validated by ProcessTurn.
func (e *Engine) resolveLanguage(ctx context.Context, sess *domain.Session, text string, override domain.Language) (domain.Language, float64) {
	if override != "" {
		if override != sess.Language {
			if err := e.store.SetLanguage(ctx, sess.ID, override); err != nil {
				e.log.Warn("language override not applied", "session_id", sess.ID, "language", override, "error", err)
				return sess.Language, 1.0
			}
			sess.Language = override
		}
		return override, 1.0
	}

	detected, confidence := e.detector.Detect(text)
	if detected != sess.Language && confidence > languageSwitchThreshold {
		if err := e.store.SetLanguage(ctx, sess.ID, detected); err != nil {
			e.log.Warn("language switch not applied", "session_id", sess.ID, "language", detected, "error", err)
			return detected, confidence
		}
		e.log.Info("session language switched", "session_id", sess.ID, "from", sess.Language, "to", detected, "confidence", confidence)
		sess.Language = detected
	}
	return detected, confidence
}

// SwitchLanguage explicitly changes the session language.
func (e *Engine) SwitchLanguage(ctx context.Context, sessionID string, lang domain.Language) error {
	return e.store.SetLanguage(ctx, sessionID, lang)
}

// SwitchGuide changes the active persona and returns the new guide's greeting
// in the session language.
func (e *Engine) SwitchGuide(ctx context.Context, sessionID, guideID string) (string, error) {
	if err := e.store.SetGuide(ctx, sessionID, guideID); err != nil {
		return "", err
	}
	sess, err := e.store.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	guide, _ := domain.GuideByID(sess.Guide)
	if g, ok := guide.Greeting[sess.Language]; ok {
		return g, nil
	}
	return guide.Greeting[domain.DefaultLanguage], nil
}

// Reset destroys the session. Resetting an absent session is not an error.
func (e *Engine) Reset(ctx context.Context, sessionID string) error {
	return e.store.Reset(ctx, sessionID)
}

// Sweep removes sessions idle for longer than idleFor and reports how many
// were removed.
func (e *Engine) Sweep(ctx context.Context, idleFor time.Duration) (int, error) {
	return e.store.Sweep(ctx, idleFor)
}

// History returns a copy of the session's turn history.
func (e *Engine) History(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	sess, err := e.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.History, nil
}

// Session returns a snapshot of the session.
func (e *Engine) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	return e.store.Get(ctx, sessionID)
}

// SweepLoop removes idle sessions on a fixed interval until ctx is done.
// Intended to run in its own goroutine.
func (e *Engine) SweepLoop(ctx context.Context, interval, idleFor time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := e.store.Sweep(ctx, idleFor)
			if err != nil && !errors.Is(err, context.Canceled) {
				e.log.Error("session sweep failed", "error", err)
				continue
			}
			if n > 0 {
				e.log.Info("idle sessions removed", "count", n)
			}
		}
	}
}
