package engine

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niranga/lankabot/internal/domain"
	"github.com/niranga/lankabot/internal/knowledge"
	"github.com/niranga/lankabot/internal/response"
	"github.com/niranga/lankabot/internal/session"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	store, err := session.NewStore(session.StoreTypeMemory)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	dispatcher := response.NewDispatcher(knowledge.NewBase(),
		response.NewPersonality(rand.New(rand.NewSource(1))))
	return New(store, dispatcher, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestProcessTurnGreeting(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	sess, err := e.CreateSession(ctx, "user-1", "", "")
	require.NoError(t, err)

	result, err := e.ProcessTurn(ctx, TurnRequest{SessionID: sess.ID, Text: "Hello!"})
	require.NoError(t, err)

	assert.Equal(t, domain.IntentGreeting, result.Intent)
	assert.Equal(t, domain.LanguageEnglish, result.Language)
	assert.Contains(t, result.Reply, "Saru")
	assert.Greater(t, result.Confidence, 0.0)

	history, err := e.History(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Hello!", history[0].UserText)
	assert.Equal(t, result.Reply, history[0].Reply)
}

func TestProcessTurnEmptyUtterance(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	sess, err := e.CreateSession(ctx, "user-1", "", "")
	require.NoError(t, err)

	for _, text := range []string{"", "   ", "\n"} {
		_, err := e.ProcessTurn(ctx, TurnRequest{SessionID: sess.ID, Text: text})
		assert.ErrorIs(t, err, domain.ErrEmptyUtterance)
	}

	history, err := e.History(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, history, "rejected turns leave no trace")
}

func TestProcessTurnAbsentSession(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.ProcessTurn(context.Background(), TurnRequest{SessionID: "missing", Text: "hi"})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestProcessTurnMultiTurn(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	sess, err := e.CreateSession(ctx, "user-1", "", "")
	require.NoError(t, err)

	first, err := e.ProcessTurn(ctx, TurnRequest{SessionID: sess.ID, Text: "Tell me about Sigiriya"})
	require.NoError(t, err)
	assert.Equal(t, domain.IntentAttraction, first.Intent)
	assert.Contains(t, first.Reply, "Sigiriya Rock Fortress")

	second, err := e.ProcessTurn(ctx, TurnRequest{SessionID: sess.ID, Text: "What about Kandy?"})
	require.NoError(t, err)
	assert.Equal(t, domain.IntentAttraction, second.Intent)
	assert.Contains(t, second.Reply, "Temple of the Tooth")

	history, err := e.History(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Tell me about Sigiriya", history[0].UserText)
	assert.Equal(t, "What about Kandy?", history[1].UserText)
}

func TestProcessTurnSwitchesLanguageOnConfidentDetection(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	sess, err := e.CreateSession(ctx, "user-1", "", "")
	require.NoError(t, err)
	require.Equal(t, domain.LanguageEnglish, sess.Language)

	result, err := e.ProcessTurn(ctx, TurnRequest{SessionID: sess.ID, Text: "ආයුබෝවන්! ඔබට කෙසේද?"})
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageSinhala, result.Language)
	assert.Equal(t, domain.LanguageSinhala, result.Detected)
	assert.Greater(t, result.DetectionConfidence, 0.7)

	got, err := e.Session(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageSinhala, got.Language, "switch persists across turns")
}

func TestProcessTurnKeepsLanguageOnWeakDetection(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	sess, err := e.CreateSession(ctx, "user-1", domain.LanguageSinhala, "")
	require.NoError(t, err)

	// Plain numbers give detection nothing to work with.
	result, err := e.ProcessTurn(ctx, TurnRequest{SessionID: sess.ID, Text: "12345 67890"})
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageSinhala, result.Language)
}

func TestProcessTurnLanguageOverride(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	sess, err := e.CreateSession(ctx, "user-1", "", "")
	require.NoError(t, err)

	result, err := e.ProcessTurn(ctx, TurnRequest{
		SessionID:        sess.ID,
		Text:             "hello there",
		LanguageOverride: domain.LanguageTamil,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageTamil, result.Language)
}

func TestProcessTurnRejectsInvalidOverride(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	sess, err := e.CreateSession(ctx, "user-1", "", "")
	require.NoError(t, err)

	_, err = e.ProcessTurn(ctx, TurnRequest{
		SessionID:        sess.ID,
		Text:             "hello",
		LanguageOverride: domain.Language("xx"),
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)

	got, err := e.Session(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, got.History, "rejected turns leave no trace")
	assert.Equal(t, domain.LanguageEnglish, got.Language)
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	stale, err := e.CreateSession(ctx, "user-stale", "", "")
	require.NoError(t, err)
	require.NoError(t, e.store.AppendTurn(ctx, stale.ID, domain.Turn{
		Timestamp: time.Now().Add(-2 * time.Hour),
		UserText:  "old",
	}))

	active, err := e.CreateSession(ctx, "user-active", "", "")
	require.NoError(t, err)
	_, err = e.ProcessTurn(ctx, TurnRequest{SessionID: active.ID, Text: "hello"})
	require.NoError(t, err)

	removed, err := e.Sweep(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = e.Session(ctx, stale.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = e.Session(ctx, active.ID)
	assert.NoError(t, err)
}

func TestSwitchGuideReturnsLocalizedGreeting(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	sess, err := e.CreateSession(ctx, "user-1", domain.LanguageSinhala, "")
	require.NoError(t, err)

	greeting, err := e.SwitchGuide(ctx, sess.ID, "anjali")
	require.NoError(t, err)
	assert.Contains(t, greeting, "අංජලි")

	_, err = e.SwitchGuide(ctx, sess.ID, "nobody")
	assert.ErrorIs(t, err, domain.ErrUnknownGuide)
}

func TestResetDestroysSession(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	sess, err := e.CreateSession(ctx, "user-1", "", "")
	require.NoError(t, err)

	require.NoError(t, e.Reset(ctx, sess.ID))
	_, err = e.ProcessTurn(ctx, TurnRequest{SessionID: sess.ID, Text: "hello"})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
