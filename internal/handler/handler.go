package handler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-telegram/bot"

	"github.com/niranga/lankabot/internal/config"
	"github.com/niranga/lankabot/internal/domain"
	"github.com/niranga/lankabot/internal/engine"
	"github.com/niranga/lankabot/internal/knowledge"
	"github.com/niranga/lankabot/internal/service"
	"github.com/niranga/lankabot/internal/telegram"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot      *bot.Bot
	cfg      *config.Config
	engine   *engine.Engine
	kb       *knowledge.Base
	weather  *service.WeatherService
	places   *service.PlacesService
	notifier *telegram.Notifier

	// sessions maps chat ID to session ID. Sessions are recreated on demand
	// after a sweep or restart, so losing this map is harmless.
	sessions sync.Map
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot      *bot.Bot
	Cfg      *config.Config
	Engine   *engine.Engine
	KB       *knowledge.Base
	Weather  *service.WeatherService
	Places   *service.PlacesService
	Notifier *telegram.Notifier
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:      deps.Bot,
		cfg:      deps.Cfg,
		engine:   deps.Engine,
		kb:       deps.KB,
		weather:  deps.Weather,
		places:   deps.Places,
		notifier: deps.Notifier,
	}
}

// Register wires all command and callback handlers.
func (h *Handler) Register() {
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/language", bot.MatchTypePrefix, h.handleLanguage)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/guide", bot.MatchTypePrefix, h.handleGuide)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/reset", bot.MatchTypePrefix, h.handleReset)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.handleHelp)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/sweep", bot.MatchTypePrefix, h.handleSweep)

	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "lang_", bot.MatchTypePrefix, h.handleLanguageSelect)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "guide_", bot.MatchTypePrefix, h.handleGuideSelect)
}

// session returns the chat's session, creating one when the chat has none or
// its previous session was swept.
func (h *Handler) session(ctx context.Context, chatID int64) (*domain.Session, error) {
	if v, ok := h.sessions.Load(chatID); ok {
		sess, err := h.engine.Session(ctx, v.(string))
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return nil, err
		}
		h.sessions.Delete(chatID)
	}

	// Configured defaults apply only when valid; the store falls back to its
	// own defaults for empty values.
	lang := domain.Language(h.cfg.DefaultLanguage)
	if !lang.Valid() {
		lang = ""
	}
	guideID := h.cfg.DefaultGuide
	if !domain.KnownGuide(guideID) {
		guideID = ""
	}

	sess, err := h.engine.CreateSession(ctx, fmt.Sprintf("tg:%d", chatID), lang, guideID)
	if err != nil {
		return nil, err
	}
	h.sessions.Store(chatID, sess.ID)
	h.notifier.LogNewSession(chatID, "", string(sess.Language))
	return sess, nil
}
