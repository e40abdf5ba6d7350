package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/niranga/lankabot/internal/domain"
	"github.com/niranga/lankabot/internal/response"
	"github.com/niranga/lankabot/internal/telegram"
)

func (h *Handler) handleLanguage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	var rows [][]models.InlineKeyboardButton
	for _, lang := range domain.SupportedLanguages() {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         lang.Name(),
			CallbackData: "lang_" + string(lang),
		}})
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "🌐 Choose your language:",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
}

func (h *Handler) handleLanguageSelect(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}
	chatID := cb.Message.Message.Chat.ID
	lang := domain.Language(strings.TrimPrefix(cb.Data, "lang_"))

	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID})

	sess, err := h.session(ctx, chatID)
	if err != nil {
		slog.Error("language select: session", "error", err, "chat_id", chatID)
		return
	}
	if err := h.engine.SwitchLanguage(ctx, sess.ID, lang); err != nil {
		slog.Warn("language select rejected", "error", err, "language", lang, "chat_id", chatID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ That language is not available.",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "✅ " + lang.Name(),
	})
}

func (h *Handler) handleGuide(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	var rows [][]models.InlineKeyboardButton
	for _, g := range domain.AllGuides() {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         g.Name + " — " + strings.Join(g.Specialties[:2], ", "),
			CallbackData: "guide_" + g.ID,
		}})
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "🧭 Choose your guide:",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
}

func (h *Handler) handleGuideSelect(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}
	chatID := cb.Message.Message.Chat.ID
	guideID := strings.TrimPrefix(cb.Data, "guide_")

	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID})

	sess, err := h.session(ctx, chatID)
	if err != nil {
		slog.Error("guide select: session", "error", err, "chat_id", chatID)
		return
	}
	greeting, err := h.engine.SwitchGuide(ctx, sess.ID, guideID)
	if err != nil {
		slog.Warn("guide select rejected", "error", err, "guide", guideID, "chat_id", chatID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ I don't know that guide.",
		})
		return
	}

	if err := telegram.SendLongMessage(ctx, b, chatID, greeting, nil); err != nil {
		slog.Error("guide select: send", "error", err, "chat_id", chatID)
	}
}

func (h *Handler) handleReset(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	if v, ok := h.sessions.Load(chatID); ok {
		if err := h.engine.Reset(ctx, v.(string)); err != nil {
			slog.Error("reset: session", "error", err, "chat_id", chatID)
		}
		h.sessions.Delete(chatID)
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "🔄 Fresh start! Send /start when you're ready.",
	})
}

// handleSweep removes idle sessions on demand, without waiting for the
// background sweeper. Admins only.
func (h *Handler) handleSweep(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID

	if !h.cfg.IsAdmin(update.Message.From.ID) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Admins only.",
		})
		return
	}

	idleFor, err := time.ParseDuration(h.cfg.SessionTTL)
	if err != nil || idleFor <= 0 {
		idleFor = 24 * time.Hour
	}

	removed, err := h.engine.Sweep(ctx, idleFor)
	if err != nil {
		slog.Error("sweep: engine", "error", err, "chat_id", chatID)
		h.notifier.LogError(err, "handleSweep")
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("🧹 Removed %d idle sessions.", removed),
	})
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	lang := domain.DefaultLanguage
	if sess, err := h.session(ctx, chatID); err == nil {
		lang = sess.Language
	}

	if err := telegram.SendLongMessage(ctx, b, chatID, response.Template("help", lang), nil); err != nil {
		slog.Error("help: send", "error", err, "chat_id", chatID)
	}
}
