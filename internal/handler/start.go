package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/niranga/lankabot/internal/domain"
	"github.com/niranga/lankabot/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	sess, err := h.session(ctx, chatID)
	if err != nil {
		slog.Error("start: session", "error", err, "chat_id", chatID)
		h.notifier.LogError(err, "handleStart")
		return
	}

	guide, _ := domain.GuideByID(sess.Guide)
	greeting, ok := guide.Greeting[sess.Language]
	if !ok {
		greeting = guide.Greeting[domain.DefaultLanguage]
	}

	text := fmt.Sprintf(
		"%s\n\n"+
			"📋 *Commands:*\n"+
			"/language — Change language\n"+
			"/guide — Choose your guide\n"+
			"/reset — Start over\n"+
			"/help — What I can do\n\n"+
			"Just send a message to start planning your trip! 🇱🇰",
		greeting,
	)

	if err := telegram.SendLongMessage(ctx, b, chatID, text, nil); err != nil {
		slog.Error("start: send", "error", err, "chat_id", chatID)
	}
}
