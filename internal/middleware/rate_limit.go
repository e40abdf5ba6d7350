package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// limiter tracks per-chat message timestamps over a sliding one-minute window.
type limiter struct {
	mu    sync.Mutex
	limit int
	hits  map[int64][]time.Time
}

func (l *limiter) allow(chatID int64, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-time.Minute)
	recent := l.hits[chatID][:0]
	for _, t := range l.hits[chatID] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) >= l.limit {
		l.hits[chatID] = recent
		return false
	}
	l.hits[chatID] = append(recent, now)
	return true
}

// RateLimit returns middleware that caps text messages per chat per minute.
// Commands and callbacks pass through unthrottled.
func RateLimit(perMinute int) bot.Middleware {
	l := &limiter{limit: perMinute, hits: make(map[int64][]time.Time)}

	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID
			if !l.allow(chatID, time.Now()) {
				slog.Debug("rate limited", "chat_id", chatID, "limit", l.limit)
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   "⏳ Too many messages, give me a moment to catch up.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}
