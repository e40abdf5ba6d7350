package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/niranga/lankabot/internal/config"
	"github.com/niranga/lankabot/internal/domain"
	"github.com/niranga/lankabot/internal/engine"
	"github.com/niranga/lankabot/internal/entity"
	"github.com/niranga/lankabot/internal/knowledge"
	"github.com/niranga/lankabot/internal/telegram"
)

// HandleText runs a free-form message through the conversation engine and
// replies. Registered as the default text handler, after command routing.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	text := update.Message.Text

	sess, err := h.session(ctx, chatID)
	if err != nil {
		slog.Error("text: session", "error", err, "chat_id", chatID)
		h.notifier.LogError(err, "HandleText")
		return
	}

	result, err := h.engine.ProcessTurn(ctx, engine.TurnRequest{
		SessionID: sess.ID,
		Text:      text,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyUtterance) {
			return
		}
		slog.Error("text: process turn", "error", err, "chat_id", chatID)
		h.notifier.LogError(err, "HandleText")
		return
	}

	reply := result.Reply
	if result.Intent == domain.IntentWeather && h.cfg.WeatherEnabled {
		if live := h.liveWeather(ctx, result.Entities); live != "" {
			reply += "\n\n" + live
		}
	}
	if result.Intent == domain.IntentAttraction && h.cfg.PlacesEnabled {
		if place, ok := uncuratedPlace(h.kb, result.Entities); ok {
			if summary := h.placeSummary(ctx, place); summary != "" {
				reply += "\n\n🌐 " + summary
			}
		}
	}

	if result.Intent == domain.IntentUnknown {
		h.notifier.LogUnknownUtterance(chatID, text, string(result.Language))
	}

	if err := telegram.SendLongMessage(ctx, b, chatID, reply, nil); err != nil {
		slog.Error("text: send", "error", err, "chat_id", chatID)
	}
}

// liveWeather fetches current conditions for the first city mentioned.
// Failures degrade to the static climate answer silently.
func (h *Handler) liveWeather(ctx context.Context, entities []domain.Entity) string {
	e, ok := entity.FirstOfType(entities, domain.EntityLocation)
	if !ok {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, config.CollaboratorTimeout)
	defer cancel()

	w, known, err := h.weather.Current(ctx, e.Value)
	if err != nil {
		slog.Warn("live weather lookup failed", "city", e.Value, "error", err)
		return ""
	}
	if !known {
		return ""
	}

	return fmt.Sprintf("📡 *Right now in %s:* %.0f°C, %s, wind %.0f km/h",
		titleCity(w.City), w.TemperatureC, w.Description, w.WindSpeedKmh)
}

// uncuratedPlace returns the first mentioned place the knowledge base has no
// curated record for. Those are the ones worth a live encyclopedia lookup.
func uncuratedPlace(kb *knowledge.Base, entities []domain.Entity) (string, bool) {
	for _, e := range entities {
		if e.Type != domain.EntityLocation && e.Type != domain.EntityAttraction {
			continue
		}
		if _, ok := kb.ResolveAttraction(e.Value); !ok {
			return e.Value, true
		}
	}
	return "", false
}

// placeSummary fetches a scraped summary for a place. Failures degrade to the
// static answer silently.
func (h *Handler) placeSummary(ctx context.Context, place string) string {
	ctx, cancel := context.WithTimeout(ctx, config.CollaboratorTimeout)
	defer cancel()

	summary, err := h.places.Summary(ctx, titleCity(place))
	if err != nil {
		slog.Warn("place summary lookup failed", "place", place, "error", err)
		return ""
	}
	return summary
}

func titleCity(s string) string {
	if s == "" {
		return s
	}
	out := []rune(s)
	upper := true
	for i, r := range out {
		if upper && r >= 'a' && r <= 'z' {
			out[i] = r - 32
		}
		upper = r == ' '
	}
	return string(out)
}
