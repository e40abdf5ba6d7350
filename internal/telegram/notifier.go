package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/niranga/lankabot/internal/config"
)

// Notifier forwards operational events to an admin chat, one forum topic per
// event type. Disabled entirely when no chat is configured.
type Notifier struct {
	bot *bot.Bot
	cfg *config.Config
}

func NewNotifier(b *bot.Bot, cfg *config.Config) *Notifier {
	return &Notifier{bot: b, cfg: cfg}
}

type LogType string

const (
	LogTypeError      LogType = "error"
	LogTypeUnknown    LogType = "unknown"
	LogTypeLangGap    LogType = "langGap"
	LogTypeNewSession LogType = "newSession"
)

func (n *Notifier) Log(logType LogType, message string) {
	if n.cfg.LogTelegramChatID == 0 {
		return
	}

	topicID := n.getTopicID(logType)
	if topicID == 0 {
		return
	}

	if len([]rune(message)) > MaxMessageLen {
		message = string([]rune(message)[:MaxMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          n.cfg.LogTelegramChatID,
		Text:            message,
		ParseMode:       "Markdown",
		MessageThreadID: topicID,
	})
	if err != nil {
		slog.Error("failed to send telegram log", "type", logType, "error", err)
	}
}

func (n *Notifier) LogError(err error, context string) {
	msg := fmt.Sprintf("❌ *Error*\n\n*Context:* %s\n*Error:* `%s`\n*Time:* %s",
		context, err.Error(), time.Now().Format("2006-01-02 15:04:05"))
	n.Log(LogTypeError, msg)
}

// LogUnknownUtterance surfaces messages the recognizer could not classify, the
// raw material for extending the pattern tables.
func (n *Notifier) LogUnknownUtterance(telegramID int64, text string, language string) {
	msg := fmt.Sprintf("❓ *Unrecognized Message*\n\n*User:* `%d`\n*Language:* %s\n*Text:* %s",
		telegramID, language, text)
	n.Log(LogTypeUnknown, msg)
}

// LogLocalizationGap reports a reply served in the fallback language because
// the template family has no localization yet.
func (n *Notifier) LogLocalizationGap(language string, family string) {
	msg := fmt.Sprintf("🌐 *Localization Gap*\n\n*Language:* %s\n*Template:* %s", language, family)
	n.Log(LogTypeLangGap, msg)
}

func (n *Notifier) LogNewSession(telegramID int64, name string, language string) {
	msg := fmt.Sprintf("👤 *New Session*\n\n*ID:* `%d`\n*Name:* %s\n*Language:* %s",
		telegramID, name, language)
	n.Log(LogTypeNewSession, msg)
}

func (n *Notifier) getTopicID(logType LogType) int {
	switch logType {
	case LogTypeError:
		return n.cfg.LogTopicError
	case LogTypeUnknown:
		return n.cfg.LogTopicUnknown
	case LogTypeLangGap:
		return n.cfg.LogTopicLangGap
	case LogTypeNewSession:
		return n.cfg.LogTopicNewSession
	default:
		return 0
	}
}
