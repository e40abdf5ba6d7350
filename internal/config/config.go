package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken string `env:"BOT_TOKEN,required"`

	// Conversation defaults
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	DefaultGuide    string `env:"DEFAULT_GUIDE" envDefault:"saru"`
	HistoryLimit    int    `env:"HISTORY_LIMIT" envDefault:"50"`

	// Session backend: memory, redis or postgres
	SessionBackend string `env:"SESSION_BACKEND" envDefault:"memory"`
	SessionTTL     string `env:"SESSION_TTL" envDefault:"24h"`

	// Redis (SESSION_BACKEND=redis)
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Postgres (SESSION_BACKEND=postgres)
	DatabaseURL string `env:"DATABASE_URL"`

	// Personalization. A fixed seed makes persona framing reproducible;
	// zero seeds from the clock.
	PersonalitySeed int64 `env:"PERSONALITY_SEED" envDefault:"0"`

	// Live data
	WeatherEnabled bool `env:"WEATHER_ENABLED" envDefault:"true"`
	PlacesEnabled  bool `env:"PLACES_ENABLED" envDefault:"false"`

	// Admin
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`

	// Telegram logging
	LogTelegramChatID   int64 `env:"LOG_TELEGRAM_CHAT_ID"`
	LogTopicError       int   `env:"LOG_TOPIC_ERROR"`
	LogTopicUnknown     int   `env:"LOG_TOPIC_UNKNOWN"`
	LogTopicLangGap     int   `env:"LOG_TOPIC_LANG_GAP"`
	LogTopicNewSession  int   `env:"LOG_TOPIC_NEW_SESSION"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
