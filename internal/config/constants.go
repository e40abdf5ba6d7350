package config

import "time"

const (
	// SweepInterval is how often idle sessions are collected.
	SweepInterval = 30 * time.Minute

	// RateLimitPerMinute caps text messages per chat.
	RateLimitPerMinute = 20

	// CollaboratorTimeout bounds calls to external data services.
	CollaboratorTimeout = 10 * time.Second
)
