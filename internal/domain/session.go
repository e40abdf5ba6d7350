package domain

import "time"

// Turn is one completed exchange appended to the session history.
type Turn struct {
	Timestamp        time.Time `json:"timestamp"`
	UserText         string    `json:"user_text"`
	DetectedLanguage Language  `json:"detected_language"`
	Intent           Intent    `json:"intent"`
	Entities         []Entity  `json:"entities,omitempty"`
	Reply            string    `json:"reply"`
}

// Session is the per-conversation state carried across turns. It is the only
// long-lived mutable record in the engine; hosts that persist sessions must
// serialize it as-is.
type Session struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Language        Language  `json:"language"`
	Guide           string    `json:"guide"`
	History         []Turn    `json:"history"`
	CreatedAt       time.Time `json:"created_at"`
	LastInteraction time.Time `json:"last_interaction"`
}

// Clone returns a deep copy so callers can inspect a session without holding
// store locks.
func (s *Session) Clone() *Session {
	c := *s
	c.History = make([]Turn, len(s.History))
	copy(c.History, s.History)
	for i, t := range c.History {
		if len(t.Entities) > 0 {
			ents := make([]Entity, len(t.Entities))
			copy(ents, t.Entities)
			c.History[i].Entities = ents
		}
	}
	return &c
}
