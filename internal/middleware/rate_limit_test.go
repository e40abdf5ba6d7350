package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterAllowsUpToLimit(t *testing.T) {
	l := &limiter{limit: 3, hits: make(map[int64][]time.Time)}
	now := time.Now()

	assert.True(t, l.allow(1, now))
	assert.True(t, l.allow(1, now))
	assert.True(t, l.allow(1, now))
	assert.False(t, l.allow(1, now))
}

func TestLimiterIsPerChat(t *testing.T) {
	l := &limiter{limit: 1, hits: make(map[int64][]time.Time)}
	now := time.Now()

	assert.True(t, l.allow(1, now))
	assert.False(t, l.allow(1, now))
	assert.True(t, l.allow(2, now))
}

func TestLimiterWindowSlides(t *testing.T) {
	l := &limiter{limit: 1, hits: make(map[int64][]time.Time)}
	now := time.Now()

	assert.True(t, l.allow(1, now))
	assert.False(t, l.allow(1, now.Add(30*time.Second)))
	assert.True(t, l.allow(1, now.Add(61*time.Second)))
}
