package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessageShortText(t *testing.T) {
	parts := SplitMessage("hello", MaxMessageLen)
	assert.Equal(t, []string{"hello"}, parts)
}

func TestSplitMessageLongText(t *testing.T) {
	text := strings.Repeat("word ", 2000)
	parts := SplitMessage(text, MaxMessageLen)

	require.Greater(t, len(parts), 1)
	for _, part := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(part), MaxMessageLen)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestSplitMessagePrefersNewlines(t *testing.T) {
	line := strings.Repeat("x", 100) + "\n"
	text := strings.Repeat(line, 50)
	parts := SplitMessage(text, 1000)

	require.Greater(t, len(parts), 1)
	for _, part := range parts[:len(parts)-1] {
		assert.True(t, strings.HasSuffix(part, "\n"), "chunks end at line boundaries")
	}
}

func TestSplitMessageMultibyte(t *testing.T) {
	text := strings.Repeat("සීගිරිය ", 1500)
	parts := SplitMessage(text, MaxMessageLen)

	assert.Equal(t, text, strings.Join(parts, ""))
	for _, part := range parts {
		assert.True(t, utf8.ValidString(part), "splits never land mid-rune")
	}
}

func TestSplitMessageMultibyteWithNewlines(t *testing.T) {
	// A newline late in the first chunk of multi-byte text; the newline
	// position must be found in rune space, not byte space.
	text := strings.Repeat("ස", MaxMessageLen-1) + "\n" + strings.Repeat("ස", 10)
	parts := SplitMessage(text, MaxMessageLen)

	require.Len(t, parts, 2)
	assert.True(t, strings.HasSuffix(parts[0], "\n"))
	assert.Equal(t, text, strings.Join(parts, ""))
	for _, part := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(part), MaxMessageLen)
		assert.True(t, utf8.ValidString(part))
	}
}
