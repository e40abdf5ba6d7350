package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niranga/lankabot/internal/domain"
)

func TestDetectGreetings(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		text string
		want domain.Language
	}{
		{"english", "hello there, how are you?", domain.LanguageEnglish},
		{"sinhala", "ආයුබෝවන්, ඔබට කෙසේද?", domain.LanguageSinhala},
		{"tamil", "வணக்கம், எப்படி இருக்கிறீர்கள்?", domain.LanguageTamil},
		{"chinese", "你好，你好吗？", domain.LanguageChinese},
		{"french", "bonjour, comment allez-vous?", domain.LanguageFrench},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, conf := d.Detect(tt.text)
			assert.Equal(t, tt.want, lang)
			assert.GreaterOrEqual(t, conf, 0.4, "greeting alone should score at least the greeting weight")
			assert.LessOrEqual(t, conf, 1.0)
		})
	}
}

func TestDetectEmptyInputFallsBack(t *testing.T) {
	d := NewDetector()

	for _, text := range []string{"", "   ", "\n\t"} {
		lang, conf := d.Detect(text)
		assert.Equal(t, domain.DefaultLanguage, lang)
		assert.Equal(t, 0.5, conf)
	}
}

func TestDetectPlainASCIIDefaultsToEnglish(t *testing.T) {
	d := NewDetector()

	lang, conf := d.Detect("xyzzy plugh qwertyish")
	assert.Equal(t, domain.LanguageEnglish, lang)
	assert.GreaterOrEqual(t, conf, 0.5, "ambiguous text gets the default-language boost")
}

func TestDetectMixedScript(t *testing.T) {
	d := NewDetector()

	// Tamil text with a Latin proper noun; the Tamil script share still
	// dominates.
	lang, conf := d.Detect("சீகிரியா Sigiriya பற்றி சொல்லுங்கள்")
	require.Equal(t, domain.LanguageTamil, lang)
	assert.Greater(t, conf, 0.3)
}

func TestDetectScriptScoreIsCapped(t *testing.T) {
	d := NewDetector()

	// Pure script with no keyword or greeting hits caps at the script weight.
	_, conf := d.Detect("මෙය සාමාන්‍ය වාක්‍යයකි")
	assert.LessOrEqual(t, conf, 1.0)
	assert.GreaterOrEqual(t, conf, 0.8)
}

func TestDetectConfidenceRange(t *testing.T) {
	d := NewDetector()

	inputs := []string{
		"hello", "ආයුබෝවන්", "வணக்கம்", "你好", "bonjour",
		"where can I find good food", "123456", "!!!",
	}
	for _, text := range inputs {
		_, conf := d.Detect(text)
		assert.GreaterOrEqual(t, conf, 0.0, "input %q", text)
		assert.LessOrEqual(t, conf, 1.0, "input %q", text)
	}
}
