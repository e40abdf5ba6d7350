package response

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/niranga/lankabot/internal/domain"
)

func TestApplyPassesThroughGreetingFarewellUnknown(t *testing.T) {
	p := NewPersonality(rand.New(rand.NewSource(1)))

	for _, intent := range []domain.Intent{domain.IntentGreeting, domain.IntentFarewell, domain.IntentUnknown} {
		out := p.Apply("base reply", intent, domain.LanguageEnglish, true)
		assert.Equal(t, "base reply", out, "intent %s", intent)
	}
}

func TestApplyKeepsBaseReply(t *testing.T) {
	p := NewPersonality(rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		out := p.Apply("the base answer", domain.IntentAttraction, domain.LanguageEnglish, true)
		assert.Contains(t, out, "the base answer")
	}
}

func TestApplyDeterministicWithPinnedSeed(t *testing.T) {
	a := NewPersonality(rand.New(rand.NewSource(7)))
	b := NewPersonality(rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		got := a.Apply("reply", domain.IntentFood, domain.LanguageEnglish, i%2 == 0)
		want := b.Apply("reply", domain.IntentFood, domain.LanguageEnglish, i%2 == 0)
		assert.Equal(t, want, got)
	}
}

func TestApplyNoPersonalTouchWithoutHistory(t *testing.T) {
	p := NewPersonality(rand.New(rand.NewSource(3)))

	for i := 0; i < 50; i++ {
		out := p.Apply("reply", domain.IntentTransport, domain.LanguageEnglish, false)
		for _, touch := range personalTouches[domain.LanguageEnglish] {
			assert.NotContains(t, out, touch)
		}
	}
}

func TestApplyFallsBackToEnglishPools(t *testing.T) {
	p := NewPersonality(rand.New(rand.NewSource(9)))

	// French has no localized pools; framing must still be well formed.
	for i := 0; i < 50; i++ {
		out := p.Apply("réponse", domain.IntentAttraction, domain.LanguageFrench, true)
		assert.Contains(t, out, "réponse")
		assert.False(t, strings.Contains(out, "%!"), "no formatting artifacts")
	}
}
