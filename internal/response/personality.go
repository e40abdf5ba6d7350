package response

import (
	"math/rand"
	"sync"

	"github.com/niranga/lankabot/internal/domain"
)

// Framing probabilities. Base template selection is deterministic; only this
// layer varies turn to turn.
const (
	enthusiasmChance    = 0.6
	insightChance       = 0.3
	encouragementChance = 0.4
	personalTouchChance = 0.3
)

// Personality wraps base replies with guide-flavored framing. The random
// source is injected at construction so tests can pin the seed.
type Personality struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPersonality(rng *rand.Rand) *Personality {
	return &Personality{rng: rng}
}

var enthusiasm = map[domain.Language][]string{
	domain.LanguageEnglish: {
		"Oh, that's a fantastic choice!",
		"Excellent question! Let me tell you all about it.",
		"I'm so excited you asked about that!",
		"That's one of my favorite topics!",
	},
	domain.LanguageSinhala: {
		"ඔව්, ඒක නියම තේරීමක්!",
		"පුදුම ප්‍රශ්නයක්! මම ඒ ගැන සියල්ලම කියන්නම්.",
	},
	domain.LanguageTamil: {
		"ஆம், அது ஒரு அருமையான தேர்வு!",
		"சிறந்த கேள்வி! அதைப் பற்றி எல்லாம் சொல்கிறேன்.",
	},
}

var culturalInsights = map[domain.Language][]string{
	domain.LanguageEnglish: {
		"Pro tip: Visit early morning to avoid crowds!",
		"Local secret: Try the street food near the temple!",
		"Insider tip: Ask for the 'local price' not tourist price!",
		"My recommendation: Go during the off-season for better deals!",
	},
	domain.LanguageSinhala: {
		"ස්ථානීය රහස: දේවාලය අසල තිබෙන වීදි ආහාර උත්සාහ කරන්න!",
	},
	domain.LanguageTamil: {
		"உள்ளூர் இரகசியம்: கோவிலுக்கு அருகே உள்ள தெரு உணவை முயற்சிக்கவும்!",
	},
}

var encouragements = map[domain.Language][]string{
	domain.LanguageEnglish: {
		"You're going to love it!",
		"Trust me, you won't be disappointed!",
		"This is definitely worth your time!",
	},
	domain.LanguageSinhala: {
		"ඔබට ඒක ගොඩක් ආස වෙයි!",
		"මාව විශ්වාස කරන්න, ඔබට කලකිරීමක් නොවේවි!",
	},
	domain.LanguageTamil: {
		"நீங்கள் அதை விரும்புவீர்கள்!",
	},
}

var personalTouches = map[domain.Language][]string{
	domain.LanguageEnglish: {
		"I remember when I first visited there...",
		"Let me share a little secret with you...",
		"From my experience as a local guide...",
	},
	domain.LanguageSinhala: {
		"මම මුලින්ම එතැනට ගිය විට මතකයි...",
	},
	domain.LanguageTamil: {
		"நான் முதலில் அங்கு சென்றபோது நினைவிருக்கிறது...",
	},
}

// Apply layers persona framing onto base. Greeting and farewell replies are
// already persona-voiced and unknown replies should stay plain, so those pass
// through untouched.
func (p *Personality) Apply(base string, intent domain.Intent, lang domain.Language, hasHistory bool) string {
	switch intent {
	case domain.IntentGreeting, domain.IntentFarewell, domain.IntentUnknown:
		return base
	}

	out := base

	switch intent {
	case domain.IntentAttraction, domain.IntentFood, domain.IntentTransport,
		domain.IntentAccommodation, domain.IntentWeather:
		if p.roll(enthusiasmChance) {
			out = pick(p, enthusiasm, lang) + " " + out
		}
	}

	if intent == domain.IntentAttraction || intent == domain.IntentFood {
		if p.roll(insightChance) {
			out += "\n\n💡 " + pick(p, culturalInsights, lang)
		}
	}

	if hasHistory && p.roll(personalTouchChance) {
		out += "\n\n" + pick(p, personalTouches, lang)
	}

	if p.roll(encouragementChance) {
		out += "\n\n✨ " + pick(p, encouragements, lang)
	}

	return out
}

func (p *Personality) roll(chance float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() < chance
}

func pick(p *Personality, pool map[domain.Language][]string, lang domain.Language) string {
	phrases, ok := pool[lang]
	if !ok || len(phrases) == 0 {
		phrases = pool[domain.LanguageEnglish]
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return phrases[p.rng.Intn(len(phrases))]
}
