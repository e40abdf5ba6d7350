package language

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/niranga/lankabot/internal/domain"
)

const (
	scriptCap   = 0.8
	keywordCap  = 0.6
	greetingHit = 0.4

	// Below this winning score detection is considered too noisy and the
	// result degrades to the default language.
	confidenceFloor = 0.3

	fallbackConfidence = 0.5
)

type compiledProfile struct {
	profile
	greetingRe []*regexp.Regexp
}

// Detector scores an utterance against the static per-language tables and
// picks the most likely language. It holds no mutable state.
type Detector struct {
	profiles []compiledProfile
}

// NewDetector compiles the detection tables. Patterns that fail to compile
// are dropped with a warning rather than aborting startup.
func NewDetector() *Detector {
	d := &Detector{}
	for _, p := range profiles {
		cp := compiledProfile{profile: p}
		for _, pat := range p.greetings {
			re, err := regexp.Compile(pat)
			if err != nil {
				slog.Warn("skipping malformed greeting pattern", "language", p.lang, "pattern", pat, "error", err)
				continue
			}
			cp.greetingRe = append(cp.greetingRe, re)
		}
		d.profiles = append(d.profiles, cp)
	}
	return d
}

// Detect returns the most likely language of text and a confidence in [0,1].
// Empty or whitespace-only input returns the default language without running
// detection.
func (d *Detector) Detect(text string) (domain.Language, float64) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.DefaultLanguage, fallbackConfidence
	}

	lower := strings.ToLower(text)
	scores := make(map[domain.Language]float64, len(d.profiles))

	for _, p := range d.profiles {
		score := min(d.scriptScore(text, p), scriptCap) +
			min(keywordScore(lower, p.keywords), keywordCap)
		for _, re := range p.greetingRe {
			if re.MatchString(text) {
				score += greetingHit
				break
			}
		}
		scores[p.lang] = min(score, 1.0)
	}

	// Short or ambiguous text should degrade to the default language rather
	// than to a low-confidence non-default guess.
	othersBelowFloor := true
	for lang, s := range scores {
		if lang != domain.DefaultLanguage && s >= confidenceFloor {
			othersBelowFloor = false
			break
		}
	}
	if othersBelowFloor {
		scores[domain.DefaultLanguage] = max(scores[domain.DefaultLanguage], fallbackConfidence)
	}

	best := domain.DefaultLanguage
	bestScore := 0.0
	for _, p := range d.profiles {
		if s := scores[p.lang]; s > bestScore {
			best, bestScore = p.lang, s
		}
	}

	if bestScore < confidenceFloor {
		return domain.DefaultLanguage, fallbackConfidence
	}
	return best, bestScore
}

// scriptScore is the proportion of letters falling in the language's script
// range. Languages without a distinguishing script score zero.
func (d *Detector) scriptScore(text string, p compiledProfile) float64 {
	if p.scriptHi == 0 {
		return 0
	}
	inRange, letters := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if r >= p.scriptLo && r <= p.scriptHi {
			inRange++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(inRange) / float64(letters)
}

func keywordScore(lower string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return float64(hits) / float64(len(keywords))
}
