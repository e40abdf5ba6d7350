package intent

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/niranga/lankabot/internal/domain"
)

const (
	maxAlternatives    = 3
	alternativesCutoff = 0.3

	followUpConfidence      = 0.8
	clarificationConfidence = 0.9
	confirmationConfidence  = 0.8
)

type contextRule struct {
	re         *regexp.Regexp
	intent     domain.Intent
	confidence float64
}

// Recognizer fuses three independent signal detectors (pattern match,
// keyword weight, contextual heuristics) into a single intent with a
// normalized confidence and ranked alternatives. Recognition is fully
// deterministic.
type Recognizer struct {
	patterns map[domain.Intent]map[domain.Language][]*regexp.Regexp
	rules    []contextRule
}

// NewRecognizer compiles the detector tables. Malformed patterns are dropped
// with a warning so one bad entry cannot poison a whole intent.
func NewRecognizer() *Recognizer {
	r := &Recognizer{
		patterns: make(map[domain.Intent]map[domain.Language][]*regexp.Regexp),
	}
	for intent, perLang := range patterns {
		r.patterns[intent] = make(map[domain.Language][]*regexp.Regexp)
		for lang, pats := range perLang {
			for _, pat := range pats {
				re, err := regexp.Compile(pat)
				if err != nil {
					slog.Warn("skipping malformed intent pattern", "intent", intent, "language", lang, "error", err)
					continue
				}
				r.patterns[intent][lang] = append(r.patterns[intent][lang], re)
			}
		}
	}

	r.rules = []contextRule{
		{regexp.MustCompile(`\b(also|too|as well|additionally)\b`), domain.IntentFollowUp, followUpConfidence},
		{regexp.MustCompile(`what do you mean|can you explain|i don't understand`), domain.IntentClarification, clarificationConfidence},
		{regexp.MustCompile(`is that right|are you sure|\breally\b`), domain.IntentConfirmation, confirmationConfidence},
	}
	return r
}

type signal struct {
	intent domain.Intent
	score  float64
}

// Recognize classifies text, using the language's pattern set with an English
// fallback. When no detector fires it runs a keyword-only secondary pass
// before settling on unknown.
func (r *Recognizer) Recognize(text string, lang domain.Language) domain.Recognition {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return domain.Recognition{Intent: domain.IntentUnknown}
	}

	var signals []signal
	if s, ok := r.detectByPatterns(lower, lang); ok {
		signals = append(signals, s)
	}
	if s, ok := detectByKeywords(lower); ok {
		signals = append(signals, s)
	}
	if s, ok := r.detectByContext(lower); ok {
		signals = append(signals, s)
	}

	if len(signals) == 0 {
		return secondaryKeywordPass(lower)
	}

	fused := make(map[domain.Intent]float64, len(signals))
	total := 0.0
	for _, s := range signals {
		fused[s.intent] += s.score
		total += s.score
	}

	ranked := make([]domain.ScoredIntent, 0, len(fused))
	for intent, score := range fused {
		ranked = append(ranked, domain.ScoredIntent{Intent: intent, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Intent < ranked[j].Intent
	})

	best := ranked[0]
	var alternatives []domain.ScoredIntent
	for _, alt := range ranked[1:] {
		if alt.Score < alternativesCutoff {
			continue
		}
		alternatives = append(alternatives, alt)
		if len(alternatives) == maxAlternatives {
			break
		}
	}

	// Normalizing by the sum of contributions keeps confidence in [0,1] and
	// makes it reflect cross-detector agreement rather than raw magnitude.
	return domain.Recognition{
		Intent:       best.Intent,
		Confidence:   best.Score / total,
		Alternatives: alternatives,
	}
}

// detectByPatterns keeps the single best intent by match density: total
// pattern hits divided by the intent's pattern count, capped at 1.
func (r *Recognizer) detectByPatterns(lower string, lang domain.Language) (signal, bool) {
	best := signal{}
	for intent, perLang := range r.patterns {
		pats := perLang[lang]
		if len(pats) == 0 {
			pats = perLang[domain.LanguageEnglish]
		}
		if len(pats) == 0 {
			continue
		}
		matches := 0
		for _, re := range pats {
			matches += len(re.FindAllStringIndex(lower, -1))
		}
		if matches == 0 {
			continue
		}
		score := min(float64(matches)/float64(len(pats)), 1.0)
		if score > best.score || (score == best.score && intent < best.intent) {
			best = signal{intent: intent, score: score}
		}
	}
	return best, best.score > 0
}

func detectByKeywords(lower string) (signal, bool) {
	best := signal{}
	for intent, list := range keywords {
		hits := 0
		for _, kw := range list {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		score := float64(hits) / float64(len(list))
		if score > best.score || (score == best.score && intent < best.intent) {
			best = signal{intent: intent, score: score}
		}
	}
	return best, best.score > 0
}

func (r *Recognizer) detectByContext(lower string) (signal, bool) {
	for _, rule := range r.rules {
		if rule.re.MatchString(lower) {
			return signal{intent: rule.intent, score: rule.confidence}, true
		}
	}
	return signal{}, false
}

func secondaryKeywordPass(lower string) domain.Recognition {
	best := signal{}
	for intent, list := range fallbackKeywords {
		hits := 0
		for _, kw := range list {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		score := float64(hits) / float64(len(list))
		if score > best.score || (score == best.score && intent < best.intent) {
			best = signal{intent: intent, score: score}
		}
	}
	if best.score == 0 {
		return domain.Recognition{Intent: domain.IntentUnknown}
	}
	return domain.Recognition{Intent: best.intent, Confidence: best.score}
}
