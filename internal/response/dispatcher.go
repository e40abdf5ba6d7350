package response

import (
	"fmt"
	"strings"

	"github.com/niranga/lankabot/internal/domain"
	"github.com/niranga/lankabot/internal/entity"
	"github.com/niranga/lankabot/internal/knowledge"
)

// Dispatcher maps a recognized intent, the session state and the extracted
// entities to a reply. Base template selection is deterministic; the
// personalization layer on top is not.
type Dispatcher struct {
	kb    *knowledge.Base
	pers  *Personality
	onGap func(language, family string)
}

func NewDispatcher(kb *knowledge.Base, pers *Personality) *Dispatcher {
	return &Dispatcher{kb: kb, pers: pers}
}

// OnLocalizationGap registers a callback fired whenever a template family had
// no localization for the session language and the default language was
// served instead. Set it before the dispatcher starts handling turns.
func (d *Dispatcher) OnLocalizationGap(fn func(language, family string)) {
	d.onGap = fn
}

// text resolves a template family and reports the gap when the session
// language fell back to the default.
func (d *Dispatcher) text(family string, lang domain.Language) string {
	s, localized := lookupCheck(family, lang)
	if !localized && lang != domain.DefaultLanguage && d.onGap != nil {
		d.onGap(string(lang), family)
	}
	return s
}

// Dispatch builds the reply for one turn. text is the raw utterance, used
// only by the knowledge-base search behind unknown classifications.
func (d *Dispatcher) Dispatch(sess *domain.Session, rec domain.Recognition, entities []domain.Entity, text string) string {
	lang := sess.Language
	guide, _ := domain.GuideByID(sess.Guide)

	var base string
	switch rec.Intent {
	case domain.IntentGreeting:
		base = d.buildGreeting(guide, lang)
	case domain.IntentFarewell:
		base = fmt.Sprintf(d.text("farewell", lang), guide.Name)
	case domain.IntentAttraction:
		base = d.buildAttraction(lang, entities)
	case domain.IntentFood:
		base = d.buildFood(lang, entities)
	case domain.IntentTransport:
		base = d.text("transport", lang)
	case domain.IntentAccommodation:
		base = d.buildAccommodation(lang, entities)
	case domain.IntentWeather:
		base = d.text("weather", lang)
	case domain.IntentHelp:
		base = d.text("help", lang)
	case domain.IntentFollowUp:
		base = d.text("followup", lang)
	case domain.IntentClarification:
		base = d.text("clarification", lang)
	case domain.IntentConfirmation:
		base = d.text("confirmation", lang)
	default:
		base = d.buildUnknown(lang, text)
	}

	return d.pers.Apply(base, rec.Intent, lang, len(sess.History) > 0)
}

func (d *Dispatcher) buildGreeting(guide domain.Guide, lang domain.Language) string {
	if g, ok := guide.Greeting[lang]; ok {
		return g
	}
	return guide.Greeting[domain.DefaultLanguage]
}

// buildAttraction answers about the specific places mentioned, or falls back
// to the general must-see list when no known place was extracted.
func (d *Dispatcher) buildAttraction(lang domain.Language, entities []domain.Entity) string {
	var parts []string
	seen := make(map[string]struct{})
	for _, e := range entities {
		if e.Type != domain.EntityLocation && e.Type != domain.EntityAttraction {
			continue
		}
		key, ok := d.kb.ResolveAttraction(e.Value)
		if !ok {
			continue
		}
		// The same place often surfaces as both a location and an attraction.
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		a, found, _ := d.kb.Attraction(key, lang)
		if !found {
			continue
		}
		parts = append(parts, fmt.Sprintf(d.text("attraction_detail", lang),
			a.Name, a.Description, a.Location, a.BestTime, a.EntryFee, a.Tips))
	}
	if len(parts) == 0 {
		return d.text("attraction_general", lang)
	}
	return strings.Join(parts, "\n\n")
}

func (d *Dispatcher) buildFood(lang domain.Language, entities []domain.Entity) string {
	if e, ok := entity.FirstOfType(entities, domain.EntityFood); ok {
		return fmt.Sprintf(d.text("food_detail", lang), titleCase(e.Value)) +
			"\n\n" + d.text("food", lang)
	}
	return d.text("food", lang)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// buildAccommodation picks a budget tier when the utterance carried a budget
// signal, otherwise the general overview.
func (d *Dispatcher) buildAccommodation(lang domain.Language, entities []domain.Entity) string {
	e, ok := entity.FirstOfType(entities, domain.EntityBudget)
	if !ok {
		return d.text("accommodation", lang)
	}
	if entity.IsLowBudget(e.Value) {
		return d.text("accommodation_budget", lang)
	}
	if strings.Contains(e.Value, "luxury") || strings.Contains(e.Value, "expensive") {
		return d.text("accommodation_luxury", lang)
	}
	if b, ok := entity.ParseBudget(e.Value); ok {
		return fmt.Sprintf("With around %s %s a night you have plenty of choice.\n\n",
			b.Amount.StringFixed(0), b.Currency) + d.text("accommodation", lang)
	}
	return d.text("accommodation", lang)
}

// buildUnknown tries a knowledge-base search before the generic fallback.
func (d *Dispatcher) buildUnknown(lang domain.Language, text string) string {
	results := d.kb.Search(text, lang)
	if len(results) == 0 {
		return d.text("unknown", lang)
	}
	parts := []string{d.text("search_results", lang)}
	for _, a := range results {
		parts = append(parts, fmt.Sprintf("📍 **%s** - %s", a.Name, a.Description))
	}
	return strings.Join(parts, "\n\n")
}
