package entity

import (
	"strings"

	"github.com/niranga/lankabot/internal/domain"
)

var cities = []string{
	"colombo", "kandy", "galle", "jaffna", "batticaloa", "matara", "negombo",
	"nuwara eliya", "ella", "sigiriya", "dambulla", "anuradhapura", "polonnaruwa",
	"trincomalee", "bentota", "hikkaduwa", "mirissa", "unawatuna", "arugam bay",
}

var attractions = []string{
	"sigiriya", "temple of the tooth", "galle fort", "yala national park",
	"horton plains", "adams peak", "nine arch bridge", "royal botanical gardens",
	"pinnawala elephant orphanage", "dambulla cave temple",
}

var foods = []string{
	"rice and curry", "hoppers", "string hoppers", "kottu", "roti", "sambol",
	"fish curry", "watalappan", "pol sambol",
}

// wordList builds an alternation of literal phrases anchored on word
// boundaries, longest first so multi-word phrases win over their prefixes.
func wordList(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if len(sorted[j]) > len(sorted[i]) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	return `\b(` + strings.Join(sorted, "|") + `)\b`
}

// typePatterns maps each entity type to its regular expressions. Patterns run
// over the lowercased utterance.
var typePatterns = map[domain.EntityType][]string{
	domain.EntityLocation:   {wordList(cities)},
	domain.EntityAttraction: {wordList(attractions)},
	domain.EntityFood:       {wordList(foods)},
	domain.EntityTime: {
		`\b(today|tomorrow|yesterday|next week|this week|weekend)\b`,
		`\b(morning|afternoon|evening|night)\b`,
		`\b(january|february|march|april|may|june|july|august|september|october|november|december)\b`,
	},
	domain.EntityBudget: {
		`\b(budget|cheap|expensive|luxury|mid-range|affordable)\b`,
		`\b(under|less than|around|about) \$?\d+\b`,
		`\$\d+|\b\d+ dollars\b|\b\d+ rupees\b|\blkr \d+\b`,
	},
	domain.EntityDuration: {
		`\b\d+ (day|days|week|weeks|month|months)\b`,
		`\b(few days|several days|one week|two weeks)\b`,
	},
}
