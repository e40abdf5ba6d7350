package entity

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/niranga/lankabot/internal/domain"
)

// matchConfidence is assigned to every pattern hit; the tables carry no
// per-pattern weighting.
const matchConfidence = 0.8

type compiledType struct {
	typ      domain.EntityType
	patterns []*regexp.Regexp
}

// Extractor scans an utterance for domain entities using static per-type
// pattern tables.
type Extractor struct {
	types []compiledType
}

// NewExtractor compiles the entity tables. A malformed pattern is dropped
// with a warning; its type simply yields fewer matches.
func NewExtractor() *Extractor {
	e := &Extractor{}
	// Stable iteration order keeps output deterministic for equal spans.
	order := []domain.EntityType{
		domain.EntityLocation, domain.EntityAttraction, domain.EntityFood,
		domain.EntityTime, domain.EntityBudget, domain.EntityDuration,
	}
	for _, typ := range order {
		ct := compiledType{typ: typ}
		for _, pat := range typePatterns[typ] {
			re, err := regexp.Compile(pat)
			if err != nil {
				slog.Warn("skipping malformed entity pattern", "type", typ, "pattern", pat, "error", err)
				continue
			}
			ct.patterns = append(ct.patterns, re)
		}
		e.types = append(e.types, ct)
	}
	return e
}

// Extract returns all entities found in text, ordered by start offset, with
// duplicate (type, value) pairs removed, first occurrence wins. Unmatched
// input yields an empty list, never an error.
func (e *Extractor) Extract(text string) []domain.Entity {
	lower := strings.ToLower(text)

	var candidates []domain.Entity
	for _, ct := range e.types {
		for _, re := range ct.patterns {
			for _, span := range re.FindAllStringIndex(lower, -1) {
				candidates = append(candidates, domain.Entity{
					Type:       ct.typ,
					Value:      lower[span[0]:span[1]],
					Start:      span[0],
					End:        span[1],
					Confidence: matchConfidence,
				})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Start < candidates[j].Start
	})

	type key struct {
		typ   domain.EntityType
		value string
	}
	seen := make(map[key]struct{}, len(candidates))
	result := make([]domain.Entity, 0, len(candidates))
	for _, c := range candidates {
		k := key{c.Type, c.Value}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, c)
	}
	return result
}

// FirstOfType returns the first extracted entity of the given type.
func FirstOfType(entities []domain.Entity, typ domain.EntityType) (domain.Entity, bool) {
	for _, e := range entities {
		if e.Type == typ {
			return e, true
		}
	}
	return domain.Entity{}, false
}
