package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niranga/lankabot/internal/domain"
)

func TestExtractLocations(t *testing.T) {
	e := NewExtractor()

	entities := e.Extract("I want to travel from Colombo to Kandy next week")

	var locations []string
	for _, ent := range entities {
		if ent.Type == domain.EntityLocation {
			locations = append(locations, ent.Value)
		}
	}
	assert.Equal(t, []string{"colombo", "kandy"}, locations)
}

func TestExtractOrderedByStart(t *testing.T) {
	e := NewExtractor()

	entities := e.Extract("cheap hotels in Ella for 3 days")
	require.NotEmpty(t, entities)

	for i := 1; i < len(entities); i++ {
		assert.LessOrEqual(t, entities[i-1].Start, entities[i].Start)
	}
}

func TestExtractDeduplicates(t *testing.T) {
	e := NewExtractor()

	entities := e.Extract("Kandy, Kandy, and Kandy again")

	count := 0
	for _, ent := range entities {
		if ent.Type == domain.EntityLocation && ent.Value == "kandy" {
			count++
		}
	}
	assert.Equal(t, 1, count, "repeated mention kept once")
}

func TestExtractIsIdempotent(t *testing.T) {
	e := NewExtractor()

	text := "visiting Sigiriya and Galle, trying kottu, budget around $50"
	first := e.Extract(text)
	second := e.Extract(text)
	assert.Equal(t, first, second)
}

func TestExtractNoMatches(t *testing.T) {
	e := NewExtractor()

	entities := e.Extract("completely unrelated sentence")
	assert.Empty(t, entities)
}

func TestExtractConfidence(t *testing.T) {
	e := NewExtractor()

	for _, ent := range e.Extract("hoppers in Colombo tomorrow") {
		assert.Equal(t, 0.8, ent.Confidence)
	}
}

func TestFirstOfType(t *testing.T) {
	entities := []domain.Entity{
		{Type: domain.EntityFood, Value: "kottu"},
		{Type: domain.EntityLocation, Value: "galle"},
		{Type: domain.EntityLocation, Value: "kandy"},
	}

	e, ok := FirstOfType(entities, domain.EntityLocation)
	require.True(t, ok)
	assert.Equal(t, "galle", e.Value)

	_, ok = FirstOfType(entities, domain.EntityBudget)
	assert.False(t, ok)
}
