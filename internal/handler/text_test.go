package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niranga/lankabot/internal/domain"
	"github.com/niranga/lankabot/internal/knowledge"
)

func TestUncuratedPlaceSkipsCuratedAttractions(t *testing.T) {
	kb := knowledge.NewBase()

	place, ok := uncuratedPlace(kb, []domain.Entity{
		{Type: domain.EntityLocation, Value: "sigiriya"},
		{Type: domain.EntityLocation, Value: "negombo"},
	})
	require.True(t, ok)
	assert.Equal(t, "negombo", place)
}

func TestUncuratedPlaceIgnoresNonPlaceEntities(t *testing.T) {
	kb := knowledge.NewBase()

	_, ok := uncuratedPlace(kb, []domain.Entity{
		{Type: domain.EntityBudget, Value: "5000 rupees"},
		{Type: domain.EntityAttraction, Value: "galle fort"},
	})
	assert.False(t, ok)
}

func TestTitleCity(t *testing.T) {
	assert.Equal(t, "Nuwara Eliya", titleCity("nuwara eliya"))
	assert.Equal(t, "", titleCity(""))
}
