package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niranga/lankabot/internal/domain"
)

func TestResolveAttraction(t *testing.T) {
	b := NewBase()

	tests := []struct {
		value string
		key   string
		ok    bool
	}{
		{"sigiriya", "sigiriya", true},
		{"  Galle Fort ", "galle_fort", true},
		{"temple of the tooth", "kandy", true},
		{"nine arch bridge", "ella", true},
		{"paris", "", false},
	}

	for _, tt := range tests {
		key, ok := b.ResolveAttraction(tt.value)
		assert.Equal(t, tt.ok, ok, tt.value)
		assert.Equal(t, tt.key, key, tt.value)
	}
}

func TestAttractionLocalizedLookup(t *testing.T) {
	b := NewBase()

	a, found, localized := b.Attraction("sigiriya", domain.LanguageSinhala)
	require.True(t, found)
	assert.True(t, localized)
	assert.Equal(t, "සීගිරිය පර්වත කොටුව", a.Name)
}

func TestAttractionFallsBackToEnglish(t *testing.T) {
	b := NewBase()

	a, found, localized := b.Attraction("yala", domain.LanguageTamil)
	require.True(t, found)
	assert.False(t, localized)
	assert.Equal(t, "Yala National Park", a.Name)
}

func TestAttractionUnknownKey(t *testing.T) {
	b := NewBase()

	_, found, _ := b.Attraction("eiffel_tower", domain.LanguageEnglish)
	assert.False(t, found)
}

func TestSearch(t *testing.T) {
	b := NewBase()

	results := b.Search("where can I see a leopard", domain.LanguageEnglish)
	require.Len(t, results, 1)
	assert.Equal(t, "Yala National Park", results[0].Name)
}

func TestSearchIgnoresShortTerms(t *testing.T) {
	b := NewBase()

	// Every term is under four characters.
	assert.Empty(t, b.Search("go to a big old one", domain.LanguageEnglish))
	assert.Empty(t, b.Search("", domain.LanguageEnglish))
}

func TestSearchCapsResults(t *testing.T) {
	b := NewBase()

	// "province" appears in several location fields but not descriptions;
	// "fortress" and "temple" style terms spread across records.
	results := b.Search("ancient rock fortress temple colonial", domain.LanguageEnglish)
	assert.LessOrEqual(t, len(results), 3)
}

func TestSearchIsDeterministic(t *testing.T) {
	b := NewBase()

	// Matches ella, galle_fort, sigiriya and yala, one over the cap, so an
	// unstable iteration order would shuffle which three survive.
	query := "ancient rock fortress colonial scenic wildlife"
	names := func() []string {
		var out []string
		for _, a := range b.Search(query, domain.LanguageEnglish) {
			out = append(out, a.Key)
		}
		return out
	}

	first := names()
	require.Len(t, first, 3)
	assert.Equal(t, []string{"ella", "galle_fort", "sigiriya"}, first)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, names())
	}
}
