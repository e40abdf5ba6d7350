package response

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niranga/lankabot/internal/domain"
	"github.com/niranga/lankabot/internal/knowledge"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(knowledge.NewBase(), NewPersonality(rand.New(rand.NewSource(1))))
}

func testSession(lang domain.Language) *domain.Session {
	return &domain.Session{
		ID:       "s-1",
		UserID:   "u-1",
		Language: lang,
		Guide:    domain.DefaultGuideID,
	}
}

func TestDispatchGreetingUsesGuideVoice(t *testing.T) {
	d := newTestDispatcher()

	reply := d.Dispatch(testSession(domain.LanguageEnglish),
		domain.Recognition{Intent: domain.IntentGreeting}, nil, "hello")
	assert.Contains(t, reply, "Saru")

	reply = d.Dispatch(testSession(domain.LanguageSinhala),
		domain.Recognition{Intent: domain.IntentGreeting}, nil, "ආයුබෝවන්")
	assert.Contains(t, reply, "සරු")
}

func TestDispatchFarewellSignsWithGuideName(t *testing.T) {
	d := newTestDispatcher()

	reply := d.Dispatch(testSession(domain.LanguageEnglish),
		domain.Recognition{Intent: domain.IntentFarewell}, nil, "bye")
	assert.Contains(t, reply, "Saru")
}

func TestDispatchAttractionDetail(t *testing.T) {
	d := newTestDispatcher()

	entities := []domain.Entity{{Type: domain.EntityLocation, Value: "sigiriya"}}
	reply := d.Dispatch(testSession(domain.LanguageEnglish),
		domain.Recognition{Intent: domain.IntentAttraction}, entities, "tell me about sigiriya")

	assert.Contains(t, reply, "Sigiriya Rock Fortress")
	assert.Contains(t, reply, "Location")
}

func TestDispatchAttractionGeneralWithoutEntity(t *testing.T) {
	d := newTestDispatcher()

	reply := d.Dispatch(testSession(domain.LanguageEnglish),
		domain.Recognition{Intent: domain.IntentAttraction}, nil, "what should I visit")
	assert.Contains(t, reply, "Sigiriya")
	assert.Contains(t, reply, "Galle Fort")
}

func TestDispatchAttractionLocalized(t *testing.T) {
	d := newTestDispatcher()

	entities := []domain.Entity{{Type: domain.EntityAttraction, Value: "sigiriya"}}
	reply := d.Dispatch(testSession(domain.LanguageSinhala),
		domain.Recognition{Intent: domain.IntentAttraction}, entities, "සීගිරිය ගැන කියන්න")
	assert.Contains(t, reply, "සීගිරිය පර්වත කොටුව")
}

func TestDispatchAccommodationBudgetTiers(t *testing.T) {
	d := newTestDispatcher()
	sess := testSession(domain.LanguageEnglish)
	rec := domain.Recognition{Intent: domain.IntentAccommodation}

	low := d.Dispatch(sess, rec, []domain.Entity{{Type: domain.EntityBudget, Value: "cheap"}}, "cheap hotels")
	assert.Contains(t, low, "guesthouses")

	lux := d.Dispatch(sess, rec, []domain.Entity{{Type: domain.EntityBudget, Value: "luxury"}}, "luxury hotels")
	assert.Contains(t, lux, "boutique villas")

	general := d.Dispatch(sess, rec, nil, "hotels")
	assert.Contains(t, general, "accommodation options")
}

func TestDispatchUnknownSearchesKnowledgeBase(t *testing.T) {
	d := newTestDispatcher()

	reply := d.Dispatch(testSession(domain.LanguageEnglish),
		domain.Recognition{Intent: domain.IntentUnknown}, nil, "leopard safari somewhere?")
	assert.Contains(t, reply, "Yala National Park")
}

func TestDispatchUnknownFallsBackToTemplate(t *testing.T) {
	d := newTestDispatcher()

	reply := d.Dispatch(testSession(domain.LanguageEnglish),
		domain.Recognition{Intent: domain.IntentUnknown}, nil, "qqq zzz")
	assert.Contains(t, reply, "not sure I understand")
}

func TestDispatchFallsBackToDefaultLanguage(t *testing.T) {
	d := newTestDispatcher()

	// No French transport template exists; the English one is served.
	reply := d.Dispatch(testSession(domain.LanguageFrench),
		domain.Recognition{Intent: domain.IntentTransport}, nil, "transport")
	require.NotEmpty(t, reply)
	assert.Contains(t, reply, "Tuk-tuks")
}

func TestDispatchReportsLocalizationGap(t *testing.T) {
	d := newTestDispatcher()

	type gap struct{ language, family string }
	var gaps []gap
	d.OnLocalizationGap(func(language, family string) {
		gaps = append(gaps, gap{language, family})
	})

	reply := d.Dispatch(testSession(domain.LanguageFrench),
		domain.Recognition{Intent: domain.IntentTransport}, nil, "transport")
	assert.Contains(t, reply, "Tuk-tuks")
	require.Len(t, gaps, 1)
	assert.Equal(t, gap{"fr", "transport"}, gaps[0])

	// A fully localized reply reports nothing.
	gaps = nil
	d.Dispatch(testSession(domain.LanguageEnglish),
		domain.Recognition{Intent: domain.IntentTransport}, nil, "transport")
	assert.Empty(t, gaps)
}
