package knowledge

import (
	"sort"
	"strings"

	"github.com/niranga/lankabot/internal/domain"
)

// Attraction is a curated record about one place. Localization is partial on
// purpose; lookups fall back to English.
type Attraction struct {
	Key         string
	Name        string
	Description string
	Location    string
	BestTime    string
	EntryFee    string
	Tips        string
}

// Base is the static tourism knowledge consulted by the response builders.
// It is read-only after construction.
type Base struct {
	attractions map[domain.Language]map[string]Attraction
	aliases     map[string]string
}

func NewBase() *Base {
	return &Base{
		attractions: attractionData,
		aliases: map[string]string{
			"sigiriya":            "sigiriya",
			"kandy":               "kandy",
			"temple of the tooth": "kandy",
			"galle":               "galle_fort",
			"galle fort":          "galle_fort",
			"ella":                "ella",
			"nine arch bridge":    "ella",
			"yala national park":  "yala",
		},
	}
}

// ResolveAttraction maps an extracted location or attraction value to a
// knowledge-base key.
func (b *Base) ResolveAttraction(value string) (string, bool) {
	key, ok := b.aliases[strings.ToLower(strings.TrimSpace(value))]
	return key, ok
}

// Attraction returns the record for key in the requested language, falling
// back to English. The second result is false when the key is unknown in any
// language; the third reports whether the requested language was available.
func (b *Base) Attraction(key string, lang domain.Language) (Attraction, bool, bool) {
	if byKey, ok := b.attractions[lang]; ok {
		if a, ok := byKey[key]; ok {
			return a, true, true
		}
	}
	a, ok := b.attractions[domain.LanguageEnglish][key]
	return a, ok, false
}

// Search scans attraction names and descriptions for the query terms. It
// backs the generic fallback for unrecognized utterances.
func (b *Base) Search(query string, lang domain.Language) []Attraction {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	// Map iteration order is random; sort the keys so equal queries always
	// return the same records.
	keys := make([]string, 0, len(b.attractions[domain.LanguageEnglish]))
	for key := range b.attractions[domain.LanguageEnglish] {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var results []Attraction
	for _, key := range keys {
		a, _, _ := b.Attraction(key, lang)
		haystack := strings.ToLower(a.Name + " " + a.Description)
		for _, term := range terms {
			if len(term) >= 4 && strings.Contains(haystack, term) {
				results = append(results, a)
				break
			}
		}
		if len(results) == 3 {
			break
		}
	}
	return results
}

var attractionData = map[domain.Language]map[string]Attraction{
	domain.LanguageEnglish: {
		"sigiriya": {
			Key:         "sigiriya",
			Name:        "Sigiriya Rock Fortress",
			Description: "Ancient rock fortress and palace ruins with stunning frescoes and panoramic views",
			Location:    "Central Province, near Dambulla",
			BestTime:    "Early morning or late afternoon",
			EntryFee:    "LKR 5,000 for foreigners",
			Tips:        "Carry water, wear comfortable shoes, start early to avoid crowds",
		},
		"kandy": {
			Key:         "kandy",
			Name:        "Temple of the Tooth Relic (Sri Dalada Maligawa)",
			Description: "Sacred Buddhist temple housing a tooth relic of Buddha",
			Location:    "Kandy, Central Province",
			BestTime:    "During puja ceremonies (6:30 AM, 12:30 PM, 7:30 PM)",
			EntryFee:    "LKR 1,500",
			Tips:        "Dress modestly, remove shoes before entering, photography restrictions apply",
		},
		"galle_fort": {
			Key:         "galle_fort",
			Name:        "Galle Fort",
			Description: "Well-preserved colonial fort with Dutch architecture and stunning ocean views",
			Location:    "Galle, Southern Province",
			BestTime:    "Late afternoon for sunset views",
			EntryFee:    "Free to walk around, paid attractions inside",
			Tips:        "Perfect for sunset photography, many cafes and shops inside",
		},
		"ella": {
			Key:         "ella",
			Name:        "Ella and the Nine Arch Bridge",
			Description: "Scenic hill-country town with tea plantations, hikes and the famous railway bridge",
			Location:    "Uva Province",
			BestTime:    "Morning, before the mist rolls in",
			EntryFee:    "Free",
			Tips:        "Check the train timetable to see a crossing at the bridge",
		},
		"yala": {
			Key:         "yala",
			Name:        "Yala National Park",
			Description: "Sri Lanka's most visited wildlife park, famous for its leopard population",
			Location:    "Southern/Uva border",
			BestTime:    "February to July, early morning safaris",
			EntryFee:    "About USD 15 plus jeep hire",
			Tips:        "Book a jeep the day before, the park closes in September",
		},
	},
	domain.LanguageSinhala: {
		"sigiriya": {
			Key:         "sigiriya",
			Name:        "සීගිරිය පර්වත කොටුව",
			Description: "පුරාණ පර්වත කොටුවක් සහ මාලිගා නටබුන් සුන්දර චිත්‍ර සහ පරිදර්ශන සමග",
			Location:    "මධ්‍යම පළාත, දඹුල්ල අසල",
			BestTime:    "පාන්දර උදේ හෝ සවස් වරුවේ",
			EntryFee:    "විදේශිකයන්ට රුපියල් 5,000",
			Tips:        "ජලය රැගෙන යන්න, සුවපහසු සපත්තු ඇඳන්න, කල්තියා පටන් ගන්න",
		},
	},
	domain.LanguageTamil: {
		"sigiriya": {
			Key:         "sigiriya",
			Name:        "சீகிரியா பாறை கோட்டை",
			Description: "அழகான ஓவியங்கள் மற்றும் பரந்த காட்சிகளுடன் கூடிய பண்டைய பாறை கோட்டை",
			Location:    "மத்திய மாகாணம், தம்புள்ளை அருகே",
			BestTime:    "அதிகாலை அல்லது மாலை",
			EntryFee:    "வெளிநாட்டவர்களுக்கு LKR 5,000",
			Tips:        "தண்ணீர் எடுத்துச் செல்லுங்கள், சீக்கிரம் தொடங்குங்கள்",
		},
	},
}
