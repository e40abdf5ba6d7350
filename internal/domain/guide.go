package domain

// Guide is a static tour-guide persona. Guides are read-only at runtime;
// sessions reference them by ID only.
type Guide struct {
	ID          string
	Name        string
	Personality string
	Specialties []string
	Greeting    map[Language]string
}

// DefaultGuideID is assigned to new sessions.
const DefaultGuideID = "saru"

var guides = map[string]Guide{
	"saru": {
		ID:          "saru",
		Name:        "Saru",
		Personality: "friendly, enthusiastic, cultural expert",
		Specialties: []string{"temples", "cultural sites", "festivals", "etiquette"},
		Greeting: map[Language]string{
			LanguageEnglish: "Hello! I'm Saru, your friendly Sri Lankan tour guide! I love sharing our beautiful culture and history.",
			LanguageSinhala: "ආයුබෝවන්! මම සරු, ඔබේ මිත්‍රශීලී ශ්‍රී ලාංකික ගමන් මාර්ගදර්ශකයා! අපේ සුන්දර සංස්කෘතිය සහ ඉතිහාසය බෙදා ගැනීමට මම ආදරෙයි.",
			LanguageTamil:   "வணக்கம்! நான் சரு, உங்கள் நட்புரீதியான இலங்கை சுற்றுலா வழிகாட்டி! எங்கள் அழகான கலாச்சாரம் மற்றும் வரலாற்றைப் பகிர்ந்து கொள்ள நான் விரும்புகிறேன்.",
			LanguageChinese: "你好！我是萨鲁，你友好的斯里兰卡导游！我喜欢分享我们美丽的文化和历史。",
			LanguageFrench:  "Bonjour! Je suis Saru, votre guide touristique sri-lankaise amicale! J'adore partager notre belle culture et histoire.",
		},
	},
	"anjali": {
		ID:          "anjali",
		Name:        "Anjali",
		Personality: "adventurous, nature-loving, practical",
		Specialties: []string{"nature", "wildlife", "trekking", "beaches"},
		Greeting: map[Language]string{
			LanguageEnglish: "Hi there! I'm Anjali, and I'm passionate about Sri Lanka's incredible nature and wildlife!",
			LanguageSinhala: "හෙලෝ! මම අංජලි, ශ්‍රී ලංකාවේ විස්මයජනක ස්වභාවික පරිසරය සහ වන්‍යජීවීන් ගැන ඉතා උනන්දුයි!",
			LanguageTamil:   "வணக்கம்! நான் அஞ்சலி, இலங்கையின் நம்பமுடியாத இயற்கை மற்றும் வனவிலங்குகள் மீது நான் ஆர்வமாக உள்ளேன்!",
			LanguageChinese: "嗨！我是安贾莉，我对斯里兰卡令人难以置信的自然和野生动物充满热情！",
			LanguageFrench:  "Salut! Je suis Anjali, et je suis passionnée par la nature et la faune incroyables du Sri Lanka!",
		},
	},
}

// GuideByID returns the persona for id.
func GuideByID(id string) (Guide, bool) {
	g, ok := guides[id]
	return g, ok
}

// KnownGuide reports whether id names a configured persona.
func KnownGuide(id string) bool {
	_, ok := guides[id]
	return ok
}

// AllGuides returns every configured persona.
func AllGuides() []Guide {
	return []Guide{guides["saru"], guides["anjali"]}
}
