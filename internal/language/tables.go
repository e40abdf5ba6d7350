package language

import "github.com/niranga/lankabot/internal/domain"

// profile holds the static detection tables for one language. Languages
// written in Latin script have no distinguishing character range and rely on
// keywords and greeting patterns alone.
type profile struct {
	lang      domain.Language
	scriptLo  rune
	scriptHi  rune
	keywords  []string
	greetings []string
}

var profiles = []profile{
	{
		lang:     domain.LanguageSinhala,
		scriptLo: 0x0D80,
		scriptHi: 0x0DFF,
		keywords: []string{"ආයුබෝවන්", "ස්තූතියි", "මට", "ඔබට", "කොහෙද", "කවදා"},
		greetings: []string{
			`ආයුබෝවන්|කොහොමද|සුභ දවසක්|සුභ උදෑසනක්`,
		},
	},
	{
		lang:     domain.LanguageTamil,
		scriptLo: 0x0B80,
		scriptHi: 0x0BFF,
		keywords: []string{"வணக்கம்", "நன்றி", "எனக்கு", "உங்களுக்கு", "எங்கே", "எப்போது"},
		greetings: []string{
			`வணக்கம்|காலை வணக்கம்|மாலை வணக்கம்`,
		},
	},
	{
		lang:     domain.LanguageChinese,
		scriptLo: 0x4E00,
		scriptHi: 0x9FFF,
		keywords: []string{"你好", "谢谢", "哪里", "什么", "请问", "天气"},
		greetings: []string{
			`你好|您好|早上好|下午好|晚上好`,
		},
	},
	{
		lang:     domain.LanguageFrench,
		keywords: []string{"bonjour", "merci", "où", "quand", "comment", "s'il vous plaît", "quel"},
		greetings: []string{
			`(?i)\b(bonjour|salut|bonsoir|comment allez-vous)\b`,
		},
	},
	{
		lang:     domain.LanguageEnglish,
		keywords: []string{"hello", "thank", "please", "where", "when", "how", "what"},
		greetings: []string{
			`(?i)\b(hello|hi|hey|good morning|good afternoon|good evening)\b`,
			`(?i)\b(how are you|how do you do)\b`,
		},
	},
}
