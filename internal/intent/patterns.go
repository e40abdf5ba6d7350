package intent

import "github.com/niranga/lankabot/internal/domain"

// patterns holds the per-intent, per-language regular expressions for the
// pattern detector. Missing languages fall back to the English set. The \b
// anchor in RE2 is ASCII-only, so non-Latin patterns are bare alternations.
var patterns = map[domain.Intent]map[domain.Language][]string{
	domain.IntentGreeting: {
		domain.LanguageEnglish: {
			`\b(hello|hi|hey|good morning|good afternoon|good evening)\b`,
			`\b(how are you|how do you do)\b`,
		},
		domain.LanguageSinhala: {
			`ආයුබෝවන්|කොහොමද|සුභ දවසක්|සුභ උදෑසනක්|සුභ සවසක්`,
		},
		domain.LanguageTamil: {
			`வணக்கம்|எப்படி இருக்கிறீர்கள்|காலை வணக்கம்|மாலை வணக்கம்`,
		},
		domain.LanguageChinese: {
			`你好|您好|早上好|下午好|晚上好`,
		},
		domain.LanguageFrench: {
			`\b(bonjour|salut|bonsoir|comment allez-vous)\b`,
		},
	},
	domain.IntentAttraction: {
		domain.LanguageEnglish: {
			`\b(where|what|tell me about|show me|find|visit|see|attraction|place|destination|tourist spot)\b`,
			`\b(temple|beach|mountain|fort|palace|museum|park|garden)\b`,
			`\b(sigiriya|kandy|galle|ella|nuwara eliya|anuradhapura|polonnaruwa)\b`,
		},
		domain.LanguageSinhala: {
			`කොහෙද|මොකද|කියන්න|පෙන්වන්න|හොයන්න|බලන්න|ස්ථානය|ප්‍රදේශය`,
			`දේවාලය|වෙරළ|කන්ද|කොටුව|මාලිගය|කෞතුකාගාරය|උයන`,
			`සීගිරිය|මහනුවර|ගාල්ල|ඇල්ල|නුවරඑළිය|අනුරාධපුරය|පොළොන්නරුව`,
		},
		domain.LanguageTamil: {
			`எங்கே|என்ன|சொல்லுங்கள்|காட்டுங்கள்|தேடு|பார்வையிடு|இடம்|சுற்றுலா`,
			`கோயில்|கடற்கரை|மலை|கோட்டை|அரண்மனை|அருங்காட்சியகம்|பூங்கா`,
		},
		domain.LanguageChinese: {
			`哪里|什么|告诉我|显示|寻找|参观|景点|地方|旅游景点`,
			`寺庙|海滩|山|堡垒|宫殿|博物馆|公园`,
		},
		domain.LanguageFrench: {
			`\b(où|quoi|dites-moi|montrez-moi|trouver|visiter|lieu|attraction|destination)\b`,
			`\b(temple|plage|montagne|fort|palais|musée|parc|jardin)\b`,
		},
	},
	domain.IntentFood: {
		domain.LanguageEnglish: {
			`\b(food|eat|meal|dish|cuisine|restaurant|hungry|taste|spicy|curry|rice)\b`,
			`\b(hoppers|kottu|string hoppers|roti|sambol|traditional food)\b`,
		},
		domain.LanguageSinhala: {
			`ආහාර|කන්න|කෑම|ව්‍යංජන|ආපනශාලා|බඩගිනි|රස|බත්`,
			`ආප්ප|කොත්තු|ඉදිආප්ප|රොටි|සම්බෝල`,
		},
		domain.LanguageTamil: {
			`உணவு|சாப்பிட|உணவகம்|பசி|சுவை|காரம்|சாதம்|கறி`,
		},
		domain.LanguageChinese: {
			`食物|吃|餐|菜|餐厅|饿|味道|辣|咖喱|米饭`,
		},
		domain.LanguageFrench: {
			`\b(nourriture|manger|repas|plat|cuisine|restaurant|faim|go[uû]t|épicé|curry|riz)\b`,
		},
	},
	domain.IntentTransport: {
		domain.LanguageEnglish: {
			`\b(transport|travel|how to get|go to|bus|train|taxi|tuk tuk|flight|airport)\b`,
			`\b(ticket|booking|schedule|timetable|fare)\b`,
		},
		domain.LanguageSinhala: {
			`ප්‍රවාහනය|ගමන්|යන්නේ කොහොමද|බස්|දුම්රිය|ටැක්සි|ත්‍රීරෝදය|ගුවන්තොටුපළ`,
			`ටිකට්|කාලසටහන|ගාස්තු`,
		},
		domain.LanguageTamil: {
			`போக்குவரத்து|பயணம்|எப்படி செல்வது|பேரூந்து|ரயில்|டாக்ஸி|ஆட்டோ|விமானம்`,
		},
		domain.LanguageChinese: {
			`交通|旅行|怎么去|公交|火车|出租车|嘟嘟车|飞机|机场`,
		},
		domain.LanguageFrench: {
			`\b(transport|voyage|comment aller|bus|train|taxi|tuk tuk|vol|aéroport)\b`,
		},
	},
	domain.IntentAccommodation: {
		domain.LanguageEnglish: {
			`\b(hotel|accommodation|stay|room|guesthouse|resort|lodge)\b`,
			`\b(where to stay|place to sleep|budget hotel|luxury hotel)\b`,
		},
		domain.LanguageSinhala: {
			`හෝටලය|නවාතැන්|ඉන්න|කාමරය|ගෘහ නවාතැන්|නිකේතනය`,
		},
		domain.LanguageTamil: {
			`ஹோட்டல்|தங்குமிடம்|தங்க|அறை|முன்பதிவு|ரிசார்ட்`,
		},
		domain.LanguageChinese: {
			`酒店|住宿|住|房间|预订|客栈|度假村`,
		},
		domain.LanguageFrench: {
			`\b(hôtel|hébergement|rester|chambre|réservation|pension)\b`,
		},
	},
	domain.IntentWeather: {
		domain.LanguageEnglish: {
			`\b(weather|climate|temperature|rain|sunny|hot|cold|season|monsoon)\b`,
			`\b(what's the weather|how's the weather|weather forecast)\b`,
		},
		domain.LanguageSinhala: {
			`කාලගුණය|දේශගුණය|උෂ්ණත්වය|වර්ෂාව|අව්ව|උණුසුම්|සීතල|මෝසම්`,
		},
		domain.LanguageTamil: {
			`வானிலை|காலநிலை|வெப்பநிலை|மழை|வெயில்|குளிர்|பருவமழை`,
		},
		domain.LanguageChinese: {
			`天气|气候|温度|雨|晴天|热|冷|季风`,
		},
		domain.LanguageFrench: {
			`\b(météo|climat|température|pluie|ensoleillé|chaud|froid|mousson)\b`,
		},
	},
	domain.IntentHelp: {
		domain.LanguageEnglish: {
			`\b(help|assist|support|guide|confused|lost|don't know|problem)\b`,
			`\b(can you help|need help|what can you do)\b`,
		},
		domain.LanguageSinhala: {
			`උදව්|සහාය|මග පෙන්වන්න|අවුල්|දන්නේ නෑ|ප්‍රශ්නය`,
		},
		domain.LanguageTamil: {
			`உதவி|ஆதரவு|வழிகாட்டி|குழப்பம்|தெரியாது|பிரச்சனை`,
		},
		domain.LanguageChinese: {
			`帮助|协助|支持|指导|困惑|迷路|不知道|问题`,
		},
		domain.LanguageFrench: {
			`\b(aide|assister|soutien|guide|confus|perdu|problème)\b`,
		},
	},
	domain.IntentFarewell: {
		domain.LanguageEnglish: {
			`\b(goodbye|bye|see you|farewell|thanks|thank you|exit|quit)\b`,
		},
		domain.LanguageSinhala: {
			`ගිහින් එන්නම්|බයි|ආයේ හමුවෙමු|ස්තූතියි|ස්තූති|යන්නම්`,
		},
		domain.LanguageTamil: {
			`விடைபெறுகிறேன்|பை|மீண்டும் சந்திப்போம்|நன்றி|வெளியேறு`,
		},
		domain.LanguageChinese: {
			`再见|拜拜|再会|谢谢|退出`,
		},
		domain.LanguageFrench: {
			`\b(au revoir|bye|à bientôt|merci|sortir|quitter)\b`,
		},
	},
}
