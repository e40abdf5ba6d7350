package response

import (
	"log/slog"

	"github.com/niranga/lankabot/internal/domain"
)

// template families, keyed by family then language. Localization is partial;
// lookup falls back to the default language and reports the gap.
var templates = map[string]map[domain.Language]string{
	"attraction_detail": {
		domain.LanguageEnglish: "**%s**\n\n%s\n\n📍 **Location:** %s\n⏰ **Best time:** %s\n🎫 **Entry fee:** %s\n💡 **Tips:** %s",
		domain.LanguageSinhala: "**%s**\n\n%s\n\n📍 **ස්ථානය:** %s\n⏰ **හොඳම වේලාව:** %s\n🎫 **ප්‍රවේශ ගාස්තු:** %s\n💡 **උපදෙස්:** %s",
		domain.LanguageTamil:   "**%s**\n\n%s\n\n📍 **இடம்:** %s\n⏰ **சிறந்த நேரம்:** %s\n🎫 **நுழைவு கட்டணம்:** %s\n💡 **குறிப்புகள்:** %s",
	},
	"attraction_general": {
		domain.LanguageEnglish: "Sri Lanka has amazing attractions! Here are some must-visit places:\n\n🏰 **Sigiriya** - Ancient rock fortress\n🦷 **Kandy** - Temple of the Tooth\n🏰 **Galle Fort** - Colonial architecture\n🐘 **Yala National Park** - Wildlife safari\n🏔️ **Ella** - Scenic hill country",
		domain.LanguageSinhala: "ශ්‍රී ලංකාවේ විස්මයජනක ආකර්ෂණ තියෙනවා! මෙන්න යන්න ඕනේ ස්ථාන:\n\n🏰 **සීගිරිය** - පුරාණ පර්වත කොටුව\n🦷 **කැන්ඩි** - දළදා මාලිගාව\n🏰 **ගාල්ල කොටුව** - යටත් විජිත ගෘහ නිර්මාණ\n🐘 **යාල ජාතික වනෝද්‍යානය** - වන්‍යජීවී සෆාරි\n🏔️ **ඇල්ල** - සුන්දර කඳුකර ප්‍රදේශය",
	},
	"food": {
		domain.LanguageEnglish: "Sri Lankan cuisine is amazing! Try rice and curry, hoppers, kottu, and string hoppers. Don't miss the delicious coconut-based curries and spicy sambols!",
		domain.LanguageSinhala: "ශ්‍රී ලාංකික ආහාර විස්මයජනකයි! බත් සහ කරි, ආප්ප, කොත්තු, ඉදිආප්ප පොල් කිරි කරි සහ සම්බෝල් අමතක කරන්න එපා!",
	},
	"food_detail": {
		domain.LanguageEnglish: "🍛 **%s** is a great choice! It's a staple of Sri Lankan cooking — ask any local restaurant for their version and don't be shy about the spice.",
	},
	"transport": {
		domain.LanguageEnglish: "🚂 **Trains** - Scenic journeys, book via railway.gov.lk\n🚌 **Buses** - Extensive network, cash payment\n🛺 **Tuk-tuks** - Short distances, negotiate fare\n✈️ **Flights** - Domestic connections available",
		domain.LanguageSinhala: "🚂 **දුම්රිය** - සුන්දර ගමන්, railway.gov.lk හරහා වෙන්කරවා ගන්න\n🚌 **බස්** - පුළුල් ජාලය, මුදල් ගෙවීම\n🛺 **ත්‍රීරෝද රථ** - කෙටි දුර, ගාස්තු සාකච්ඡා කරන්න\n✈️ **ගුවන්** - දේශීය සම්බන්ධතා",
	},
	"accommodation": {
		domain.LanguageEnglish: "🏨 Sri Lanka offers various accommodation options:\n\n🏖️ **Beach resorts** - Bentota, Hikkaduwa\n🏔️ **Hill country hotels** - Kandy, Nuwara Eliya\n🏛️ **Boutique hotels** - Galle Fort, Colombo\n🏠 **Guesthouses** - Budget-friendly options\n🐘 **Eco lodges** - Near national parks",
		domain.LanguageSinhala: "🏨 ශ්‍රී ලංකාවේ විවිධ නවාතැන් විකල්ප:\n\n🏖️ **වෙරළ නිකේතන** - බෙන්තොට, හික්කඩුව\n🏔️ **කඳුකර හෝටල්** - කැන්ඩි, නුවරඑළිය\n🏛️ **බුටික් හෝටල්** - ගාල්ල කොටුව, කොළඹ\n🏠 **ගෘහ නවාතැන්** - අඩු මිල විකල්ප\n🐘 **පරිසර නවාතැන්** - ජාතික වනෝද්‍යාන අසල",
	},
	"accommodation_budget": {
		domain.LanguageEnglish: "🏠 On a budget, guesthouses and homestays are your best friends — expect USD 10-25 a night with breakfast in most towns. Hostels in Colombo, Ella and Arugam Bay are lively and cheap, and many temples rent simple rooms.",
	},
	"accommodation_luxury": {
		domain.LanguageEnglish: "✨ For something special, look at the boutique villas inside Galle Fort, the colonial-era hill hotels of Nuwara Eliya, or a tented safari camp at the edge of Yala.",
	},
	"weather": {
		domain.LanguageEnglish: "🌤️ Sri Lanka has a tropical climate:\n\n☀️ **Dry season** - December to April (West/South coast)\n🌧️ **Monsoon season** - May to September (Southwest), October to March (Northeast)\n🌡️ **Temperature** - 26-30°C year-round\n🏖️ **Best beach weather** - November to April",
		domain.LanguageSinhala: "🌤️ ශ්‍රී ලංකාවේ නිවර්තන දේශගුණයක්:\n\n☀️ **වියලි කාලය** - දෙසැම්බර් සිට අප්‍රේල් (බටහිර/දකුණු වෙරළ)\n🌧️ **මෝසම් කාලය** - මැයි සිට සැප්තැම්බර් (නිරිතදිග)\n🌡️ **උෂ්ණත්වය** - වසර පුරා 26-30°C",
	},
	"help": {
		domain.LanguageEnglish: "I'm here to help you explore Sri Lanka! I can assist with:\n\n🏛️ **Attractions** - Historical sites, temples, nature\n🍛 **Food** - Local cuisine and where to try it\n🚂 **Transport** - Trains, buses, taxis\n🏨 **Accommodation** - Hotels and guesthouses\n🌤️ **Weather** - Climate and best travel times\n\nJust ask me anything about Sri Lanka!",
		domain.LanguageSinhala: "ශ්‍රී ලංකාව ගවේෂණය කිරීමට මම ඔබට උදව් කරන්නම්!\n\n🏛️ **ආකර්ෂණ** - ඓතිහාසික ස්ථාන, දේවාල\n🍛 **ආහාර** - දේශීය ආහාර\n🚂 **ප්‍රවාහනය** - දුම්රිය, බස්, ටැක්සි\n🏨 **නවාතැන්** - හෝටල් සහ ගෘහ නවාතැන්\n🌤️ **කාලගුණය** - දේශගුණය\n\nඕනෑම දෙයක් අහන්න!",
		domain.LanguageTamil:   "இலங்கையை ஆராய நான் உதவுகிறேன்! இடங்கள், உணவு, போக்குவரத்து, தங்குமிடம் மற்றும் வானிலை பற்றி என்னிடம் கேளுங்கள்!",
	},
	"farewell": {
		domain.LanguageEnglish: "Thank you for chatting with me! Have a wonderful time exploring Sri Lanka! 🇱🇰✨\n\n- %s",
		domain.LanguageSinhala: "මා සමඟ කතා කිරීමට ස්තූතියි! ශ්‍රී ලංකාව ගවේෂණය කරන්න ලස්සන කාලයක් ගත කරන්න! 🇱🇰✨\n\n- %s",
		domain.LanguageTamil:   "என்னுடன் பேசியதற்கு நன்றி! இலங்கையை ஆராய்வதில் அற்புதமான நேரத்தைப் பெறுங்கள்! 🇱🇰✨\n\n- %s",
		domain.LanguageChinese: "谢谢您与我聊天！祝您在斯里兰卡探索愉快！🇱🇰✨\n\n- %s",
		domain.LanguageFrench:  "Merci d'avoir discuté avec moi! Passez un merveilleux moment à explorer le Sri Lanka! 🇱🇰✨\n\n- %s",
	},
	"unknown": {
		domain.LanguageEnglish: "I'm not sure I understand that completely. Could you tell me more about what you'd like to know about Sri Lanka? I can help with attractions, food, transport, accommodation, and more!",
		domain.LanguageSinhala: "මට ඒක සම්පූර්ණයෙන්ම තේරුම් වෙන්නේ නෑ. ශ්‍රී ලංකාව ගැන ඔබ දැන ගන්න කැමති දේ ගැන තව කියන්න පුළුවන්ද?",
		domain.LanguageTamil:   "அது எனக்கு முழுமையாக புரியவில்லை. இலங்கையைப் பற்றி நீங்கள் தெரிந்து கொள்ள விரும்புவதைப் பற்றி மேலும் சொல்ல முடியுமா?",
		domain.LanguageChinese: "我不太理解。您能告诉我更多关于您想了解斯里兰卡什么的信息吗？",
		domain.LanguageFrench:  "Je ne comprends pas complètement. Pourriez-vous me dire ce que vous aimeriez savoir sur le Sri Lanka?",
	},
	"followup": {
		domain.LanguageEnglish: "Happy to keep going! Tell me which place, food or route you'd like to hear more about and I'll dig in.",
	},
	"clarification": {
		domain.LanguageEnglish: "Let me put that another way. Ask me about a specific place, dish, route or hotel area and I'll give you the practical details.",
	},
	"confirmation": {
		domain.LanguageEnglish: "That's right! Local knowledge, verified by a guide who never stops checking. Anything else you'd like to be sure about?",
	},
	"search_results": {
		domain.LanguageEnglish: "Here's what I found:",
	},
}

// Template returns the base template for a family, with the same
// default-language fallback as the dispatcher.
func Template(family string, lang domain.Language) string {
	return lookup(family, lang)
}

// lookup returns the template for a family in lang, degrading to the default
// language when the localization is missing.
func lookup(family string, lang domain.Language) string {
	text, _ := lookupCheck(family, lang)
	return text
}

// lookupCheck is lookup plus a flag reporting whether the requested language
// was served directly. A false flag with a non-default language is a
// localization gap, a data-completeness signal rather than an error.
func lookupCheck(family string, lang domain.Language) (string, bool) {
	byLang, ok := templates[family]
	if !ok {
		return "", false
	}
	if text, ok := byLang[lang]; ok {
		return text, true
	}
	if lang != domain.DefaultLanguage {
		slog.Warn("missing localized template, using default language", "family", family, "language", lang)
	}
	return byLang[domain.DefaultLanguage], false
}
