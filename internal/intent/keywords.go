package intent

import "github.com/niranga/lankabot/internal/domain"

// keywords drives the keyword-weight detector: score is the fraction of a
// list found as substrings of the lowercased utterance.
var keywords = map[domain.Intent][]string{
	domain.IntentGreeting:      {"hello", "hi", "hey", "ayubowan", "vanakkam", "good morning"},
	domain.IntentFarewell:      {"bye", "goodbye", "thanks", "thank you", "see you"},
	domain.IntentAttraction:    {"visit", "attraction", "place", "temple", "beach", "fort", "see"},
	domain.IntentFood:          {"food", "eat", "curry", "restaurant", "dish", "hungry"},
	domain.IntentTransport:     {"bus", "train", "taxi", "tuk", "airport", "get to"},
	domain.IntentAccommodation: {"hotel", "stay", "room", "guesthouse", "resort", "sleep"},
	domain.IntentWeather:       {"weather", "rain", "temperature", "climate", "monsoon", "sunny"},
	domain.IntentHelp:          {"help", "assist", "support", "confused", "what can you"},
}

// fallbackKeywords backs the keyword-only secondary pass that runs when no
// primary detector fires. The terms are looser on purpose; a single hit is
// enough to avoid an unknown classification.
var fallbackKeywords = map[domain.Intent][]string{
	domain.IntentAttraction:    {"go", "trip", "tour", "sightsee", "explore"},
	domain.IntentFood:          {"lunch", "dinner", "breakfast", "snack", "drink"},
	domain.IntentTransport:     {"ride", "drive", "route", "travel"},
	domain.IntentAccommodation: {"book", "night", "lodge", "accommodation"},
	domain.IntentWeather:       {"forecast", "humid", "storm"},
	domain.IntentHelp:          {"how", "what", "where", "info"},
}
