package domain

// Intent is the closed-set classification of what the user is asking for.
type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentFarewell      Intent = "farewell"
	IntentAttraction    Intent = "attraction_inquiry"
	IntentFood          Intent = "food_inquiry"
	IntentTransport     Intent = "transport_inquiry"
	IntentAccommodation Intent = "accommodation_inquiry"
	IntentWeather       Intent = "weather_inquiry"
	IntentHelp          Intent = "help_inquiry"
	IntentFollowUp      Intent = "followup"
	IntentClarification Intent = "clarification"
	IntentConfirmation  Intent = "confirmation"
	IntentUnknown       Intent = "unknown"
)

// ScoredIntent is a ranked alternative produced alongside the winning intent.
type ScoredIntent struct {
	Intent Intent  `json:"intent"`
	Score  float64 `json:"score"`
}

// Recognition is the fused output of the intent recognizer for one utterance.
type Recognition struct {
	Intent       Intent         `json:"intent"`
	Confidence   float64        `json:"confidence"`
	Alternatives []ScoredIntent `json:"alternatives,omitempty"`
}
