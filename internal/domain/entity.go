package domain

// EntityType classifies an extracted span of the utterance.
type EntityType string

const (
	EntityLocation   EntityType = "location"
	EntityAttraction EntityType = "attraction"
	EntityFood       EntityType = "food"
	EntityTime       EntityType = "time"
	EntityBudget     EntityType = "budget"
	EntityDuration   EntityType = "duration"
)

// Entity is a typed value found in the utterance. Start and End are byte
// offsets into the lowercased utterance text.
type Entity struct {
	Type       EntityType `json:"type"`
	Value      string     `json:"value"`
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Confidence float64    `json:"confidence"`
}
