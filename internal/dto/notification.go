package dto

// Push message type tags, carried in the data payload so the app can
// route a tap to the right screen.
const (
	PushTypeTransaction = "transaction"
	PushTypeBudget      = "budget"
	PushTypeBudgetAlert = "budget_alert"
)

type PushMessage struct {
	Type  string            `json:"type"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}
