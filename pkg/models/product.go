package models

// BusinessModel distinguishes how a released product earns money. Online
// products additionally attract server and payment complaints.
type BusinessModel string

const (
	BusinessSinglePlayer BusinessModel = "single_player"
	BusinessOnline       BusinessModel = "online"
)

// Valid reports whether m is a known business model.
func (m BusinessModel) Valid() bool {
	return m == BusinessSinglePlayer || m == BusinessOnline
}

// Product is a shipped (or in-development) game title. Only released
// products generate complaints.
type Product struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	BusinessModel BusinessModel `json:"business_model"`
	Released      bool          `json:"released"`
}
