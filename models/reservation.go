package models

// Reservation is a single-day room booking, created on submit and immutable
// thereafter. Start/End are zero-padded "HH:MM" strings so lexicographic
// comparison matches numeric comparison.
type Reservation struct {
	ID         string `json:"id"`
	Date       string `json:"date"` // "YYYY-MM-DD"
	RoomID     string `json:"roomId"`
	Start      string `json:"start"` // "HH:MM"
	End        string `json:"end"`   // "HH:MM"
	Title      string `json:"title"`
	ReservedBy string `json:"reservedBy"`
}
