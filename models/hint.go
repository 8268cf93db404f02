package models

// Hint carries the partial structure extracted from a free-text command.
// Produced fresh per invocation, never persisted.
type Hint struct {
	Floor    *int   `json:"floor,omitempty"`
	RoomHint string `json:"room_hint,omitempty"`
	Start    string `json:"start,omitempty"` // "HH:MM"
	End      string `json:"end,omitempty"`   // "HH:MM"
	Title    string `json:"title,omitempty"`
}
