package models

// Room represents a bookable meeting room. Reference data; never mutated.
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Floor    int    `json:"floor"`
	Capacity int    `json:"capacity"`
}
