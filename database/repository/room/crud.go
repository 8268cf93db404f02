package roomRepo

import (
	"fmt"

	"meetbot/models"
)

const roomsFile = "rooms.json"

// seedRooms matches the directory the bot ships with. rooms.json in the data
// directory takes precedence when present.
var seedRooms = []models.Room{
	{ID: "R301", Name: "3층 대회의실", Floor: 3, Capacity: 12},
	{ID: "R302", Name: "3층 소회의실 A", Floor: 3, Capacity: 6},
	{ID: "R303", Name: "3층 소회의실 B", Floor: 3, Capacity: 6},
	{ID: "R401", Name: "4층 라운지룸", Floor: 4, Capacity: 8},
	{ID: "R402", Name: "4층 세미나룸", Floor: 4, Capacity: 20},
}

// List returns every bookable room.
func (r *fileRoomRepo) List() ([]models.Room, error) {
	if !r.store.Exists(roomsFile) {
		rooms := make([]models.Room, len(seedRooms))
		copy(rooms, seedRooms)
		return rooms, nil
	}
	var rooms []models.Room
	if err := r.store.Load(roomsFile, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetByID returns the room with the given id.
func (r *fileRoomRepo) GetByID(id string) (*models.Room, error) {
	rooms, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i], nil
		}
	}
	return nil, fmt.Errorf("room %s not found", id)
}
