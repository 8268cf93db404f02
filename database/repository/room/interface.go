package roomRepo

import (
	"meetbot/database"
	"meetbot/models"
)

// Repository provides read access to the bookable room directory.
type Repository interface {
	List() ([]models.Room, error)
	GetByID(id string) (*models.Room, error)
}

type fileRoomRepo struct {
	store *database.FileStore
}

// NewFileRoomRepo returns a Repository backed by rooms.json in the store's
// data directory, falling back to the built-in seed list when the file is
// absent.
func NewFileRoomRepo(store *database.FileStore) Repository {
	return &fileRoomRepo{store: store}
}
