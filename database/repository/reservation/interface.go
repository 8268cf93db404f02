package reservationRepo

import (
	"sync"

	"meetbot/database"
	"meetbot/models"
)

// Repository provides access to the append-only reservation log.
type Repository interface {
	List() ([]models.Reservation, error)
	Append(res models.Reservation) error
}

type fileReservationRepo struct {
	store *database.FileStore

	// Serializes the load-append-save sequence. A single writer lock is
	// enough for a single-instance deployment.
	mu sync.Mutex
}

// NewFileReservationRepo returns a Repository backed by reservations.json in
// the store's data directory.
func NewFileReservationRepo(store *database.FileStore) Repository {
	return &fileReservationRepo{store: store}
}
