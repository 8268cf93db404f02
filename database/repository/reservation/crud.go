package reservationRepo

import "meetbot/models"

const reservationsFile = "reservations.json"

// List reloads the full reservation log from disk. No caching; every read
// reflects the latest persisted state.
func (r *fileReservationRepo) List() ([]models.Reservation, error) {
	var all []models.Reservation
	if err := r.store.Load(reservationsFile, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// Append adds one reservation to the log. Last write wins; records are never
// updated or removed.
func (r *fileReservationRepo) Append(res models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []models.Reservation
	if err := r.store.Load(reservationsFile, &all); err != nil {
		return err
	}
	all = append(all, res)
	return r.store.Save(reservationsFile, all)
}
