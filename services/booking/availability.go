package booking

import "time"

// IsBusy reports whether roomID already has a reservation overlapping
// [start, end) today. Reservations are reloaded from disk so the check sees
// the latest persisted state; the scan short-circuits on the first overlap.
func (s *DefaultReservationService) IsBusy(roomID, start, end string) (bool, error) {
	all, err := s.Reservations.List()
	if err != nil {
		return false, err
	}

	today := time.Now().Format("2006-01-02")
	for _, r := range all {
		if r.RoomID != roomID || r.Date != today {
			continue
		}
		if overlaps(start, end, r.Start, r.End) {
			return true, nil
		}
	}
	return false, nil
}

// overlaps checks half-open interval overlap on "HH:MM" strings. The fixed-
// width zero-padded format makes lexicographic comparison equivalent to
// numeric comparison.
func overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return !(aEnd <= bStart || bEnd <= aStart)
}
