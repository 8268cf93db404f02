package directory

import (
	"fmt"
	"sort"
	"strings"

	roomRepo "meetbot/database/repository/room"
	"meetbot/models"
)

// Time-slot grid bounds, minutes from midnight.
const (
	slotFirst = 8 * 60
	slotLast  = 20 * 60
	slotStep  = 30
)

// Service builds selector options from the room directory.
type Service struct {
	Rooms roomRepo.Repository
}

func NewService(rooms roomRepo.Repository) *Service {
	return &Service{Rooms: rooms}
}

// RoomOptions returns the selectable rooms, optionally narrowed by floor and
// by a free-text hint. The hint filter keeps rooms whose id or name occurs as
// a substring of the hint, not the other way round: a long hint sentence is
// searched for short room identifiers.
func (s *Service) RoomOptions(floor *int, hint string) ([]models.Option, error) {
	rooms, err := s.Rooms.List()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if floor != nil && r.Floor != *floor {
			continue
		}
		filtered = append(filtered, r)
	}

	// The hint is the raw command sentence, so it only narrows the list when
	// it actually names a room; a hint that matches nothing is ignored rather
	// than emptying the selector.
	if hint != "" {
		matched := make([]models.Room, 0, len(filtered))
		for _, r := range filtered {
			if strings.Contains(hint, r.ID) || strings.Contains(hint, r.Name) {
				matched = append(matched, r)
			}
		}
		if len(matched) > 0 {
			filtered = matched
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Floor != filtered[j].Floor {
			return filtered[i].Floor < filtered[j].Floor
		}
		return filtered[i].Name < filtered[j].Name
	})

	opts := make([]models.Option, 0, len(filtered))
	for _, r := range filtered {
		opts = append(opts, models.Option{
			Text:  fmt.Sprintf("%s (%s)", r.Name, r.ID),
			Value: r.ID,
		})
	}
	return opts, nil
}

// TimeOptions returns the half-hour slot grid from 08:00 to 20:00 inclusive.
// A preferred time that exactly matches a slot is moved to the front; nothing
// is filtered out.
func TimeOptions(pref string) []models.Option {
	slots := make([]string, 0, (slotLast-slotFirst)/slotStep+1)
	for t := slotFirst; t <= slotLast; t += slotStep {
		slots = append(slots, fmt.Sprintf("%02d:%02d", t/60, t%60))
	}

	if pref != "" {
		for i, s := range slots {
			if s == pref {
				slots = append(slots[:i], slots[i+1:]...)
				slots = append([]string{pref}, slots...)
				break
			}
		}
	}

	opts := make([]models.Option, 0, len(slots))
	for _, s := range slots {
		opts = append(opts, models.Option{Text: s, Value: s})
	}
	return opts
}
