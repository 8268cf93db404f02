package booking

import (
	"fmt"
	"time"

	reservationRepo "meetbot/database/repository/reservation"
	roomRepo "meetbot/database/repository/room"
	"meetbot/models"
	"meetbot/services/card"
	"meetbot/utils"

	"go.uber.org/zap"
)

// ReservationService drives the per-user reservation flow across callbacks.
type ReservationService interface {
	// SaveSelection records a dropdown change. The caller acknowledges with
	// an empty payload; intermediate selections never re-render the card.
	SaveSelection(key SessionKey, field, value string)

	// Submit runs the commit step and returns the card (or transient error
	// message) to send back. It never returns a transport-level error.
	Submit(req SubmitRequest) models.Message
}

// SubmitRequest carries everything the commit step needs from a submit
// callback. Original is the full prior card echoed back by the client; it is
// the only place earlier status state survives between turns.
type SubmitRequest struct {
	Key      SessionKey
	TenantID string
	UserID   string
	Original *models.Message
}

// DefaultReservationService is the production ReservationService.
type DefaultReservationService struct {
	Rooms        roomRepo.Repository
	Reservations reservationRepo.Repository
	Sessions     *SessionStore
}

func (s *DefaultReservationService) SaveSelection(key SessionKey, field, value string) {
	s.Sessions.Set(key, field, value)
}

func (s *DefaultReservationService) Submit(req SubmitRequest) models.Message {
	logger := utils.GetLogger()

	sel := s.Sessions.Get(req.Key)
	if !sel.Complete() {
		return models.NewMessage(msgSelectAll)
	}

	all, err := s.Reservations.List()
	if err != nil {
		logger.Error("booking: availability check failed", zap.Error(err))
		return models.NewMessage(msgLoadFailed)
	}

	// A slot identical to an existing reservation is joinable (the submitter
	// is added to that meeting's status row); any partial overlap blocks.
	blocking := false
	alreadyPersisted := false
	today := time.Now().Format("2006-01-02")
	for _, r := range all {
		if r.RoomID != sel.Room || r.Date != today {
			continue
		}
		if r.Start == sel.Start && r.End == sel.End {
			if r.ReservedBy == req.UserID {
				alreadyPersisted = true
			}
			continue
		}
		if overlaps(sel.Start, sel.End, r.Start, r.End) {
			blocking = true
			break
		}
	}
	if blocking {
		return models.NewMessage(msgBusy)
	}

	roomName := sel.Room
	if room, err := s.Rooms.GetByID(sel.Room); err == nil {
		roomName = room.Name
	} else {
		logger.Warn("booking: unknown room selected", zap.String("roomId", sel.Room), zap.Error(err))
	}

	// Re-submitting an identical reservation is idempotent on the log; only
	// the status row position changes.
	if !alreadyPersisted {
		now := time.Now()
		res := models.Reservation{
			ID:         fmt.Sprintf("RV-%d-%s", now.Unix(), req.UserID),
			Date:       today,
			RoomID:     sel.Room,
			Start:      sel.Start,
			End:        sel.End,
			Title:      roomName + " 예약",
			ReservedBy: req.UserID,
		}
		if err := s.Reservations.Append(res); err != nil {
			// Session state is left intact so the user can retry the submit
			// without re-selecting.
			logger.Error("booking: persist reservation failed", zap.Error(err))
			return models.NewMessage(msgSaveFailed)
		}
		logger.Info("booking: reservation created",
			zap.String("id", res.ID),
			zap.String("roomId", res.RoomID),
			zap.String("start", res.Start),
			zap.String("end", res.End),
			zap.String("reservedBy", res.ReservedBy),
		)
	}

	status := card.ParseStatus(req.Original)
	status.Add(card.StatusKey(roomName, sel.Start, sel.End), card.Mention(req.TenantID, req.UserID, "member"))

	text := card.CardTitle
	if req.Original != nil && req.Original.Text != "" {
		text = req.Original.Text
	}
	return models.Message{
		Text:            text,
		ResponseType:    models.ResponseInChannel,
		ReplaceOriginal: true,
		Attachments:     card.ReplaceStatus(req.Original, status),
	}
}
