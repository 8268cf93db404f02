package handlers

import (
	"net/http"
	"strings"

	"meetbot/models"
	"meetbot/services/booking"
	"meetbot/services/card"
	"meetbot/services/nlu"
	"meetbot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MeetingHandler serves the two meeting-reservation webhook endpoints.
type MeetingHandler struct {
	Extractor *nlu.Extractor
	Renderer  *card.Renderer
	Booking   booking.ReservationService
}

func NewMeetingHandler(extractor *nlu.Extractor, renderer *card.Renderer, bookingSvc booking.ReservationService) *MeetingHandler {
	return &MeetingHandler{
		Extractor: extractor,
		Renderer:  renderer,
		Booking:   bookingSvc,
	}
}

// CommandHandler turns the slash-command text into a fresh reservation card.
// Empty text yields the default blank card.
func (h *MeetingHandler) CommandHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CommandRequest
	decodeWebhookBody(c, &req)

	text := strings.TrimSpace(req.Text)
	logger.Info("webhook: command received", zap.String("text", text))

	var hint models.Hint
	if text != "" {
		hint = h.Extractor.Extract(c.Request.Context(), text)
	}

	msg, err := h.Renderer.BuildReservationCard(hint)
	if err != nil {
		logger.Error("webhook: render card failed", zap.Error(err))
		c.JSON(http.StatusOK, models.NewMessage("⚠️ 회의실 목록을 불러오지 못했어요. 잠시 후 다시 시도해 주세요."))
		return
	}
	c.JSON(http.StatusOK, msg)
}

// ActionsHandler dispatches interaction callbacks: dropdown changes update the
// per-user session and acknowledge silently, a submit runs the commit step,
// anything else is a no-op.
func (h *MeetingHandler) ActionsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ActionRequest
	decodeWebhookBody(c, &req)
	normalizeAction(&req)

	key := booking.SessionKey{
		ChannelLogID: channelLogID(&req),
		UserID:       userID(&req),
	}

	switch req.ActionName {
	case "room", "start", "end":
		h.Booking.SaveSelection(key, req.ActionName, strings.TrimSpace(req.ActionValue))
		// Bare ack, leaves the rendered card untouched.
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	if strings.TrimSpace(req.ActionValue) == "submit" {
		msg := h.Booking.Submit(booking.SubmitRequest{
			Key:      key,
			TenantID: tenantID(&req),
			UserID:   key.UserID,
			Original: req.Original,
		})
		c.JSON(http.StatusOK, msg)
		return
	}

	logger.Debug("webhook: unrecognized action",
		zap.String("actionName", req.ActionName),
		zap.String("actionValue", req.ActionValue),
	)
	c.JSON(http.StatusOK, gin.H{})
}

// channelLogID prefers the callback's channelLogId, falling back to the id of
// the echoed original message.
func channelLogID(req *models.ActionRequest) string {
	if req.ChannelLogID != "" {
		return string(req.ChannelLogID)
	}
	if req.Original != nil {
		return string(req.Original.ID)
	}
	return ""
}

func userID(req *models.ActionRequest) string {
	if req.User.ID != "" {
		return string(req.User.ID)
	}
	return "user"
}

func tenantID(req *models.ActionRequest) string {
	if req.Tenant.ID != "" {
		return string(req.Tenant.ID)
	}
	return "tenant"
}
