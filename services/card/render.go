package card

import (
	"fmt"
	"strings"

	"meetbot/models"
	"meetbot/services/directory"
)

// CallbackSubmit tags the submit button's attachment.
const CallbackSubmit = "meeting-submit"

// CardTitle is the text of every reservation card.
const CardTitle = "🗓️ 회의실 예약"

const defaultInfoText = "원하는 값을 선택하고 제출을 눌러주세요."

// Renderer builds the interactive reservation card.
type Renderer struct {
	Directory *directory.Service
}

func NewRenderer(dir *directory.Service) *Renderer {
	return &Renderer{Directory: dir}
}

// BuildReservationCard renders the card for the given hint: a room selector
// pre-filtered by floor and room hint, start/end selectors with the hinted
// times front-positioned, the submit button, and the status placeholder.
// Called with a zero hint it produces the default blank card.
func (r *Renderer) BuildReservationCard(hint models.Hint) (models.Message, error) {
	roomOpts, err := r.Directory.RoomOptions(hint.Floor, hint.RoomHint)
	if err != nil {
		return models.Message{}, fmt.Errorf("card: list rooms: %w", err)
	}
	if len(roomOpts) == 0 {
		roomOpts = []models.Option{{Text: "(회의실 없음)", Value: "__none__"}}
	}

	startOpts := directory.TimeOptions(hint.Start)
	endOpts := directory.TimeOptions(hint.End)

	return models.Message{
		Text:         CardTitle,
		ResponseType: models.ResponseInChannel,
		Attachments: []models.Attachment{
			{
				Title: "회의실 선택",
				Actions: []models.Action{
					{Name: "room", Type: "select", Text: "회의실", Options: roomOpts},
				},
			},
			{
				Title: "시간 선택",
				Text:  infoText(hint),
				Actions: []models.Action{
					{Name: "start", Type: "select", Text: "시작", Options: startOpts},
					{Name: "end", Type: "select", Text: "종료", Options: endOpts},
				},
			},
			{
				CallbackID: CallbackSubmit,
				Actions: []models.Action{
					{Name: "submit", Type: "button", Text: "제출", Value: "submit", Style: "primary"},
				},
			},
			{
				Title:  StatusTitle,
				Fields: NewStatus().Fields(),
			},
		},
	}, nil
}

// infoText summarizes which hints were detected, or prompts generically when
// none were.
func infoText(hint models.Hint) string {
	var lines []string
	if hint.Floor != nil {
		lines = append(lines, fmt.Sprintf("• 층 필터: %d층", *hint.Floor))
	}
	if hint.Start != "" && hint.End != "" {
		lines = append(lines, fmt.Sprintf("• 시간 후보: %s ~ %s", hint.Start, hint.End))
	}
	if hint.RoomHint != "" {
		lines = append(lines, fmt.Sprintf("• 방 힌트: %s", hint.RoomHint))
	}
	if len(lines) == 0 {
		return defaultInfoText
	}
	return strings.Join(lines, "\n")
}
