package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"meetbot/models"
)

// Refiner is the optional enrichment oracle consulted after the deterministic
// rules. Implementations must respect the context deadline; any error is
// treated as "no enrichment" by the caller.
type Refiner interface {
	Refine(ctx context.Context, text string) (*models.Hint, error)
}

// refinePrompt asks for a JSON object mirroring the hint fields. Matches the
// shape the bot has always requested from the model.
const refinePrompt = `다음 한국어 문장에서 회의실 예약 의도를 추출해 JSON으로 줘.
- 키: floor(정수 또는 null), room_name(문자열 또는 null), start("HH:MM" 또는 null), end("HH:MM" 또는 null), title(문자열)
문장: "%s"
JSON만 반환.(코드블록으로 주지말고.)`

// refineReply is the JSON shape expected back from the model.
type refineReply struct {
	Floor    *int   `json:"floor"`
	RoomName string `json:"room_name"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Title    string `json:"title"`
}

// parseRefineReply decodes the model output, tolerating a markdown code fence
// despite the prompt asking for bare JSON.
func parseRefineReply(raw string) (*models.Hint, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(raw, "```")
		raw = strings.TrimSpace(raw)
	}

	var reply refineReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, fmt.Errorf("nlu: malformed refine reply: %w", err)
	}
	return &models.Hint{
		Floor:    reply.Floor,
		RoomHint: reply.RoomName,
		Start:    reply.Start,
		End:      reply.End,
		Title:    reply.Title,
	}, nil
}
