package card

import (
	"fmt"
	"regexp"
	"strings"

	"meetbot/models"
)

// StatusTitle tags the attachment carrying the reservation-status summary.
// The chat message is the only durable display surface between turns, so this
// section doubles as the status store: it is decoded from the echoed original
// message on every submit and re-encoded into the replacement.
const StatusTitle = "예약 현황"

const (
	statusEmptyTitle = "아직 없음"
	statusEmptyValue = "제출 시 여기에 표시됩니다."
)

// Status is an ordered mapping from a display key ("<roomName> <start>~<end>")
// to the mention tokens of the users who claimed that slot. Key order is
// insertion order as encountered during decode and merge.
type Status struct {
	keys    []string
	entries map[string][]string
}

func NewStatus() *Status {
	return &Status{entries: make(map[string][]string)}
}

// Empty reports whether no slot has been claimed yet.
func (s *Status) Empty() bool {
	return len(s.keys) == 0
}

// Mentions returns the mention list under key, in submission order.
func (s *Status) Mentions(key string) []string {
	return s.entries[key]
}

// Keys returns the display keys in insertion order.
func (s *Status) Keys() []string {
	return s.keys
}

// put sets the full mention list for key, tracking first-insertion order.
func (s *Status) put(key string, mentions []string) {
	if _, ok := s.entries[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.entries[key] = mentions
}

// Add appends mention under key, collapsing any prior occurrence of the same
// token so the most recent submission wins the end position.
func (s *Status) Add(key, mention string) {
	kept := make([]string, 0, len(s.entries[key])+1)
	for _, m := range s.entries[key] {
		if m != mention {
			kept = append(kept, m)
		}
	}
	s.put(key, append(kept, mention))
}

// mentionTokenRe tokenizes a status value. Mention tokens carry an internal
// space between the link and its label, so a parenthesized run must stay one
// token; anything else splits on whitespace.
var mentionTokenRe = regexp.MustCompile(`\([^()]*\)|\S+`)

// ParseStatus decodes the status mapping out of a previously rendered
// message. A missing or malformed section degrades to an empty status, never
// an error; the echoed payload is an external wire format.
func ParseStatus(msg *models.Message) *Status {
	status := NewStatus()
	if msg == nil {
		return status
	}
	for _, att := range msg.Attachments {
		if att.Title != StatusTitle {
			continue
		}
		for _, f := range att.Fields {
			if f.Title == "" || f.Title == statusEmptyTitle {
				continue
			}
			var mentions []string
			for _, tok := range mentionTokenRe.FindAllString(f.Value, -1) {
				if tok != "-" {
					mentions = append(mentions, tok)
				}
			}
			status.put(f.Title, mentions)
		}
	}
	return status
}

// Fields encodes the status mapping as attachment fields, one row per key.
// An empty status yields the single placeholder row.
func (s *Status) Fields() []models.Field {
	if s.Empty() {
		return []models.Field{{Title: statusEmptyTitle, Value: statusEmptyValue}}
	}
	fields := make([]models.Field, 0, len(s.keys))
	for _, k := range s.keys {
		value := strings.Join(s.entries[k], " ")
		if value == "" {
			value = "-"
		}
		fields = append(fields, models.Field{Title: k, Value: value})
	}
	return fields
}

// ReplaceStatus swaps the status attachment of msg for one encoding status,
// appending it if the renderer's section is somehow missing. The other
// attachments pass through untouched.
func ReplaceStatus(msg *models.Message, status *Status) []models.Attachment {
	statusAtt := models.Attachment{Title: StatusTitle, Fields: status.Fields()}

	var atts []models.Attachment
	replaced := false
	if msg != nil {
		for _, att := range msg.Attachments {
			if att.Title == StatusTitle {
				atts = append(atts, statusAtt)
				replaced = true
			} else {
				atts = append(atts, att)
			}
		}
	}
	if !replaced {
		atts = append(atts, statusAtt)
	}
	return atts
}

// Mention builds the opaque token the chat client renders as a clickable
// member name. It participates in dedup as a single atomic string and is
// never parsed apart.
func Mention(tenantID, userID, label string) string {
	return fmt.Sprintf("(dooray://%s/members/%s \"%s\")", tenantID, userID, label)
}

// StatusKey is the display key a reservation files under.
func StatusKey(roomName, start, end string) string {
	return fmt.Sprintf("%s %s~%s", roomName, start, end)
}
