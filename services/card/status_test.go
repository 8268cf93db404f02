package card

import (
	"reflect"
	"testing"

	"meetbot/models"
)

func TestStatus_RoundTrip(t *testing.T) {
	status := NewStatus()
	status.Add("3층 대회의실 09:00~10:00", Mention("t", "u1", "member"))
	status.Add("3층 대회의실 09:00~10:00", Mention("t", "u2", "member"))
	status.Add("4층 세미나룸 13:00~14:00", Mention("t", "u3", "member"))

	msg := &models.Message{
		Attachments: []models.Attachment{
			{Title: StatusTitle, Fields: status.Fields()},
		},
	}

	decoded := ParseStatus(msg)
	if !reflect.DeepEqual(decoded.Keys(), status.Keys()) {
		t.Errorf("keys = %v, want %v", decoded.Keys(), status.Keys())
	}
	for _, key := range status.Keys() {
		if !reflect.DeepEqual(decoded.Mentions(key), status.Mentions(key)) {
			t.Errorf("mentions[%q] = %v, want %v", key, decoded.Mentions(key), status.Mentions(key))
		}
	}
}

func TestStatus_AddDeduplicatesAndMovesToEnd(t *testing.T) {
	key := "3층 대회의실 09:00~10:00"
	u1 := Mention("t", "u1", "member")
	u2 := Mention("t", "u2", "member")

	status := NewStatus()
	status.Add(key, u1)
	status.Add(key, u2)
	status.Add(key, u1)

	got := status.Mentions(key)
	want := []string{u2, u1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mentions = %v, want the resubmitted user once, at the end: %v", got, want)
	}
}

func TestStatus_KeyOrderIsInsertionOrder(t *testing.T) {
	status := NewStatus()
	status.Add("b", "m1")
	status.Add("a", "m2")
	status.Add("b", "m3")

	want := []string{"b", "a"}
	if !reflect.DeepEqual(status.Keys(), want) {
		t.Errorf("keys = %v, want %v", status.Keys(), want)
	}
}

func TestStatus_EmptyEncodesPlaceholder(t *testing.T) {
	fields := NewStatus().Fields()
	if len(fields) != 1 {
		t.Fatalf("fields = %d, want single placeholder row", len(fields))
	}
	if fields[0].Title != "아직 없음" {
		t.Errorf("placeholder title = %q", fields[0].Title)
	}
}

func TestParseStatus_Defensive(t *testing.T) {
	t.Run("nil message", func(t *testing.T) {
		if !ParseStatus(nil).Empty() {
			t.Error("want empty status for nil message")
		}
	})

	t.Run("no status section", func(t *testing.T) {
		msg := &models.Message{Attachments: []models.Attachment{{Title: "회의실 선택"}}}
		if !ParseStatus(msg).Empty() {
			t.Error("want empty status when the section is absent")
		}
	})

	t.Run("placeholder row is not an entry", func(t *testing.T) {
		msg := &models.Message{
			Attachments: []models.Attachment{
				{Title: StatusTitle, Fields: []models.Field{{Title: "아직 없음", Value: "제출 시 여기에 표시됩니다."}}},
			},
		}
		if !ParseStatus(msg).Empty() {
			t.Error("want empty status for the placeholder-only section")
		}
	})
}

func TestMention_IsAtomicToken(t *testing.T) {
	m := Mention("tenant1", "user1", "member")
	if m != `(dooray://tenant1/members/user1 "member")` {
		t.Errorf("Mention = %q", m)
	}
}

func TestReplaceStatus_AppendsWhenSectionMissing(t *testing.T) {
	status := NewStatus()
	status.Add("key", "m")

	msg := &models.Message{Attachments: []models.Attachment{{Title: "회의실 선택"}}}
	atts := ReplaceStatus(msg, status)

	if len(atts) != 2 {
		t.Fatalf("attachments = %d, want original plus appended status", len(atts))
	}
	if atts[1].Title != StatusTitle {
		t.Errorf("appended attachment = %q, want status section", atts[1].Title)
	}
}

func TestStatusKey(t *testing.T) {
	if got := StatusKey("3층 대회의실", "09:00", "10:00"); got != "3층 대회의실 09:00~10:00" {
		t.Errorf("StatusKey = %q", got)
	}
}
