package nlu

import (
	"context"
	"errors"
	"testing"

	"meetbot/models"
)

func TestParseRules_TimeRange(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		wantStart string
		wantEnd   string
	}{
		{name: "plain hours", input: "9~11", wantStart: "09:00", wantEnd: "11:00"},
		{name: "spaces around tilde", input: "9 ~ 11", wantStart: "09:00", wantEnd: "11:00"},
		{name: "colon minutes", input: "9:30~10:00", wantStart: "09:30", wantEnd: "10:00"},
		{name: "compact minutes", input: "930~1030", wantStart: "09:30", wantEnd: "10:30"},
		{name: "korean range words", input: "9부터 11까지", wantStart: "09:00", wantEnd: "11:00"},
		{name: "full sentence", input: "3층 9~11 회의실 잡아줘", wantStart: "09:00", wantEnd: "11:00"},
		{name: "equal end pushed forward", input: "9~9", wantStart: "09:00", wantEnd: "10:00"},
		{name: "earlier end pushed not wrapped", input: "23~1", wantStart: "23:00", wantEnd: "02:00"},
		{name: "push past midnight wraps display", input: "23:30~23", wantStart: "23:30", wantEnd: "00:00"},
		{name: "no range", input: "회의실 예약해줘", wantStart: "", wantEnd: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hint := parseRules(tc.input)
			if hint.Start != tc.wantStart {
				t.Errorf("Start = %q, want %q", hint.Start, tc.wantStart)
			}
			if hint.End != tc.wantEnd {
				t.Errorf("End = %q, want %q", hint.End, tc.wantEnd)
			}
		})
	}
}

func TestParseRules_Floor(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  *int
	}{
		{name: "single digit", input: "3층 회의실", want: intPtr(3)},
		{name: "two digits", input: "12층으로", want: intPtr(12)},
		{name: "space before suffix", input: "4 층", want: intPtr(4)},
		{name: "first match wins", input: "3층 아니면 4층", want: intPtr(3)},
		{name: "no floor", input: "회의실 예약", want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hint := parseRules(tc.input)
			switch {
			case tc.want == nil && hint.Floor != nil:
				t.Errorf("Floor = %d, want nil", *hint.Floor)
			case tc.want != nil && hint.Floor == nil:
				t.Errorf("Floor = nil, want %d", *tc.want)
			case tc.want != nil && *hint.Floor != *tc.want:
				t.Errorf("Floor = %d, want %d", *hint.Floor, *tc.want)
			}
		})
	}
}

func TestParseRules_RoomHintAndTitle(t *testing.T) {
	hint := parseRules("3층 대회의실 예약")
	if hint.RoomHint != "3층 대회의실 예약" {
		t.Errorf("RoomHint = %q, want the entire text", hint.RoomHint)
	}
	if hint.Title != "3층 대회의실 예약" {
		t.Errorf("Title = %q, want the entire text", hint.Title)
	}

	hint = parseRules("점심 먹자")
	if hint.RoomHint != "" {
		t.Errorf("RoomHint = %q, want empty for text without room tokens", hint.RoomHint)
	}
	if hint.Title != "점심 먹자" {
		t.Errorf("Title = %q, want the entire text", hint.Title)
	}
}

// stubRefiner returns a fixed hint or error.
type stubRefiner struct {
	hint *models.Hint
	err  error
}

func (s *stubRefiner) Refine(ctx context.Context, text string) (*models.Hint, error) {
	return s.hint, s.err
}

func TestExtract_RefinerMerge(t *testing.T) {
	refined := &models.Hint{
		Floor:    intPtr(7),
		RoomHint: "4층 세미나룸",
		Start:    "13:00",
		End:      "14:00",
		Title:    "오후 회의",
	}
	e := NewExtractor(&stubRefiner{hint: refined})

	hint := e.Extract(context.Background(), "3층 9~11 회의실")

	// Deterministic fields win per field.
	if hint.Floor == nil || *hint.Floor != 3 {
		t.Errorf("Floor = %v, want deterministic 3", hint.Floor)
	}
	if hint.Start != "09:00" || hint.End != "11:00" {
		t.Errorf("time = %q~%q, want deterministic 09:00~11:00", hint.Start, hint.End)
	}
	// The refined room name replaces the coarse full-text hint.
	if hint.RoomHint != "4층 세미나룸" {
		t.Errorf("RoomHint = %q, want refined room name", hint.RoomHint)
	}
	// Title was already set, so the refined one is ignored.
	if hint.Title != "3층 9~11 회의실" {
		t.Errorf("Title = %q, want original text", hint.Title)
	}
}

func TestExtract_RefinerFillsEmptyFields(t *testing.T) {
	refined := &models.Hint{Start: "13:00", End: "14:00"}
	e := NewExtractor(&stubRefiner{hint: refined})

	hint := e.Extract(context.Background(), "오후에 회의실 잡아줘")
	if hint.Start != "13:00" || hint.End != "14:00" {
		t.Errorf("time = %q~%q, want refined 13:00~14:00", hint.Start, hint.End)
	}
}

func TestExtract_RefinerFailureIsSwallowed(t *testing.T) {
	e := NewExtractor(&stubRefiner{err: errors.New("model unavailable")})

	hint := e.Extract(context.Background(), "3층 9~11 회의실")
	if hint.Start != "09:00" || hint.End != "11:00" {
		t.Errorf("time = %q~%q, want deterministic result on refiner failure", hint.Start, hint.End)
	}
	if hint.Floor == nil || *hint.Floor != 3 {
		t.Errorf("Floor = %v, want deterministic 3", hint.Floor)
	}
}

func TestExtract_EmptyTextSkipsRefiner(t *testing.T) {
	refined := &models.Hint{Title: "should not appear"}
	e := NewExtractor(&stubRefiner{hint: refined})

	hint := e.Extract(context.Background(), "   ")
	if hint != (models.Hint{}) {
		t.Errorf("Extract(blank) = %+v, want zero hint", hint)
	}
}

func TestParseRefineReply(t *testing.T) {
	t.Run("bare json", func(t *testing.T) {
		hint, err := parseRefineReply(`{"floor":3,"room_name":"3층 대회의실","start":"09:00","end":"11:00","title":"회의"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hint.Floor == nil || *hint.Floor != 3 || hint.RoomHint != "3층 대회의실" {
			t.Errorf("got %+v", hint)
		}
	})

	t.Run("code fenced json", func(t *testing.T) {
		hint, err := parseRefineReply("```json\n{\"floor\":null,\"room_name\":null,\"start\":\"09:00\",\"end\":null,\"title\":\"회의\"}\n```")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hint.Start != "09:00" || hint.Floor != nil {
			t.Errorf("got %+v", hint)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := parseRefineReply("not json at all"); err == nil {
			t.Fatal("expected error for malformed reply")
		}
	})
}

func intPtr(n int) *int { return &n }
