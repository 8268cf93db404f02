package nlu

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"meetbot/models"
	"meetbot/utils"

	"go.uber.org/zap"
)

var (
	// Matched against the text with all whitespace removed.
	timeRangeRe = regexp.MustCompile(`(\d{1,2})(?::?(\d{2}))?(?:~|부터)(\d{1,2})(?::?(\d{2}))?(?:까지)?`)
	floorRe     = regexp.MustCompile(`(\d{1,2})\s*층`)
	roomTokenRe = regexp.MustCompile(`회의실|룸|방`)
)

// refineTimeout bounds the optional enrichment call. The oracle must never
// hang the request; on expiry the deterministic result is returned unchanged.
const refineTimeout = 5 * time.Second

// Extractor turns free-text commands into partial reservation hints using
// deterministic pattern rules, optionally refined by a language model.
type Extractor struct {
	refiner Refiner
}

// NewExtractor builds an Extractor. refiner may be nil, in which case only
// the deterministic rules run.
func NewExtractor(refiner Refiner) *Extractor {
	return &Extractor{refiner: refiner}
}

// Extract parses the command text. It never fails: enrichment errors are
// logged and swallowed, and an empty text yields an empty hint.
func (e *Extractor) Extract(ctx context.Context, text string) models.Hint {
	text = strings.TrimSpace(text)
	hint := parseRules(text)

	if e.refiner == nil || text == "" {
		return hint
	}

	rctx, cancel := context.WithTimeout(ctx, refineTimeout)
	defer cancel()
	refined, err := e.refiner.Refine(rctx, text)
	if err != nil {
		utils.GetLogger().Warn("nlu: refine skipped", zap.Error(err))
		return hint
	}
	return merge(hint, refined)
}

// parseRules applies the deterministic extraction rules in order.
func parseRules(text string) models.Hint {
	var hint models.Hint

	// Time range, on whitespace-stripped text so "9 ~ 11" still matches.
	compact := strings.Join(strings.Fields(text), "")
	if m := timeRangeRe.FindStringSubmatch(compact); m != nil {
		sH, _ := strconv.Atoi(m[1])
		sM := atoiDefault(m[2], 0)
		eH, _ := strconv.Atoi(m[3])
		eM := atoiDefault(m[4], 0)

		start := sH*60 + sM
		end := eH*60 + eM
		// "9~10" means same day; an end at or before the start is pushed
		// forward by one hour rather than wrapped backwards.
		if end <= start {
			end += 60
			if end >= 24*60 {
				end -= 24 * 60
			}
		}
		hint.Start = clock(start)
		hint.End = clock(end)
	}

	// Floor, first match wins.
	if m := floorRe.FindStringSubmatch(text); m != nil {
		floor, _ := strconv.Atoi(m[1])
		hint.Floor = &floor
	}

	// Room-name hint: the whole text is a deliberately coarse signal, later
	// consumed as a substring filter over room ids and names.
	if roomTokenRe.MatchString(text) {
		hint.RoomHint = text
	}

	hint.Title = text
	return hint
}

// merge fills fields the deterministic pass left empty from the refined
// result. The refined room name, when present, replaces the coarse full-text
// hint since it is strictly more precise.
func merge(hint models.Hint, refined *models.Hint) models.Hint {
	if refined == nil {
		return hint
	}
	if hint.Floor == nil {
		hint.Floor = refined.Floor
	}
	if hint.Start == "" {
		hint.Start = refined.Start
	}
	if hint.End == "" {
		hint.End = refined.End
	}
	if refined.RoomHint != "" {
		hint.RoomHint = refined.RoomHint
	}
	if hint.Title == "" {
		hint.Title = refined.Title
	}
	return hint
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// clock formats minutes-since-midnight as a zero-padded "HH:MM" string.
// Out-of-range hours are formatted as written; validation beyond the regex
// shape is intentionally not performed.
func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
