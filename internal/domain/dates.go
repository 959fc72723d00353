package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// CurrentTimeProvider provides the current time in the agent time zone.
type CurrentTimeProvider interface {
	Now() time.Time
}

var (
	relativePhraseRe = regexp.MustCompile(
		`(?i)^\s*(` +
			`today|tomorrow|yesterday|now` +
			`|` +
			`next\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)` +
			`|` +
			`in\s+\d{1,3}\s+(?:minute|hour|day|week)s?` +
			`)` +
			`(?:\s+at\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?)?\s*$`,
	)
	relativeOffsetRe = regexp.MustCompile(`(?i)^in\s+(\d{1,3})\s+(minute|hour|day|week)s?$`)
)

// ParseTaskTime resolves the start or end time supplied for a task. It accepts
// RFC 3339 timestamps, any layout understood by dateparse, and short relative
// phrases ("tomorrow at 9", "next friday", "in 2 hours") resolved against ref.
func ParseTaskTime(value string, ref time.Time, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, NewValidationErr("time value cannot be empty")
	}
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	if t, ok := resolveRelativePhrase(value, ref, loc); ok {
		return t, nil
	}

	t, err := dateparse.ParseIn(value, loc)
	if err != nil {
		return time.Time{}, NewValidationErr(fmt.Sprintf("unrecognized time %q", value))
	}
	return t, nil
}

func resolveRelativePhrase(value string, ref time.Time, loc *time.Location) (time.Time, bool) {
	m := relativePhraseRe.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, false
	}

	token := strings.Join(strings.Fields(strings.ToLower(m[1])), " ")
	ref = ref.In(loc)

	var resolved time.Time
	switch token {
	case "now":
		resolved = ref
	case "today":
		resolved = dateOnly(ref)
	case "tomorrow":
		resolved = dateOnly(ref).AddDate(0, 0, 1)
	case "yesterday":
		resolved = dateOnly(ref).AddDate(0, 0, -1)
	default:
		if after, ok := strings.CutPrefix(token, "next "); ok {
			wd, ok := parseWeekday(after)
			if !ok {
				return time.Time{}, false
			}
			resolved = nextWeekday(dateOnly(ref), wd)
			break
		}
		offset, ok := parseOffset(token)
		if !ok {
			return time.Time{}, false
		}
		resolved = ref.Add(offset)
	}

	if m[2] == "" {
		return resolved, true
	}
	return atClock(resolved, m[2], m[3], m[4])
}

func parseOffset(token string) (time.Duration, bool) {
	m := relativeOffsetRe.FindStringSubmatch(token)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(m[2]) {
	case "minute":
		return time.Duration(n) * time.Minute, true
	case "hour":
		return time.Duration(n) * time.Hour, true
	case "day":
		return time.Duration(n) * 24 * time.Hour, true
	case "week":
		return time.Duration(n) * 7 * 24 * time.Hour, true
	}
	return 0, false
}

func atClock(day time.Time, hourStr, minuteStr, meridiem string) (time.Time, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return time.Time{}, false
	}
	minute := 0
	if minuteStr != "" {
		if minute, err = strconv.Atoi(minuteStr); err != nil {
			return time.Time{}, false
		}
	}
	switch strings.ToLower(meridiem) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, hour, minute, 0, 0, day.Location()), true
}

func parseWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(s) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	default:
		return 0, false
	}
}

func nextWeekday(ref time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(ref.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return ref.AddDate(0, 0, delta)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
