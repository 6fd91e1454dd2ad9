package schedule

import (
	"regexp"
	"strings"
)

// Hour digits are captured loosely so a one-digit hour surfaces as a
// ParseError instead of silently failing to match.
var slotPattern = regexp.MustCompile(`(\w+)\s*:\s*(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})`)

// ParseSchedule extracts every "<day> : HH:MM - HH:MM" occurrence from text.
// Fragments with a bad time or an inverted range are skipped and reported;
// the remaining slots are still returned in textual order.
func ParseSchedule(text string) ([]Slot, []error) {
	var (
		slots []Slot
		errs  []error
	)
	for _, m := range slotPattern.FindAllStringSubmatch(text, -1) {
		slot, err := parseMatch(m[0], m[1], m[2], m[3])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		slots = append(slots, slot)
	}
	return slots, errs
}

// ParseOptionalSchedule treats a nil schedule as "no meetings".
func ParseOptionalSchedule(text *string) ([]Slot, []error) {
	if text == nil {
		return nil, nil
	}
	return ParseSchedule(*text)
}

// ParseSlot parses exactly one "<day> : HH:MM - HH:MM" fragment.
func ParseSlot(fragment string) (Slot, error) {
	trimmed := strings.TrimSpace(fragment)
	loc := slotPattern.FindStringSubmatchIndex(trimmed)
	if loc == nil || loc[0] != 0 || loc[1] != len(trimmed) {
		return Slot{}, &ParseError{Input: fragment, Reason: "expected DAY : HH:MM - HH:MM"}
	}
	return parseMatch(trimmed, trimmed[loc[2]:loc[3]], trimmed[loc[4]:loc[5]], trimmed[loc[6]:loc[7]])
}

func parseMatch(raw, day, from, to string) (Slot, error) {
	start, err := ParseTimeOfDay(from)
	if err != nil {
		return Slot{}, &ParseError{Input: raw, Reason: "invalid start time", Err: err}
	}
	end, err := ParseTimeOfDay(to)
	if err != nil {
		return Slot{}, &ParseError{Input: raw, Reason: "invalid end time", Err: err}
	}
	iv, err := NewInterval(start, end)
	if err != nil {
		return Slot{}, &ParseError{Input: raw, Reason: "empty or inverted range", Err: err}
	}
	return Slot{Day: DayOfWeek(day), Interval: iv}, nil
}
