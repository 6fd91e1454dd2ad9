package schedule

import (
	"errors"
	"fmt"
	"strconv"
)

const minutesPerDay = 24 * 60

// ErrIntervalInvariant is returned when an interval does not satisfy start < end.
var ErrIntervalInvariant = errors.New("interval start must be before end")

// TimeOfDay is a wall-clock time within a single day, in minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses a zero-padded 24-hour "HH:MM" value.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, &ParseError{Input: s, Reason: "expected HH:MM"}
	}
	h, errH := strconv.Atoi(s[:2])
	m, errM := strconv.Atoi(s[3:])
	if errH != nil || errM != nil || !isDigits(s[:2]) || !isDigits(s[3:]) {
		return 0, &ParseError{Input: s, Reason: "non-numeric time field"}
	}
	if h > 23 {
		return 0, &ParseError{Input: s, Reason: "hour out of range"}
	}
	if m > 59 {
		return 0, &ParseError{Input: s, Reason: "minute out of range"}
	}
	return TimeOfDay(h*60 + m), nil
}

// Clock builds a TimeOfDay from hour and minute, clamping into a single day.
func Clock(hour, minute int) TimeOfDay {
	t := hour*60 + minute
	if t < 0 {
		t = 0
	}
	if t >= minutesPerDay {
		t = minutesPerDay - 1
	}
	return TimeOfDay(t)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Interval is a half-open [Start, End) span on a single day.
type Interval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// NewInterval rejects zero-length and inverted spans.
func NewInterval(start, end TimeOfDay) (Interval, error) {
	if start >= end {
		return Interval{}, fmt.Errorf("%w: %s - %s", ErrIntervalInvariant, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// MustInterval is NewInterval for callers that already validated their input.
// It panics on an invalid span.
func MustInterval(start, end TimeOfDay) Interval {
	iv, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// Overlaps reports whether the two intervals share any minute. Touching
// endpoints do not count.
func (iv Interval) Overlaps(other Interval) bool {
	return Overlaps(iv, other)
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s - %s", iv.Start, iv.End)
}

// Overlaps is the half-open overlap predicate: a.Start < b.End && b.Start < a.End.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// DayOfWeek is the day label taken verbatim from schedule text.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MON"
	Tuesday   DayOfWeek = "TUE"
	Wednesday DayOfWeek = "WED"
	Thursday  DayOfWeek = "THU"
	Friday    DayOfWeek = "FRI"
)

// Weekdays lists the days the index tracks, in display order.
var Weekdays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday}

// IsWeekday is a case-sensitive match against the five tracked days.
func (d DayOfWeek) IsWeekday() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}
	return false
}

// Position returns the column of d in Weekdays, or -1.
func (d DayOfWeek) Position() int {
	for i, wd := range Weekdays {
		if wd == d {
			return i
		}
	}
	return -1
}

// Slot is one parsed (day, interval) occurrence of a course meeting.
type Slot struct {
	Day      DayOfWeek `json:"day"`
	Interval Interval  `json:"interval"`
}

func (s Slot) String() string {
	return fmt.Sprintf("%s : %s", s.Day, s.Interval)
}

// Entry is a committed slot together with the course it belongs to.
type Entry struct {
	CourseCode string    `json:"courseCode"`
	CourseName string    `json:"courseName"`
	Location   string    `json:"location"`
	Day        DayOfWeek `json:"day"`
	Interval   Interval  `json:"interval"`
}

// EntriesFor expands a course's slots into entries.
func EntriesFor(code, name, location string, slots []Slot) []Entry {
	entries := make([]Entry, 0, len(slots))
	for _, s := range slots {
		entries = append(entries, Entry{
			CourseCode: code,
			CourseName: name,
			Location:   location,
			Day:        s.Day,
			Interval:   s.Interval,
		})
	}
	return entries
}

// ParseError describes a single schedule fragment that could not be used.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
