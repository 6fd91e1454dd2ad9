package schedule

import (
	"fmt"
	"strings"
)

const (
	labelFieldSeparator = " - "
	labelTimeSeparator  = ": "
)

// Label renders "<code> - <name> - <location>: HH:MM - HH:MM".
func (e Entry) Label() string {
	return fmt.Sprintf("%s - %s - %s: %s", e.CourseCode, e.CourseName, e.Location, e.Interval)
}

// ParseLabel reverses Label. The day is not part of a label and is left empty.
// A course name that itself contains " - " is kept intact.
func ParseLabel(label string) (Entry, error) {
	cut := strings.LastIndex(label, labelTimeSeparator)
	if cut < 0 {
		return Entry{}, &ParseError{Input: label, Reason: "missing time range"}
	}
	head, times := label[:cut], label[cut+len(labelTimeSeparator):]

	bounds := strings.Split(times, labelFieldSeparator)
	if len(bounds) != 2 {
		return Entry{}, &ParseError{Input: label, Reason: "expected HH:MM - HH:MM"}
	}
	start, err := ParseTimeOfDay(bounds[0])
	if err != nil {
		return Entry{}, &ParseError{Input: label, Reason: "invalid start time", Err: err}
	}
	end, err := ParseTimeOfDay(bounds[1])
	if err != nil {
		return Entry{}, &ParseError{Input: label, Reason: "invalid end time", Err: err}
	}
	iv, err := NewInterval(start, end)
	if err != nil {
		return Entry{}, &ParseError{Input: label, Reason: "empty or inverted range", Err: err}
	}

	fields := strings.Split(head, labelFieldSeparator)
	if len(fields) < 3 {
		return Entry{}, &ParseError{Input: label, Reason: "expected code - name - location"}
	}
	return Entry{
		CourseCode: fields[0],
		CourseName: strings.Join(fields[1:len(fields)-1], labelFieldSeparator),
		Location:   fields[len(fields)-1],
		Interval:   iv,
	}, nil
}
