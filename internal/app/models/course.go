package models

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/schedule"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/dto/requests"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

// Course is one row of a course listing, as exported from the registration
// spreadsheet. JSON keys match the sheet headers.
type Course struct {
	CourseCode     string     `json:"Course Code" bson:"course_code"`
	CourseName     string     `json:"Course Name" bson:"course_name"`
	Section        string     `json:"Section" bson:"section"`
	FullCourseName string     `json:"Full Course Name" bson:"full_course_name"`
	Instructor     string     `json:"Instructor" bson:"instructor"`
	Schedule       *string    `json:"Schedule" bson:"schedule"`
	Location       string     `json:"Location" bson:"location"`
	Capacity       FlexString `json:"Capacity" bson:"capacity"`
}

// Candidate exposes the course to the schedule index. The section is the
// code shown on the timetable.
func (c Course) Candidate() schedule.Candidate {
	return schedule.Candidate{
		Code:     c.Section,
		Name:     c.CourseName,
		Location: c.Location,
		Schedule: c.Schedule,
	}
}

func (c Course) ConvertIntoResponse(slots []schedule.Slot) responses.Course {
	rendered := make([]string, 0, len(slots))
	for _, s := range slots {
		rendered = append(rendered, s.String())
	}
	return responses.Course{
		Code:       c.Section,
		Name:       c.CourseName,
		Instructor: c.Instructor,
		Location:   c.Location,
		Capacity:   string(c.Capacity),
		TimeSlots:  rendered,
	}
}

func CourseFromRequest(req requests.Course) Course {
	return Course{
		CourseCode: req.CourseCode,
		CourseName: req.CourseName,
		Section:    req.Section,
		Instructor: req.Instructor,
		Schedule:   req.Schedule,
		Location:   req.Location,
		Capacity:   FlexString(req.Capacity),
	}
}

func CoursesFromRequest(reqs []requests.Course) []Course {
	courses := make([]Course, 0, len(reqs))
	for _, req := range reqs {
		courses = append(courses, CourseFromRequest(req))
	}
	return courses
}

// FlexString accepts JSON strings, numbers and null, since spreadsheet exports
// write numeric cells as numbers.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = FlexString(trimFloat(num.String()))
	return nil
}

// trimFloat turns "30.0" into "30" so spreadsheet integers read back cleanly.
func trimFloat(s string) string {
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) && strings.Contains(s, ".") {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}
