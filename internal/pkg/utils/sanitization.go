package utils

import (
	"strings"

	"github.com/OzanKutlar/Ders-Control/internal/pkg/dto/requests"
)

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func SanitizeCourseRequest(input *requests.Course) {
	input.CourseCode = strings.TrimSpace(input.CourseCode)
	input.CourseName = strings.TrimSpace(input.CourseName)
	input.Section = strings.TrimSpace(input.Section)
	input.Instructor = strings.TrimSpace(input.Instructor)
	input.Location = strings.TrimSpace(input.Location)
	input.Capacity = strings.TrimSpace(input.Capacity)
	input.Schedule = trimOptional(input.Schedule)
}

func SanitizeCheckScheduleRequest(input *requests.CheckScheduleRequest) {
	for i := range input.Committed {
		SanitizeCourseRequest(&input.Committed[i])
	}
	for i := range input.Candidates {
		SanitizeCourseRequest(&input.Candidates[i])
	}
}

func SanitizeFitsRequest(input *requests.FitsRequest) {
	for i := range input.Committed {
		SanitizeCourseRequest(&input.Committed[i])
	}
	for i := range input.Slots {
		input.Slots[i].Day = strings.TrimSpace(input.Slots[i].Day)
		input.Slots[i].Start = strings.TrimSpace(input.Slots[i].Start)
		input.Slots[i].End = strings.TrimSpace(input.Slots[i].End)
	}
}

func SanitizeLoadClassFileRequest(input *requests.LoadClassFileRequest) {
	input.Filename = strings.TrimSpace(input.Filename)
}
