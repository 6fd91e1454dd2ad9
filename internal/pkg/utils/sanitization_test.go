package utils

import (
	"testing"

	"github.com/OzanKutlar/Ders-Control/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSanitizeCourseRequest(t *testing.T) {
	t.Run("Fields Are Trimmed", func(t *testing.T) {
		request := &requests.Course{
			CourseCode: "  CS101 ",
			CourseName: " Intro ",
			Section:    " CS101-01\t",
			Location:   " B101 ",
			Schedule:   strPtr("  MON : 09:00 - 10:50  "),
		}

		SanitizeCourseRequest(request)

		assert.Equal(t, "CS101", request.CourseCode, "course code should be trimmed")
		assert.Equal(t, "Intro", request.CourseName, "course name should be trimmed")
		assert.Equal(t, "CS101-01", request.Section, "section should be trimmed")
		assert.Equal(t, "B101", request.Location, "location should be trimmed")
		require.NotNil(t, request.Schedule)
		assert.Equal(t, "MON : 09:00 - 10:50", *request.Schedule, "schedule should be trimmed")
	})

	t.Run("Blank Schedule Becomes Missing", func(t *testing.T) {
		request := &requests.Course{Section: "X", Schedule: strPtr("   ")}
		SanitizeCourseRequest(request)
		assert.Nil(t, request.Schedule, "blank schedule should be treated as missing")
	})

	t.Run("Day Case Is Kept", func(t *testing.T) {
		request := &requests.FitsRequest{Slots: []requests.SlotRequest{{Day: " mon ", Start: "09:00 ", End: " 10:00"}}}
		SanitizeFitsRequest(request)
		assert.Equal(t, requests.SlotRequest{Day: "mon", Start: "09:00", End: "10:00"}, request.Slots[0])
	})
}

func TestSanitizeLoadClassFileRequest(t *testing.T) {
	request := &requests.LoadClassFileRequest{Filename: "  classes.json \n"}
	SanitizeLoadClassFileRequest(request)
	assert.Equal(t, "classes.json", request.Filename)
}
