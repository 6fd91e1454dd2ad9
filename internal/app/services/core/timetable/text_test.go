package timetable

import (
	"testing"

	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleIndex() *schedule.WeeklyIndex {
	idx := schedule.NewWeeklyIndex()
	schedule.CommitCandidate(idx, schedule.Candidate{Code: "CS101-01", Name: "Intro", Location: "B101", Schedule: strPtr("MON : 09:00 - 10:50 WED : 09:00 - 10:50")})
	schedule.CommitCandidate(idx, schedule.Candidate{Code: "MATH201-02", Name: "Calculus", Location: "C3", Schedule: strPtr("MON : 13:00 - 14:50")})
	return idx
}

func TestRenderText(t *testing.T) {
	want := "MON:\n" +
		"  CS101-01 - Intro - B101: 09:00 - 10:50\n" +
		"  MATH201-02 - Calculus - C3: 13:00 - 14:50\n" +
		"TUE:\n" +
		"  No classes\n" +
		"WED:\n" +
		"  CS101-01 - Intro - B101: 09:00 - 10:50\n" +
		"THU:\n" +
		"  No classes\n" +
		"FRI:\n" +
		"  No classes\n"
	assert.Equal(t, want, RenderText(sampleIndex()))
}

func TestRenderFound(t *testing.T) {
	slots, errs := schedule.ParseSchedule("TUE : 13:00 - 14:50 SAT : 10:00 - 11:00")
	require.Empty(t, errs)

	out := RenderFound([]models.FitResult{{
		Course: models.Course{Section: "PHYS1-01", CourseName: "Physics", Location: "NULL"},
		Slots:  slots,
	}})
	assert.Equal(t, "Found class PHYS1-01 - Physics - NULL:\n  - TUE : 13:00 - 14:50\n  - SAT : 10:00 - 11:00\n", out)
	assert.Empty(t, RenderFound(nil))
}

func TestRenderBoard(t *testing.T) {
	board := RenderBoard(sampleIndex())
	for _, want := range []string{"MON", "TUE", "WED", "THU", "FRI", "CS101-01", "Calculus", "09:00 - 10:50", "No classes"} {
		assert.Contains(t, board, want)
	}
}

func TestIndexSelected(t *testing.T) {
	t.Run("Weekday Slots Are Indexed", func(t *testing.T) {
		idx, problems := IndexSelected(models.SelectedCourses{SelectedCourses: []models.ExportedClass{
			{Code: "CS101", Name: "Intro", Classroom: "B101", TimeSlots: []string{"MON : 09:00 - 10:50", "THU : 13:00 - 14:50"}},
			{Code: "HIST", Name: "History", Classroom: "NULL", TimeSlots: []string{"SAT : 09:00 - 10:00"}},
		}})
		assert.Empty(t, problems)
		assert.Equal(t, 2, idx.Len())
		assert.Equal(t, []string{"CS101 - Intro - B101: 13:00 - 14:50"}, idx.Labels()[schedule.Thursday])
	})

	t.Run("Bad Slot Strings Are Reported", func(t *testing.T) {
		idx, problems := IndexSelected(models.SelectedCourses{SelectedCourses: []models.ExportedClass{
			{Code: "CS101", Name: "Intro", Classroom: "B101", TimeSlots: []string{"MON : 09:00 - 10:50", "TBA", "TUE : 25:00 - 26:00"}},
		}})
		assert.Equal(t, 1, idx.Len())
		require.Len(t, problems, 2)
		assert.Equal(t, "CS101", problems[0].Section)
		assert.Equal(t, "CS101", problems[1].Section)
	})
}
