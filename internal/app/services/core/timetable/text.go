package timetable

import (
	"fmt"
	"strings"

	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/schedule"
)

const noClasses = "No classes"

// RenderText prints the weekly index one day per block, Monday first:
//
//	MON:
//	  CS101-01 - Intro - B101: 09:00 - 10:50
//	TUE:
//	  No classes
func RenderText(idx *schedule.WeeklyIndex) string {
	var sb strings.Builder
	labels := idx.Labels()
	for _, day := range idx.Days() {
		fmt.Fprintf(&sb, "%s:\n", day)
		if len(labels[day]) == 0 {
			fmt.Fprintf(&sb, "  %s\n", noClasses)
			continue
		}
		for _, label := range labels[day] {
			fmt.Fprintf(&sb, "  %s\n", label)
		}
	}
	return sb.String()
}

// RenderFound lists the courses that fit, each followed by all of its slots.
func RenderFound(fits []models.FitResult) string {
	var sb strings.Builder
	for _, fit := range fits {
		c := fit.Course
		fmt.Fprintf(&sb, "Found class %s - %s - %s:\n", c.Section, c.CourseName, c.Location)
		for _, slot := range fit.Slots {
			fmt.Fprintf(&sb, "  - %s\n", slot)
		}
	}
	return sb.String()
}

// IndexSelected builds a weekly index from exported classes so they can be
// shown with RenderText or RenderBoard. Slot strings that cannot be read are
// returned as problems.
func IndexSelected(selected models.SelectedCourses) (*schedule.WeeklyIndex, []models.ParseProblem) {
	idx := schedule.NewWeeklyIndex()
	var problems []models.ParseProblem
	for _, class := range selected.SelectedCourses {
		for _, text := range class.TimeSlots {
			slot, err := schedule.ParseSlot(text)
			if err != nil {
				problems = append(problems, models.ParseProblem{Section: class.Code, Err: err})
				continue
			}
			idx.Commit(schedule.EntriesFor(class.Code, class.Name, class.Classroom, []schedule.Slot{slot})...)
		}
	}
	return idx, problems
}
