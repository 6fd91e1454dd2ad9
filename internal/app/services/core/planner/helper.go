package planner

import (
	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/schedule"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/dto/responses"
)

// indexCourses commits every parseable weekday slot of already accepted
// courses. Accepted courses are trusted, so nothing is checked for fit.
func indexCourses(courses []models.Course) (*schedule.WeeklyIndex, []models.ParseProblem) {
	idx := schedule.NewWeeklyIndex()
	var problems []models.ParseProblem
	for _, c := range courses {
		_, errs := schedule.CommitCandidate(idx, c.Candidate())
		for _, err := range errs {
			problems = append(problems, models.ParseProblem{Section: c.Section, Err: err})
		}
	}
	return idx, problems
}

// filterCourses returns the fitting candidates and the parse problems of all
// candidates, including the rejected ones.
func filterCourses(idx *schedule.WeeklyIndex, courses []models.Course) ([]models.FitResult, []models.ParseProblem) {
	candidates := make([]schedule.Candidate, len(courses))
	for i, c := range courses {
		candidates[i] = c.Candidate()
	}

	var (
		results  []models.FitResult
		problems []models.ParseProblem
	)
	for _, m := range schedule.ScanCandidates(idx, candidates) {
		course := courses[m.Position]
		for _, err := range m.Skipped {
			problems = append(problems, models.ParseProblem{Section: course.Section, Err: err})
		}
		if !m.Fits {
			continue
		}
		results = append(results, models.FitResult{
			Course:  course,
			Slots:   m.Slots,
			Skipped: m.Skipped,
		})
	}
	return results, problems
}

func findSection(pool []models.Course, section string) (models.Course, bool) {
	for _, c := range pool {
		if c.Section == section {
			return c, true
		}
	}
	return models.Course{}, false
}

func conflictLabels(idx *schedule.WeeklyIndex, slots []schedule.Slot) []string {
	var labels []string
	for _, slot := range slots {
		for _, entry := range idx.Conflicts(slot.Day, slot.Interval) {
			labels = append(labels, entry.Label())
		}
	}
	return labels
}

// WeeklyResponse lists the index day by day, Monday first, in commit order.
func WeeklyResponse(idx *schedule.WeeklyIndex) responses.Weekly {
	weekly := responses.Weekly{Days: make([]responses.WeeklyDay, 0, len(schedule.Weekdays))}
	for _, day := range idx.Days() {
		entries := idx.Entries(day)
		weeklyDay := responses.WeeklyDay{Day: string(day), Entries: make([]responses.WeeklyEntry, 0, len(entries))}
		for _, e := range entries {
			weeklyDay.Entries = append(weeklyDay.Entries, responses.WeeklyEntry{
				Code:     e.CourseCode,
				Name:     e.CourseName,
				Location: e.Location,
				Start:    e.Interval.Start.String(),
				End:      e.Interval.End.String(),
				Label:    e.Label(),
			})
		}
		weekly.Days = append(weekly.Days, weeklyDay)
	}
	return weekly
}

func problemResponses(problems []models.ParseProblem) []responses.ParseProblem {
	if len(problems) == 0 {
		return nil
	}
	out := make([]responses.ParseProblem, 0, len(problems))
	for _, p := range problems {
		out = append(out, responses.ParseProblem{Course: p.Section, Error: p.Err.Error()})
	}
	return out
}
