package models

import "github.com/OzanKutlar/Ders-Control/internal/app/services/core/schedule"

// ParseProblem is a schedule fragment that could not be read for a course.
type ParseProblem struct {
	Section string
	Err     error
}

func (p ParseProblem) Error() string {
	return p.Section + ": " + p.Err.Error()
}

func (p ParseProblem) Unwrap() error {
	return p.Err
}

// FitResult is a candidate course accepted against the committed week.
type FitResult struct {
	Course  Course
	Slots   []schedule.Slot
	Skipped []error
}

// FitReport is the outcome of checking candidates against the committed week.
// Problems covers every candidate, fitting or not.
type FitReport struct {
	Index    *schedule.WeeklyIndex
	Fitting  []FitResult
	Problems []ParseProblem
}
