package schedule

import "strings"

// Candidate is a course offered for selection together with its raw schedule
// text. A nil Schedule means the listing had no schedule.
type Candidate struct {
	Code     string
	Name     string
	Location string
	Schedule *string
}

// Match is a checked candidate with the slots that were tested and any
// fragments that had to be dropped while parsing.
type Match struct {
	Position  int
	Candidate Candidate
	Slots     []Slot
	Skipped   []error
	Fits      bool
}

// ScanCandidates checks every candidate against the index and returns one
// Match per candidate, in input order. Candidates without a single parseable
// slot never fit.
func ScanCandidates(idx *WeeklyIndex, candidates []Candidate) []Match {
	out := make([]Match, 0, len(candidates))
	for i, c := range candidates {
		slots, errs := ParseOptionalSchedule(c.Schedule)
		if len(slots) == 0 && len(errs) == 0 && c.Schedule != nil && strings.TrimSpace(*c.Schedule) != "" {
			errs = append(errs, &ParseError{Input: *c.Schedule, Reason: "no DAY : HH:MM - HH:MM fragment"})
		}
		out = append(out, Match{
			Position:  i,
			Candidate: c,
			Slots:     slots,
			Skipped:   errs,
			Fits:      len(slots) > 0 && idx.FitsAll(slots),
		})
	}
	return out
}

// FilterCandidates keeps, in input order, the candidates whose every slot fits
// the index.
func FilterCandidates(idx *WeeklyIndex, candidates []Candidate) []Match {
	var out []Match
	for _, m := range ScanCandidates(idx, candidates) {
		if m.Fits {
			out = append(out, m)
		}
	}
	return out
}

// CommitCandidate parses a trusted, already accepted course and stores its
// weekday slots without checking for overlaps.
func CommitCandidate(idx *WeeklyIndex, c Candidate) (int, []error) {
	slots, errs := ParseOptionalSchedule(c.Schedule)
	return idx.Commit(EntriesFor(c.Code, c.Name, c.Location, slots)...), errs
}
