package schedule

// WeeklyIndex maps each tracked weekday to the entries committed for it, in
// commit order. Overlap freedom holds only when callers check FitsAll before
// Commit; Commit itself never rejects.
type WeeklyIndex struct {
	days map[DayOfWeek][]Entry
}

func NewWeeklyIndex() *WeeklyIndex {
	idx := &WeeklyIndex{days: make(map[DayOfWeek][]Entry, len(Weekdays))}
	for _, d := range Weekdays {
		idx.days[d] = []Entry{}
	}
	return idx
}

// Fits reports whether iv collides with nothing already stored under day.
// Days outside the tracked weekdays always fit.
func (idx *WeeklyIndex) Fits(day DayOfWeek, iv Interval) bool {
	if !day.IsWeekday() {
		return true
	}
	for _, e := range idx.days[day] {
		if Overlaps(e.Interval, iv) {
			return false
		}
	}
	return true
}

// FitsAll checks each slot against the current index only; a candidate's own
// slots are never compared with one another.
func (idx *WeeklyIndex) FitsAll(slots []Slot) bool {
	for _, s := range slots {
		if !idx.Fits(s.Day, s.Interval) {
			return false
		}
	}
	return true
}

// Conflicts returns the stored entries on day that overlap iv.
func (idx *WeeklyIndex) Conflicts(day DayOfWeek, iv Interval) []Entry {
	if !day.IsWeekday() {
		return nil
	}
	var out []Entry
	for _, e := range idx.days[day] {
		if Overlaps(e.Interval, iv) {
			out = append(out, e)
		}
	}
	return out
}

// Commit appends entries on tracked weekdays and ignores the rest. It returns
// how many entries were stored.
func (idx *WeeklyIndex) Commit(entries ...Entry) int {
	stored := 0
	for _, e := range entries {
		if !e.Day.IsWeekday() {
			continue
		}
		idx.days[e.Day] = append(idx.days[e.Day], e)
		stored++
	}
	return stored
}

// Entries returns a copy of the entries stored under day.
func (idx *WeeklyIndex) Entries(day DayOfWeek) []Entry {
	stored := idx.days[day]
	out := make([]Entry, len(stored))
	copy(out, stored)
	return out
}

// Days returns the tracked weekdays in display order.
func (idx *WeeklyIndex) Days() []DayOfWeek {
	out := make([]DayOfWeek, len(Weekdays))
	copy(out, Weekdays)
	return out
}

// Len is the total number of committed entries.
func (idx *WeeklyIndex) Len() int {
	n := 0
	for _, entries := range idx.days {
		n += len(entries)
	}
	return n
}

// Labels renders the index as day -> display labels.
func (idx *WeeklyIndex) Labels() map[DayOfWeek][]string {
	out := make(map[DayOfWeek][]string, len(Weekdays))
	for _, d := range Weekdays {
		labels := make([]string, 0, len(idx.days[d]))
		for _, e := range idx.days[d] {
			labels = append(labels, e.Label())
		}
		out[d] = labels
	}
	return out
}
