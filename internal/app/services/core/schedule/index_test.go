package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(code string, day DayOfWeek, from, to TimeOfDay) Entry {
	return Entry{CourseCode: code, CourseName: code + " name", Location: "A101", Day: day, Interval: MustInterval(from, to)}
}

func TestNewWeeklyIndex(t *testing.T) {
	idx := NewWeeklyIndex()
	assert.Equal(t, Weekdays, idx.Days())
	assert.Equal(t, 0, idx.Len())
	for _, d := range Weekdays {
		assert.Empty(t, idx.Entries(d))
	}
}

func TestWeeklyIndexFits(t *testing.T) {
	idx := NewWeeklyIndex()
	idx.Commit(entry("CS101", Monday, Clock(9, 0), Clock(10, 50)))

	t.Run("Touching Boundary Fits", func(t *testing.T) {
		assert.True(t, idx.Fits(Monday, MustInterval(Clock(10, 50), Clock(11, 40))))
		assert.True(t, idx.Fits(Monday, MustInterval(Clock(8, 0), Clock(9, 0))))
	})

	t.Run("Identical Interval Is Rejected", func(t *testing.T) {
		assert.False(t, idx.Fits(Monday, MustInterval(Clock(9, 0), Clock(10, 50))))
	})

	t.Run("True Overlap Is Rejected", func(t *testing.T) {
		assert.False(t, idx.Fits(Monday, MustInterval(Clock(10, 0), Clock(11, 0))))
	})

	t.Run("Other Days Are Independent", func(t *testing.T) {
		assert.True(t, idx.Fits(Tuesday, MustInterval(Clock(9, 0), Clock(10, 50))))
	})

	t.Run("Unknown Day Always Fits", func(t *testing.T) {
		assert.True(t, idx.Fits("SAT", MustInterval(Clock(9, 0), Clock(10, 50))))
		assert.True(t, idx.Fits("mon", MustInterval(Clock(9, 0), Clock(10, 50))))
	})

	t.Run("Fits Does Not Mutate", func(t *testing.T) {
		before := idx.Len()
		idx.Fits(Monday, MustInterval(Clock(12, 0), Clock(13, 0)))
		assert.Equal(t, before, idx.Len())
	})
}

func TestWeeklyIndexFitsAll(t *testing.T) {
	idx := NewWeeklyIndex()
	idx.Commit(entry("CS101", Monday, Clock(9, 0), Clock(10, 50)))

	t.Run("All Slots Must Fit", func(t *testing.T) {
		ok := idx.FitsAll([]Slot{
			{Day: Wednesday, Interval: MustInterval(Clock(9, 0), Clock(10, 50))},
			{Day: Monday, Interval: MustInterval(Clock(10, 0), Clock(11, 0))},
		})
		assert.False(t, ok)
	})

	t.Run("Own Slots Are Not Compared", func(t *testing.T) {
		ok := idx.FitsAll([]Slot{
			{Day: Thursday, Interval: MustInterval(Clock(9, 0), Clock(10, 50))},
			{Day: Thursday, Interval: MustInterval(Clock(10, 0), Clock(11, 0))},
		})
		assert.True(t, ok)
	})

	t.Run("Empty Slots Fit", func(t *testing.T) {
		assert.True(t, idx.FitsAll(nil))
	})
}

func TestWeeklyIndexCommit(t *testing.T) {
	t.Run("Preserves Commit Order", func(t *testing.T) {
		idx := NewWeeklyIndex()
		idx.Commit(
			entry("LATE", Friday, Clock(15, 0), Clock(16, 0)),
			entry("EARLY", Friday, Clock(8, 0), Clock(9, 0)),
		)
		got := idx.Entries(Friday)
		require.Len(t, got, 2)
		assert.Equal(t, "LATE", got[0].CourseCode)
		assert.Equal(t, "EARLY", got[1].CourseCode)
	})

	t.Run("Unknown Days Are Not Stored", func(t *testing.T) {
		idx := NewWeeklyIndex()
		stored := idx.Commit(entry("WKND", "SAT", Clock(9, 0), Clock(10, 0)))
		assert.Equal(t, 0, stored)
		assert.Equal(t, 0, idx.Len())
		assert.Empty(t, idx.Entries("SAT"))
	})

	t.Run("Commit Does Not Check Fits", func(t *testing.T) {
		idx := NewWeeklyIndex()
		stored := idx.Commit(
			entry("A", Monday, Clock(9, 0), Clock(10, 0)),
			entry("B", Monday, Clock(9, 30), Clock(10, 30)),
		)
		assert.Equal(t, 2, stored)
	})

	t.Run("Entries Returns A Copy", func(t *testing.T) {
		idx := NewWeeklyIndex()
		idx.Commit(entry("A", Monday, Clock(9, 0), Clock(10, 0)))
		got := idx.Entries(Monday)
		got[0].CourseCode = "changed"
		assert.Equal(t, "A", idx.Entries(Monday)[0].CourseCode)
	})
}

func TestWeeklyIndexConflicts(t *testing.T) {
	idx := NewWeeklyIndex()
	idx.Commit(
		entry("A", Monday, Clock(9, 0), Clock(10, 0)),
		entry("B", Monday, Clock(10, 0), Clock(11, 0)),
		entry("C", Monday, Clock(13, 0), Clock(14, 0)),
	)

	conflicts := idx.Conflicts(Monday, MustInterval(Clock(9, 30), Clock(10, 30)))
	require.Len(t, conflicts, 2)
	assert.Equal(t, "A", conflicts[0].CourseCode)
	assert.Equal(t, "B", conflicts[1].CourseCode)

	assert.Empty(t, idx.Conflicts("SUN", MustInterval(Clock(9, 30), Clock(10, 30))))
}

func TestWeeklyIndexLabels(t *testing.T) {
	idx := NewWeeklyIndex()
	idx.Commit(entry("CS101", Tuesday, Clock(9, 0), Clock(10, 50)))

	labels := idx.Labels()
	assert.Len(t, labels, 5)
	assert.Equal(t, []string{"CS101 - CS101 name - A101: 09:00 - 10:50"}, labels[Tuesday])
	assert.Empty(t, labels[Monday])
}
