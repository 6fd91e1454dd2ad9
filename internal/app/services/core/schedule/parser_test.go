package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	t.Run("Single Slot", func(t *testing.T) {
		slots, errs := ParseSchedule("MON : 09:00 - 10:50")
		assert.Empty(t, errs)
		require.Len(t, slots, 1)
		assert.Equal(t, Monday, slots[0].Day)
		assert.Equal(t, MustInterval(Clock(9, 0), Clock(10, 50)), slots[0].Interval)
	})

	t.Run("Whitespace Is Insignificant", func(t *testing.T) {
		slots, errs := ParseSchedule("TUE:13:00-14:50 WED  :  08:00   -   09:50")
		assert.Empty(t, errs)
		require.Len(t, slots, 2)
		assert.Equal(t, Tuesday, slots[0].Day)
		assert.Equal(t, Wednesday, slots[1].Day)
		assert.Equal(t, "08:00 - 09:50", slots[1].Interval.String())
	})

	t.Run("Drops Malformed Middle Line", func(t *testing.T) {
		slots, errs := ParseSchedule("MON : 09:00 - 10:50\nXYZ : garbage\nWED : 13:00 - 14:00")
		assert.Empty(t, errs)
		require.Len(t, slots, 2)
		assert.Equal(t, Monday, slots[0].Day)
		assert.Equal(t, Wednesday, slots[1].Day)
	})

	t.Run("Out Of Range Time Fails Only That Match", func(t *testing.T) {
		slots, errs := ParseSchedule("MON : 25:00 - 26:00 - THU : 10:00 - 11:00")
		require.Len(t, slots, 1)
		assert.Equal(t, Thursday, slots[0].Day)
		require.Len(t, errs, 1)
		var perr *ParseError
		assert.True(t, errors.As(errs[0], &perr))
	})

	t.Run("One Digit Hour Is Reported", func(t *testing.T) {
		slots, errs := ParseSchedule("FRI : 9:00 - 10:00")
		assert.Empty(t, slots)
		assert.Len(t, errs, 1)
	})

	t.Run("Inverted Range Is A Parse Error", func(t *testing.T) {
		slots, errs := ParseSchedule("MON : 11:00 - 10:00")
		assert.Empty(t, slots)
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], ErrIntervalInvariant)
	})

	t.Run("Unknown Day Is Carried", func(t *testing.T) {
		slots, errs := ParseSchedule("SAT : 09:00 - 10:00")
		assert.Empty(t, errs)
		require.Len(t, slots, 1)
		assert.Equal(t, DayOfWeek("SAT"), slots[0].Day)
		assert.False(t, slots[0].Day.IsWeekday())
	})

	t.Run("Day Token Is Case Sensitive", func(t *testing.T) {
		slots, _ := ParseSchedule("mon : 09:00 - 10:00")
		require.Len(t, slots, 1)
		assert.Equal(t, DayOfWeek("mon"), slots[0].Day)
		assert.False(t, slots[0].Day.IsWeekday())
	})

	t.Run("No Matches", func(t *testing.T) {
		slots, errs := ParseSchedule("TBA")
		assert.Empty(t, slots)
		assert.Empty(t, errs)
	})
}

func TestParseOptionalSchedule(t *testing.T) {
	slots, errs := ParseOptionalSchedule(nil)
	assert.Empty(t, slots)
	assert.Empty(t, errs)

	text := "THU : 15:00 - 16:50"
	slots, errs = ParseOptionalSchedule(&text)
	assert.Empty(t, errs)
	assert.Len(t, slots, 1)
}

func TestParseSlot(t *testing.T) {
	slot, err := ParseSlot("  WED : 13:00 - 14:00 ")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, slot.Day)
	assert.Equal(t, "WED : 13:00 - 14:00", slot.String())

	_, err = ParseSlot("WED : 13:00 - 14:00 extra")
	assert.Error(t, err)

	_, err = ParseSlot("WED 13:00")
	assert.Error(t, err)
}
