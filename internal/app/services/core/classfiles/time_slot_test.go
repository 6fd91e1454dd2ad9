package classfiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessTimeSlot(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		output string
		ok     bool
	}{
		{"Rounds Both Ends", "MON : 09:20 - 11:20", "MON : 09:00 - 11:30", true},
		{"Rounds Quarter Hours", "TUE : 14:45 - 16:15", "TUE : 14:30 - 16:30", true},
		{"Early Start Clamps To Nine", "WED : 08:30 - 10:00", "WED : 09:00 - 10:00", true},
		{"Late End Clamps To Eight", "THU : 18:30 - 21:00", "THU : 18:30 - 20:00", true},
		{"Aligned Slot Is Unchanged", "FRI : 13:00 - 14:30", "FRI : 13:00 - 14:30", true},
		{"Day Is Upper Cased", "mon : 10:00 - 11:00", "MON : 10:00 - 11:00", true},
		{"Slot Before The Window Clamps", "MON : 07:00 - 08:00", "MON : 09:00 - 09:30", true},
		{"Slot After The Window Clamps", "MON : 20:10 - 21:00", "MON : 19:30 - 20:00", true},
		{"Reversed Slot Is Dropped", "MON : 12:00 - 11:00", "", false},
		{"Empty Slot Is Dropped", "MON : 10:00 - 10:00", "", false},
		{"Missing Separator", "MON 09:00 - 10:00", "", false},
		{"Garbage Time", "MON : ab:cd - 10:00", "", false},
		{"Missing End", "MON : 09:00", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := ProcessTimeSlot(c.input)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.output, got)
		})
	}
}
