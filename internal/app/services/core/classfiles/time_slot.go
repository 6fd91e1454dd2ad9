package classfiles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/utils"
)

const (
	dayStart = constvars.ClassFileDayStartMinute
	dayEnd   = constvars.ClassFileDayEndMinute
)

// ProcessTimeSlot turns "DAY : HH:MM - HH:MM" into its rounded form. The
// start is rounded down and the end up to a half hour, both pulled into
// the 09:00-20:00 window. Slots still empty after that are dropped.
func ProcessTimeSlot(raw string) (string, bool) {
	parts := strings.Split(raw, " : ")
	if len(parts) != 2 {
		return "", false
	}
	day := strings.ToUpper(strings.TrimSpace(parts[0]))

	times := strings.Split(strings.TrimSpace(parts[1]), " - ")
	if len(times) != 2 {
		return "", false
	}
	start, ok := parseClock(times[0])
	if !ok {
		return "", false
	}
	end, ok := parseClock(times[1])
	if !ok {
		return "", false
	}

	start = roundStart(start)
	end = roundEnd(end)
	if start < dayStart || end > dayEnd || start >= end {
		return "", false
	}
	return fmt.Sprintf("%s : %s - %s", day, formatClock(start), formatClock(end)), true
}

func roundStart(minutes int) int {
	switch hour := minutes / 60; {
	case hour < dayStart/60:
		return dayStart
	case hour >= dayEnd/60:
		return dayEnd - 30
	}
	return utils.RoundDownHalfHour(minutes)
}

func roundEnd(minutes int) int {
	minutes = utils.RoundUpHalfHour(minutes)
	switch {
	case minutes < dayStart:
		return dayStart + 30
	case minutes > dayEnd:
		return dayEnd
	}
	return minutes
}

// parseClock accepts H:MM or HH:MM with a valid minute. Hours are not
// range checked so late values clamp to the window.
func parseClock(text string) (int, bool) {
	hm := strings.Split(strings.TrimSpace(text), ":")
	if len(hm) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hm[0])
	if err != nil || h < 0 {
		return 0, false
	}
	m, err := strconv.Atoi(hm[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
