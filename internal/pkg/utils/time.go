package utils

// RoundDownHalfHour snaps minutes since midnight down to :00 or :30.
func RoundDownHalfHour(minutes int) int {
	if minutes < 0 {
		return 0
	}
	return minutes - minutes%30
}

// RoundUpHalfHour snaps minutes since midnight up to the next :00 or :30.
func RoundUpHalfHour(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	if rem := minutes % 30; rem != 0 {
		return minutes + 30 - rem
	}
	return minutes
}

// ClampMinutes bounds minutes to [low, high].
func ClampMinutes(minutes, low, high int) int {
	if minutes < low {
		return low
	}
	if minutes > high {
		return high
	}
	return minutes
}
