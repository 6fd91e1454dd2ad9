package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfHourRounding(t *testing.T) {
	cases := []struct {
		minutes  int
		down, up int
	}{
		{9 * 60, 9 * 60, 9 * 60},
		{9*60 + 10, 9 * 60, 9*60 + 30},
		{9*60 + 30, 9*60 + 30, 9*60 + 30},
		{10*60 + 50, 10*60 + 30, 11 * 60},
		{0, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.down, RoundDownHalfHour(c.minutes), "down %d", c.minutes)
		assert.Equal(t, c.up, RoundUpHalfHour(c.minutes), "up %d", c.minutes)
	}
}

func TestClampMinutes(t *testing.T) {
	assert.Equal(t, 540, ClampMinutes(500, 540, 1200))
	assert.Equal(t, 1200, ClampMinutes(1300, 540, 1200))
	assert.Equal(t, 600, ClampMinutes(600, 540, 1200))
}
