package helper

import (
	"fmt"
	"time"

	"github.com/courtbook/backend/pkg/constant"
)

// Clock arithmetic over zero-padded "15:04" strings. All comparisons go
// through minutes since midnight; the zero padding keeps lexicographic
// ordering of the strings equivalent to numeric ordering.

// MinutesSinceMidnight converts a "15:04" string to minutes since midnight.
func MinutesSinceMidnight(clock string) (int, error) {
	t, err := time.Parse(constant.HoursFormat, clock)
	if err != nil {
		return 0, err
	}

	return t.Hour()*constant.MinutesPerHour + t.Minute(), nil
}

// ClockFromMinutes converts minutes since midnight to a zero-padded "15:04"
// string. Values outside a single day wrap modulo 24 hours.
func ClockFromMinutes(minutes int) string {
	minutes %= constant.MinutesPerDay
	if minutes < 0 {
		minutes += constant.MinutesPerDay
	}

	return fmt.Sprintf("%02d:%02d", minutes/constant.MinutesPerHour, minutes%constant.MinutesPerHour)
}

// AddMinutes adds n minutes to a "15:04" clock, wrapping within a 24-hour
// day. There is no date rollover: callers must not rely on intervals that
// cross midnight.
func AddMinutes(clock string, n int) (string, error) {
	m, err := MinutesSinceMidnight(clock)
	if err != nil {
		return "", err
	}

	return ClockFromMinutes(m + n), nil
}
