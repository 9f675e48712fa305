package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinutesSinceMidnight(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{clock: "00:00", want: 0},
		{clock: "09:00", want: 540},
		{clock: "21:00", want: 1260},
		{clock: "23:59", want: 1439},
		{clock: "9:00", wantErr: false, want: 540},
		{clock: "25:00", wantErr: true},
		{clock: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		got, err := MinutesSinceMidnight(tt.clock)
		if tt.wantErr {
			assert.Error(t, err, tt.clock)

			continue
		}

		assert.NoError(t, err, tt.clock)
		assert.Equal(t, tt.want, got, tt.clock)
	}
}

func TestClockFromMinutes(t *testing.T) {
	assert.Equal(t, "00:00", ClockFromMinutes(0))
	assert.Equal(t, "09:05", ClockFromMinutes(545))
	assert.Equal(t, "23:59", ClockFromMinutes(1439))

	// wraps modulo 24h in both directions
	assert.Equal(t, "00:30", ClockFromMinutes(1470))
	assert.Equal(t, "23:30", ClockFromMinutes(-30))
}

func TestAddMinutes(t *testing.T) {
	got, err := AddMinutes("18:00", 60)
	assert.NoError(t, err)
	assert.Equal(t, "19:00", got)

	got, err = AddMinutes("23:30", 90)
	assert.NoError(t, err)
	assert.Equal(t, "01:00", got)

	_, err = AddMinutes("nope", 10)
	assert.Error(t, err)
}
