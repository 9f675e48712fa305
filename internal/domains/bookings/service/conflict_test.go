package service

import (
	"testing"

	"github.com/courtbook/backend/internal/domains/bookings/repository"
	"github.com/courtbook/backend/pkg/helper"
	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "disjoint intervals",
			a:    Interval{StartMin: 9 * 60, EndMin: 10 * 60},
			b:    Interval{StartMin: 11 * 60, EndMin: 12 * 60},
			want: false,
		},
		{
			name: "identical intervals",
			a:    Interval{StartMin: 9 * 60, EndMin: 10 * 60},
			b:    Interval{StartMin: 9 * 60, EndMin: 10 * 60},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Interval{StartMin: 9 * 60, EndMin: 10 * 60},
			b:    Interval{StartMin: 9*60 + 30, EndMin: 10*60 + 30},
			want: true,
		},
		{
			name: "containment",
			a:    Interval{StartMin: 9 * 60, EndMin: 12 * 60},
			b:    Interval{StartMin: 10 * 60, EndMin: 11 * 60},
			want: true,
		},
		{
			name: "touching boundaries do not overlap",
			a:    Interval{StartMin: 9 * 60, EndMin: 10 * 60},
			b:    Interval{StartMin: 10 * 60, EndMin: 11 * 60},
			want: false,
		},
		{
			name: "touching boundaries reversed",
			a:    Interval{StartMin: 10 * 60, EndMin: 11 * 60},
			b:    Interval{StartMin: 9 * 60, EndMin: 10 * 60},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestIsSlotFree(t *testing.T) {
	booked := func(startMin, endMin int) repository.Booking {
		return repository.Booking{
			StartTime: helper.PgTimeFromMinutes(startMin),
			EndTime:   helper.PgTimeFromMinutes(endMin),
		}
	}

	t.Run("empty schedule is free", func(t *testing.T) {
		assert.True(t, IsSlotFree(Interval{StartMin: 9 * 60, EndMin: 10 * 60}, nil))
	})

	t.Run("collision with one of many", func(t *testing.T) {
		bookings := []repository.Booking{
			booked(8*60, 9*60),
			booked(12*60, 13*60),
		}

		assert.False(t, IsSlotFree(Interval{StartMin: 12*60 + 30, EndMin: 14 * 60}, bookings))
	})

	t.Run("slot between bookings is free", func(t *testing.T) {
		bookings := []repository.Booking{
			booked(8*60, 9*60),
			booked(12*60, 13*60),
		}

		assert.True(t, IsSlotFree(Interval{StartMin: 9 * 60, EndMin: 12 * 60}, bookings))
	})
}
