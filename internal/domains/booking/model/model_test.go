package model_test

import (
	"testing"
	"time"

	"booker/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Overlaps(t *testing.T) {
	start := time.Date(2025, 6, 8, 14, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)

	booking := model.Booking{
		ID:            "booking-1",
		RoomID:        "room-1",
		StartDatetime: start,
		EndDatetime:   end,
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{
			name:     "identical interval",
			start:    start,
			end:      end,
			expected: true,
		},
		{
			name:     "contained interval",
			start:    start.Add(24 * time.Hour),
			end:      start.Add(25 * time.Hour),
			expected: true,
		},
		{
			name:     "containing interval",
			start:    start.Add(-time.Hour),
			end:      end.Add(time.Hour),
			expected: true,
		},
		{
			name:     "overlapping the start",
			start:    start.Add(-2 * time.Hour),
			end:      start.Add(time.Hour),
			expected: true,
		},
		{
			name:     "overlapping the end",
			start:    end.Add(-time.Hour),
			end:      end.Add(2 * time.Hour),
			expected: true,
		},
		{
			name:     "ending exactly at the start",
			start:    start.Add(-2 * time.Hour),
			end:      start,
			expected: false,
		},
		{
			name:     "starting exactly at the end",
			start:    end,
			end:      end.Add(2 * time.Hour),
			expected: false,
		},
		{
			name:     "entirely before",
			start:    start.Add(-48 * time.Hour),
			end:      start.Add(-24 * time.Hour),
			expected: false,
		},
		{
			name:     "entirely after",
			start:    end.Add(24 * time.Hour),
			end:      end.Add(48 * time.Hour),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, booking.Overlaps(tt.start, tt.end))
		})
	}
}

func TestBooking_Overlaps_Symmetric(t *testing.T) {
	a := model.Booking{
		StartDatetime: time.Date(2025, 6, 8, 14, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2025, 6, 8, 16, 0, 0, 0, time.UTC),
	}
	b := model.Booking{
		StartDatetime: time.Date(2025, 6, 8, 15, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2025, 6, 8, 17, 0, 0, 0, time.UTC),
	}

	assert.Equal(t,
		a.Overlaps(b.StartDatetime, b.EndDatetime),
		b.Overlaps(a.StartDatetime, a.EndDatetime),
	)
}
