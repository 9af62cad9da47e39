package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleOverlaps(t *testing.T) {
	at := func(hour, min int) time.Time {
		return time.Date(2025, 1, 10, hour, min, 0, 0, time.UTC)
	}

	existing := &Schedule{StartTime: at(10, 0), EndTime: at(10, 30)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical interval", at(10, 0), at(10, 30), true},
		{"starts inside", at(10, 15), at(10, 45), true},
		{"ends inside", at(9, 45), at(10, 15), true},
		{"fully covers", at(9, 0), at(11, 0), true},
		{"back-to-back after", at(10, 30), at(11, 0), false},
		{"back-to-back before", at(9, 30), at(10, 0), false},
		{"disjoint", at(12, 0), at(12, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.start, tt.end))
		})
	}
}
