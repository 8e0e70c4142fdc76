//go:build unit

package schedule_test

import (
	"testing"

	"meet-scheduler/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		startA, endA, startB, endB     int
		want                           bool
	}{
		{"disjoint before", 60, 120, 180, 240, false},
		{"disjoint after", 180, 240, 60, 120, false},
		{"touching ends do not overlap", 60, 120, 120, 180, false},
		{"partial overlap", 60, 130, 120, 180, true},
		{"containment", 60, 240, 120, 180, true},
		{"identical", 60, 120, 60, 120, true},
		{"zero-length interval never overlaps", 120, 120, 60, 180, false},
		{"zero-length other never overlaps", 60, 180, 120, 120, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, schedule.Overlaps(tc.startA, tc.endA, tc.startB, tc.endB))
		})
	}
}

func TestConflictsAny(t *testing.T) {
	busy := []schedule.Interval{
		{StartMinutes: 9 * 60, EndMinutes: 10 * 60},
		{StartMinutes: 14 * 60, EndMinutes: 15 * 60},
	}

	assert.True(t, schedule.ConflictsAny(9*60+30, 10*60+30, busy))
	assert.False(t, schedule.ConflictsAny(10*60, 11*60, busy))
	assert.False(t, schedule.ConflictsAny(12*60, 13*60, busy))
	assert.False(t, schedule.ConflictsAny(8*60, 9*60, nil))
}
