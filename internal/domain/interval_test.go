package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "identical windows overlap",
			aStart: ts(10, 0), aEnd: ts(12, 0),
			bStart: ts(10, 0), bEnd: ts(12, 0),
			expected: true,
		},
		{
			name:   "partial overlap at the end",
			aStart: ts(10, 0), aEnd: ts(12, 0),
			bStart: ts(11, 0), bEnd: ts(13, 0),
			expected: true,
		},
		{
			name:   "containment overlaps",
			aStart: ts(10, 0), aEnd: ts(14, 0),
			bStart: ts(11, 0), bEnd: ts(12, 0),
			expected: true,
		},
		{
			name:   "touching boundaries do not overlap",
			aStart: ts(10, 0), aEnd: ts(12, 0),
			bStart: ts(12, 0), bEnd: ts(13, 0),
			expected: false,
		},
		{
			name:   "one minute into the window overlaps",
			aStart: ts(11, 59), aEnd: ts(13, 0),
			bStart: ts(10, 0), bEnd: ts(12, 0),
			expected: true,
		},
		{
			name:   "disjoint windows do not overlap",
			aStart: ts(8, 0), aEnd: ts(9, 0),
			bStart: ts(10, 0), bEnd: ts(11, 0),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tt.expected, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestValidateInterval(t *testing.T) {
	assert.True(t, ValidateInterval(ts(10, 0), ts(11, 0)))
	assert.False(t, ValidateInterval(ts(11, 0), ts(10, 0)))
	assert.False(t, ValidateInterval(ts(10, 0), ts(10, 0)))
}

func TestDurationDays(t *testing.T) {
	day0 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"exactly two days", day0, day0.AddDate(0, 0, 2), 2},
		{"one hour rounds up to one day", day0, day0.Add(time.Hour), 1},
		{"25 hours rounds up to two days", day0, day0.Add(25 * time.Hour), 2},
		{"exactly one day", day0, day0.AddDate(0, 0, 1), 1},
		{"zero length is zero days", day0, day0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DurationDays(tt.start, tt.end))
		})
	}
}
