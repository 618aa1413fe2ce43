package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(minutes int) time.Time { return base.Add(time.Duration(minutes) * time.Minute) }

func TestValidateWindow(t *testing.T) {
	now := at(0)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"valid future window", at(10), at(70), nil},
		{"starts exactly now", at(0), at(30), nil},
		{"end equals start", at(10), at(10), ErrWindowInverted},
		{"end before start", at(70), at(10), ErrWindowInverted},
		{"starts in the past", at(-5), at(30), ErrWindowInPast},
		{"inverted window in the past reports inversion first", at(-5), at(-10), ErrWindowInverted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWindow(tt.start, tt.end, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateWindowTruncatesNowToMinute(t *testing.T) {
	// A start typed a few seconds ago must still pass.
	now := base.Add(45 * time.Second)
	start := base
	assert.NoError(t, ValidateWindow(start, start.Add(time.Hour), now))

	// But a start in the previous minute does not.
	assert.ErrorIs(t, ValidateWindow(start.Add(-time.Minute), start.Add(time.Hour), now), ErrWindowInPast)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"disjoint before", 0, 10, 20, 30, false},
		{"disjoint after", 20, 30, 0, 10, false},
		{"identical", 0, 10, 0, 10, true},
		{"partial overlap", 0, 10, 5, 15, true},
		{"b inside a", 0, 30, 10, 20, true},
		{"a inside b", 10, 20, 0, 30, true},
		{"touching at a end", 0, 10, 10, 20, true},
		{"touching at a start", 10, 20, 0, 10, true},
		{"single point window inside", 0, 30, 15, 15, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(at(tt.aStart), at(tt.aEnd), at(tt.bStart), at(tt.bEnd))
			assert.Equal(t, tt.want, got)

			// The predicate is symmetric.
			assert.Equal(t, got, Overlaps(at(tt.bStart), at(tt.bEnd), at(tt.aStart), at(tt.aEnd)))
		})
	}
}

func TestContains(t *testing.T) {
	start, end := at(0), at(60)

	assert.True(t, Contains(start, end, at(30)))
	assert.True(t, Contains(start, end, start), "start endpoint is inclusive")
	assert.True(t, Contains(start, end, end), "end endpoint is inclusive")
	assert.False(t, Contains(start, end, at(-1)))
	assert.False(t, Contains(start, end, at(61)))
}
