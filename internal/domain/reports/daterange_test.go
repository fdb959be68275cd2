package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetledger/internal/core/apperror"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestResolverResolve(t *testing.T) {
	r := NewResolver(time.UTC)
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

	t.Run("both dates expand to full days", func(t *testing.T) {
		w, err := r.Resolve(now, datePtr(2024, time.March, 10), datePtr(2024, time.March, 20))
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), w.Begin)
		assert.Equal(t, time.Date(2024, time.March, 21, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), w.End)
	})

	t.Run("no dates fall back to current month", func(t *testing.T) {
		w, err := r.Resolve(now, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), w.Begin)
		assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), w.End)
	})

	t.Run("single date is rejected", func(t *testing.T) {
		_, err := r.Resolve(now, datePtr(2024, time.March, 10), nil)
		assert.True(t, apperror.IsInvalidDateRange(err))

		_, err = r.Resolve(now, nil, datePtr(2024, time.March, 20))
		assert.True(t, apperror.IsInvalidDateRange(err))
	})

	t.Run("begin after end is rejected", func(t *testing.T) {
		_, err := r.Resolve(now, datePtr(2024, time.March, 20), datePtr(2024, time.March, 10))
		assert.True(t, apperror.IsInvalidDateRange(err))
	})

	t.Run("calendar dates survive zones west of UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC-4", -4*60*60)
		r := NewResolver(loc)

		// wire dates arrive parsed at UTC midnight; the window must still
		// cover June 1 through June 30 in the configured zone
		w, err := r.Resolve(now, datePtr(2024, time.June, 1), datePtr(2024, time.June, 30))
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, loc), w.Begin)
		assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, loc).Add(-time.Nanosecond), w.End)
		assert.Equal(t, time.June, w.Begin.Month())
		assert.Equal(t, 1, w.Begin.Day())
		assert.Equal(t, 30, w.End.Day())
	})

	t.Run("same day is a valid window", func(t *testing.T) {
		w, err := r.Resolve(now, datePtr(2024, time.March, 10), datePtr(2024, time.March, 10))
		require.NoError(t, err)
		assert.True(t, w.Begin.Before(w.End))
	})
}

func TestResolverMonthAndYear(t *testing.T) {
	r := NewResolver(time.UTC)

	w := r.Month(2024, 2)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), w.Begin)
	// 2024 is a leap year
	assert.Equal(t, 29, w.End.Day())

	y := r.Year(2024)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), y.Begin)
	assert.Equal(t, 2024, y.End.Year())
	assert.Equal(t, time.December, y.End.Month())
}

func TestDateRangeMonthsSpanned(t *testing.T) {
	tests := []struct {
		name  string
		begin time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "within one month",
			begin: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC),
			want:  1,
		},
		{
			name:  "adjacent months",
			begin: time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
			want:  2,
		},
		{
			name:  "across a year boundary",
			begin: time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			want:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DateRange{Begin: tt.begin, End: tt.end}
			assert.Equal(t, tt.want, r.MonthsSpanned())
		})
	}
}

func TestNewResolverDefaultsToUTC(t *testing.T) {
	r := NewResolver(nil)
	assert.Equal(t, time.UTC, r.Location())
}
