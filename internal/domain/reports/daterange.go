package reports

import (
	"time"

	"fleetledger/internal/core/apperror"
)

// DefaultTimezone is the zone reports group calendar months in when no
// other zone is configured.
const DefaultTimezone = "Europe/Istanbul"

// DateRange is a closed inclusive date window.
type DateRange struct {
	Begin time.Time
	End   time.Time
}

// MonthsSpanned returns the number of distinct calendar months the
// window touches. A window inside one month returns 1.
func (r DateRange) MonthsSpanned() int {
	by, bm := r.Begin.Year(), int(r.Begin.Month())
	ey, em := r.End.Year(), int(r.End.Month())
	return (ey*12 + em) - (by*12 + bm) + 1
}

// Resolver turns optional user-supplied begin/end dates into an
// effective reporting window.
type Resolver struct {
	loc *time.Location
}

// NewResolver creates a resolver grouping dates in loc.
func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{loc: loc}
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Resolve produces the effective window. Both dates present gives
// [start-of-day(begin), end-of-day(end)]; neither gives the current
// calendar month. Supplying exactly one is rejected so a half-open
// request cannot silently widen to all time.
func (r *Resolver) Resolve(now time.Time, begin, end *time.Time) (DateRange, error) {
	if begin == nil && end == nil {
		return r.CurrentMonth(now), nil
	}
	if begin == nil || end == nil {
		return DateRange{}, apperror.NewInvalidDateRange("beginDate and endDate must be supplied together")
	}

	w := DateRange{
		Begin: r.dayStart(*begin),
		End:   r.dayEnd(*end),
	}
	if w.Begin.After(w.End) {
		return DateRange{}, apperror.NewInvalidDateRange("begin date is after end date").
			WithDetail("beginDate", begin.Format("2006-01-02")).
			WithDetail("endDate", end.Format("2006-01-02"))
	}
	return w, nil
}

// CurrentMonth returns the calendar month containing now.
func (r *Resolver) CurrentMonth(now time.Time) DateRange {
	now = now.In(r.loc)
	return r.Month(now.Year(), int(now.Month()))
}

// Month returns the full calendar month window for year/month.
func (r *Resolver) Month(year, month int) DateRange {
	begin := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, r.loc)
	return DateRange{
		Begin: begin,
		End:   begin.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// Year returns the full calendar year window.
func (r *Resolver) Year(year int) DateRange {
	begin := time.Date(year, time.January, 1, 0, 0, 0, 0, r.loc)
	return DateRange{
		Begin: begin,
		End:   begin.AddDate(1, 0, 0).Add(-time.Nanosecond),
	}
}

// dayStart pins the calendar date of t to midnight in the resolver's
// zone. The date is read from t as supplied, so a wire date parsed at
// UTC midnight keeps the day the caller asked for even when the
// configured zone sits west of UTC.
func (r *Resolver) dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.loc)
}

func (r *Resolver) dayEnd(t time.Time) time.Time {
	return r.dayStart(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
