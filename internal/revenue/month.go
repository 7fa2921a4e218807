package revenue

import (
	"errors"
	"fmt"
	"time"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

// ErrInvalidMonth is returned when a month string is not a valid YYYY-MM calendar month.
var ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

// Month is a calendar month. The zero value is not valid; use ParseMonth or CurrentMonth.
type Month struct {
	Year  int
	Month time.Month
}

// DateRange is an inclusive range of wall-clock timestamps.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseMonth parses a YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	if len(s) != len(monthLayout) {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// CurrentMonth returns the month containing now, in now's location.
func CurrentMonth(now time.Time) Month {
	return Month{Year: now.Year(), Month: now.Month()}
}

func (m Month) String() string {
	return m.FirstDay().Format(monthLayout)
}

// FirstDay returns midnight of the first day of the month as a UTC wall-clock time.
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight of the last day of the month. time.Date normalizes day 0 of the
// following month to the last day of this one, so leap years come from the calendar.
func (m Month) LastDay() time.Time {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.LastDay().Day()
}

// Range returns the month from the first day at 00:00:00 to the last day at 23:59:59.
func (m Month) Range() DateRange {
	last := m.LastDay()
	return DateRange{
		Start: m.FirstDay(),
		End:   time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 0, time.UTC),
	}
}

// Skeleton returns one zero-valued bucket per day of the month, ascending.
func (m Month) Skeleton() DailySeries {
	days := m.Days()
	series := make(DailySeries, 0, days)
	first := m.FirstDay()
	for i := 0; i < days; i++ {
		series = append(series, NewDailyBucket(first.AddDate(0, 0, i).Format(dateLayout)))
	}
	return series
}

// BuildSkeleton parses month and returns its zero-filled daily series.
func BuildSkeleton(month string) (DailySeries, error) {
	m, err := ParseMonth(month)
	if err != nil {
		return nil, err
	}
	return m.Skeleton(), nil
}
