package entity

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// Month is a calendar month. Its zone is supplied by the caller.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time, loc *time.Location) Month {
	t = t.In(loc)

	return Month{Year: t.Year(), Month: t.Month()}
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("ParseMonth - time.Parse: %w", err)
	}

	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// Range returns [start, end): the first instant of the month and the first
// instant of the next one.
func (m Month) Range(loc *time.Location) (time.Time, time.Time) {
	start := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)

	return start, start.AddDate(0, 1, 0)
}

func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}

	return m.Month < o.Month
}

func (m Month) After(o Month) bool {
	return o.Before(m)
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// String is the YYYY-MM key.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label is the heading shown above the grid, e.g. "July 2025".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month.String(), m.Year)
}

// MarshalText encodes the zero month as an empty string.
func (m Month) MarshalText() ([]byte, error) {
	if m.IsZero() {
		return []byte{}, nil
	}

	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*m = Month{}
		return nil
	}

	parsed, err := ParseMonth(string(b))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
