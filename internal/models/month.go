package models

import (
	"fmt"
	"time"
)

// Month is a year+month bucket key. Analysis groups amounts by Month and
// serializes it as "YYYY-MM", so profile snapshots stay stable across
// reloads.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the bucket the given date falls into.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Before reports whether m is chronologically before other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Month) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	var year, month int
	if _, err := fmt.Sscanf(s, "%d-%d", &year, &month); err != nil {
		return fmt.Errorf("invalid month %q: %w", s, err)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month %q", s)
	}
	m.Year = year
	m.Month = time.Month(month)
	return nil
}
