// Package types implements value types shared by the models and the API.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month, used to identify card invoice cycles.
type Month time.Time

// NewMonth returns the Month for year and month in UTC.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month a time falls into, in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON renders the month as "YYYY-MM".
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM", "YYYY-MM-DD" and RFC3339 strings.
// Everything except year and month is discarded.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	for _, layout := range []string{"2006-01", time.DateOnly, time.RFC3339} {
		t, err := time.Parse(layout, value)
		if err == nil {
			*m = NewMonth(t.Year(), t.Month())
			return nil
		}
	}

	return fmt.Errorf("invalid month %q", value)
}

// UnmarshalParam lets gin bind "YYYY-MM" URI and query parameters.
func (m *Month) UnmarshalParam(p string) error {
	if p == "" {
		*m = Month{}
		return nil
	}

	parsed, err := ParseMonth(p)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// Scan writes the value from the database.
func (m *Month) Scan(value any) error {
	nullTime := &sql.NullTime{}
	err := nullTime.Scan(value)
	*m = Month(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm the type.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a number of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return m.String() == n.String()
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}

// FirstDay returns midnight of the first day of the month.
func (m Month) FirstDay() time.Time {
	return time.Time(m)
}

// LastDay returns midnight of the last day of the month.
func (m Month) LastDay() time.Time {
	return time.Time(m.AddDate(0, 1)).AddDate(0, 0, -1)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.LastDay().Day()
}

// MonthsBetween returns the number of whole months from m to n.
// The result is negative if n is before m.
func (m Month) MonthsBetween(n Month) int {
	a, b := time.Time(m), time.Time(n)
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
