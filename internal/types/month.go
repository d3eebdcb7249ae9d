package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a date lies.
func MonthOf(d Date) Month {
	year, month, _ := time.Time(d).Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string. Full dates and RFC 3339 timestamps
// are accepted as well, everything except year and month is ignored.
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)

	if len(s) == len("2006-01") {
		t, err := time.Parse("2006-01", s)
		if err != nil {
			return Month{}, err
		}
		return NewMonth(t.Year(), t.Month()), nil
	}

	d, err := ParseDate(s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(d), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// UnmarshalParam allows gin to bind query parameters to a Month.
func (m *Month) UnmarshalParam(p string) error {
	if p == "" {
		*m = Month{}
		return nil
	}

	month, err := ParseMonth(p)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// Scan writes the value from the database.
func (m *Month) Scan(value any) error {
	var d Date
	switch value.(type) {
	case string, []byte:
		if err := d.Scan(value); err != nil {
			return err
		}
		*m = MonthOf(d)
		return nil
	}

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

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// Contains reports whether the date is in the month.
func (m Month) Contains(d Date) bool {
	return time.Time(d).Year() == time.Time(m).Year() && time.Time(d).Month() == time.Time(m).Month()
}
