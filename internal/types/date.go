// Package types implements special types for Basketwise.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the layout used for dates in the API and in the database.
const DateFormat = "2006-01-02"

// Date is a calendar date without time of day.
//
// The underlying time is always midnight UTC of that date. The zero
// value represents a missing date.
type Date time.Time

// NewDate returns the Date for the given year, month and day.
//
// Days outside of the month are normalized the same way time.Date does it.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// Today returns the current date in UTC.
func Today() Date {
	return DateOf(time.Now().In(time.UTC))
}

// ParseDate parses a full-date ("2006-01-02") or an RFC 3339 timestamp.
//
// For timestamps, the calendar date in the offset of the timestamp is used,
// the time of day is discarded.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)

	if len(s) == len(DateFormat) {
		t, err := time.Parse(DateFormat, s)
		if err != nil {
			return Date{}, err
		}
		return DateOf(t), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
//
// The zero Date is formatted as an empty string.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return time.Time(d).Format(DateFormat)
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// MarshalJSON implements the json.Marshaler interface.
//
// A zero Date is marshalled as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Values are parsed with ParseDate. Empty strings and null leave the
// Date untouched.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// UnmarshalParam allows gin to bind query and URI parameters to a Date.
func (d *Date) UnmarshalParam(p string) error {
	if p == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(p)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan writes the value from the database.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	}

	nullTime := &sql.NullTime{}
	err := nullTime.Scan(value)
	if err != nil {
		return err
	}

	if !nullTime.Valid {
		*d = Date{}
		return nil
	}

	*d = DateOf(nullTime.Time)
	return nil
}

func (d *Date) scanString(s string) error {
	if s == "" {
		*d = Date{}
		return nil
	}

	// SQLite stores timestamps as text, the date is always the first part
	if len(s) > len(DateFormat) {
		s = s[:len(DateFormat)]
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}

	return time.Time(d), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same date.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// AddDays adds the specified number of days.
func (d Date) AddDays(days int) Date {
	return Date(time.Time(d).AddDate(0, 0, days))
}

// AddMonths adds whole calendar months.
//
// Unlike time.Time.AddDate, the day of month is clamped to the last day
// of the target month instead of overflowing into the next one, so
// 2024-03-31 minus one month is 2024-02-29.
func (d Date) AddMonths(months int) Date {
	year, month, day := time.Time(d).Date()

	// time.Date normalizes month overflow in both directions
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)

	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}

	return NewDate(first.Year(), first.Month(), day)
}

// AddYears adds whole calendar years, clamping Feb 29 to Feb 28
// in non-leap target years.
func (d Date) AddYears(years int) Date {
	return d.AddMonths(12 * years)
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
