package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time of day in "HH:MM" format.
// It is the wire and storage representation for slot times and is compared
// with strict half-open interval semantics by the availability code.
type TimeString string

const timeLayout = "15:04"

var (
	// ErrInvalidFormat is returned when the string is not a valid "HH:MM" time
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrOutOfRange is returned when arithmetic would leave the 00:00-23:59 day range
	ErrOutOfRange = errors.New("time out of day range")
)

// NewTimeString creates a TimeString from a time.Time, truncating to minutes
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	// Postgres TIME columns come back as "HH:MM:SS"; accept and truncate
	if len(s) > 5 {
		s = s[:5]
	}
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return TimeString(s), nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= 24*60 {
		return "", fmt.Errorf("%w: %d minutes", ErrOutOfRange, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Validate checks that the value is a well-formed "HH:MM" time
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}

// IsZero returns true for the empty value
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes returns minutes since midnight. The value must be valid.
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// AddMinutes returns the time shifted forward by m minutes.
// Returns ErrOutOfRange when the result leaves the current day.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	total := t.Minutes() + m
	// "24:00" is allowed as an exclusive interval end
	if total == 24*60 {
		return TimeString("24:00"), nil
	}
	return NewTimeStringFromMinutes(total)
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutesLoose() < other.minutesLoose()
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutesLoose() > other.minutesLoose()
}

// minutesLoose handles the synthetic "24:00" end marker
func (t TimeString) minutesLoose() int {
	if t == "24:00" {
		return 24 * 60
	}
	return t.Minutes()
}

func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer for storing in TIME columns
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner, accepting TIME column representations
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidFormat, src)
	}
}
