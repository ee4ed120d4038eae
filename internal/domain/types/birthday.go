package types

import (
	"fmt"
	"regexp"
	"time"
)

// BirthdayLayout is the accepted input and display format (dd.mm.yyyy).
const BirthdayLayout = "02.01.2006"

var birthdayPattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// Birthday is a calendar date that is not after the day it was validated on.
type Birthday struct {
	date time.Time
}

// NewBirthday truncates date to a calendar day and validates it against today.
func NewBirthday(date, today time.Time) (Birthday, error) {
	b := Birthday{date: calendarDay(date)}
	if err := b.Validate(today); err != nil {
		return Birthday{}, err
	}
	return b, nil
}

// ParseBirthday parses raw strictly as dd.mm.yyyy and validates it against today.
func ParseBirthday(raw string, today time.Time) (Birthday, error) {
	if !birthdayPattern.MatchString(raw) {
		return Birthday{}, fmt.Errorf("%w: birthday %q must be dd.mm.yyyy", ErrValidation, raw)
	}
	date, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: birthday %q is not a calendar date", ErrValidation, raw)
	}
	return NewBirthday(date, today)
}

// Validate fails when the birthday is strictly after today.
func (b Birthday) Validate(today time.Time) error {
	if b.date.IsZero() {
		return fmt.Errorf("%w: birthday is not set", ErrValidation)
	}
	if b.date.After(calendarDay(today)) {
		return fmt.Errorf("%w: birthday %s is in the future", ErrValidation, b)
	}
	return nil
}

// Date returns the birthday as a UTC midnight time.
func (b Birthday) Date() time.Time { return b.date }

// String formats the birthday as dd.mm.yyyy.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }

// IsBirthdayShape reports whether raw looks like a dd.mm.yyyy date.
func IsBirthdayShape(raw string) bool { return birthdayPattern.MatchString(raw) }

// calendarDay drops the clock part of t, keeping its local calendar date.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
