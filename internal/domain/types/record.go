package types

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// TodayMessage is the countdown text on the birthday itself.
const TodayMessage = "Today is the birthday!"

// Record is one contact: a name, its phones in insertion order and an
// optional birthday. The name never changes after construction.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord validates name and returns an empty record for it.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the record's key.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the stored phones in insertion order.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the first stored phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	i := slices.Index(r.phones, Phone(raw))
	if i < 0 {
		return "", false
	}
	return r.phones[i], true
}

// DeletePhone removes the first stored phone equal to raw.
func (r *Record) DeletePhone(raw string) error {
	i := slices.Index(r.phones, Phone(raw))
	if i < 0 {
		return fmt.Errorf("%w: %s has no phone %q", ErrNotFound, r.name, raw)
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

// SetBirthday replaces any previous birthday.
func (r *Record) SetBirthday(b Birthday) {
	r.birthday = &b
}

// SetBirthdayDate validates date against today and stores it.
func (r *Record) SetBirthdayDate(date, today time.Time) error {
	b, err := NewBirthday(date, today)
	if err != nil {
		return err
	}
	r.SetBirthday(b)
	return nil
}

// DaysUntilBirthday describes how far the next occurrence of the birthday is
// from today, in whole calendar days. A 29 February birthday falls on 1 March
// in non-leap years.
func (r *Record) DaysUntilBirthday(today time.Time) (string, error) {
	if r.birthday == nil {
		return "", fmt.Errorf("%w: %s has no birthday", ErrNotFound, r.name)
	}
	now := calendarDay(today)
	_, month, day := r.birthday.date.Date()
	next := time.Date(now.Year(), month, day, 0, 0, 0, 0, time.UTC)
	switch {
	case now.Equal(next):
		return TodayMessage, nil
	case now.After(next):
		next = time.Date(now.Year()+1, month, day, 0, 0, 0, 0, time.UTC)
	}
	days := int(next.Sub(now).Hours() / 24)
	if days == 1 {
		return "1 day until birthday", nil
	}
	return fmt.Sprintf("%d days until birthday", days), nil
}

// Render formats the record as a single line.
func (r *Record) Render(today time.Time) string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s, phones: %s", r.name, strings.Join(phones, ", "))
	if r.birthday != nil {
		countdown, _ := r.DaysUntilBirthday(today)
		fmt.Fprintf(&sb, ", birthday: %s (%s)", r.birthday, countdown)
	}
	return sb.String()
}
