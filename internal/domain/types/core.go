package types

import (
	"fmt"
	"regexp"
)

var (
	// Only the leading run is checked; trailing characters are not constrained.
	namePattern  = regexp.MustCompile(`^[A-Za-z]+`)
	phonePattern = regexp.MustCompile(`^(?:\+?\d{12}|\d{10})$`)
)

// Name is the validated contact name. Its string form keys the address book.
type Name string

// NewName validates raw and returns it as a Name.
func NewName(raw string) (Name, error) {
	n := Name(raw)
	if err := n.Validate(); err != nil {
		return "", err
	}
	return n, nil
}

// Validate reports whether n starts with at least one Latin letter.
func (n Name) Validate() error {
	if n == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if !namePattern.MatchString(string(n)) {
		return fmt.Errorf("%w: name %q must start with a Latin letter", ErrValidation, string(n))
	}
	return nil
}

// String returns the string form of the name.
func (n Name) String() string { return string(n) }

// Phone is a validated phone number: +XXXXXXXXXXXX, XXXXXXXXXXXX or XXXXXXXXXX.
type Phone string

// NewPhone validates raw and returns it as a Phone.
func NewPhone(raw string) (Phone, error) {
	p := Phone(raw)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate reports whether p has one of the accepted shapes.
func (p Phone) Validate() error {
	if !phonePattern.MatchString(string(p)) {
		return fmt.Errorf(
			"%w: invalid phone format %q, try +123456789012 or 1234567890",
			ErrValidation, string(p),
		)
	}
	return nil
}

// String returns the string form of the phone.
func (p Phone) String() string { return string(p) }

// IsPhoneShape reports whether raw looks like a phone number.
func IsPhoneShape(raw string) bool { return phonePattern.MatchString(raw) }
