// Package field implements validated scalar values for contact records.
// Each domain gets its own concrete type with a construction-time check;
// an invalid value fails construction and constructs nothing.
package field

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned when a value fails its domain validation.
var ErrInvalid = errors.New("field: invalid value")

// Name is a contact name. Any string is accepted.
type Name struct {
	value string
}

// NewName creates a Name. Names carry no validation rule.
func NewName(v string) Name {
	return Name{value: v}
}

// Value returns the underlying string.
func (n Name) Value() string { return n.value }

func (n Name) String() string { return n.value }

// Phone is a validated phone number: exactly ten decimal digits.
type Phone struct {
	value string
}

// NewPhone creates a Phone, rejecting anything that is not ten digits.
func NewPhone(v string) (Phone, error) {
	if !validPhone(v) {
		return Phone{}, fmt.Errorf("%w: phone %q must be exactly 10 digits", ErrInvalid, v)
	}
	return Phone{value: v}, nil
}

// Value returns the underlying number string.
func (p Phone) Value() string { return p.value }

func (p Phone) String() string { return p.value }

func validPhone(v string) bool {
	if len(v) != 10 {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}

// BirthdayFormats are the accepted date layouts for free-text birthdays,
// tried in order: DD-MM-YYYY, DD MM YYYY, DD/MM/YYYY.
var BirthdayFormats = []string{"02-01-2006", "02 01 2006", "02/01/2006"}

// Birthday is a concrete calendar date. The zero time is invalid.
type Birthday struct {
	value time.Time
}

// NewBirthday creates a Birthday from an already-parsed date.
func NewBirthday(t time.Time) (Birthday, error) {
	if t.IsZero() {
		return Birthday{}, fmt.Errorf("%w: birthday requires a concrete date", ErrInvalid)
	}
	return Birthday{value: t}, nil
}

// ParseBirthday parses free text against BirthdayFormats, using the first
// layout that matches. It fails with ErrInvalid if none do.
func ParseBirthday(text string) (Birthday, error) {
	for _, layout := range BirthdayFormats {
		t, err := time.Parse(layout, text)
		if err == nil {
			return Birthday{value: t}, nil
		}
	}
	return Birthday{}, fmt.Errorf("%w: %q matches no accepted date format", ErrInvalid, text)
}

// Value returns the underlying date.
func (b Birthday) Value() time.Time { return b.value }

func (b Birthday) String() string { return b.value.Format("02-01-2006") }
