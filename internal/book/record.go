// Package book implements the in-memory address book: contact records,
// the keyed collection, and the pagination cursor.
package book

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/smileynet/rolodex/internal/field"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrNotFound       = errors.New("book: contact not found")
	ErrExists         = errors.New("book: contact already exists")
	ErrPhoneNotFound  = errors.New("book: phone number not found")
	ErrDuplicatePhone = errors.New("book: phone number already on record")
)

// Record is one contact: an immutable name, an ordered list of phone
// numbers, and an optional birthday.
type Record struct {
	name     field.Name
	phones   []field.Phone
	birthday *field.Birthday
}

// NewRecord creates a Record with the given name and no phones.
func NewRecord(name string) *Record {
	return &Record{name: field.NewName(name)}
}

// Name returns the contact name.
func (r *Record) Name() string { return r.name.Value() }

// AddPhone validates and appends a phone number. A number already on the
// record is rejected with ErrDuplicatePhone.
func (r *Record) AddPhone(number string) error {
	p, err := field.NewPhone(number)
	if err != nil {
		return err
	}
	if _, ok := r.FindPhone(number); ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePhone, number)
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to number. It reports whether
// a phone was removed; removing an absent number is a no-op.
func (r *Record) RemovePhone(number string) bool {
	for i, p := range r.phones {
		if p.Value() == number {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return true
		}
	}
	return false
}

// EditPhone replaces the first phone equal to oldNumber with a validated
// replacement. The replacement is validated before any mutation, so a
// failed edit leaves the phone list untouched.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	p, err := field.NewPhone(newNumber)
	if err != nil {
		return err
	}
	if newNumber != oldNumber {
		if _, ok := r.FindPhone(newNumber); ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePhone, newNumber)
		}
	}
	for i, existing := range r.phones {
		if existing.Value() == oldNumber {
			r.phones[i] = p
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPhoneNotFound, oldNumber)
}

// FindPhone returns the first phone equal to number.
func (r *Record) FindPhone(number string) (field.Phone, bool) {
	for _, p := range r.phones {
		if p.Value() == number {
			return p, true
		}
	}
	return field.Phone{}, false
}

// Phones returns the phone numbers in insertion order.
func (r *Record) Phones() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.Value()
	}
	return out
}

// SetBirthday sets or replaces the birthday.
func (r *Record) SetBirthday(b field.Birthday) {
	r.birthday = &b
}

// Birthday returns the birthday date, if one is set.
func (r *Record) Birthday() (time.Time, bool) {
	if r.birthday == nil {
		return time.Time{}, false
	}
	return r.birthday.Value(), true
}

// DaysToBirthday returns the whole days from now until the next occurrence
// of the birthday's month and day. A birthday falling on now's date counts
// as zero days; one already passed this year rolls to next year. The second
// return is false when no birthday is set.
func (r *Record) DaysToBirthday(now time.Time) (int, bool) {
	if r.birthday == nil {
		return 0, false
	}
	bd := r.birthday.Value()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	next := time.Date(now.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, now.Location())
	if next.Before(today) {
		next = time.Date(now.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, now.Location())
	}
	return int(next.Sub(today) / (24 * time.Hour)), true
}

// String renders the record as a single line: name, phones, birthday.
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString("Contact name: ")
	sb.WriteString(r.name.Value())
	sb.WriteString(", phones: ")
	sb.WriteString(strings.Join(r.Phones(), "; "))
	if r.birthday != nil {
		sb.WriteString(", birthday: ")
		sb.WriteString(r.birthday.String())
	}
	return sb.String()
}
