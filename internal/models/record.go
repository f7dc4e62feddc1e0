package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/rolo/internal/shared"
)

// BirthdayNotSet is the rendering sentinel for records without a birthday.
const BirthdayNotSet = "N/A"

// Record is one contact: an immutable name, an ordered list of phones
// (duplicates allowed), and an optional birthday.
type Record struct {
	name     string
	phones   []PhoneNumber
	birthday *Birthday
}

// NewRecord creates a Record with the given name.
func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.ErrEmptyName
	}
	return &Record{name: name}, nil
}

// Name returns the record's identity.
func (r *Record) Name() string {
	return r.name
}

// Phones returns the record's phone numbers in insertion order.
func (r *Record) Phones() []PhoneNumber {
	phones := make([]PhoneNumber, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// Birthday returns the record's birthday, or false when not set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates s and appends it to the phone list.
func (r *Record) AddPhone(s string) error {
	phone, err := ParsePhone(s)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// EditPhone replaces the first phone equal to old with the validated new number.
func (r *Record) EditPhone(old, new string) error {
	phone, err := ParsePhone(new)
	if err != nil {
		return err
	}
	for i, p := range r.phones {
		if p.String() == old {
			r.phones[i] = phone
			return nil
		}
	}
	return fmt.Errorf("%w: %s", shared.ErrPhoneNotFound, old)
}

// RemovePhone removes all phones equal to s. Removing a number that is not
// present is not an error.
func (r *Record) RemovePhone(s string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.String() != s {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// SetBirthday parses s and stores it, overwriting any prior birthday.
func (r *Record) SetBirthday(s string) error {
	birthday, err := ParseBirthday(s)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// DaysToNextBirthday returns the day count from today to the next birthday
// occurrence, or false when no birthday is set.
func (r *Record) DaysToNextBirthday(today time.Time) (int, bool) {
	if r.birthday == nil {
		return 0, false
	}
	return r.birthday.DaysUntil(today), true
}

// PhoneList renders the phones as a comma-joined string.
func (r *Record) PhoneList() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// String renders the record as "name: phones: [...], birthday: DD.MM.YYYY".
func (r *Record) String() string {
	birthday := BirthdayNotSet
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("%s: phones: [%s], birthday: %s", r.name, r.PhoneList(), birthday)
}
