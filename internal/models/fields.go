package models

import (
	"fmt"
	"time"

	"github.com/desertthunder/rolo/internal/shared"
)

// BirthdayLayout is the reference layout for birthday rendering and parsing (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// PhoneNumber is a validated phone number: exactly 10 ASCII digits.
type PhoneNumber string

// ParsePhone validates s and returns it as a [PhoneNumber].
func ParsePhone(s string) (PhoneNumber, error) {
	if len(s) != 10 {
		return "", fmt.Errorf("%w: %q", shared.ErrInvalidPhone, s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w: %q", shared.ErrInvalidPhone, s)
		}
	}
	return PhoneNumber(s), nil
}

func (p PhoneNumber) String() string {
	return string(p)
}

// Birthday is a calendar date parsed from DD.MM.YYYY.
type Birthday struct {
	date time.Time
}

// ParseBirthday parses s in DD.MM.YYYY format into a [Birthday].
//
// time.Parse rejects impossible dates (e.g. 31.02.2000), which is the whole validation requirement.
func ParseBirthday(s string) (Birthday, error) {
	date, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", shared.ErrInvalidDate, s)
	}
	return Birthday{date: date}, nil
}

// Date returns the underlying calendar date.
func (b Birthday) Date() time.Time {
	return b.date
}

// String renders the birthday in DD.MM.YYYY format.
func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}

// NextOccurrence returns the next occurrence of the birthday's month and day
// on or after today. This year's occurrence is used unless it already passed.
func (b Birthday) NextOccurrence(today time.Time) time.Time {
	today = truncateToDay(today)
	next := time.Date(today.Year(), b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	}
	return next
}

// DaysUntil returns the number of days from today to the next occurrence,
// with a same-day birthday counting as 0.
func (b Birthday) DaysUntil(today time.Time) int {
	today = truncateToDay(today)
	return int(b.NextOccurrence(today).Sub(today).Hours() / 24)
}

// truncateToDay drops the time-of-day component. The result is pinned to UTC
// so day arithmetic is immune to DST transitions.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
