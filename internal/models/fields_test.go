package models

import (
	"errors"
	"testing"
	"time"

	"github.com/desertthunder/rolo/internal/shared"
)

func TestParsePhone(t *testing.T) {
	tc := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "ten digits", input: "1234567890", valid: true},
		{name: "all zeros", input: "0000000000", valid: true},
		{name: "too short", input: "123456789", valid: false},
		{name: "too long", input: "12345678901", valid: false},
		{name: "contains letter", input: "12345abc90", valid: false},
		{name: "contains dash", input: "123-456-78", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "unicode digits", input: "١٢٣٤٥٦٧٨٩٠", valid: false},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := ParsePhone(tt.input)

			if tt.valid {
				if err != nil {
					t.Fatalf("ParsePhone(%q) failed: %v", tt.input, err)
				}
				if phone.String() != tt.input {
					t.Errorf("expected %q, got %q", tt.input, phone.String())
				}
				return
			}

			if err == nil {
				t.Fatalf("ParsePhone(%q) should fail", tt.input)
			}
			if !errors.Is(err, shared.ErrInvalidPhone) {
				t.Errorf("expected ErrInvalidPhone, got %v", err)
			}
		})
	}
}

func TestParseBirthday(t *testing.T) {
	t.Run("valid date round-trips", func(t *testing.T) {
		for _, input := range []string{"01.01.2000", "29.02.2020", "31.12.1999", "15.06.1985"} {
			birthday, err := ParseBirthday(input)
			if err != nil {
				t.Fatalf("ParseBirthday(%q) failed: %v", input, err)
			}
			if birthday.String() != input {
				t.Errorf("expected %q to round-trip, got %q", input, birthday.String())
			}
		}
	})

	t.Run("invalid input fails", func(t *testing.T) {
		for _, input := range []string{"31.02.2000", "29.02.2021", "2000.01.01", "01/01/2000", "1.1.2000", "not a date", ""} {
			_, err := ParseBirthday(input)
			if err == nil {
				t.Fatalf("ParseBirthday(%q) should fail", input)
			}
			if !errors.Is(err, shared.ErrInvalidDate) {
				t.Errorf("expected ErrInvalidDate for %q, got %v", input, err)
			}
		}
	})
}

func TestBirthdayWindow(t *testing.T) {
	mustParse := func(s string) Birthday {
		t.Helper()
		b, err := ParseBirthday(s)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", s, err)
		}
		return b
	}

	t.Run("DaysUntil", func(t *testing.T) {
		tc := []struct {
			name     string
			birthday string
			today    time.Time
			want     int
		}{
			{
				name:     "tomorrow across year boundary",
				birthday: "01.01.2000",
				today:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
				want:     1,
			},
			{
				name:     "same day",
				birthday: "01.01.2000",
				today:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				want:     0,
			},
			{
				name:     "just passed rolls to next year",
				birthday: "10.03.1990",
				today:    time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
				want:     364,
			},
			{
				name:     "later this year",
				birthday: "20.07.1990",
				today:    time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
				want:     7,
			},
			{
				name:     "time of day is ignored",
				birthday: "02.01.2000",
				today:    time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC),
				want:     1,
			},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				got := mustParse(tt.birthday).DaysUntil(tt.today)
				if got != tt.want {
					t.Errorf("DaysUntil() = %d, want %d", got, tt.want)
				}
			})
		}
	})

	t.Run("NextOccurrence uses this year when not passed", func(t *testing.T) {
		today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		next := mustParse("15.06.1985").NextOccurrence(today)
		if next.Year() != 2025 || next.Month() != time.June || next.Day() != 15 {
			t.Errorf("unexpected occurrence: %v", next)
		}
	})

	t.Run("NextOccurrence rolls to next year when passed", func(t *testing.T) {
		today := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
		next := mustParse("15.06.1985").NextOccurrence(today)
		if next.Year() != 2026 {
			t.Errorf("expected next year, got %v", next)
		}
	})
}
