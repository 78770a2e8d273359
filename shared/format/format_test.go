package format_test

import (
	"testing"
	"time"

	"madison/shared/format"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   int
		expected string
	}{
		{name: "zero", amount: 0, expected: "0 FCFA"},
		{name: "under a thousand", amount: 950, expected: "950 FCFA"},
		{name: "thousands grouped with a space", amount: 30000, expected: "30 000 FCFA"},
		{name: "exact thousand", amount: 1000, expected: "1 000 FCFA"},
		{name: "millions", amount: 1250000, expected: "1 250 000 FCFA"},
		{name: "negative amount keeps grouping", amount: -30000, expected: "-30 000 FCFA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := format.Price(tt.amount)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDateShort(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "abbreviated month",
			date:     time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
			expected: "2 janv. 2024",
		},
		{
			name:     "month without abbreviation",
			date:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			expected: "15 mars 2024",
		},
		{
			name:     "accented month",
			date:     time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			expected: "31 déc. 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := format.DateShort(tt.date)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDateLong(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "full month name",
			date:     time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC),
			expected: "2 juin 2024",
		},
		{
			name:     "accented month name",
			date:     time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC),
			expected: "14 février 2024",
		},
		{
			name:     "august keeps the circumflex",
			date:     time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
			expected: "1 août 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := format.DateLong(tt.date)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDateNumeric(t *testing.T) {
	got := format.DateNumeric(time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC))
	if got != "02/06/2024" {
		t.Errorf("expected %q, got %q", "02/06/2024", got)
	}
}
