package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-01-06"); !ok {
		t.Error("IsValidDate(\"2025-01-06\") = false, want true")
	}
	for _, s := range []string{"06-01-2025", "2025/01/06", "2025-13-01", "", "today"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"09:00", "09:00:00", "23:59:59", "00:00"}
	invalid := []string{"24:00", "9am", "09-00", ""}
	for _, s := range valid {
		if _, ok := IsValidClockTime(s); !ok {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidClockTime(s); ok {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{2025, true},
		{1000, true},
		{9999, true},
		{999, false},
		{10000, false},
		{0, false},
		{-2025, false},
	}
	for _, c := range cases {
		if got := IsValidYear(c.year); got != c.want {
			t.Errorf("IsValidYear(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}
