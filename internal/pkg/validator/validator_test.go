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

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "07:15:00"}
	invalid := []string{"24:00", "9:30", "09:60", "09-30", "", "morning"}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidTaxCode(t *testing.T) {
	valid := []string{"1257L", "BR", "D0", "D1", "NT", "0T", "500T", "br", " 1257L "}
	invalid := []string{"", "L1257", "12-57L", "ABC"}
	for _, s := range valid {
		if !IsValidTaxCode(s) {
			t.Errorf("IsValidTaxCode(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTaxCode(s) {
			t.Errorf("IsValidTaxCode(%q) = true, want false", s)
		}
	}
}

func TestIsValidContributionCategory(t *testing.T) {
	valid := []string{"A", "B", "Z"}
	invalid := []string{"", "a", "AB", "1"}
	for _, s := range valid {
		if !IsValidContributionCategory(s) {
			t.Errorf("IsValidContributionCategory(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidContributionCategory(s) {
			t.Errorf("IsValidContributionCategory(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-02-28"); !ok {
		t.Error("expected 2026-02-28 to be valid")
	}
	if _, ok := IsValidDate("28/02/2026"); ok {
		t.Error("expected 28/02/2026 to be invalid")
	}
}

func TestIsValidOverridePIN(t *testing.T) {
	valid := []string{"1234", "00000000"}
	invalid := []string{"123", "123456789", "12a4", ""}
	for _, s := range valid {
		if !IsValidOverridePIN(s) {
			t.Errorf("IsValidOverridePIN(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidOverridePIN(s) {
			t.Errorf("IsValidOverridePIN(%q) = true, want false", s)
		}
	}
}
