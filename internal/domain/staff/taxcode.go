package staff

import (
	"strings"
	"unicode"
)

// TaxCodeKind selects which income-tax rule applies to a staff member.
type TaxCodeKind int

const (
	// TaxCodeStandard is a numeric code such as "1257L": the digit run
	// determines the personal allowance, standard bands apply above it.
	TaxCodeStandard TaxCodeKind = iota
	// TaxCodeBasicRate (BR) taxes all gross at the basic rate, no allowance.
	TaxCodeBasicRate
	// TaxCodeHigherRate (D0) taxes all gross at the higher rate.
	TaxCodeHigherRate
	// TaxCodeAdditionalRate (D1) taxes all gross at the additional rate.
	TaxCodeAdditionalRate
	// TaxCodeNoTax (NT) exempts all gross.
	TaxCodeNoTax
	// TaxCodeZeroAllowance (0T) applies standard bands with no allowance.
	TaxCodeZeroAllowance
)

// TaxCode is a tax code parsed once at the data-model edge. Calculations
// branch on Kind and AllowanceDigits instead of re-parsing the raw string.
type TaxCode struct {
	Raw             string
	Kind            TaxCodeKind
	AllowanceDigits int // leading digit run of a standard code, e.g. 1257
}

// ParseTaxCode interprets a raw tax code string. Unrecognized or empty codes
// fall back to Kind TaxCodeStandard with AllowanceDigits 0; the tax engine
// substitutes the configured standard code's allowance in that case.
func ParseTaxCode(raw string) TaxCode {
	code := strings.ToUpper(strings.TrimSpace(raw))
	tc := TaxCode{Raw: code}

	switch code {
	case "BR":
		tc.Kind = TaxCodeBasicRate
		return tc
	case "D0":
		tc.Kind = TaxCodeHigherRate
		return tc
	case "D1":
		tc.Kind = TaxCodeAdditionalRate
		return tc
	case "NT":
		tc.Kind = TaxCodeNoTax
		return tc
	case "0T":
		tc.Kind = TaxCodeZeroAllowance
		return tc
	}

	digits := 0
	seen := false
	for _, r := range code {
		if !unicode.IsDigit(r) {
			break
		}
		digits = digits*10 + int(r-'0')
		seen = true
	}
	tc.Kind = TaxCodeStandard
	if seen {
		tc.AllowanceDigits = digits
	}
	return tc
}

// String returns the raw code, or empty for an absent code.
func (tc TaxCode) String() string {
	return tc.Raw
}

// NICategory is a contribution category letter. The zero value is treated as
// the standard category by the deduction engine.
type NICategory string

// ParseNICategory normalizes a contribution category letter. Anything that
// is not exactly one letter comes back empty and the deduction engine falls
// back to the standard category's rates.
func ParseNICategory(raw string) NICategory {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) != 1 || s[0] < 'A' || s[0] > 'Z' {
		return ""
	}
	return NICategory(s)
}

func (c NICategory) String() string {
	return string(c)
}
