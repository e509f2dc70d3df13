package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUID regex: any RFC 4122 version, case-insensitive.
var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func IsValidUUID(id string) bool {
	return uuidRegex.MatchString(strings.ToLower(id))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation ("YYYY-MM-DD")
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Clock time validation ("HH:MM" or "HH:MM:SS")
var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

func IsValidClockTime(s string) bool {
	return clockTimeRegex.MatchString(s)
}

// Tax code validation: either a special code or a digit run optionally
// followed by a suffix letter (e.g. "1257L"). Codes are normalized to
// uppercase upstream.
var (
	taxCodeSpecial = map[string]struct{}{
		"BR": {}, "D0": {}, "D1": {}, "NT": {}, "0T": {},
	}
	taxCodeNumericRegex = regexp.MustCompile(`^[0-9]{1,5}[A-Z]{0,2}$`)
)

func IsValidTaxCode(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := taxCodeSpecial[code]; ok {
		return true
	}
	return taxCodeNumericRegex.MatchString(code)
}

// Contribution category validation: a single uppercase letter.
var niCategoryRegex = regexp.MustCompile(`^[A-Z]$`)

func IsValidContributionCategory(s string) bool {
	return niCategoryRegex.MatchString(s)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Manager override PIN format: 4-8 digits. The hash comparison happens in
// the attendance service; this only gates obviously malformed input.
func IsValidOverridePIN(pin string) bool {
	return len(pin) >= 4 && len(pin) <= 8 && IsNumeric(pin)
}
