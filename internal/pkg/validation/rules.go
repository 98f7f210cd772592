package validation

import (
	"regexp"
	"time"
)

// Field patterns and limits
var (
	// MobilePattern accepts an optional leading + followed by 7-15 digits
	MobilePattern = `^\+?\d{7,15}$`

	// GenderPattern accepts the single-letter codes used by the records office
	GenderPattern = `^(M|F|O)$`

	// NameMinLength / NameMaxLength bound person names
	NameMinLength = 2
	NameMaxLength = 100

	// EarliestBatchYear is the oldest batch on record
	EarliestBatchYear = 1990
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Mobile *regexp.Regexp
	Gender *regexp.Regexp
}{
	Mobile: regexp.MustCompile(MobilePattern),
	Gender: regexp.MustCompile(GenderPattern),
}

// IsValidMobile reports whether the mobile number matches the expected form.
// Empty values are valid here; required-ness is the caller's concern.
func IsValidMobile(mobile string) bool {
	if mobile == "" {
		return true
	}
	return CompiledPatterns.Mobile.MatchString(mobile)
}

// IsValidGender reports whether the gender code is one of M, F, O
func IsValidGender(gender string) bool {
	return CompiledPatterns.Gender.MatchString(gender)
}

// IsValidName reports whether a person name is within the accepted bounds
func IsValidName(name string) bool {
	return len(name) >= NameMinLength && len(name) <= NameMaxLength
}

// IsValidBatchYear reports whether the batch year is plausible: no older
// than EarliestBatchYear and at most one year into the future.
func IsValidBatchYear(year int) bool {
	return year >= EarliestBatchYear && year <= time.Now().Year()+1
}
