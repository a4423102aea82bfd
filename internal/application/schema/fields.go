package schema

import (
	"fmt"
	"regexp"
	"time"

	"assure/internal/application/models"
)

const (
	msgRequired      = "Required"
	msgDateFormat    = "Date must be in YYYY-MM-DD format"
	msgUnderage      = "Must be at least 18 years old"
	msgState         = "Must be a valid US state abbreviation"
	msgZip           = "Must be exactly 5 digits"
	msgLicenseNumber = "Drivers License number must be 9 uppercase alphanumeric characters"
)

// The 50 standard two-letter state abbreviations. Territories (PR, GU,
// DC, ...) are deliberately excluded.
var usStates = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
}

var (
	dateRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	zipRe     = regexp.MustCompile(`^\d{5}$`)
	licenseRe = regexp.MustCompile(`^[A-Z0-9]{9}$`)
)

// checkStringLen returns a bound-specific message, or "" when the value
// is within [min, max].
func checkStringLen(value string, min, max int) string {
	if len(value) < min {
		return fmt.Sprintf("Must be at least %d characters", min)
	}
	if len(value) > max {
		return fmt.Sprintf("Must be at most %d characters", max)
	}
	return ""
}

// checkDateOfBirth enforces the YYYY-MM-DD format first, then the
// age-at-least-18 rule. The age computation is pure calendar arithmetic
// on date components relative to now, so it is leap-aware and ignores
// time of day and timezone.
func checkDateOfBirth(value string, now time.Time) string {
	if !dateRe.MatchString(value) {
		return msgDateFormat
	}
	dob, err := time.Parse("2006-01-02", value)
	if err != nil {
		// Matches the pattern but is not a real calendar date
		// (e.g. 1990-02-31).
		return msgDateFormat
	}
	nowYear, nowMonth, nowDay := now.Date()
	birthYear, birthMonth, birthDay := dob.Date()
	age := nowYear - birthYear
	if nowMonth < birthMonth || (nowMonth == birthMonth && nowDay < birthDay) {
		age--
	}
	if age < 18 {
		return msgUnderage
	}
	return ""
}

func checkState(value string) string {
	if _, ok := usStates[value]; !ok {
		return msgState
	}
	return ""
}

func checkZip(value string) string {
	if !zipRe.MatchString(value) {
		return msgZip
	}
	return ""
}

func checkLicenseNumber(value string) string {
	if !licenseRe.MatchString(value) {
		return msgLicenseNumber
	}
	return ""
}

func checkGender(value models.Gender) string {
	switch value {
	case models.GenderMale, models.GenderFemale, models.GenderNonBinary:
		return ""
	}
	return "Must be one of: male, female, non-binary"
}

func checkMaritalStatus(value models.MaritalStatus) string {
	switch value {
	case models.MaritalSingle, models.MaritalMarried, models.MaritalDivorced, models.MaritalWidowed:
		return ""
	}
	return "Must be one of: single, married, divorced, widowed"
}

func checkRelationship(value models.Relationship) string {
	switch value {
	case models.RelationshipSpouse, models.RelationshipChild, models.RelationshipParent,
		models.RelationshipSibling, models.RelationshipOther:
		return ""
	}
	return "Must be one of: spouse, child, parent, sibling, other"
}

// checkYear bounds the model year to 1985 through next year relative to
// the validation time.
func checkYear(value int, now time.Time) string {
	if value < 1985 {
		return "Must be 1985 or later"
	}
	if max := now.Year() + 1; value > max {
		return fmt.Sprintf("Must be no later than %d", max)
	}
	return ""
}
