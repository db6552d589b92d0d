package event

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	datePattern     = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	durationPattern = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{1,2})?$`)
	tagPattern      = regexp.MustCompile(`^[A-Za-z]+(?:[ -][A-Za-z]+)*$`)
	wordPattern     = regexp.MustCompile(`\w+`)
)

// ValidateTitle requires a non-empty title with no leading or trailing
// whitespace. Internal whitespace is fine.
func ValidateTitle(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Title is required"
	}
	if value != strings.TrimSpace(value) {
		return "Title cannot have leading or trailing spaces"
	}
	return ""
}

// ValidateDate requires a strict YYYY-MM-DD value that denotes a real
// calendar day. The pattern alone admits impossible dates like
// 2024-02-30, so the components are rebuilt and compared against
// what the calendar actually produces.
func ValidateDate(value string) string {
	if value == "" {
		return "Date is required"
	}
	if !datePattern.MatchString(value) {
		return "Date must be in YYYY-MM-DD format"
	}
	year, _ := strconv.Atoi(value[0:4])
	month, _ := strconv.Atoi(value[5:7])
	day, _ := strconv.Atoi(value[8:10])
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "Invalid date"
	}
	return ""
}

// ValidateDuration requires a non-negative decimal with at most two
// fractional digits, no leading zeros, within [0, 24] hours.
func ValidateDuration(value string) string {
	if value == "" {
		return "Duration is required"
	}
	if !durationPattern.MatchString(value) {
		return "Duration must be a valid number (e.g., 2.5)"
	}
	num, err := strconv.ParseFloat(value, 64)
	if err != nil || num < 0 || num > 24 {
		return "Duration must be between 0 and 24 hours"
	}
	return ""
}

// ValidateTag requires one or more alphabetic runs separated by single
// spaces or hyphens.
func ValidateTag(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Tag is required"
	}
	if !tagPattern.MatchString(value) {
		return "Tag must contain only letters, spaces, or hyphens"
	}
	return ""
}

// ValidateDescription is satisfied by any text, including none, that
// does not immediately repeat a word ("the the"). Only case-insensitive
// exact repeats separated by whitespace count; "the, the" passes.
func ValidateDescription(value string) string {
	if value == "" {
		return ""
	}
	words := wordPattern.FindAllStringIndex(value, -1)
	for i := 1; i < len(words); i++ {
		sep := value[words[i-1][1]:words[i][0]]
		if sep == "" || strings.TrimSpace(sep) != "" {
			continue
		}
		prev := value[words[i-1][0]:words[i-1][1]]
		curr := value[words[i][0]:words[i][1]]
		if strings.EqualFold(prev, curr) {
			return "Description contains duplicate consecutive words"
		}
	}
	return ""
}

// ValidateField dispatches to the per-field check by name. Unknown
// field names are considered valid.
func ValidateField(name, value string) string {
	switch name {
	case "title":
		return ValidateTitle(value)
	case "date":
		return ValidateDate(value)
	case "duration":
		return ValidateDuration(value)
	case "tag":
		return ValidateTag(value)
	case "description":
		return ValidateDescription(value)
	default:
		return ""
	}
}

// ValidateForm runs every field check and maps field name to the first
// failing message. An empty map means the form is valid.
func ValidateForm(f Fields) map[string]string {
	errs := make(map[string]string)
	checks := []struct {
		name  string
		value string
	}{
		{"title", f.Title},
		{"date", f.Date},
		{"duration", f.Duration},
		{"tag", f.Tag},
		{"description", f.Description},
	}
	for _, c := range checks {
		if msg := ValidateField(c.name, c.value); msg != "" {
			errs[c.name] = msg
		}
	}
	return errs
}
