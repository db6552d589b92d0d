package event

import (
	"fmt"
	"strconv"
	"time"
)

// Event is a single planner entry. The JSON field names are the wire
// format used by persistence and import/export, so they must not change.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Duration    Hours     `json:"duration"`
	Tag         string    `json:"tag"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Fields carries the five user-supplied values for a new event,
// exactly as entered. They are validated before the store accepts them.
type Fields struct {
	Title       string
	Date        string
	Duration    string
	Tag         string
	Description string
}

// Partial is a field-by-field update. Nil pointers leave the
// corresponding field of the stored event untouched.
type Partial struct {
	Title       *string
	Date        *string
	Duration    *string
	Tag         *string
	Description *string
}

// Hours is a decimal-hours duration kept in its original string form
// ("2.5"). Imported data may carry it as a JSON number, so unmarshaling
// accepts both; marshaling always emits a string.
type Hours string

// Value returns the numeric value, or 0 if the string does not parse.
func (h Hours) Value() float64 {
	v, err := strconv.ParseFloat(string(h), 64)
	if err != nil {
		return 0
	}
	return v
}

func (h Hours) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(h))), nil
}

func (h *Hours) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*h = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		*h = Hours(unquoted)
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("duration must be a string or number, got %s", s)
	}
	*h = Hours(s)
	return nil
}
