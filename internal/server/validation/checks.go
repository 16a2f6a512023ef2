package validation

import (
	"encoding/json"
	"regexp"
	"time"

	"github.com/policia-dp/delegacia-api/internal/server/models"
)

// Mirrors the email pattern of the upstream validator: local part, "@",
// domain labels, and a mandatory alphabetic TLD.
var emailRx = regexp.MustCompile(`^[A-Za-z0-9._%+'-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`)

func decodeString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// RequiredString fails with msg when the value is not a string or is empty.
func RequiredString(msg string) Check {
	return func(raw json.RawMessage) []string {
		s, ok := decodeString(raw)
		if !ok || s == "" {
			return []string{msg}
		}
		return nil
	}
}

// StringMinLen fails with typeMsg when the value is not a string and with
// lenMsg when it is shorter than n runes.
func StringMinLen(n int, typeMsg, lenMsg string) Check {
	return func(raw json.RawMessage) []string {
		s, ok := decodeString(raw)
		if !ok {
			return []string{typeMsg}
		}
		if len([]rune(s)) < n {
			return []string{lenMsg}
		}
		return nil
	}
}

// Email fails with typeMsg when the value is not a string and with formatMsg
// when it is not a syntactically valid address.
func Email(typeMsg, formatMsg string) Check {
	return func(raw json.RawMessage) []string {
		s, ok := decodeString(raw)
		if !ok {
			return []string{typeMsg}
		}
		if !emailRx.MatchString(s) {
			return []string{formatMsg}
		}
		return nil
	}
}

// PastDate coerces a "YYYY-MM-DD" string and rejects dates after today.
// "Today" is the current calendar date in UTC, so a record enrolled today
// always passes.
func PastDate(formatMsg, futureMsg string) Check {
	return func(raw json.RawMessage) []string {
		s, ok := decodeString(raw)
		if !ok {
			return []string{formatMsg}
		}
		d, err := models.ParseDate(s)
		if err != nil {
			return []string{formatMsg}
		}
		if d.After(models.DateOf(time.Now())) {
			return []string{futureMsg}
		}
		return nil
	}
}
