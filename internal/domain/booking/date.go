package booking

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical calendar date format used in keys and payloads.
const DateLayout = "2006-01-02"

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the canonical
// UTC calendar date.
func ParseDate(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("date is empty")
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t.Format(DateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC().Format(DateLayout), nil
	}
	return "", fmt.Errorf("date %q is not in YYYY-MM-DD form", raw)
}
