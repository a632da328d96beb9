package domain

import (
	"fmt"
	"strconv"
	"time"
)

var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseCreatedAt resolves the provider's createdAt field, which arrives in
// several encodings, to a concrete instant.
//
// A purely numeric string is epoch time: more than 13 digits means the first
// 13 are milliseconds, exactly 10 digits means seconds, and any other length
// is taken directly as milliseconds. Anything else is parsed as a date/time
// string.
func ParseCreatedAt(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("createdAt is empty")
	}

	if isDigits(s) {
		digits := s
		switch {
		case len(digits) > 13:
			digits = digits[:13]
		case len(digits) == 10:
			digits += "000"
		}
		millis, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("createdAt %q out of range: %w", s, err)
		}
		return time.UnixMilli(millis), nil
	}

	for _, layout := range createdAtLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("createdAt %q is not a recognized date", s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
