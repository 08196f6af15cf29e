// Package sanitizer normalizes guest-supplied contact fields before they are
// validated. It never rejects input, it only cleans it; validation decides
// what is acceptable.
package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims the string and collapses internal whitespace runs
// into single spaces.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips the separators people type into phone numbers,
// keeping only digits and a leading plus sign.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			result.WriteRune(r)
		case r == '+' && i == 0:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// NormalizeDocument keeps only the digits of an identity document number.
func NormalizeDocument(document string) string {
	var result strings.Builder
	for _, r := range document {
		if r >= '0' && r <= '9' {
			result.WriteRune(r)
		}
	}
	return result.String()
}
