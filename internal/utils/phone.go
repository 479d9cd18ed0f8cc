package utils

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^([+]?[\s0-9.-]+)?(\d{3}|[(]?[0-9]+[)])?([-.\s]?[0-9])+$`)

// IsValidPhoneNumber accepts international and local formats with spaces,
// dots, dashes and a parenthesised area code
func IsValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}

// NormalizePhone strips formatting characters for dialling, keeping a leading +
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
