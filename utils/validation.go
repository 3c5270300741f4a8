package utils

import (
	"regexp"
	"strings"
)

var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 .-]{5,18}$`)

// ValidatePhone accepts international and French national formats
// (+216 71 123 456, 01 23 45 67 89). Empty is allowed; phone is optional.
func ValidatePhone(phone string) bool {
	if strings.TrimSpace(phone) == "" {
		return true
	}
	return phoneRe.MatchString(strings.TrimSpace(phone))
}
