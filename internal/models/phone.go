package models

import (
	"regexp"
	"strings"
)

var (
	auMobileRegex = regexp.MustCompile(`^(?:\+61|0)4\d{8}$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

// NormalizePhone strips spreadsheet noise from a phone number. Numbers that lost
// their leading zero to a numeric cell ("412345678" or "412345678.0") get it back.
func NormalizePhone(raw string) string {
	phone := strings.TrimSpace(raw)
	if i := strings.Index(phone, "."); i >= 0 {
		phone = phone[:i]
	}
	if strings.EqualFold(phone, "nan") {
		return ""
	}

	phone = strings.Join(strings.Fields(phone), "")
	if len(phone) == 9 && strings.HasPrefix(phone, "4") {
		phone = "0" + phone
	}
	return phone
}

// IsValidAUMobile accepts 04xxxxxxxx and +614xxxxxxxx, ignoring whitespace
func IsValidAUMobile(phone string) bool {
	return auMobileRegex.MatchString(strings.Join(strings.Fields(phone), ""))
}

// DigitsOnly drops every non-digit rune
func DigitsOnly(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
