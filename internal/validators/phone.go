package validators

import "strings"

// NormalizePhone keeps digits only. Brazilian numbers have 10 or 11 digits,
// 12 or 13 with the country code.
func NormalizePhone(phone string) (string, bool) {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return "", true
	}
	n := len(digits)
	return digits, n >= 10 && n <= 13
}
