package entity

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizePhone turns user input such as "8 (999) 123-45-67" into the
// canonical +7XXXXXXXXXX form. Input that cannot be interpreted is returned
// in its best-effort +7 form and left for validation to reject.
func NormalizePhone(input string) string {
	digits := onlyDigits(input)
	if digits == "" {
		return ""
	}

	switch {
	case len(digits) == 10:
		return "+7" + digits
	case strings.HasPrefix(digits, "7"):
		return "+" + digits
	case strings.HasPrefix(digits, "8"):
		return "+7" + digits[1:]
	default:
		return "+7" + digits
	}
}

// FormatPhoneDisplay renders a canonical phone as +7 (999) 123-45-67.
func FormatPhoneDisplay(phone string) string {
	digits := onlyDigits(phone)
	if len(digits) < 11 {
		return phone
	}

	return fmt.Sprintf("+%s (%s) %s-%s-%s", digits[0:1], digits[1:4], digits[4:7], digits[7:9], digits[9:11])
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
