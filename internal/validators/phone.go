package validators

import "strings"

// IsPhoneValid accepts E.164-style numbers: a leading +, then 10 to 15
// digits. This mirrors the normalization the login form applies.
func IsPhoneValid(phone string) bool {
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	digits := phone[1:]
	if len(digits) < 10 || len(digits) > 15 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
