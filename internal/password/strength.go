package password

import (
	"strings"
	"unicode/utf8"
)

// Symbols accepted by the special-character rule
const symbols = `!@#$%^&*(),.?":{}|<>`

// Strength rules in evaluation order. The first violated rule's message
// is what the caller sees.
var rules = []struct {
	ok      func(string) bool
	message string
}{
	{func(s string) bool { return utf8.RuneCountInString(s) >= 8 }, "Password must be at least 8 characters long."},
	{func(s string) bool { return containsRange(s, 'A', 'Z') }, "Password must include an uppercase letter."},
	{func(s string) bool { return containsRange(s, 'a', 'z') }, "Password must include a lowercase letter."},
	{func(s string) bool { return containsRange(s, '0', '9') }, "Password must include a number."},
	{func(s string) bool { return strings.ContainsAny(s, symbols) }, "Password must include a special character."},
}

// StrengthViolation checks a candidate password against the fixed rule
// set and returns the first violated rule's message, or an empty string
// when every rule passes. Pure and synchronous.
func StrengthViolation(password string) string {
	for _, rule := range rules {
		if !rule.ok(password) {
			return rule.message
		}
	}
	return ""
}

func containsRange(s string, lo, hi rune) bool {
	for _, c := range s {
		if c >= lo && c <= hi {
			return true
		}
	}
	return false
}
