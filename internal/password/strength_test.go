package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrengthViolation(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"empty", "", "Password must be at least 8 characters long."},
		{"too short", "Ab1!", "Password must be at least 8 characters long."},
		{"short reports length before other violations", "abc", "Password must be at least 8 characters long."},
		{"missing uppercase", "abcdef1!", "Password must include an uppercase letter."},
		{"missing lowercase", "ABCDEF1!", "Password must include a lowercase letter."},
		{"missing number", "Abcdefg!", "Password must include a number."},
		{"missing symbol", "Abcdefg1", "Password must include a special character."},
		{"seven multibyte runes too short", "Aa1!ééé", "Password must be at least 8 characters long."},
		{"eight runes with multibyte pass length", "Aa1!éééé", ""},
		{"valid", "Abcdef1!", ""},
		{"valid with other symbols", `Xy9:pass"word`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StrengthViolation(tt.password))
		})
	}
}

func TestStrengthViolationRuleOrder(t *testing.T) {
	// Violates every rule at once; only the first rule's message surfaces
	assert.Equal(t, "Password must be at least 8 characters long.", StrengthViolation("       "))
}
