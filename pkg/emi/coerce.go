package emi

import (
	"strconv"
	"strings"
)

// ParseInt reads the leading integer of a numeric text field.
// Empty or malformed input is 0, and trailing garbage is ignored
// ("12abc" is 12, "3.7" is 3).
func ParseInt(text string) int {
	s := strings.TrimSpace(text)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of range
		return 0
	}
	return n
}

// ParseAmount is ParseInt for whole currency units.
func ParseAmount(text string) float64 {
	return float64(ParseInt(text))
}
