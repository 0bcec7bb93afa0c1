package util

import (
	"regexp"
	"strings"
)

// rutPattern matches a bare RUT: body digits, a dash and the check digit.
// Dots are stripped before matching.
var rutPattern = regexp.MustCompile(`^\d{1,8}-[0-9k]$`)

// NormalizeRut lowercases a RUT and strips thousand separators so that
// "12.345.678-K" and "12345678-k" persist identically.
func NormalizeRut(rut string) string {
	rut = strings.ToLower(strings.TrimSpace(rut))
	return strings.ReplaceAll(rut, ".", "")
}

// ValidateRut checks the format and the mod-11 check digit of a Chilean RUT.
// The input is normalized first, so both cases of "k" are accepted.
func ValidateRut(rut string) bool {
	rut = NormalizeRut(rut)
	if !rutPattern.MatchString(rut) {
		return false
	}

	parts := strings.SplitN(rut, "-", 2)
	body, dv := parts[0], parts[1]

	sum := 0
	multiplier := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * multiplier
		multiplier++
		if multiplier > 7 {
			multiplier = 2
		}
	}

	expected := 11 - (sum % 11)
	var expectedDV string
	switch expected {
	case 11:
		expectedDV = "0"
	case 10:
		expectedDV = "k"
	default:
		expectedDV = string(rune('0' + expected))
	}

	return dv == expectedDV
}
