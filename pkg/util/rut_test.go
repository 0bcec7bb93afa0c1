package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRut(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Strips dots", "12.345.678-5", "12345678-5"},
		{"Lowercases check digit", "12345678-K", "12345678-k"},
		{"Trims whitespace", "  12345678-5  ", "12345678-5"},
		{"Already normalized", "12345678-5", "12345678-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRut(tt.input))
		})
	}
}

func TestValidateRut(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Valid", "12345678-5", true},
		{"Valid with dots", "12.345.678-5", true},
		{"Valid repeated digits", "11111111-1", true},
		{"Valid check digit K uppercase", "6-K", true},
		{"Valid check digit k lowercase", "6-k", true},
		{"Valid check digit zero", "45-0", true},
		{"Wrong check digit", "12345678-9", false},
		{"Missing dash", "123456785", false},
		{"Body too long", "123456789-1", false},
		{"Letters in body", "abc-1", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateRut(tt.input))
		})
	}
}
