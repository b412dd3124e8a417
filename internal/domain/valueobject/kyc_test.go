package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPAN(t *testing.T) {
	tests := []struct {
		name string
		pan  string
		want bool
	}{
		{name: "well formed", pan: "ABCDE1234F", want: true},
		{name: "too short", pan: "ABCDE1234", want: false},
		{name: "digits first", pan: "12345ABCDF", want: false},
		{name: "lowercase letters", pan: "abcde1234f", want: false},
		{name: "trailing digit", pan: "ABCDE12345", want: false},
		{name: "embedded whitespace", pan: "ABCDE 1234F", want: false},
		{name: "empty", pan: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPAN(tt.pan))
		})
	}
}

func TestIsValidAadhaar(t *testing.T) {
	tests := []struct {
		name    string
		aadhaar string
		want    bool
	}{
		{name: "twelve digits", aadhaar: "123456789012", want: true},
		{name: "eleven digits", aadhaar: "12345678901", want: false},
		{name: "thirteen digits", aadhaar: "1234567890123", want: false},
		{name: "contains letter", aadhaar: "12345678901A", want: false},
		{name: "spaced groups", aadhaar: "1234 5678 9012", want: false},
		{name: "empty", aadhaar: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAadhaar(tt.aadhaar))
		})
	}
}
