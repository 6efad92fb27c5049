package listings

import (
	"testing"
)

func TestValidContactNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "ten digits",
			input:    "9876543210",
			expected: true,
		},
		{
			name:     "nine digits",
			input:    "987654321",
			expected: false,
		},
		{
			name:     "eleven digits",
			input:    "98765432100",
			expected: false,
		},
		{
			name:     "country prefix",
			input:    "+919876543210",
			expected: false,
		},
		{
			name:     "embedded space",
			input:    "98765 43210",
			expected: false,
		},
		{
			name:     "letters",
			input:    "98765abcde",
			expected: false,
		},
		{
			name:     "empty",
			input:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidContactNumber(tt.input)
			if result != tt.expected {
				t.Errorf("ValidContactNumber(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}
