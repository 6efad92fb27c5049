package services

import (
	"testing"
)

func TestFirebaseCredentialsPath(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected string
	}{
		{
			name:     "env override",
			env:      "/etc/secrets/firebase.json",
			expected: "/etc/secrets/firebase.json",
		},
		{
			name:     "default next to the binary",
			env:      "",
			expected: "./firebase-service-account.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FIREBASE_CREDENTIALS_PATH", tt.env)
			if got := firebaseCredentialsPath(); got != tt.expected {
				t.Errorf("firebaseCredentialsPath() = %q; want %q", got, tt.expected)
			}
		})
	}
}
