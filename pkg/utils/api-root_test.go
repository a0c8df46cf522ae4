package utils

import "testing"

func TestIsURLSafe(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", false},
		{"api", true},
		{"v1_contacts-2", true},
		{"h/m", false},
		{"?test", false},
		{"t est", false},
		{"z.z", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := IsURLSafe(tt.value); got != tt.expected {
				t.Errorf("IsURLSafe() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNormalizeAPIRoot(t *testing.T) {
	tests := []struct {
		input      string
		expected   string
		shouldFail bool
	}{
		{"/api", "/api", false},
		{"api", "/api", false},
		{"/api/", "/api", false},
		{" /api/v1 ", "/api/v1", false},
		{"", "/", false},
		{"/", "/", false},
		{"/api//v1", "", true},
		{"/api?x=1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeAPIRoot(tt.input)
			if tt.shouldFail {
				if err == nil {
					t.Errorf("expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("NormalizeAPIRoot(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
