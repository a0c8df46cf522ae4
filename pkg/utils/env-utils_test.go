package utils

import "testing"

func TestGenerateEnvVarName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple alphanumeric name",
			input:    "contacts",
			expected: "CONTACTS",
		},
		{
			name:     "name with hyphens",
			input:    "contacts-db-user",
			expected: "CONTACTS_DB_USER",
		},
		{
			name:     "name with mixed characters",
			input:    "contacts_db.v2",
			expected: "CONTACTS_DB_V2",
		},
		{
			name:     "name with leading/trailing special chars",
			input:    "-contacts_db-",
			expected: "CONTACTS_DB",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only special characters",
			input:    "---",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GenerateEnvVarName(tt.input)
			if result != tt.expected {
				t.Errorf("GenerateEnvVarName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSecretEnvVarName(t *testing.T) {
	if got := SecretEnvVarName("contacts_db", "username"); got != "CONTACTS_DB_USERNAME" {
		t.Errorf("unexpected name %q", got)
	}
	if got := SecretEnvVarName("contacts_db", "password"); got != "CONTACTS_DB_PASSWORD" {
		t.Errorf("unexpected name %q", got)
	}
}

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("CONTACTS_DB_PASSWORD", "from-env")

	value := "from-file"
	if !OverrideFromEnv(&value, "CONTACTS_DB_PASSWORD") || value != "from-env" {
		t.Errorf("expected override, got %q", value)
	}

	value = "from-file"
	if OverrideFromEnv(&value, "CONTACTS_DB_USERNAME_NOT_SET") || value != "from-file" {
		t.Errorf("expected value to stay, got %q", value)
	}
}
