package utils

import (
	"os"
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9]+`)

// GenerateEnvVarName upper-cases the input and joins its alphanumeric runs with underscores.
func GenerateEnvVarName(input string) string {
	normalized := nonAlphanumeric.ReplaceAllString(strings.ToUpper(input), "_")
	return strings.Trim(normalized, "_")
}

// SecretEnvVarName names the variable that overrides a secret of a config section,
// e.g. ("contacts_db", "password") -> CONTACTS_DB_PASSWORD.
func SecretEnvVarName(section string, key string) string {
	return GenerateEnvVarName(section + "_" + key)
}

// OverrideFromEnv replaces target with the value of the environment variable, if set.
func OverrideFromEnv(target *string, envVarName string) bool {
	if value := os.Getenv(envVarName); value != "" {
		*target = value
		return true
	}
	return false
}
