package utils

import (
	"fmt"
	"time"
)

// ParseDurationString parses values like "10s" or "1m30s"; an empty value yields defaultValue.
func ParseDurationString(value string, defaultValue time.Duration) (time.Duration, error) {
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid time duration '%s' : %s", value, err.Error())
	}
	if d < 0 {
		return time.Duration(0), fmt.Errorf("invalid time duration '%s' : must not be negative", value)
	}
	return d, nil
}
