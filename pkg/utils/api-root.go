package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var urlSafeSegment = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// check if a string value can be safely used as a part of an URL
func IsURLSafe(value string) bool {
	return urlSafeSegment.MatchString(value)
}

// NormalizeAPIRoot turns a configured api root like "api/" or "/api/v1" into the
// "/api" form gin groups expect. An empty root or "/" mounts at the server root.
func NormalizeAPIRoot(root string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(root), "/")
	if trimmed == "" {
		return "/", nil
	}
	for _, segment := range strings.Split(trimmed, "/") {
		if !IsURLSafe(segment) {
			return "", fmt.Errorf("invalid api root %q: segment %q is not url safe", root, segment)
		}
	}
	return "/" + trimmed, nil
}
