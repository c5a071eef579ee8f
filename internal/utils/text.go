package utils

import "strings"

func Truncate(s string, maxLength int) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	if len(s) <= maxLength {
		return s
	}

	return s[:maxLength] + "..."
}
