package utils

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ValidateApplicationID validates application ID format
func ValidateApplicationID(applicationID string) error {
	if strings.TrimSpace(applicationID) == "" {
		return fmt.Errorf("application ID cannot be empty")
	}
	if !IsValidUUID(applicationID) {
		return fmt.Errorf("application ID must be a UUID: %q", applicationID)
	}
	return nil
}

// ParseHierarchyLevel parses a reviewer level from a query parameter
func ParseHierarchyLevel(raw string) (int, error) {
	level, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("level must be a number: %q", raw)
	}
	if level < 1 {
		return 0, fmt.Errorf("level must be positive: %d", level)
	}
	return level, nil
}

// SanitizeString removes null bytes and surrounding whitespace from user input
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")
	return strings.TrimSpace(input)
}

// ValidateMaxLength validates maximum string length
func ValidateMaxLength(fieldName, value string, maxLength int) error {
	if utf8.RuneCountInString(value) > maxLength {
		return fmt.Errorf("%s exceeds maximum length of %d characters", fieldName, maxLength)
	}
	return nil
}
