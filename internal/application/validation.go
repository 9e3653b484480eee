package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "courseID" -> "course number")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"courseID":    "course number",
		"catalogPath": "catalog path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateCourseID checks that a user-supplied course number is usable as a
// lookup key: non-empty and free of the field delimiter.
func ValidateCourseID(raw string) error {
	if err := ValidateRequired("courseID", raw); err != nil {
		return err
	}
	if strings.Contains(raw, ",") {
		return &ValidationError{
			Field:   "courseID",
			Message: fmt.Sprintf("course number must not contain ',': %s", strings.TrimSpace(raw)),
		}
	}
	return nil
}
