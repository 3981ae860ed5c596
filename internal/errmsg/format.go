// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants.
const (
	// Tag operations
	OpReadTags   Op = "read tags"
	OpUpdateTags Op = "update tags"
	OpReadInfo   Op = "read audio properties"

	// Input operations
	OpReadInput  Op = "read input"
	OpParseInput Op = "parse input"

	// Editor operations
	OpEditTags   Op = "edit tags"
	OpWriteDraft Op = "prepare editor document"

	// Initialization
	OpLoadConfig Op = "load configuration"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
