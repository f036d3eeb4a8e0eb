package domain

import "strings"

// CompactSpaces trims the text and collapses every run of whitespace (spaces,
// tabs, newlines) into a single space. Case is preserved.
func CompactSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeEmail trims and lower-cases an email address for storage and
// uniqueness comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

