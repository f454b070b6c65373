// Package testutil provides shared helpers for UI component tests.
package testutil

import (
	"regexp"
	"strings"
)

// StripANSI removes ANSI escape codes so rendered output can be compared
// as plain text.
func StripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return re.ReplaceAllString(s, "")
}

// ContainsLine reports whether any line of the output contains substr.
func ContainsLine(output, substr string) bool {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// FindLine returns the first line containing substr, or an empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// AssertContains returns a failure message if the stripped output does not
// contain substr, or an empty string if it does.
func AssertContains(output, substr string) string {
	stripped := StripANSI(output)
	if !strings.Contains(stripped, substr) {
		return "expected output to contain " + substr
	}
	return ""
}

// AssertNotContains returns a failure message if the stripped output
// contains substr, or an empty string if it does not.
func AssertNotContains(output, substr string) string {
	stripped := StripANSI(output)
	if strings.Contains(stripped, substr) {
		return "expected output to NOT contain " + substr
	}
	return ""
}
