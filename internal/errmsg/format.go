// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Document operations
	OpDocumentLoad    Op = "load document"
	OpDocumentExtract Op = "extract document text"

	// Reading operations
	OpReadingStart Op = "start reading"
	OpReadingPause Op = "pause reading"
	OpReadingStop  Op = "stop reading"
	OpPageChange   Op = "change page"

	// Speech operations
	OpSpeechSynthesize Op = "synthesize speech"
	OpSpeechRate       Op = "set speaking rate"
	OpSpeechVolume     Op = "set volume"
	OpSpeechVoice      Op = "set voice"
	OpVoicesList       Op = "list voices"

	// Cache operations
	OpCacheSweep Op = "sweep utterance cache"

	// Config operations
	OpConfigLoad Op = "load configuration"

	// File operations
	OpFileBrowse Op = "browse files"

	// Initialization
	OpInitialize Op = "initialize application"
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
