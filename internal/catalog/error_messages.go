package catalog

// error_messages.go maps technical errors to user-friendly messages.
//
// # Error Codes Reference
//
// When users encounter errors, they can quote the error code to support
// staff for faster diagnosis.
//
// # Parse Errors (PARSE001-PARSE099)
//
//	PARSE001 - Invalid JSON: The file is not valid JSON
//	           Action: Check the file for syntax errors near the reported position
//	           Patterns: "invalid json"
//
//	PARSE002 - Invalid CSV: The CSV structure is inconsistent
//	           Action: Ensure every row has the same columns as the header
//	           Patterns: "parse error on line", "wrong number of fields", "bare \" in non-quoted-field"
//
//	PARSE003 - Invalid workbook: The spreadsheet could not be read
//	           Action: Save the file as .xlsx and try again
//	           Patterns: "zip: not a valid zip archive", "workbook"
//
// # Format Errors (FMT001-FMT099)
//
//	FMT001 - Unrecognized format: The document shape is not supported
//	         Action: Upload an array of products or a category-structured object
//	         Patterns: "unrecognized format"
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - No file: No file was selected
//	          Action: Please choose a file to upload
//	          Patterns: "no file provided", "missing form file"
//
//	FILE002 - Empty file: The uploaded file has no data
//	          Action: Please upload a file with at least a header row
//	          Patterns: "empty file"
//
//	FILE003 - File too large: File exceeds the size limit
//	          Action: Split the catalog into smaller files
//	          Patterns: "request body too large", "file too large"
//
// # Supplier Feed Errors (FEED001-FEED099)
//
//	FEED001 - Feed unreachable: The supplier feed could not be contacted
//	          Action: Please try again in a few moments
//	          Patterns: "connection refused", "no such host"
//
//	FEED002 - Feed timeout: The supplier feed took too long to respond
//	          Action: Please try again later
//	          Patterns: "context deadline exceeded", "timeout"
//
//	FEED003 - Feed error: The supplier feed returned an error
//	          Action: Check the supplier id and feed configuration
//	          Patterns: "unexpected status", "supplier not found"
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Rate limited: Too many requests
//	          Action: Please wait a moment before trying again
//	          Patterns: "rate limit"
//
// # Default (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Please try again or contact support
//
// Patterns are matched case-insensitively with strings.Contains; the first
// match wins, so specific patterns come before general ones.

import "strings"

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// =========================================================================
	// Format Errors (FMT001)
	// Valid documents with an unsupported top-level shape.
	// =========================================================================
	{
		pattern: "unrecognized format",
		msg: UserMessage{
			Message: "The document shape is not supported",
			Action:  "Upload an array of products or a category-structured object",
			Code:    "FMT001",
		},
	},

	// =========================================================================
	// Parse Errors (PARSE001-PARSE003)
	// Syntax and structural failures from the parsing layer.
	// =========================================================================
	{
		pattern: "invalid json",
		msg: UserMessage{
			Message: "The file is not valid JSON",
			Action:  "Check the file for syntax errors near the reported position",
			Code:    "PARSE001",
		},
	},
	{
		pattern: "parse error on line",
		msg: UserMessage{
			Message: "The CSV structure is inconsistent",
			Action:  "Ensure every row has the same columns as the header",
			Code:    "PARSE002",
		},
	},
	{
		pattern: "wrong number of fields",
		msg: UserMessage{
			Message: "The CSV structure is inconsistent",
			Action:  "Ensure every row has the same columns as the header",
			Code:    "PARSE002",
		},
	},
	{
		pattern: `bare " in non-quoted-field`,
		msg: UserMessage{
			Message: "The CSV contains malformed quoting",
			Action:  "Re-export the file or remove stray quote characters",
			Code:    "PARSE002",
		},
	},
	{
		pattern: "zip: not a valid zip archive",
		msg: UserMessage{
			Message: "The spreadsheet could not be read",
			Action:  "Save the file as .xlsx and try again",
			Code:    "PARSE003",
		},
	},
	{
		pattern: "workbook",
		msg: UserMessage{
			Message: "The spreadsheet could not be read",
			Action:  "Save the file as .xlsx and try again",
			Code:    "PARSE003",
		},
	},

	// =========================================================================
	// File Errors (FILE001-FILE003)
	// =========================================================================
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Please choose a file to upload",
			Code:    "FILE001",
		},
	},
	{
		pattern: "missing form file",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Please choose a file to upload",
			Code:    "FILE001",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The uploaded file has no data",
			Action:  "Please upload a file with at least a header row",
			Code:    "FILE002",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "File exceeds the size limit",
			Action:  "Split the catalog into smaller files",
			Code:    "FILE003",
		},
	},
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds the size limit",
			Action:  "Split the catalog into smaller files",
			Code:    "FILE003",
		},
	},

	// =========================================================================
	// Supplier Feed Errors (FEED001-FEED003)
	// Transport failures from the feed client. Timeouts before connection
	// errors so "context deadline exceeded" wins over generic matches.
	// =========================================================================
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "The supplier feed took too long to respond",
			Action:  "Please try again later",
			Code:    "FEED002",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "The supplier feed took too long to respond",
			Action:  "Please try again later",
			Code:    "FEED002",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "The supplier feed could not be contacted",
			Action:  "Please try again in a few moments",
			Code:    "FEED001",
		},
	},
	{
		pattern: "no such host",
		msg: UserMessage{
			Message: "The supplier feed could not be contacted",
			Action:  "Please try again in a few moments",
			Code:    "FEED001",
		},
	},
	{
		pattern: "supplier not found",
		msg: UserMessage{
			Message: "The supplier feed returned an error",
			Action:  "Check the supplier id and feed configuration",
			Code:    "FEED003",
		},
	},
	{
		pattern: "unexpected status",
		msg: UserMessage{
			Message: "The supplier feed returned an error",
			Action:  "Check the supplier id and feed configuration",
			Code:    "FEED003",
		},
	},

	// =========================================================================
	// Rate Limiting (RATE001)
	// =========================================================================
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, strings.ToLower(ep.pattern)) {
			return ep.msg
		}
	}
	return defaultMessage
}
