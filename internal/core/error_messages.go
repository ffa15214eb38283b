package core

// # Error Codes Reference
//
// Fatal pipeline errors are mapped to coded messages so the final diagnostic
// tells the operator what failed and what to try next.
//
// # Fetch Errors (FETCH001-FETCH099)
//
//	FETCH001 - Source unreachable: DNS, connection or timeout failure
//	           Action: Check network access or rerun with --use-cached
//	FETCH002 - Bad status: The source answered with a non-200 status
//	           Action: Verify the source URL is still published
//	FETCH003 - Certificate rejected: TLS verification failed
//	           Action: Fix the trust store or rerun with --ignore-ssl
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File missing: An input file does not exist
//	          Action: Download the inputs or drop --use-cached
//	FILE002 - Invalid CSV: The reference table could not be parsed
//	          Action: Re-download country-codes.csv
//	FILE003 - Invalid JSON: The emoji catalog could not be parsed
//	          Action: Re-download the emoji catalog
//	FILE004 - Unreadable: An input file exists but could not be read
//	          Action: Check the file path and permissions
//
// # Output Errors (OUT001-OUT099)
//
//	OUT001 - Write failed: The output file could not be written
//	         Action: Check the output path and permissions
//
// # Database Errors (DB001-DB099)
//
//	DB001 - Export failed: Rows could not be written to Postgres
//	        Action: Check --database-url and that the server is reachable
//
// # Lookup Errors (LOOKUP001-LOOKUP099)
//
//	LOOKUP001 - Unknown code: No flag matches the requested code
//	            Action: Use an ISO 3166-1 alpha-2 or alpha-3 code
//
// Anything else maps to GEN001.

import (
	"crypto/x509"
	"errors"
	"io/fs"
	"strings"
)

// Sentinel errors wrapped by the pipeline stages.
var (
	ErrFetch       = errors.New("fetch failed")
	ErrBadStatus   = errors.New("unexpected status")
	ErrDataAccess  = errors.New("data access failed")
	ErrInvalidCSV  = errors.New("invalid csv")
	ErrInvalidJSON = errors.New("invalid json")
	ErrWrite       = errors.New("write failed")
	ErrExport      = errors.New("export failed")
	ErrNotFound    = errors.New("not found")
)

// UserMessage is an operator-facing description of a failure.
type UserMessage struct {
	Code    string
	Message string
	Action  string
}

// String formats the message for a single log line or terminal output.
func (m UserMessage) String() string {
	if m.Action == "" {
		return m.Message + " (" + m.Code + ")"
	}
	return m.Message + " (" + m.Code + "). " + m.Action
}

// MapError converts a pipeline error into a coded message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var certErr x509.UnknownAuthorityError
	var hostErr x509.HostnameError
	lower := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, ErrFetch) && (errors.As(err, &certErr) || errors.As(err, &hostErr) ||
		strings.Contains(lower, "x509") || strings.Contains(lower, "certificate")):
		return UserMessage{
			Code:    "FETCH003",
			Message: "TLS certificate verification failed",
			Action:  "Fix the trust store or rerun with --ignore-ssl",
		}
	case errors.Is(err, ErrBadStatus):
		return UserMessage{
			Code:    "FETCH002",
			Message: "Source answered with an unexpected status",
			Action:  "Verify the source URL is still published",
		}
	case errors.Is(err, ErrFetch):
		return UserMessage{
			Code:    "FETCH001",
			Message: "Source could not be reached",
			Action:  "Check network access or rerun with --use-cached",
		}
	case errors.Is(err, fs.ErrNotExist):
		return UserMessage{
			Code:    "FILE001",
			Message: "Input file does not exist",
			Action:  "Download the inputs or drop --use-cached",
		}
	case errors.Is(err, ErrInvalidCSV):
		return UserMessage{
			Code:    "FILE002",
			Message: "Reference table is not valid CSV",
			Action:  "Re-download country-codes.csv",
		}
	case errors.Is(err, ErrInvalidJSON):
		return UserMessage{
			Code:    "FILE003",
			Message: "Emoji catalog is not valid JSON",
			Action:  "Re-download the emoji catalog",
		}
	case errors.Is(err, ErrWrite):
		return UserMessage{
			Code:    "OUT001",
			Message: "Output file could not be written",
			Action:  "Check the output path and permissions",
		}
	case errors.Is(err, ErrExport):
		return UserMessage{
			Code:    "DB001",
			Message: "Rows could not be exported to Postgres",
			Action:  "Check --database-url and that the server is reachable",
		}
	case errors.Is(err, ErrDataAccess):
		return UserMessage{
			Code:    "FILE004",
			Message: "Input file could not be read",
			Action:  "Check the file path and permissions",
		}
	case errors.Is(err, ErrNotFound):
		return UserMessage{
			Code:    "LOOKUP001",
			Message: "No flag matches the requested code",
			Action:  "Use an ISO 3166-1 alpha-2 or alpha-3 code",
		}
	default:
		return UserMessage{
			Code:    "GEN001",
			Message: "Unexpected error: " + err.Error(),
		}
	}
}
