// Package error defines domain-specific errors for the ledger.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrEmptyCategoryName is returned when a category is created without a name.
	ErrEmptyCategoryName = errors.New("category name is empty")

	// ErrMissingUserID is returned when an operation is requested without a user id.
	ErrMissingUserID = errors.New("user id is missing")

	// ErrEmptyRecordKind is returned when a record is written without a kind.
	ErrEmptyRecordKind = errors.New("record kind is empty")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LED-XXYYYY where XX is the class and YYYY the specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyCategoryName LedgerErrorCode = "LED-010001"
	ErrCodeMissingUserID     LedgerErrorCode = "LED-010002"
	ErrCodeEmptyRecordKind   LedgerErrorCode = "LED-010003"
	ErrCodeInvalidRecordID   LedgerErrorCode = "LED-010004"
	ErrCodeInvalidBody       LedgerErrorCode = "LED-010005"

	// Rate limiting (02XXXX)
	ErrCodeRateLimited LedgerErrorCode = "LED-020001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
