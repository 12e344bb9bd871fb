package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// Stable error codes surfaced to API clients. Handlers map these to HTTP
// statuses; clients are expected to branch on the code string, not the message.
const (
	CodeInvalidInput                 = "INVALID_INPUT"
	CodeNoAccountsFound              = "NO_ACCOUNTS_FOUND"
	CodeLedgerQueryError             = "LEDGER_QUERY_ERROR"
	CodeTrialBalanceError            = "TRIAL_BALANCE_ERROR"
	CodeComparativeTrialBalanceError = "COMPARATIVE_TRIAL_BALANCE_ERROR"
	CodeProfitLossError              = "PROFIT_LOSS_ERROR"
	CodeCashFlowError                = "CASH_FLOW_ERROR"
	CodeNotImplemented               = "NOT_IMPLEMENTED"
)

// AppError is a typed failure carrying a stable string code alongside the
// human-readable message and the wrapped cause (if any).
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given code and message, wrapping err.
func NewAppError(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewInvalidInput creates a validation failure with the INVALID_INPUT code.
func NewInvalidInput(message string) *AppError {
	return &AppError{Code: CodeInvalidInput, Message: message, Err: ErrValidation}
}

// CodeOf extracts the stable code from err, or empty string when err is not
// an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
