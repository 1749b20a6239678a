// Package apperr defines the structured error kinds the engine surfaces to
// its host, per the error handling design: UnknownItem, InvalidResponse,
// UnexpectedItem, AlreadyCompleted and IncompleteSurvey. None of these are
// recovered inside the core; pathological numeric outcomes are handled
// locally instead (see package bayes) and never raised as errors here.
package apperr

import (
	"errors"
	"fmt"
)

// AppError is a structured error carrying a stable Code alongside a message
// and optional wrapped cause.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches additional context to err, preserving its code when err is
// already an *AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{Code: appErr.Code, Message: message, Cause: appErr}
	}
	return &AppError{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Code returns the AppError code for err, or "UNKNOWN" if err is not one.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Error kind codes surfaced to the host service (spec §7).
const (
	CodeUnknownItem      = "UNKNOWN_ITEM"
	CodeInvalidResponse  = "INVALID_RESPONSE"
	CodeUnexpectedItem   = "UNEXPECTED_ITEM"
	CodeAlreadyCompleted = "ALREADY_COMPLETED"
	CodeIncompleteSurvey = "INCOMPLETE_SURVEY"
	CodeInternal         = "INTERNAL_ERROR"
)

// Sentinels for errors.Is comparisons against the error kind, independent of
// the specific item id / response value embedded in the message.
var (
	ErrUnknownItem      = &AppError{Code: CodeUnknownItem, Message: "unknown item"}
	ErrInvalidResponse  = &AppError{Code: CodeInvalidResponse, Message: "invalid response"}
	ErrUnexpectedItem   = &AppError{Code: CodeUnexpectedItem, Message: "unexpected item"}
	ErrAlreadyCompleted = &AppError{Code: CodeAlreadyCompleted, Message: "session already completed"}
	ErrIncompleteSurvey = &AppError{Code: CodeIncompleteSurvey, Message: "incomplete survey"}
)

// UnknownItem reports that id is not present in the item bank.
func UnknownItem(id int) error {
	return &AppError{Code: CodeUnknownItem, Message: fmt.Sprintf("item %d is not in the item bank", id), Cause: ErrUnknownItem}
}

// InvalidResponse reports that value falls outside the 1..7 response range.
func InvalidResponse(value int) error {
	return &AppError{Code: CodeInvalidResponse, Message: fmt.Sprintf("response %d outside 1..7", value), Cause: ErrInvalidResponse}
}

// UnexpectedItem reports that a response was submitted for an item other
// than the one most recently presented.
func UnexpectedItem(got, want int) error {
	return &AppError{Code: CodeUnexpectedItem, Message: fmt.Sprintf("response for item %d does not match presented item %d", got, want), Cause: ErrUnexpectedItem}
}

// AlreadyCompleted reports that a response arrived after the session reached Complete.
func AlreadyCompleted() error {
	return &AppError{Code: CodeAlreadyCompleted, Message: "session has already completed all traits", Cause: ErrAlreadyCompleted}
}

// IncompleteSurvey reports that the classical scorer received fewer than 24 responses.
func IncompleteSurvey(got, want int) error {
	return &AppError{Code: CodeIncompleteSurvey, Message: fmt.Sprintf("classical scoring requires %d responses, got %d", want, got), Cause: ErrIncompleteSurvey}
}
