package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for operator-facing failures
type ErrorCode string

const (
	// BindFailed indicates the listening socket could not be opened
	BindFailed ErrorCode = "BIND_FAILED"
	// ConfigInvalid indicates a configuration value is out of range or malformed
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// CatalogInvalid indicates a trigger catalog file could not be used
	CatalogInvalid ErrorCode = "CATALOG_INVALID"
	// StaticUnavailable indicates the static base directory is missing or unreadable
	StaticUnavailable ErrorCode = "STATIC_UNAVAILABLE"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// EditConfig suggests changing a configuration value
	EditConfig FixActionType = "edit-config"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Key         string        `json:"key,omitempty"`
	Description string        `json:"description,omitempty"`
}

// FixtureError represents an error with code, message, and suggestions
type FixtureError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// New creates a FixtureError carrying the default suggested fixes for its code
func New(code ErrorCode, message string, cause error) *FixtureError {
	return &FixtureError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: GetSuggestedFixes(code),
	}
}

// Error implements the error interface
func (e *FixtureError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *FixtureError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *FixtureError) WithDetails(details interface{}) *FixtureError {
	e.Details = details
	return e
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	BindFailed: {
		{
			Type:        RunCommand,
			Command:     "debugfixture serve --port <free port>",
			Description: "Pick a port that is not already in use",
		},
		{
			Type:        EditConfig,
			Key:         "DEBUGFIXTURE_PORT",
			Description: "Override the port through the environment",
		},
	},
	ConfigInvalid: {
		{
			Type:        RunCommand,
			Command:     "debugfixture serve --help",
			Description: "List the accepted flags and their defaults",
		},
	},
	CatalogInvalid: {
		{
			Type:        RunCommand,
			Command:     "debugfixture triggers --json",
			Description: "Print the built-in catalog as a starting point",
		},
	},
	StaticUnavailable: {
		{
			Type:        EditConfig,
			Key:         "staticDir",
			Description: "Point staticDir at an existing directory, or leave it empty for the built-in assets",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}

// CodeOf returns the code of the first FixtureError in err's chain, or
// InternalError when there is none.
func CodeOf(err error) ErrorCode {
	var fe *FixtureError
	if stderrors.As(err, &fe) {
		return fe.Code
	}
	return InternalError
}
