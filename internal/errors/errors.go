package errors

import (
	"fmt"

	"google.golang.org/grpc/status"
)

// Error is a domain error carrying a machine-readable code.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
}

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithMeta attaches a metadata key/value pair and returns the error.
func (e *Error) WithMeta(key, value string) *Error {
	if e.Metadata == nil {
		e.Metadata = make(map[string]string)
	}
	e.Metadata[key] = value
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ToGRPCStatus converts the domain error to a gRPC status error.
func (e *Error) ToGRPCStatus() error {
	return status.Error(e.Code.GRPCCode(), e.Error())
}
