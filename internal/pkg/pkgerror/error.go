package pkgerror

import (
	"fmt"
	"net/http"
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	TypeServer     Type = iota // Server-side errors (e.g., storage or parser faults).
	TypeValidation             // Validation errors (e.g., upload rejected before processing).
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to HTTP status codes.
type Code int

const (
	CodeInternal      Code = iota // Internal or unspecified error.
	CodeInvalidFormat             // Error code for a malformed request body.
	CodeInvalidInput              // Error code for an upload that failed validation.
	CodeStorage                   // Error code for temp file store faults.
	CodeParse                     // Error code for unreadable or malformed file content.
	CodeUnsupported               // Error code for a format no parser handles.
	CodeUnavailable               // Error code for saturated upload capacity.
)

func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeStorage:
		return "ERROR_CODE_STORAGE"
	case CodeParse:
		return "ERROR_CODE_PARSE"
	case CodeUnsupported:
		return "ERROR_CODE_UNSUPPORTED"
	case CodeUnavailable:
		return "ERROR_CODE_UNAVAILABLE"
	case CodeInternal:
		return "ERROR_CODE_INTERNAL"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying a user-facing message,
// a high-level type, and a stable error code.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	if e.errType == TypeValidation {
		return "Validation violation"
	}

	if e.errType == TypeServer {
		return "Internal error"
	}

	return "Unknown error"
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.err,
	)
}

// Msg returns the user-facing error message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat:
		return http.StatusBadRequest
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeStorage:
		return http.StatusInternalServerError
	case CodeParse:
		return http.StatusInternalServerError
	case CodeUnsupported:
		return http.StatusInternalServerError
	case CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func new(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer creates a server-type error with the provided error.
func NewServer(err error) error {
	return new(err, "Internal server error", TypeServer, CodeInternal)
}

// NewInvalidInput creates a validation error carrying a user-facing reason.
func NewInvalidInput(msg string) error {
	return new(nil, msg, TypeValidation, CodeInvalidInput)
}

// NewInvalidFormat creates a validation error for an invalid request body format.
func NewInvalidFormat() error {
	return new(nil, "invalid request body", TypeValidation, CodeInvalidFormat)
}

// NewStorage creates a server-type error for a temp file store fault.
func NewStorage(err error) error {
	return new(err, "Failed to store uploaded file", TypeServer, CodeStorage)
}

// NewParse creates a server-type error for unreadable or malformed file
// content, keeping the parser's reason in the user-facing message.
func NewParse(err error) error {
	return new(err, fmt.Sprintf("Error parsing file: %v", err), TypeServer, CodeParse)
}

// NewUnsupported creates a server-type error for a file format that passed
// validation but has no parser.
func NewUnsupported(format string) error {
	return new(nil, fmt.Sprintf("Unsupported file format: %s", format), TypeServer, CodeUnsupported)
}

// NewUnavailable creates a server-type error for work rejected because upload
// capacity is saturated.
func NewUnavailable(msg string) error {
	return new(nil, msg, TypeServer, CodeUnavailable)
}
