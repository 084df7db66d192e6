package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies what kind of operation failure occurred.
type ErrorCode int

// Error code ranges:
// 1000-1099: authentication and configuration
// 1100-1199: transport and decoding
// 1200-1299: judge job lifecycle
// 1300-1399: local files and user input
const (
	MissingCsrfToken ErrorCode = 1000
	NotLoggedIn      ErrorCode = 1001
	Config           ErrorCode = 1002

	Network ErrorCode = 1100
	Decode  ErrorCode = 1101

	UnknownState    ErrorCode = 1200
	PollTimeout     ErrorCode = 1201
	FeatureDisabled ErrorCode = 1202
	NoSnippet       ErrorCode = 1203

	InvalidCodeFile ErrorCode = 1300
	InvalidChoice   ErrorCode = 1301
	FileWrite       ErrorCode = 1302
)

var errorMessages = map[ErrorCode]string{
	MissingCsrfToken: "No csrf token found in cookie",
	NotLoggedIn:      "Not logged in. Run 'lc auth' first",
	Config:           "Invalid configuration",

	Network: "Failed to reach leetcode",
	Decode:  "Failed to parse JSON from leetcode! Try again after sometime or renew cookie",

	UnknownState:    "Judge reported an unknown state. Kindly report this state to the maintainer",
	PollTimeout:     "Gave up waiting for the judge",
	FeatureDisabled: "Operation is disabled for this question",
	NoSnippet:       "No boilerplate code available in a supported language",

	InvalidCodeFile: "Could not read a leetcode solution from file",
	InvalidChoice:   "Invalid input",
	FileWrite:       "Failed to write file",
}

// Message returns the default message for the error code
func (c ErrorCode) Message() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return "Unknown error"
}

// Error carries a code, an optional custom message and the wrapped cause.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code.Message()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same code, so errors.Is(err, New(Decode))
// works across wrapping.
func (e *Error) Is(target error) bool {
	var t *Error
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New creates an error with the code's default message.
func New(code ErrorCode) *Error {
	return &Error{Code: code}
}

// Newf creates an error with a custom message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code to an underlying error.
func Wrap(err error, code ErrorCode) *Error {
	return &Error{Code: code, Err: err}
}

// Wrapf attaches a code and a custom message to an underlying error.
func Wrapf(err error, code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// GetCode extracts the code of the outermost *Error in the chain.
func GetCode(err error) (ErrorCode, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}

// Is reports whether any error in err's chain carries code.
func Is(err error, code ErrorCode) bool {
	var e *Error
	for stderrors.As(err, &e) {
		if e.Code == code {
			return true
		}
		err = e.Err
		if err == nil {
			return false
		}
	}
	return false
}
