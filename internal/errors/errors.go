// Package errors provides custom error types for the askweb client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrInvalidResponse       = errors.New("invalid response format")
	ErrNoFile                = errors.New("no file selected")
	ErrCapabilityUnavailable = errors.New("capability not available")
	ErrClientClosed          = errors.New("client is closed")
)

// NetworkError represents a transport failure while talking to an endpoint
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return "network request failed"
	}
	return e.Err.Error()
}

// Unwrap returns the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(endpoint string, err error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Err: err}
}

// ParseError represents a response parsing error
type ParseError struct {
	Message    string
	Endpoint   string
	StatusCode int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// NewParseError creates a new ParseError
func NewParseError(endpoint string, statusCode int, message string) *ParseError {
	return &ParseError{Message: message, Endpoint: endpoint, StatusCode: statusCode}
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// VoiceError represents a speech capture failure
type VoiceError struct {
	Message string
	Err     error
}

func (e *VoiceError) Error() string {
	if e.Message == "" && e.Err != nil {
		return fmt.Sprintf("speech recognition error: %v", e.Err)
	}
	return fmt.Sprintf("speech recognition error: %s", e.Message)
}

// Unwrap returns the underlying capture error
func (e *VoiceError) Unwrap() error {
	return e.Err
}

// NewVoiceError creates a new VoiceError
func NewVoiceError(message string, err error) *VoiceError {
	return &VoiceError{Message: message, Err: err}
}

// IsNetworkError reports whether err is a transport failure
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsParseError reports whether err is a response parsing failure
func IsParseError(err error) bool {
	return errors.Is(err, ErrInvalidResponse)
}

// IsVoiceError reports whether err came from speech capture
func IsVoiceError(err error) bool {
	var voiceErr *VoiceError
	return errors.As(err, &voiceErr)
}

// GetHTTPStatus extracts the status of an unparseable response, or 0 when none is known.
// Status codes are never checked, so only a parse failure carries one.
func GetHTTPStatus(err error) int {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.StatusCode
	}
	return 0
}
