package repo

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeInvalidRepositoryData = "INVALID_REPOSITORY_DATA"
	CodeNetworkError          = "NETWORK_ERROR"
	CodeServerError           = "SERVER_ERROR"
	CodeUnknownError          = "UNKNOWN_ERROR"
)

// Domain errors

type DomainError struct {
	Code    string
	Message string
	// StatusCode and StatusText are set for SERVER_ERROR only
	StatusCode int
	StatusText string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Predefined domain errors

func ErrInvalidRepositoryData(field string, err error) *DomainError {
	return &DomainError{
		Code:    CodeInvalidRepositoryData,
		Message: fmt.Sprintf("invalid %s", field),
		Err:     err,
	}
}

// NetworkError means the request never reached the server
func NetworkError(err error) *DomainError {
	return &DomainError{
		Code:    CodeNetworkError,
		Message: "request did not reach the server",
		Err:     err,
	}
}

// ServerError means the server answered with a non-2xx status
func ServerError(statusCode int, statusText string) *DomainError {
	return &DomainError{
		Code:       CodeServerError,
		Message:    fmt.Sprintf("server responded %d %s", statusCode, statusText),
		StatusCode: statusCode,
		StatusText: statusText,
	}
}

func UnknownError(err error) *DomainError {
	return &DomainError{
		Code:    CodeUnknownError,
		Message: "unexpected failure",
		Err:     err,
	}
}

// Classify returns err as a *DomainError, wrapping anything foreign as UNKNOWN_ERROR
func Classify(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return UnknownError(err)
}

func hasCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}

func IsNetworkError(err error) bool {
	return hasCode(err, CodeNetworkError)
}

func IsServerError(err error) bool {
	return hasCode(err, CodeServerError)
}

// UserMessage renders the message shown in place of the repository list
func UserMessage(err error) string {
	domainErr := Classify(err)
	if domainErr == nil {
		return ""
	}

	switch domainErr.Code {
	case CodeNetworkError:
		return "Network error: unable to reach the GitHub API. Check your connection and try again."
	case CodeServerError:
		return fmt.Sprintf("GitHub API error: %d %s", domainErr.StatusCode, domainErr.StatusText)
	default:
		if domainErr.Err != nil {
			return fmt.Sprintf("Unexpected error while loading repositories: %v", domainErr.Err)
		}
		return "Unexpected error while loading repositories."
	}
}
