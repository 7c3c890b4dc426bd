package core

// errors.go defines the sentinel errors of the directory and maps any error
// to a user-facing message with a support code.
//
// # Error Codes Reference
//
//	AUTH001 - Sign-in required: the operation needs an attributed actor
//	          Action: Sign in and pick a role, then try again
//	REV001  - Invalid rating: rating outside 1-10
//	          Action: Choose a rating between 1 and 10
//	RES001  - Resource not found: unknown resource id
//	          Action: Refresh the directory and pick the resource again
//	EXP001  - Nothing to export: the saved list is empty
//	          Action: Save at least one resource first
//	AST001  - Assistant unavailable: no drafting/search backend configured
//	          Action: Ask an administrator to configure GEMINI_API_KEY
//	AST002  - Assistant timed out or failed upstream
//	          Action: Try again in a moment
//	RATE001 - Rate limited: too many requests
//	          Action: Please wait a moment before trying again
//	REQ001  - Bad request: the request body or parameters could not be read
//	          Action: Check the request and try again
//	ERR000  - Unknown error
//	          Action: Please try again or contact support
//
// Sentinels are matched with errors.Is first, so wrapped errors keep their
// code. Errors from outside the package fall back to substring patterns,
// first match wins.

import (
	"errors"
	"strings"
)

var (
	// ErrUnauthenticated is returned when an operation needs an actor and none was supplied.
	ErrUnauthenticated = errors.New("sign-in required")

	// ErrInvalidRating is returned for ratings outside [MinRating, MaxRating].
	ErrInvalidRating = errors.New("invalid rating")

	// ErrResourceNotFound is returned for ids the store does not contain.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrNothingToExport is returned when exporting an empty saved list.
	ErrNothingToExport = errors.New("no resources to export")

	// ErrAssistUnavailable is returned when no drafting or search backend is configured.
	ErrAssistUnavailable = errors.New("assistant unavailable")

	// ErrRateLimited is returned when a caller exceeds its request budget.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrBadRequest marks malformed request input.
	ErrBadRequest = errors.New("bad request")
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var sentinelMessages = []struct {
	err error
	msg UserMessage
}{
	{ErrUnauthenticated, UserMessage{"You need to sign in to do that", "Sign in and pick a role, then try again", "AUTH001"}},
	{ErrInvalidRating, UserMessage{"Ratings must be between 1 and 10", "Choose a rating between 1 and 10", "REV001"}},
	{ErrResourceNotFound, UserMessage{"That resource does not exist", "Refresh the directory and pick the resource again", "RES001"}},
	{ErrNothingToExport, UserMessage{"No resources to export", "Save at least one resource first", "EXP001"}},
	{ErrAssistUnavailable, UserMessage{"The assistant is not available", "Ask an administrator to configure GEMINI_API_KEY", "AST001"}},
	{ErrRateLimited, UserMessage{"Too many requests", "Please wait a moment before trying again", "RATE001"}},
	{ErrBadRequest, UserMessage{"The request could not be read", "Check the request and try again", "REQ001"}},
}

var errorPatterns = []struct {
	pattern string
	msg     UserMessage
}{
	{"context deadline exceeded", UserMessage{"The assistant took too long to answer", "Try again in a moment", "AST002"}},
	{"context canceled", UserMessage{"The request was cancelled", "Please try again", "AST002"}},
	{"rate limit", UserMessage{"Too many requests", "Please wait a moment before trying again", "RATE001"}},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, sm := range sentinelMessages {
		if errors.Is(err, sm.err) {
			return sm.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
