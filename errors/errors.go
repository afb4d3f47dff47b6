// Package errors defines the domain error taxonomy.
// Each kind has a stable machine-readable code. Transport layers map kinds to
// status codes, this package knows nothing about HTTP.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code is the stable identifier exposed to callers.
type Code string

const (
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeInvalidSender      Code = "SENDER_MISSING"
	CodeBannedContent      Code = "BANNED_WORD_DETECTED"
	CodeCorpusUnavailable  Code = "CORPUS_UNAVAILABLE"
	CodeCorpusMalformed    Code = "CORPUS_MALFORMED"
	CodeDuplicateMessage   Code = "DUPLICATE_MESSAGE"
	CodeStorageUnavailable Code = "DATABASE_ERROR"
	CodeNotFound           Code = "MESSAGES_NOT_FOUND"
	CodeUnauthorized       Code = "INVALID_API_KEY"
	CodeRateLimited        Code = "RATE_LIMIT_EXCEEDED"
)

// Sentinel kinds, compare with errors.Is.
var (
	ErrValidation         = &Error{Code: CodeValidation, Message: "request does not match the expected schema"}
	ErrInvalidSender      = &Error{Code: CodeInvalidSender, Message: "sender must be 'user' or 'system'"}
	ErrBannedContent      = &Error{Code: CodeBannedContent, Message: "message contains a banned word"}
	ErrCorpusUnavailable  = &Error{Code: CodeCorpusUnavailable, Message: "banned word corpus cannot be read"}
	ErrCorpusMalformed    = &Error{Code: CodeCorpusMalformed, Message: "banned word corpus is malformed"}
	ErrDuplicateMessage   = &Error{Code: CodeDuplicateMessage, Message: "message already exists"}
	ErrStorageUnavailable = &Error{Code: CodeStorageUnavailable, Message: "database interaction failed"}
	ErrNotFound           = &Error{Code: CodeNotFound, Message: "no messages found"}
	ErrUnauthorized       = &Error{Code: CodeUnauthorized, Message: "invalid or missing API key"}
	ErrRateLimited        = &Error{Code: CodeRateLimited, Message: "rate limit exceeded"}
)

// Error is a domain error. Detail is safe to show to callers, Cause is not.
type Error struct {
	Code    Code
	Message string
	Detail  string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any Error of the same code, so errors.Is(err, ErrDuplicateMessage)
// holds for every duplicate regardless of its message or detail.
func (e *Error) Is(target error) bool {
	var t *Error
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

func newError(kind *Error, message, detail string, cause error) *Error {
	return &Error{Code: kind.Code, Message: message, Detail: detail, Cause: cause}
}

func Validation(detail string) *Error {
	return newError(ErrValidation, ErrValidation.Message, detail, nil)
}

func InvalidSender(sender string) *Error {
	return newError(ErrInvalidSender, "invalid 'sender' field",
		fmt.Sprintf("sender %q must be 'user' or 'system'", sender), nil)
}

func BannedContent(word string) *Error {
	return newError(ErrBannedContent, fmt.Sprintf("message contains a banned word: '%s'", word), "", nil)
}

func CorpusUnavailable(path string, cause error) *Error {
	return newError(ErrCorpusUnavailable, ErrCorpusUnavailable.Message, path, cause)
}

func CorpusMalformed(path string, cause error) *Error {
	return newError(ErrCorpusMalformed, ErrCorpusMalformed.Message, path, cause)
}

func DuplicateMessage(id string) *Error {
	return newError(ErrDuplicateMessage, ErrDuplicateMessage.Message,
		fmt.Sprintf("message with id '%s' already exists", id), nil)
}

func StorageUnavailable(detail string, cause error) *Error {
	return newError(ErrStorageUnavailable, ErrStorageUnavailable.Message, detail, cause)
}

func NotFound(sessionID string, sender *string) *Error {
	msg := fmt.Sprintf("no messages found for session '%s'", sessionID)
	if sender != nil {
		msg += fmt.Sprintf(" and sender '%s'", *sender)
	}
	return newError(ErrNotFound, msg, "", nil)
}

func Unauthorized(message string) *Error {
	return newError(ErrUnauthorized, message, "", nil)
}

func RateLimited(detail string) *Error {
	return newError(ErrRateLimited, ErrRateLimited.Message, detail, nil)
}

// CodeOf returns the code of the first domain error in err's chain, or "" when none.
func CodeOf(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}
