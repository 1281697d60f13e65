package domain

import "errors"

// ErrorKind classifies a failure so the API layer can map it to a status
// code without inspecting message text.
type ErrorKind int

const (
	KindStore ErrorKind = iota
	KindValidation
	KindNotFound
	KindDuplicate
)

// Error carries a client-facing message and a kind. The underlying cause,
// if any, is kept for logging and never exposed in responses.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func ValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func DuplicateError(message string) *Error {
	return &Error{Kind: KindDuplicate, Message: message}
}

func StoreError(message string, cause error) *Error {
	return &Error{Kind: KindStore, Message: message, cause: cause}
}

// KindOf extracts the kind from an error chain. Unclassified errors are
// treated as store failures.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}
