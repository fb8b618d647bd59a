// Package errors defines the error taxonomy of the search engine. Every
// failure surfaced by the engine wraps one of the top-level sentinels so that
// callers can classify it with errors.Is or KindOf.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
	ErrNotFound        = errors.New("not found")
	ErrEmptyDocument   = errors.New("document has no indexable words")
)

// Finer-grained causes. Each one is also an ErrInvalidArgument.
var (
	ErrNegativeID        = fmt.Errorf("%w: negative document id", ErrInvalidArgument)
	ErrDuplicateID       = fmt.Errorf("%w: duplicate document id", ErrInvalidArgument)
	ErrInvalidCharacters = fmt.Errorf("%w: control characters in text", ErrInvalidArgument)
	ErrMalformedTerm     = fmt.Errorf("%w: malformed query term", ErrInvalidArgument)
)

// Kind is the coarse class of an error.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindOutOfRange
	KindNotFound
	KindEmptyDocument
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindOutOfRange:
		return "out_of_range"
	case KindNotFound:
		return "not_found"
	case KindEmptyDocument:
		return "empty_document"
	default:
		return "internal"
	}
}

type AppError struct {
	Err     error
	Message string
	Kind    Kind
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(sentinel error, message string) *AppError {
	return &AppError{
		Err:     sentinel,
		Message: message,
		Kind:    kindOfSentinel(sentinel),
	}
}

func Newf(sentinel error, format string, args ...any) *AppError {
	return &AppError{
		Err:     sentinel,
		Message: fmt.Sprintf(format, args...),
		Kind:    kindOfSentinel(sentinel),
	}
}

// KindOf classifies err. Errors outside the taxonomy are KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return kindOfSentinel(err)
}

// ExitCode maps err onto a process exit status for command-line callers.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindInvalidArgument:
		return 2
	case KindOutOfRange:
		return 3
	case KindNotFound:
		return 4
	case KindEmptyDocument:
		return 5
	default:
		return 1
	}
}

// Is forwards to the standard library so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As forwards to the standard library so callers need a single import.
func As(err error, target any) bool {
	return errors.As(err, target)
}

func kindOfSentinel(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrEmptyDocument):
		return KindEmptyDocument
	default:
		return KindInternal
	}
}
