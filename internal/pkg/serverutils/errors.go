package serverutils

import "errors"

// ErrorKind classifies domain failures so controllers can map them to
// HTTP status codes without string matching.
type ErrorKind int

const (
	KindServer ErrorKind = iota
	KindConflict
	KindUnauthorized
	KindNotFound
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewServerError(message string, err error) *AppError {
	return &AppError{Kind: KindServer, Message: message, Err: err}
}

// StatusCode maps an error to its HTTP status. Unknown errors are
// treated as server errors.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindConflict:
			return 400
		case KindUnauthorized:
			return 401
		case KindNotFound:
			return 404
		}
	}
	return 500
}
