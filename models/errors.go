package models

// ErrorKind tags a failure so the handler layer can map it to a stable HTTP
// status and machine-readable error code.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "NotFound"
	KindConflict     ErrorKind = "Conflict"
	KindForbidden    ErrorKind = "Forbidden"
	KindValidation   ErrorKind = "Validation"
	KindUnauthorized ErrorKind = "Unauthorized"
)

// APIError is a typed failure raised by the core. Unrecoverable store errors
// are not wrapped in it and propagate to the boundary as-is.
type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func NotFound(message string) *APIError {
	return &APIError{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *APIError {
	return &APIError{Kind: KindConflict, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{Kind: KindForbidden, Message: message}
}

func Validation(message string) *APIError {
	return &APIError{Kind: KindValidation, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{Kind: KindUnauthorized, Message: message}
}
