package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error by the pipeline stage that produced it.
type Kind string

const (
	KindConfiguration   Kind = "configuration_error"
	KindValidation      Kind = "validation_error"
	KindExtraction      Kind = "extraction_error"
	KindExtractionEmpty Kind = "extraction_empty"
	KindProvider        Kind = "provider_error"
	KindNoJSONFound     Kind = "no_json_found"
	KindMalformedJSON   Kind = "malformed_json"
)

type Error struct {
	Kind    Kind
	Message string
	Data    interface{}
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// HTTPStatus maps the error kind to the response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindExtraction, KindExtractionEmpty:
		return http.StatusUnprocessableEntity
	case KindProvider, KindNoJSONFound, KindMalformedJSON:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the kind of err, or an empty Kind for foreign errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
