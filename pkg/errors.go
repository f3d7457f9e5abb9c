package pkg

import (
	"errors"
	"net/http"

	"consig_origination/internal/domain/failure"
)

// AppError is an error ready to be written as an HTTP response.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body of every error response.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
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

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// HTTPStatus maps a failure kind to the response status.
func HTTPStatus(kind error) int {
	switch kind {
	case failure.ErrValidation:
		return http.StatusBadRequest
	case failure.ErrEligibility:
		return http.StatusUnprocessableEntity
	case failure.ErrNotFound:
		return http.StatusNotFound
	case failure.ErrConsistency:
		return http.StatusConflict
	case failure.ErrPermanentExternal:
		return http.StatusBadGateway
	case failure.ErrTransientExternal:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// FromError converts any use case error into an AppError. Classified failures keep
// their code and reason; anything else becomes an opaque internal error.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	kind := failure.KindOf(err)
	if kind == nil {
		return NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	var fe *failure.Error
	if !errors.As(err, &fe) {
		return NewDomainError("INTERNAL_ERROR", kind.Error(), err, HTTPStatus(kind))
	}
	message := fe.Reason
	if kind == failure.ErrTransientExternal {
		message = "Serviço externo indisponível, tente novamente"
	}
	return NewDomainError(fe.Code, message, err, HTTPStatus(kind))
}
