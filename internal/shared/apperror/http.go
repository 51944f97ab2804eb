package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the flattened form handlers write to the wire.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP converts any error into an HTTPError. Errors that are not an
// AppError (directly or wrapped) become a 500 with a generic message so
// internal details never leak to clients.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}
