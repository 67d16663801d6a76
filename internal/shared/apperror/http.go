package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the wire shape handlers use to answer a failed request.
type HTTPError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTP maps any error to an HTTPError. Errors that are not AppErrors
// (driver failures, context cancellations) surface as a generic 500 so
// internals never leak to the client.
func ToHTTP(err error) *HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
}
