package applicationerrors

import (
	"net/http"

	"careernest/internal/shared/apperror"
)

var (
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found",
		http.StatusNotFound,
	)

	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)

	ErrJobInactive = apperror.New(
		apperror.CodeInvalidState,
		"This job listing is no longer active",
		http.StatusBadRequest,
	)

	ErrAlreadyApplied = apperror.New(
		apperror.CodeConflict,
		"You have already applied for this job",
		http.StatusConflict,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid Google authentication token.",
		http.StatusUnauthorized,
	)

	ErrEmailMismatch = apperror.New(
		apperror.CodeForbidden,
		"Email mismatch with Google account.",
		http.StatusForbidden,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid application status",
		http.StatusBadRequest,
	)
)
