package joberrors

import (
	"net/http"

	"careernest/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)

	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found. Create the company first.",
		http.StatusNotFound,
	)
)
