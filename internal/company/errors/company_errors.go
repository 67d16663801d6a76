package companyerrors

import (
	"net/http"

	"careernest/internal/shared/apperror"
)

var ErrCompanyNotFound = apperror.New(
	apperror.CodeNotFound,
	"Company not found",
	http.StatusNotFound,
)
