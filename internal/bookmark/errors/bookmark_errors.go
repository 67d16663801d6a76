package bookmarkerrors

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

	ErrAlreadyBookmarked = apperror.New(
		apperror.CodeConflict,
		"Job already bookmarked",
		http.StatusConflict,
	)

	ErrBookmarkNotFound = apperror.New(
		apperror.CodeNotFound,
		"Bookmark not found",
		http.StatusNotFound,
	)
)
