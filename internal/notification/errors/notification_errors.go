package notificationerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"notification not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrMissingTarget = apperror.New(
		apperror.CodeInvalidInput,
		"notification target requires user_id or employee_id",
		http.StatusBadRequest,
	)
	ErrInvalidAudience = apperror.New(
		apperror.CodeInvalidInput,
		"audience must be employee or admin",
		http.StatusBadRequest,
	)
)
