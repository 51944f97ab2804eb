package employeeerrors

import (
	"net/http"

	"go-empdir/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidBirthDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid birth_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrBirthDateInFuture = apperror.New(
		apperror.CodeInvalidInput,
		"birth_date must not be in the future",
		http.StatusBadRequest,
	)
)
