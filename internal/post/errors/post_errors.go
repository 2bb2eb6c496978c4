package posterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidPostID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid post id",
		http.StatusBadRequest,
	)
	ErrPostNotFound = apperror.New(
		apperror.CodeNotFound,
		"Post not found",
		http.StatusNotFound,
	)
	ErrIncompleteCompensation = apperror.New(
		apperror.CodeConfiguration,
		"Post salary configuration is incomplete",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidCompensation = apperror.New(
		apperror.CodeConfiguration,
		"Post salary configuration is invalid",
		http.StatusUnprocessableEntity,
	)
	ErrUnknownPayrollType = apperror.New(
		apperror.CodeConfiguration,
		"Post payroll type is not monthly or weekly",
		http.StatusUnprocessableEntity,
	)
)
