package payperiod

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidWeek = apperror.New(
		apperror.CodeInvalidInput,
		"invalid week, expected WWYY with week 01-53",
		http.StatusBadRequest,
	)
	ErrUnknownType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown pay period type",
		http.StatusBadRequest,
	)
)
