package attendanceerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrAlreadyPunchedIn = apperror.New(
		apperror.CodeConflict,
		"Already punched in for today",
		http.StatusConflict,
	)
	ErrAlreadyPunchedOut = apperror.New(
		apperror.CodeConflict,
		"Already punched out for today",
		http.StatusConflict,
	)
	ErrPunchInNotFound = apperror.New(
		apperror.CodeNotFound,
		"No punch-in found for today",
		http.StatusNotFound,
	)
	ErrOnLeave = apperror.New(
		apperror.CodeInvalidState,
		"Today is recorded as leave",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrPeriodRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Exactly one of month or week is required",
		http.StatusBadRequest,
	)
)
