package employeeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidPayrollType = apperror.New(
		apperror.CodeInvalidInput,
		"payroll type must be Monthly or Weekly",
		http.StatusBadRequest,
	)
)
