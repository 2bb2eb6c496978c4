package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPayrollID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll id",
		http.StatusBadRequest,
	)
	ErrMonthRequired = apperror.New(
		apperror.CodeInvalidInput,
		"month (YYYY-MM) is required for this employee",
		http.StatusBadRequest,
	)
	ErrWeekRequired = apperror.New(
		apperror.CodeInvalidInput,
		"week (WWYY) is required for this employee",
		http.StatusBadRequest,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of draft, processed, paid",
		http.StatusBadRequest,
	)
	ErrInvalidSort = apperror.New(
		apperror.CodeInvalidInput,
		"invalid sort field",
		http.StatusBadRequest,
	)
	ErrInvalidMoneyValue = apperror.New(
		apperror.CodeInvalidInput,
		"salary values must be finite numbers",
		http.StatusBadRequest,
	)
	ErrNonFiniteAmount = apperror.New(
		apperror.CodeConfiguration,
		"salary computation produced a non-finite amount",
		http.StatusUnprocessableEntity,
	)
	ErrPayrollConflict = apperror.New(
		apperror.CodeConflict,
		"payroll for this employee and period is being written concurrently",
		http.StatusConflict,
	)
)
