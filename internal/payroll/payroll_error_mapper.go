package payroll

import (
	"errors"
	"strings"

	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueEmployeePeriod = "uq_payroll_employee_period"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}

	// An upsert only trips the unique index when two writers insert the same
	// (employee, period) at once.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == uniqueEmployeePeriod {
			return payrollerrors.ErrPayrollConflict.WithCause(err)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueEmployeePeriod) {
		return payrollerrors.ErrPayrollConflict.WithCause(err)
	}

	return err
}
