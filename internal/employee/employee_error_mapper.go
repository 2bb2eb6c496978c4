package employee

import (
	"errors"

	employeeerrors "go-payroll/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// invalid_text_representation: Postgres rejected an id that is not a UUID.
const pgInvalidText = "22P02"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case isPgCode(err, pgInvalidText):
		return employeeerrors.ErrInvalidEmployeeID
	}

	return err
}

func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
