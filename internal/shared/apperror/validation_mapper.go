package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// employee_id -> Employee Id
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError turns the first binding failure into an INVALID_INPUT
// error naming the field and, where the tag carries one, the accepted range.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return RequiredField(field)
	case "oneof":
		return fieldRule(field, "must be one of: "+strings.ReplaceAll(e.Param(), " ", ", "))
	case "min":
		return fieldRule(field, "must be at least "+e.Param())
	case "max":
		return fieldRule(field, "must be at most "+e.Param())
	case "uuid", "uuid4":
		return fieldRule(field, "must be a valid UUID")
	default:
		return InvalidField(field)
	}
}

func fieldRule(field, rule string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s %s", field, rule), http.StatusBadRequest)
}
