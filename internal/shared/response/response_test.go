package response_test

import (
	"testing"

	"go-payroll/internal/shared/response"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(21, 2, 10)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)

	empty := response.NewPaginationMeta(0, 1, 10)
	assert.Equal(t, 0, empty.TotalPages)

	noLimit := response.NewPaginationMeta(5, 1, 0)
	assert.Equal(t, 0, noLimit.TotalPages)
}
