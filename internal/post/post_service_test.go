package post_test

import (
	"context"
	"testing"

	"go-payroll/internal/payperiod"
	"go-payroll/internal/post"
	posterrors "go-payroll/internal/post/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepository struct {
	findByIDFn func(ctx context.Context, id string) (*post.Post, error)
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*post.Post, error) {
	return f.findByIDFn(ctx, id)
}

func TestPostService_GetCompensation(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("defaults optional components", func(t *testing.T) {
		svc := post.NewService(&fakeRepository{
			findByIDFn: func(ctx context.Context, pid string) (*post.Post, error) {
				assert.Equal(t, id.String(), pid)
				return &post.Post{
					ID:          id,
					Title:       "Fitter",
					PayrollType: post.PayrollWeeklyWithSunday,
					Basic:       f(3000),
					Gross:       f(3500),
					Total:       f(3500),
					HRA:         f(500),
				}, nil
			},
		})

		resp, err := svc.GetCompensation(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, string(payperiod.Weekly), resp.PeriodType)
		assert.True(t, resp.PaidWeeklyOff)
		assert.Equal(t, 500.0, resp.HRA)
		assert.Equal(t, 0.0, resp.DA)
	})

	t.Run("incomplete configuration", func(t *testing.T) {
		svc := post.NewService(&fakeRepository{
			findByIDFn: func(ctx context.Context, pid string) (*post.Post, error) {
				return &post.Post{ID: id, PayrollType: post.PayrollMonthlyWithoutSunday, Basic: f(9000)}, nil
			},
		})

		_, err := svc.GetCompensation(ctx, id.String())

		assert.ErrorIs(t, err, posterrors.ErrIncompleteCompensation)
	})

	t.Run("unknown payroll type", func(t *testing.T) {
		svc := post.NewService(&fakeRepository{
			findByIDFn: func(ctx context.Context, pid string) (*post.Post, error) {
				return &post.Post{ID: id, PayrollType: "Daily", Basic: f(1), Gross: f(1), Total: f(1)}, nil
			},
		})

		_, err := svc.GetCompensation(ctx, id.String())

		assert.ErrorIs(t, err, posterrors.ErrUnknownPayrollType)
	})

	t.Run("not found", func(t *testing.T) {
		svc := post.NewService(&fakeRepository{
			findByIDFn: func(ctx context.Context, pid string) (*post.Post, error) {
				return nil, posterrors.ErrPostNotFound
			},
		})

		_, err := svc.GetCompensation(ctx, id.String())

		assert.ErrorIs(t, err, posterrors.ErrPostNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := post.NewService(&fakeRepository{})

		_, err := svc.GetCompensation(ctx, "x")

		assert.ErrorIs(t, err, posterrors.ErrInvalidPostID)
	})
}
