package holiday

import (
	"context"
	"time"

	"go-payroll/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	FindActiveDates(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindActiveDates returns the dates of active holidays within [start, end].
func (r *repository) FindActiveDates(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Select("date").
		Scopes(scope.DateRange("date", start, end)).
		Where("is_active = ?", true).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, len(rows))
	for i, h := range rows {
		dates[i] = h.Date
	}
	return dates, nil
}
