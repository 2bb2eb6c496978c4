package post

import (
	"context"
	"errors"

	posterrors "go-payroll/internal/post/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=post_repo.go -destination=mock/post_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Post, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Post, error) {
	var p Post
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &p, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return posterrors.ErrPostNotFound.WithCause(err)
	}
	return err
}
