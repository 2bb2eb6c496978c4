package rbac

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetUserRoles(ctx context.Context) ([]UserRoleRow, error)
	GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type UserRoleRow struct {
	UserID   string
	RoleName string
}

type RolePermissionRow struct {
	RoleName string
	Resource string
	Action   string
}

func (r *repository) GetUserRoles(ctx context.Context) ([]UserRoleRow, error) {
	var result []UserRoleRow

	err := r.db.WithContext(ctx).
		Table("user_roles").
		Select("user_roles.user_id, roles.name AS role_name").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Scan(&result).Error

	return result, err
}

func (r *repository) GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error) {
	var result []RolePermissionRow

	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("roles.name AS role_name, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Scan(&result).Error

	return result, err
}
