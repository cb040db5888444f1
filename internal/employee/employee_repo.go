package employee

import (
	"context"

	"go-ems/internal/tenant"

	"gorm.io/gorm"
)

// Repository adalah permukaan read-only: employee CRUD dikelola sistem
// lain, modul gaji dan notifikasi hanya butuh resolusi identitas.
//
//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error)
	BelongsToCompany(ctx context.Context, companyID string, employeeID string) (bool, error)
	ResolveUserID(ctx context.Context, companyID string, employeeID string) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&emp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) BelongsToCompany(ctx context.Context, companyID string, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ResolveUserID(ctx context.Context, companyID string, employeeID string) (string, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Select("id", "user_id").
		First(&emp, "id = ?", employeeID).Error
	if err != nil {
		return "", err
	}
	return emp.UserID.String(), nil
}
