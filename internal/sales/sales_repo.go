package sales

import (
	"context"
	"database/sql"
	"time"

	"go-ems/internal/shared/connection"
	"go-ems/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=sales_repo.go -destination=mock/sales_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, sale *Sale) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Sale, error)
	FindAllByCompanyAndEmployee(ctx context.Context, companyID, employeeID string) ([]Sale, error)
	SumForPeriod(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GormWithTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, sale *Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Sale, error) {
	var rows []Sale
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("occurred_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByCompanyAndEmployee(ctx context.Context, companyID, employeeID string) ([]Sale, error) {
	var rows []Sale
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("occurred_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) SumForPeriod(
	ctx context.Context,
	companyID, employeeID string,
	periodStart, periodEnd time.Time,
) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Sale{}).
		Select("COALESCE(SUM(amount), 0)").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("occurred_at BETWEEN ? AND ?", periodStart, periodEnd).
		Scan(&total).Error
	return total, err
}
