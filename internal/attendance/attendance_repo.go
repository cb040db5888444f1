package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-ems/internal/shared/connection"
	"go-ems/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, row *Attendance) error
	Update(ctx context.Context, row *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]Attendance, error)
	FindAllByCompanyAndEmployee(ctx context.Context, companyID, employeeID string) ([]Attendance, error)
	SummaryForPeriod(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) (PeriodSummary, error)
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

func (r *repository) Create(ctx context.Context, row *Attendance) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) Update(ctx context.Context, row *Attendance) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
	var row Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByCompanyAndEmployee(ctx context.Context, companyID, employeeID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) SummaryForPeriod(
	ctx context.Context,
	companyID, employeeID string,
	periodStart, periodEnd time.Time,
) (PeriodSummary, error) {
	var summary PeriodSummary

	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Select("COALESCE(SUM(EXTRACT(EPOCH FROM (clock_out - clock_in)) / 60), 0)::bigint AS worked_minutes").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", periodStart, periodEnd).
		Where("clock_in IS NOT NULL AND clock_out IS NOT NULL").
		Scan(&summary.WorkedMinutes).Error
	if err != nil {
		return PeriodSummary{}, err
	}

	err = r.db.WithContext(ctx).
		Model(&Attendance{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", periodStart, periodEnd).
		Where("status = ?", statusAbsent).
		Count(&summary.AbsentDays).Error
	if err != nil {
		return PeriodSummary{}, err
	}

	return summary, nil
}
