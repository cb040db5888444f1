package salary

import (
	"context"
	"database/sql"
	"time"

	"go-ems/internal/shared/connection"
	"go-ems/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *SalaryRecord) error
	Update(ctx context.Context, record *SalaryRecord) error
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*SalaryRecord, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]SalaryRecord, error)
	FindAllByCompanyAndEmployee(ctx context.Context, companyID string, employeeID string) ([]SalaryRecord, error)
	HasActiveOverlappingPeriod(ctx context.Context, companyID string, employeeID string, periodStart, periodEnd time.Time, excludeRecordID *string) (bool, error)
	FindSuccessor(ctx context.Context, companyID string, recordID string) (*SalaryRecord, error)
	CreateAuditLog(ctx context.Context, entry *SalaryAuditLog) error
	FindAuditLogsByLineage(ctx context.Context, companyID string, lineageID string) ([]SalaryAuditLog, error)
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

func (r *repository) Create(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) Update(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("period_start DESC, created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindAllByCompanyAndEmployee(ctx context.Context, companyID string, employeeID string) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("period_start DESC, created_at DESC").
		Find(&records).Error
	return records, err
}

// HasActiveOverlappingPeriod hanya melihat record aktif: record yang
// sudah dikoreksi atau dihapus tidak memblokir periode yang sama.
func (r *repository) HasActiveOverlappingPeriod(
	ctx context.Context,
	companyID string,
	employeeID string,
	periodStart, periodEnd time.Time,
	excludeRecordID *string,
) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("deleted = FALSE").
		Where("status NOT IN (?)", []string{StatusCorrected, StatusDeleted}).
		Where("NOT (period_end < ? OR period_start > ?)", periodStart, periodEnd)

	if excludeRecordID != nil && *excludeRecordID != "" {
		db = db.Where("id <> ?", *excludeRecordID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

// FindSuccessor mengembalikan record koreksi yang menunjuk ke recordID,
// atau nil bila record tersebut masih ujung rantai.
func (r *repository) FindSuccessor(ctx context.Context, companyID string, recordID string) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&record, "correction_of = ?", recordID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *repository) CreateAuditLog(ctx context.Context, entry *SalaryAuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindAuditLogsByLineage(ctx context.Context, companyID string, lineageID string) ([]SalaryAuditLog, error) {
	var entries []SalaryAuditLog
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("lineage_id = ?", lineageID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
