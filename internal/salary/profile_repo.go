package salary

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository memelihara read model salary_profiles: satu baris
// per karyawan, diisi oleh consumer dari event salary.corrected.
//
//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *SalaryProfile) error
	Delete(ctx context.Context, companyID, employeeID string) error
	FindByEmployee(ctx context.Context, companyID, employeeID string) (*SalaryProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *SalaryProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"latest_record_id", "period_start", "period_end", "total", "updated_at",
			}),
		}).
		Create(profile).Error
}

func (r *profileRepository) Delete(ctx context.Context, companyID, employeeID string) error {
	return r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Delete(&SalaryProfile{}, "employee_id = ?", employeeID).Error
}

func (r *profileRepository) FindByEmployee(ctx context.Context, companyID, employeeID string) (*SalaryProfile, error) {
	var profile SalaryProfile
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&profile, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
