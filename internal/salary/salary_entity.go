package salary

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPaid      = "paid"
	StatusPending   = "pending"
	StatusCorrected = "corrected"
	StatusDeleted   = "deleted"

	AuditActionCorrect = "correct"
	AuditActionDelete  = "delete"
)

// SalaryRecord adalah satu node dalam rantai koreksi. Record tidak pernah
// di-update nilainya setelah dibuat; koreksi membuat record baru yang
// menunjuk ke pendahulunya lewat CorrectionOf.
//
// Deleted is an explicit flag, not a gorm soft delete: deleted rows must
// stay visible to lineage walks and audit reads.
type SalaryRecord struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_salary_employee_period"`
	PeriodStart  time.Time  `gorm:"type:date;not null;index:idx_salary_employee_period"`
	PeriodEnd    time.Time  `gorm:"type:date;not null"`
	Reference    string     `gorm:"type:varchar(30);not null"`
	Status       string     `gorm:"type:varchar(20);not null;default:'paid'"`
	CorrectionOf *uuid.UUID `gorm:"type:uuid;index"`
	Total        int64      `gorm:"not null"`
	Breakdown    []byte     `gorm:"type:jsonb;not null"`
	Deleted      bool       `gorm:"not null;default:false"`
	CreatedBy    uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SalaryRecord) TableName() string {
	return "salary_records"
}

// Active reports whether this record is the payable one for its period:
// neither superseded by a correction nor deleted.
func (r SalaryRecord) Active() bool {
	return !r.Deleted && r.Status != StatusCorrected && r.Status != StatusDeleted
}

// SalaryAuditLog is append-only. Rows are never updated or removed;
// LineageID points at the root of the correction chain so the whole
// history of one original record can be read with a single query.
type SalaryAuditLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SalaryRecordID uuid.UUID `gorm:"type:uuid;not null;index"`
	LineageID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Action         string    `gorm:"type:varchar(20);not null"`
	OldSnapshot    []byte    `gorm:"type:jsonb"`
	NewSnapshot    []byte    `gorm:"type:jsonb"`
	ActorID        uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
}

func (SalaryAuditLog) TableName() string {
	return "salary_audit_logs"
}

// SalaryProfile adalah read model milik consumer: satu baris per
// karyawan yang selalu menunjuk ke record aktif terakhirnya.
type SalaryProfile struct {
	EmployeeID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	LatestRecordID uuid.UUID `gorm:"type:uuid;not null"`
	PeriodStart    time.Time `gorm:"type:date;not null"`
	PeriodEnd      time.Time `gorm:"type:date;not null"`
	Total          int64     `gorm:"not null"`
	UpdatedAt      time.Time
}

func (SalaryProfile) TableName() string {
	return "salary_profiles"
}
