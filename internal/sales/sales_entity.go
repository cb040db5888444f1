package sales

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale adalah fakta penjualan per karyawan; nilai disimpan dalam satuan
// terkecil (sen) seperti kolom uang lainnya.
type Sale struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID      `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	Amount     int64          `gorm:"column:amount;type:bigint;not null"`
	OccurredAt time.Time      `gorm:"column:occurred_at;type:date;not null;index"`
	Notes      *string        `gorm:"column:notes;type:text"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Sale) TableName() string {
	return "sales"
}
