package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusApproved = "APPROVED"
	StatusPending  = "PENDING"
	StatusRejected = "REJECTED"
)

type Employee struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID      `gorm:"column:company_id;type:uuid;not null;index"`
	UserID     uuid.UUID      `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_employee_user"`
	FullName   string         `gorm:"column:full_name;type:varchar(120);not null"`
	Email      string         `gorm:"column:email;type:varchar(120);not null;uniqueIndex:uq_employee_email"`
	Position   *string        `gorm:"column:position;type:varchar(80)"`
	Status     string         `gorm:"column:status;type:varchar(20);not null;default:PENDING"`
	BaseSalary int64          `gorm:"column:base_salary;type:bigint;not null;default:0"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}
