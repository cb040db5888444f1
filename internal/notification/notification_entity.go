package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	AudienceEmployee = "employee"
	AudienceAdmin    = "admin"

	TypeSalaryCorrected = "salary_corrected"
	TypeSalaryDeleted   = "salary_deleted"
)

// Notification adalah baris persisten; pengiriman realtime lewat relay
// hanyalah best-effort di atasnya.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_notification_user_read"`
	Audience  string    `gorm:"type:varchar(20);not null"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	// ActionURL/ActionLabel menggerakkan tombol di sisi klien, opsional.
	ActionURL   string `gorm:"type:varchar(255)"`
	ActionLabel string `gorm:"type:varchar(100)"`
	Meta        []byte `gorm:"type:jsonb"`
	Read      bool      `gorm:"not null;default:false;index:idx_notification_user_read"`
	ReadAt    *time.Time
	CreatedAt time.Time
}

func (Notification) TableName() string {
	return "notifications"
}
