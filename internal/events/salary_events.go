package events

import "time"

const (
	SalaryCorrectedTopic = "salary.corrected"
	SalaryDeletedTopic   = "salary.deleted"

	SalaryCorrectedEventType = "salary.corrected"
	SalaryDeletedEventType   = "salary.deleted"
)

// SalaryCorrectedEvent diterbitkan setelah koreksi commit; consumer
// memakainya untuk memutakhirkan read model salary_profiles.
type SalaryCorrectedEvent struct {
	EventID     string    `json:"event_id"`
	CompanyID   string    `json:"company_id"`
	EmployeeID  string    `json:"employee_id"`
	OldRecordID string    `json:"old_record_id"`
	NewRecordID string    `json:"new_record_id"`
	PeriodStart string    `json:"period_start"`
	PeriodEnd   string    `json:"period_end"`
	OldTotal    int64     `json:"old_total"`
	NewTotal    int64     `json:"new_total"`
	ActorID     string    `json:"actor_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type SalaryDeletedEvent struct {
	EventID    string    `json:"event_id"`
	CompanyID  string    `json:"company_id"`
	EmployeeID string    `json:"employee_id"`
	RecordID   string    `json:"record_id"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
