package salary

type CreateSalaryRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	// Status opsional: default paid, atau pending untuk draf.
	Status        string `json:"status" binding:"omitempty,oneof=paid pending"`
	PeriodStart   string `json:"period_start" binding:"required"`
	PeriodEnd     string `json:"period_end" binding:"required"`
	BaseSalary    int64  `json:"base_salary" binding:"required"`
	SalesTotal    int64  `json:"sales_total"`
	BonusPercent  int64  `json:"bonus_percent"`
	WorkedHours   int64  `json:"worked_hours"`
	OvertimeRate  int64  `json:"overtime_rate"`
	UndertimeRate int64  `json:"undertime_rate"`
	AbsenceRate   int64  `json:"absence_rate"`
	AbsentDays    int64  `json:"absent_days"`
}

// GenerateSalaryRequest computes worked hours, absences and sales from
// the attendance and sales modules instead of taking them verbatim.
type GenerateSalaryRequest struct {
	EmployeeID    string `json:"employee_id" binding:"required,uuid"`
	PeriodStart   string `json:"period_start" binding:"required"`
	PeriodEnd     string `json:"period_end" binding:"required"`
	BonusPercent  int64  `json:"bonus_percent"`
	OvertimeRate  int64  `json:"overtime_rate"`
	UndertimeRate int64  `json:"undertime_rate"`
	AbsenceRate   int64  `json:"absence_rate"`
}

type CorrectSalaryRequest struct {
	BaseSalary    int64  `json:"base_salary" binding:"required"`
	SalesTotal    int64  `json:"sales_total"`
	BonusPercent  int64  `json:"bonus_percent"`
	WorkedHours   int64  `json:"worked_hours"`
	OvertimeRate  int64  `json:"overtime_rate"`
	UndertimeRate int64  `json:"undertime_rate"`
	AbsenceRate   int64  `json:"absence_rate"`
	AbsentDays    int64  `json:"absent_days"`
	Reason        string `json:"reason"`
}

type SalaryResponse struct {
	ID           string    `json:"id"`
	Reference    string    `json:"reference"`
	CompanyID    string    `json:"company_id"`
	EmployeeID   string    `json:"employee_id"`
	PeriodStart  string    `json:"period_start"`
	PeriodEnd    string    `json:"period_end"`
	Status       string    `json:"status"`
	CorrectionOf *string   `json:"correction_of,omitempty"`
	Total        int64     `json:"total"`
	Breakdown    Breakdown `json:"breakdown"`
	CreatedAt    string    `json:"created_at"`
}

type AuditEntryResponse struct {
	ID             string `json:"id"`
	SalaryRecordID string `json:"salary_record_id"`
	Action         string `json:"action"`
	OldSnapshot    any    `json:"old_snapshot,omitempty"`
	NewSnapshot    any    `json:"new_snapshot,omitempty"`
	ActorID        string `json:"actor_id"`
	CreatedAt      string `json:"created_at"`
}

// HistoryResponse: chain oldest-first, audit entries oldest-first.
type HistoryResponse struct {
	LineageID string               `json:"lineage_id"`
	Chain     []SalaryResponse     `json:"chain"`
	AuditLog  []AuditEntryResponse `json:"audit_log"`
}
