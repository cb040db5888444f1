package attendance

type ClockInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Source    string   `json:"source"`
	Notes     *string  `json:"notes"`
}

type ClockOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     *string  `json:"notes"`
}

type RecordAbsenceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Notes      *string `json:"notes"`
}

type SummaryQueryRequest struct {
	EmployeeID  string `form:"employee_id" binding:"required"`
	PeriodStart string `form:"period_start" binding:"required"`
	PeriodEnd   string `form:"period_end" binding:"required"`
}

type AttendanceResponse struct {
	ID             string   `json:"id"`
	CompanyID      string   `json:"company_id"`
	EmployeeID     string   `json:"employee_id"`
	AttendanceDate string   `json:"attendance_date"`
	ClockIn        *string  `json:"clock_in,omitempty"`
	ClockOut       *string  `json:"clock_out,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Status         string   `json:"status"`
	Source         string   `json:"source"`
	Notes          *string  `json:"notes,omitempty"`
}

type SummaryResponse struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	WorkedHours int64  `json:"worked_hours"`
	AbsentDays  int64  `json:"absent_days"`
}
