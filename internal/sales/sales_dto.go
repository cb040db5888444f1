package sales

type CreateSaleRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Amount     int64   `json:"amount" binding:"required"`
	OccurredAt string  `json:"occurred_at" binding:"required"`
	Notes      *string `json:"notes"`
}

type TotalQueryRequest struct {
	EmployeeID  string `form:"employee_id" binding:"required"`
	PeriodStart string `form:"period_start" binding:"required"`
	PeriodEnd   string `form:"period_end" binding:"required"`
}

type SaleResponse struct {
	ID         string  `json:"id"`
	CompanyID  string  `json:"company_id"`
	EmployeeID string  `json:"employee_id"`
	Amount     int64   `json:"amount"`
	OccurredAt string  `json:"occurred_at"`
	Notes      *string `json:"notes,omitempty"`
}

type TotalResponse struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Total       int64  `json:"total"`
}
