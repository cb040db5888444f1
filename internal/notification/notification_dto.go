package notification

// NotifyRequest is the internal ingestion payload, accepted from other
// services over the internal-key route.
type NotifyRequest struct {
	EmployeeID  string         `json:"employee_id"`
	UserID      string         `json:"user_id"`
	Audience    string         `json:"audience" binding:"required"`
	Type        string         `json:"type" binding:"required"`
	Title       string         `json:"title" binding:"required"`
	Message     string         `json:"message" binding:"required"`
	ActionURL   string         `json:"action_url"`
	ActionLabel string         `json:"action_label"`
	Meta        map[string]any `json:"meta"`
}

type NotificationResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Audience    string         `json:"audience"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	ActionURL   string         `json:"action_url,omitempty"`
	ActionLabel string         `json:"action_label,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
	Read        bool           `json:"read"`
	ReadAt      *string        `json:"read_at,omitempty"`
	CreatedAt   string         `json:"created_at"`
}

type UnreadCountResponse struct {
	UserID string `json:"user_id"`
	Count  int64  `json:"count"`
}
