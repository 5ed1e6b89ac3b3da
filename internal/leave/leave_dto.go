package leave

// CreateLeaveRequest dibaca dari multipart form; dokumen pendukung opsional.
type CreateLeaveRequest struct {
	EmployeeID string `form:"employee_id" binding:"required"`
	StartDate  string `form:"start_date" binding:"required"`
	EndDate    string `form:"end_date" binding:"required"`
	LeaveType  string `form:"leave_type" binding:"required"`
	Reason     string `form:"reason" binding:"required"`
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListLeavesQuery struct {
	Search string `form:"search"`
	Status string `form:"status"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
}

type LeaveResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name,omitempty"`
	EmployeePosition string `json:"employee_position,omitempty"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	LeaveType        string `json:"leave_type"`
	Reason           string `json:"reason"`
	Status           string `json:"status"`
	HasDocument      bool   `json:"has_document"`
	CreatedAt        string `json:"created_at,omitempty"`
}
