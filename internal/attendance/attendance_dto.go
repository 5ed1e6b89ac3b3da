package attendance

type RecordAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Status     string `json:"status" binding:"required"`
}

type ListAttendanceQuery struct {
	EmployeeID string `form:"employee_id"`
	Date       string `form:"date"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
}

// AttendanceEmployee is the joined slice of employee data a ledger row
// carries for display.
type AttendanceEmployee struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	Tasks      []string `json:"tasks"`
}

type AttendanceResponse struct {
	ID        string              `json:"id"`
	Date      string              `json:"date"`
	Status    string              `json:"status"`
	Employee  *AttendanceEmployee `json:"employee,omitempty"`
	CreatedAt string              `json:"created_at,omitempty"`
	UpdatedAt string              `json:"updated_at,omitempty"`
}
