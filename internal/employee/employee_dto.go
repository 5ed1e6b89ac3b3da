package employee

type TaskRequest struct {
	Description string `json:"description" binding:"required"`
	DueDate     string `json:"due_date" binding:"required"`
}

// CreateEmployeeRequest dibaca dari multipart form (resume opsional ikut
// di-upload); tasks dikirim sebagai string JSON.
type CreateEmployeeRequest struct {
	EmployeeNumber string  `form:"employee_number"`
	Name           string  `form:"name" binding:"required,min=2"`
	Email          string  `form:"email" binding:"required,email"`
	Phone          string  `form:"phone" binding:"required"`
	Position       string  `form:"position" binding:"required"`
	Department     string  `form:"department" binding:"required"`
	Salary         float64 `form:"salary" binding:"gte=0"`
	JoiningDate    string  `form:"joining_date" binding:"required"`
	Manager        string  `form:"manager"`
	WorkLocation   string  `form:"work_location" binding:"required"`
	EmploymentType string  `form:"employment_type" binding:"required"`
	CandidateID    string  `form:"candidate_id"`
	TasksJSON      string  `form:"tasks"`
}

type UpdateEmployeeRequest struct {
	JoiningDate    string        `json:"joining_date" binding:"required"`
	EmploymentType string        `json:"employment_type" binding:"required"`
	Position       string        `json:"position" binding:"required"`
	Tasks          []TaskRequest `json:"tasks" binding:"required"`
}

type UpdateEmployeeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListEmployeesQuery struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	Department string `form:"department"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
}

type TaskResponse struct {
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

type EmployeeResponse struct {
	ID             string         `json:"id"`
	EmployeeNumber string         `json:"employee_number"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Position       string         `json:"position"`
	Department     string         `json:"department"`
	Salary         float64        `json:"salary"`
	JoiningDate    string         `json:"joining_date"`
	Manager        string         `json:"manager,omitempty"`
	WorkLocation   string         `json:"work_location"`
	EmploymentType string         `json:"employment_type"`
	Status         string         `json:"status"`
	HasResume      bool           `json:"has_resume"`
	CandidateID    string         `json:"candidate_id,omitempty"`
	Tasks          []TaskResponse `json:"tasks"`
	CreatedAt      string         `json:"created_at,omitempty"`
}
