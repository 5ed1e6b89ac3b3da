package candidate

// CreateCandidateRequest dibaca dari multipart form; resume opsional.
type CreateCandidateRequest struct {
	Name        string `form:"name" binding:"required,min=2"`
	Email       string `form:"email" binding:"required,email"`
	Phone       string `form:"phone" binding:"required"`
	Position    string `form:"position" binding:"required"`
	Experience  string `form:"experience"`
	AppliedDate string `form:"applied_date"`
	Notes       string `form:"notes"`
}

// EmployeePayload carries the fields a promotion needs on top of what the
// candidate row already holds.
type EmployeePayload struct {
	EmployeeNumber string  `json:"employee_number"`
	Department     string  `json:"department" binding:"required"`
	Salary         float64 `json:"salary" binding:"gte=0"`
	JoiningDate    string  `json:"joining_date" binding:"required"`
	Manager        string  `json:"manager"`
	WorkLocation   string  `json:"work_location" binding:"required"`
	EmploymentType string  `json:"employment_type" binding:"required"`
}

type UpdateCandidateStatusRequest struct {
	Status       string           `json:"status" binding:"required"`
	EmployeeData *EmployeePayload `json:"employee_data"`
}

type ListCandidatesQuery struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	Position string `form:"position"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
}

type CandidateResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Position    string `json:"position"`
	Status      string `json:"status"`
	Experience  string `json:"experience,omitempty"`
	AppliedDate string `json:"applied_date"`
	Notes       string `json:"notes,omitempty"`
	HasResume   bool   `json:"has_resume"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// PromotionResponse dikembalikan saat status berubah menjadi Selected dan
// seorang employee baru dibuat.
type PromotionResponse struct {
	Candidate  CandidateResponse `json:"candidate"`
	EmployeeID string            `json:"employee_id,omitempty"`
}
