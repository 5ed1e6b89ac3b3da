package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusSelected  = "Selected"
	StatusOngoing   = "Ongoing"
	StatusScheduled = "Scheduled"
	StatusRejected  = "Rejected"
)

const (
	EmploymentFullTime   = "Full-time"
	EmploymentPartTime   = "Part-time"
	EmploymentContract   = "Contract"
	EmploymentInternship = "Internship"
)

// ValidStatus is a single-lookup membership check for employee statuses.
// Employee transitions are unordered, so there is no transition table here.
var ValidStatus = map[string]bool{
	StatusSelected:  true,
	StatusOngoing:   true,
	StatusScheduled: true,
	StatusRejected:  true,
}

var ValidEmploymentType = map[string]bool{
	EmploymentFullTime:   true,
	EmploymentPartTime:   true,
	EmploymentContract:   true,
	EmploymentInternship: true,
}

// Employee email dan nomor pegawai unik per owner, bukan global.
// Lihat DESIGN.md untuk keputusan batas tenancy ini.
type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string     `gorm:"column:employee_number;type:varchar(50);not null;uniqueIndex:uq_employees_owner_number"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Email          string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_employees_owner_email"`
	Phone          string     `gorm:"type:varchar(30);not null"`
	Position       string     `gorm:"type:varchar(100);not null"`
	Department     string     `gorm:"type:varchar(100);not null"`
	Salary         float64    `gorm:"not null"`
	JoiningDate    time.Time  `gorm:"type:date;not null"`
	Manager        string     `gorm:"type:varchar(255);default:''"`
	WorkLocation   string     `gorm:"type:varchar(255);not null"`
	EmploymentType string     `gorm:"type:varchar(30);not null"`
	Status         string     `gorm:"type:varchar(20);not null;default:'Selected'"`
	ResumeHandle   *string    `gorm:"column:resume_handle;type:varchar(255)"`
	CandidateID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy      uuid.UUID  `gorm:"column:created_by;type:uuid;not null;index;uniqueIndex:uq_employees_owner_email;uniqueIndex:uq_employees_owner_number"`

	Tasks []EmployeeTask `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeTask adalah daftar tugas ber-urutan milik seorang employee.
type EmployeeTask struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	DueDate     time.Time `gorm:"type:date;not null"`
	SortOrder   int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EmployeeTask) TableName() string {
	return "employee_tasks"
}
