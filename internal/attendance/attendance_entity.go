package attendance

import (
	"time"

	"go-hrm/internal/employee"

	"github.com/google/uuid"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

var ValidStatus = map[string]bool{
	StatusPresent: true,
	StatusAbsent:  true,
}

// Attendance is a per-day ledger row. The (employee_id, attendance_date)
// unique index makes Record an upsert.
type Attendance struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	Employee       *employee.Employee `gorm:"foreignKey:EmployeeID"`
	AttendanceDate time.Time          `gorm:"type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	Status         string             `gorm:"type:varchar(20);not null"`
	CreatedBy      uuid.UUID          `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Attendance) TableName() string {
	return "attendances"
}
