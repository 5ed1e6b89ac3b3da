package leave

import (
	"time"

	"go-hrm/internal/employee"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

var ValidStatus = map[string]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
}

var ValidLeaveType = map[string]bool{
	"Sick Leave":      true,
	"Casual Leave":    true,
	"Annual Leave":    true,
	"Maternity Leave": true,
	"Paternity Leave": true,
	"Emergency Leave": true,
}

// statusTransitions: a pending request is decided once, decisions are final.
var statusTransitions = map[string]map[string]bool{
	StatusPending: {
		StatusApproved: true,
		StatusRejected: true,
	},
	StatusApproved: {},
	StatusRejected: {},
}

func CanTransition(from, to string) bool {
	return statusTransitions[from][to]
}

type Leave struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID          `gorm:"type:uuid;not null;index"`
	Employee       *employee.Employee `gorm:"foreignKey:EmployeeID"`
	StartDate      time.Time          `gorm:"type:date;not null"`
	EndDate        time.Time          `gorm:"type:date;not null"`
	LeaveType      string             `gorm:"type:varchar(50);not null"`
	Reason         string             `gorm:"type:text;not null"`
	Status         string             `gorm:"type:varchar(20);not null;default:'Pending'"`
	DocumentHandle *string            `gorm:"type:varchar(512)"`
	CreatedBy      uuid.UUID          `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Leave) TableName() string {
	return "leaves"
}
