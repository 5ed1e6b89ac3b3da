package candidate

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Candidate struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_candidates_owner_email"`
	Phone        string    `gorm:"type:varchar(50);not null"`
	Position     string    `gorm:"type:varchar(255);not null"`
	Status       string    `gorm:"type:varchar(50);not null;default:'Pending'"`
	Experience   string    `gorm:"type:varchar(100)"`
	ResumeHandle *string   `gorm:"type:varchar(512)"`
	AppliedDate  time.Time `gorm:"type:date;not null"`
	Notes        string    `gorm:"type:text"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_candidates_owner_email"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Candidate) TableName() string {
	return "candidates"
}
