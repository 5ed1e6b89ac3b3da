package app

import (
	"go-hrm/internal/attendance"
	"go-hrm/internal/auth"
	"go-hrm/internal/candidate"
	"go-hrm/internal/employee"
	"go-hrm/internal/leave"

	"gorm.io/gorm"
)

func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&auth.User{},
		&candidate.Candidate{},
		&employee.Employee{},
		&employee.EmployeeTask{},
		&attendance.Attendance{},
		&leave.Leave{},
	); err != nil {
		return err
	}

	// Tabel di bawah diakses lewat raw SQL, bukan model gorm.
	if err := db.Exec(`
CREATE TABLE IF NOT EXISTS owner_counters (
	owner_id UUID NOT NULL,
	counter_type VARCHAR(50) NOT NULL,
	last_value BIGINT NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (owner_id, counter_type)
)`).Error; err != nil {
		return err
	}

	return db.Exec(`
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id VARCHAR(100),
	aggregate_type VARCHAR(50) NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type VARCHAR(100) NOT NULL,
	topic VARCHAR(255) NOT NULL,
	payload JSONB NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message VARCHAR(500),
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`).Error
}
