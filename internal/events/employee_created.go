package events

import "time"

const EmployeeCreatedTopic = "hrm.employee.lifecycle.v1"

// EmployeeCreatedEvent is emitted when a candidate promotion creates an
// employee record. Consumers seed onboarding data from it.
type EmployeeCreatedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	EmployeeID  string    `json:"employee_id"`
	CandidateID string    `json:"candidate_id,omitempty"`
	OwnerID     string    `json:"owner_id"`
	JoiningDate string    `json:"joining_date,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
