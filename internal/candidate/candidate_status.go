package candidate

const (
	StatusPending   = "Pending"
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusScheduled = "Scheduled"
	StatusOngoing   = "Ongoing"
	StatusSelected  = "Selected"
	StatusRejected  = "Rejected"
)

var ValidStatus = map[string]bool{
	StatusPending:   true,
	StatusActive:    true,
	StatusInactive:  true,
	StatusScheduled: true,
	StatusOngoing:   true,
	StatusSelected:  true,
	StatusRejected:  true,
}

// transitionTargets holds the statuses a candidate may be moved INTO through
// the status endpoint. Pending/Active/Inactive are assigned at intake, never
// as a transition target.
var transitionTargets = map[string]bool{
	StatusScheduled: true,
	StatusOngoing:   true,
	StatusSelected:  true,
	StatusRejected:  true,
}

// CanTransition reports whether the status endpoint may move a candidate
// from one status to another. Targets are reachable from any current status,
// so a single lookup is enough.
func CanTransition(from, to string) bool {
	return transitionTargets[to]
}
