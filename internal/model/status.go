package model

import "fmt"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusBlocked    Status = "blocked"
)

var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusFailed:     true,
	StatusBlocked:    true,
}

var terminalStatuses = map[Status]bool{
	StatusCompleted: true,
}

// Task status transitions. The resolver never mutates status; these guard
// the external updates applied through the store between resolver calls.
// blocked is an externally applied hold and releases back to pending;
// failed may return to pending for a retry.
var validTaskTransitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusInProgress: true,
		StatusBlocked:    true,
	},
	StatusInProgress: {
		StatusCompleted: true,
		StatusFailed:    true,
		StatusBlocked:   true,
	},
	StatusFailed: {
		StatusPending: true,
		StatusBlocked: true,
	},
	StatusBlocked: {
		StatusPending: true,
	},
}

func ValidStatus(s Status) bool {
	return validStatuses[s]
}

func IsTerminal(s Status) bool {
	return terminalStatuses[s]
}

func ValidateTaskTransition(from, to Status) error {
	if IsTerminal(from) {
		return fmt.Errorf("cannot transition from terminal status %q", from)
	}
	allowed, ok := validTaskTransitions[from]
	if !ok {
		return fmt.Errorf("unknown status %q", from)
	}
	if !allowed[to] {
		return fmt.Errorf("invalid task status transition: %q → %q", from, to)
	}
	return nil
}
