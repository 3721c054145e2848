// Package lifecycle holds the status tag shared by users, shops, services and
// appointments. Rows are never removed; "delete" moves them to StatusDeleted.
package lifecycle

import (
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type Status string

const (
	StatusEnabled  Status = "enabled"
	StatusDisabled Status = "disabled"
	StatusDeleted  Status = "deleted"

	// StatusCanceled is accepted when read back from storage but no operation
	// produces it: client cancellation clears the client and keeps the status.
	StatusCanceled Status = "canceled"
)

type Action string

const (
	ActionEnable  Action = "enable"
	ActionDisable Action = "disable"
	ActionDelete  Action = "delete"
)

// Visible lists the statuses returned by normal lookups.
func Visible() []Status {
	return []Status{StatusEnabled, StatusDisabled}
}

func IsVisible(s Status) bool {
	return s == StatusEnabled || s == StatusDisabled
}

func Parse(v string) (Status, error) {
	switch s := Status(v); s {
	case StatusEnabled, StatusDisabled, StatusDeleted, StatusCanceled:
		return s, nil
	}
	return "", fmt.Errorf("unknown status %q", v)
}

// Transition is total over every (Status, Action) pair: it either returns the
// next status or a business error.
func Transition(current Status, action Action) (Status, error) {
	switch current {
	case StatusEnabled, StatusDisabled:
		switch action {
		case ActionEnable:
			return StatusEnabled, nil
		case ActionDisable:
			return StatusDisabled, nil
		case ActionDelete:
			return StatusDeleted, nil
		}
	case StatusCanceled:
		if action == ActionDelete {
			return StatusDeleted, nil
		}
		return current, httperr.BadRequest("invalid_state", fmt.Sprintf("cannot %s a canceled record", action))
	case StatusDeleted:
		return current, httperr.NotFound("not_found", "record not found")
	}
	return current, httperr.BadRequest("invalid_transition", fmt.Sprintf("cannot %s from status %q", action, current))
}
