package domain

// ValidStatus reports whether s is one of the enumerated application statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusShortlisted, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether s is a pipeline endpoint. The admin UI renders no
// outbound transitions from these, though CanTransition still permits
// re-opening a closed application.
func IsTerminal(s string) bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransition reports whether an application may move from current to
// requested. Any enumerated status may move to any other enumerated status;
// re-opening terminal applications is deliberately allowed so reviewers can
// correct mistakes. A no-op transition is rejected so the updated timestamp
// and derived notifications only change when the status actually does.
func CanTransition(current, requested string) bool {
	if !ValidStatus(current) || !ValidStatus(requested) {
		return false
	}
	return current != requested
}

// NextStatuses returns the statuses reachable from current, in pipeline order.
func NextStatuses(current string) []string {
	all := []string{StatusPending, StatusUnderReview, StatusShortlisted, StatusAccepted, StatusRejected}
	var out []string
	for _, s := range all {
		if CanTransition(current, s) {
			out = append(out, s)
		}
	}
	return out
}
