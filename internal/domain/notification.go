package domain

import (
	"sort"
	"time"
)

// Notification types
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification is a derived entry shown on the candidate dashboard. There is
// no persisted notification store: entries are re-derived from the
// application record on every read.
type Notification struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// DeriveNotifications produces the notification list for one application:
// a fixed submission entry at creation time plus at most one entry for the
// current status at the last-updated time, most recent first. Deriving twice
// from the same record yields the same list.
func DeriveNotifications(app *Application) []Notification {
	notifs := []Notification{{
		ID:        1,
		Type:      NotificationInfo,
		Title:     "Application Submitted",
		Message:   "Your application has been successfully submitted and is under review.",
		Timestamp: app.CreatedAt,
		Read:      true,
	}}

	switch app.Status {
	case StatusUnderReview:
		notifs = append(notifs, Notification{
			ID:        2,
			Type:      NotificationInfo,
			Title:     "Application Under Review",
			Message:   "Your application is currently being reviewed by our hiring team.",
			Timestamp: app.UpdatedAt,
		})
	case StatusShortlisted:
		notifs = append(notifs, Notification{
			ID:        3,
			Type:      NotificationSuccess,
			Title:     "Congratulations! You are Shortlisted",
			Message:   "You have been shortlisted for the next round of interviews. Our HR team will contact you soon.",
			Timestamp: app.UpdatedAt,
		})
	case StatusAccepted:
		notifs = append(notifs, Notification{
			ID:        4,
			Type:      NotificationSuccess,
			Title:     "Congratulations! You are Accepted",
			Message:   "You have been selected for the position! Welcome to Veridia!",
			Timestamp: app.UpdatedAt,
		})
	case StatusRejected:
		notifs = append(notifs, Notification{
			ID:        5,
			Type:      NotificationError,
			Title:     "Application Status Update",
			Message:   "Your application was not selected at this time. We encourage you to apply for future positions.",
			Timestamp: app.UpdatedAt,
		})
	}

	sort.SliceStable(notifs, func(i, j int) bool {
		return notifs[i].Timestamp.After(notifs[j].Timestamp)
	})
	return notifs
}
