package domain

import "strings"

// FilterCriteria is the transient search state of the admin review screen.
// Zero values mean "no filter" for their field.
type FilterCriteria struct {
	Name   string // case-insensitive substring against full, first or last name
	Skills string // case-insensitive substring against the raw skills string
	Status string // exact match when set
	JobID  *int64 // exact match when set
}

// StatusSummary holds per-status counts over a filtered application set
type StatusSummary struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	UnderReview int `json:"underReview"`
	Shortlisted int `json:"shortlisted"`
	Accepted    int `json:"accepted"`
	Rejected    int `json:"rejected"`
}

// Matches reports whether app satisfies every set predicate of c.
func (c FilterCriteria) Matches(app *Application) bool {
	if c.Name != "" {
		needle := strings.ToLower(c.Name)
		matched := strings.Contains(strings.ToLower(app.CandidateName()), needle) ||
			strings.Contains(strings.ToLower(app.FirstName), needle) ||
			strings.Contains(strings.ToLower(app.LastName), needle)
		if !matched {
			return false
		}
	}
	if c.Skills != "" {
		if !strings.Contains(strings.ToLower(app.Skills), strings.ToLower(c.Skills)) {
			return false
		}
	}
	if c.Status != "" && app.Status != c.Status {
		return false
	}
	if c.JobID != nil {
		if app.JobID == nil || *app.JobID != *c.JobID {
			return false
		}
	}
	return true
}

// Apply returns the applications matching c, preserving input order. The
// result is never nil so an empty match serializes as [] rather than null.
func (c FilterCriteria) Apply(apps []Application) []Application {
	filtered := make([]Application, 0, len(apps))
	for i := range apps {
		if c.Matches(&apps[i]) {
			filtered = append(filtered, apps[i])
		}
	}
	return filtered
}

// Summarize counts applications per status. Callers pass the filtered set so
// the summary always agrees with what the list shows.
func Summarize(apps []Application) StatusSummary {
	s := StatusSummary{Total: len(apps)}
	for i := range apps {
		switch apps[i].Status {
		case StatusPending:
			s.Pending++
		case StatusUnderReview:
			s.UnderReview++
		case StatusShortlisted:
			s.Shortlisted++
		case StatusAccepted:
			s.Accepted++
		case StatusRejected:
			s.Rejected++
		}
	}
	return s
}

// GeneralApplicationTitle is shown when an application carries no resolvable
// job reference.
const GeneralApplicationTitle = "General Application"

// ResolveJobTitle returns the display title for an application: the posting
// title when the job reference resolves, else the application's own stored
// title with leading '#' markup stripped, else the general placeholder.
func ResolveJobTitle(app *Application, jobs []Job) string {
	if app.JobID != nil {
		for i := range jobs {
			if jobs[i].ID == *app.JobID {
				return jobs[i].Title
			}
		}
	}
	if app.JobTitle != nil && *app.JobTitle != "" {
		title := strings.TrimSpace(strings.TrimLeft(*app.JobTitle, "# "))
		if title != "" {
			return title
		}
	}
	return GeneralApplicationTitle
}
