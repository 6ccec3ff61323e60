package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	StatusPending     = "PENDING"
	StatusUnderReview = "UNDER_REVIEW"
	StatusShortlisted = "SHORTLISTED"
	StatusAccepted    = "ACCEPTED"
	StatusRejected    = "REJECTED"
)

// Application represents one candidate submission and its review status
type Application struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	CandidateEmail string  `json:"candidateEmail"`
	Phone          string  `json:"phone"`
	Location       *string `json:"location,omitempty"`

	// Job reference: JobID points at a posting, JobTitle is the free-text
	// fallback kept from the submission form
	JobID    *int64  `json:"jobId,omitempty"`
	JobTitle *string `json:"jobTitle,omitempty"`

	ResumeURL      string  `json:"resumeUrl"` // Required, set at creation
	CoverLetterURL *string `json:"coverLetterUrl,omitempty"`

	Skills     string  `json:"skills"` // Comma-joined, insertion order preserved
	Education  *string `json:"education,omitempty"`
	Experience *string `json:"experience,omitempty"`

	PortfolioLink   *string `json:"portfolioLink,omitempty"`
	LinkedinProfile *string `json:"linkedinProfile,omitempty"`
	GithubProfile   *string `json:"githubProfile,omitempty"`

	WorkMode       *string `json:"workMode,omitempty"`
	Availability   *string `json:"availability,omitempty"`
	ExpectedSalary *string `json:"expectedSalary,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Joined posting data for admin list responses
	JobDepartment *string `json:"jobDepartment,omitempty"`
	JobLocation   *string `json:"jobLocation,omitempty"`
	JobType       *string `json:"jobType,omitempty"`
}

// CandidateName returns the display name used in the admin list
func (a *Application) CandidateName() string {
	if a.FirstName == "" && a.LastName == "" {
		return a.CandidateEmail
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// ApplicationListResponse is the admin list payload: the filtered records plus
// the per-status summary computed over that same filtered set
type ApplicationListResponse struct {
	Applications []Application `json:"applications"`
	Stats        StatusSummary `json:"stats"`
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetAll(ctx context.Context) ([]Application, error)
	GetByEmail(ctx context.Context, email string) (*Application, error)
	CheckExists(ctx context.Context, email string, jobID *int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// ApplicationSubmission carries the parsed multipart form of a new application
type ApplicationSubmission struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Location        string
	JobID           *int64
	JobTitle        string
	Skills          []string
	Education       string
	Experience      string
	PortfolioLink   string
	LinkedinProfile string
	GithubProfile   string
	WorkMode        string
	Availability    string
	ExpectedSalary  string

	ResumeFilename      string
	ResumeData          []byte
	CoverLetterFilename string
	CoverLetterData     []byte
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	// Candidate operations
	Submit(ctx context.Context, sub *ApplicationSubmission) (*Application, error)
	GetMyApplication(ctx context.Context, email string) (*Application, error)
	GetMyNotifications(ctx context.Context, email string) ([]Notification, error)

	// Admin operations
	GetApplication(ctx context.Context, id int64) (*Application, error)
	ListApplications(ctx context.Context, criteria FilterCriteria) (*ApplicationListResponse, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Application, error)
	DownloadResume(ctx context.Context, filename string) ([]byte, string, error)
}
