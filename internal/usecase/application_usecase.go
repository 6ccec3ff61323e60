package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/domain"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/apperror"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/logger"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/security"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/storage"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	documents       storage.DocumentStore
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	documents storage.DocumentStore,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		documents:       documents,
	}
}

// Submit validates and stores a new candidate application. All validation
// runs before any storage write; a failed upload leaves nothing behind that a
// later attempt would trip over.
func (uc *applicationUsecase) Submit(ctx context.Context, sub *domain.ApplicationSubmission) (*domain.Application, error) {
	// 1. Field-scoped validation, resume is mandatory
	if errs := validateSubmission(sub); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	// 2. Validate job reference if one was given
	if sub.JobID != nil {
		if _, err := uc.jobRepo.GetByID(ctx, *sub.JobID); err != nil {
			return nil, apperror.NotFound("Job not found")
		}
	}

	// 3. Reject duplicate submissions for the same job
	exists, err := uc.applicationRepo.CheckExists(ctx, sub.Email, sub.JobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this position")
	}

	// 4. Store documents under server-generated names
	resumeCheck := security.ValidateDocument(sub.ResumeFilename, sub.ResumeData)
	resumeKey, err := uc.documents.Put(ctx, storedName(sub.ResumeFilename), sub.ResumeData, resumeCheck.ContentType)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var coverLetterKey *string
	if len(sub.CoverLetterData) > 0 {
		clCheck := security.ValidateDocument(sub.CoverLetterFilename, sub.CoverLetterData)
		key, err := uc.documents.Put(ctx, storedName(sub.CoverLetterFilename), sub.CoverLetterData, clCheck.ContentType)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		coverLetterKey = &key
	}

	// 5. Create the record
	skills := domain.NewSkillSet(sub.Skills...)
	app := &domain.Application{
		FirstName:       sub.FirstName,
		LastName:        sub.LastName,
		CandidateEmail:  sub.Email,
		Phone:           sub.Phone,
		Location:        optional(sub.Location),
		JobID:           sub.JobID,
		JobTitle:        optional(sub.JobTitle),
		ResumeURL:       resumeKey,
		CoverLetterURL:  coverLetterKey,
		Skills:          skills.Join(),
		Education:       optional(sub.Education),
		Experience:      optional(sub.Experience),
		PortfolioLink:   optional(sub.PortfolioLink),
		LinkedinProfile: optional(sub.LinkedinProfile),
		GithubProfile:   optional(sub.GithubProfile),
		WorkMode:        optional(sub.WorkMode),
		Availability:    optional(sub.Availability),
		ExpectedSalary:  optional(sub.ExpectedSalary),
		Status:          domain.StatusPending,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("Application submitted", "id", app.ID, "email", app.CandidateEmail)
	return app, nil
}

// GetMyApplication returns the candidate's own application
func (uc *applicationUsecase) GetMyApplication(ctx context.Context, email string) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.NotFound("No application found")
	}
	return app, nil
}

// GetMyNotifications derives the candidate's notification list from the
// current state of their application. Nothing is persisted.
func (uc *applicationUsecase) GetMyNotifications(ctx context.Context, email string) ([]domain.Notification, error) {
	app, err := uc.applicationRepo.GetByEmail(ctx, email)
	if err != nil {
		// No application yet is an empty feed, not an error
		return []domain.Notification{}, nil
	}
	return domain.DeriveNotifications(app), nil
}

func (uc *applicationUsecase) GetApplication(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// ListApplications returns the filtered application list plus the per-status
// summary computed over that same filtered set
func (uc *applicationUsecase) ListApplications(ctx context.Context, criteria domain.FilterCriteria) (*domain.ApplicationListResponse, error) {
	if criteria.Status != "" && !domain.ValidStatus(criteria.Status) {
		return nil, apperror.BadRequest("Invalid status filter: " + criteria.Status)
	}

	apps, err := uc.applicationRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	jobs, err := uc.jobRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	filtered := criteria.Apply(apps)
	for i := range filtered {
		title := domain.ResolveJobTitle(&filtered[i], jobs)
		filtered[i].JobTitle = &title
	}

	return &domain.ApplicationListResponse{
		Applications: filtered,
		Stats:        domain.Summarize(filtered),
	}, nil
}

// UpdateStatus moves an application to a new review status. The local record
// is only re-read after the repository confirms, so a rejected update never
// shows a status the storage layer refused.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	if !domain.ValidStatus(status) {
		return nil, apperror.BadRequest("Invalid status. Must be one of: PENDING, UNDER_REVIEW, SHORTLISTED, ACCEPTED, REJECTED")
	}

	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}

	if !domain.CanTransition(app.Status, status) {
		return nil, apperror.BadRequest(fmt.Sprintf("Cannot move application from %s to %s", app.Status, status))
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	updated, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("Application status updated", "id", id, "from", app.Status, "to", status)
	return updated, nil
}

// DownloadResume fetches a stored document by filename for admin download
func (uc *applicationUsecase) DownloadResume(ctx context.Context, filename string) ([]byte, string, error) {
	if err := security.ValidateFileExtension(filename); err != nil {
		return nil, "", apperror.BadRequest(err.Error())
	}
	data, contentType, err := uc.documents.Get(ctx, filename)
	if err != nil {
		return nil, "", apperror.NotFound("File not found")
	}
	return data, contentType, nil
}

// validateSubmission returns field-scoped error messages for a submission
func validateSubmission(sub *domain.ApplicationSubmission) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(sub.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(sub.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if strings.TrimSpace(sub.Email) == "" {
		errs["email"] = "Email is required"
	}
	if strings.TrimSpace(sub.Phone) == "" {
		errs["phone"] = "Phone is required"
	}
	if len(sub.Skills) == 0 {
		errs["skills"] = "At least one skill is required"
	}

	if len(sub.ResumeData) == 0 {
		errs["resume"] = "Resume is required"
	} else if check := security.ValidateDocument(sub.ResumeFilename, sub.ResumeData); !check.Valid {
		errs["resume"] = check.Error
	}

	if len(sub.CoverLetterData) > 0 {
		if check := security.ValidateDocument(sub.CoverLetterFilename, sub.CoverLetterData); !check.Valid {
			errs["coverLetter"] = check.Error
		}
	}

	return errs
}

// storedName generates a unique stored filename keeping the original extension
func storedName(original string) string {
	return uuid.New().String() + strings.ToLower(filepath.Ext(original))
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
