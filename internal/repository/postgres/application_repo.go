package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/domain"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `
	a.id, a.first_name, a.last_name, a.candidate_email, a.phone, a.location,
	a.job_id, a.job_title, a.resume_url, a.cover_letter_url,
	a.skills, a.education, a.experience,
	a.portfolio_link, a.linkedin_profile, a.github_profile,
	a.work_mode, a.availability, a.expected_salary,
	a.status, a.created_at, a.updated_at,
	j.department as job_department, j.location as job_location, j.type as job_type`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	err := row.Scan(
		&app.ID, &app.FirstName, &app.LastName, &app.CandidateEmail, &app.Phone, &app.Location,
		&app.JobID, &app.JobTitle, &app.ResumeURL, &app.CoverLetterURL,
		&app.Skills, &app.Education, &app.Experience,
		&app.PortfolioLink, &app.LinkedinProfile, &app.GithubProfile,
		&app.WorkMode, &app.Availability, &app.ExpectedSalary,
		&app.Status, &app.CreatedAt, &app.UpdatedAt,
		&app.JobDepartment, &app.JobLocation, &app.JobType,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Create inserts a new application
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (
			first_name, last_name, candidate_email, phone, location,
			job_id, job_title, resume_url, cover_letter_url,
			skills, education, experience,
			portfolio_link, linkedin_profile, github_profile,
			work_mode, availability, expected_salary,
			status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.StatusPending
	}

	return r.db.QueryRow(ctx, query,
		app.FirstName, app.LastName, app.CandidateEmail, app.Phone, app.Location,
		app.JobID, app.JobTitle, app.ResumeURL, app.CoverLetterURL,
		app.Skills, app.Education, app.Experience,
		app.PortfolioLink, app.LinkedinProfile, app.GithubProfile,
		app.WorkMode, app.Availability, app.ExpectedSalary,
		app.Status, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
}

// GetByID retrieves an application by ID with joined posting data
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return app, err
}

// GetAll retrieves all applications, newest first, with joined posting data
func (r *applicationRepo) GetAll(ctx context.Context) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *app)
	}
	return applications, rows.Err()
}

// GetByEmail retrieves a candidate's most recent application
func (r *applicationRepo) GetByEmail(ctx context.Context, email string) (*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.candidate_email = $1
		ORDER BY a.created_at DESC
		LIMIT 1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return app, err
}

// CheckExists checks if an application already exists for the email/job combination
func (r *applicationRepo) CheckExists(ctx context.Context, email string, jobID *int64) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM applications
		WHERE candidate_email = $1 AND job_id IS NOT DISTINCT FROM $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, email, jobID).Scan(&exists)
	return exists, err
}

// UpdateStatus updates the status of an application and sets updated_at
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
