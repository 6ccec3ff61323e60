package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/domain"
)

type jobRepo struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `
	id, title, department, location, type, experience, salary, category, level,
	description, requirements, posted, applicants, featured, created_at, updated_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(
		&job.ID, &job.Title, &job.Department, &job.Location, &job.Type,
		&job.Experience, &job.Salary, &job.Category, &job.Level,
		&job.Description, &job.Requirements, &job.Posted, &job.Applicants,
		&job.Featured, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) queryJobs(ctx context.Context, query string, args ...interface{}) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// Create inserts a new job posting
func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (
			title, department, location, type, experience, salary, category, level,
			description, requirements, posted, applicants, featured, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		job.Title, job.Department, job.Location, job.Type, job.Experience,
		job.Salary, job.Category, job.Level, job.Description, job.Requirements,
		job.Posted, job.Applicants, job.Featured, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

// GetByID retrieves a job posting by ID
func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return job, err
}

// GetAll retrieves all job postings
func (r *jobRepo) GetAll(ctx context.Context) ([]domain.Job, error) {
	return r.queryJobs(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id`)
}

// GetFeatured retrieves featured job postings
func (r *jobRepo) GetFeatured(ctx context.Context) ([]domain.Job, error) {
	return r.queryJobs(ctx, `SELECT `+jobColumns+` FROM jobs WHERE featured = true ORDER BY id`)
}

// GetByCategory retrieves job postings in a category
func (r *jobRepo) GetByCategory(ctx context.Context, category string) ([]domain.Job, error) {
	return r.queryJobs(ctx, `SELECT `+jobColumns+` FROM jobs WHERE category = $1 ORDER BY id`, category)
}

// Search retrieves job postings matching free-text search plus optional
// category and location filters
func (r *jobRepo) Search(ctx context.Context, search, category, location string) ([]domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%' OR requirements ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR $2 = 'all' OR category = $2)
		  AND ($3 = '' OR $3 = 'all' OR location ILIKE '%' || $3 || '%')
		ORDER BY id`
	return r.queryJobs(ctx, query, search, category, location)
}

// Count returns the number of job postings
func (r *jobRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count)
	return count, err
}
