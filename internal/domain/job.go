package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job is a posting record. Read-only reference data from the hiring core's
// point of view: applications resolve their display titles against it.
type Job struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Experience   string    `json:"experience"`
	Salary       string    `json:"salary"`
	Category     string    `json:"category"`
	Level        *string   `json:"level,omitempty"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Posted       bool      `json:"posted"`
	Applicants   int       `json:"applicants"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// JobFilters summarizes the posting set for the jobs page filter bar
type JobFilters struct {
	Categories map[string]int    `json:"categories"` // category -> count, "all" included
	Locations  map[string]string `json:"locations"`  // option key -> display label
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetAll(ctx context.Context) ([]Job, error)
	GetFeatured(ctx context.Context) ([]Job, error)
	GetByCategory(ctx context.Context, category string) ([]Job, error)
	Search(ctx context.Context, search, category, location string) ([]Job, error)
	Count(ctx context.Context) (int64, error)
}

type JobUsecase interface {
	ListJobs(ctx context.Context) ([]Job, error)
	ListFeaturedJobs(ctx context.Context) ([]Job, error)
	SearchJobs(ctx context.Context, search, category, location string) ([]Job, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	GetJobFilters(ctx context.Context) (*JobFilters, error)
	SeedDefaultJobs(ctx context.Context) error
}
