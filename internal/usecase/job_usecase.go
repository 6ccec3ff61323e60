package usecase

import (
	"context"
	"strings"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/domain"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/apperror"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/logger"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

// NewJobUsecase creates a new job usecase
func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (uc *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return uc.jobRepo.GetAll(ctx)
}

func (uc *jobUsecase) ListFeaturedJobs(ctx context.Context) ([]domain.Job, error) {
	return uc.jobRepo.GetFeatured(ctx)
}

func (uc *jobUsecase) SearchJobs(ctx context.Context, search, category, location string) ([]domain.Job, error) {
	return uc.jobRepo.Search(ctx, search, category, location)
}

func (uc *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

// GetJobFilters summarizes the posting set for the jobs page filter bar:
// category counts plus location options keyed by a URL-friendly slug
func (uc *jobUsecase) GetJobFilters(ctx context.Context) (*domain.JobFilters, error) {
	jobs, err := uc.jobRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	filters := &domain.JobFilters{
		Categories: map[string]int{"all": len(jobs)},
		Locations:  map[string]string{"all": "All Locations", "remote": "Remote"},
	}
	for i := range jobs {
		filters.Categories[jobs[i].Category]++
		key := strings.ReplaceAll(strings.ToLower(jobs[i].Location), " ", "-")
		filters.Locations[key] = jobs[i].Location
	}
	return filters, nil
}

// SeedDefaultJobs populates the posting table on first boot so the portal has
// reference data before any admin creates postings
func (uc *jobUsecase) SeedDefaultJobs(ctx context.Context) error {
	count, err := uc.jobRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Log.Info("Seeding default job postings")
	for i := range defaultJobs {
		job := defaultJobs[i]
		if err := uc.jobRepo.Create(ctx, &job); err != nil {
			return err
		}
	}
	return nil
}

func level(s string) *string { return &s }

var defaultJobs = []domain.Job{
	{
		Title: "Senior Frontend Developer", Department: "Engineering", Location: "Bangalore / Remote",
		Type: "Full-time", Experience: "5+ years", Salary: "8 LPA - 12 LPA", Category: "engineering",
		Level:       level("Senior"),
		Description: "Build amazing user interfaces and help shape the future of our platform. Work with cutting-edge technologies and collaborate with world-class engineers.",
		Requirements: "React, TypeScript, Node.js, 5+ years experience",
		Posted:       true, Applicants: 45, Featured: true,
	},
	{
		Title: "Product Manager", Department: "Product", Location: "Hyderabad / Hybrid",
		Type: "Full-time", Experience: "3-5 years", Salary: "6 LPA - 9 LPA", Category: "product",
		Level:       level("Mid-level"),
		Description: "Drive product strategy and work with cross-functional teams to deliver exceptional products that users love.",
		Requirements: "Product strategy, Data analysis, Leadership, 3+ years experience",
		Posted:       true, Applicants: 32, Featured: true,
	},
	{
		Title: "Backend Engineer", Department: "Engineering", Location: "Pune",
		Type: "Full-time", Experience: "3-5 years", Salary: "7 LPA - 10 LPA", Category: "engineering",
		Level:       level("Mid-level"),
		Description: "Design and implement scalable backend systems and APIs that power our platform.",
		Requirements: "Java, Spring Boot, Microservices, 3+ years experience",
		Posted:       true, Applicants: 28,
	},
	{
		Title: "UX Designer", Department: "Design", Location: "Bangalore",
		Type: "Full-time", Experience: "2-4 years", Salary: "5 LPA - 7 LPA", Category: "design",
		Level:       level("Mid-level"),
		Description: "Create beautiful and intuitive user experiences that delight our users.",
		Requirements: "Figma, User research, Prototyping, 2+ years experience",
		Posted:       true, Applicants: 19,
	},
	{
		Title: "Data Scientist", Department: "Data", Location: "Remote / Pune",
		Type: "Full-time", Experience: "4-6 years", Salary: "6 LPA - 8 LPA", Category: "data",
		Level:       level("Senior"),
		Description: "Apply machine learning and statistical analysis to solve complex business problems.",
		Requirements: "Python, Machine Learning, Statistics, 4+ years experience",
		Posted:       true, Applicants: 52, Featured: true,
	},
	{
		Title: "Marketing Manager", Department: "Marketing", Location: "Hyderabad",
		Type: "Full-time", Experience: "3-5 years", Salary: "4 LPA - 6 LPA", Category: "marketing",
		Level:       level("Mid-level"),
		Description: "Own campaign planning and execution across channels to grow the Veridia brand.",
		Requirements: "Campaign management, SEO/SEM, Analytics, 3+ years experience",
		Posted:       true, Applicants: 23,
	},
	{
		Title: "DevOps Engineer", Department: "Engineering", Location: "Bangalore",
		Type: "Full-time", Experience: "4-6 years", Salary: "6 LPA - 8 LPA", Category: "engineering",
		Level:       level("Senior"),
		Description: "Build and operate the CI/CD pipelines and cloud infrastructure behind our services.",
		Requirements: "Kubernetes, Terraform, AWS, 4+ years experience",
		Posted:       true, Applicants: 31,
	},
	{
		Title: "Content Strategist", Department: "Marketing", Location: "Remote",
		Type: "Full-time", Experience: "2-4 years", Salary: "3 LPA - 4 LPA", Category: "marketing",
		Level:       level("Mid-level"),
		Description: "Shape the voice of Veridia across the site, blog and hiring materials.",
		Requirements: "Content planning, Editing, SEO, 2+ years experience",
		Posted:       true, Applicants: 14,
	},
	{
		Title: "Full Stack Developer", Department: "Engineering", Location: "Bangalore / Hybrid",
		Type: "Full-time", Experience: "3-5 years", Salary: "6 LPA - 9 LPA", Category: "engineering",
		Level:       level("Mid-level"),
		Description: "Ship features end to end across our React frontend and Go services.",
		Requirements: "React, Go or Node.js, SQL, 3+ years experience",
		Posted:       true, Applicants: 38,
	},
}
