package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func sampleApplications() []domain.Application {
	return []domain.Application{
		{ID: 1, FirstName: "Aarav", LastName: "Sharma", CandidateEmail: "aarav@example.com", Skills: "Go, PostgreSQL, Docker", Status: domain.StatusPending, JobID: ptr(int64(1))},
		{ID: 2, FirstName: "Priya", LastName: "Patel", CandidateEmail: "priya@example.com", Skills: "React, TypeScript", Status: domain.StatusUnderReview, JobID: ptr(int64(2))},
		{ID: 3, FirstName: "Rohan", LastName: "Verma", CandidateEmail: "rohan@example.com", Skills: "Python, Machine Learning", Status: domain.StatusShortlisted},
		{ID: 4, FirstName: "Sneha", LastName: "Sharma", CandidateEmail: "sneha@example.com", Skills: "Figma, UI Design", Status: domain.StatusRejected, JobID: ptr(int64(1))},
		{ID: 5, FirstName: "Vikram", LastName: "Iyer", CandidateEmail: "vikram@example.com", Skills: "go, Kubernetes", Status: domain.StatusAccepted, JobID: ptr(int64(3))},
	}
}

func TestFilterCriteriaApply(t *testing.T) {
	apps := sampleApplications()

	t.Run("Empty criteria returns everything in order", func(t *testing.T) {
		out := domain.FilterCriteria{}.Apply(apps)
		assert.Len(t, out, 5)
		assert.Equal(t, int64(1), out[0].ID)
		assert.Equal(t, int64(5), out[4].ID)
	})

	t.Run("Name matches full name case-insensitively", func(t *testing.T) {
		out := domain.FilterCriteria{Name: "sharma"}.Apply(apps)
		assert.Len(t, out, 2)

		out = domain.FilterCriteria{Name: "aarav sh"}.Apply(apps)
		assert.Len(t, out, 1)
		assert.Equal(t, int64(1), out[0].ID)
	})

	t.Run("Skills match is a case-insensitive substring", func(t *testing.T) {
		out := domain.FilterCriteria{Skills: "GO"}.Apply(apps)
		assert.Len(t, out, 2)
	})

	t.Run("Status is an exact match", func(t *testing.T) {
		out := domain.FilterCriteria{Status: domain.StatusPending}.Apply(apps)
		assert.Len(t, out, 1)
		assert.Equal(t, int64(1), out[0].ID)

		out = domain.FilterCriteria{Status: "pending"}.Apply(apps)
		assert.Empty(t, out)
	})

	t.Run("JobID matches exactly and excludes general applications", func(t *testing.T) {
		out := domain.FilterCriteria{JobID: ptr(int64(1))}.Apply(apps)
		assert.Len(t, out, 2)
		for _, a := range out {
			assert.Equal(t, int64(1), *a.JobID)
		}
	})

	t.Run("Predicates combine with AND", func(t *testing.T) {
		out := domain.FilterCriteria{Name: "sharma", Status: domain.StatusRejected}.Apply(apps)
		assert.Len(t, out, 1)
		assert.Equal(t, int64(4), out[0].ID)
	})

	t.Run("No match yields empty non-nil slice", func(t *testing.T) {
		out := domain.FilterCriteria{Name: "nobody"}.Apply(apps)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}

func TestSummarize(t *testing.T) {
	apps := sampleApplications()

	t.Run("Counts cover the whole input", func(t *testing.T) {
		s := domain.Summarize(apps)
		assert.Equal(t, 5, s.Total)
		assert.Equal(t, 1, s.Pending)
		assert.Equal(t, 1, s.UnderReview)
		assert.Equal(t, 1, s.Shortlisted)
		assert.Equal(t, 1, s.Accepted)
		assert.Equal(t, 1, s.Rejected)
		assert.Equal(t, s.Total, s.Pending+s.UnderReview+s.Shortlisted+s.Accepted+s.Rejected)
	})

	t.Run("Summary reflects the filtered set, not the full table", func(t *testing.T) {
		filtered := domain.FilterCriteria{Name: "sharma"}.Apply(apps)
		s := domain.Summarize(filtered)
		assert.Equal(t, 2, s.Total)
		assert.Equal(t, 1, s.Pending)
		assert.Equal(t, 1, s.Rejected)
		assert.Zero(t, s.Accepted)
	})

	t.Run("Empty set is all zeros", func(t *testing.T) {
		assert.Equal(t, domain.StatusSummary{}, domain.Summarize(nil))
	})
}

func TestResolveJobTitle(t *testing.T) {
	jobs := []domain.Job{
		{ID: 1, Title: "Senior Software Engineer"},
		{ID: 2, Title: "Product Designer"},
	}

	t.Run("Posting lookup wins over stored title", func(t *testing.T) {
		app := &domain.Application{JobID: ptr(int64(2)), JobTitle: ptr("# Old Stored Title")}
		assert.Equal(t, "Product Designer", domain.ResolveJobTitle(app, jobs))
	})

	t.Run("Stored title is used when the posting is gone, markup stripped", func(t *testing.T) {
		app := &domain.Application{JobID: ptr(int64(99)), JobTitle: ptr("# Data Analyst")}
		assert.Equal(t, "Data Analyst", domain.ResolveJobTitle(app, jobs))
	})

	t.Run("Missing everything falls back to the general placeholder", func(t *testing.T) {
		assert.Equal(t, domain.GeneralApplicationTitle, domain.ResolveJobTitle(&domain.Application{}, jobs))
		assert.Equal(t, domain.GeneralApplicationTitle, domain.ResolveJobTitle(&domain.Application{JobTitle: ptr("# ")}, jobs))
	})
}
