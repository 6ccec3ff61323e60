package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/domain"
)

func TestSkillSetAdd(t *testing.T) {
	s := domain.NewSkillSet()

	assert.True(t, s.Add("Go"))
	assert.True(t, s.Add("React"))
	assert.False(t, s.Add("Go"), "duplicate is suppressed")
	assert.True(t, s.Add("go"), "matching is case-sensitive")
	assert.False(t, s.Add("  "), "blank input is dropped")

	assert.Equal(t, []string{"Go", "React", "go"}, s.List())
	assert.Equal(t, 3, s.Len())
}

func TestSkillSetRemove(t *testing.T) {
	s := domain.NewSkillSet("Go", "React", "Docker")

	assert.True(t, s.Remove("React"))
	assert.False(t, s.Remove("React"), "already gone")
	assert.Equal(t, []string{"Go", "Docker"}, s.List(), "order of the rest survives")
}

func TestSkillSetToggle(t *testing.T) {
	s := domain.NewSkillSet("Go")

	s.Toggle("React")
	assert.True(t, s.Contains("React"))

	// Toggling twice restores the original membership
	s.Toggle("React")
	assert.False(t, s.Contains("React"))
	assert.Equal(t, []string{"Go"}, s.List())
}

func TestSkillSetJoinAndSplit(t *testing.T) {
	s := domain.NewSkillSet("Go", "PostgreSQL", "Docker")
	joined := s.Join()
	assert.Equal(t, "Go, PostgreSQL, Docker", joined)

	parsed := domain.SplitSkills(joined)
	assert.Equal(t, s.List(), parsed.List())

	// Construction from a messy list collapses blanks and duplicates
	messy := domain.NewSkillSet("Go", "", " Go ", "React")
	assert.Equal(t, []string{"Go", "React"}, messy.List())
}
