package domain

import "strings"

// SkillSet is an ordered skill list with duplicate suppression. Matching is
// case-sensitive exact, mirroring the submission form behavior.
type SkillSet struct {
	skills []string
}

// NewSkillSet builds a set from initial skills, dropping blanks and duplicates.
func NewSkillSet(initial ...string) *SkillSet {
	s := &SkillSet{}
	for _, skill := range initial {
		s.Add(skill)
	}
	return s
}

// Add appends a trimmed skill unless it is empty or already present.
// Returns true if the list changed.
func (s *SkillSet) Add(skill string) bool {
	skill = strings.TrimSpace(skill)
	if skill == "" || s.Contains(skill) {
		return false
	}
	s.skills = append(s.skills, skill)
	return true
}

// Remove deletes a single skill, keeping the order of the rest.
// Returns true if the list changed.
func (s *SkillSet) Remove(skill string) bool {
	for i, existing := range s.skills {
		if existing == skill {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle adds the skill if absent and removes it if present, the multi-select
// behavior of the form. Toggling twice is a no-op.
func (s *SkillSet) Toggle(skill string) {
	if !s.Remove(strings.TrimSpace(skill)) {
		s.Add(skill)
	}
}

// Contains reports whether the exact skill is present.
func (s *SkillSet) Contains(skill string) bool {
	for _, existing := range s.skills {
		if existing == skill {
			return true
		}
	}
	return false
}

// List returns the skills in insertion order.
func (s *SkillSet) List() []string {
	out := make([]string, len(s.skills))
	copy(out, s.skills)
	return out
}

// Len returns the number of skills.
func (s *SkillSet) Len() int {
	return len(s.skills)
}

// Join renders the set as the comma-joined string stored on an Application.
func (s *SkillSet) Join() string {
	return strings.Join(s.skills, ", ")
}

// SplitSkills parses a stored comma-joined skills string back into a SkillSet.
func SplitSkills(raw string) *SkillSet {
	return NewSkillSet(strings.Split(raw, ",")...)
}
