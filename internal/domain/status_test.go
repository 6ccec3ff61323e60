package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/domain"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		domain.StatusPending,
		domain.StatusUnderReview,
		domain.StatusShortlisted,
		domain.StatusAccepted,
		domain.StatusRejected,
	} {
		assert.True(t, domain.ValidStatus(s), s)
	}

	assert.False(t, domain.ValidStatus(""))
	assert.False(t, domain.ValidStatus("pending"), "statuses are case-sensitive")
	assert.False(t, domain.ValidStatus("ARCHIVED"))
}

func TestCanTransition(t *testing.T) {
	all := []string{
		domain.StatusPending,
		domain.StatusUnderReview,
		domain.StatusShortlisted,
		domain.StatusAccepted,
		domain.StatusRejected,
	}

	t.Run("Any distinct pair of valid statuses is allowed", func(t *testing.T) {
		for _, from := range all {
			for _, to := range all {
				if from == to {
					continue
				}
				assert.True(t, domain.CanTransition(from, to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("No-op transitions are rejected", func(t *testing.T) {
		for _, s := range all {
			assert.False(t, domain.CanTransition(s, s), s)
		}
	})

	t.Run("Unknown statuses are rejected on either side", func(t *testing.T) {
		assert.False(t, domain.CanTransition("ARCHIVED", domain.StatusPending))
		assert.False(t, domain.CanTransition(domain.StatusPending, "ARCHIVED"))
		assert.False(t, domain.CanTransition("", domain.StatusAccepted))
	})

	t.Run("Terminal statuses can be re-opened", func(t *testing.T) {
		assert.True(t, domain.IsTerminal(domain.StatusAccepted))
		assert.True(t, domain.IsTerminal(domain.StatusRejected))
		assert.False(t, domain.IsTerminal(domain.StatusPending))

		assert.True(t, domain.CanTransition(domain.StatusRejected, domain.StatusUnderReview))
		assert.True(t, domain.CanTransition(domain.StatusAccepted, domain.StatusShortlisted))
	})
}

func TestNextStatuses(t *testing.T) {
	next := domain.NextStatuses(domain.StatusPending)
	assert.Equal(t, []string{
		domain.StatusUnderReview,
		domain.StatusShortlisted,
		domain.StatusAccepted,
		domain.StatusRejected,
	}, next)

	assert.Nil(t, domain.NextStatuses("ARCHIVED"))
}
