package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/domain"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := auth.NewTokenService("unit-test-secret", "veridia-test", time.Hour)
	user := &domain.User{ID: 42, Email: "aarav@example.com", Role: domain.RoleAdmin}

	token, err := tokens.Generate(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokens.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "aarav@example.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenRejection(t *testing.T) {
	tokens := auth.NewTokenService("unit-test-secret", "veridia-test", time.Hour)
	other := auth.NewTokenService("different-secret", "veridia-test", time.Hour)
	user := &domain.User{ID: 1, Email: "a@example.com", Role: domain.RoleCandidate}

	t.Run("Garbage token", func(t *testing.T) {
		_, err := tokens.Validate("not.a.token")
		assert.Error(t, err)
	})

	t.Run("Wrong signing key", func(t *testing.T) {
		token, err := other.Generate(user)
		assert.NoError(t, err)
		_, err = tokens.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := auth.NewTokenService("unit-test-secret", "veridia-test", -time.Minute)
		token, err := expired.Generate(user)
		assert.NoError(t, err)
		_, err = tokens.Validate(token)
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("Str0ngPass")
	assert.NoError(t, err)
	assert.NotEqual(t, "Str0ngPass", hash)

	assert.True(t, auth.CheckPassword(hash, "Str0ngPass"))
	assert.False(t, auth.CheckPassword(hash, "WrongPass1"))
}
