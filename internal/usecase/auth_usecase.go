package usecase

import (
	"context"
	"strings"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/domain"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/apperror"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/auth"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/logger"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/validation"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenService
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenService) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

// Register validates the registration form server-side with the same rules
// the form applies locally, then creates a candidate account.
func (u *authUsecase) Register(ctx context.Context, form *domain.RegistrationForm) (*domain.User, error) {
	if errs := validation.ValidateRegistration(form); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	email := strings.ToLower(strings.TrimSpace(form.Email))
	if existing, err := u.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperror.Conflict("An account with this email already exists")
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(form.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleCandidate,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("User registered", "id", user.ID, "email", user.Email)
	return user, nil
}

// Login checks credentials and issues a session token with the minimal
// profile the frontend keeps
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || user == nil {
		// Same message for unknown email and wrong password
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	token, err := u.tokens.Generate(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{Token: token, User: user}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}
