package usecase_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/domain"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/usecase"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/apperror"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/auth"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetAll(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByEmail(ctx context.Context, email string) (*domain.Application, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, email string, jobID *int64) (bool, error) {
	args := m.Called(ctx, email, jobID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetAll(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetFeatured(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetByCategory(ctx context.Context, category string) ([]domain.Job, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, search, category, location string) ([]domain.Job, error) {
	args := m.Called(ctx, search, category, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// fakeDocumentStore keeps uploads in memory
type fakeDocumentStore struct {
	files map[string][]byte
	types map[string]string
	fail  bool
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{files: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeDocumentStore) Put(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	if f.fail {
		return "", errors.New("storage unavailable")
	}
	f.files[filename] = data
	f.types[filename] = contentType
	return filename, nil
}

func (f *fakeDocumentStore) Get(ctx context.Context, filename string) ([]byte, string, error) {
	data, ok := f.files[filename]
	if !ok {
		return nil, "", errors.New("not found")
	}
	return data, f.types[filename], nil
}

func pdfBytes() []byte {
	return []byte("%PDF-1.7 test document body")
}

func validSubmission() *domain.ApplicationSubmission {
	return &domain.ApplicationSubmission{
		FirstName:      "Aarav",
		LastName:       "Sharma",
		Email:          "aarav@example.com",
		Phone:          "+919876543210",
		Skills:         []string{"Go", "PostgreSQL"},
		ResumeFilename: "resume.pdf",
		ResumeData:     pdfBytes(),
	}
}

func TestSubmitApplication(t *testing.T) {
	t.Run("Valid submission is stored as PENDING with joined skills", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		docs := newFakeDocumentStore()
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, docs)

		appRepo.On("CheckExists", mock.Anything, "aarav@example.com", (*int64)(nil)).Return(false, nil)
		appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)

		app, err := uc.Submit(context.Background(), validSubmission())
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, app.Status)
		assert.Equal(t, "Go, PostgreSQL", app.Skills)
		assert.NotEmpty(t, app.ResumeURL)
		assert.Len(t, docs.files, 1)
		appRepo.AssertExpectations(t)
	})

	t.Run("Missing resume fails field validation before any storage write", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		docs := newFakeDocumentStore()
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, docs)

		sub := validSubmission()
		sub.ResumeData = nil

		_, err := uc.Submit(context.Background(), sub)
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Resume is required", appErr.Fields["resume"])
		assert.Empty(t, docs.files)
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate submission for the same job is rejected", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		docs := newFakeDocumentStore()
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, docs)

		jobID := int64(3)
		jobRepo.On("GetByID", mock.Anything, jobID).Return(&domain.Job{ID: jobID, Title: "Backend Engineer"}, nil)
		appRepo.On("CheckExists", mock.Anything, "aarav@example.com", &jobID).Return(true, nil)

		sub := validSubmission()
		sub.JobID = &jobID

		_, err := uc.Submit(context.Background(), sub)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
		assert.Empty(t, docs.files, "nothing uploaded for a rejected submission")
	})

	t.Run("Unknown job reference is rejected", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, newFakeDocumentStore())

		jobID := int64(99)
		jobRepo.On("GetByID", mock.Anything, jobID).Return(nil, domain.ErrNotFound)

		sub := validSubmission()
		sub.JobID = &jobID

		_, err := uc.Submit(context.Background(), sub)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	record := func(status string) *domain.Application {
		return &domain.Application{ID: 7, CandidateEmail: "aarav@example.com", Status: status}
	}

	t.Run("Happy path re-reads after the repository confirms", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), newFakeDocumentStore())

		appRepo.On("GetByID", mock.Anything, int64(7)).Return(record(domain.StatusPending), nil).Once()
		appRepo.On("UpdateStatus", mock.Anything, int64(7), domain.StatusShortlisted).Return(nil)
		appRepo.On("GetByID", mock.Anything, int64(7)).Return(record(domain.StatusShortlisted), nil).Once()

		updated, err := uc.UpdateStatus(context.Background(), 7, domain.StatusShortlisted)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusShortlisted, updated.Status)
		appRepo.AssertExpectations(t)
	})

	t.Run("Repository failure surfaces the old status, never the requested one", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), newFakeDocumentStore())

		current := record(domain.StatusPending)
		appRepo.On("GetByID", mock.Anything, int64(7)).Return(current, nil)
		appRepo.On("UpdateStatus", mock.Anything, int64(7), domain.StatusAccepted).Return(errors.New("connection reset"))

		_, err := uc.UpdateStatus(context.Background(), 7, domain.StatusAccepted)
		assert.Error(t, err)
		assert.Equal(t, domain.StatusPending, current.Status, "in-memory record untouched on failure")
	})

	t.Run("No-op transition is rejected without touching the repository", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), newFakeDocumentStore())

		appRepo.On("GetByID", mock.Anything, int64(7)).Return(record(domain.StatusShortlisted), nil)

		_, err := uc.UpdateStatus(context.Background(), 7, domain.StatusShortlisted)
		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown status never reaches the repository", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), newFakeDocumentStore())

		_, err := uc.UpdateStatus(context.Background(), 7, "ARCHIVED")
		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestListApplications(t *testing.T) {
	t.Run("Stats are computed over the filtered set", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, newFakeDocumentStore())

		appRepo.On("GetAll", mock.Anything).Return([]domain.Application{
			{ID: 1, FirstName: "Aarav", LastName: "Sharma", Status: domain.StatusPending},
			{ID: 2, FirstName: "Priya", LastName: "Patel", Status: domain.StatusAccepted},
			{ID: 3, FirstName: "Divya", LastName: "Sharma", Status: domain.StatusRejected},
		}, nil)
		jobRepo.On("GetAll", mock.Anything).Return([]domain.Job{}, nil)

		result, err := uc.ListApplications(context.Background(), domain.FilterCriteria{Name: "sharma"})
		assert.NoError(t, err)
		assert.Len(t, result.Applications, 2)
		assert.Equal(t, 2, result.Stats.Total)
		assert.Equal(t, 1, result.Stats.Pending)
		assert.Equal(t, 1, result.Stats.Rejected)
		assert.Zero(t, result.Stats.Accepted)
	})

	t.Run("Listed applications carry a resolved job title", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, newFakeDocumentStore())

		jobID := int64(2)
		appRepo.On("GetAll", mock.Anything).Return([]domain.Application{
			{ID: 1, Status: domain.StatusPending, JobID: &jobID},
			{ID: 2, Status: domain.StatusPending},
		}, nil)
		jobRepo.On("GetAll", mock.Anything).Return([]domain.Job{{ID: 2, Title: "Product Designer"}}, nil)

		result, err := uc.ListApplications(context.Background(), domain.FilterCriteria{})
		assert.NoError(t, err)
		assert.Equal(t, "Product Designer", *result.Applications[0].JobTitle)
		assert.Equal(t, domain.GeneralApplicationTitle, *result.Applications[1].JobTitle)
	})

	t.Run("Invalid status filter is rejected", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), newFakeDocumentStore())

		_, err := uc.ListApplications(context.Background(), domain.FilterCriteria{Status: "pending"})
		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "GetAll", mock.Anything)
	})
}

func TestGetMyNotifications(t *testing.T) {
	t.Run("No application yields an empty feed, not an error", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), newFakeDocumentStore())

		appRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

		notifs, err := uc.GetMyNotifications(context.Background(), "nobody@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, notifs)
		assert.Empty(t, notifs)
	})

	t.Run("Feed is derived from the application record", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), newFakeDocumentStore())

		now := time.Now()
		appRepo.On("GetByEmail", mock.Anything, "aarav@example.com").Return(&domain.Application{
			Status:    domain.StatusShortlisted,
			CreatedAt: now.Add(-24 * time.Hour),
			UpdatedAt: now,
		}, nil)

		notifs, err := uc.GetMyNotifications(context.Background(), "aarav@example.com")
		assert.NoError(t, err)
		assert.Len(t, notifs, 2)
		assert.Equal(t, "Congratulations! You are Shortlisted", notifs[0].Title)
	})
}

func TestAuthUsecase(t *testing.T) {
	tokens := auth.NewTokenService("test-secret-key-for-units", "veridia-test", time.Hour)

	t.Run("Registration rejects an invalid form with field errors", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, tokens)

		_, err := uc.Register(context.Background(), &domain.RegistrationForm{
			Name:  "J",
			Email: "bad",
		})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.NotEmpty(t, appErr.Fields["name"])
		assert.NotEmpty(t, appErr.Fields["email"])
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Registration lowercases the email and defaults to candidate role", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, tokens)

		userRepo.On("GetByEmail", mock.Anything, "aarav@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := uc.Register(context.Background(), &domain.RegistrationForm{
			Name:            "Aarav Sharma",
			Email:           "Aarav@Example.com",
			Password:        "Str0ngPass",
			ConfirmPassword: "Str0ngPass",
			TermsAgreement:  true,
		})
		assert.NoError(t, err)
		assert.Equal(t, "aarav@example.com", user.Email)
		assert.Equal(t, domain.RoleCandidate, user.Role)
		assert.True(t, auth.CheckPassword(user.PasswordHash, "Str0ngPass"))
	})

	t.Run("Login uses one message for unknown email and wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, tokens)

		hash, hashErr := auth.HashPassword("Str0ngPass")
		assert.NoError(t, hashErr)

		userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByEmail", mock.Anything, "aarav@example.com").Return(&domain.User{
			ID: 1, Email: "aarav@example.com", PasswordHash: hash, Role: domain.RoleCandidate,
		}, nil)

		_, unknownErr := uc.Login(context.Background(), "nobody@example.com", "whatever")
		_, wrongErr := uc.Login(context.Background(), "aarav@example.com", "WrongPass1")

		assert.Error(t, unknownErr)
		assert.Error(t, wrongErr)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("Successful login issues a verifiable token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, tokens)

		hash, hashErr := auth.HashPassword("Str0ngPass")
		assert.NoError(t, hashErr)

		userRepo.On("GetByEmail", mock.Anything, "aarav@example.com").Return(&domain.User{
			ID: 42, Email: "aarav@example.com", PasswordHash: hash, Role: domain.RoleCandidate,
		}, nil)

		result, err := uc.Login(context.Background(), "aarav@example.com", "Str0ngPass")
		assert.NoError(t, err)

		claims, err := tokens.Validate(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, domain.RoleCandidate, claims.Role)
	})
}
