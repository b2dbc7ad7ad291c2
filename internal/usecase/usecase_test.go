package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobcrawler-backend/internal/domain"
	"go-jobcrawler-backend/internal/usecase"
	"go-jobcrawler-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repository
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) Update(ctx context.Context, email string, update *domain.ProfileUpdate) (*domain.Profile, error) {
	args := m.Called(ctx, email, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) ListActive(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

// fakeProfileRepo is a stateful in-memory store for exercising the full
// get-or-create-then-merge pipeline, including idempotence.
type fakeProfileRepo struct {
	profiles map[string]*domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*domain.Profile{}}
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	p, ok := f.profiles[email]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	cp := *profile
	f.profiles[profile.Email] = &cp
	return nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, email string, update *domain.ProfileUpdate) (*domain.Profile, error) {
	p, ok := f.profiles[email]
	if !ok {
		return nil, nil
	}
	if update.PreferredLocations != nil {
		p.PreferredLocations = update.PreferredLocations
	}
	if update.ExpectedSalaryMin != nil {
		p.ExpectedSalaryMin = *update.ExpectedSalaryMin
	}
	if update.ExpectedSalaryMax != nil {
		p.ExpectedSalaryMax = *update.ExpectedSalaryMax
	}
	if update.ExperienceYears != nil {
		p.ExperienceYears = *update.ExperienceYears
	}
	if update.CurrentRole != nil {
		p.CurrentRole = *update.CurrentRole
	}
	if update.PrimarySkills != nil {
		p.PrimarySkills = update.PrimarySkills
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) ListActive(ctx context.Context) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range f.profiles {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

var testGlobal = domain.GlobalConfig{
	PreferredLocations: []string{"Remote"},
	MinSalary:          0,
	MaxSalary:          999999,
	EmailRecipient:     "ops@example.com",
}

func TestUpdateConfigRequiresReceiverEmails(t *testing.T) {
	uc := usecase.NewConfigUsecase(newFakeProfileRepo(), testGlobal, newValidate())

	t.Run("Should reject nil input", func(t *testing.T) {
		_, err := uc.UpdateConfig(context.Background(), nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "At least one receiver email is required")
	})

	t.Run("Should reject empty email list", func(t *testing.T) {
		_, err := uc.UpdateConfig(context.Background(), &domain.UpdateConfigInput{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "At least one receiver email is required")
	})
}

func TestUpdateConfigCreatesDefaultProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := usecase.NewConfigUsecase(repo, testGlobal, newValidate())

	result, err := uc.UpdateConfig(context.Background(), &domain.UpdateConfigInput{
		ReceiverEmails: []string{"a@x.com"},
		Locations:      []string{"NYC"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.UpdatedCount)

	p := result.Profiles[0]
	assert.Equal(t, "a@x.com", p.Email)
	assert.Equal(t, "a", p.Name)
	assert.Equal(t, []string{"NYC"}, p.PreferredLocations)
	assert.True(t, p.IsActive)
	// Salary band seeded from global defaults
	assert.Equal(t, testGlobal.MinSalary, p.ExpectedSalaryMin)
	assert.Equal(t, testGlobal.MaxSalary, p.ExpectedSalaryMax)
}

func TestUpdateConfigSalaryAggregation(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := usecase.NewConfigUsecase(repo, testGlobal, newValidate())

	result, err := uc.UpdateConfig(context.Background(), &domain.UpdateConfigInput{
		ReceiverEmails: []string{"a@x.com"},
		SalaryRanges: []domain.SalaryRange{
			{Min: 5, Max: 10},
			{Min: 8, Max: 20},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Profiles, 1)

	assert.Equal(t, 5, result.Profiles[0].ExpectedSalaryMin)
	assert.Equal(t, 20, result.Profiles[0].ExpectedSalaryMax)
}

func TestUpdateConfigSkillDerivation(t *testing.T) {
	cases := []struct {
		title  string
		skills []string
	}{
		{"Backend Engineer", []string{"Python", "Java", "Node.js"}},
		{"Senior Python Developer", []string{"Python", "JavaScript", "React"}},
		{"React Developer", []string{"React", "JavaScript", "TypeScript"}},
		{"Frontend Lead", []string{"React", "JavaScript", "TypeScript"}},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			repo := newFakeProfileRepo()
			uc := usecase.NewConfigUsecase(repo, testGlobal, newValidate())

			result, err := uc.UpdateConfig(context.Background(), &domain.UpdateConfigInput{
				ReceiverEmails: []string{"a@x.com"},
				JobTitle:       tc.title,
			})
			require.NoError(t, err)
			require.Len(t, result.Profiles, 1)
			assert.Equal(t, tc.title, result.Profiles[0].CurrentRole)
			assert.Equal(t, tc.skills, result.Profiles[0].PrimarySkills)
		})
	}

	t.Run("Unmatched title leaves skills untouched", func(t *testing.T) {
		repo := newFakeProfileRepo()
		uc := usecase.NewConfigUsecase(repo, testGlobal, newValidate())

		_, err := uc.UpdateConfig(context.Background(), &domain.UpdateConfigInput{
			ReceiverEmails: []string{"a@x.com"},
			JobTitle:       "Python Engineer",
		})
		require.NoError(t, err)

		result, err := uc.UpdateConfig(context.Background(), &domain.UpdateConfigInput{
			ReceiverEmails: []string{"a@x.com"},
			JobTitle:       "Data Analyst",
		})
		require.NoError(t, err)
		assert.Equal(t, "Data Analyst", result.Profiles[0].CurrentRole)
		assert.Equal(t, []string{"Python", "JavaScript", "React"}, result.Profiles[0].PrimarySkills)
	})
}

func TestUpdateConfigIdempotence(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := usecase.NewConfigUsecase(repo, testGlobal, newValidate())

	min := 3
	input := &domain.UpdateConfigInput{
		ReceiverEmails: []string{"a@x.com"},
		Locations:      []string{"NYC", "Boston"},
		SalaryRanges:   []domain.SalaryRange{{Min: 50, Max: 90}},
		ExperienceMin:  &min,
		JobTitle:       "Backend Engineer",
	}

	first, err := uc.UpdateConfig(context.Background(), input)
	require.NoError(t, err)
	second, err := uc.UpdateConfig(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.Profiles, second.Profiles)
	assert.Equal(t, first.UpdatedCount, second.UpdatedCount)
}

func TestUpdateConfigSkipsBlankEmails(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := usecase.NewConfigUsecase(repo, testGlobal, newValidate())

	result, err := uc.UpdateConfig(context.Background(), &domain.UpdateConfigInput{
		ReceiverEmails: []string{"  ", "a@x.com", ""},
		Locations:      []string{"NYC"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.UpdatedCount)
	assert.Equal(t, "a@x.com", result.Profiles[0].Email)
}

func TestUpdateConfigExperienceOnlyMinApplies(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := usecase.NewConfigUsecase(repo, testGlobal, newValidate())

	min, max := 4, 9
	result, err := uc.UpdateConfig(context.Background(), &domain.UpdateConfigInput{
		ReceiverEmails: []string{"a@x.com"},
		ExperienceMin:  &min,
		ExperienceMax:  &max, // accepted but not persisted
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Profiles[0].ExperienceYears)
}

func TestUpdateConfigStoreFailure(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewConfigUsecase(mockRepo, testGlobal, newValidate())

	mockRepo.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, errors.New("connection refused"))

	_, err := uc.UpdateConfig(context.Background(), &domain.UpdateConfigInput{
		ReceiverEmails: []string{"a@x.com"},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetConfig(t *testing.T) {
	t.Run("Includes recipient when configured", func(t *testing.T) {
		repo := newFakeProfileRepo()
		uc := usecase.NewConfigUsecase(repo, testGlobal, newValidate())

		snapshot, err := uc.GetConfig(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"ops@example.com"}, snapshot.EmailRecipients)
		assert.Equal(t, testGlobal.PreferredLocations, snapshot.PreferredLocations)
	})

	t.Run("Recipients empty when unset", func(t *testing.T) {
		global := testGlobal
		global.EmailRecipient = ""
		uc := usecase.NewConfigUsecase(newFakeProfileRepo(), global, newValidate())

		snapshot, err := uc.GetConfig(context.Background())
		require.NoError(t, err)
		assert.Empty(t, snapshot.EmailRecipients)
		assert.NotNil(t, snapshot.EmailRecipients)
	})

	t.Run("Store failure surfaces as internal error", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		mockRepo.On("ListActive", mock.Anything).Return(nil, errors.New("db down"))
		uc := usecase.NewConfigUsecase(mockRepo, testGlobal, newValidate())

		_, err := uc.GetConfig(context.Background())
		assert.Error(t, err)
	})
}

func TestProfileUsecase(t *testing.T) {
	t.Run("Unknown email maps to not found", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		mockRepo.On("GetByEmail", mock.Anything, "ghost@x.com").Return(nil, nil)
		uc := usecase.NewProfileUsecase(mockRepo)

		_, err := uc.GetProfile(context.Background(), "ghost@x.com")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Profile not found")
	})

	t.Run("Known email returns profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		mockRepo.On("GetByEmail", mock.Anything, "a@x.com").Return(&domain.Profile{Email: "a@x.com"}, nil)
		uc := usecase.NewProfileUsecase(mockRepo)

		p, err := uc.GetProfile(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", p.Email)
	})
}

func TestHealthUsecase(t *testing.T) {
	t.Run("Check is static", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(nil, nil)
		status := uc.Check(context.Background())
		assert.Equal(t, "healthy", status["status"])
		assert.Equal(t, "Job Crawler API is running", status["message"])
	})

	t.Run("Dependencies reflect pinger state", func(t *testing.T) {
		okPing := usecase.PingerFunc(func(ctx context.Context) error { return nil })
		badPing := usecase.PingerFunc(func(ctx context.Context) error { return errors.New("down") })

		uc := usecase.NewHealthUsecase(badPing, okPing)
		deps := uc.Dependencies(context.Background())
		assert.Equal(t, "unreachable", deps["database"])
		assert.Equal(t, "ok", deps["redis"])
		assert.Equal(t, "degraded", deps["status"])
	})

	t.Run("Missing redis reports not configured", func(t *testing.T) {
		okPing := usecase.PingerFunc(func(ctx context.Context) error { return nil })
		uc := usecase.NewHealthUsecase(okPing, nil)
		deps := uc.Dependencies(context.Background())
		assert.Equal(t, "not configured", deps["redis"])
		assert.Equal(t, "healthy", deps["status"])
	})
}
