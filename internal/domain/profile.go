package domain

import (
	"context"
	"time"
)

// Profile is a per-user record of job-search preferences, keyed by email.
type Profile struct {
	Email              string    `json:"email" validate:"required,email"`
	Name               string    `json:"name" validate:"required,valid_name,max=100"`
	PreferredLocations []string  `json:"preferred_locations"`
	ExpectedSalaryMin  int       `json:"expected_salary_min" validate:"gte=0"`
	ExpectedSalaryMax  int       `json:"expected_salary_max" validate:"gte=0"`
	ExperienceYears    int       `json:"experience_years" validate:"gte=0"`
	CurrentRole        string    `json:"current_role"`
	PrimarySkills      []string  `json:"primary_skills"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ProfileUpdate carries a partial update. Nil fields leave the stored value
// untouched; slices replace the stored list wholesale.
type ProfileUpdate struct {
	PreferredLocations []string
	ExpectedSalaryMin  *int
	ExpectedSalaryMax  *int
	ExperienceYears    *int
	CurrentRole        *string
	PrimarySkills      []string
}

// IsEmpty reports whether the update would touch no columns.
func (u *ProfileUpdate) IsEmpty() bool {
	return u.PreferredLocations == nil &&
		u.ExpectedSalaryMin == nil &&
		u.ExpectedSalaryMax == nil &&
		u.ExperienceYears == nil &&
		u.CurrentRole == nil &&
		u.PrimarySkills == nil
}

type ProfileRepository interface {
	// GetByEmail returns (nil, nil) when no profile exists for the email.
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	// Update applies a partial update and returns the resulting row.
	Update(ctx context.Context, email string, update *ProfileUpdate) (*Profile, error)
	ListActive(ctx context.Context) ([]Profile, error)
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, email string) (*Profile, error)
	ListActiveProfiles(ctx context.Context) ([]Profile, error)
}
