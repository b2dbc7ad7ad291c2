package usecase

import (
	"context"
	"strings"

	"go-jobcrawler-backend/internal/domain"
	"go-jobcrawler-backend/pkg/apperror"
	"go-jobcrawler-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type configUsecase struct {
	repo     domain.ProfileRepository
	global   domain.GlobalConfig
	validate *validator.Validate
}

func NewConfigUsecase(repo domain.ProfileRepository, global domain.GlobalConfig, validate *validator.Validate) domain.ConfigUsecase {
	return &configUsecase{
		repo:     repo,
		global:   global,
		validate: validate,
	}
}

func (u *configUsecase) GetConfig(ctx context.Context) (*domain.ConfigSnapshot, error) {
	profiles, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	recipients := []string{}
	if u.global.EmailRecipient != "" {
		recipients = append(recipients, u.global.EmailRecipient)
	}

	return &domain.ConfigSnapshot{
		PreferredLocations: u.global.PreferredLocations,
		MinSalary:          u.global.MinSalary,
		MaxSalary:          u.global.MaxSalary,
		EmailRecipients:    recipients,
		Profiles:           profiles,
	}, nil
}

func (u *configUsecase) UpdateConfig(ctx context.Context, input *domain.UpdateConfigInput) (*domain.UpdateConfigResult, error) {
	if input == nil || len(input.ReceiverEmails) == 0 {
		return nil, apperror.BadRequest("At least one receiver email is required")
	}

	update := buildProfileUpdate(input)

	updated := []domain.Profile{}
	for _, email := range input.ReceiverEmails {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}

		profile, err := u.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if profile == nil {
			profile, err = u.createDefaultProfile(ctx, email)
			if err != nil {
				return nil, err
			}
		}

		result, err := u.repo.Update(ctx, email, update)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if result != nil {
			updated = append(updated, *result)
		}
	}

	// Global settings (locations, salary bounds) intentionally stay
	// environment-sourced; only per-profile rows are written here.
	return &domain.UpdateConfigResult{
		Profiles:     updated,
		UpdatedCount: len(updated),
	}, nil
}

// createDefaultProfile seeds a profile for an email seen for the first time.
// The display name is the local part of the address; preference fields start
// from the global defaults.
func (u *configUsecase) createDefaultProfile(ctx context.Context, email string) (*domain.Profile, error) {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	profile := &domain.Profile{
		Email:              email,
		Name:               name,
		PreferredLocations: u.global.PreferredLocations,
		ExpectedSalaryMin:  u.global.MinSalary,
		ExpectedSalaryMax:  u.global.MaxSalary,
		ExperienceYears:    0,
		CurrentRole:        "",
		PrimarySkills:      []string{},
		IsActive:           true,
	}

	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(validation.FormatError(err))
	}

	if err := u.repo.Create(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// buildProfileUpdate translates a config submission into a partial profile
// update shared by every receiver email.
func buildProfileUpdate(input *domain.UpdateConfigInput) *domain.ProfileUpdate {
	update := &domain.ProfileUpdate{}

	if len(input.Locations) > 0 {
		locations := []string{}
		for _, loc := range input.Locations {
			if l := strings.TrimSpace(loc); l != "" {
				locations = append(locations, l)
			}
		}
		update.PreferredLocations = locations
	}

	// Aggregate across all supplied ranges: min of mins, max of maxs.
	// Zero values are treated as unset, matching the submission form.
	if len(input.SalaryRanges) > 0 {
		var minSalary, maxSalary int
		for _, r := range input.SalaryRanges {
			if r.Min > 0 && (minSalary == 0 || r.Min < minSalary) {
				minSalary = r.Min
			}
			if r.Max > 0 && r.Max > maxSalary {
				maxSalary = r.Max
			}
		}
		if minSalary > 0 {
			update.ExpectedSalaryMin = &minSalary
		}
		if maxSalary > 0 {
			update.ExpectedSalaryMax = &maxSalary
		}
	}

	if input.ExperienceMin != nil {
		years := *input.ExperienceMin
		update.ExperienceYears = &years
	}

	if input.JobTitle != "" {
		title := input.JobTitle
		update.CurrentRole = &title
		if skills := skillsForTitle(title); skills != nil {
			update.PrimarySkills = skills
		}
	}

	return update
}

// skillsForTitle derives a primary skill set from keywords in a job title.
// Returns nil when no keyword matches, leaving stored skills untouched.
func skillsForTitle(title string) []string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "python"):
		return []string{"Python", "JavaScript", "React"}
	case strings.Contains(lower, "react"), strings.Contains(lower, "frontend"):
		return []string{"React", "JavaScript", "TypeScript"}
	case strings.Contains(lower, "backend"):
		return []string{"Python", "Java", "Node.js"}
	default:
		return nil
	}
}
