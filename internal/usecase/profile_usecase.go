package usecase

import (
	"context"

	"go-jobcrawler-backend/internal/domain"
	"go-jobcrawler-backend/pkg/apperror"
)

type profileUsecase struct {
	repo domain.ProfileRepository
}

func NewProfileUsecase(repo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{repo: repo}
}

func (u *profileUsecase) GetProfile(ctx context.Context, email string) (*domain.Profile, error) {
	profile, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

func (u *profileUsecase) ListActiveProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profiles, nil
}
