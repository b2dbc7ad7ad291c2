package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobcrawler-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	email, name, preferred_locations, expected_salary_min, expected_salary_max,
	experience_years, COALESCE("current_role", ''), primary_skills, is_active,
	created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	var locations, skills []string

	err := row.Scan(
		&p.Email, &p.Name, pq.Array(&locations), &p.ExpectedSalaryMin, &p.ExpectedSalaryMax,
		&p.ExperienceYears, &p.CurrentRole, pq.Array(&skills), &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.PreferredLocations = locations
	p.PrimarySkills = skills
	return &p, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE email = $1`

	p, err := scanProfile(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO user_profiles (
			email, name, preferred_locations, expected_salary_min, expected_salary_max,
			experience_years, "current_role", primary_skills, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		profile.Email, profile.Name, pq.Array(profile.PreferredLocations),
		profile.ExpectedSalaryMin, profile.ExpectedSalaryMax,
		profile.ExperienceYears, profile.CurrentRole, pq.Array(profile.PrimarySkills),
		profile.IsActive,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) Update(ctx context.Context, email string, update *domain.ProfileUpdate) (*domain.Profile, error) {
	if update.IsEmpty() {
		// Nothing to write; hand back the current row.
		return r.GetByEmail(ctx, email)
	}

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if update.PreferredLocations != nil {
		setClauses = append(setClauses, "preferred_locations = "+arg(pq.Array(update.PreferredLocations)))
	}
	if update.ExpectedSalaryMin != nil {
		setClauses = append(setClauses, "expected_salary_min = "+arg(*update.ExpectedSalaryMin))
	}
	if update.ExpectedSalaryMax != nil {
		setClauses = append(setClauses, "expected_salary_max = "+arg(*update.ExpectedSalaryMax))
	}
	if update.ExperienceYears != nil {
		setClauses = append(setClauses, "experience_years = "+arg(*update.ExperienceYears))
	}
	if update.CurrentRole != nil {
		setClauses = append(setClauses, `"current_role" = `+arg(*update.CurrentRole))
	}
	if update.PrimarySkills != nil {
		setClauses = append(setClauses, "primary_skills = "+arg(pq.Array(update.PrimarySkills)))
	}

	query := fmt.Sprintf(
		`UPDATE user_profiles SET %s WHERE email = %s RETURNING %s`,
		strings.Join(setClauses, ", "), arg(email), profileColumns,
	)

	p, err := scanProfile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}

func (r *profileRepository) ListActive(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE is_active ORDER BY email`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}
