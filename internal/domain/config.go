package domain

import "context"

// GlobalConfig is the process-wide, read-only slice of job-search settings
// sourced from the environment. POST /api/config intentionally does not
// mutate it; per-profile rows are the only thing the endpoint writes.
type GlobalConfig struct {
	PreferredLocations []string
	MinSalary          int
	MaxSalary          int
	EmailRecipient     string
}

// SalaryRange is one min/max pair from the config form.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// UpdateConfigInput mirrors the POST /api/config body.
type UpdateConfigInput struct {
	ReceiverEmails []string      `json:"receiver_emails"`
	Locations      []string      `json:"locations"`
	SalaryRanges   []SalaryRange `json:"salary_ranges"`
	ExperienceMin  *int          `json:"experience_min"`
	ExperienceMax  *int          `json:"experience_max"`
	JobTitle       string        `json:"job_title"`
}

// ConfigSnapshot is the GET /api/config payload: global settings plus the
// active profiles.
type ConfigSnapshot struct {
	PreferredLocations []string  `json:"preferred_locations"`
	MinSalary          int       `json:"min_salary"`
	MaxSalary          int       `json:"max_salary"`
	EmailRecipients    []string  `json:"email_recipients"`
	Profiles           []Profile `json:"profiles"`
}

// UpdateConfigResult reports which profiles a config submission touched.
type UpdateConfigResult struct {
	Profiles     []Profile
	UpdatedCount int
}

type ConfigUsecase interface {
	GetConfig(ctx context.Context) (*ConfigSnapshot, error)
	UpdateConfig(ctx context.Context, input *UpdateConfigInput) (*UpdateConfigResult, error)
}
