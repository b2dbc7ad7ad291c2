package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
	Dependencies(ctx context.Context) map[string]string
}

// DependencyPinger is the slice of a connection pool the health check needs.
type DependencyPinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a plain function to DependencyPinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type healthUsecase struct {
	db    DependencyPinger
	redis DependencyPinger
}

func NewHealthUsecase(db, redis DependencyPinger) HealthUsecase {
	return &healthUsecase{db: db, redis: redis}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	return map[string]string{
		"status":  "healthy",
		"message": "Job Crawler API is running",
	}
}

func (u *healthUsecase) Dependencies(ctx context.Context) map[string]string {
	deps := map[string]string{"status": "healthy"}

	deps["database"] = pingStatus(ctx, u.db)
	deps["redis"] = pingStatus(ctx, u.redis)

	if deps["database"] != "ok" {
		deps["status"] = "degraded"
	}

	return deps
}

func pingStatus(ctx context.Context, p DependencyPinger) string {
	if p == nil {
		return "not configured"
	}
	if err := p.Ping(ctx); err != nil {
		return "unreachable"
	}
	return "ok"
}
