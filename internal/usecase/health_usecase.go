package usecase

import (
	"context"
	"time"
)

// Pinger is satisfied by database.Querier and the redis health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthUsecase interface {
	// Check reports per-dependency status; healthy is false only when the
	// database is unreachable since redis is optional.
	Check(ctx context.Context) (status map[string]string, healthy bool)
}

type healthUsecase struct {
	db    Pinger
	redis Pinger // nil when redis is not configured
}

func NewHealthUsecase(db Pinger, redis Pinger) HealthUsecase {
	return &healthUsecase{db: db, redis: redis}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{
		"status":   "ok",
		"database": "ok",
		"redis":    "disabled",
	}
	healthy := true

	if err := u.db.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = "down"
		healthy = false
	}

	if u.redis != nil {
		if err := u.redis.Ping(ctx); err != nil {
			status["redis"] = "down"
		} else {
			status["redis"] = "ok"
		}
	}

	return status, healthy
}
