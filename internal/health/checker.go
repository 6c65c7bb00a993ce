// Package health implements liveness and readiness probes.
package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const readinessTimeout = 2 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CheckResult is the health of a single dependency.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResult is the top-level probe response.
type HealthResult struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

// Checker reports whether the service and its dependencies are usable.
// Postgres is the only hard dependency; the mail provider is best-effort
// and deliberately not part of readiness.
type Checker struct {
	db     Pinger
	logger *slog.Logger
	gauge  *prometheus.GaugeVec
}

// NewChecker creates a health checker and registers its Prometheus gauge.
func NewChecker(db Pinger, logger *slog.Logger, reg prometheus.Registerer) *Checker {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "usersvc",
		Name:      "health_check_up",
		Help:      "Whether a dependency is reachable. 1 = up, 0 = down.",
	}, []string{"dependency"})
	reg.MustRegister(gauge)

	return &Checker{
		db:     db,
		logger: logger.With("component", "health"),
		gauge:  gauge,
	}
}

// Liveness reports "up" whenever the process can serve the probe.
func (c *Checker) Liveness(_ context.Context) HealthResult {
	return HealthResult{Status: "up"}
}

// Readiness pings each dependency and aggregates the results. Any
// dependency being down marks the whole service down.
func (c *Checker) Readiness(ctx context.Context) HealthResult {
	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()

	result := HealthResult{
		Status: "up",
		Checks: make(map[string]CheckResult),
	}
	result.Checks["postgres"] = c.check(ctx, "postgres", c.db.Ping)
	for _, check := range result.Checks {
		if check.Status != "up" {
			result.Status = "down"
		}
	}
	return result
}

func (c *Checker) check(ctx context.Context, name string, ping func(context.Context) error) CheckResult {
	if err := ping(ctx); err != nil {
		c.logger.Warn("health check failed", "dependency", name, "error", err)
		c.gauge.WithLabelValues(name).Set(0)
		return CheckResult{Status: "down", Error: err.Error()}
	}
	c.gauge.WithLabelValues(name).Set(1)
	return CheckResult{Status: "up"}
}
