package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const checkTimeout = 2 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependency is one named readiness probe.
type Dependency struct {
	Name  string
	Check func(ctx context.Context) error
}

// PingDependency adapts a Pinger into a Dependency.
func PingDependency(name string, p Pinger) Dependency {
	return Dependency{Name: name, Check: p.Ping}
}

// CheckResult represents the health of a single dependency.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResult is the top-level health response.
type HealthResult struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

// Checker verifies that all dependencies are reachable.
type Checker struct {
	deps   []Dependency
	logger *slog.Logger
	gauge  *prometheus.GaugeVec
}

// NewChecker creates a health checker and registers its Prometheus gauge.
func NewChecker(logger *slog.Logger, reg prometheus.Registerer, deps ...Dependency) *Checker {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "padosee",
		Name:      "health_check_up",
		Help:      "Whether a dependency is reachable. 1 = up, 0 = down.",
	}, []string{"dependency"})
	reg.MustRegister(gauge)

	return &Checker{
		deps:   deps,
		logger: logger.With("component", "health"),
		gauge:  gauge,
	}
}

// Liveness returns a simple "up" response if the process is running.
func (c *Checker) Liveness(_ context.Context) HealthResult {
	return HealthResult{Status: "up"}
}

// Readiness runs every dependency check; any failure marks the service down.
func (c *Checker) Readiness(ctx context.Context) HealthResult {
	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	result := HealthResult{
		Status: "up",
		Checks: make(map[string]CheckResult, len(c.deps)),
	}

	for _, dep := range c.deps {
		if err := dep.Check(checkCtx); err != nil {
			c.logger.WarnContext(ctx, "health check failed", "dependency", dep.Name, "error", err)
			result.Status = "down"
			result.Checks[dep.Name] = CheckResult{Status: "down", Error: err.Error()}
			c.gauge.WithLabelValues(dep.Name).Set(0)
			continue
		}
		result.Checks[dep.Name] = CheckResult{Status: "up"}
		c.gauge.WithLabelValues(dep.Name).Set(1)
	}

	return result
}
