package metrics

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nirmalvora/padosee-server/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Credential metrics

	LoginAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "padosee",
		Name:      "login_attempts_total",
		Help:      "Login attempts, by outcome.",
	}, []string{"outcome"})

	PasswordRotationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "padosee",
		Name:      "password_rotations_total",
		Help:      "Password change attempts, by outcome.",
	}, []string{"outcome"})

	PasswordHashDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "padosee",
		Name:      "password_hash_duration_seconds",
		Help:      "Time spent in bcrypt hash and verify calls.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"op"})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "padosee",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "padosee",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register() {
	prometheus.MustRegister(
		LoginAttemptsTotal,
		PasswordRotationsTotal,
		PasswordHashDuration,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// NewServer serves /metrics plus liveness and readiness probes.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", probe(checker.Liveness))
	mux.HandleFunc("/readyz", probe(checker.Readiness))
	return &http.Server{Addr: addr, Handler: mux}
}

func probe(check func(context.Context) health.HealthResult) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := check(r.Context())
		w.Header().Set("Content-Type", "application/json")
		if result.Status != "up" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(result)
	}
}
