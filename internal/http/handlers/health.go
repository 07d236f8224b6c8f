package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/pribylovaa/hotel-listing-api/internal/pkg/log"
)

// Статусы health-отчёта.
const (
	Healthy   = "Healthy"
	Degraded  = "Degraded"
	Unhealthy = "Unhealthy"
)

// Теги проверок: /healthcheck и /database-healthcheck отбирают проверки по ним.
const (
	TagCustom   = "custom"
	TagDatabase = "database"
)

// HealthCheck — одна проверка зависимости.
// Упавшая Critical-проверка делает сервис Unhealthy (503), остальные только Degraded (200).
type HealthCheck struct {
	Name     string
	Critical bool
	Tags     []string
	Check    func(ctx context.Context) error
}

// Tagged возвращает проверки с тегом tag.
func Tagged(tag string, checks []HealthCheck) []HealthCheck {
	var out []HealthCheck
	for _, c := range checks {
		for _, t := range c.Tags {
			if t == tag {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

type HealthEntry struct {
	Status      string `json:"status"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

type HealthReport struct {
	Status string                 `json:"status"`
	Result map[string]HealthEntry `json:"result"`
}

// Health — GET /health (и его подмножества): прогоняет проверки последовательно с общим таймаутом.
func Health(timeout time.Duration, checks ...HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		report := HealthReport{Status: Healthy, Result: make(map[string]HealthEntry, len(checks))}

		for _, c := range checks {
			start := time.Now()
			err := c.Check(ctx)

			entry := HealthEntry{Status: Healthy, Duration: time.Since(start).String()}
			if err != nil {
				logctx.From(ctx).Warn("health_check_failed",
					slog.String("check", c.Name),
					slog.String("err", err.Error()),
				)

				entry.Description = "check failed"
				entry.Status = Degraded
				if c.Critical {
					entry.Status = Unhealthy
				}
			}

			report.Status = worse(report.Status, entry.Status)
			report.Result[c.Name] = entry
		}

		status := http.StatusOK
		if report.Status == Unhealthy {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, status, report)
	}
}

func worse(a, b string) string {
	rank := map[string]int{Healthy: 0, Degraded: 1, Unhealthy: 2}
	if rank[b] > rank[a] {
		return b
	}
	return a
}
