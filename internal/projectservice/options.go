package projectservice

import (
	"time"

	"github.com/starford/hrpaudit/internal/audit"
	"github.com/starford/hrpaudit/internal/metrics"
)

// Option configures a Service.
type Option func(*Service)

// WithCatalog replaces the document checklist new projects are seeded with.
func WithCatalog(catalog []audit.DocumentSeed) Option {
	return func(s *Service) {
		s.catalog = catalog
	}
}

// WithMetrics records operation metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithNotifier registers fn to be called after every committed change.
func WithNotifier(fn Notifier) Option {
	return func(s *Service) {
		s.notify = fn
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}
