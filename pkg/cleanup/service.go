// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"
)

const defaultInterval = time.Hour

// UsagePruner deletes old usage records. Satisfied by *usage.Meter.
type UsagePruner interface {
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// AuditPruner deletes old audit entries. Satisfied by *approval.EntStore.
type AuditPruner interface {
	PruneAudit(ctx context.Context, olderThan time.Time) (int, error)
}

// Config holds the retention windows.
type Config struct {
	// UsageRetention is how long durable usage records are kept. Default 90 days.
	UsageRetention time.Duration
	// AuditRetention is how long approval audit entries are kept. Default 180 days.
	AuditRetention time.Duration
	// Interval between cleanup rounds. Default 1 hour.
	Interval time.Duration
}

func (c *Config) applyDefaults() {
	if c.UsageRetention <= 0 {
		c.UsageRetention = 90 * 24 * time.Hour
	}
	if c.AuditRetention <= 0 {
		c.AuditRetention = 180 * 24 * time.Hour
	}
	if c.Interval <= 0 {
		c.Interval = defaultInterval
	}
}

// Service periodically enforces retention policies:
//   - Prunes usage records past the usage retention window
//   - Prunes approval audit entries past the audit retention window
//
// All operations are idempotent and safe to run from multiple processes.
type Service struct {
	config Config
	usage  UsagePruner
	audit  AuditPruner

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service. Either pruner may be nil; its pass
// is skipped.
func NewService(cfg Config, usage UsagePruner, audit AuditPruner) *Service {
	cfg.applyDefaults()
	return &Service{
		config: cfg,
		usage:  usage,
		audit:  audit,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"usage_retention", s.config.UsageRetention,
		"audit_retention", s.config.AuditRetention,
		"interval", s.config.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one cleanup round.
func (s *Service) RunAll(ctx context.Context) {
	s.pruneUsage(ctx)
	s.pruneAudit(ctx)
}

func (s *Service) pruneUsage(ctx context.Context) {
	if s.usage == nil {
		return
	}
	count, err := s.usage.PruneOlderThan(ctx, time.Now().Add(-s.config.UsageRetention))
	if err != nil {
		slog.Error("Retention: usage prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned usage records", "count", count)
	}
}

func (s *Service) pruneAudit(ctx context.Context) {
	if s.audit == nil {
		return
	}
	count, err := s.audit.PruneAudit(ctx, time.Now().Add(-s.config.AuditRetention))
	if err != nil {
		slog.Error("Retention: audit prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned audit entries", "count", count)
	}
}
