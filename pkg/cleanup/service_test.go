package cleanup

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePruner records the cutoffs it was asked to prune at.
type fakePruner struct {
	mu      sync.Mutex
	cutoffs []time.Time
	count   int
	err     error
}

func (f *fakePruner) prune(cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.count, nil
}

func (f *fakePruner) PruneOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	return f.prune(cutoff)
}

func (f *fakePruner) PruneAudit(_ context.Context, cutoff time.Time) (int, error) {
	return f.prune(cutoff)
}

func (f *fakePruner) calls() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Time(nil), f.cutoffs...)
}

func TestRunAllAppliesRetentionWindows(t *testing.T) {
	usage := &fakePruner{count: 3}
	audit := &fakePruner{count: 1}
	svc := NewService(Config{
		UsageRetention: 90 * 24 * time.Hour,
		AuditRetention: 180 * 24 * time.Hour,
	}, usage, audit)

	before := time.Now()
	svc.RunAll(context.Background())

	usageCalls := usage.calls()
	require.Len(t, usageCalls, 1)
	wantUsage := before.Add(-90 * 24 * time.Hour)
	assert.WithinDuration(t, wantUsage, usageCalls[0], time.Minute)

	auditCalls := audit.calls()
	require.Len(t, auditCalls, 1)
	wantAudit := before.Add(-180 * 24 * time.Hour)
	assert.WithinDuration(t, wantAudit, auditCalls[0], time.Minute)
}

func TestRunAllSkipsNilPruners(t *testing.T) {
	svc := NewService(Config{}, nil, nil)
	// Must not panic.
	svc.RunAll(context.Background())
}

func TestPruneErrorsAreLoggedNotFatal(t *testing.T) {
	usage := &fakePruner{err: fmt.Errorf("db down")}
	audit := &fakePruner{count: 2}
	svc := NewService(Config{}, usage, audit)

	svc.RunAll(context.Background())
	// The audit pass still runs after the usage failure.
	assert.Len(t, audit.calls(), 1)
}

func TestStartRunsImmediatelyAndStops(t *testing.T) {
	usage := &fakePruner{}
	svc := NewService(Config{Interval: time.Hour}, usage, nil)

	svc.Start(context.Background())
	require.Eventually(t, func() bool { return len(usage.calls()) == 1 }, time.Second, 10*time.Millisecond)
	svc.Stop()

	// Double Start/Stop are no-ops.
	svc.Stop()
}

func TestDefaultsApplied(t *testing.T) {
	svc := NewService(Config{}, nil, nil)
	assert.Equal(t, 90*24*time.Hour, svc.config.UsageRetention)
	assert.Equal(t, 180*24*time.Hour, svc.config.AuditRetention)
	assert.Equal(t, time.Hour, svc.config.Interval)
}
