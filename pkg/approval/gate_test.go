package approval

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiniSankaz/fleetd/pkg/bus"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

// memStore is an in-memory Store. Timer callbacks hit it from background
// goroutines, so every method locks.
type memStore struct {
	mu        sync.Mutex
	requests  map[string]*models.ApprovalRequest
	decisions []*models.Decision
	audit     []*models.AuditEntry
}

func newMemStore() *memStore {
	return &memStore{requests: make(map[string]*models.ApprovalRequest)}
}

func (s *memStore) CreateRequest(_ context.Context, req *models.ApprovalRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[req.ID] = req.Clone()
	return nil
}

func (s *memStore) UpdateRequest(_ context.Context, req *models.ApprovalRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[req.ID]; !ok {
		return ErrNotFound
	}
	s.requests[req.ID] = req.Clone()
	return nil
}

func (s *memStore) GetRequest(_ context.Context, id string) (*models.ApprovalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := req.Clone()
	for _, d := range s.decisions {
		if d.RequestID == id {
			dc := *d
			clone.Decisions = append(clone.Decisions, &dc)
		}
	}
	return clone, nil
}

func (s *memStore) InsertDecision(_ context.Context, d *models.Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.decisions {
		if existing.RequestID == d.RequestID && existing.DeciderID == d.DeciderID {
			return ErrAlreadyDecided
		}
	}
	clone := *d
	s.decisions = append(s.decisions, &clone)
	return nil
}

func (s *memStore) AppendAudit(_ context.Context, entry *models.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *entry
	s.audit = append(s.audit, &clone)
	return nil
}

func (s *memStore) AuditFor(_ context.Context, requestID string) ([]*models.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.AuditEntry
	for _, entry := range s.audit {
		if entry.RequestID == requestID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (s *memStore) RequestsSince(_ context.Context, since time.Time) ([]*models.ApprovalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.ApprovalRequest
	for _, req := range s.requests {
		if !req.RequestedAt.Before(since) {
			out = append(out, req.Clone())
		}
	}
	return out, nil
}

func (s *memStore) PruneAudit(_ context.Context, olderThan time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []*models.AuditEntry
	removed := 0
	for _, entry := range s.audit {
		if entry.CreatedAt.Before(olderThan) {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	s.audit = kept
	return removed, nil
}

func (s *memStore) auditActions(requestID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, entry := range s.audit {
		if entry.RequestID == requestID {
			out = append(out, entry.Action)
		}
	}
	return out
}

func (s *memStore) auditEntry(requestID, action string) *models.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.audit {
		if entry.RequestID == requestID && entry.Action == action {
			return entry
		}
	}
	return nil
}

// recordingNotifier captures gate notifications.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []Notification
}

func (n *recordingNotifier) Send(_ context.Context, notification Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

func deploymentPolicy() *Policy {
	return &Policy{
		ID:               "policy-deploy",
		Name:             "Deployments",
		Priority:         50,
		Active:           true,
		Types:            []models.ApprovalType{models.ApprovalCodeDeployment},
		RiskLevels:       []models.RiskLevel{models.RiskMedium, models.RiskHigh},
		ResourcePatterns: []string{"production/*"},
		UserRoles:        []string{"*"},
		Level:            models.ApprovalLevelAdmin,
		Approvers:        []string{"alpha", "beta", "gamma"},
		RequiredCount:    2,
		Timeout:          time.Hour,
		NotifyChannels:   []string{"websocket"},
		AllowBypass:      true,
		BypassRoles:      []string{"security-admin"},
		CreatedAt:        time.Now(),
	}
}

func testRoles() StaticRoles {
	return StaticRoles{
		"requester-1": {"developer"},
		"sec-1":       {"security-admin"},
		"alpha":       {"platform-admin"},
	}
}

func newTestGate(t *testing.T, policies ...*Policy) (*Gate, *memStore, *recordingNotifier) {
	t.Helper()
	store := newMemStore()
	notifier := &recordingNotifier{}
	gate := NewGate(store, bus.New(), testRoles(), notifier, policies, 0)
	t.Cleanup(gate.Stop)
	return gate, store, notifier
}

func deploymentInput() SubmitInput {
	return SubmitInput{
		Type:        models.ApprovalCodeDeployment,
		Title:       "Deploy build 421",
		RequesterID: "requester-1",
		Operation: models.OperationDescriptor{
			Action:     "deploy",
			Resource:   "production/api",
			Risk:       models.RiskHigh,
			Reversible: true,
		},
	}
}

func TestSubmitResolvesPolicy(t *testing.T) {
	gate, store, notifier := newTestGate(t, deploymentPolicy())

	req, err := gate.Submit(context.Background(), deploymentInput())
	require.NoError(t, err)

	assert.Equal(t, models.ApprovalPending, req.State)
	assert.Equal(t, models.ApprovalLevelAdmin, req.Level)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, req.Approvers)
	assert.Equal(t, 2, req.RequiredCount)
	assert.Equal(t, "policy-deploy", req.PolicyID)
	assert.True(t, req.ExpiresAt.After(req.RequestedAt))

	assert.Equal(t, []string{ActionRequestSubmitted}, store.auditActions(req.ID))
	assert.Equal(t, 1, notifier.count())
	assert.Equal(t, 1, gate.PendingCount())
}

func TestSubmitNoPolicy(t *testing.T) {
	gate, _, _ := newTestGate(t, deploymentPolicy())

	input := deploymentInput()
	input.Operation.Resource = "staging/api"
	_, err := gate.Submit(context.Background(), input)
	require.ErrorIs(t, err, ErrNoPolicy)
}

func TestSubmitQueueFull(t *testing.T) {
	store := newMemStore()
	gate := NewGate(store, bus.New(), testRoles(), nil, []*Policy{deploymentPolicy()}, 2)
	t.Cleanup(gate.Stop)

	ctx := context.Background()
	_, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)
	_, err = gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)

	_, err = gate.Submit(ctx, deploymentInput())
	require.ErrorIs(t, err, ErrQueueFull)
}

func TestDecideQuorum(t *testing.T) {
	gate, _, _ := newTestGate(t, deploymentPolicy())
	ctx := context.Background()
	events := gate.events.Subscribe(bus.TopicApprovalGranted)
	defer events.Close()

	req, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)

	_, err = gate.Decide(ctx, req.ID, "alpha", models.ChoiceApprove, "lgtm")
	require.NoError(t, err)
	current, err := gate.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, current.State)

	_, err = gate.Decide(ctx, req.ID, "beta", models.ChoiceApprove, "")
	require.NoError(t, err)
	current, err = gate.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, current.State)
	require.NotNil(t, current.ResolvedAt)

	select {
	case evt := <-events.C():
		granted, ok := evt.Payload.(*models.ApprovalRequest)
		require.True(t, ok)
		assert.Equal(t, req.ID, granted.ID)
	case <-time.After(time.Second):
		t.Fatal("expected approval:granted event")
	}
}

func TestVetoRejectsImmediately(t *testing.T) {
	gate, store, _ := newTestGate(t, deploymentPolicy())
	ctx := context.Background()

	req, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)

	_, err = gate.Decide(ctx, req.ID, "alpha", models.ChoiceApprove, "")
	require.NoError(t, err)
	_, err = gate.Decide(ctx, req.ID, "beta", models.ChoiceReject, "unsafe change")
	require.NoError(t, err)

	current, err := gate.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalRejected, current.State)

	// The late approver hits a resolved request.
	_, err = gate.Decide(ctx, req.ID, "gamma", models.ChoiceApprove, "")
	require.ErrorIs(t, err, ErrNotPending)

	assert.Contains(t, store.auditActions(req.ID), ActionDecisionReject)
}

func TestDecideValidation(t *testing.T) {
	gate, _, _ := newTestGate(t, deploymentPolicy())
	ctx := context.Background()

	req, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)

	_, err = gate.Decide(ctx, req.ID, "outsider", models.ChoiceApprove, "")
	require.ErrorIs(t, err, ErrNotApprover)

	_, err = gate.Decide(ctx, req.ID, "alpha", models.ChoiceApprove, "")
	require.NoError(t, err)
	_, err = gate.Decide(ctx, req.ID, "alpha", models.ChoiceApprove, "")
	require.ErrorIs(t, err, ErrAlreadyDecided)

	_, err = gate.Decide(ctx, "no-such-request", "alpha", models.ChoiceApprove, "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSelfApprovalBlockedByDefault(t *testing.T) {
	policy := deploymentPolicy()
	policy.Approvers = []string{"requester-1", "beta"}
	gate, _, _ := newTestGate(t, policy)
	ctx := context.Background()

	req, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)

	_, err = gate.Decide(ctx, req.ID, "requester-1", models.ChoiceApprove, "")
	require.ErrorIs(t, err, ErrSelfApproval)
}

func TestSelfApprovalAllowedWhenPolicyPermits(t *testing.T) {
	policy := deploymentPolicy()
	policy.Approvers = []string{"requester-1", "beta"}
	policy.AllowSelfApproval = true
	policy.RequiredCount = 1
	gate, _, _ := newTestGate(t, policy)
	ctx := context.Background()

	req, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)

	_, err = gate.Decide(ctx, req.ID, "requester-1", models.ChoiceApprove, "")
	require.NoError(t, err)
	current, err := gate.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, current.State)
}

func TestBypassRequiresPolicyAndRole(t *testing.T) {
	gate, store, _ := newTestGate(t, deploymentPolicy())
	ctx := context.Background()

	req, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)

	// alpha holds platform-admin, not a bypass role.
	_, err = gate.Bypass(ctx, req.ID, "alpha", "urgent", nil)
	require.ErrorIs(t, err, ErrBypassRole)

	bypassed, err := gate.Bypass(ctx, req.ID, "sec-1", "incident 7731", map[string]any{"incident": "7731"})
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalBypassed, bypassed.State)
	require.NotNil(t, bypassed.Bypass)
	assert.Equal(t, "sec-1", bypassed.Bypass.By)

	entry := store.auditEntry(req.ID, ActionEmergencyBypass)
	require.NotNil(t, entry)
	assert.Equal(t, models.AuditCritical, entry.Severity)
	assert.Equal(t, "7731", entry.Details["incident"])
}

func TestBypassDeniedWhenPolicyForbids(t *testing.T) {
	policy := deploymentPolicy()
	policy.AllowBypass = false
	gate, _, _ := newTestGate(t, policy)
	ctx := context.Background()

	req, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)

	_, err = gate.Bypass(ctx, req.ID, "sec-1", "urgent", nil)
	require.ErrorIs(t, err, ErrBypassDenied)
}

func TestTimeoutExpiresAndEscalates(t *testing.T) {
	policy := deploymentPolicy()
	policy.EscalationNotify = true
	policy.EscalationRecipients = []string{"security-oncall"}
	gate, store, notifier := newTestGate(t, policy)
	ctx := context.Background()

	input := deploymentInput()
	input.TimeoutOverride = 50 * time.Millisecond
	req, err := gate.Submit(ctx, input)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		current, err := gate.Get(ctx, req.ID)
		return err == nil && current.State == models.ApprovalExpired
	}, time.Second, 10*time.Millisecond)

	current, err := gate.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, current.EscalationLevel)
	require.Len(t, current.EscalationHistory, 1)
	assert.Equal(t, []string{"security-oncall"}, current.EscalationHistory[0].Recipients)

	actions := store.auditActions(req.ID)
	assert.Contains(t, actions, ActionEscalated)
	assert.Contains(t, actions, ActionRequestExpired)

	// Submission notice plus the escalation fan-out.
	assert.GreaterOrEqual(t, notifier.count(), 2)
}

func TestRemindersFireWhilePending(t *testing.T) {
	policy := deploymentPolicy()
	policy.ReminderIntervals = []time.Duration{30 * time.Millisecond}
	gate, store, _ := newTestGate(t, policy)
	ctx := context.Background()

	input := deploymentInput()
	input.TimeoutOverride = time.Hour
	req, err := gate.Submit(ctx, input)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return store.auditEntry(req.ID, ActionReminderSent) != nil
	}, time.Second, 10*time.Millisecond)

	// Reminders are notification records in the request history.
	history, err := gate.History(ctx, req.ID)
	require.NoError(t, err)
	require.NotEmpty(t, history.Notifications)
	assert.Equal(t, ActionReminderSent, history.Notifications[0].Action)
}

func TestReminderPastTimeoutIsDropped(t *testing.T) {
	policy := deploymentPolicy()
	policy.ReminderIntervals = []time.Duration{2 * time.Hour}
	gate, _, _ := newTestGate(t, policy)

	req, err := gate.Submit(context.Background(), deploymentInput())
	require.NoError(t, err)

	gate.mu.Lock()
	timerCount := len(gate.timers[req.ID])
	gate.mu.Unlock()
	// Only the timeout timer: the reminder would land after expiry.
	assert.Equal(t, 1, timerCount)
}

func TestPendingForOrdersByAge(t *testing.T) {
	gate, _, _ := newTestGate(t, deploymentPolicy())
	ctx := context.Background()

	first, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)
	second, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)

	pending := gate.PendingFor(ctx, "alpha")
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, second.ID, pending[1].ID)

	// The requester sees their own requests too.
	assert.Len(t, gate.PendingFor(ctx, "requester-1"), 2)
	assert.Empty(t, gate.PendingFor(ctx, "outsider"))
}

func TestCancelResolvesRequest(t *testing.T) {
	gate, store, _ := newTestGate(t, deploymentPolicy())
	ctx := context.Background()

	req, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)
	require.NoError(t, gate.Cancel(ctx, req.ID, "requester-1", "no longer needed"))

	current, err := gate.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalCancelled, current.State)
	assert.Contains(t, store.auditActions(req.ID), ActionCancelled)
	assert.Zero(t, gate.PendingCount())
}

func TestHistoryIncludesDecisionsAndAudit(t *testing.T) {
	gate, _, _ := newTestGate(t, deploymentPolicy())
	ctx := context.Background()

	req, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)
	_, err = gate.Decide(ctx, req.ID, "alpha", models.ChoiceApprove, "lgtm")
	require.NoError(t, err)

	history, err := gate.History(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, history.Decisions, 1)
	assert.Equal(t, "alpha", history.Decisions[0].DeciderID)
	assert.GreaterOrEqual(t, len(history.Audit), 2)
}

func TestStatistics(t *testing.T) {
	gate, _, _ := newTestGate(t, deploymentPolicy())
	ctx := context.Background()

	approved, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)
	_, err = gate.Decide(ctx, approved.ID, "alpha", models.ChoiceApprove, "")
	require.NoError(t, err)
	_, err = gate.Decide(ctx, approved.ID, "beta", models.ChoiceApprove, "")
	require.NoError(t, err)

	_, err = gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)

	stats, err := gate.Statistics(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.ByState[models.ApprovalApproved])
	assert.Equal(t, 1, stats.ByState[models.ApprovalPending])
	assert.Equal(t, 2, stats.ByType[models.ApprovalCodeDeployment])
	assert.GreaterOrEqual(t, stats.AvgResolutionMs, 0.0)
}

func TestEvictTerminalAfterRetention(t *testing.T) {
	gate, _, _ := newTestGate(t, deploymentPolicy())
	ctx := context.Background()

	req, err := gate.Submit(ctx, deploymentInput())
	require.NoError(t, err)
	require.NoError(t, gate.Cancel(ctx, req.ID, "requester-1", ""))

	// Still served from working memory inside the retention window.
	_, err = gate.Get(ctx, req.ID)
	require.NoError(t, err)

	gate.evictTerminal(time.Now().Add(time.Minute))
	gate.mu.Lock()
	_, held := gate.terminal[req.ID]
	gate.mu.Unlock()
	assert.False(t, held)

	// The durable record survives eviction.
	durable, err := gate.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalCancelled, durable.State)
}
