package approval

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MiniSankaz/fleetd/pkg/bus"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

const (
	// defaultQueueCap bounds the pending set; Submit refuses beyond it.
	defaultQueueCap = 1000

	// terminalRetention keeps resolved requests in working memory for
	// status queries before eviction. The durable record survives.
	terminalRetention = 24 * time.Hour

	evictInterval = 10 * time.Minute
)

// Notification is a message the gate asks the notifier to deliver.
type Notification struct {
	RequestID  string
	Recipients []string
	Channels   []string
	Subject    string
	Body       string
	Severity   models.AuditSeverity
}

// Notifier delivers gate notifications. Delivery is best-effort;
// implementations own retries.
type Notifier interface {
	Send(ctx context.Context, n Notification)
}

// SubmitInput is the caller's side of a submission.
type SubmitInput struct {
	Type        models.ApprovalType
	Title       string
	Description string
	RequesterID string
	Operation   models.OperationDescriptor
	Context     models.ApprovalContext

	// Options. Zero values defer to the matched policy.
	TimeoutOverride time.Duration
	ExtraApprovers  []string
}

// Statistics summarizes gate activity since a cutoff.
type Statistics struct {
	Since           time.Time                    `json:"since"`
	Total           int                          `json:"total"`
	Pending         int                          `json:"pending"`
	ByState         map[models.ApprovalState]int `json:"by_state"`
	ByType          map[models.ApprovalType]int  `json:"by_type"`
	ByLevel         map[models.ApprovalLevel]int `json:"by_level"`
	Bypasses        int                          `json:"bypasses"`
	Escalations     int                          `json:"escalations"`
	AvgResolutionMs float64                      `json:"avg_resolution_ms"`
}

// History is the full trace of one request.
type History struct {
	Request       *models.ApprovalRequest `json:"request"`
	Decisions     []*models.Decision      `json:"decisions"`
	Audit         []*models.AuditEntry    `json:"audit"`
	Notifications []*models.AuditEntry    `json:"notifications"`
}

// Gate runs the approval state machine. Working state is held in memory;
// every transition is mirrored to the durable store and audited.
type Gate struct {
	store    Store
	events   *bus.Bus
	roles    RoleOracle
	notifier Notifier
	resolver *PolicySet
	byID     map[string]*Policy
	queueCap int

	mu       sync.Mutex
	pending  map[string]*models.ApprovalRequest
	terminal map[string]*models.ApprovalRequest
	timers   map[string][]*time.Timer

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewGate creates an approval gate. notifier may be nil (notifications
// disabled). queueCap <= 0 selects the default cap of 1000.
func NewGate(store Store, events *bus.Bus, roles RoleOracle, notifier Notifier, policies []*Policy, queueCap int) *Gate {
	if store == nil {
		panic("approval.NewGate: store must not be nil")
	}
	if roles == nil {
		panic("approval.NewGate: role oracle must not be nil")
	}
	if queueCap <= 0 {
		queueCap = defaultQueueCap
	}
	byID := make(map[string]*Policy, len(policies))
	for _, p := range policies {
		byID[p.ID] = p
	}
	return &Gate{
		store:    store,
		events:   events,
		roles:    roles,
		notifier: notifier,
		resolver: NewPolicySet(policies...),
		byID:     byID,
		queueCap: queueCap,
		pending:  make(map[string]*models.ApprovalRequest),
		terminal: make(map[string]*models.ApprovalRequest),
		timers:   make(map[string][]*time.Timer),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the terminal-eviction loop.
func (g *Gate) Start() {
	g.wg.Add(1)
	go g.evictLoop()
	slog.Info("Approval gate started", "queue_cap", g.queueCap)
}

// Stop halts background work and cancels all scheduled timers.
func (g *Gate) Stop() {
	g.stopOnce.Do(func() { close(g.stopCh) })
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	for id := range g.timers {
		g.cancelTimersLocked(id)
	}
	slog.Info("Approval gate stopped")
}

// Submit opens a new approval request. Refuses with ErrQueueFull when the
// pending set is at capacity and ErrNoPolicy when no policy matches.
func (g *Gate) Submit(ctx context.Context, input SubmitInput) (*models.ApprovalRequest, error) {
	if !input.Type.IsValid() {
		return nil, fmt.Errorf("invalid approval type %q", input.Type)
	}
	if input.RequesterID == "" {
		return nil, fmt.Errorf("requester id is required")
	}

	requesterRoles, err := g.roles.RolesOf(ctx, input.RequesterID)
	if err != nil {
		return nil, fmt.Errorf("resolving requester roles: %w", err)
	}
	policy := g.resolver.Resolve(input.Type, input.Operation.Risk, input.Operation.Resource, requesterRoles)
	if policy == nil {
		return nil, ErrNoPolicy
	}

	timeout := policy.Timeout
	if input.TimeoutOverride > 0 {
		timeout = input.TimeoutOverride
	}
	now := time.Now()
	req := &models.ApprovalRequest{
		ID:            uuid.New().String(),
		Type:          input.Type,
		Level:         policy.Level,
		State:         models.ApprovalPending,
		Title:         input.Title,
		Description:   input.Description,
		RequesterID:   input.RequesterID,
		Operation:     input.Operation,
		Approvers:     mergeApprovers(g.expandRecipients(ctx, policy.Approvers), input.ExtraApprovers),
		RequiredCount: policy.RequiredCount,
		RequestedAt:   now,
		ExpiresAt:     now.Add(timeout),
		TimeoutMs:     timeout.Milliseconds(),
		Context:       input.Context,
		PolicyID:      policy.ID,
	}

	g.mu.Lock()
	if len(g.pending) >= g.queueCap {
		g.mu.Unlock()
		return nil, ErrQueueFull
	}
	g.pending[req.ID] = req
	g.mu.Unlock()

	if err := g.store.CreateRequest(ctx, req); err != nil {
		g.mu.Lock()
		delete(g.pending, req.ID)
		g.mu.Unlock()
		return nil, fmt.Errorf("persisting approval request: %w", err)
	}
	g.audit(ctx, req.ID, ActionRequestSubmitted, input.RequesterID, models.AuditInfo, map[string]any{
		"type":     string(req.Type),
		"risk":     string(req.Operation.Risk),
		"resource": req.Operation.Resource,
		"policy":   policy.ID,
	})

	g.scheduleTimers(req, policy, timeout)
	g.publish(bus.TopicApprovalRequired, req.Clone())
	g.notify(ctx, Notification{
		RequestID:  req.ID,
		Recipients: req.Approvers,
		Channels:   policy.NotifyChannels,
		Subject:    fmt.Sprintf("Approval required: %s", req.Title),
		Body:       fmt.Sprintf("%s requests %s on %s (risk %s)", req.RequesterID, req.Operation.Action, req.Operation.Resource, req.Operation.Risk),
		Severity:   models.AuditInfo,
	})

	slog.Info("Approval request submitted",
		"request_id", req.ID, "type", req.Type, "level", req.Level,
		"requester", req.RequesterID, "policy", policy.ID)
	return req.Clone(), nil
}

// Decide records one approver's verdict. A rejection resolves the request
// immediately; approvals resolve it once the required count is met.
func (g *Gate) Decide(ctx context.Context, requestID, actorID string, choice models.Choice, reason string) (*models.Decision, error) {
	if choice != models.ChoiceApprove && choice != models.ChoiceReject {
		return nil, fmt.Errorf("invalid choice %q", choice)
	}

	g.mu.Lock()
	req, ok := g.pending[requestID]
	if !ok {
		_, wasTerminal := g.terminal[requestID]
		g.mu.Unlock()
		if wasTerminal {
			return nil, ErrNotPending
		}
		return nil, ErrNotFound
	}
	if !req.IsApprover(actorID) {
		g.mu.Unlock()
		return nil, ErrNotApprover
	}
	if req.DecisionBy(actorID) != nil {
		g.mu.Unlock()
		return nil, ErrAlreadyDecided
	}
	policy := g.byID[req.PolicyID]
	if actorID == req.RequesterID && (policy == nil || !policy.AllowSelfApproval) {
		g.mu.Unlock()
		return nil, ErrSelfApproval
	}

	decision := &models.Decision{
		ID:        uuid.New().String(),
		RequestID: requestID,
		DeciderID: actorID,
		Choice:    choice,
		Reason:    reason,
		CreatedAt: time.Now(),
	}
	req.Decisions = append(req.Decisions, decision)

	var resolved models.ApprovalState
	switch {
	case choice == models.ChoiceReject:
		resolved = models.ApprovalRejected
	case req.ApproveCount() >= req.RequiredCount:
		resolved = models.ApprovalApproved
	}
	var snapshot *models.ApprovalRequest
	if resolved != "" {
		g.resolveLocked(req, resolved)
		snapshot = req.Clone()
	}
	g.mu.Unlock()

	if err := g.store.InsertDecision(ctx, decision); err != nil {
		return nil, fmt.Errorf("persisting decision: %w", err)
	}
	verb := ActionDecisionApprove
	if choice == models.ChoiceReject {
		verb = ActionDecisionReject
	}
	g.audit(ctx, requestID, verb, actorID, models.AuditInfo, map[string]any{"reason": reason})
	g.publish(bus.TopicApprovalDecided, decision)

	if snapshot != nil {
		g.persistResolution(ctx, snapshot)
		switch snapshot.State {
		case models.ApprovalApproved:
			g.publish(bus.TopicApprovalGranted, snapshot)
		case models.ApprovalRejected:
			g.publish(bus.TopicApprovalRejected, snapshot)
		}
		slog.Info("Approval request resolved",
			"request_id", requestID, "state", snapshot.State, "decider", actorID)
	}
	return decision, nil
}

// Bypass short-circuits a pending request. The matched policy must allow
// bypass and the actor must hold one of its bypass roles. Every bypass is
// audited at critical severity.
func (g *Gate) Bypass(ctx context.Context, requestID, actorID, reason string, emergency map[string]any) (*models.ApprovalRequest, error) {
	g.mu.Lock()
	req, ok := g.pending[requestID]
	if !ok {
		_, wasTerminal := g.terminal[requestID]
		g.mu.Unlock()
		if wasTerminal {
			return nil, ErrNotPending
		}
		return nil, ErrNotFound
	}
	policy := g.byID[req.PolicyID]
	g.mu.Unlock()

	if policy == nil || !policy.AllowBypass {
		return nil, ErrBypassDenied
	}
	allowed := false
	for _, role := range policy.BypassRoles {
		ok, err := g.roles.HasRole(ctx, actorID, role)
		if err != nil {
			return nil, fmt.Errorf("checking bypass role: %w", err)
		}
		if ok {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrBypassRole
	}

	g.mu.Lock()
	req, ok = g.pending[requestID]
	if !ok {
		g.mu.Unlock()
		return nil, ErrNotPending
	}
	req.Bypass = &models.Bypass{By: actorID, Reason: reason, At: time.Now()}
	g.resolveLocked(req, models.ApprovalBypassed)
	snapshot := req.Clone()
	g.mu.Unlock()

	details := map[string]any{"reason": reason}
	for k, v := range emergency {
		details[k] = v
	}
	g.audit(ctx, requestID, ActionEmergencyBypass, actorID, models.AuditCritical, details)
	g.persistResolution(ctx, snapshot)
	g.publish(bus.TopicApprovalBypassed, snapshot)
	g.notify(ctx, Notification{
		RequestID:  requestID,
		Recipients: g.expandRecipients(ctx, policy.BypassRoles),
		Channels:   policy.NotifyChannels,
		Subject:    fmt.Sprintf("Emergency bypass: %s", snapshot.Title),
		Body:       fmt.Sprintf("%s bypassed request %s: %s", actorID, requestID, reason),
		Severity:   models.AuditCritical,
	})

	slog.Warn("Approval request bypassed",
		"request_id", requestID, "actor", actorID, "reason", reason)
	return snapshot, nil
}

// Cancel resolves a pending request as cancelled on behalf of the caller.
func (g *Gate) Cancel(ctx context.Context, requestID, actorID, reason string) error {
	g.mu.Lock()
	req, ok := g.pending[requestID]
	if !ok {
		_, wasTerminal := g.terminal[requestID]
		g.mu.Unlock()
		if wasTerminal {
			return ErrNotPending
		}
		return ErrNotFound
	}
	g.resolveLocked(req, models.ApprovalCancelled)
	snapshot := req.Clone()
	g.mu.Unlock()

	g.audit(ctx, requestID, ActionCancelled, actorID, models.AuditInfo, map[string]any{"reason": reason})
	g.persistResolution(ctx, snapshot)
	g.publish(bus.TopicApprovalExpired, snapshot)
	return nil
}

// Get returns a request by id, checking working memory before the durable
// store.
func (g *Gate) Get(ctx context.Context, requestID string) (*models.ApprovalRequest, error) {
	g.mu.Lock()
	if req, ok := g.pending[requestID]; ok {
		defer g.mu.Unlock()
		return req.Clone(), nil
	}
	if req, ok := g.terminal[requestID]; ok {
		defer g.mu.Unlock()
		return req.Clone(), nil
	}
	g.mu.Unlock()
	return g.store.GetRequest(ctx, requestID)
}

// PendingFor returns pending requests where the user is an approver or the
// requester, oldest first.
func (g *Gate) PendingFor(_ context.Context, userID string) []*models.ApprovalRequest {
	g.mu.Lock()
	defer g.mu.Unlock()

	var out []*models.ApprovalRequest
	for _, req := range g.pending {
		if req.RequesterID == userID || req.IsApprover(userID) {
			out = append(out, req.Clone())
		}
	}
	sortRequestsByAge(out)
	return out
}

// History returns the full trace of one request: the request, every
// decision, the audit log, and the notification-bearing audit entries.
func (g *Gate) History(ctx context.Context, requestID string) (*History, error) {
	req, err := g.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	audit, err := g.store.AuditFor(ctx, requestID)
	if err != nil {
		return nil, err
	}
	var notifications []*models.AuditEntry
	for _, entry := range audit {
		if entry.Action == ActionReminderSent || entry.Action == ActionEscalated {
			notifications = append(notifications, entry)
		}
	}
	return &History{
		Request:       req,
		Decisions:     req.Decisions,
		Audit:         audit,
		Notifications: notifications,
	}, nil
}

// Statistics summarizes requests submitted at or after the cutoff.
func (g *Gate) Statistics(ctx context.Context, since time.Time) (*Statistics, error) {
	requests, err := g.store.RequestsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	stats := &Statistics{
		Since:   since,
		ByState: make(map[models.ApprovalState]int),
		ByType:  make(map[models.ApprovalType]int),
		ByLevel: make(map[models.ApprovalLevel]int),
	}
	var resolutionMs float64
	var resolvedCount int
	for _, req := range requests {
		stats.Total++
		stats.ByState[req.State]++
		stats.ByType[req.Type]++
		stats.ByLevel[req.Level]++
		if req.State == models.ApprovalBypassed {
			stats.Bypasses++
		}
		stats.Escalations += req.EscalationLevel
		if req.ResolvedAt != nil {
			resolutionMs += float64(req.ResolvedAt.Sub(req.RequestedAt).Milliseconds())
			resolvedCount++
		}
	}
	if resolvedCount > 0 {
		stats.AvgResolutionMs = resolutionMs / float64(resolvedCount)
	}

	g.mu.Lock()
	stats.Pending = len(g.pending)
	g.mu.Unlock()
	return stats, nil
}

// PendingCount returns the size of the pending set.
func (g *Gate) PendingCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

// resolveLocked moves a pending request to a terminal state. Caller holds
// g.mu.
func (g *Gate) resolveLocked(req *models.ApprovalRequest, state models.ApprovalState) {
	req.State = state
	now := time.Now()
	req.ResolvedAt = &now
	delete(g.pending, req.ID)
	g.terminal[req.ID] = req
	g.cancelTimersLocked(req.ID)
}

func (g *Gate) cancelTimersLocked(requestID string) {
	for _, timer := range g.timers[requestID] {
		timer.Stop()
	}
	delete(g.timers, requestID)
}

// scheduleTimers arms the timeout task and one reminder per policy interval.
func (g *Gate) scheduleTimers(req *models.ApprovalRequest, policy *Policy, timeout time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, stillPending := g.pending[req.ID]; !stillPending {
		return
	}

	id := req.ID
	timers := []*time.Timer{
		time.AfterFunc(timeout, func() { g.onTimeout(id) }),
	}
	for _, interval := range policy.ReminderIntervals {
		if interval <= 0 || interval >= timeout {
			continue
		}
		timers = append(timers, time.AfterFunc(interval, func() { g.onReminder(id) }))
	}
	g.timers[id] = timers
}

// onTimeout fires when a request's dwell time is exhausted: escalate if the
// policy asks for it, then expire.
func (g *Gate) onTimeout(requestID string) {
	ctx := context.Background()

	g.mu.Lock()
	req, ok := g.pending[requestID]
	if !ok {
		g.mu.Unlock()
		return
	}
	policy := g.byID[req.PolicyID]
	var escalation *models.EscalationEntry
	if policy != nil && policy.EscalationNotify {
		req.EscalationLevel++
		entry := models.EscalationEntry{
			Level:      req.EscalationLevel,
			Recipients: append([]string(nil), policy.EscalationRecipients...),
			At:         time.Now(),
		}
		req.EscalationHistory = append(req.EscalationHistory, entry)
		escalation = &entry
	}
	g.resolveLocked(req, models.ApprovalExpired)
	snapshot := req.Clone()
	g.mu.Unlock()

	if escalation != nil {
		g.audit(ctx, requestID, ActionEscalated, "system", models.AuditWarning, map[string]any{
			"level":      escalation.Level,
			"recipients": escalation.Recipients,
		})
		g.notify(ctx, Notification{
			RequestID:  requestID,
			Recipients: escalation.Recipients,
			Channels:   policy.NotifyChannels,
			Subject:    fmt.Sprintf("Approval escalated: %s", snapshot.Title),
			Body:       fmt.Sprintf("Request %s expired unanswered at escalation level %d", requestID, escalation.Level),
			Severity:   models.AuditWarning,
		})
	}
	g.audit(ctx, requestID, ActionRequestExpired, "system", models.AuditWarning, nil)
	g.persistResolution(ctx, snapshot)
	g.publish(bus.TopicApprovalExpired, snapshot)

	slog.Warn("Approval request expired", "request_id", requestID,
		"escalated", escalation != nil)
}

// onReminder fires at each policy reminder interval while still pending.
func (g *Gate) onReminder(requestID string) {
	ctx := context.Background()

	g.mu.Lock()
	req, ok := g.pending[requestID]
	if !ok {
		g.mu.Unlock()
		return
	}
	policy := g.byID[req.PolicyID]
	snapshot := req.Clone()
	g.mu.Unlock()

	g.audit(ctx, requestID, ActionReminderSent, "system", models.AuditInfo, map[string]any{
		"approvers": snapshot.Approvers,
	})
	channels := []string{"websocket"}
	if policy != nil {
		channels = policy.NotifyChannels
	}
	g.notify(ctx, Notification{
		RequestID:  requestID,
		Recipients: snapshot.Approvers,
		Channels:   channels,
		Subject:    fmt.Sprintf("Approval reminder: %s", snapshot.Title),
		Body:       fmt.Sprintf("Request %s is still awaiting decision (expires %s)", requestID, snapshot.ExpiresAt.Format(time.RFC3339)),
		Severity:   models.AuditInfo,
	})
}

// evictLoop drops terminal requests from working memory after the retention
// window.
func (g *Gate) evictLoop() {
	defer g.wg.Done()
	ticker := time.NewTicker(evictInterval)
	defer ticker.Stop()

	for {
		select {
		case <-g.stopCh:
			return
		case <-ticker.C:
			g.evictTerminal(time.Now().Add(-terminalRetention))
		}
	}
}

func (g *Gate) evictTerminal(cutoff time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for id, req := range g.terminal {
		if req.ResolvedAt != nil && req.ResolvedAt.Before(cutoff) {
			delete(g.terminal, id)
		}
	}
}

func (g *Gate) persistResolution(ctx context.Context, req *models.ApprovalRequest) {
	if err := g.store.UpdateRequest(ctx, req); err != nil {
		slog.Error("Failed to persist approval resolution",
			"request_id", req.ID, "state", req.State, "error", err)
	}
}

func (g *Gate) audit(ctx context.Context, requestID, action, actor string, severity models.AuditSeverity, details map[string]any) {
	entry := &models.AuditEntry{
		ID:        uuid.New().String(),
		RequestID: requestID,
		Action:    action,
		Actor:     actor,
		Severity:  severity,
		Details:   details,
		CreatedAt: time.Now(),
	}
	if err := g.store.AppendAudit(ctx, entry); err != nil {
		slog.Error("Failed to append audit entry",
			"request_id", requestID, "action", action, "error", err)
	}
}

func (g *Gate) notify(ctx context.Context, n Notification) {
	if g.notifier == nil {
		return
	}
	g.notifier.Send(ctx, n)
}

func (g *Gate) publish(topic bus.Topic, payload any) {
	if g.events == nil {
		return
	}
	g.events.Publish(topic, payload)
}

// expandRecipients resolves role names to their members; entries that name
// no role pass through as literal user ids.
func (g *Gate) expandRecipients(ctx context.Context, entries []string) []string {
	var out []string
	for _, entry := range entries {
		members, err := g.roles.UsersInRole(ctx, entry)
		if err != nil || len(members) == 0 {
			out = append(out, entry)
			continue
		}
		out = mergeApprovers(out, members)
	}
	return out
}

func mergeApprovers(base, extra []string) []string {
	out := append([]string(nil), base...)
	for _, candidate := range extra {
		seen := false
		for _, existing := range out {
			if existing == candidate {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, candidate)
		}
	}
	return out
}

func sortRequestsByAge(requests []*models.ApprovalRequest) {
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].RequestedAt.Before(requests[j].RequestedAt)
	})
}
