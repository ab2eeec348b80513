// Package dispatch runs the task queue: it orders submitted tasks by
// priority, gates them on dependencies, approvals, and resource locks, and
// hands runnable tasks to the spawner. A task is dispatched at most once;
// cancellation is the only exit before a terminal state.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MiniSankaz/fleetd/pkg/approval"
	"github.com/MiniSankaz/fleetd/pkg/bus"
	"github.com/MiniSankaz/fleetd/pkg/config"
	"github.com/MiniSankaz/fleetd/pkg/lock"
	"github.com/MiniSankaz/fleetd/pkg/models"
	"github.com/MiniSankaz/fleetd/pkg/spawner"
)

const (
	// terminalRetention bounds how long finished task states stay queryable.
	terminalRetention = time.Hour
	sweepInterval     = 5 * time.Minute
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrDuplicateTask  = errors.New("duplicate task id")
	ErrTaskTerminal   = errors.New("task already terminal")
	ErrTaskDispatched = errors.New("task already dispatched")
)

// progressPattern matches self-reported completion percentages in agent
// stdout, e.g. "Progress: 40%".
var progressPattern = regexp.MustCompile(`(?i)progress[:=\s]+(\d{1,3})%`)

// ApprovalGate is the slice of the approval gate the dispatcher needs.
// Satisfied by *approval.Gate.
type ApprovalGate interface {
	Submit(ctx context.Context, input approval.SubmitInput) (*models.ApprovalRequest, error)
	Cancel(ctx context.Context, requestID, actorID, reason string) error
}

// LockManager acquires and releases resource locks. Satisfied by
// *lock.Manager.
type LockManager interface {
	Acquire(ctx context.Context, req lock.AcquireRequest) (*lock.AcquireResult, error)
	ReleaseAllByOwner(ctx context.Context, ownerID string) (int, error)
}

// AgentSpawner launches and terminates agent subprocesses. Satisfied by
// *spawner.Spawner.
type AgentSpawner interface {
	Spawn(ctx context.Context, task *models.Task, agentType models.AgentType, overrides *models.AgentConfig) (*spawner.SpawnResult, error)
	Terminate(agentID string) bool
}

// ProgressEvent is published on task:progress when an agent reports a
// completion percentage.
type ProgressEvent struct {
	TaskID   string `json:"task_id"`
	AgentID  string `json:"agent_id"`
	Progress int    `json:"progress"`
}

// entry is the dispatcher's internal per-task record.
type entry struct {
	task      *models.Task
	seq       int
	status    models.TaskStatus
	agentType models.AgentType

	agentID         string
	approvalID      string
	approvalGranted bool
	progress        int
	reason          string
	updatedAt       time.Time
	endedAt         time.Time

	// waits maps outstanding lock wait ids to the lock key they are queued
	// on. A task with outstanding waits keeps its queue position and is
	// skipped until the grants arrive.
	waits map[string]string

	holdsLocks      bool
	spawnPending    bool
	cancelRequested bool
}

// Dispatcher owns the task queue and the dispatch loop.
type Dispatcher struct {
	registry *config.AgentRegistry
	gate     ApprovalGate
	locks    LockManager
	agents   AgentSpawner
	events   *bus.Bus

	mu         sync.Mutex
	entries    map[string]*entry
	byAgent    map[string]string
	byApproval map[string]string
	byWait     map[string]string
	seq        int

	kick     chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a dispatcher. gate may be nil, which disables approval gating
// entirely; locks, agents, and events are required.
func New(registry *config.AgentRegistry, gate ApprovalGate, locks LockManager, agents AgentSpawner, events *bus.Bus) *Dispatcher {
	if registry == nil {
		panic("dispatch: registry is required")
	}
	if locks == nil {
		panic("dispatch: lock manager is required")
	}
	if agents == nil {
		panic("dispatch: spawner is required")
	}
	if events == nil {
		panic("dispatch: event bus is required")
	}
	return &Dispatcher{
		registry:   registry,
		gate:       gate,
		locks:      locks,
		agents:     agents,
		events:     events,
		entries:    make(map[string]*entry),
		byAgent:    make(map[string]string),
		byApproval: make(map[string]string),
		byWait:     make(map[string]string),
		kick:       make(chan struct{}, 1),
		stopCh:     make(chan struct{}),
	}
}

// Start launches the dispatch loop and the terminal-state sweep.
func (d *Dispatcher) Start() {
	d.wg.Add(2)
	go d.run()
	go d.sweepLoop()
}

// Stop halts the loops. Already-dispatched agents keep running.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
	d.wg.Wait()
}

// Submit enqueues a task and returns its id. An empty task id is assigned;
// a known id is refused.
func (d *Dispatcher) Submit(_ context.Context, task *models.Task) (string, error) {
	if task == nil {
		return "", fmt.Errorf("task is required")
	}
	if task.Prompt == "" {
		return "", fmt.Errorf("task prompt is required")
	}

	t := task.Clone()
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	d.mu.Lock()
	if _, exists := d.entries[t.ID]; exists {
		d.mu.Unlock()
		return "", ErrDuplicateTask
	}
	d.seq++
	e := &entry{
		task:      t,
		seq:       d.seq,
		status:    models.TaskStatusQueued,
		updatedAt: time.Now(),
		waits:     make(map[string]string),
	}
	d.entries[t.ID] = e
	snapshot := d.stateLocked(e)
	d.mu.Unlock()

	d.events.Publish(bus.TopicTaskQueued, snapshot)
	slog.Info("Task queued", "task_id", t.ID, "priority", t.Priority)
	d.wake()
	return t.ID, nil
}

// Cancel removes an undispatched task from the queue, or asks the spawner to
// terminate a dispatched one. Dispatched tasks reach their terminal state
// when the subprocess exits.
func (d *Dispatcher) Cancel(ctx context.Context, taskID string) error {
	d.mu.Lock()
	e, ok := d.entries[taskID]
	if !ok {
		d.mu.Unlock()
		return ErrTaskNotFound
	}
	if e.status.IsTerminal() {
		d.mu.Unlock()
		return ErrTaskTerminal
	}

	if e.status == models.TaskStatusDispatched {
		e.cancelRequested = true
		agentID := e.agentID
		d.mu.Unlock()
		if agentID != "" {
			d.agents.Terminate(agentID)
		}
		return nil
	}

	approvalID := ""
	if e.approvalID != "" && !e.approvalGranted {
		approvalID = e.approvalID
	}
	e.cancelRequested = true
	d.resolveLocked(e, models.TaskStatusCancelled, "cancelled by caller")
	snapshot := d.stateLocked(e)
	holds := e.holdsLocks
	d.mu.Unlock()

	if approvalID != "" {
		if err := d.gate.Cancel(ctx, approvalID, "dispatcher", "task cancelled"); err != nil {
			slog.Warn("Cancelling approval request failed", "task_id", taskID, "request_id", approvalID, "error", err)
		}
	}
	if holds {
		d.releaseLocks(ctx, taskID)
	}
	d.events.Publish(bus.TopicTaskCancelled, snapshot)
	slog.Info("Task cancelled", "task_id", taskID)
	d.wake()
	return nil
}

// Reprioritize changes a task's queue priority. Only undispatched tasks can
// move.
func (d *Dispatcher) Reprioritize(taskID string, priority int) error {
	d.mu.Lock()
	e, ok := d.entries[taskID]
	if !ok {
		d.mu.Unlock()
		return ErrTaskNotFound
	}
	if e.status.IsTerminal() {
		d.mu.Unlock()
		return ErrTaskTerminal
	}
	if e.status == models.TaskStatusDispatched {
		d.mu.Unlock()
		return ErrTaskDispatched
	}
	e.task.Priority = priority
	e.updatedAt = time.Now()
	d.mu.Unlock()

	d.wake()
	return nil
}

// Status returns a snapshot of one task, or nil when the id is unknown (or
// already evicted).
func (d *Dispatcher) Status(taskID string) *models.TaskState {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.entries[taskID]
	if !ok {
		return nil
	}
	return d.stateLocked(e)
}

// Queue returns the pending tasks in dispatch order: priority descending,
// submission order within a priority.
func (d *Dispatcher) Queue() []*models.TaskState {
	d.mu.Lock()
	defer d.mu.Unlock()

	pending := d.pendingLocked()
	out := make([]*models.TaskState, 0, len(pending))
	for _, e := range pending {
		out = append(out, d.stateLocked(e))
	}
	return out
}

// run is the dispatch loop. It reacts to queue changes and to the bus events
// that unblock gated tasks.
func (d *Dispatcher) run() {
	defer d.wg.Done()

	sub := d.events.Subscribe(
		bus.TopicAgentSpawned,
		bus.TopicAgentCompleted,
		bus.TopicAgentTerminated,
		bus.TopicAgentError,
		bus.TopicAgentOutput,
		bus.TopicApprovalGranted,
		bus.TopicApprovalBypassed,
		bus.TopicApprovalRejected,
		bus.TopicApprovalExpired,
		bus.TopicLockGrantedFromQueue,
	)
	defer sub.Close()

	for {
		select {
		case <-d.stopCh:
			return
		case <-d.kick:
			d.pass()
		case evt := <-sub.C():
			d.handleEvent(evt)
		}
	}
}

// pass walks the pending queue in priority order and advances every task
// whose gates are clear.
func (d *Dispatcher) pass() {
	ctx := context.Background()
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, e := range d.pendingLocked() {
		if e.status != models.TaskStatusQueued || len(e.waits) > 0 {
			continue
		}
		if !d.dependenciesMetLocked(e) {
			continue
		}

		if e.agentType == "" {
			e.agentType = e.task.AgentType
			if e.agentType == "" {
				e.agentType = config.InferAgentType(e.task.Description, e.task.Prompt)
			}
		}
		cfg := d.registry.ConfigFor(e.agentType)

		if !d.ensureApprovalLocked(ctx, e, cfg) {
			continue
		}
		if !d.acquireLocksLocked(ctx, e) {
			continue
		}
		d.handoffLocked(ctx, e)
	}
}

// dependenciesMetLocked reports whether every dependency has reached a
// terminal state. Unknown ids count as unmet; the dependency may simply not
// have been submitted yet.
func (d *Dispatcher) dependenciesMetLocked(e *entry) bool {
	for _, dep := range e.task.Dependencies {
		other, ok := d.entries[dep]
		if !ok || !other.status.IsTerminal() {
			return false
		}
	}
	return true
}

// ensureApprovalLocked submits an approval request when the task is guarded
// and one is not already resolved. Returns true when the task may proceed to
// lock acquisition.
func (d *Dispatcher) ensureApprovalLocked(ctx context.Context, e *entry, cfg models.AgentConfig) bool {
	if e.approvalGranted {
		return true
	}
	if d.gate == nil {
		return true
	}

	input, guarded := approvalInput(e.task, e.agentType, cfg)
	if !guarded {
		return true
	}

	req, err := d.gate.Submit(ctx, input)
	if err != nil {
		if errors.Is(err, approval.ErrNoPolicy) {
			// No policy claims the operation; it runs unguarded.
			e.approvalGranted = true
			return true
		}
		d.resolveLocked(e, models.TaskStatusFailed, "approval submit: "+err.Error())
		d.finishLocked(ctx, e)
		return false
	}

	e.approvalID = req.ID
	e.status = models.TaskStatusAwaitingApproval
	e.reason = "awaiting approval"
	e.updatedAt = time.Now()
	d.byApproval[req.ID] = e.task.ID
	slog.Info("Task awaiting approval", "task_id", e.task.ID, "request_id", req.ID)
	return false
}

// acquireLocksLocked acquires the task's resource locks. When any lock is
// queued the task keeps its place in line and is retried on the grant event.
func (d *Dispatcher) acquireLocksLocked(ctx context.Context, e *entry) bool {
	if e.holdsLocks || len(e.task.Locks) == 0 {
		return true
	}

	queued := false
	for _, ref := range e.task.Locks {
		res, err := d.locks.Acquire(ctx, lock.AcquireRequest{
			Resource:   ref.Type,
			ResourceID: ref.ID,
			OwnerID:    e.task.ID,
			Priority:   e.task.Priority,
			Metadata:   map[string]any{"task_id": e.task.ID},
		})
		if err != nil {
			d.releaseLocksAsync(e.task.ID)
			d.resolveLocked(e, models.TaskStatusFailed, fmt.Sprintf("acquiring lock %s: %v", ref.Key(), err))
			d.finishLocked(ctx, e)
			return false
		}
		if res.Queued {
			e.waits[res.WaitID] = ref.Key()
			d.byWait[res.WaitID] = e.task.ID
			queued = true
			continue
		}
	}

	e.holdsLocks = true
	if queued {
		e.reason = "waiting on locks"
		e.updatedAt = time.Now()
		return false
	}
	return true
}

// handoffLocked hands the task to the spawner and marks it dispatched. A
// backlog admission still counts as dispatched; the agent binds when the
// spawned event arrives.
func (d *Dispatcher) handoffLocked(ctx context.Context, e *entry) {
	res, err := d.agents.Spawn(ctx, e.task, e.agentType, nil)
	if err != nil {
		d.releaseLocksAsync(e.task.ID)
		d.resolveLocked(e, models.TaskStatusFailed, "spawn: "+err.Error())
		d.finishLocked(ctx, e)
		return
	}

	e.status = models.TaskStatusDispatched
	e.updatedAt = time.Now()
	if res.Queued {
		e.spawnPending = true
		e.reason = "awaiting spawn capacity"
	} else {
		e.agentID = res.AgentID
		e.reason = ""
		d.byAgent[res.AgentID] = e.task.ID
	}
	d.events.Publish(bus.TopicTaskDispatched, d.stateLocked(e))
	slog.Info("Task dispatched",
		"task_id", e.task.ID,
		"agent_type", e.agentType,
		"agent_id", e.agentID,
		"backlogged", res.Queued)
}

func (d *Dispatcher) handleEvent(evt bus.Event) {
	switch evt.Topic {
	case bus.TopicAgentSpawned:
		if agent, ok := evt.Payload.(*models.Agent); ok {
			d.bindAgent(agent)
		}
	case bus.TopicAgentCompleted:
		if agent, ok := evt.Payload.(*models.Agent); ok {
			d.agentFinished(agent, models.TaskStatusCompleted, "")
		}
	case bus.TopicAgentTerminated:
		if agent, ok := evt.Payload.(*models.Agent); ok {
			d.agentFinished(agent, models.TaskStatusFailed, "agent terminated")
		}
	case bus.TopicAgentError:
		if agent, ok := evt.Payload.(*models.Agent); ok {
			reason := agent.Error
			if reason == "" && agent.ExitCode != nil {
				reason = "agent exited with code " + strconv.Itoa(*agent.ExitCode)
			}
			d.agentFinished(agent, models.TaskStatusFailed, reason)
		}
	case bus.TopicAgentOutput:
		if out, ok := evt.Payload.(spawner.OutputEvent); ok {
			d.recordProgress(out)
		}
	case bus.TopicApprovalGranted, bus.TopicApprovalBypassed:
		if req, ok := evt.Payload.(*models.ApprovalRequest); ok {
			d.approvalResolved(req, true)
		}
	case bus.TopicApprovalRejected, bus.TopicApprovalExpired:
		if req, ok := evt.Payload.(*models.ApprovalRequest); ok {
			d.approvalResolved(req, false)
		}
	case bus.TopicLockGrantedFromQueue:
		if grant, ok := evt.Payload.(lock.GrantedEvent); ok {
			d.lockGranted(grant)
		}
	}
}

// bindAgent attaches a backlogged task to the agent the spawner finally
// launched for it.
func (d *Dispatcher) bindAgent(agent *models.Agent) {
	d.mu.Lock()
	e, ok := d.entries[agent.TaskID]
	if !ok || !e.spawnPending {
		d.mu.Unlock()
		return
	}
	e.spawnPending = false
	e.agentID = agent.ID
	e.reason = ""
	e.updatedAt = time.Now()
	d.byAgent[agent.ID] = e.task.ID
	terminate := e.cancelRequested
	d.mu.Unlock()

	if terminate {
		d.agents.Terminate(agent.ID)
	}
}

// agentFinished moves a dispatched task to its terminal state when its agent
// exits.
func (d *Dispatcher) agentFinished(agent *models.Agent, status models.TaskStatus, reason string) {
	ctx := context.Background()
	d.mu.Lock()
	taskID, ok := d.byAgent[agent.ID]
	if !ok {
		d.mu.Unlock()
		return
	}
	e := d.entries[taskID]
	if e == nil || e.status.IsTerminal() {
		d.mu.Unlock()
		return
	}
	if e.cancelRequested {
		status = models.TaskStatusCancelled
		reason = "cancelled by caller"
	}
	if status == models.TaskStatusCompleted {
		e.progress = 100
	}
	d.resolveLocked(e, status, reason)
	d.finishLocked(ctx, e)
	d.mu.Unlock()
}

// recordProgress parses self-reported percentages out of agent stdout.
func (d *Dispatcher) recordProgress(out spawner.OutputEvent) {
	if out.Stream != "stdout" {
		return
	}
	m := progressPattern.FindStringSubmatch(out.Line)
	if m == nil {
		return
	}
	pct, err := strconv.Atoi(m[1])
	if err != nil || pct > 100 {
		return
	}

	d.mu.Lock()
	taskID, ok := d.byAgent[out.AgentID]
	if !ok {
		d.mu.Unlock()
		return
	}
	e := d.entries[taskID]
	if e == nil || e.status.IsTerminal() || pct <= e.progress {
		d.mu.Unlock()
		return
	}
	e.progress = pct
	e.updatedAt = time.Now()
	d.mu.Unlock()

	d.events.Publish(bus.TopicTaskProgress, ProgressEvent{
		TaskID:   taskID,
		AgentID:  out.AgentID,
		Progress: pct,
	})
}

// approvalResolved reacts to the approval request a task is parked on.
func (d *Dispatcher) approvalResolved(req *models.ApprovalRequest, granted bool) {
	ctx := context.Background()
	d.mu.Lock()
	taskID, ok := d.byApproval[req.ID]
	if !ok {
		d.mu.Unlock()
		return
	}
	delete(d.byApproval, req.ID)
	e := d.entries[taskID]
	if e == nil || e.status != models.TaskStatusAwaitingApproval {
		d.mu.Unlock()
		return
	}

	if granted {
		e.approvalGranted = true
		e.status = models.TaskStatusQueued
		e.reason = ""
		e.updatedAt = time.Now()
		d.mu.Unlock()
		slog.Info("Task approval granted", "task_id", taskID, "request_id", req.ID)
		d.wake()
		return
	}

	d.resolveLocked(e, models.TaskStatusFailed, "approval "+string(req.State))
	d.finishLocked(ctx, e)
	d.mu.Unlock()
}

// lockGranted clears one outstanding wait; when the last one resolves the
// task becomes runnable again.
func (d *Dispatcher) lockGranted(grant lock.GrantedEvent) {
	d.mu.Lock()
	taskID, ok := d.byWait[grant.WaitID]
	if !ok {
		d.mu.Unlock()
		return
	}
	delete(d.byWait, grant.WaitID)
	e := d.entries[taskID]
	if e == nil {
		d.mu.Unlock()
		return
	}
	delete(e.waits, grant.WaitID)
	runnable := len(e.waits) == 0 && e.status == models.TaskStatusQueued
	if runnable {
		e.reason = ""
		e.updatedAt = time.Now()
	}
	d.mu.Unlock()

	if runnable {
		d.wake()
	}
}

// resolveLocked records a terminal state. Publication and lock release are
// handled by finishLocked or by the caller.
func (d *Dispatcher) resolveLocked(e *entry, status models.TaskStatus, reason string) {
	for waitID := range e.waits {
		delete(d.byWait, waitID)
	}
	e.waits = make(map[string]string)
	e.status = status
	e.reason = reason
	e.updatedAt = time.Now()
	e.endedAt = e.updatedAt
}

// finishLocked publishes the terminal event for a resolved task and releases
// its locks. Called with d.mu held; the release itself runs off-thread.
func (d *Dispatcher) finishLocked(_ context.Context, e *entry) {
	if e.holdsLocks {
		e.holdsLocks = false
		d.releaseLocksAsync(e.task.ID)
	}
	snapshot := d.stateLocked(e)

	var topic bus.Topic
	switch e.status {
	case models.TaskStatusCompleted:
		topic = bus.TopicTaskCompleted
	case models.TaskStatusCancelled:
		topic = bus.TopicTaskCancelled
	default:
		topic = bus.TopicTaskFailed
	}
	d.events.Publish(topic, snapshot)
	slog.Info("Task finished", "task_id", e.task.ID, "status", e.status, "reason", e.reason)
	d.wake()
}

// releaseLocksAsync releases every lock owned by the task without blocking
// the dispatch loop on the backend.
func (d *Dispatcher) releaseLocksAsync(taskID string) {
	go d.releaseLocks(context.Background(), taskID)
}

func (d *Dispatcher) releaseLocks(ctx context.Context, taskID string) {
	if _, err := d.locks.ReleaseAllByOwner(ctx, taskID); err != nil {
		slog.Warn("Releasing task locks failed", "task_id", taskID, "error", err)
	}
}

// pendingLocked returns undispatched entries in dispatch order.
func (d *Dispatcher) pendingLocked() []*entry {
	var pending []*entry
	for _, e := range d.entries {
		if e.status == models.TaskStatusQueued || e.status == models.TaskStatusAwaitingApproval {
			pending = append(pending, e)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		if pending[i].task.Priority != pending[j].task.Priority {
			return pending[i].task.Priority > pending[j].task.Priority
		}
		return pending[i].seq < pending[j].seq
	})
	return pending
}

func (d *Dispatcher) stateLocked(e *entry) *models.TaskState {
	return &models.TaskState{
		Task:       e.task.Clone(),
		Status:     e.status,
		AgentID:    e.agentID,
		ApprovalID: e.approvalID,
		Progress:   e.progress,
		Reason:     e.reason,
		UpdatedAt:  e.updatedAt,
	}
}

// wake schedules a dispatch pass. Coalesces with an already-pending one.
func (d *Dispatcher) wake() {
	select {
	case d.kick <- struct{}{}:
	default:
	}
}

func (d *Dispatcher) sweepLoop() {
	defer d.wg.Done()
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-d.stopCh:
			return
		case <-ticker.C:
			d.evictTerminal(time.Now().Add(-terminalRetention))
		}
	}
}

// evictTerminal drops terminal task states older than the cutoff.
func (d *Dispatcher) evictTerminal(cutoff time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for id, e := range d.entries {
		if !e.status.IsTerminal() || e.endedAt.After(cutoff) {
			continue
		}
		delete(d.entries, id)
		if e.agentID != "" {
			delete(d.byAgent, e.agentID)
		}
		if e.approvalID != "" {
			delete(d.byApproval, e.approvalID)
		}
	}
}
