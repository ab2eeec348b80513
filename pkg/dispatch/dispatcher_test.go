package dispatch

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiniSankaz/fleetd/pkg/approval"
	"github.com/MiniSankaz/fleetd/pkg/bus"
	"github.com/MiniSankaz/fleetd/pkg/config"
	"github.com/MiniSankaz/fleetd/pkg/lock"
	"github.com/MiniSankaz/fleetd/pkg/models"
	"github.com/MiniSankaz/fleetd/pkg/spawner"
)

// fakeGate records approval submissions and hands out pending requests.
type fakeGate struct {
	mu        sync.Mutex
	submits   []approval.SubmitInput
	cancelled []string
	err       error
	seq       int
}

func (g *fakeGate) Submit(_ context.Context, input approval.SubmitInput) (*models.ApprovalRequest, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.submits = append(g.submits, input)
	g.seq++
	return &models.ApprovalRequest{
		ID:    fmt.Sprintf("req-%d", g.seq),
		Type:  input.Type,
		State: models.ApprovalPending,
	}, nil
}

func (g *fakeGate) Cancel(_ context.Context, requestID, _, _ string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelled = append(g.cancelled, requestID)
	return nil
}

func (g *fakeGate) submitted() []approval.SubmitInput {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]approval.SubmitInput(nil), g.submits...)
}

// fakeLocks grants every acquire unless a key is marked busy, in which case
// the caller is queued.
type fakeLocks struct {
	mu       sync.Mutex
	busy     map[string]bool
	waitSeq  int
	released []string
}

func (l *fakeLocks) Acquire(_ context.Context, req lock.AcquireRequest) (*lock.AcquireResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := models.LockKey(req.Resource, req.ResourceID)
	if l.busy[key] {
		l.waitSeq++
		return &lock.AcquireResult{
			Queued:   true,
			WaitID:   fmt.Sprintf("wait-%d", l.waitSeq),
			Position: 1,
		}, nil
	}
	return &lock.AcquireResult{Lock: &models.Lock{
		ID:         fmt.Sprintf("lock-%s", key),
		Resource:   req.Resource,
		ResourceID: req.ResourceID,
		OwnerID:    req.OwnerID,
	}}, nil
}

func (l *fakeLocks) ReleaseAllByOwner(_ context.Context, ownerID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.released = append(l.released, ownerID)
	return 1, nil
}

func (l *fakeLocks) releasedOwners() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.released...)
}

// fakeSpawner hands out agent ids in order, or backlogs when capacity is
// exhausted.
type fakeSpawner struct {
	mu         sync.Mutex
	backlogged bool
	spawned    []string
	terminated []string
	seq        int
}

func (s *fakeSpawner) Spawn(_ context.Context, task *models.Task, _ models.AgentType, _ *models.AgentConfig) (*spawner.SpawnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spawned = append(s.spawned, task.ID)
	if s.backlogged {
		return &spawner.SpawnResult{Queued: true, Position: 1}, nil
	}
	s.seq++
	return &spawner.SpawnResult{AgentID: fmt.Sprintf("agent-%d", s.seq)}, nil
}

func (s *fakeSpawner) Terminate(agentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terminated = append(s.terminated, agentID)
	return true
}

func (s *fakeSpawner) spawnedTasks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.spawned...)
}

func (s *fakeSpawner) terminatedAgents() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.terminated...)
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *fakeGate, *fakeLocks, *fakeSpawner, *bus.Bus) {
	t.Helper()
	gate := &fakeGate{}
	locks := &fakeLocks{busy: make(map[string]bool)}
	agents := &fakeSpawner{}
	events := bus.New()
	d := New(config.NewAgentRegistry(), gate, locks, agents, events)
	d.Start()
	t.Cleanup(d.Stop)
	return d, gate, locks, agents, events
}

func waitForTaskStatus(t *testing.T, d *Dispatcher, taskID string, status models.TaskStatus) *models.TaskState {
	t.Helper()
	require.Eventually(t, func() bool {
		state := d.Status(taskID)
		return state != nil && state.Status == status
	}, 5*time.Second, 10*time.Millisecond)
	return d.Status(taskID)
}

func TestSubmitDispatchesRunnableTask(t *testing.T) {
	d, _, _, agents, events := newTestDispatcher(t)
	dispatched := events.Subscribe(bus.TopicTaskDispatched)
	defer dispatched.Close()

	id, err := d.Submit(context.Background(), &models.Task{
		Description: "run tests",
		Prompt:      "run the suite",
		UserID:      "user-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	state := waitForTaskStatus(t, d, id, models.TaskStatusDispatched)
	assert.Equal(t, "agent-1", state.AgentID)
	assert.Equal(t, []string{id}, agents.spawnedTasks())

	select {
	case evt := <-dispatched.C():
		snap, ok := evt.Payload.(*models.TaskState)
		require.True(t, ok)
		assert.Equal(t, id, snap.Task.ID)
	case <-time.After(time.Second):
		t.Fatal("expected task:dispatched event")
	}
}

func TestSubmitValidation(t *testing.T) {
	d, _, _, _, _ := newTestDispatcher(t)
	ctx := context.Background()

	_, err := d.Submit(ctx, nil)
	assert.Error(t, err)
	_, err = d.Submit(ctx, &models.Task{Description: "no prompt"})
	assert.Error(t, err)

	_, err = d.Submit(ctx, &models.Task{ID: "dup", Prompt: "p"})
	require.NoError(t, err)
	_, err = d.Submit(ctx, &models.Task{ID: "dup", Prompt: "p"})
	assert.ErrorIs(t, err, ErrDuplicateTask)
}

func TestDispatchOrderFollowsPriority(t *testing.T) {
	gate := &fakeGate{}
	locks := &fakeLocks{busy: make(map[string]bool)}
	agents := &fakeSpawner{}
	events := bus.New()
	d := New(config.NewAgentRegistry(), gate, locks, agents, events)
	t.Cleanup(d.Stop)

	// Enqueue before the loop runs so a single pass orders all three.
	ctx := context.Background()
	for _, task := range []*models.Task{
		{ID: "low", Priority: 1, Prompt: "p"},
		{ID: "high", Priority: 10, Prompt: "p"},
		{ID: "mid", Priority: 5, Prompt: "p"},
	} {
		_, err := d.Submit(ctx, task)
		require.NoError(t, err)
	}
	d.Start()

	require.Eventually(t, func() bool { return len(agents.spawnedTasks()) == 3 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"high", "mid", "low"}, agents.spawnedTasks())
}

func TestDependencyGating(t *testing.T) {
	d, _, locks, agents, events := newTestDispatcher(t)
	ctx := context.Background()

	first, err := d.Submit(ctx, &models.Task{ID: "first", Prompt: "p"})
	require.NoError(t, err)
	second, err := d.Submit(ctx, &models.Task{ID: "second", Prompt: "p", Dependencies: []string{"first"}})
	require.NoError(t, err)

	state := waitForTaskStatus(t, d, first, models.TaskStatusDispatched)
	// The dependent holds until its dependency is terminal.
	assert.Equal(t, models.TaskStatusQueued, d.Status(second).Status)

	events.Publish(bus.TopicAgentCompleted, &models.Agent{ID: state.AgentID, TaskID: first})

	done := waitForTaskStatus(t, d, first, models.TaskStatusCompleted)
	assert.Equal(t, 100, done.Progress)
	waitForTaskStatus(t, d, second, models.TaskStatusDispatched)

	// Terminal tasks release whatever they own.
	require.Eventually(t, func() bool {
		for _, owner := range locks.releasedOwners() {
			if owner == first {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{first, second}, agents.spawnedTasks())
}

func TestUnknownDependencyHoldsTask(t *testing.T) {
	d, _, _, agents, _ := newTestDispatcher(t)

	id, err := d.Submit(context.Background(), &models.Task{Prompt: "p", Dependencies: []string{"never-submitted"}})
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, models.TaskStatusQueued, d.Status(id).Status)
	assert.Empty(t, agents.spawnedTasks())
}

func TestApprovalGrantUnblocksTask(t *testing.T) {
	d, gate, _, _, events := newTestDispatcher(t)

	// The architect role forces an approval round-trip.
	id, err := d.Submit(context.Background(), &models.Task{
		Description: "design the architecture",
		Prompt:      "propose a design",
		UserID:      "user-1",
	})
	require.NoError(t, err)

	state := waitForTaskStatus(t, d, id, models.TaskStatusAwaitingApproval)
	require.NotEmpty(t, state.ApprovalID)

	submits := gate.submitted()
	require.Len(t, submits, 1)
	assert.Equal(t, models.ApprovalSystemConfiguration, submits[0].Type)
	assert.Equal(t, models.RiskHigh, submits[0].Operation.Risk)
	assert.Equal(t, "user-1", submits[0].RequesterID)
	assert.Equal(t, "agents/technical-architect", submits[0].Operation.Resource)

	events.Publish(bus.TopicApprovalGranted, &models.ApprovalRequest{
		ID:    state.ApprovalID,
		State: models.ApprovalApproved,
	})
	waitForTaskStatus(t, d, id, models.TaskStatusDispatched)
	// One approval round-trip per task.
	assert.Len(t, gate.submitted(), 1)
}

func TestApprovalRejectionFailsTask(t *testing.T) {
	d, _, _, agents, events := newTestDispatcher(t)

	id, err := d.Submit(context.Background(), &models.Task{
		Description: "design the schema",
		Prompt:      "architecture work",
	})
	require.NoError(t, err)

	state := waitForTaskStatus(t, d, id, models.TaskStatusAwaitingApproval)
	events.Publish(bus.TopicApprovalRejected, &models.ApprovalRequest{
		ID:    state.ApprovalID,
		State: models.ApprovalRejected,
	})

	failed := waitForTaskStatus(t, d, id, models.TaskStatusFailed)
	assert.Equal(t, "approval rejected", failed.Reason)
	assert.Empty(t, agents.spawnedTasks())
}

func TestContextDeclaredApprovalType(t *testing.T) {
	d, gate, _, _, events := newTestDispatcher(t)

	id, err := d.Submit(context.Background(), &models.Task{
		Prompt: "deploy it",
		Context: map[string]any{
			ContextApprovalType: "code-deployment",
			ContextRisk:         "critical",
			ContextResource:     "production/api",
		},
	})
	require.NoError(t, err)

	state := waitForTaskStatus(t, d, id, models.TaskStatusAwaitingApproval)
	submits := gate.submitted()
	require.Len(t, submits, 1)
	assert.Equal(t, models.ApprovalCodeDeployment, submits[0].Type)
	assert.Equal(t, models.RiskCritical, submits[0].Operation.Risk)
	assert.Equal(t, "production/api", submits[0].Operation.Resource)

	events.Publish(bus.TopicApprovalBypassed, &models.ApprovalRequest{
		ID:    state.ApprovalID,
		State: models.ApprovalBypassed,
	})
	waitForTaskStatus(t, d, id, models.TaskStatusDispatched)
}

func TestNoMatchingPolicyRunsUnguarded(t *testing.T) {
	d, gate, _, _, _ := newTestDispatcher(t)
	gate.err = approval.ErrNoPolicy

	id, err := d.Submit(context.Background(), &models.Task{
		Description: "architecture review",
		Prompt:      "p",
	})
	require.NoError(t, err)
	waitForTaskStatus(t, d, id, models.TaskStatusDispatched)
}

func TestQueuedLockDefersDispatchUntilGrant(t *testing.T) {
	d, _, locks, agents, events := newTestDispatcher(t)
	locks.busy["lock:service:api"] = true

	id, err := d.Submit(context.Background(), &models.Task{
		Prompt: "p",
		Locks:  []models.LockRef{{Type: models.ResourceService, ID: "api"}},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		state := d.Status(id)
		return state != nil && state.Reason == "waiting on locks"
	}, time.Second, 10*time.Millisecond)
	assert.Empty(t, agents.spawnedTasks())

	events.Publish(bus.TopicLockGrantedFromQueue, lock.GrantedEvent{
		WaitID: "wait-1",
		Lock:   &models.Lock{Resource: models.ResourceService, ResourceID: "api", OwnerID: id},
	})
	waitForTaskStatus(t, d, id, models.TaskStatusDispatched)
}

func TestCancelQueuedTask(t *testing.T) {
	d, _, _, _, events := newTestDispatcher(t)
	cancelled := events.Subscribe(bus.TopicTaskCancelled)
	defer cancelled.Close()

	// Dependency on an unknown task keeps it in the queue.
	id, err := d.Submit(context.Background(), &models.Task{Prompt: "p", Dependencies: []string{"missing"}})
	require.NoError(t, err)

	require.NoError(t, d.Cancel(context.Background(), id))
	assert.Equal(t, models.TaskStatusCancelled, d.Status(id).Status)

	select {
	case <-cancelled.C():
	case <-time.After(time.Second):
		t.Fatal("expected task:cancelled event")
	}

	assert.ErrorIs(t, d.Cancel(context.Background(), id), ErrTaskTerminal)
	assert.ErrorIs(t, d.Cancel(context.Background(), "unknown"), ErrTaskNotFound)
}

func TestCancelAwaitingApprovalCancelsRequest(t *testing.T) {
	d, gate, _, _, _ := newTestDispatcher(t)

	id, err := d.Submit(context.Background(), &models.Task{
		Description: "architecture",
		Prompt:      "p",
	})
	require.NoError(t, err)
	state := waitForTaskStatus(t, d, id, models.TaskStatusAwaitingApproval)

	require.NoError(t, d.Cancel(context.Background(), id))
	assert.Equal(t, models.TaskStatusCancelled, d.Status(id).Status)
	assert.Equal(t, []string{state.ApprovalID}, gate.cancelled)
}

func TestCancelDispatchedTerminatesAgent(t *testing.T) {
	d, _, _, agents, events := newTestDispatcher(t)

	id, err := d.Submit(context.Background(), &models.Task{Prompt: "p"})
	require.NoError(t, err)
	state := waitForTaskStatus(t, d, id, models.TaskStatusDispatched)

	require.NoError(t, d.Cancel(context.Background(), id))
	require.Eventually(t, func() bool {
		return len(agents.terminatedAgents()) == 1
	}, time.Second, 10*time.Millisecond)

	// The terminal state arrives with the subprocess exit.
	events.Publish(bus.TopicAgentTerminated, &models.Agent{ID: state.AgentID, TaskID: id})
	waitForTaskStatus(t, d, id, models.TaskStatusCancelled)
}

func TestAgentFailureFailsTask(t *testing.T) {
	d, _, _, _, events := newTestDispatcher(t)

	id, err := d.Submit(context.Background(), &models.Task{Prompt: "p"})
	require.NoError(t, err)
	state := waitForTaskStatus(t, d, id, models.TaskStatusDispatched)

	code := 3
	events.Publish(bus.TopicAgentError, &models.Agent{ID: state.AgentID, TaskID: id, ExitCode: &code})
	failed := waitForTaskStatus(t, d, id, models.TaskStatusFailed)
	assert.Equal(t, "agent exited with code 3", failed.Reason)
}

func TestSpawnBacklogBindsOnSpawnedEvent(t *testing.T) {
	d, _, _, agents, events := newTestDispatcher(t)
	agents.backlogged = true

	id, err := d.Submit(context.Background(), &models.Task{Prompt: "p"})
	require.NoError(t, err)

	state := waitForTaskStatus(t, d, id, models.TaskStatusDispatched)
	assert.Empty(t, state.AgentID)
	assert.Equal(t, "awaiting spawn capacity", state.Reason)

	events.Publish(bus.TopicAgentSpawned, &models.Agent{ID: "agent-late", TaskID: id})
	require.Eventually(t, func() bool {
		return d.Status(id).AgentID == "agent-late"
	}, time.Second, 10*time.Millisecond)

	// Dispatched exactly once despite the extra queue activity.
	assert.Equal(t, []string{id}, agents.spawnedTasks())
}

func TestReprioritize(t *testing.T) {
	d, _, _, _, _ := newTestDispatcher(t)
	ctx := context.Background()

	blocked, err := d.Submit(ctx, &models.Task{Prompt: "p", Dependencies: []string{"missing"}})
	require.NoError(t, err)
	running, err := d.Submit(ctx, &models.Task{Prompt: "p"})
	require.NoError(t, err)
	waitForTaskStatus(t, d, running, models.TaskStatusDispatched)

	require.NoError(t, d.Reprioritize(blocked, 42))
	assert.Equal(t, 42, d.Status(blocked).Task.Priority)

	assert.ErrorIs(t, d.Reprioritize(running, 1), ErrTaskDispatched)
	assert.ErrorIs(t, d.Reprioritize("unknown", 1), ErrTaskNotFound)
}

func TestQueueSnapshotOrder(t *testing.T) {
	d, _, _, _, _ := newTestDispatcher(t)
	ctx := context.Background()

	// All blocked on an unknown dependency so they stay queued.
	for _, task := range []*models.Task{
		{ID: "a", Priority: 1, Prompt: "p", Dependencies: []string{"missing"}},
		{ID: "b", Priority: 9, Prompt: "p", Dependencies: []string{"missing"}},
		{ID: "c", Priority: 9, Prompt: "p", Dependencies: []string{"missing"}},
	} {
		_, err := d.Submit(ctx, task)
		require.NoError(t, err)
	}

	queue := d.Queue()
	require.Len(t, queue, 3)
	ids := []string{queue[0].Task.ID, queue[1].Task.ID, queue[2].Task.ID}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
}

func TestProgressFromAgentOutput(t *testing.T) {
	d, _, _, _, events := newTestDispatcher(t)
	progress := events.Subscribe(bus.TopicTaskProgress)
	defer progress.Close()

	id, err := d.Submit(context.Background(), &models.Task{Prompt: "p"})
	require.NoError(t, err)
	state := waitForTaskStatus(t, d, id, models.TaskStatusDispatched)

	events.Publish(bus.TopicAgentOutput, spawner.OutputEvent{
		AgentID: state.AgentID,
		TaskID:  id,
		Stream:  "stdout",
		Line:    "Progress: 40% - halfway through the suite",
	})

	require.Eventually(t, func() bool { return d.Status(id).Progress == 40 }, time.Second, 10*time.Millisecond)

	select {
	case evt := <-progress.C():
		pe, ok := evt.Payload.(ProgressEvent)
		require.True(t, ok)
		assert.Equal(t, 40, pe.Progress)
		assert.Equal(t, id, pe.TaskID)
	case <-time.After(time.Second):
		t.Fatal("expected task:progress event")
	}

	// Regressions and stderr lines are ignored.
	events.Publish(bus.TopicAgentOutput, spawner.OutputEvent{
		AgentID: state.AgentID, TaskID: id, Stream: "stdout", Line: "progress: 20%",
	})
	events.Publish(bus.TopicAgentOutput, spawner.OutputEvent{
		AgentID: state.AgentID, TaskID: id, Stream: "stderr", Line: "progress: 90%",
	})
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 40, d.Status(id).Progress)
}

func TestEvictTerminalRespectsRetention(t *testing.T) {
	d, _, _, _, events := newTestDispatcher(t)

	id, err := d.Submit(context.Background(), &models.Task{Prompt: "p"})
	require.NoError(t, err)
	state := waitForTaskStatus(t, d, id, models.TaskStatusDispatched)
	events.Publish(bus.TopicAgentCompleted, &models.Agent{ID: state.AgentID, TaskID: id})
	waitForTaskStatus(t, d, id, models.TaskStatusCompleted)

	d.evictTerminal(time.Now().Add(-time.Hour))
	assert.NotNil(t, d.Status(id))

	d.evictTerminal(time.Now().Add(time.Minute))
	assert.Nil(t, d.Status(id))
}
