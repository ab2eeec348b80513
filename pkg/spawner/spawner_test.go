package spawner

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiniSankaz/fleetd/pkg/bus"
	"github.com/MiniSankaz/fleetd/pkg/config"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

// recordingTracker captures usage records.
type recordingTracker struct {
	mu   sync.Mutex
	recs []*models.UsageRecord
}

func (r *recordingTracker) Track(_ context.Context, rec *models.UsageRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
	return nil
}

func (r *recordingTracker) records() []*models.UsageRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.UsageRecord(nil), r.recs...)
}

// writeScript installs a fake agent CLI.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-cli")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func newTestSpawner(t *testing.T, cliBody string, maxConcurrent int) (*Spawner, *recordingTracker, *bus.Bus, string) {
	t.Helper()
	workDir := t.TempDir()
	tracker := &recordingTracker{}
	events := bus.New()
	s := New(config.NewAgentRegistry(), tracker, events, Options{
		WorkDir:       workDir,
		CLIPath:       writeScript(t, cliBody),
		MaxConcurrent: maxConcurrent,
	})
	t.Cleanup(s.Stop)
	return s, tracker, events, workDir
}

func waitForStatus(t *testing.T, s *Spawner, agentID string, status models.AgentStatus) *models.Agent {
	t.Helper()
	require.Eventually(t, func() bool {
		agent := s.Status(agentID)
		return agent != nil && agent.Status == status
	}, 5*time.Second, 20*time.Millisecond)
	return s.Status(agentID)
}

func TestSpawnCompletesAndMeters(t *testing.T) {
	// Consume the manifest, report token counts, exit clean.
	s, tracker, events, workDir := newTestSpawner(t, `cat >/dev/null
echo "Input: 100 tokens"
echo "Output: 250 tokens"`, 5)
	completed := events.Subscribe(bus.TopicAgentCompleted)
	defer completed.Close()

	task := &models.Task{
		ID:          "t1",
		Description: "run tests",
		Prompt:      "run the suite",
		UserID:      "user-1",
	}
	result, err := s.Spawn(context.Background(), task, "", nil)
	require.NoError(t, err)
	require.False(t, result.Queued)

	agent := waitForStatus(t, s, result.AgentID, models.AgentStatusCompleted)
	// "run tests" infers the test-runner role.
	assert.Equal(t, models.AgentTypeTestRunner, agent.Type)
	require.NotNil(t, agent.ExitCode)
	assert.Zero(t, *agent.ExitCode)
	assert.Contains(t, agent.Stdout, "Input: 100 tokens")

	require.Eventually(t, func() bool { return len(tracker.records()) == 1 }, time.Second, 10*time.Millisecond)
	rec := tracker.records()[0]
	assert.Equal(t, 100, rec.InputTokens)
	assert.Equal(t, 250, rec.OutputTokens)
	assert.Equal(t, models.ModelHaiku, rec.Model)
	assert.Equal(t, "user-1", rec.UserID)
	assert.Equal(t, "t1", rec.TaskID)
	assert.Equal(t, false, rec.Metadata["estimated"])

	// The manifest is deleted after the run.
	_, err = os.Stat(ManifestPath(workDir, result.AgentID))
	assert.True(t, os.IsNotExist(err))

	select {
	case evt := <-completed.C():
		done, ok := evt.Payload.(*models.Agent)
		require.True(t, ok)
		assert.Equal(t, result.AgentID, done.ID)
	case <-time.After(time.Second):
		t.Fatal("expected agent:completed event")
	}
}

func TestSpawnFailureOnNonZeroExit(t *testing.T) {
	s, tracker, _, _ := newTestSpawner(t, `cat >/dev/null
echo "boom" >&2
exit 3`, 5)

	result, err := s.Spawn(context.Background(), &models.Task{ID: "t1", Description: "x", Prompt: "y"}, models.AgentTypeGeneralPurpose, nil)
	require.NoError(t, err)

	agent := waitForStatus(t, s, result.AgentID, models.AgentStatusFailed)
	require.NotNil(t, agent.ExitCode)
	assert.Equal(t, 3, *agent.ExitCode)
	assert.Contains(t, agent.Stderr, "boom")

	// Failed runs are still metered, via the length estimator here.
	require.Eventually(t, func() bool { return len(tracker.records()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, true, tracker.records()[0].Metadata["estimated"])
}

func TestSpawnErrorWhenCLIMissing(t *testing.T) {
	workDir := t.TempDir()
	tracker := &recordingTracker{}
	s := New(config.NewAgentRegistry(), tracker, bus.New(), Options{
		WorkDir: workDir,
		CLIPath: filepath.Join(workDir, "does-not-exist"),
	})
	t.Cleanup(s.Stop)

	result, err := s.Spawn(context.Background(), &models.Task{ID: "t1", Description: "x", Prompt: "y"}, models.AgentTypeGeneralPurpose, nil)
	require.NoError(t, err)

	agent := waitForStatus(t, s, result.AgentID, models.AgentStatusFailed)
	assert.NotEmpty(t, agent.Error)
	// No process ran, so nothing is metered.
	assert.Empty(t, tracker.records())
}

func TestConcurrencyCapQueuesBeyondLimit(t *testing.T) {
	// Block until the release file appears, then finish.
	s, _, _, workDir := newTestSpawner(t, `cat >/dev/null
while [ ! -f ./release ]; do sleep 0.02; done`, 2)

	ctx := context.Background()
	started := 0
	queued := 0
	for i := 0; i < 5; i++ {
		result, err := s.Spawn(ctx, &models.Task{ID: "t" + string(rune('1'+i)), Description: "x", Prompt: "y"}, models.AgentTypeGeneralPurpose, nil)
		require.NoError(t, err)
		if result.Queued {
			queued++
		} else {
			started++
		}
	}
	assert.Equal(t, 2, started)
	assert.Equal(t, 3, queued)

	require.Eventually(t, func() bool {
		return s.Metrics().ByStatus[models.AgentStatusWorking] == 2
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, 3, s.QueuedCount())

	require.NoError(t, os.WriteFile(filepath.Join(workDir, "release"), nil, 0o644))

	require.Eventually(t, func() bool {
		m := s.Metrics()
		return m.ByStatus[models.AgentStatusCompleted] == 5 && m.Queued == 0
	}, 10*time.Second, 20*time.Millisecond)
}

func TestBacklogPopsByPriority(t *testing.T) {
	s, _, events, workDir := newTestSpawner(t, `cat >/dev/null
while [ ! -f ./release ]; do sleep 0.02; done`, 1)
	spawned := events.Subscribe(bus.TopicAgentSpawned)
	defer spawned.Close()

	ctx := context.Background()
	_, err := s.Spawn(ctx, &models.Task{ID: "first", Description: "x", Prompt: "y"}, models.AgentTypeGeneralPurpose, nil)
	require.NoError(t, err)
	low, err := s.Spawn(ctx, &models.Task{ID: "low", Priority: 1, Description: "x", Prompt: "y"}, models.AgentTypeGeneralPurpose, nil)
	require.NoError(t, err)
	high, err := s.Spawn(ctx, &models.Task{ID: "high", Priority: 10, Description: "x", Prompt: "y"}, models.AgentTypeGeneralPurpose, nil)
	require.NoError(t, err)
	require.True(t, low.Queued)
	require.True(t, high.Queued)

	require.NoError(t, os.WriteFile(filepath.Join(workDir, "release"), nil, 0o644))

	var order []string
	for len(order) < 3 {
		select {
		case evt := <-spawned.C():
			agent, ok := evt.Payload.(*models.Agent)
			require.True(t, ok)
			order = append(order, agent.TaskID)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for spawns, saw %v", order)
		}
	}
	assert.Equal(t, []string{"first", "high", "low"}, order)
}

func TestTerminate(t *testing.T) {
	s, tracker, _, _ := newTestSpawner(t, `cat >/dev/null
sleep 30`, 5)

	result, err := s.Spawn(context.Background(), &models.Task{ID: "t1", Description: "x", Prompt: "y"}, models.AgentTypeGeneralPurpose, nil)
	require.NoError(t, err)
	waitForStatus(t, s, result.AgentID, models.AgentStatusWorking)

	require.True(t, s.Terminate(result.AgentID))
	waitForStatus(t, s, result.AgentID, models.AgentStatusTerminated)

	// Terminated runs are still metered, flagged as terminated.
	require.Eventually(t, func() bool { return len(tracker.records()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, true, tracker.records()[0].Metadata["terminated"])

	// A second terminate is a no-op on a terminal agent.
	assert.False(t, s.Terminate(result.AgentID))
	assert.False(t, s.Terminate("unknown-agent"))
}

func TestOversizedOutputLineDoesNotWedgeAgent(t *testing.T) {
	// One 2 MiB stdout line, twice the per-line capture cap, then a clean
	// exit. The pipe must still be drained to EOF or the CLI blocks on its
	// next write and never exits.
	s, _, _, _ := newTestSpawner(t, `cat >/dev/null
head -c 2097152 /dev/zero | tr '\0' x
echo
echo "done"`, 5)

	result, err := s.Spawn(context.Background(), &models.Task{ID: "t1", Description: "x", Prompt: "y"}, models.AgentTypeGeneralPurpose, nil)
	require.NoError(t, err)

	agent := waitForStatus(t, s, result.AgentID, models.AgentStatusCompleted)
	require.NotNil(t, agent.ExitCode)
	assert.Zero(t, *agent.ExitCode)
	// Capture stops at the overlong line; anything recorded stays bounded.
	for _, line := range agent.Stdout {
		assert.Less(t, len(line), maxOutputLine)
	}
}

func TestTerminateKillsProcessGroup(t *testing.T) {
	// The background sleep inherits stdout. Killing only the shell would
	// leave it holding the pipe open, wedging the output readers.
	s, _, _, _ := newTestSpawner(t, `cat >/dev/null
sleep 30 &
wait`, 5)

	result, err := s.Spawn(context.Background(), &models.Task{ID: "t1", Description: "x", Prompt: "y"}, models.AgentTypeGeneralPurpose, nil)
	require.NoError(t, err)
	waitForStatus(t, s, result.AgentID, models.AgentStatusWorking)

	require.True(t, s.Terminate(result.AgentID))
	waitForStatus(t, s, result.AgentID, models.AgentStatusTerminated)
}

func TestStatusUnknownAgentReturnsNil(t *testing.T) {
	s, _, _, _ := newTestSpawner(t, "cat >/dev/null", 5)
	assert.Nil(t, s.Status("nope"))
}

func TestMetricsAveragesCompletedOnly(t *testing.T) {
	s, _, _, _ := newTestSpawner(t, `cat >/dev/null`, 5)
	ctx := context.Background()

	r1, err := s.Spawn(ctx, &models.Task{ID: "t1", Description: "x", Prompt: "y"}, models.AgentTypeGeneralPurpose, nil)
	require.NoError(t, err)
	waitForStatus(t, s, r1.AgentID, models.AgentStatusCompleted)

	m := s.Metrics()
	assert.Equal(t, 1, m.Total)
	assert.Equal(t, 1, m.ByStatus[models.AgentStatusCompleted])
	assert.Equal(t, 1, m.ByType[models.AgentTypeGeneralPurpose])
	assert.GreaterOrEqual(t, m.AvgExecutionMs, 0.0)
}

func TestEvictFinishedRespectsRetention(t *testing.T) {
	s, _, _, _ := newTestSpawner(t, `cat >/dev/null`, 5)
	ctx := context.Background()

	result, err := s.Spawn(ctx, &models.Task{ID: "t1", Description: "x", Prompt: "y"}, models.AgentTypeGeneralPurpose, nil)
	require.NoError(t, err)
	waitForStatus(t, s, result.AgentID, models.AgentStatusCompleted)

	// Inside the retention window the record stays.
	s.evictFinished(time.Now().Add(-time.Hour))
	assert.NotNil(t, s.Status(result.AgentID))

	s.evictFinished(time.Now().Add(time.Minute))
	assert.Nil(t, s.Status(result.AgentID))
}
