package spawner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/MiniSankaz/fleetd/pkg/bus"
	"github.com/MiniSankaz/fleetd/pkg/config"
	"github.com/MiniSankaz/fleetd/pkg/models"
	"github.com/MiniSankaz/fleetd/pkg/usage"
)

const (
	defaultMaxConcurrent = 5
	defaultRetention     = time.Hour
	sweepInterval        = 5 * time.Minute

	// maxOutputLine bounds a single stdout/stderr line.
	maxOutputLine = 1024 * 1024
)

// UsageTracker records one usage row per finished invocation. Satisfied by
// *usage.Meter.
type UsageTracker interface {
	Track(ctx context.Context, rec *models.UsageRecord) error
}

// OutputEvent is published per subprocess output line.
type OutputEvent struct {
	AgentID string `json:"agent_id"`
	TaskID  string `json:"task_id"`
	Stream  string `json:"stream"` // stdout or stderr
	Line    string `json:"line"`
}

// StatusEvent is published on every lifecycle transition.
type StatusEvent struct {
	AgentID string             `json:"agent_id"`
	TaskID  string             `json:"task_id"`
	Status  models.AgentStatus `json:"status"`
}

// SpawnResult is the outcome of a spawn call: a started agent id, or a
// backlog admission when the concurrency cap is reached.
type SpawnResult struct {
	AgentID  string `json:"agent_id,omitempty"`
	Queued   bool   `json:"queued"`
	Position int    `json:"position,omitempty"`
}

// Metrics is a point-in-time spawner summary.
type Metrics struct {
	Total          int                        `json:"total"`
	ByStatus       map[models.AgentStatus]int `json:"by_status"`
	ByType         map[models.AgentType]int   `json:"by_type"`
	Queued         int                        `json:"queued"`
	AvgExecutionMs float64                    `json:"avg_execution_ms"`
}

// Options configures a Spawner.
type Options struct {
	WorkDir       string
	CLIPath       string
	MaxConcurrent int
	Retention     time.Duration
}

type backlogEntry struct {
	task       *models.Task
	agentType  models.AgentType
	cfg        models.AgentConfig
	enqueuedAt time.Time
}

// Spawner supervises CLI subprocesses under a global concurrency cap.
// Agents beyond the cap wait in a priority backlog.
type Spawner struct {
	registry *config.AgentRegistry
	meter    UsageTracker
	events   *bus.Bus

	workDir       string
	cliPath       string
	maxConcurrent int
	retention     time.Duration

	mu      sync.Mutex
	agents  map[string]*models.Agent
	procs   map[string]*exec.Cmd
	kills   map[string]bool
	backlog []*backlogEntry

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a spawner. meter may be nil (usage recording disabled, used in
// some tests); events may be nil.
func New(registry *config.AgentRegistry, meter UsageTracker, events *bus.Bus, opts Options) *Spawner {
	if registry == nil {
		panic("spawner.New: agent registry must not be nil")
	}
	if opts.WorkDir == "" {
		panic("spawner.New: work dir must not be empty")
	}
	if opts.CLIPath == "" {
		opts.CLIPath = "claude"
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = defaultMaxConcurrent
	}
	if opts.Retention <= 0 {
		opts.Retention = defaultRetention
	}
	return &Spawner{
		registry:      registry,
		meter:         meter,
		events:        events,
		workDir:       opts.WorkDir,
		cliPath:       opts.CLIPath,
		maxConcurrent: opts.MaxConcurrent,
		retention:     opts.Retention,
		agents:        make(map[string]*models.Agent),
		procs:         make(map[string]*exec.Cmd),
		kills:         make(map[string]bool),
		stopCh:        make(chan struct{}),
	}
}

// Start launches the retention sweep for finished agent records.
func (s *Spawner) Start() {
	s.wg.Add(1)
	go s.sweepLoop()
	slog.Info("Agent spawner started",
		"max_concurrent", s.maxConcurrent, "cli", s.cliPath, "work_dir", s.workDir)
}

// Stop terminates all live agents and halts background work.
func (s *Spawner) Stop() {
	s.TerminateAll()
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	slog.Info("Agent spawner stopped")
}

// Spawn starts an agent for the task, or queues it when the active count is
// at the cap. An empty agentType is inferred from the task text.
func (s *Spawner) Spawn(_ context.Context, task *models.Task, agentType models.AgentType, overrides *models.AgentConfig) (*SpawnResult, error) {
	if task == nil {
		return nil, fmt.Errorf("task is required")
	}
	if agentType == "" {
		agentType = config.InferAgentType(task.Description, task.Prompt)
	}
	if !agentType.IsValid() {
		return nil, fmt.Errorf("invalid agent type %q", agentType)
	}
	cfg := s.registry.Merge(agentType, overrides)

	s.mu.Lock()
	if s.activeCountLocked() >= s.maxConcurrent {
		s.backlog = append(s.backlog, &backlogEntry{
			task:       task,
			agentType:  agentType,
			cfg:        cfg,
			enqueuedAt: time.Now(),
		})
		position := len(s.backlog)
		s.mu.Unlock()
		slog.Info("Agent queued at concurrency cap",
			"task_id", task.ID, "type", agentType, "position", position)
		return &SpawnResult{Queued: true, Position: position}, nil
	}
	agent := s.registerLocked(task, agentType, cfg)
	s.mu.Unlock()

	s.wg.Add(1)
	go s.launch(agent.ID, task)
	return &SpawnResult{AgentID: agent.ID}, nil
}

// Status returns a snapshot of the agent record, or nil for unknown ids.
func (s *Spawner) Status(agentID string) *models.Agent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if agent, ok := s.agents[agentID]; ok {
		return agent.Clone()
	}
	return nil
}

// Agents returns snapshots of every retained agent record.
func (s *Spawner) Agents() []*models.Agent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Agent, 0, len(s.agents))
	for _, agent := range s.agents {
		out = append(out, agent.Clone())
	}
	return out
}

// Terminate signals a live agent to stop. Returns false for unknown or
// already-terminal agents. The post-exit lifecycle state is terminated even
// if the process dies with a nonzero code.
func (s *Spawner) Terminate(agentID string) bool {
	s.mu.Lock()
	agent, ok := s.agents[agentID]
	if !ok || agent.Status.IsTerminal() {
		s.mu.Unlock()
		return false
	}
	s.kills[agentID] = true
	proc := s.procs[agentID]
	s.mu.Unlock()

	if proc != nil && proc.Process != nil {
		if err := killProcess(proc.Process); err != nil {
			slog.Warn("Failed to kill agent process", "agent_id", agentID, "error", err)
		}
	}
	slog.Info("Agent terminate requested", "agent_id", agentID)
	return true
}

// killProcess kills an agent's whole process group, falling back to the
// direct process when the group signal fails.
func killProcess(proc *os.Process) error {
	if err := syscall.Kill(-proc.Pid, syscall.SIGKILL); err == nil {
		return nil
	}
	return proc.Kill()
}

// TerminateAll signals every live agent and waits briefly for them to reap.
func (s *Spawner) TerminateAll() {
	s.mu.Lock()
	var ids []string
	for id, agent := range s.agents {
		if !agent.Status.IsTerminal() {
			ids = append(ids, id)
		}
	}
	s.backlog = nil
	s.mu.Unlock()

	for _, id := range ids {
		s.Terminate(id)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		active := s.activeCountLocked()
		s.mu.Unlock()
		if active == 0 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// QueuedCount returns the backlog size.
func (s *Spawner) QueuedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.backlog)
}

// Metrics summarizes retained agents and the backlog.
func (s *Spawner) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := Metrics{
		ByStatus: make(map[models.AgentStatus]int),
		ByType:   make(map[models.AgentType]int),
		Queued:   len(s.backlog),
	}
	var execMs float64
	var completed int
	for _, agent := range s.agents {
		m.Total++
		m.ByStatus[agent.Status]++
		m.ByType[agent.Type]++
		if agent.Status == models.AgentStatusCompleted && agent.EndedAt != nil {
			execMs += float64(agent.EndedAt.Sub(agent.StartedAt).Milliseconds())
			completed++
		}
	}
	if completed > 0 {
		m.AvgExecutionMs = execMs / float64(completed)
	}
	return m
}

// registerLocked creates the agent record counting against the cap. Caller
// holds s.mu.
func (s *Spawner) registerLocked(task *models.Task, agentType models.AgentType, cfg models.AgentConfig) *models.Agent {
	agent := &models.Agent{
		ID:        uuid.New().String(),
		Type:      agentType,
		TaskID:    task.ID,
		UserID:    task.UserID,
		SessionID: task.SessionID,
		Config:    cfg,
		WorkDir:   s.workDir,
		Status:    models.AgentStatusInitializing,
		StartedAt: time.Now(),
	}
	s.agents[agent.ID] = agent
	return agent
}

func (s *Spawner) activeCountLocked() int {
	n := 0
	for _, agent := range s.agents {
		if agent.Status.IsActive() {
			n++
		}
	}
	return n
}

// launch writes the manifest, starts the CLI, and supervises it to exit.
func (s *Spawner) launch(agentID string, task *models.Task) {
	defer s.wg.Done()

	s.mu.Lock()
	agent, ok := s.agents[agentID]
	if !ok {
		s.mu.Unlock()
		return
	}
	snapshot := agent.Clone()
	s.mu.Unlock()

	manifest, err := BuildManifest(snapshot, task)
	if err != nil {
		s.failSpawn(agentID, err)
		return
	}
	if _, err := WriteManifest(s.workDir, agentID, manifest); err != nil {
		s.failSpawn(agentID, err)
		return
	}

	args := []string{"--model", snapshot.Config.Model.ModelID()}
	if snapshot.Config.Timeout > 0 {
		args = append(args, "--timeout", strconv.Itoa(int(snapshot.Config.Timeout.Seconds())))
	}
	cmd := exec.Command(s.cliPath, args...)
	cmd.Dir = s.workDir
	cmd.Stdin = strings.NewReader(manifest)
	// Own process group so Terminate reaches pipeline grandchildren that
	// would otherwise keep the output pipes open past the CLI's death.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		s.failSpawn(agentID, err)
		return
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		s.failSpawn(agentID, err)
		return
	}
	if err := cmd.Start(); err != nil {
		s.failSpawn(agentID, fmt.Errorf("starting agent CLI: %w", err))
		return
	}

	s.mu.Lock()
	s.procs[agentID] = cmd
	agent.Status = models.AgentStatusWorking
	killed := s.kills[agentID]
	snapshot = agent.Clone()
	s.mu.Unlock()

	if killed {
		// Terminate raced the launch; honor it.
		_ = killProcess(cmd.Process)
	}

	s.publish(bus.TopicAgentSpawned, snapshot)
	s.publishStatus(snapshot)
	slog.Info("Agent spawned",
		"agent_id", agentID, "type", snapshot.Type, "task_id", snapshot.TaskID,
		"model", snapshot.Config.Model)

	var scanners sync.WaitGroup
	scanners.Add(2)
	go s.streamOutput(agentID, "stdout", stdout, &scanners)
	go s.streamOutput(agentID, "stderr", stderr, &scanners)

	scanners.Wait()
	err = cmd.Wait()
	exitCode := 0
	if err != nil {
		exitCode = -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	s.finalize(agentID, exitCode)
}

// streamOutput appends subprocess lines to the agent record and publishes
// them on the bus.
func (s *Spawner) streamOutput(agentID, stream string, r io.Reader, done *sync.WaitGroup) {
	defer done.Done()
	// The pipe must be read to EOF even after recording stops (overlong line,
	// reaped agent); otherwise the child blocks on a full pipe and never exits.
	defer func() { _, _ = io.Copy(io.Discard, r) }()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOutputLine)
	for scanner.Scan() {
		line := scanner.Text()

		s.mu.Lock()
		agent, ok := s.agents[agentID]
		var taskID string
		if ok {
			taskID = agent.TaskID
			if stream == "stdout" {
				agent.Stdout = append(agent.Stdout, line)
			} else {
				agent.Stderr = append(agent.Stderr, line)
			}
		}
		s.mu.Unlock()
		if !ok {
			return
		}

		topic := bus.TopicAgentOutput
		if stream == "stderr" {
			topic = bus.TopicAgentError
		}
		s.publish(topic, OutputEvent{AgentID: agentID, TaskID: taskID, Stream: stream, Line: line})
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("Agent output capture stopped",
			"agent_id", agentID, "stream", stream, "error", err)
	}
}

// finalize reaps an exited agent: terminal status, usage record, manifest
// cleanup, backlog pop.
func (s *Spawner) finalize(agentID string, exitCode int) {
	now := time.Now()

	s.mu.Lock()
	agent, ok := s.agents[agentID]
	if !ok {
		s.mu.Unlock()
		return
	}
	killed := s.kills[agentID]
	delete(s.kills, agentID)
	delete(s.procs, agentID)

	switch {
	case killed:
		agent.Status = models.AgentStatusTerminated
	case exitCode == 0:
		agent.Status = models.AgentStatusCompleted
	default:
		agent.Status = models.AgentStatusFailed
		agent.Error = fmt.Sprintf("agent exited with code %d", exitCode)
	}
	agent.EndedAt = &now
	agent.ExitCode = &exitCode
	stdout := strings.Join(agent.Stdout, "\n")
	snapshot := agent.Clone()
	s.mu.Unlock()

	s.recordUsage(snapshot, stdout)
	if err := RemoveManifest(s.workDir, agentID); err != nil {
		slog.Warn("Failed to remove agent manifest", "agent_id", agentID, "error", err)
	}

	switch snapshot.Status {
	case models.AgentStatusCompleted:
		s.publish(bus.TopicAgentCompleted, snapshot)
	case models.AgentStatusTerminated:
		s.publish(bus.TopicAgentTerminated, snapshot)
	default:
		s.publish(bus.TopicAgentError, snapshot)
	}
	s.publishStatus(snapshot)
	slog.Info("Agent reaped",
		"agent_id", agentID, "status", snapshot.Status, "exit_code", exitCode,
		"duration_ms", snapshot.EndedAt.Sub(snapshot.StartedAt).Milliseconds())

	s.popBacklog()
}

// failSpawn marks an agent failed before its process ever ran.
func (s *Spawner) failSpawn(agentID string, cause error) {
	now := time.Now()

	s.mu.Lock()
	agent, ok := s.agents[agentID]
	if !ok {
		s.mu.Unlock()
		return
	}
	agent.Status = models.AgentStatusFailed
	agent.Error = cause.Error()
	agent.EndedAt = &now
	delete(s.kills, agentID)
	snapshot := agent.Clone()
	s.mu.Unlock()

	if err := RemoveManifest(s.workDir, agentID); err != nil {
		slog.Warn("Failed to remove agent manifest", "agent_id", agentID, "error", err)
	}
	s.publish(bus.TopicAgentError, snapshot)
	s.publishStatus(snapshot)
	slog.Error("Agent spawn failed", "agent_id", agentID, "error", cause)

	s.popBacklog()
}

// recordUsage extracts token counts from the captured stdout and tracks one
// usage record. Terminated agents are still metered.
func (s *Spawner) recordUsage(agent *models.Agent, stdout string) {
	if s.meter == nil {
		return
	}
	inputTokens, outputTokens, estimated := usage.ExtractTokens(stdout)
	exitCode := 0
	if agent.ExitCode != nil {
		exitCode = *agent.ExitCode
	}
	rec := &models.UsageRecord{
		ID:           uuid.New().String(),
		AgentID:      agent.ID,
		AgentType:    agent.Type,
		Model:        agent.Config.Model,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		DurationMs:   agent.EndedAt.Sub(agent.StartedAt).Milliseconds(),
		UserID:       agent.UserID,
		SessionID:    agent.SessionID,
		TaskID:       agent.TaskID,
		Metadata: map[string]any{
			"estimated": estimated,
			"exit_code": exitCode,
		},
		CreatedAt: *agent.EndedAt,
	}
	if agent.Status == models.AgentStatusTerminated {
		rec.Metadata["terminated"] = true
	}
	if rec.UserID == "" {
		rec.UserID = "system"
	}
	if err := s.meter.Track(context.Background(), rec); err != nil {
		slog.Error("Failed to record agent usage",
			"agent_id", agent.ID, "error", err)
	}
}

// popBacklog starts queued work while slots are free. Higher task priority
// goes first; equal priorities leave in FIFO order.
func (s *Spawner) popBacklog() {
	type launchItem struct {
		agentID string
		task    *models.Task
	}
	var launches []launchItem

	s.mu.Lock()
	for s.activeCountLocked() < s.maxConcurrent && len(s.backlog) > 0 {
		best := 0
		for i, entry := range s.backlog {
			if entry.task.Priority > s.backlog[best].task.Priority {
				best = i
			}
		}
		entry := s.backlog[best]
		s.backlog = append(s.backlog[:best], s.backlog[best+1:]...)
		agent := s.registerLocked(entry.task, entry.agentType, entry.cfg)
		launches = append(launches, launchItem{agentID: agent.ID, task: entry.task})
	}
	s.mu.Unlock()

	for _, item := range launches {
		s.wg.Add(1)
		go s.launch(item.agentID, item.task)
	}
}

// sweepLoop evicts terminal agent records past the retention window.
func (s *Spawner) sweepLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.evictFinished(time.Now().Add(-s.retention))
		}
	}
}

func (s *Spawner) evictFinished(cutoff time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, agent := range s.agents {
		if agent.Status.IsTerminal() && agent.EndedAt != nil && agent.EndedAt.Before(cutoff) {
			delete(s.agents, id)
		}
	}
}

func (s *Spawner) publishStatus(agent *models.Agent) {
	s.publish(bus.TopicAgentStatus, StatusEvent{
		AgentID: agent.ID,
		TaskID:  agent.TaskID,
		Status:  agent.Status,
	})
}

func (s *Spawner) publish(topic bus.Topic, payload any) {
	if s.events == nil {
		return
	}
	s.events.Publish(topic, payload)
}
