package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiniSankaz/fleetd/pkg/approval"
	"github.com/MiniSankaz/fleetd/pkg/dispatch"
	"github.com/MiniSankaz/fleetd/pkg/lock"
	"github.com/MiniSankaz/fleetd/pkg/models"
	"github.com/MiniSankaz/fleetd/pkg/spawner"
	"github.com/MiniSankaz/fleetd/pkg/usage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeQueue implements TaskQueue over a map.
type fakeQueue struct {
	states    map[string]*models.TaskState
	submitErr error
	cancelErr error
	reprioErr error
}

func (q *fakeQueue) Submit(_ context.Context, task *models.Task) (string, error) {
	if q.submitErr != nil {
		return "", q.submitErr
	}
	return "task-1", nil
}

func (q *fakeQueue) Cancel(_ context.Context, taskID string) error { return q.cancelErr }
func (q *fakeQueue) Reprioritize(string, int) error                { return q.reprioErr }
func (q *fakeQueue) Status(taskID string) *models.TaskState        { return q.states[taskID] }

func (q *fakeQueue) Queue() []*models.TaskState {
	out := make([]*models.TaskState, 0, len(q.states))
	for _, st := range q.states {
		out = append(out, st)
	}
	return out
}

// fakeFleet implements AgentFleet.
type fakeFleet struct {
	agents    map[string]*models.Agent
	terminate bool
}

func (f *fakeFleet) Status(id string) *models.Agent { return f.agents[id] }
func (f *fakeFleet) Terminate(string) bool          { return f.terminate }
func (f *fakeFleet) Metrics() spawner.Metrics       { return spawner.Metrics{Total: len(f.agents)} }

func (f *fakeFleet) Agents() []*models.Agent {
	out := make([]*models.Agent, 0, len(f.agents))
	for _, a := range f.agents {
		out = append(out, a)
	}
	return out
}

// fakeLocks implements LockTable.
type fakeLocks struct {
	locks    []*models.Lock
	released bool
}

func (l *fakeLocks) ActiveLocks(context.Context) ([]*models.Lock, error) { return l.locks, nil }
func (l *fakeLocks) Release(context.Context, string) (bool, error)       { return l.released, nil }

func (l *fakeLocks) Metrics(context.Context) (*lock.Metrics, error) {
	return &lock.Metrics{ActiveLocks: len(l.locks)}, nil
}

// fakeMeter implements UsageMeter.
type fakeMeter struct {
	summary *models.UsageSummary
	acked   bool
}

func (m *fakeMeter) Summary(_ context.Context, window models.Window, userID string) (*models.UsageSummary, error) {
	return m.summary, nil
}

func (m *fakeMeter) RealTime(context.Context, string) (*usage.RealTimeUsage, error) {
	return &usage.RealTimeUsage{}, nil
}

func (m *fakeMeter) Report(context.Context, string, time.Time, time.Time) (*models.UsageReport, error) {
	return &models.UsageReport{}, nil
}

func (m *fakeMeter) Alerts(context.Context, usage.AlertFilter) ([]*models.Alert, error) {
	return nil, nil
}

func (m *fakeMeter) Acknowledge(context.Context, string, string) (bool, error) {
	return m.acked, nil
}

// fakeGate implements ApprovalGate.
type fakeGate struct {
	decideErr error
	request   *models.ApprovalRequest
}

func (g *fakeGate) Decide(_ context.Context, _, _ string, _ models.Choice, _ string) (*models.Decision, error) {
	if g.decideErr != nil {
		return nil, g.decideErr
	}
	return &models.Decision{ID: "dec-1"}, nil
}

func (g *fakeGate) Bypass(context.Context, string, string, string, map[string]any) (*models.ApprovalRequest, error) {
	return g.request, nil
}

func (g *fakeGate) Get(_ context.Context, id string) (*models.ApprovalRequest, error) {
	if g.request == nil {
		return nil, approval.ErrNotFound
	}
	return g.request, nil
}

func (g *fakeGate) PendingFor(context.Context, string) []*models.ApprovalRequest {
	if g.request == nil {
		return nil
	}
	return []*models.ApprovalRequest{g.request}
}

func (g *fakeGate) History(context.Context, string) (*approval.History, error) {
	return &approval.History{Request: g.request}, nil
}

func (g *fakeGate) Statistics(context.Context, time.Time) (*approval.Statistics, error) {
	return &approval.Statistics{Total: 1}, nil
}

func newTestServer(q *fakeQueue, f *fakeFleet, l *fakeLocks, m *fakeMeter, g *fakeGate) *httptest.Server {
	if q == nil {
		q = &fakeQueue{states: map[string]*models.TaskState{}}
	}
	if f == nil {
		f = &fakeFleet{agents: map[string]*models.Agent{}}
	}
	if l == nil {
		l = &fakeLocks{}
	}
	if m == nil {
		m = &fakeMeter{summary: &models.UsageSummary{}}
	}
	if g == nil {
		g = &fakeGate{}
	}
	srv := NewServer(q, f, l, m, g, nil, nil)
	return httptest.NewServer(srv.Routes())
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestSubmitTask(t *testing.T) {
	ts := newTestServer(nil, nil, nil, nil, nil)
	defer ts.Close()

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/tasks", gin.H{
		"prompt":   "run the suite",
		"priority": 5,
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "task-1", decodeBody(t, resp)["task_id"])
}

func TestSubmitTaskRequiresPrompt(t *testing.T) {
	ts := newTestServer(nil, nil, nil, nil, nil)
	defer ts.Close()

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/tasks", gin.H{"description": "no prompt"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitTaskDuplicateConflicts(t *testing.T) {
	ts := newTestServer(&fakeQueue{submitErr: dispatch.ErrDuplicateTask}, nil, nil, nil, nil)
	defer ts.Close()

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/tasks", gin.H{"prompt": "p"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestTaskStatus(t *testing.T) {
	q := &fakeQueue{states: map[string]*models.TaskState{
		"t1": {Task: &models.Task{ID: "t1"}, Status: models.TaskStatusDispatched},
	}}
	ts := newTestServer(q, nil, nil, nil, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/tasks/t1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "dispatched", decodeBody(t, resp)["status"])

	resp, err = http.Get(ts.URL + "/api/tasks/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCancelTaskNotFound(t *testing.T) {
	ts := newTestServer(&fakeQueue{cancelErr: dispatch.ErrTaskNotFound}, nil, nil, nil, nil)
	defer ts.Close()

	resp := doJSON(t, http.MethodDelete, ts.URL+"/api/tasks/nope", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReprioritizeDispatchedConflicts(t *testing.T) {
	ts := newTestServer(&fakeQueue{reprioErr: dispatch.ErrTaskDispatched}, nil, nil, nil, nil)
	defer ts.Close()

	resp := doJSON(t, http.MethodPut, ts.URL+"/api/tasks/t1/priority", gin.H{"priority": 9})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAgentEndpoints(t *testing.T) {
	f := &fakeFleet{agents: map[string]*models.Agent{
		"a1": {ID: "a1", Status: models.AgentStatusWorking},
	}}
	ts := newTestServer(nil, f, nil, nil, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/agents/a1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a1", decodeBody(t, resp)["id"])

	resp, err = http.Get(ts.URL + "/api/agents/metrics")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), decodeBody(t, resp)["total"])

	// Terminate on a finished agent conflicts.
	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/agents/a1", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLockEndpoints(t *testing.T) {
	l := &fakeLocks{locks: []*models.Lock{{ID: "l1"}}}
	ts := newTestServer(nil, nil, l, nil, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/locks/metrics")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), decodeBody(t, resp)["active_locks"])

	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/locks/l1", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUsageSummaryRequiresUser(t *testing.T) {
	ts := newTestServer(nil, nil, nil, nil, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/usage/summary")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/usage/summary?user_id=u1")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAcknowledgeAlertNotFound(t *testing.T) {
	ts := newTestServer(nil, nil, nil, &fakeMeter{summary: &models.UsageSummary{}}, nil)
	defer ts.Close()

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/usage/alerts/x/acknowledge", gin.H{"actor_id": "u1"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDecideValidation(t *testing.T) {
	ts := newTestServer(nil, nil, nil, nil, nil)
	defer ts.Close()

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/approvals/r1/decide", gin.H{
		"actor_id": "alpha",
		"choice":   "maybe",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDecideNotApproverForbidden(t *testing.T) {
	ts := newTestServer(nil, nil, nil, nil, &fakeGate{decideErr: approval.ErrNotApprover})
	defer ts.Close()

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/approvals/r1/decide", gin.H{
		"actor_id": "stranger",
		"choice":   "approve",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestApprovalLookups(t *testing.T) {
	g := &fakeGate{request: &models.ApprovalRequest{ID: "r1", State: models.ApprovalPending}}
	ts := newTestServer(nil, nil, nil, nil, g)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/approvals/r1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "r1", decodeBody(t, resp)["id"])

	resp, err = http.Get(ts.URL + "/api/approvals/pending?user_id=alpha")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/approvals/statistics?hours=48")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthWithoutDatabase(t *testing.T) {
	ts := newTestServer(nil, nil, nil, nil, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", decodeBody(t, resp)["status"])
}
