package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MiniSankaz/fleetd/ent"
)

// newTestClient creates a test database client with CI/local environment
// detection. In CI (CI_DATABASE_URL set): connects to an external PostgreSQL
// service container. In local dev: spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	} else {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests; production applies the embedded SQL.
	require.NoError(t, entClient.Schema.Create(ctx))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestUsageMetricRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.UsageMetric.Create().
		SetID("rec-1").
		SetAgentID("agent-1").
		SetAgentType("test-runner").
		SetModel("haiku").
		SetInputTokens(100).
		SetOutputTokens(250).
		SetDurationMs(1200).
		SetCost(0.0003).
		SetUserID("user-1").
		SetMetadata(map[string]interface{}{"estimated": false}).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", created.ID)

	rows, err := client.UsageMetric.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 250, rows[0].OutputTokens)
	assert.Equal(t, false, rows[0].Metadata["estimated"])
}

func TestApprovalDecisionUniquePerApprover(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.ApprovalRequest.Create().
		SetID("req-1").
		SetType("code-deployment").
		SetLevel("admin").
		SetTitle("deploy api").
		SetRequesterID("user-1").
		SetApprovers([]string{"alpha", "beta"}).
		SetRequiredCount(2).
		SetExpiresAt(time.Now().Add(time.Hour)).
		SetTimeoutMs(3600000).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ApprovalDecision.Create().
		SetID("dec-1").
		SetRequestID("req-1").
		SetDeciderID("alpha").
		SetChoice("approve").
		Save(ctx)
	require.NoError(t, err)

	// A second verdict by the same approver trips the unique index.
	_, err = client.ApprovalDecision.Create().
		SetID("dec-2").
		SetRequestID("req-1").
		SetDeciderID("alpha").
		SetChoice("reject").
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}

func TestAuditEntriesCascadeWithRequest(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.ApprovalRequest.Create().
		SetID("req-1").
		SetType("production-operations").
		SetLevel("security").
		SetTitle("rotate keys").
		SetRequesterID("user-1").
		SetApprovers([]string{"sec-1"}).
		SetExpiresAt(time.Now().Add(time.Hour)).
		SetTimeoutMs(3600000).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AuditEntry.Create().
		SetID("aud-1").
		SetRequestID("req-1").
		SetAction("request_submitted").
		SetActor("user-1").
		SetSeverity("info").
		Save(ctx)
	require.NoError(t, err)

	count, err := client.AuditEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
