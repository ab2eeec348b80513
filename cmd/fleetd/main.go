// fleetd orchestration kernel — coordinates agent spawning, resource locks,
// usage metering, approvals, and task dispatch behind one HTTP API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/MiniSankaz/fleetd/pkg/api"
	"github.com/MiniSankaz/fleetd/pkg/approval"
	"github.com/MiniSankaz/fleetd/pkg/bus"
	"github.com/MiniSankaz/fleetd/pkg/cleanup"
	"github.com/MiniSankaz/fleetd/pkg/config"
	"github.com/MiniSankaz/fleetd/pkg/database"
	"github.com/MiniSankaz/fleetd/pkg/dispatch"
	"github.com/MiniSankaz/fleetd/pkg/lock"
	"github.com/MiniSankaz/fleetd/pkg/notify"
	"github.com/MiniSankaz/fleetd/pkg/spawner"
	"github.com/MiniSankaz/fleetd/pkg/usage"
	"github.com/MiniSankaz/fleetd/pkg/version"
)

// parseRoles reads the APPROVAL_ROLES table. Format:
// "alice=approver|incident-commander,bob=approver". Empty input yields an
// empty table; requests then notify role entries with no recipients.
func parseRoles(raw string) approval.StaticRoles {
	roles := approval.StaticRoles{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		user, held, ok := strings.Cut(pair, "=")
		if !ok {
			slog.Warn("Skipping malformed APPROVAL_ROLES entry", "entry", pair)
			continue
		}
		for _, role := range strings.Split(held, "|") {
			if role = strings.TrimSpace(role); role != "" {
				roles[strings.TrimSpace(user)] = append(roles[strings.TrimSpace(user)], role)
			}
		}
	}
	return roles
}

func main() {
	// Load .env; absence is fine in containerized deployments.
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(2)
	}

	slog.Info("Starting fleetd",
		"version", version.Full(),
		"port", cfg.Port,
		"max_concurrent_agents", cfg.MaxConcurrentAgents,
		"lock_backend", map[bool]string{true: "redis", false: "memory"}[cfg.KVURL != ""])

	ctx := context.Background()

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(2)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Optional KV store: distributed locks and fast usage aggregates
	var (
		lockBackend lock.Backend = lock.NewMemoryBackend()
		fast        *usage.Aggregates
	)
	if cfg.KVURL != "" {
		opts, err := redis.ParseURL(cfg.KVURL)
		if err != nil {
			slog.Error("Invalid KV_URL", "error", err)
			os.Exit(2)
		}
		rdb := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			slog.Error("Failed to connect to KV store", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		lockBackend = lock.NewRedisBackend(rdb)
		fast = usage.NewAggregates(rdb)
		slog.Info("Connected to KV store")
	}

	// 4. Event bus and lock manager
	events := bus.New()

	lockMgr := lock.NewManager(lockBackend, events, cfg.DefaultLockTTL, cfg.KVURL != "")
	lockMgr.Start(ctx)
	defer lockMgr.Stop()

	// 5. Usage meter
	meter := usage.NewMeter(
		usage.NewEntStore(dbClient.Client),
		fast,
		events,
		config.DefaultPlanLimits(),
		config.AlertThresholds,
	)

	// 6. Websocket hub (also serves as the notification broadcast transport)
	hub := api.NewHub(events)
	hub.Run()
	defer hub.Stop()

	// 7. Notification dispatcher
	notifier := notify.NewDispatcher(notify.Options{})
	defer notifier.Stop()
	notifier.Register(notify.ChannelWebSocket, notify.NewWebSocketSender(hub))
	notifier.Register(notify.ChannelEmail, notify.NewLogSender(notify.ChannelEmail))
	notifier.Register(notify.ChannelSMS, notify.NewLogSender(notify.ChannelSMS))
	if slackSender := notify.NewSlackSender(os.Getenv("SLACK_BOT_TOKEN"), os.Getenv("SLACK_CHANNEL")); slackSender != nil {
		notifier.Register(notify.ChannelSlack, slackSender)
		slog.Info("Slack notifications enabled", "channel", os.Getenv("SLACK_CHANNEL"))
	}
	if webhookURL := os.Getenv("NOTIFY_WEBHOOK_URL"); webhookURL != "" {
		notifier.Register(notify.ChannelWebhook, notify.NewWebhookSender(webhookURL, nil))
		slog.Info("Webhook notifications enabled")
	}

	// 8. Approval gate
	approvalStore := approval.NewEntStore(dbClient.Client)
	roles := parseRoles(os.Getenv("APPROVAL_ROLES"))
	gate := approval.NewGate(approvalStore, events, roles, notifier, approval.DefaultPolicies(), cfg.ApprovalQueueCap)
	gate.Start()
	defer gate.Stop()

	// 9. Agent spawner
	registry := config.NewAgentRegistry()
	fleet := spawner.New(registry, meter, events, spawner.Options{
		WorkDir:       cfg.WorkDir,
		CLIPath:       cfg.CLIPath,
		MaxConcurrent: cfg.MaxConcurrentAgents,
	})
	fleet.Start()

	// 10. Task dispatcher
	dispatcher := dispatch.New(registry, gate, lockMgr, fleet, events)
	dispatcher.Start()

	// 11. Retention cleanup
	cleaner := cleanup.NewService(cleanup.Config{
		UsageRetention: time.Duration(cfg.UsageRetentionDays) * 24 * time.Hour,
	}, meter, approvalStore)
	cleaner.Start(ctx)
	defer cleaner.Stop()

	// 12. HTTP server
	server := api.NewServer(dispatcher, fleet, lockMgr, meter, gate, dbClient, hub)
	httpServer := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: server.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("fleetd started successfully")

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown: stop admitting work, terminate running agents,
	// then drain the HTTP server. The deferred Stops unwind the rest.
	dispatcher.Stop()
	fleet.TerminateAll()

	fleetDone := make(chan struct{})
	go func() {
		fleet.Stop()
		close(fleetDone)
	}()
	select {
	case <-fleetDone:
		slog.Info("Agent fleet stopped gracefully")
	case <-time.After(30 * time.Second):
		slog.Warn("Agent fleet shutdown timeout exceeded")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
