// Package config loads and validates the orchestrator configuration from the
// environment and provides the built-in agent type and plan registries.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the kernel startup configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// WorkDir is where agent task manifests are written (under .ai-tasks).
	WorkDir string

	// CLIPath is the agent executable invoked per spawn.
	CLIPath string

	// MaxConcurrentAgents caps agents in initializing/working state globally.
	MaxConcurrentAgents int

	// KVURL enables the distributed lock backend and fast usage aggregates
	// when set (redis:// URL). Empty selects the in-process backend.
	KVURL string

	// DefaultLockTTL applies to acquire requests that omit a TTL.
	DefaultLockTTL time.Duration

	// ApprovalQueueCap bounds the pending approval set.
	ApprovalQueueCap int

	// UsageRetentionDays is how long durable usage records are kept.
	UsageRetentionDays int
}

// Default configuration values.
const (
	DefaultPort                = 4190
	DefaultCLIPath             = "claude"
	DefaultMaxConcurrentAgents = 5
	DefaultLockTTLSeconds      = 300
	DefaultApprovalQueueCap    = 1000
	DefaultUsageRetentionDays  = 90
)

// Load reads configuration from the environment, applying defaults for any
// unset variable.
func Load() (*Config, error) {
	port, err := intEnv("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	maxAgents, err := intEnv("MAX_CONCURRENT_AGENTS", DefaultMaxConcurrentAgents)
	if err != nil {
		return nil, err
	}
	lockTTL, err := intEnv("DEFAULT_LOCK_TTL_SECONDS", DefaultLockTTLSeconds)
	if err != nil {
		return nil, err
	}
	queueCap, err := intEnv("APPROVAL_QUEUE_CAP", DefaultApprovalQueueCap)
	if err != nil {
		return nil, err
	}
	retention, err := intEnv("USAGE_RETENTION_DAYS", DefaultUsageRetentionDays)
	if err != nil {
		return nil, err
	}

	workDir := os.Getenv("WORK_DIR")
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("WORK_DIR unset and working directory unavailable: %w", err)
		}
		workDir = wd
	}

	cfg := &Config{
		Port:                port,
		WorkDir:             workDir,
		CLIPath:             getEnvOrDefault("CLI_PATH", DefaultCLIPath),
		MaxConcurrentAgents: maxAgents,
		KVURL:               os.Getenv("KV_URL"),
		DefaultLockTTL:      time.Duration(lockTTL) * time.Second,
		ApprovalQueueCap:    queueCap,
		UsageRetentionDays:  retention,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d: must be in (0, 65535]", c.Port)
	}
	if c.MaxConcurrentAgents <= 0 {
		return fmt.Errorf("invalid MAX_CONCURRENT_AGENTS %d: must be positive", c.MaxConcurrentAgents)
	}
	if c.DefaultLockTTL < 0 {
		return fmt.Errorf("invalid DEFAULT_LOCK_TTL_SECONDS: must be non-negative")
	}
	if c.ApprovalQueueCap <= 0 {
		return fmt.Errorf("invalid APPROVAL_QUEUE_CAP %d: must be positive", c.ApprovalQueueCap)
	}
	if c.UsageRetentionDays <= 0 {
		return fmt.Errorf("invalid USAGE_RETENTION_DAYS %d: must be positive", c.UsageRetentionDays)
	}
	if c.CLIPath == "" {
		return fmt.Errorf("CLI_PATH must not be empty")
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
