package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultCLIPath, cfg.CLIPath)
	assert.Equal(t, DefaultMaxConcurrentAgents, cfg.MaxConcurrentAgents)
	assert.Equal(t, 300*time.Second, cfg.DefaultLockTTL)
	assert.Equal(t, DefaultApprovalQueueCap, cfg.ApprovalQueueCap)
	assert.Equal(t, DefaultUsageRetentionDays, cfg.UsageRetentionDays)
	assert.NotEmpty(t, cfg.WorkDir)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("WORK_DIR", "/tmp/agents")
	t.Setenv("CLI_PATH", "/usr/local/bin/claude")
	t.Setenv("MAX_CONCURRENT_AGENTS", "2")
	t.Setenv("KV_URL", "redis://localhost:6379/0")
	t.Setenv("DEFAULT_LOCK_TTL_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "/tmp/agents", cfg.WorkDir)
	assert.Equal(t, "/usr/local/bin/claude", cfg.CLIPath)
	assert.Equal(t, 2, cfg.MaxConcurrentAgents)
	assert.Equal(t, "redis://localhost:6379/0", cfg.KVURL)
	assert.Equal(t, time.Minute, cfg.DefaultLockTTL)
}

func TestLoadRejectsMalformedInt(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_AGENTS", "five")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(*Config) {}, false},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"zero concurrency", func(c *Config) { c.MaxConcurrentAgents = 0 }, true},
		{"negative ttl", func(c *Config) { c.DefaultLockTTL = -time.Second }, true},
		{"zero ttl allowed", func(c *Config) { c.DefaultLockTTL = 0 }, false},
		{"zero queue cap", func(c *Config) { c.ApprovalQueueCap = 0 }, true},
		{"empty cli path", func(c *Config) { c.CLIPath = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:                DefaultPort,
				WorkDir:             "/tmp",
				CLIPath:             DefaultCLIPath,
				MaxConcurrentAgents: DefaultMaxConcurrentAgents,
				DefaultLockTTL:      300 * time.Second,
				ApprovalQueueCap:    DefaultApprovalQueueCap,
				UsageRetentionDays:  DefaultUsageRetentionDays,
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInferAgentType(t *testing.T) {
	tests := []struct {
		name        string
		description string
		prompt      string
		want        models.AgentType
	}{
		{"requirements", "Analyze requirements for checkout", "", models.AgentTypeBusinessAnalyst},
		{"user story", "", "write a USER STORY for login", models.AgentTypeBusinessAnalyst},
		{"review", "review the auth module", "", models.AgentTypeCodeReviewer},
		{"tests", "run tests", "", models.AgentTypeTestRunner},
		{"coverage", "", "improve coverage of pkg/lock", models.AgentTypeTestRunner},
		{"architecture", "architecture proposal", "", models.AgentTypeTechnicalArchitect},
		{"roadmap", "", "draft the Q3 roadmap", models.AgentTypeDevelopmentPlanner},
		{"compliance", "sop compliance audit", "", models.AgentTypeSOPEnforcer},
		{"fallback", "summarize this document", "", models.AgentTypeGeneralPurpose},
		{"first rule wins", "review test coverage requirements", "", models.AgentTypeBusinessAnalyst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferAgentType(tt.description, tt.prompt))
		})
	}
}

func TestAgentRegistryCoversAllTypes(t *testing.T) {
	r := NewAgentRegistry()
	for _, at := range models.AllAgentTypes {
		cfg := r.ConfigFor(at)
		assert.True(t, cfg.Model.IsValid(), "missing defaults for %s", at)
		assert.Positive(t, cfg.MaxTokens, "missing max tokens for %s", at)
		assert.Positive(t, cfg.Timeout, "missing timeout for %s", at)
	}
}

func TestAgentRegistryMerge(t *testing.T) {
	r := NewAgentRegistry()

	merged := r.Merge(models.AgentTypeTestRunner, &models.AgentConfig{
		Model:   models.ModelOpus,
		Timeout: time.Minute,
	})
	assert.Equal(t, models.ModelOpus, merged.Model)
	assert.Equal(t, time.Minute, merged.Timeout)
	// Unset override fields keep the type defaults.
	assert.Equal(t, 4096, merged.MaxTokens)

	unchanged := r.Merge(models.AgentTypeTestRunner, nil)
	assert.Equal(t, models.ModelHaiku, unchanged.Model)
}
