package config

import (
	"strings"
	"time"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// AgentRegistry resolves per-type agent defaults and infers agent types from
// free-form task text.
type AgentRegistry struct {
	defaults map[models.AgentType]models.AgentConfig
}

// NewAgentRegistry creates a registry with the built-in per-type defaults.
func NewAgentRegistry() *AgentRegistry {
	return &AgentRegistry{defaults: builtinAgentDefaults()}
}

// builtinAgentDefaults is the closed table of agent type configurations.
// Every models.AgentType must have an entry.
func builtinAgentDefaults() map[models.AgentType]models.AgentConfig {
	return map[models.AgentType]models.AgentConfig{
		models.AgentTypeBusinessAnalyst: {
			Model:     models.ModelSonnet,
			MaxTokens: 8192,
			Timeout:   10 * time.Minute,
		},
		models.AgentTypeCodeReviewer: {
			Model:     models.ModelSonnet,
			MaxTokens: 8192,
			Timeout:   10 * time.Minute,
		},
		models.AgentTypeTestRunner: {
			Model:     models.ModelHaiku,
			MaxTokens: 4096,
			Timeout:   15 * time.Minute,
		},
		models.AgentTypeTechnicalArchitect: {
			Model:            models.ModelOpus,
			MaxTokens:        8192,
			Timeout:          15 * time.Minute,
			RequiresApproval: true,
		},
		models.AgentTypeDevelopmentPlanner: {
			Model:     models.ModelSonnet,
			MaxTokens: 8192,
			Timeout:   10 * time.Minute,
		},
		models.AgentTypeSOPEnforcer: {
			Model:     models.ModelHaiku,
			MaxTokens: 4096,
			Timeout:   5 * time.Minute,
		},
		models.AgentTypeGeneralPurpose: {
			Model:     models.ModelSonnet,
			MaxTokens: 8192,
			Timeout:   10 * time.Minute,
		},
	}
}

// ConfigFor returns the default configuration for an agent type. Unknown
// types fall back to the general-purpose defaults.
func (r *AgentRegistry) ConfigFor(t models.AgentType) models.AgentConfig {
	if cfg, ok := r.defaults[t]; ok {
		return cfg
	}
	return r.defaults[models.AgentTypeGeneralPurpose]
}

// Merge applies caller overrides on top of the type defaults. Zero-valued
// override fields keep the default.
func (r *AgentRegistry) Merge(t models.AgentType, overrides *models.AgentConfig) models.AgentConfig {
	cfg := r.ConfigFor(t)
	if overrides == nil {
		return cfg
	}
	if overrides.Model.IsValid() {
		cfg.Model = overrides.Model
	}
	if overrides.MaxTokens > 0 {
		cfg.MaxTokens = overrides.MaxTokens
	}
	if overrides.Timeout > 0 {
		cfg.Timeout = overrides.Timeout
	}
	if overrides.RetryLimit > 0 {
		cfg.RetryLimit = overrides.RetryLimit
	}
	if overrides.RequiresApproval {
		cfg.RequiresApproval = true
	}
	return cfg
}

// inferenceRule maps keyword substrings to an agent type. Rules are evaluated
// in order; the first hit wins.
type inferenceRule struct {
	keywords []string
	agent    models.AgentType
}

var inferenceRules = []inferenceRule{
	{[]string{"requirement", "user story", "analyze requirements"}, models.AgentTypeBusinessAnalyst},
	{[]string{"review", "code quality"}, models.AgentTypeCodeReviewer},
	{[]string{"test", "coverage"}, models.AgentTypeTestRunner},
	{[]string{"architecture", "design"}, models.AgentTypeTechnicalArchitect},
	{[]string{"plan", "roadmap"}, models.AgentTypeDevelopmentPlanner},
	{[]string{"sop", "compliance"}, models.AgentTypeSOPEnforcer},
}

// InferAgentType scans the task description and prompt for known keywords,
// case-insensitively, and returns the first matching agent type. Tasks with
// no match are general-purpose.
func InferAgentType(description, prompt string) models.AgentType {
	text := strings.ToLower(description + " " + prompt)
	for _, rule := range inferenceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.agent
			}
		}
	}
	return models.AgentTypeGeneralPurpose
}
