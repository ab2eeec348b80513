// Package approval implements the approval gate: a human-approval state
// machine for guarded operations, with policy resolution, quorum and veto
// semantics, timeouts, reminders, escalation, audited emergency bypass, and
// a durable audit trail.
package approval

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// Policy selects how requests of a given shape are routed: who approves,
// how many approvals are required, how long the request lives, and whether
// emergency bypass is allowed.
type Policy struct {
	ID       string
	Name     string
	Priority int
	Active   bool

	// Match criteria. A request matches when its type, risk, resource path,
	// and requester role all hit.
	Types            []models.ApprovalType
	RiskLevels       []models.RiskLevel
	ResourcePatterns []string
	UserRoles        []string

	// Routing.
	Level         models.ApprovalLevel
	Approvers     []string
	RequiredCount int
	Timeout       time.Duration

	// Notification and escalation.
	NotifyChannels       []string
	ReminderIntervals    []time.Duration
	EscalationNotify     bool
	EscalationRecipients []string

	// Bypass and self-approval.
	AllowBypass       bool
	BypassRoles       []string
	AllowSelfApproval bool

	CreatedAt time.Time
}

func (p *Policy) matchesType(t models.ApprovalType) bool {
	for _, candidate := range p.Types {
		if candidate == t {
			return true
		}
	}
	return false
}

func (p *Policy) matchesRisk(r models.RiskLevel) bool {
	for _, candidate := range p.RiskLevels {
		if candidate == r {
			return true
		}
	}
	return false
}

func (p *Policy) matchesResource(resource string) bool {
	for _, pattern := range p.ResourcePatterns {
		if globMatch(pattern, resource) {
			return true
		}
	}
	return false
}

func (p *Policy) matchesRole(roles []string) bool {
	for _, required := range p.UserRoles {
		if required == "*" {
			return true
		}
		for _, role := range roles {
			if role == required {
				return true
			}
		}
	}
	return false
}

// globMatch matches resource paths against a pattern where '*' spans any
// run of characters (including '/') and '?' matches one character.
func globMatch(pattern, resource string) bool {
	if pattern == "*" {
		return true
	}
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	re, err := regexp.Compile(sb.String())
	if err != nil {
		return false
	}
	return re.MatchString(resource)
}

// PolicySet is an ordered collection of policies with resolution.
type PolicySet struct {
	policies []*Policy
}

// NewPolicySet builds a set from the given policies.
func NewPolicySet(policies ...*Policy) *PolicySet {
	set := &PolicySet{}
	for _, p := range policies {
		set.Add(p)
	}
	return set
}

// Add inserts a policy into the set.
func (s *PolicySet) Add(p *Policy) {
	s.policies = append(s.policies, p)
}

// All returns the policies in resolution order.
func (s *PolicySet) All() []*Policy {
	out := append([]*Policy(nil), s.policies...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Resolve returns the highest-priority active policy matching the request
// shape, with ties broken by priority (higher first) then creation time
// (older first). Returns nil when nothing matches.
func (s *PolicySet) Resolve(t models.ApprovalType, risk models.RiskLevel, resource string, requesterRoles []string) *Policy {
	for _, p := range s.All() {
		if !p.Active {
			continue
		}
		if p.matchesType(t) && p.matchesRisk(risk) && p.matchesResource(resource) && p.matchesRole(requesterRoles) {
			return p
		}
	}
	return nil
}

// DefaultPolicies is the baseline policy table: critical and high-risk
// operations route to the security tier with a two-person quorum, medium to
// admins, low to a single admin sign-off. Deployments override the generic
// table at a higher priority.
func DefaultPolicies() []*Policy {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*Policy{
		{
			ID:                   "policy-critical",
			Name:                 "Critical operations",
			Priority:             100,
			Active:               true,
			Types:                models.AllApprovalTypes,
			RiskLevels:           []models.RiskLevel{models.RiskCritical},
			ResourcePatterns:     []string{"*"},
			UserRoles:            []string{"*"},
			Level:                models.ApprovalLevelSecurity,
			Approvers:            []string{"security-lead", "platform-admin"},
			RequiredCount:        2,
			Timeout:              30 * time.Minute,
			NotifyChannels:       []string{"slack", "websocket"},
			ReminderIntervals:    []time.Duration{10 * time.Minute, 20 * time.Minute},
			EscalationNotify:     true,
			EscalationRecipients: []string{"security-oncall"},
			AllowBypass:          true,
			BypassRoles:          []string{"security-admin"},
			CreatedAt:            base,
		},
		{
			ID:                "policy-deployment",
			Name:              "Production deployments",
			Priority:          90,
			Active:            true,
			Types:             []models.ApprovalType{models.ApprovalCodeDeployment, models.ApprovalProductionOps},
			RiskLevels:        []models.RiskLevel{models.RiskMedium, models.RiskHigh},
			ResourcePatterns:  []string{"production/*", "deploy/*"},
			UserRoles:         []string{"*"},
			Level:             models.ApprovalLevelAdmin,
			Approvers:         []string{"platform-admin", "release-manager"},
			RequiredCount:     1,
			Timeout:           time.Hour,
			NotifyChannels:    []string{"slack", "websocket"},
			ReminderIntervals: []time.Duration{15 * time.Minute, 30 * time.Minute},
			EscalationNotify:  true,
			AllowBypass:       true,
			BypassRoles:       []string{"security-admin", "platform-admin"},
			CreatedAt:         base,
		},
		{
			ID:                "policy-high",
			Name:              "High-risk operations",
			Priority:          50,
			Active:            true,
			Types:             models.AllApprovalTypes,
			RiskLevels:        []models.RiskLevel{models.RiskHigh},
			ResourcePatterns:  []string{"*"},
			UserRoles:         []string{"*"},
			Level:             models.ApprovalLevelAdmin,
			Approvers:         []string{"platform-admin"},
			RequiredCount:     1,
			Timeout:           time.Hour,
			NotifyChannels:    []string{"slack", "websocket"},
			ReminderIntervals: []time.Duration{15 * time.Minute, 30 * time.Minute},
			EscalationNotify:  true,
			AllowBypass:       false,
			CreatedAt:         base,
		},
		{
			ID:               "policy-standard",
			Name:             "Standard operations",
			Priority:         10,
			Active:           true,
			Types:            models.AllApprovalTypes,
			RiskLevels:       []models.RiskLevel{models.RiskLow, models.RiskMedium},
			ResourcePatterns: []string{"*"},
			UserRoles:        []string{"*"},
			Level:            models.ApprovalLevelUser,
			Approvers:        []string{"platform-admin"},
			RequiredCount:    1,
			Timeout:          4 * time.Hour,
			NotifyChannels:   []string{"websocket"},
			AllowBypass:      false,
			CreatedAt:        base,
		},
	}
}
