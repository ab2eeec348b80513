package approval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

func TestGlobMatch(t *testing.T) {
	tests := []struct {
		pattern  string
		resource string
		expected bool
	}{
		{"*", "anything/at/all", true},
		{"production/*", "production/api", true},
		{"production/*", "production/db/users", true},
		{"production/*", "staging/api", false},
		{"*/secrets/*", "vault/secrets/db", true},
		{"deploy-?", "deploy-a", true},
		{"deploy-?", "deploy-ab", false},
		{"exact/path", "exact/path", true},
		{"exact/path", "exact/path/deeper", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" vs "+tt.resource, func(t *testing.T) {
			assert.Equal(t, tt.expected, globMatch(tt.pattern, tt.resource))
		})
	}
}

func TestResolvePicksHighestPriority(t *testing.T) {
	broad := &Policy{
		ID:               "broad",
		Priority:         10,
		Active:           true,
		Types:            models.AllApprovalTypes,
		RiskLevels:       []models.RiskLevel{models.RiskHigh},
		ResourcePatterns: []string{"*"},
		UserRoles:        []string{"*"},
		CreatedAt:        time.Now(),
	}
	narrow := &Policy{
		ID:               "narrow",
		Priority:         90,
		Active:           true,
		Types:            []models.ApprovalType{models.ApprovalCodeDeployment},
		RiskLevels:       []models.RiskLevel{models.RiskHigh},
		ResourcePatterns: []string{"production/*"},
		UserRoles:        []string{"*"},
		CreatedAt:        time.Now(),
	}
	set := NewPolicySet(broad, narrow)

	matched := set.Resolve(models.ApprovalCodeDeployment, models.RiskHigh, "production/api", []string{"developer"})
	require.NotNil(t, matched)
	assert.Equal(t, "narrow", matched.ID)

	// Outside the narrow resource pattern the broad policy wins.
	matched = set.Resolve(models.ApprovalCodeDeployment, models.RiskHigh, "staging/api", []string{"developer"})
	require.NotNil(t, matched)
	assert.Equal(t, "broad", matched.ID)
}

func TestResolveBreaksPriorityTiesByAge(t *testing.T) {
	older := &Policy{
		ID:               "older",
		Priority:         50,
		Active:           true,
		Types:            models.AllApprovalTypes,
		RiskLevels:       []models.RiskLevel{models.RiskLow},
		ResourcePatterns: []string{"*"},
		UserRoles:        []string{"*"},
		CreatedAt:        time.Now().Add(-time.Hour),
	}
	newer := &Policy{
		ID:               "newer",
		Priority:         50,
		Active:           true,
		Types:            models.AllApprovalTypes,
		RiskLevels:       []models.RiskLevel{models.RiskLow},
		ResourcePatterns: []string{"*"},
		UserRoles:        []string{"*"},
		CreatedAt:        time.Now(),
	}
	set := NewPolicySet(newer, older)

	matched := set.Resolve(models.ApprovalUserDataAccess, models.RiskLow, "data/users", nil)
	require.NotNil(t, matched)
	assert.Equal(t, "older", matched.ID)
}

func TestResolveSkipsInactiveAndRoleMismatches(t *testing.T) {
	inactive := &Policy{
		ID:               "inactive",
		Priority:         99,
		Active:           false,
		Types:            models.AllApprovalTypes,
		RiskLevels:       []models.RiskLevel{models.RiskLow},
		ResourcePatterns: []string{"*"},
		UserRoles:        []string{"*"},
	}
	adminOnly := &Policy{
		ID:               "admin-only",
		Priority:         50,
		Active:           true,
		Types:            models.AllApprovalTypes,
		RiskLevels:       []models.RiskLevel{models.RiskLow},
		ResourcePatterns: []string{"*"},
		UserRoles:        []string{"platform-admin"},
	}
	set := NewPolicySet(inactive, adminOnly)

	assert.Nil(t, set.Resolve(models.ApprovalUserDataAccess, models.RiskLow, "data/users", []string{"developer"}))

	matched := set.Resolve(models.ApprovalUserDataAccess, models.RiskLow, "data/users", []string{"platform-admin"})
	require.NotNil(t, matched)
	assert.Equal(t, "admin-only", matched.ID)
}

func TestDefaultPoliciesCoverEveryRisk(t *testing.T) {
	set := NewPolicySet(DefaultPolicies()...)
	for _, risk := range []models.RiskLevel{models.RiskLow, models.RiskMedium, models.RiskHigh, models.RiskCritical} {
		matched := set.Resolve(models.ApprovalDatabaseChanges, risk, "db/main", []string{"developer"})
		require.NotNil(t, matched, "risk %s", risk)
	}
	// Critical always routes to the security tier with a two-person quorum.
	critical := set.Resolve(models.ApprovalSecurityChanges, models.RiskCritical, "vault/keys", nil)
	require.NotNil(t, critical)
	assert.Equal(t, models.ApprovalLevelSecurity, critical.Level)
	assert.Equal(t, 2, critical.RequiredCount)
}
