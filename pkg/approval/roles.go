package approval

import "context"

// RoleOracle answers role-membership questions for policy matching and
// bypass authorization. Implementations may back onto an identity provider;
// StaticRoles serves fixed deployments and tests.
type RoleOracle interface {
	// RolesOf returns the roles held by a user. Unknown users hold no roles.
	RolesOf(ctx context.Context, userID string) ([]string, error)

	// HasRole reports whether a user holds a specific role.
	HasRole(ctx context.Context, userID, role string) (bool, error)

	// UsersInRole returns the user ids holding a role. Unknown roles have
	// no members.
	UsersInRole(ctx context.Context, role string) ([]string, error)
}

// StaticRoles is a fixed user-to-roles table.
type StaticRoles map[string][]string

// RolesOf implements RoleOracle.
func (s StaticRoles) RolesOf(_ context.Context, userID string) ([]string, error) {
	return append([]string(nil), s[userID]...), nil
}

// HasRole implements RoleOracle.
func (s StaticRoles) HasRole(_ context.Context, userID, role string) (bool, error) {
	for _, held := range s[userID] {
		if held == role {
			return true, nil
		}
	}
	return false, nil
}

// UsersInRole implements RoleOracle. Membership order is unspecified.
func (s StaticRoles) UsersInRole(_ context.Context, role string) ([]string, error) {
	var out []string
	for userID, roles := range s {
		for _, held := range roles {
			if held == role {
				out = append(out, userID)
				break
			}
		}
	}
	return out, nil
}
