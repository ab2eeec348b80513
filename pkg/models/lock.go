package models

import (
	"fmt"
	"time"
)

// ResourceType is the closed set of lockable resource kinds.
type ResourceType string

const (
	ResourceFile      ResourceType = "file"
	ResourceService   ResourceType = "service"
	ResourceDatabase  ResourceType = "database"
	ResourcePort      ResourceType = "port"
	ResourceTerminal  ResourceType = "terminal"
	ResourceWorkspace ResourceType = "workspace"
	ResourcePortfolio ResourceType = "portfolio"
)

// IsValid checks if the resource type is valid.
func (t ResourceType) IsValid() bool {
	switch t {
	case ResourceFile, ResourceService, ResourceDatabase, ResourcePort,
		ResourceTerminal, ResourceWorkspace, ResourcePortfolio:
		return true
	default:
		return false
	}
}

// LockRef names a resource a task needs to hold.
type LockRef struct {
	Type ResourceType `json:"type"`
	ID   string       `json:"id"`
}

// Key returns the canonical lock key, the unit of mutual exclusion.
func (r LockRef) Key() string {
	return LockKey(r.Type, r.ID)
}

// LockKey forms the canonical key for a (type, id) resource pair.
func LockKey(t ResourceType, id string) string {
	return fmt.Sprintf("lock:%s:%s", t, id)
}

// Lock is an exclusive, TTL-bounded claim over a typed resource.
type Lock struct {
	ID         string         `json:"id"`
	Resource   ResourceType   `json:"resource_type"`
	ResourceID string         `json:"resource_id"`
	OwnerID    string         `json:"owner_id"`
	AcquiredAt time.Time      `json:"acquired_at"`
	ExpiresAt  time.Time      `json:"expires_at"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Key returns the lock's canonical resource key.
func (l *Lock) Key() string {
	return LockKey(l.Resource, l.ResourceID)
}

// IsExpired reports whether the lock has passed its TTL at the given instant.
func (l *Lock) IsExpired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}
