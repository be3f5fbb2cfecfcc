// ABOUTME: Session store interface and in-memory implementation with TTL eviction
// ABOUTME: Absent sessions return nil; idle sessions are evicted so memory stays bounded
package session

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/harper/chef-pipeline/internal/models"
)

// Store is the session persistence contract. Get returns (nil, nil) for
// an absent session; the caller creates a fresh one with default persona
// parameters. Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Put(ctx context.Context, session *models.Session) error
	Close() error
}

// MemoryStore keeps sessions in process memory with idle-timeout
// eviction
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates an in-memory store. Sessions idle longer than
// ttl are evicted by the cache janitor.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	cleanup := ttl / 2
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &MemoryStore{
		cache: gocache.New(ttl, cleanup),
	}
}

// Get returns a copy of the stored session, or nil if absent or expired.
// Reading refreshes the idle timer.
func (m *MemoryStore) Get(_ context.Context, sessionID string) (*models.Session, error) {
	v, found := m.cache.Get(sessionID)
	if !found {
		return nil, nil
	}
	sess, ok := v.(*models.Session)
	if !ok {
		return nil, fmt.Errorf("unexpected cache entry type for session %s", sessionID)
	}
	// Touch to keep active sessions alive
	m.cache.SetDefault(sessionID, sess)
	return sess.Clone(), nil
}

// Put stores a copy of the session and resets its idle timer
func (m *MemoryStore) Put(_ context.Context, sess *models.Session) error {
	if sess == nil || sess.SessionID == "" {
		return fmt.Errorf("session with empty ID cannot be stored")
	}
	m.cache.SetDefault(sess.SessionID, sess.Clone())
	return nil
}

// Close releases the store; the cache janitor stops when collected
func (m *MemoryStore) Close() error {
	m.cache.Flush()
	return nil
}
