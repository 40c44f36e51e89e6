package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// PresenceRegistry tracks which connection currently represents a user. It is
// process-local and volatile; the durable counterpart is the profile's
// last_seen column. Entries never expire on their own, they are removed on
// disconnect.
type PresenceRegistry struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{
		cache: cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

// Set binds the user to a connection, displacing any earlier binding
// (last writer wins: a second device silently takes over the entry).
func (r *PresenceRegistry) Set(userID uuid.UUID, connID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Set(userID.String(), connID, cache.NoExpiration)
}

// RemoveIfCurrent deletes the entry only when it still points at this
// connection, so a stale disconnect cannot evict a newer device's binding.
func (r *PresenceRegistry) RemoveIfCurrent(userID uuid.UUID, connID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, found := r.cache.Get(userID.String())
	if !found || current.(uuid.UUID) != connID {
		return false
	}
	r.cache.Delete(userID.String())
	return true
}

// Get returns the connection currently registered for the user, if any.
func (r *PresenceRegistry) Get(userID uuid.UUID) (uuid.UUID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, found := r.cache.Get(userID.String())
	if !found {
		return uuid.Nil, false
	}
	return current.(uuid.UUID), true
}
