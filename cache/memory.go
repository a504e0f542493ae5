package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// DefaultMaxEntries bounds a MemoryCache built by NewMemory.
const DefaultMaxEntries = 1024

// MemoryCache keeps entries in process. Used when no Redis is configured.
// It holds at most maxEntries keys; a full cache drops expired entries
// first and then the entry closest to expiry.
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	maxEntries int
	now        func() time.Time
}

func NewMemory() *MemoryCache {
	return NewMemoryWithLimit(DefaultMaxEntries)
}

// NewMemoryWithLimit returns a MemoryCache holding at most maxEntries keys.
// A non-positive limit falls back to DefaultMaxEntries.
func NewMemoryWithLimit(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{entries: make(map[string]entry), maxEntries: maxEntries, now: time.Now}
}

func (m *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false, nil
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.entries[key]; !exists && len(m.entries) >= m.maxEntries {
		m.evict()
	}
	m.entries[key] = e
	return nil
}

// evict frees at least one slot. Callers hold m.mu.
func (m *MemoryCache) evict() {
	now := m.now()
	for key, e := range m.entries {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(m.entries, key)
		}
	}
	if len(m.entries) < m.maxEntries {
		return
	}

	var victim string
	var victimExpiry time.Time
	found := false
	for key, e := range m.entries {
		if !found || expiresBefore(e.expiresAt, victimExpiry) {
			victim, victimExpiry, found = key, e.expiresAt, true
		}
	}
	delete(m.entries, victim)
}

// expiresBefore orders expiry times with the zero time, meaning no expiry, last.
func expiresBefore(a, b time.Time) bool {
	switch {
	case a.IsZero():
		return false
	case b.IsZero():
		return true
	default:
		return a.Before(b)
	}
}

func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, expired or not.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
