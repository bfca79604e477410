package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"greenlake/internal/domain/service"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// memoryCache is a process-local cache for development and tests.
type memoryCache struct {
	mu   sync.Mutex
	data map[string]memoryEntry
	now  func() time.Time
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[key]
	if !ok {
		return nil, service.ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		delete(m.data, key)

		return nil, service.ErrCacheMiss
	}

	return slices.Clone(entry.value), nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{value: slices.Clone(value)}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = entry

	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)

	return nil
}
